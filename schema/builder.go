package schema

import (
	"fmt"
	"sort"

	"github.com/hashicorp/go-multierror"
	logging "github.com/ipfs/go-log/v2"
)

var log = logging.Logger("seviri/schema")

// Builder collects named layouts and resolves a root record into a Schema.
// A Builder is not safe for concurrent use; the Schema it produces is.
type Builder struct {
	defs  map[string]*Type
	order []string
	errs  *multierror.Error
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{defs: make(map[string]*Type)}
}

// Define registers a named layout that fields can reference with Ref.
// Redefining a name is reported by Build.
func (b *Builder) Define(name string, t *Type) *Builder {
	switch {
	case name == "":
		b.errs = multierror.Append(b.errs, &ConfigError{Reason: "layout name is empty"})
	case b.defs[name] != nil:
		b.errs = multierror.Append(b.errs, &ConfigError{Path: name, Reason: "layout defined more than once"})
	case t == nil:
		b.errs = multierror.Append(b.errs, &ConfigError{Path: name, Reason: "layout has no type"})
	default:
		b.defs[name] = t
		b.order = append(b.order, name)
	}
	return b
}

// Build resolves root and every layout it references, validates them, and
// returns the immutable schema. All configuration problems are returned
// together; each matches errors.Is(err, ErrConfiguration).
func (b *Builder) Build(name string, root *Type) (*Schema, error) {
	r := &resolver{
		defs:     b.defs,
		named:    make(map[string]*Type),
		visiting: make(map[string]bool),
	}
	if b.errs != nil {
		r.errs = multierror.Append(r.errs, b.errs.Errors...)
	}

	var rt *Type
	if root == nil || (root.kind != KindRecord && root.kind != KindRef) {
		r.fail(name, "schema root must be a record")
	} else {
		rt = r.resolve(root, name)
	}

	// Unreferenced definitions are validated too, so a broken layout never
	// hides behind an unused name.
	for _, def := range b.order {
		if _, done := r.named[def]; !done {
			r.resolveNamed(def, def)
		}
	}

	if err := r.errs.ErrorOrNil(); err != nil {
		return nil, err
	}
	if rt.kind != KindRecord {
		return nil, &ConfigError{Path: name, Reason: "schema root must be a record"}
	}

	s := &Schema{
		name:  name,
		root:  rt,
		named: r.named,
	}
	s.slots = Flatten(rt)
	s.index = make(map[string]int, len(s.slots))
	for i, slot := range s.slots {
		s.index[slot.Path] = i
	}

	log.Debugf("built schema %s: %d bytes, %d named layouts, %d fields", name, rt.size, len(r.named), len(s.slots))
	return s, nil
}

// MustBuild is like Build but panics on error. It is intended for
// package-level schema definitions that are known to be valid.
func (b *Builder) MustBuild(name string, root *Type) *Schema {
	s, err := b.Build(name, root)
	if err != nil {
		panic(fmt.Sprintf("schema %s: %v", name, err))
	}
	return s
}

type resolver struct {
	defs     map[string]*Type
	named    map[string]*Type
	visiting map[string]bool
	errs     *multierror.Error
}

func (r *resolver) fail(path, format string, args ...interface{}) {
	r.errs = multierror.Append(r.errs, &ConfigError{Path: path, Reason: fmt.Sprintf(format, args...)})
}

// resolve returns the resolved form of t, or nil after recording an error.
func (r *resolver) resolve(t *Type, path string) *Type {
	if t == nil {
		r.fail(path, "missing type")
		return nil
	}
	if t.resolved {
		return t
	}

	switch t.kind {
	case KindUint, KindInt:
		if !validWidth(t.width, 1, 2, 4, 8) {
			r.fail(path, "%s width must be 1, 2, 4 or 8 bytes, got %d", t.kind, t.width)
			return nil
		}
		return scalar(t.kind, t.width)
	case KindFloat:
		if !validWidth(t.width, 4, 8) {
			r.fail(path, "float width must be 4 or 8 bytes, got %d", t.width)
			return nil
		}
		return scalar(t.kind, t.width)
	case KindBool:
		if t.width != 1 {
			r.fail(path, "bool width must be 1 byte, got %d", t.width)
			return nil
		}
		return boolType
	case KindText:
		if t.width <= 0 {
			r.fail(path, "text length must be positive, got %d", t.width)
			return nil
		}
		return &Type{kind: KindText, width: t.width, padding: t.padding, size: t.width, resolved: true}
	case KindArray:
		return r.resolveArray(t, path)
	case KindRecord:
		return r.resolveRecord(t, path)
	case KindRef:
		return r.resolveNamed(t.ref, path)
	default:
		r.fail(path, "invalid type kind %s", t.kind)
		return nil
	}
}

func (r *resolver) resolveArray(t *Type, path string) *Type {
	ok := true
	if len(t.dims) == 0 {
		r.fail(path, "array has no dimensions")
		ok = false
	}
	for i, d := range t.dims {
		if d <= 0 {
			r.fail(path, "array dimension %d must be positive, got %d", i, d)
			ok = false
		}
	}
	elem := r.resolve(t.elem, path+"[]")
	if !ok || elem == nil {
		return nil
	}
	if elem.kind == KindArray {
		// Nested array declarations flatten into one multi-dimensional array.
		dims := append(append([]int(nil), t.dims...), elem.dims...)
		elem = elem.elem
		t = &Type{kind: KindArray, dims: dims}
	}
	n := 1
	for _, d := range t.dims {
		n *= d
	}
	return &Type{
		kind:     KindArray,
		elem:     elem,
		dims:     append([]int(nil), t.dims...),
		size:     elem.size * n,
		resolved: true,
	}
}

func (r *resolver) resolveRecord(t *Type, path string) *Type {
	if len(t.fields) == 0 {
		r.fail(path, "record has no fields")
		return nil
	}

	out := &Type{
		kind:    KindRecord,
		fields:  make([]Field, len(t.fields)),
		offsets: make([]int, len(t.fields)),
		byName:  make(map[string]int, len(t.fields)),
	}
	ok := true
	offset := 0
	for i, f := range t.fields {
		fieldPath := JoinPath(path, f.Name)
		if f.Name == "" {
			r.fail(fieldPath, "field %d has an empty name", i)
			ok = false
		} else if !validFieldName(f.Name) {
			r.fail(fieldPath, "field name %q contains a path delimiter", f.Name)
			ok = false
		} else if _, dup := out.byName[f.Name]; dup {
			r.fail(fieldPath, "duplicate field name %q", f.Name)
			ok = false
		}
		ft := r.resolve(f.Type, fieldPath)
		if ft == nil {
			ok = false
			continue
		}
		out.fields[i] = Field{Name: f.Name, Type: ft}
		out.offsets[i] = offset
		out.byName[f.Name] = i
		offset += ft.size
	}
	if !ok {
		return nil
	}
	out.size = offset
	out.resolved = true
	return out
}

func (r *resolver) resolveNamed(name, path string) *Type {
	if t, ok := r.named[name]; ok {
		return t
	}
	def, ok := r.defs[name]
	if !ok {
		r.fail(path, "unresolved layout reference %q", name)
		return nil
	}
	if r.visiting[name] {
		r.fail(path, "layout %q references itself", name)
		return nil
	}

	r.visiting[name] = true
	t := r.resolve(def, name)
	delete(r.visiting, name)
	if t == nil {
		// Remember the failure so each bad layout is reported once.
		r.named[name] = nil
		return nil
	}
	if t.kind == KindRecord {
		named := *t
		named.name = name
		t = &named
	}
	r.named[name] = t
	return t
}

func validWidth(w int, allowed ...int) bool {
	for _, a := range allowed {
		if w == a {
			return true
		}
	}
	return false
}

// Schema is a validated, immutable record layout. It is safe for
// concurrent use.
type Schema struct {
	name  string
	root  *Type
	named map[string]*Type
	slots []Slot
	index map[string]int
}

// Name returns the schema name.
func (s *Schema) Name() string { return s.name }

// Root returns the top-level record.
func (s *Schema) Root() *Type { return s.root }

// Size returns the total byte size of the root record.
func (s *Schema) Size() int { return s.root.size }

// Lookup returns the interned layout registered under name.
func (s *Schema) Lookup(name string) (*Type, bool) {
	t, ok := s.named[name]
	return t, ok && t != nil
}

// Names returns the registered layout names in sorted order.
func (s *Schema) Names() []string {
	names := make([]string, 0, len(s.named))
	for n := range s.named {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Layout returns the offsets of the root record's direct fields.
func (s *Schema) Layout() []Slot {
	return Layout(s.root)
}

// Flatten returns the depth-first offset index of all nested record fields.
func (s *Schema) Flatten() []Slot {
	return append([]Slot(nil), s.slots...)
}

// Slot returns the precomputed slot for an index-free field path.
func (s *Schema) Slot(path string) (Slot, bool) {
	i, ok := s.index[path]
	if !ok {
		return Slot{}, false
	}
	return s.slots[i], true
}

// Resolve returns the slot addressed by a concrete path, including array indices.
func (s *Schema) Resolve(path string) (Slot, error) {
	if i, ok := s.index[path]; ok {
		return s.slots[i], nil
	}
	return Resolve(s.root, path)
}
