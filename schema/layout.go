package schema

import "fmt"

// Slot locates a field within a record: its path, byte offset from the
// start of the outermost record, byte size and type.
type Slot struct {
	Path   string
	Name   string
	Offset int
	Size   int
	Type   *Type
	Depth  int
}

// End returns the offset one past the slot's last byte.
func (s Slot) End() int { return s.Offset + s.Size }

func (s Slot) String() string {
	return fmt.Sprintf("%s @%d+%d %s", s.Path, s.Offset, s.Size, s.Type)
}

// RootSlot returns the slot covering a whole type at offset zero.
func RootSlot(t *Type) Slot {
	return Slot{Type: t, Size: SizeOf(t)}
}

// Layout returns the direct fields of a record with offsets relative to
// the record start. Non-record types have no layout.
func Layout(t *Type) []Slot {
	if t == nil || t.kind != KindRecord {
		return nil
	}
	slots := make([]Slot, len(t.fields))
	offset := 0
	for i, f := range t.fields {
		size := SizeOf(f.Type)
		slots[i] = Slot{
			Path:   f.Name,
			Name:   f.Name,
			Offset: offset,
			Size:   size,
			Type:   f.Type,
			Depth:  1,
		}
		offset += size
	}
	return slots
}

// Flatten returns every field reachable through nested records, depth-first
// in declaration order. A record's slot precedes the slots of its fields.
// Arrays are leaves: their elements are addressed with Resolve.
func Flatten(t *Type) []Slot {
	var slots []Slot
	flatten(t, "", 0, 1, &slots)
	return slots
}

func flatten(t *Type, prefix string, base, depth int, out *[]Slot) {
	for _, s := range Layout(t) {
		s.Path = JoinPath(prefix, s.Name)
		s.Offset += base
		s.Depth = depth
		*out = append(*out, s)
		if s.Type.kind == KindRecord {
			flatten(s.Type, s.Path, s.Offset, depth+1, out)
		}
	}
}

// Resolve returns the slot addressed by path within t.
func Resolve(t *Type, path string) (Slot, error) {
	return RootSlot(t).Resolve(path)
}

// Resolve descends from s along a relative path.
func (s Slot) Resolve(path string) (Slot, error) {
	segs, err := ParsePath(path)
	if err != nil {
		return Slot{}, err
	}
	cur := s
	for _, seg := range segs {
		if cur, err = cur.field(seg.Name, path); err != nil {
			return Slot{}, err
		}
		if len(seg.Index) > 0 {
			if cur, err = cur.index(seg.Index, path); err != nil {
				return Slot{}, err
			}
		}
	}
	return cur, nil
}

// Field returns the slot of a direct record field.
func (s Slot) Field(name string) (Slot, error) {
	return s.field(name, JoinPath(s.Path, name))
}

// Index returns the slot of an array element, or of a sub-array when
// fewer indices than dimensions are given.
func (s Slot) Index(idx ...int) (Slot, error) {
	return s.index(idx, s.Path+FormatIndex(idx))
}

func (s Slot) field(name, fullPath string) (Slot, error) {
	t := s.Type
	if t == nil {
		return Slot{}, &LookupError{Path: fullPath, Segment: name, Err: ErrUnknownField}
	}
	if t.kind != KindRecord {
		if t.kind == KindArray {
			return Slot{}, &LookupError{Path: fullPath, Segment: name, Err: ErrInvalidPath,
				Detail: fmt.Sprintf("%s is an array and must be indexed", s.displayName())}
		}
		return Slot{}, &LookupError{Path: fullPath, Segment: name, Err: ErrUnknownField,
			Detail: fmt.Sprintf("%s is a %s, not a record", s.displayName(), t.kind)}
	}
	i, ok := t.fieldIndex(name)
	if !ok {
		return Slot{}, &LookupError{Path: fullPath, Segment: name, Err: ErrUnknownField}
	}
	f := t.fields[i]
	off, _ := t.FieldOffset(name)
	return Slot{
		Path:   JoinPath(s.Path, name),
		Name:   name,
		Offset: s.Offset + off,
		Size:   SizeOf(f.Type),
		Type:   f.Type,
		Depth:  s.Depth + 1,
	}, nil
}

func (s Slot) index(idx []int, fullPath string) (Slot, error) {
	t := s.Type
	seg := s.Name + FormatIndex(idx)
	if t == nil || t.kind != KindArray {
		return Slot{}, &LookupError{Path: fullPath, Segment: seg, Err: ErrInvalidPath,
			Detail: fmt.Sprintf("%s is not an array", s.displayName())}
	}
	if len(idx) > len(t.dims) {
		return Slot{}, &LookupError{Path: fullPath, Segment: seg, Err: ErrInvalidPath,
			Detail: fmt.Sprintf("%d indices for %d-dimensional array", len(idx), len(t.dims))}
	}

	elemSize := SizeOf(t.elem)
	// stride of dimension k is the element count of all later dimensions.
	stride := 1
	for _, d := range t.dims[len(idx):] {
		stride *= d
	}
	linear := 0
	for k := len(idx) - 1; k >= 0; k-- {
		if idx[k] < 0 || idx[k] >= t.dims[k] {
			return Slot{}, &LookupError{Path: fullPath, Segment: seg, Err: ErrIndexOutOfRange,
				Detail: fmt.Sprintf("index %d of dimension %d not in [0,%d)", idx[k], k, t.dims[k])}
		}
		linear += idx[k] * stride
		stride *= t.dims[k]
	}

	out := Slot{
		Path:   s.Path + FormatIndex(idx),
		Name:   s.Name,
		Offset: s.Offset + linear*elemSize,
		Depth:  s.Depth,
	}
	if len(idx) == len(t.dims) {
		out.Type = t.elem
		out.Size = elemSize
		return out, nil
	}
	rest := append([]int(nil), t.dims[len(idx):]...)
	sub := &Type{kind: KindArray, elem: t.elem, dims: rest, resolved: t.resolved}
	sub.size = elemSize * sub.Len()
	out.Type = sub
	out.Size = sub.size
	return out, nil
}

func (s Slot) displayName() string {
	if s.Path == "" {
		return "root"
	}
	return s.Path
}
