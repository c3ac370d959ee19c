package header

import (
	"fmt"

	"github.com/robert-malhotra/go-seviri/internal/dtype"
	"github.com/robert-malhotra/go-seviri/schema"
)

// Node is a lazy handle on one field of a View. Nothing is decoded until
// Value or a typed accessor is called.
type Node struct {
	view *View
	slot schema.Slot
}

// Path returns the field path from the header root ("" for the root).
func (n Node) Path() string { return n.slot.Path }

// Offset returns the absolute byte offset of the field.
func (n Node) Offset() int { return n.slot.Offset }

// Size returns the field size in bytes.
func (n Node) Size() int { return n.slot.Size }

// Type returns the field's schema type.
func (n Node) Type() *schema.Type { return n.slot.Type }

// Kind returns the field's kind.
func (n Node) Kind() schema.Kind { return n.slot.Type.Kind() }

// Slot returns the field's resolved location.
func (n Node) Slot() schema.Slot { return n.slot }

// Bytes returns the field's raw bytes. The slice aliases the decoded
// buffer and is capped at the field end.
func (n Node) Bytes() []byte {
	return n.view.data[n.slot.Offset:n.slot.End():n.slot.End()]
}

// Value decodes the field.
func (n Node) Value() (interface{}, error) {
	return n.view.decode(n.slot)
}

// Lookup resolves a path relative to n.
func (n Node) Lookup(path string) (Node, error) {
	s, err := n.slot.Resolve(path)
	if err != nil {
		return Node{}, err
	}
	return Node{view: n.view, slot: s}, nil
}

// Get decodes the field at a path relative to n.
func (n Node) Get(path string) (interface{}, error) {
	c, err := n.Lookup(path)
	if err != nil {
		return nil, err
	}
	return c.Value()
}

// Field returns a direct field of a record node.
func (n Node) Field(name string) (Node, error) {
	s, err := n.slot.Field(name)
	if err != nil {
		return Node{}, err
	}
	return Node{view: n.view, slot: s}, nil
}

// Index returns an element of an array node. Fewer indices than
// dimensions select a sub-array.
func (n Node) Index(idx ...int) (Node, error) {
	s, err := n.slot.Index(idx...)
	if err != nil {
		return Node{}, err
	}
	return Node{view: n.view, slot: s}, nil
}

// Len returns the outer dimension of an array or the field count of a
// record. Scalars have length zero.
func (n Node) Len() int {
	switch n.slot.Type.Kind() {
	case schema.KindArray:
		return n.slot.Type.Dims()[0]
	case schema.KindRecord:
		return n.slot.Type.NumFields()
	default:
		return 0
	}
}

// Children returns the direct fields of a record node in declaration
// order, or nil for other kinds.
func (n Node) Children() []Node {
	slots := schema.Layout(n.slot.Type)
	if slots == nil {
		return nil
	}
	out := make([]Node, len(slots))
	for i, s := range slots {
		out[i] = Node{view: n.view, slot: schema.Slot{
			Path:   schema.JoinPath(n.slot.Path, s.Name),
			Name:   s.Name,
			Offset: n.slot.Offset + s.Offset,
			Size:   s.Size,
			Type:   s.Type,
			Depth:  n.slot.Depth + 1,
		}}
	}
	return out
}

func (n Node) mismatch(want string) error {
	return fmt.Errorf("%w: %s is %s, not %s", ErrKindMismatch, displayPath(n.slot.Path), n.slot.Type, want)
}

// Uint decodes an unsigned integer field.
func (n Node) Uint() (uint64, error) {
	if n.Kind() != schema.KindUint {
		return 0, n.mismatch("an unsigned integer")
	}
	return n.view.reader(n.slot.Offset).ReadUintN(n.slot.Size)
}

// Int decodes a signed integer field.
func (n Node) Int() (int64, error) {
	if n.Kind() != schema.KindInt {
		return 0, n.mismatch("a signed integer")
	}
	return n.view.reader(n.slot.Offset).ReadIntN(n.slot.Size)
}

// Float decodes a floating-point field, widening float32 to float64.
func (n Node) Float() (float64, error) {
	if n.Kind() != schema.KindFloat {
		return 0, n.mismatch("a float")
	}
	r := n.view.reader(n.slot.Offset)
	if n.slot.Size == 4 {
		f, err := r.ReadFloat32()
		return float64(f), err
	}
	return r.ReadFloat64()
}

// Bool decodes a boolean field. Any non-zero byte is true.
func (n Node) Bool() (bool, error) {
	if n.Kind() != schema.KindBool {
		return false, n.mismatch("a bool")
	}
	b, err := n.view.reader(n.slot.Offset).ReadUint8()
	return b != 0, err
}

// Text decodes a text field with the view's padding policy.
func (n Node) Text() (string, error) {
	if n.Kind() != schema.KindText {
		return "", n.mismatch("text")
	}
	return dtype.TrimText(n.Bytes(), dtype.EffectivePadding(n.slot.Type, n.view.opts.padding)), nil
}
