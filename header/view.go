package header

import (
	"encoding/binary"
	"fmt"

	"github.com/elliotchance/orderedmap/v3"
	logging "github.com/ipfs/go-log/v2"

	binpkg "github.com/robert-malhotra/go-seviri/internal/binary"
	"github.com/robert-malhotra/go-seviri/internal/dtype"
	"github.com/robert-malhotra/go-seviri/schema"
)

var log = logging.Logger("seviri/header")

// Map is the decoded form of a record: field names in declaration order.
type Map = orderedmap.OrderedMap[string, interface{}]

// View is a read-only decoded header. It borrows the input buffer and
// decodes values on access; the buffer must not be modified while the
// view is in use.
type View struct {
	schema *schema.Schema
	data   []byte
	order  binary.ByteOrder
	opts   *options
}

// Decode validates data against s and returns a view over it.
// data must hold at least s.Size() bytes; extra bytes are ignored unless
// WithStrictLength is set.
func Decode(s *schema.Schema, data []byte, order binary.ByteOrder, opts ...Option) (*View, error) {
	if s == nil {
		return nil, ErrNilSchema
	}
	if order == nil {
		return nil, ErrNilByteOrder
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	size := s.Size()
	if len(data) < size {
		return nil, &TruncatedError{Required: size, Actual: len(data)}
	}
	if o.strict && len(data) > size {
		return nil, fmt.Errorf("%w: %d bytes, header is %d", ErrTrailingData, len(data), size)
	}

	log.Debugf("decoding %s: %d of %d bytes", s.Name(), size, len(data))
	return &View{
		schema: s,
		data:   data[:size:size],
		order:  order,
		opts:   o,
	}, nil
}

// Schema returns the schema the view was decoded with.
func (v *View) Schema() *schema.Schema { return v.schema }

// Bytes returns the viewed bytes (exactly Size() long).
func (v *View) Bytes() []byte { return v.data }

// Size returns the header size in bytes.
func (v *View) Size() int { return len(v.data) }

// ByteOrder returns the byte order used for numeric fields.
func (v *View) ByteOrder() binary.ByteOrder { return v.order }

// Root returns the node covering the whole header.
func (v *View) Root() Node {
	return Node{view: v, slot: schema.RootSlot(v.schema.Root())}
}

// Lookup returns a lazy node for the field at path.
func (v *View) Lookup(path string) (Node, error) {
	return v.Root().Lookup(path)
}

// Get decodes the field at path.
//
// Scalars decode to their Go type (uint8..uint64, int8..int64, float32,
// float64, bool, string). Arrays decode to nested slices, outermost
// dimension first. Records decode to *Map.
func (v *View) Get(path string) (interface{}, error) {
	n, err := v.Lookup(path)
	if err != nil {
		return nil, err
	}
	return n.Value()
}

// Tree decodes the whole header.
func (v *View) Tree() (*Map, error) {
	val, err := v.Root().Value()
	if err != nil {
		return nil, err
	}
	return val.(*Map), nil
}

func (v *View) reader(offset int) *binpkg.Reader {
	return binpkg.NewReader(v.data, v.order).At(offset)
}

func (v *View) decode(s schema.Slot) (interface{}, error) {
	val, err := dtype.Decode(s.Type, v.reader(s.Offset), v.opts.padding)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", displayPath(s.Path), err)
	}
	return val, nil
}

func displayPath(p string) string {
	if p == "" {
		return "root"
	}
	return p
}
