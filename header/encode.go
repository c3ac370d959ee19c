package header

import (
	"encoding/binary"
	"fmt"

	binpkg "github.com/robert-malhotra/go-seviri/internal/binary"
	"github.com/robert-malhotra/go-seviri/internal/dtype"
	"github.com/robert-malhotra/go-seviri/schema"
)

// Encoder builds a header buffer field by field. Fields never set stay
// zero.
type Encoder struct {
	schema *schema.Schema
	buf    []byte
	order  binary.ByteOrder
}

// NewEncoder returns an encoder with a zeroed buffer of s.Size() bytes.
func NewEncoder(s *schema.Schema, order binary.ByteOrder) *Encoder {
	return &Encoder{
		schema: s,
		buf:    make([]byte, s.Size()),
		order:  order,
	}
}

// Set encodes value into the field at path. The value is checked against
// the field kind and range before any byte is written.
//
// Records take *Map or map[string]interface{}; absent fields are left
// unchanged. Arrays take slices (or Go arrays) matching the dimensions.
func (e *Encoder) Set(path string, value interface{}) error {
	s, err := e.schema.Resolve(path)
	if err != nil {
		return err
	}

	scratch := make([]byte, s.Size)
	copy(scratch, e.buf[s.Offset:s.End()])
	if err := dtype.Encode(s.Type, binpkg.NewWriter(scratch, e.order), value); err != nil {
		return fmt.Errorf("setting %s: %w", displayPath(s.Path), err)
	}
	copy(e.buf[s.Offset:], scratch)
	return nil
}

// MustSet is like Set but panics on error. It is meant for fixtures.
func (e *Encoder) MustSet(path string, value interface{}) *Encoder {
	if err := e.Set(path, value); err != nil {
		panic(err)
	}
	return e
}

// Bytes returns the encoded buffer. The slice is owned by the encoder.
func (e *Encoder) Bytes() []byte { return e.buf }

// View decodes the current buffer.
func (e *Encoder) View(opts ...Option) (*View, error) {
	return Decode(e.schema, e.buf, e.order, opts...)
}
