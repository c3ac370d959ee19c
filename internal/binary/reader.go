// Package binary provides low-level byte-order-aware cursors over header buffers.
package binary

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// Reader reads fixed-width values from a borrowed byte slice.
// It never copies or modifies the underlying buffer.
type Reader struct {
	data  []byte
	order binary.ByteOrder
	pos   int
}

// NewReader creates a reader over data using the given byte order.
func NewReader(data []byte, order binary.ByteOrder) *Reader {
	return &Reader{
		data:  data,
		order: order,
		pos:   0,
	}
}

// At returns a new reader positioned at the given offset.
// The new reader shares the underlying slice but has independent position.
func (r *Reader) At(offset int) *Reader {
	return &Reader{
		data:  r.data,
		order: r.order,
		pos:   offset,
	}
}

// Remaining returns the number of bytes between the position and the end of the buffer.
func (r *Reader) Remaining() int {
	if r.pos >= len(r.data) {
		return 0
	}
	return len(r.data) - r.pos
}

// ReadBytes returns the next n bytes as a sub-slice of the buffer.
// The returned slice aliases the buffer and must not be modified.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("negative read length %d", n)
	}
	if r.pos < 0 || r.pos+n > len(r.data) {
		return nil, io.ErrUnexpectedEOF
	}
	buf := r.data[r.pos : r.pos+n : r.pos+n]
	r.pos += n
	return buf, nil
}

// ReadUint8 reads an unsigned 8-bit integer.
func (r *Reader) ReadUint8() (uint8, error) {
	buf, err := r.ReadBytes(1)
	if err != nil {
		return 0, err
	}
	return buf[0], nil
}

// ReadUint16 reads an unsigned 16-bit integer.
func (r *Reader) ReadUint16() (uint16, error) {
	buf, err := r.ReadBytes(2)
	if err != nil {
		return 0, err
	}
	return r.order.Uint16(buf), nil
}

// ReadUint32 reads an unsigned 32-bit integer.
func (r *Reader) ReadUint32() (uint32, error) {
	buf, err := r.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return r.order.Uint32(buf), nil
}

// ReadUint64 reads an unsigned 64-bit integer.
func (r *Reader) ReadUint64() (uint64, error) {
	buf, err := r.ReadBytes(8)
	if err != nil {
		return 0, err
	}
	return r.order.Uint64(buf), nil
}

// ReadUintN reads an unsigned integer of n bytes (1, 2, 4, or 8).
func (r *Reader) ReadUintN(n int) (uint64, error) {
	switch n {
	case 1:
		v, err := r.ReadUint8()
		return uint64(v), err
	case 2:
		v, err := r.ReadUint16()
		return uint64(v), err
	case 4:
		v, err := r.ReadUint32()
		return uint64(v), err
	case 8:
		return r.ReadUint64()
	default:
		return 0, ErrInvalidSize
	}
}

// ReadIntN reads a two's complement signed integer of n bytes (1, 2, 4, or 8).
func (r *Reader) ReadIntN(n int) (int64, error) {
	v, err := r.ReadUintN(n)
	if err != nil {
		return 0, err
	}
	switch n {
	case 1:
		return int64(int8(v)), nil
	case 2:
		return int64(int16(v)), nil
	case 4:
		return int64(int32(v)), nil
	default:
		return int64(v), nil
	}
}

// ReadFloat32 reads an IEEE 754 single-precision value.
func (r *Reader) ReadFloat32() (float32, error) {
	v, err := r.ReadUint32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

// ReadFloat64 reads an IEEE 754 double-precision value.
func (r *Reader) ReadFloat64() (float64, error) {
	v, err := r.ReadUint64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}
