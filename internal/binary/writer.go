package binary

import (
	"encoding/binary"
	"errors"
	"io"
	"math"
)

// ErrInvalidSize is returned when an integer width other than 1, 2, 4 or 8 is requested.
var ErrInvalidSize = errors.New("invalid integer size: must be 1, 2, 4, or 8")

// Writer writes fixed-width values into a caller-owned byte slice.
// The slice is never grown; writes past its end fail.
type Writer struct {
	buf   []byte
	order binary.ByteOrder
	pos   int
}

// NewWriter creates a writer over buf using the given byte order.
func NewWriter(buf []byte, order binary.ByteOrder) *Writer {
	return &Writer{
		buf:   buf,
		order: order,
		pos:   0,
	}
}

// Skip advances the position by n bytes without writing.
func (w *Writer) Skip(n int) {
	w.pos += n
}

// WriteBytes copies data to the current position.
func (w *Writer) WriteBytes(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	if w.pos < 0 || w.pos+len(data) > len(w.buf) {
		return io.ErrShortWrite
	}
	w.pos += copy(w.buf[w.pos:], data)
	return nil
}

// WriteUint8 writes an unsigned 8-bit integer.
func (w *Writer) WriteUint8(v uint8) error {
	return w.WriteBytes([]byte{v})
}

// WriteUint16 writes an unsigned 16-bit integer.
func (w *Writer) WriteUint16(v uint16) error {
	buf := make([]byte, 2)
	w.order.PutUint16(buf, v)
	return w.WriteBytes(buf)
}

// WriteUint32 writes an unsigned 32-bit integer.
func (w *Writer) WriteUint32(v uint32) error {
	buf := make([]byte, 4)
	w.order.PutUint32(buf, v)
	return w.WriteBytes(buf)
}

// WriteUint64 writes an unsigned 64-bit integer.
func (w *Writer) WriteUint64(v uint64) error {
	buf := make([]byte, 8)
	w.order.PutUint64(buf, v)
	return w.WriteBytes(buf)
}

// WriteUintN writes the low n bytes of v (n is 1, 2, 4, or 8).
func (w *Writer) WriteUintN(v uint64, n int) error {
	switch n {
	case 1:
		return w.WriteUint8(uint8(v))
	case 2:
		return w.WriteUint16(uint16(v))
	case 4:
		return w.WriteUint32(uint32(v))
	case 8:
		return w.WriteUint64(v)
	default:
		return ErrInvalidSize
	}
}

// WriteFloat32 writes an IEEE 754 single-precision value.
func (w *Writer) WriteFloat32(v float32) error {
	return w.WriteUint32(math.Float32bits(v))
}

// WriteFloat64 writes an IEEE 754 double-precision value.
func (w *Writer) WriteFloat64(v float64) error {
	return w.WriteUint64(math.Float64bits(v))
}

// Fill writes n copies of b.
func (w *Writer) Fill(b byte, n int) error {
	if n <= 0 {
		return nil
	}
	if w.pos < 0 || w.pos+n > len(w.buf) {
		return io.ErrShortWrite
	}
	for i := 0; i < n; i++ {
		w.buf[w.pos+i] = b
	}
	w.pos += n
	return nil
}
