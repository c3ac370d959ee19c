// Package header decodes fixed-layout binary headers described by a
// schema.Schema into typed Go values.
package header

import (
	"errors"
	"fmt"

	"github.com/robert-malhotra/go-seviri/internal/dtype"
	"github.com/robert-malhotra/go-seviri/schema"
)

// Common errors
var (
	ErrTruncatedInput = errors.New("truncated input")
	ErrTrailingData   = errors.New("input longer than header")
	ErrNilSchema      = errors.New("nil schema")
	ErrNilByteOrder   = errors.New("nil byte order")

	ErrUnknownField    = schema.ErrUnknownField
	ErrIndexOutOfRange = schema.ErrIndexOutOfRange
	ErrInvalidPath     = schema.ErrInvalidPath
	ErrKindMismatch    = dtype.ErrKindMismatch
	ErrValueRange      = dtype.ErrValueRange
)

// TruncatedError reports a buffer shorter than the schema requires.
type TruncatedError struct {
	Required int
	Actual   int
}

func (e *TruncatedError) Error() string {
	return fmt.Sprintf("truncated input: need %d bytes, have %d", e.Required, e.Actual)
}

func (e *TruncatedError) Unwrap() error { return ErrTruncatedInput }
