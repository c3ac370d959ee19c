package header

import "github.com/robert-malhotra/go-seviri/schema"

// Option configures decoding.
type Option func(*options)

type options struct {
	padding schema.Padding
	strict  bool
}

func defaultOptions() *options {
	return &options{
		padding: schema.PadDefault,
	}
}

// WithTextPadding sets the trim policy for text fields that do not
// declare their own.
func WithTextPadding(p schema.Padding) Option {
	return func(o *options) {
		o.padding = p
	}
}

// WithStrictLength rejects buffers longer than the header.
func WithStrictLength(strict bool) Option {
	return func(o *options) {
		o.strict = strict
	}
}
