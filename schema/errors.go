package schema

import (
	"errors"
	"fmt"
)

// Common errors
var (
	ErrConfiguration   = errors.New("invalid schema configuration")
	ErrUnknownField    = errors.New("unknown field")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrInvalidPath     = errors.New("invalid path")
)

// ConfigError describes one problem found while building a schema.
type ConfigError struct {
	Path   string
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Path == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Reason)
}

func (e *ConfigError) Unwrap() error { return ErrConfiguration }

// LookupError reports a field path that cannot be resolved.
// Segment names the path component that failed.
type LookupError struct {
	Path    string
	Segment string
	Err     error
	Detail  string
}

func (e *LookupError) Error() string {
	msg := fmt.Sprintf("lookup %q: %v", e.Path, e.Err)
	if e.Segment != "" {
		msg += fmt.Sprintf(" at %q", e.Segment)
	}
	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}
	return msg
}

func (e *LookupError) Unwrap() error { return e.Err }
