package schema

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies the variant of a Type.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindUint         // Unsigned integer
	KindInt          // Two's complement signed integer
	KindFloat        // IEEE 754 floating-point
	KindBool         // Single byte, zero is false
	KindText         // Fixed-length character data
	KindArray        // Fixed-length, possibly multi-dimensional array
	KindRecord       // Ordered field list
	KindRef          // Reference to a named layout; only present before Build
)

var kindNames = [...]string{
	KindInvalid: "invalid",
	KindUint:    "uint",
	KindInt:     "int",
	KindFloat:   "float",
	KindBool:    "bool",
	KindText:    "text",
	KindArray:   "array",
	KindRecord:  "record",
	KindRef:     "ref",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// IsScalar reports whether values of this kind are decoded as a single Go value.
func (k Kind) IsScalar() bool {
	switch k {
	case KindUint, KindInt, KindFloat, KindBool, KindText:
		return true
	}
	return false
}

// Padding selects how trailing fill is removed from decoded text.
type Padding uint8

const (
	PadDefault     Padding = iota // Defer to the decoder's policy
	PadNullOrSpace                // Strip trailing NUL and space bytes
	PadNullTerm                   // Cut at the first NUL
	PadNullPad                    // Strip trailing NUL bytes
	PadSpacePad                   // Strip trailing space bytes
	PadNone                       // Keep all bytes
)

var paddingNames = [...]string{
	PadDefault:     "default",
	PadNullOrSpace: "null-or-space",
	PadNullTerm:    "null-term",
	PadNullPad:     "null-pad",
	PadSpacePad:    "space-pad",
	PadNone:        "none",
}

func (p Padding) String() string {
	if int(p) < len(paddingNames) {
		return paddingNames[p]
	}
	return "Padding(" + strconv.Itoa(int(p)) + ")"
}

// ParsePadding parses the names produced by Padding.String.
func ParsePadding(s string) (Padding, error) {
	for i, name := range paddingNames {
		if strings.EqualFold(s, name) {
			return Padding(i), nil
		}
	}
	return PadDefault, fmt.Errorf("unknown text padding %q", s)
}

// Type is an immutable layout descriptor.
//
// Types are created with the constructor functions in this package and become
// fully resolved when passed through Builder.Build. A resolved Type never
// contains KindRef nodes and caches its size and field offsets.
type Type struct {
	kind    Kind
	width   int
	padding Padding

	// Array
	elem *Type
	dims []int

	// Record
	name    string
	fields  []Field
	offsets []int
	byName  map[string]int

	// Ref
	ref string

	size     int
	resolved bool
}

// Field is a named member of a record.
type Field struct {
	Name string
	Type *Type
}

// F declares a record field.
func F(name string, t *Type) Field {
	return Field{Name: name, Type: t}
}

func scalar(kind Kind, width int) *Type {
	return &Type{kind: kind, width: width, size: width, resolved: true}
}

var (
	uint8Type   = scalar(KindUint, 1)
	uint16Type  = scalar(KindUint, 2)
	uint32Type  = scalar(KindUint, 4)
	uint64Type  = scalar(KindUint, 8)
	int8Type    = scalar(KindInt, 1)
	int16Type   = scalar(KindInt, 2)
	int32Type   = scalar(KindInt, 4)
	int64Type   = scalar(KindInt, 8)
	float32Type = scalar(KindFloat, 4)
	float64Type = scalar(KindFloat, 8)
	boolType    = scalar(KindBool, 1)
)

func Uint8() *Type   { return uint8Type }
func Uint16() *Type  { return uint16Type }
func Uint32() *Type  { return uint32Type }
func Uint64() *Type  { return uint64Type }
func Int8() *Type    { return int8Type }
func Int16() *Type   { return int16Type }
func Int32() *Type   { return int32Type }
func Int64() *Type   { return int64Type }
func Float32() *Type { return float32Type }
func Float64() *Type { return float64Type }
func Bool() *Type    { return boolType }

// Scalar declares a numeric or boolean scalar of the given byte width.
// Unsupported combinations are reported by Builder.Build.
func Scalar(kind Kind, width int) *Type {
	return &Type{kind: kind, width: width, size: width}
}

// Text declares a fixed-length text field of n bytes.
func Text(n int) *Type {
	return TextPadded(n, PadDefault)
}

// TextPadded declares a fixed-length text field with an explicit padding policy.
func TextPadded(n int, pad Padding) *Type {
	return &Type{kind: KindText, width: n, padding: pad, size: n}
}

// Array declares a fixed-length array of elem. The first dimension is outermost.
func Array(elem *Type, dims ...int) *Type {
	return &Type{kind: KindArray, elem: elem, dims: append([]int(nil), dims...)}
}

// Record declares an anonymous record with the given fields in layout order.
func Record(fields ...Field) *Type {
	return &Type{kind: KindRecord, fields: append([]Field(nil), fields...)}
}

// Ref declares a reference to a layout registered with Builder.Define.
func Ref(name string) *Type {
	return &Type{kind: KindRef, ref: name}
}

// Kind returns the variant of the type.
func (t *Type) Kind() Kind { return t.kind }

// Width returns the byte width of a scalar or the length of a text field.
func (t *Type) Width() int { return t.width }

// Padding returns the declared text padding policy.
func (t *Type) Padding() Padding { return t.padding }

// Elem returns the element type of an array.
func (t *Type) Elem() *Type { return t.elem }

// Dims returns a copy of the array dimensions.
func (t *Type) Dims() []int { return append([]int(nil), t.dims...) }

// Rank returns the number of array dimensions.
func (t *Type) Rank() int { return len(t.dims) }

// Len returns the total element count of an array.
func (t *Type) Len() int {
	n := 1
	for _, d := range t.dims {
		n *= d
	}
	return n
}

// Name returns the layout name for named records, or "" for anonymous ones.
func (t *Type) Name() string { return t.name }

// RefName returns the referenced layout name of an unresolved reference.
func (t *Type) RefName() string { return t.ref }

// Fields returns a copy of the record's fields.
func (t *Type) Fields() []Field { return append([]Field(nil), t.fields...) }

// NumFields returns the number of record fields.
func (t *Type) NumFields() int { return len(t.fields) }

// Field returns the named field of a record.
func (t *Type) Field(name string) (Field, bool) {
	i, ok := t.fieldIndex(name)
	if !ok {
		return Field{}, false
	}
	return t.fields[i], true
}

// FieldOffset returns the byte offset of the named field within the record.
func (t *Type) FieldOffset(name string) (int, bool) {
	i, ok := t.fieldIndex(name)
	if !ok {
		return 0, false
	}
	if t.offsets != nil {
		return t.offsets[i], true
	}
	off := 0
	for _, f := range t.fields[:i] {
		off += SizeOf(f.Type)
	}
	return off, true
}

func (t *Type) fieldIndex(name string) (int, bool) {
	if t.kind != KindRecord {
		return 0, false
	}
	if t.byName != nil {
		i, ok := t.byName[name]
		return i, ok
	}
	for i, f := range t.fields {
		if f.Name == name {
			return i, true
		}
	}
	return 0, false
}

// Size returns the byte size of the type. See SizeOf.
func (t *Type) Size() int { return SizeOf(t) }

// Resolved reports whether the type came out of Builder.Build (or is a predefined scalar).
func (t *Type) Resolved() bool { return t.resolved }

// String returns a compact description such as "float64[100][8]" or "TimeCdsShort".
func (t *Type) String() string {
	if t == nil {
		return "<nil>"
	}
	switch t.kind {
	case KindUint, KindInt, KindFloat:
		return t.kind.String() + strconv.Itoa(t.width*8)
	case KindBool:
		return "bool"
	case KindText:
		return "text[" + strconv.Itoa(t.width) + "]"
	case KindArray:
		var sb strings.Builder
		sb.WriteString(t.elem.String())
		for _, d := range t.dims {
			sb.WriteString("[" + strconv.Itoa(d) + "]")
		}
		return sb.String()
	case KindRecord:
		if t.name != "" {
			return t.name
		}
		return "record"
	case KindRef:
		return "ref(" + t.ref + ")"
	default:
		return t.kind.String()
	}
}

// SizeOf returns the structural byte size of t. It needs no input data.
//
// Resolved types answer from a cached value. Unresolved references contribute
// zero, so callers should size declared types only after Build.
func SizeOf(t *Type) int {
	if t == nil {
		return 0
	}
	if t.resolved {
		return t.size
	}
	switch t.kind {
	case KindUint, KindInt, KindFloat, KindBool, KindText:
		return t.width
	case KindArray:
		return SizeOf(t.elem) * t.Len()
	case KindRecord:
		total := 0
		for _, f := range t.fields {
			total += SizeOf(f.Type)
		}
		return total
	default:
		return 0
	}
}
