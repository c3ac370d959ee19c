// Package dtype converts between schema types and Go values.
//
// This package bridges the layout model in package schema and Go's type
// system, providing functionality to:
//
//   - Determine the Go type corresponding to a schema type
//   - Decode raw header bytes to Go values
//   - Encode Go values into raw header bytes
//   - Apply text padding policies
//
// # Type Mapping Strategy
//
// Schema types are mapped to Go types as follows:
//
//	Schema Kind  | Go Type
//	-------------|------------------------------------------------
//	Uint         | uint8/16/32/64 based on width
//	Int          | int8/16/32/64 based on width
//	Float        | float32 (4 bytes) or float64 (8 bytes)
//	Bool         | bool
//	Text         | string, trailing fill removed per padding policy
//	Array        | nested slices, one level per dimension
//	Record       | *orderedmap.OrderedMap[string, interface{}]
//
// Records decode to ordered maps so that iteration follows declaration
// order, which is also byte order.
//
// # Reading Data
//
// Use [Decode] with a [binary.Reader] positioned at the value:
//
//	r := binary.NewReader(buf, binary.BigEndian).At(offset)
//	v, err := dtype.Decode(slot.Type, r, schema.PadNullOrSpace)
//
// # Writing Data
//
// Use [Encode] to write a Go value at a writer's position. Numeric values
// are accepted from any Go numeric kind and range-checked against the
// field width:
//
//	err := dtype.Encode(slot.Type, w, 3600)
//
// # Key Functions
//
//   - [GoType]: Returns the reflect.Type for a schema type
//   - [Decode]: Converts bytes to Go values
//   - [Encode]: Converts Go values to bytes
//   - [TrimText]: Removes trailing fill from text
package dtype
