// Package schema describes fixed-layout binary records.
//
// A schema is a tree of [Type] descriptors. Each descriptor is one of
//
//	Kind        | Size in bytes
//	------------|------------------------------------------
//	Uint, Int   | width (1, 2, 4 or 8)
//	Float       | width (4 or 8)
//	Bool        | 1
//	Text        | fixed character count, one byte each
//	Array       | size(elem) * product(dims)
//	Record      | sum of the field sizes, packed in order
//
// Nothing in a buffer describes itself: the byte offset of every field is
// implied by field order and the sizes of the fields before it. There is no
// alignment or padding between fields.
//
// # Declaring a Schema
//
// Types are declared with constructor functions and assembled by a
// [Builder]. Sub-layouts that recur throughout a record are registered once
// with [Builder.Define] and referenced with [Ref]:
//
//	b := schema.NewBuilder()
//	b.Define("TimeCdsShort", schema.Record(
//		schema.F("Day", schema.Uint16()),
//		schema.F("MilliSeconds", schema.Uint32()),
//	))
//	s, err := b.Build("Header", schema.Record(
//		schema.F("Start", schema.Ref("TimeCdsShort")),
//		schema.F("End", schema.Ref("TimeCdsShort")),
//	))
//
// Build validates the whole tree and reports every problem at once
// (non-positive widths or dimensions, unresolved or cyclic references,
// duplicate field names). Every reference to the same name resolves to the
// same interned *Type.
//
// # Addressing Fields
//
// Paths are dot-separated field names. Array elements are selected with
// bracketed indices, one per dimension, either as separate groups or as a
// comma-separated tuple:
//
//	SatelliteStatus.Orbit.OrbitPolynomial[3].X[7]
//	CelestialEvents.CelestialBodiesPosition.StarEphemeris[2][5].StarId
//	CelestialEvents.CelestialBodiesPosition.StarEphemeris[2,5].StarId
//
// Arrays are stored row-major: the first declared dimension is outermost.
//
// # Key Functions
//
//   - [SizeOf]: structural byte size of a type
//   - [Layout]: offsets of a record's direct fields
//   - [Flatten]: depth-first path-to-offset index of nested records
//   - [Resolve]: offset, size and type of a concrete path
//   - [ParsePath]: splits a path into [Segment] values
package schema
