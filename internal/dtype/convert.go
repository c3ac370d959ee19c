package dtype

// Conversion Strategy
//
// Decode walks a schema type depth-first while a binary.Reader advances
// through the buffer. Because layouts are packed and arrays are row-major,
// the walk order is exactly byte order and no offset arithmetic is needed
// here; callers position the reader at the slot offset first.
//
//   - Scalars: read at their declared width with the reader's byte order
//   - Text: borrowed bytes trimmed by the effective padding policy
//   - Arrays: typed nested slices built with reflect, outer dimension first
//   - Records: ordered maps keyed by field name

import (
	"fmt"
	"io"
	"reflect"

	"github.com/robert-malhotra/go-seviri/internal/binary"
	"github.com/robert-malhotra/go-seviri/schema"
)

// Decode reads a value of type t from r. Text fields without a declared
// policy use pad.
func Decode(t *schema.Type, r *binary.Reader, pad schema.Padding) (interface{}, error) {
	if t == nil {
		return nil, fmt.Errorf("nil type")
	}

	switch t.Kind() {
	case schema.KindUint, schema.KindInt, schema.KindFloat, schema.KindBool, schema.KindText:
		return DecodeScalar(t, r, pad)
	}

	// Composite values are checked up front so a short buffer fails
	// before any slices or maps are allocated.
	if need, have := t.Size(), r.Remaining(); need > have {
		return nil, fmt.Errorf("%s needs %d bytes, %d remain: %w", t.Kind(), need, have, io.ErrUnexpectedEOF)
	}

	switch t.Kind() {
	case schema.KindArray:
		v, err := decodeArray(t.Elem(), t.Dims(), r, pad)
		if err != nil {
			return nil, err
		}
		return v.Interface(), nil
	case schema.KindRecord:
		return decodeRecord(t, r, pad)
	default:
		return nil, fmt.Errorf("unsupported type kind for decoding: %s", t.Kind())
	}
}

// DecodeScalar reads a single scalar or text value.
func DecodeScalar(t *schema.Type, r *binary.Reader, pad schema.Padding) (interface{}, error) {
	switch t.Kind() {
	case schema.KindUint:
		v, err := r.ReadUintN(t.Width())
		if err != nil {
			return nil, err
		}
		switch t.Width() {
		case 1:
			return uint8(v), nil
		case 2:
			return uint16(v), nil
		case 4:
			return uint32(v), nil
		default:
			return v, nil
		}
	case schema.KindInt:
		v, err := r.ReadIntN(t.Width())
		if err != nil {
			return nil, err
		}
		switch t.Width() {
		case 1:
			return int8(v), nil
		case 2:
			return int16(v), nil
		case 4:
			return int32(v), nil
		default:
			return v, nil
		}
	case schema.KindFloat:
		switch t.Width() {
		case 4:
			v, err := r.ReadFloat32()
			if err != nil {
				return nil, err
			}
			return v, nil
		case 8:
			v, err := r.ReadFloat64()
			if err != nil {
				return nil, err
			}
			return v, nil
		default:
			return nil, fmt.Errorf("unsupported float width: %d", t.Width())
		}
	case schema.KindBool:
		b, err := r.ReadUint8()
		if err != nil {
			return nil, err
		}
		return b != 0, nil
	case schema.KindText:
		b, err := r.ReadBytes(t.Width())
		if err != nil {
			return nil, err
		}
		return TrimText(b, EffectivePadding(t, pad)), nil
	default:
		return nil, fmt.Errorf("%s is not a scalar kind", t.Kind())
	}
}

func decodeArray(elem *schema.Type, dims []int, r *binary.Reader, pad schema.Padding) (reflect.Value, error) {
	elemType, err := GoType(elem)
	if err != nil {
		return reflect.Value{}, err
	}
	out := reflect.MakeSlice(sliceType(elemType, len(dims)), dims[0], dims[0])

	for i := 0; i < dims[0]; i++ {
		if len(dims) > 1 {
			sub, err := decodeArray(elem, dims[1:], r, pad)
			if err != nil {
				return reflect.Value{}, err
			}
			out.Index(i).Set(sub)
			continue
		}
		v, err := Decode(elem, r, pad)
		if err != nil {
			return reflect.Value{}, fmt.Errorf("element %d: %w", i, err)
		}
		out.Index(i).Set(reflect.ValueOf(v))
	}
	return out, nil
}

func decodeRecord(t *schema.Type, r *binary.Reader, pad schema.Padding) (*Map, error) {
	fields := t.Fields()
	result := NewMap(len(fields))
	for _, f := range fields {
		v, err := Decode(f.Type, r, pad)
		if err != nil {
			return nil, fmt.Errorf("decoding field %q: %w", f.Name, err)
		}
		result.Set(f.Name, v)
	}
	return result, nil
}
