package dtype

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/elliotchance/orderedmap/v3"

	"github.com/robert-malhotra/go-seviri/schema"
)

// Conversion errors
var (
	ErrKindMismatch = errors.New("value does not match field kind")
	ErrValueRange   = errors.New("value out of range for field")
)

// Map is the decoded form of a record.
type Map = orderedmap.OrderedMap[string, interface{}]

// NewMap returns an empty record map sized for n fields.
func NewMap(n int) *Map {
	return orderedmap.NewOrderedMapWithCapacity[string, interface{}](n)
}

var mapType = reflect.TypeOf((*Map)(nil))

// GoType returns the Go reflect.Type that corresponds to the given schema type.
func GoType(t *schema.Type) (reflect.Type, error) {
	if t == nil {
		return nil, fmt.Errorf("nil type")
	}

	switch t.Kind() {
	case schema.KindUint, schema.KindInt:
		return goTypeInteger(t)
	case schema.KindFloat:
		return goTypeFloat(t)
	case schema.KindBool:
		return reflect.TypeOf(false), nil
	case schema.KindText:
		return reflect.TypeOf(""), nil
	case schema.KindArray:
		return goTypeArray(t)
	case schema.KindRecord:
		return mapType, nil
	default:
		return nil, fmt.Errorf("unsupported type kind: %s", t.Kind())
	}
}

func goTypeInteger(t *schema.Type) (reflect.Type, error) {
	signed := t.Kind() == schema.KindInt

	switch t.Width() {
	case 1:
		if signed {
			return reflect.TypeOf(int8(0)), nil
		}
		return reflect.TypeOf(uint8(0)), nil
	case 2:
		if signed {
			return reflect.TypeOf(int16(0)), nil
		}
		return reflect.TypeOf(uint16(0)), nil
	case 4:
		if signed {
			return reflect.TypeOf(int32(0)), nil
		}
		return reflect.TypeOf(uint32(0)), nil
	case 8:
		if signed {
			return reflect.TypeOf(int64(0)), nil
		}
		return reflect.TypeOf(uint64(0)), nil
	default:
		return nil, fmt.Errorf("unsupported integer width: %d", t.Width())
	}
}

func goTypeFloat(t *schema.Type) (reflect.Type, error) {
	switch t.Width() {
	case 4:
		return reflect.TypeOf(float32(0)), nil
	case 8:
		return reflect.TypeOf(float64(0)), nil
	default:
		return nil, fmt.Errorf("unsupported float width: %d", t.Width())
	}
}

func goTypeArray(t *schema.Type) (reflect.Type, error) {
	if t.Elem() == nil {
		return nil, fmt.Errorf("array type has no element type")
	}
	if t.Rank() == 0 {
		return nil, fmt.Errorf("array type has no dimensions")
	}

	elemType, err := GoType(t.Elem())
	if err != nil {
		return nil, err
	}
	return sliceType(elemType, t.Rank()), nil
}

func sliceType(elem reflect.Type, rank int) reflect.Type {
	result := elem
	for i := 0; i < rank; i++ {
		result = reflect.SliceOf(result)
	}
	return result
}

// EffectivePadding returns the padding policy applied to a text field:
// the field's own policy if declared, else fallback, else PadNullOrSpace.
func EffectivePadding(t *schema.Type, fallback schema.Padding) schema.Padding {
	if p := t.Padding(); p != schema.PadDefault {
		return p
	}
	if fallback != schema.PadDefault {
		return fallback
	}
	return schema.PadNullOrSpace
}

// TrimText removes trailing fill from fixed-length text according to pad.
func TrimText(b []byte, pad schema.Padding) string {
	end := len(b)
	switch pad {
	case schema.PadNone:
	case schema.PadNullTerm:
		for j := 0; j < len(b); j++ {
			if b[j] == 0 {
				end = j
				break
			}
		}
	case schema.PadNullPad:
		for end > 0 && b[end-1] == 0 {
			end--
		}
	case schema.PadSpacePad:
		for end > 0 && b[end-1] == ' ' {
			end--
		}
	default:
		for end > 0 && (b[end-1] == 0 || b[end-1] == ' ') {
			end--
		}
	}
	return string(b[:end])
}

// FillByte returns the byte used to pad encoded text under pad.
func FillByte(pad schema.Padding) byte {
	if pad == schema.PadSpacePad {
		return ' '
	}
	return 0
}
