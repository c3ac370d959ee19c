package dtype

import (
	"fmt"
	"math"
	"reflect"

	"github.com/robert-malhotra/go-seviri/internal/binary"
	"github.com/robert-malhotra/go-seviri/schema"
)

// Encode writes v as type t at the writer's position.
//
// Integers accept any Go integer kind and are range-checked against the
// field width. Floats accept integer or floating-point values. Text accepts
// string or []byte no longer than the field; the remainder is filled per
// the field's padding policy. Arrays accept slices or arrays whose lengths
// match the declared dimensions. Records accept *Map or map[string]interface{};
// fields missing from the map are skipped and keep their existing bytes.
func Encode(t *schema.Type, w *binary.Writer, v interface{}) error {
	if t == nil {
		return fmt.Errorf("nil type")
	}

	switch t.Kind() {
	case schema.KindUint, schema.KindInt, schema.KindFloat, schema.KindBool, schema.KindText:
		return EncodeScalar(t, w, v)
	case schema.KindArray:
		return encodeArray(t.Elem(), t.Dims(), w, reflect.ValueOf(v))
	case schema.KindRecord:
		return encodeRecord(t, w, v)
	default:
		return fmt.Errorf("unsupported type kind for encoding: %s", t.Kind())
	}
}

// EncodeScalar writes a single scalar or text value.
func EncodeScalar(t *schema.Type, w *binary.Writer, v interface{}) error {
	switch t.Kind() {
	case schema.KindUint:
		u, err := toUint(v, t)
		if err != nil {
			return err
		}
		return w.WriteUintN(u, t.Width())
	case schema.KindInt:
		i, err := toInt(v, t)
		if err != nil {
			return err
		}
		return w.WriteUintN(uint64(i), t.Width())
	case schema.KindFloat:
		return encodeFloat(t, w, v)
	case schema.KindBool:
		b, ok := v.(bool)
		if !ok {
			return mismatch(v, t)
		}
		if b {
			return w.WriteUint8(1)
		}
		return w.WriteUint8(0)
	case schema.KindText:
		return encodeText(t, w, v)
	default:
		return fmt.Errorf("%s is not a scalar kind", t.Kind())
	}
}

func mismatch(v interface{}, t *schema.Type) error {
	return fmt.Errorf("%w: cannot encode %T as %s", ErrKindMismatch, v, t)
}

func toUint(v interface{}, t *schema.Type) (uint64, error) {
	rv := reflect.ValueOf(v)
	var u uint64
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if rv.Int() < 0 {
			return 0, fmt.Errorf("%w: %d is negative for %s", ErrValueRange, rv.Int(), t)
		}
		u = uint64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u = rv.Uint()
	default:
		return 0, mismatch(v, t)
	}
	if bits := t.Width() * 8; bits < 64 && u > (uint64(1)<<bits)-1 {
		return 0, fmt.Errorf("%w: %d overflows %s", ErrValueRange, u, t)
	}
	return u, nil
}

func toInt(v interface{}, t *schema.Type) (int64, error) {
	rv := reflect.ValueOf(v)
	var i int64
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i = rv.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if rv.Uint() > math.MaxInt64 {
			return 0, fmt.Errorf("%w: %d overflows %s", ErrValueRange, rv.Uint(), t)
		}
		i = int64(rv.Uint())
	default:
		return 0, mismatch(v, t)
	}
	if bits := t.Width() * 8; bits < 64 {
		lo, hi := -(int64(1) << (bits - 1)), (int64(1)<<(bits-1))-1
		if i < lo || i > hi {
			return 0, fmt.Errorf("%w: %d overflows %s", ErrValueRange, i, t)
		}
	}
	return i, nil
}

func encodeFloat(t *schema.Type, w *binary.Writer, v interface{}) error {
	rv := reflect.ValueOf(v)
	var f float64
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		f = rv.Float()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		f = float64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		f = float64(rv.Uint())
	default:
		return mismatch(v, t)
	}

	switch t.Width() {
	case 4:
		if !math.IsInf(f, 0) && !math.IsNaN(f) && math.Abs(f) > math.MaxFloat32 {
			return fmt.Errorf("%w: %g overflows %s", ErrValueRange, f, t)
		}
		return w.WriteFloat32(float32(f))
	case 8:
		return w.WriteFloat64(f)
	default:
		return fmt.Errorf("unsupported float width: %d", t.Width())
	}
}

func encodeText(t *schema.Type, w *binary.Writer, v interface{}) error {
	var b []byte
	switch s := v.(type) {
	case string:
		b = []byte(s)
	case []byte:
		b = s
	default:
		return mismatch(v, t)
	}
	if len(b) > t.Width() {
		return fmt.Errorf("%w: %d bytes do not fit %s", ErrValueRange, len(b), t)
	}
	if err := w.WriteBytes(b); err != nil {
		return err
	}
	return w.Fill(FillByte(EffectivePadding(t, schema.PadDefault)), t.Width()-len(b))
}

func encodeArray(elem *schema.Type, dims []int, w *binary.Writer, rv reflect.Value) error {
	for rv.Kind() == reflect.Interface || rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return fmt.Errorf("%w: nil value for array", ErrKindMismatch)
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return fmt.Errorf("%w: cannot encode %s as array", ErrKindMismatch, rv.Kind())
	}
	if rv.Len() != dims[0] {
		return fmt.Errorf("%w: array length %d, field dimension %d", ErrValueRange, rv.Len(), dims[0])
	}

	for i := 0; i < dims[0]; i++ {
		var err error
		if len(dims) > 1 {
			err = encodeArray(elem, dims[1:], w, rv.Index(i))
		} else {
			err = Encode(elem, w, rv.Index(i).Interface())
		}
		if err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
	}
	return nil
}

func encodeRecord(t *schema.Type, w *binary.Writer, v interface{}) error {
	var get func(string) (interface{}, bool)
	switch m := v.(type) {
	case *Map:
		get = m.Get
	case map[string]interface{}:
		get = func(k string) (interface{}, bool) {
			val, ok := m[k]
			return val, ok
		}
	default:
		return mismatch(v, t)
	}

	for _, f := range t.Fields() {
		val, ok := get(f.Name)
		if !ok {
			w.Skip(f.Type.Size())
			continue
		}
		if err := Encode(f.Type, w, val); err != nil {
			return fmt.Errorf("encoding field %q: %w", f.Name, err)
		}
	}
	return nil
}
