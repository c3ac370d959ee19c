package header

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/robert-malhotra/go-seviri/schema"
)

// testSchema is a small header with a shared time layout, a 2-D float
// grid, an array of records and text.
func testSchema(t *testing.T) *schema.Schema {
	t.Helper()
	b := schema.NewBuilder().
		Define("Time", schema.Record(
			schema.F("Day", schema.Uint16()),
			schema.F("MilliSeconds", schema.Uint32()),
		))
	s, err := b.Build("Test", schema.Record(
		schema.F("Version", schema.Uint8()),
		schema.F("Info", schema.Record(
			schema.F("Start", schema.Ref("Time")),
			schema.F("End", schema.Ref("Time")),
			schema.F("Name", schema.Text(8)),
			schema.F("Enabled", schema.Bool()),
			schema.F("Offset", schema.Int32()),
		)),
		schema.F("Grid", schema.Array(schema.Float64(), 3, 4)),
		schema.F("Points", schema.Array(schema.Record(
			schema.F("X", schema.Float32()),
			schema.F("Y", schema.Float32()),
		), 2)),
	))
	require.NoError(t, err)
	return s
}

func testBuffer(t *testing.T, s *schema.Schema) []byte {
	t.Helper()
	enc := NewEncoder(s, binary.BigEndian)
	require.NoError(t, enc.Set("Version", 3))
	require.NoError(t, enc.Set("Info.Start", map[string]interface{}{"Day": 21000, "MilliSeconds": 43200000}))
	require.NoError(t, enc.Set("Info.End.Day", 21001))
	require.NoError(t, enc.Set("Info.Name", "MSG4"))
	require.NoError(t, enc.Set("Info.Enabled", true))
	require.NoError(t, enc.Set("Info.Offset", -12))
	require.NoError(t, enc.Set("Grid[1]", []float64{1.5, 2.5, 3.5, 4.5}))
	require.NoError(t, enc.Set("Grid[2][3]", 99.0))
	require.NoError(t, enc.Set("Points[1].Y", float32(-0.25)))
	return enc.Bytes()
}

func TestDecodeSize(t *testing.T) {
	s := testSchema(t)
	assert.Equal(t, 1+(6+6+8+1+4)+12*8+2*8, s.Size())

	v, err := Decode(s, testBuffer(t, s), binary.BigEndian)
	require.NoError(t, err)
	assert.Equal(t, s.Size(), v.Size())
	assert.Len(t, v.Bytes(), s.Size())
}

func TestDecodeTruncated(t *testing.T) {
	s := testSchema(t)
	data := make([]byte, s.Size()-1)

	_, err := Decode(s, data, binary.BigEndian)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTruncatedInput))

	var te *TruncatedError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, s.Size(), te.Required)
	assert.Equal(t, s.Size()-1, te.Actual)
}

func TestDecodeLongerBuffer(t *testing.T) {
	s := testSchema(t)
	data := append(testBuffer(t, s), 0xAA, 0xBB)

	v, err := Decode(s, data, binary.BigEndian)
	require.NoError(t, err)
	assert.Equal(t, s.Size(), v.Size())

	_, err = Decode(s, data, binary.BigEndian, WithStrictLength(true))
	assert.True(t, errors.Is(err, ErrTrailingData))
}

func TestDecodeNilArguments(t *testing.T) {
	s := testSchema(t)
	_, err := Decode(nil, nil, binary.BigEndian)
	assert.ErrorIs(t, err, ErrNilSchema)
	_, err = Decode(s, make([]byte, s.Size()), nil)
	assert.ErrorIs(t, err, ErrNilByteOrder)
}

func TestDecodeDoesNotCopy(t *testing.T) {
	s := testSchema(t)
	data := testBuffer(t, s)
	v, err := Decode(s, data, binary.BigEndian)
	require.NoError(t, err)

	n, err := v.Lookup("Version")
	require.NoError(t, err)
	data[0] = 42
	u, err := n.Uint()
	require.NoError(t, err)
	assert.Equal(t, uint64(42), u)
}

func TestGetScalars(t *testing.T) {
	s := testSchema(t)
	v, err := Decode(s, testBuffer(t, s), binary.BigEndian)
	require.NoError(t, err)

	tests := []struct {
		path string
		want interface{}
	}{
		{"Version", uint8(3)},
		{"Info.Start.Day", uint16(21000)},
		{"Info.Start.MilliSeconds", uint32(43200000)},
		{"Info.End.Day", uint16(21001)},
		{"Info.End.MilliSeconds", uint32(0)},
		{"Info.Name", "MSG4"},
		{"Info.Enabled", true},
		{"Info.Offset", int32(-12)},
		{"Grid[1][2]", 3.5},
		{"Grid[1,3]", 4.5},
		{"Grid[2][3]", 99.0},
		{"Grid[0][0]", 0.0},
		{"Points[1].Y", float32(-0.25)},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := v.Get(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetComposite(t *testing.T) {
	s := testSchema(t)
	v, err := Decode(s, testBuffer(t, s), binary.BigEndian)
	require.NoError(t, err)

	grid, err := v.Get("Grid")
	require.NoError(t, err)
	assert.Equal(t, [][]float64{
		{0, 0, 0, 0},
		{1.5, 2.5, 3.5, 4.5},
		{0, 0, 0, 99},
	}, grid)

	row, err := v.Get("Grid[1]")
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, 2.5, 3.5, 4.5}, row)

	start, err := v.Get("Info.Start")
	require.NoError(t, err)
	m, ok := start.(*Map)
	require.True(t, ok)
	day, _ := m.Get("Day")
	assert.Equal(t, uint16(21000), day)

	points, err := v.Get("Points")
	require.NoError(t, err)
	ps, ok := points.([]*Map)
	require.True(t, ok)
	require.Len(t, ps, 2)
	y, _ := ps[1].Get("Y")
	assert.Equal(t, float32(-0.25), y)
}

func TestGetErrors(t *testing.T) {
	s := testSchema(t)
	v, err := Decode(s, testBuffer(t, s), binary.BigEndian)
	require.NoError(t, err)

	tests := []struct {
		path    string
		wantErr error
		segment string
	}{
		{"Nope", ErrUnknownField, "Nope"},
		{"Info.Stop", ErrUnknownField, "Stop"},
		{"Info.Start.Day.Extra", ErrUnknownField, "Extra"},
		{"Grid[3]", ErrIndexOutOfRange, "Grid[3]"},
		{"Grid[0][4]", ErrIndexOutOfRange, "Grid[0][4]"},
		{"Grid[-1]", ErrIndexOutOfRange, "Grid[-1]"},
		{"Grid[0][0][0]", ErrInvalidPath, "Grid[0][0][0]"},
		{"Version[0]", ErrInvalidPath, "Version[0]"},
		{"Points.X", ErrInvalidPath, "X"},
		{"", ErrInvalidPath, ""},
		{"Info..Name", ErrInvalidPath, ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			_, err := v.Get(tt.path)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)

			var le *schema.LookupError
			require.True(t, errors.As(err, &le))
			if tt.segment != "" {
				assert.Equal(t, tt.segment, le.Segment)
			}
		})
	}
}

func TestNodeAccessors(t *testing.T) {
	s := testSchema(t)
	v, err := Decode(s, testBuffer(t, s), binary.BigEndian)
	require.NoError(t, err)

	info, err := v.Lookup("Info")
	require.NoError(t, err)
	assert.Equal(t, 1, info.Offset())
	assert.Equal(t, 25, info.Size())
	assert.Equal(t, 5, info.Len())

	end, err := info.Field("End")
	require.NoError(t, err)
	assert.Equal(t, "Info.End", end.Path())
	assert.Equal(t, 7, end.Offset())
	assert.Same(t, info.Type().Fields()[0].Type, end.Type())

	day, err := end.Field("Day")
	require.NoError(t, err)
	u, err := day.Uint()
	require.NoError(t, err)
	assert.Equal(t, uint64(21001), u)
	assert.Equal(t, []byte{0x52, 0x09}, day.Bytes())

	off, err := info.Get("Offset")
	require.NoError(t, err)
	assert.Equal(t, int32(-12), off)

	offNode, err := info.Lookup("Offset")
	require.NoError(t, err)
	i, err := offNode.Int()
	require.NoError(t, err)
	assert.Equal(t, int64(-12), i)

	name, err := v.Lookup("Info.Name")
	require.NoError(t, err)
	text, err := name.Text()
	require.NoError(t, err)
	assert.Equal(t, "MSG4", text)

	enabled, err := v.Lookup("Info.Enabled")
	require.NoError(t, err)
	b, err := enabled.Bool()
	require.NoError(t, err)
	assert.True(t, b)

	grid, err := v.Lookup("Grid")
	require.NoError(t, err)
	assert.Equal(t, 3, grid.Len())
	cell, err := grid.Index(2, 3)
	require.NoError(t, err)
	assert.Equal(t, grid.Offset()+(2*4+3)*8, cell.Offset())
	f, err := cell.Float()
	require.NoError(t, err)
	assert.Equal(t, 99.0, f)

	point, err := v.Lookup("Points[1].Y")
	require.NoError(t, err)
	f, err = point.Float()
	require.NoError(t, err)
	assert.Equal(t, -0.25, f)
}

func TestNodeKindMismatch(t *testing.T) {
	s := testSchema(t)
	v, err := Decode(s, testBuffer(t, s), binary.BigEndian)
	require.NoError(t, err)

	name, err := v.Lookup("Info.Name")
	require.NoError(t, err)
	_, err = name.Uint()
	assert.ErrorIs(t, err, ErrKindMismatch)
	_, err = name.Float()
	assert.ErrorIs(t, err, ErrKindMismatch)

	ver, err := v.Lookup("Version")
	require.NoError(t, err)
	_, err = ver.Int()
	assert.ErrorIs(t, err, ErrKindMismatch)
	_, err = ver.Text()
	assert.ErrorIs(t, err, ErrKindMismatch)
	_, err = ver.Bool()
	assert.ErrorIs(t, err, ErrKindMismatch)
}

func TestTextPadding(t *testing.T) {
	s, err := schema.NewBuilder().Build("T", schema.Record(
		schema.F("A", schema.Text(6)),
		schema.F("B", schema.TextPadded(6, schema.PadNone)),
	))
	require.NoError(t, err)
	data := []byte("AB \x00  CD\x00   ")

	v, err := Decode(s, data, binary.BigEndian)
	require.NoError(t, err)
	a, _ := v.Get("A")
	bv, _ := v.Get("B")
	assert.Equal(t, "AB", a)
	assert.Equal(t, "CD\x00   ", bv)

	v, err = Decode(s, data, binary.BigEndian, WithTextPadding(schema.PadSpacePad))
	require.NoError(t, err)
	a, _ = v.Get("A")
	assert.Equal(t, "AB \x00", a)
}

func TestLittleEndian(t *testing.T) {
	s, err := schema.NewBuilder().Build("T", schema.Record(schema.F("U", schema.Uint32())))
	require.NoError(t, err)

	v, err := Decode(s, []byte{1, 0, 0, 0}, binary.LittleEndian)
	require.NoError(t, err)
	u, err := v.Get("U")
	require.NoError(t, err)
	assert.Equal(t, uint32(1), u)
}

func TestTree(t *testing.T) {
	s := testSchema(t)
	v, err := Decode(s, testBuffer(t, s), binary.BigEndian)
	require.NoError(t, err)

	tree, err := v.Tree()
	require.NoError(t, err)

	var keys []string
	for k := range tree.Keys() {
		keys = append(keys, k)
	}
	assert.Equal(t, []string{"Version", "Info", "Grid", "Points"}, keys)
}

func TestWalk(t *testing.T) {
	s := testSchema(t)
	v, err := Decode(s, testBuffer(t, s), binary.BigEndian)
	require.NoError(t, err)

	var paths []string
	err = v.Walk(func(path string, n Node) error {
		paths = append(paths, path)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Version",
		"Info",
		"Info.Start", "Info.Start.Day", "Info.Start.MilliSeconds",
		"Info.End", "Info.End.Day", "Info.End.MilliSeconds",
		"Info.Name", "Info.Enabled", "Info.Offset",
		"Grid",
		"Points",
	}, paths)

	// offsets agree with the schema index
	err = v.Walk(func(path string, n Node) error {
		slot, ok := s.Slot(path)
		require.True(t, ok, path)
		assert.Equal(t, slot.Offset, n.Offset(), path)
		return nil
	})
	require.NoError(t, err)
}

func TestWalkSkipRecord(t *testing.T) {
	s := testSchema(t)
	v, err := Decode(s, testBuffer(t, s), binary.BigEndian)
	require.NoError(t, err)

	var paths []string
	err = v.Walk(func(path string, n Node) error {
		paths = append(paths, path)
		if path == "Info" {
			return SkipRecord
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Version", "Info", "Grid", "Points"}, paths)
}

func TestWalkStop(t *testing.T) {
	s := testSchema(t)
	v, err := Decode(s, testBuffer(t, s), binary.BigEndian)
	require.NoError(t, err)

	stop := errors.New("stop")
	count := 0
	err = v.Walk(func(path string, n Node) error {
		count++
		if path == "Info.Start.Day" {
			return stop
		}
		return nil
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 4, count)
}

func TestEncoderErrors(t *testing.T) {
	s := testSchema(t)
	enc := NewEncoder(s, binary.BigEndian)

	assert.ErrorIs(t, enc.Set("Version", 256), ErrValueRange)
	assert.ErrorIs(t, enc.Set("Info.Name", "TOO LONG!"), ErrValueRange)
	assert.ErrorIs(t, enc.Set("Info.Offset", "x"), ErrKindMismatch)
	assert.ErrorIs(t, enc.Set("Grid[1]", []float64{1, 2}), ErrValueRange)
	assert.ErrorIs(t, enc.Set("Missing", 1), ErrUnknownField)
	assert.Equal(t, make([]byte, s.Size()), enc.Bytes())
}

func TestEncoderRecordPartial(t *testing.T) {
	s := testSchema(t)
	enc := NewEncoder(s, binary.BigEndian)
	require.NoError(t, enc.Set("Info.Start.Day", 7))

	// a failing element leaves the earlier fields untouched
	err := enc.Set("Info.Start", map[string]interface{}{"Day": 8, "MilliSeconds": -1})
	require.ErrorIs(t, err, ErrValueRange)

	v, err := enc.View()
	require.NoError(t, err)
	day, err := v.Get("Info.Start.Day")
	require.NoError(t, err)
	assert.Equal(t, uint16(7), day)
}

func TestMarshalYAML(t *testing.T) {
	s := testSchema(t)
	v, err := Decode(s, testBuffer(t, s), binary.BigEndian)
	require.NoError(t, err)

	out, err := yaml.Marshal(v)
	require.NoError(t, err)

	var back yaml.Node
	require.NoError(t, yaml.Unmarshal(out, &back))
	root := back.Content[0]
	require.Equal(t, yaml.MappingNode, root.Kind)
	assert.Equal(t, "Version", root.Content[0].Value)
	assert.Equal(t, "3", root.Content[1].Value)
	assert.Equal(t, "Info", root.Content[2].Value)
	assert.Equal(t, "Grid", root.Content[4].Value)
	assert.Equal(t, "Points", root.Content[6].Value)
	assert.Contains(t, string(out), "Name: MSG4")
}
