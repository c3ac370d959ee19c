package schema

import (
	"errors"
	"reflect"
	"testing"
)

func testSchema(t *testing.T) *Schema {
	t.Helper()
	b := timeBuilder()
	s, err := b.Build("Header", Record(
		F("Version", Uint8()),
		F("Definition", Record(
			F("SatelliteId", Uint16()),
			F("NominalLongitude", Float32()),
			F("Status", Uint8()),
		)),
		F("Coefficients", Array(Float64(), 100, 8)),
		F("Polynomial", Array(Record(
			F("StartTime", Ref("TimeCdsShort")),
			F("X", Array(Float64(), 8)),
		), 4)),
		F("Stars", Array(Record(F("StarId", Uint16())), 20, 100)),
	))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return s
}

func TestLayoutOffsets(t *testing.T) {
	s := testSchema(t)

	got := s.Layout()
	want := []struct {
		name   string
		offset int
		size   int
	}{
		{"Version", 0, 1},
		{"Definition", 1, 7},
		{"Coefficients", 8, 6400},
		{"Polynomial", 6408, 4 * 70},
		{"Stars", 6688, 2 * 20 * 100},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d slots, got %d", len(want), len(got))
	}
	for i, w := range want {
		if got[i].Name != w.name || got[i].Offset != w.offset || got[i].Size != w.size {
			t.Errorf("slot %d: got %s, want %s @%d+%d", i, got[i], w.name, w.offset, w.size)
		}
	}
	if last := got[len(got)-1]; last.End() != s.Size() {
		t.Errorf("last slot ends at %d, schema size %d", last.End(), s.Size())
	}
}

func TestLayoutNonRecord(t *testing.T) {
	if slots := Layout(Float64()); slots != nil {
		t.Errorf("expected nil layout for scalar, got %v", slots)
	}
}

func TestFlatten(t *testing.T) {
	s := testSchema(t)

	var paths []string
	for _, slot := range s.Flatten() {
		paths = append(paths, slot.Path)
	}
	want := []string{
		"Version",
		"Definition",
		"Definition.SatelliteId",
		"Definition.NominalLongitude",
		"Definition.Status",
		"Coefficients",
		"Polynomial",
		"Stars",
	}
	if !reflect.DeepEqual(paths, want) {
		t.Errorf("got %v, want %v", paths, want)
	}

	slot, ok := s.Slot("Definition.Status")
	if !ok {
		t.Fatal("Definition.Status missing from index")
	}
	if slot.Offset != 1+2+4 || slot.Depth != 2 {
		t.Errorf("unexpected slot %s depth %d", slot, slot.Depth)
	}
}

func TestFlattenNoOverlap(t *testing.T) {
	s := testSchema(t)
	prevEnd := 0
	for _, slot := range s.Layout() {
		if slot.Offset != prevEnd {
			t.Errorf("%s starts at %d, previous field ended at %d", slot.Path, slot.Offset, prevEnd)
		}
		prevEnd = slot.End()
	}
}

func TestResolveRowMajor(t *testing.T) {
	s := testSchema(t)
	base, _ := s.Slot("Coefficients")

	for _, ij := range [][2]int{{0, 0}, {0, 7}, {1, 0}, {42, 3}, {99, 7}} {
		i, j := ij[0], ij[1]
		want := base.Offset + (i*8+j)*8

		slot, err := s.Resolve("Coefficients" + FormatIndex([]int{i, j}))
		if err != nil {
			t.Fatalf("Resolve failed: %v", err)
		}
		if slot.Offset != want || slot.Size != 8 || slot.Type != Float64() {
			t.Errorf("[%d][%d]: got %s, want offset %d", i, j, slot, want)
		}

		tuple, err := base.Index(i, j)
		if err != nil {
			t.Fatalf("Index failed: %v", err)
		}
		if tuple.Offset != want {
			t.Errorf("Index(%d,%d) offset %d, want %d", i, j, tuple.Offset, want)
		}
	}
}

func TestResolveTupleSyntax(t *testing.T) {
	s := testSchema(t)
	a, err := s.Resolve("Stars[2][5].StarId")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	b, err := s.Resolve("Stars[2, 5].StarId")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	stars, _ := s.Slot("Stars")
	if want := stars.Offset + (2*100+5)*2; a.Offset != want || b.Offset != want {
		t.Errorf("got offsets %d and %d, want %d", a.Offset, b.Offset, want)
	}
	if a.Path != "Stars[2][5].StarId" {
		t.Errorf("unexpected canonical path %q", a.Path)
	}
}

func TestResolvePartialIndex(t *testing.T) {
	s := testSchema(t)
	row, err := s.Resolve("Coefficients[3]")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if row.Type.Kind() != KindArray || row.Type.Rank() != 1 || row.Size != 64 {
		t.Fatalf("unexpected row slot %s", row)
	}
	elem, err := row.Index(5)
	if err != nil {
		t.Fatalf("Index failed: %v", err)
	}
	direct, _ := s.Resolve("Coefficients[3][5]")
	if elem.Offset != direct.Offset {
		t.Errorf("partial index offset %d != direct %d", elem.Offset, direct.Offset)
	}
}

func TestResolveNestedRecordArray(t *testing.T) {
	s := testSchema(t)
	poly, _ := s.Slot("Polynomial")

	slot, err := s.Resolve("Polynomial[2].X[7]")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if want := poly.Offset + 2*70 + 6 + 7*8; slot.Offset != want {
		t.Errorf("got offset %d, want %d", slot.Offset, want)
	}

	day, err := s.Resolve("Polynomial[3].StartTime.Day")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if want := poly.Offset + 3*70; day.Offset != want || day.Size != 2 {
		t.Errorf("got %s, want offset %d", day, want)
	}
}

func TestResolveErrors(t *testing.T) {
	s := testSchema(t)

	tests := []struct {
		path    string
		wantErr error
		segment string
	}{
		{"Defintion.SatelliteId", ErrUnknownField, "Defintion"},
		{"Definition.Nope", ErrUnknownField, "Nope"},
		{"Version.Sub", ErrUnknownField, "Sub"},
		{"Coefficients[100][0]", ErrIndexOutOfRange, "Coefficients[100][0]"},
		{"Coefficients[0][8]", ErrIndexOutOfRange, "Coefficients[0][8]"},
		{"Coefficients[-1][0]", ErrIndexOutOfRange, "Coefficients[-1][0]"},
		{"Coefficients[1][2][3]", ErrInvalidPath, "Coefficients[1][2][3]"},
		{"Version[0]", ErrInvalidPath, "Version[0]"},
		{"Polynomial.X", ErrInvalidPath, "X"},
		{"", ErrInvalidPath, ""},
		{"Definition..Status", ErrInvalidPath, ""},
		{"Coefficients[a]", ErrInvalidPath, "Coefficients[a]"},
		{"Coefficients[1", ErrInvalidPath, "Coefficients[1"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			_, err := s.Resolve(tt.path)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			var lerr *LookupError
			if !errors.As(err, &lerr) {
				t.Fatalf("expected *LookupError, got %T", err)
			}
			if lerr.Segment != tt.segment {
				t.Errorf("segment: got %q, want %q", lerr.Segment, tt.segment)
			}
		})
	}
}

func TestParsePath(t *testing.T) {
	tests := []struct {
		path    string
		want    []Segment
		wantErr bool
	}{
		{"A", []Segment{{Name: "A"}}, false},
		{"15HEADERVersion", []Segment{{Name: "15HEADERVersion"}}, false},
		{"OptAxisDistances.E-WFocalPlane[41]", []Segment{{Name: "OptAxisDistances"}, {Name: "E-WFocalPlane", Index: []int{41}}}, false},
		{"A[1][2].B", []Segment{{Name: "A", Index: []int{1, 2}}, {Name: "B"}}, false},
		{"A[1,2]", []Segment{{Name: "A", Index: []int{1, 2}}}, false},
		{"A[1,2][3]", []Segment{{Name: "A", Index: []int{1, 2, 3}}}, false},
		{"", nil, true},
		{".A", nil, true},
		{"A.", nil, true},
		{"[1]", nil, true},
		{"A[]", nil, true},
		{"A[1]x", nil, true},
		{"A]", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := ParsePath(tt.path)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error for %q", tt.path)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error for %q: %v", tt.path, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
			if FormatPath(got) == "" {
				t.Error("FormatPath returned empty string")
			}
		})
	}
}

func TestJoinPath(t *testing.T) {
	if got := JoinPath("", "A"); got != "A" {
		t.Errorf("got %q", got)
	}
	if got := JoinPath("A.B", "C"); got != "A.B.C" {
		t.Errorf("got %q", got)
	}
}
