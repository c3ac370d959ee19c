package schema

import (
	"strconv"
	"strings"
)

// Segment is one dot-separated component of a field path: a field name
// optionally followed by array indices.
type Segment struct {
	Name  string
	Index []int
}

func (s Segment) String() string {
	if len(s.Index) == 0 {
		return s.Name
	}
	return s.Name + FormatIndex(s.Index)
}

// FormatIndex formats array indices as "[i][j]".
func FormatIndex(idx []int) string {
	var sb strings.Builder
	for _, i := range idx {
		sb.WriteByte('[')
		sb.WriteString(strconv.Itoa(i))
		sb.WriteByte(']')
	}
	return sb.String()
}

// ParsePath splits a field path into segments.
//
// Examples:
//   - "ImageDescription.ReferenceGridHRV.NumberOfLines" -> 3 segments, no indices
//   - "Orbit.OrbitPolynomial[3].X[7]" -> {Orbit} {OrbitPolynomial [3]} {X [7]}
//   - "StarEphemeris[2][5]" and "StarEphemeris[2,5]" -> {StarEphemeris [2 5]}
//
// Field names may contain any character except '.', '[', ']' and ','.
func ParsePath(path string) ([]Segment, error) {
	if path == "" {
		return nil, &LookupError{Path: path, Err: ErrInvalidPath, Detail: "empty path"}
	}

	parts := strings.Split(path, ".")
	segs := make([]Segment, 0, len(parts))
	for _, part := range parts {
		seg, err := parseSegment(part)
		if err != nil {
			return nil, &LookupError{Path: path, Segment: part, Err: ErrInvalidPath, Detail: err.Error()}
		}
		segs = append(segs, seg)
	}
	return segs, nil
}

type pathError string

func (e pathError) Error() string { return string(e) }

func parseSegment(part string) (Segment, error) {
	open := strings.IndexByte(part, '[')
	name := part
	rest := ""
	if open >= 0 {
		name, rest = part[:open], part[open:]
	}
	if name == "" {
		return Segment{}, pathError("empty field name")
	}
	if strings.ContainsAny(name, "],") {
		return Segment{}, pathError("unexpected character in field name")
	}

	seg := Segment{Name: name}
	for rest != "" {
		if rest[0] != '[' {
			return Segment{}, pathError("expected '[' after index group")
		}
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			return Segment{}, pathError("unterminated index")
		}
		group := rest[1:end]
		if group == "" {
			return Segment{}, pathError("empty index")
		}
		for _, tok := range strings.Split(group, ",") {
			i, err := strconv.Atoi(strings.TrimSpace(tok))
			if err != nil {
				return Segment{}, pathError("index " + strconv.Quote(tok) + " is not an integer")
			}
			seg.Index = append(seg.Index, i)
		}
		rest = rest[end+1:]
	}
	return seg, nil
}

// JoinPath appends a field name to a parent path.
func JoinPath(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + "." + name
}

// FormatPath joins segments back into path syntax.
func FormatPath(segs []Segment) string {
	parts := make([]string, len(segs))
	for i, s := range segs {
		parts[i] = s.String()
	}
	return strings.Join(parts, ".")
}

func validFieldName(name string) bool {
	return !strings.ContainsAny(name, ".[],")
}
