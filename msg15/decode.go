package msg15

import (
	"fmt"
	"time"

	"github.com/robert-malhotra/go-seviri/header"
)

// Decode decodes a Level 1.5 header with the shared schema and big-endian
// byte order.
func Decode(data []byte, opts ...header.Option) (*header.View, error) {
	return header.Decode(Schema(), data, ByteOrder, opts...)
}

// Epoch is day zero of the CCSDS day-segmented time fields.
var Epoch = time.Date(1958, time.January, 1, 0, 0, 0, 0, time.UTC)

// Time converts a TimeCdsShort or TimeCdsExpanded node to UTC.
func Time(n header.Node) (time.Time, error) {
	var names []string
	switch n.Type().Name() {
	case TimeCdsShortName:
		names = []string{"Day", "MilliSeconds"}
	case TimeCdsExpandedName:
		names = []string{"Day", "MilliSecsOfDay", "MicrosecsOfMillisecs", "NanosecsOfMicrosecs"}
	default:
		return time.Time{}, fmt.Errorf("%w: %s is %s, not a CDS time", header.ErrKindMismatch, n.Path(), n.Type())
	}

	parts := make([]uint64, len(names))
	for i, name := range names {
		c, err := n.Field(name)
		if err != nil {
			return time.Time{}, err
		}
		if parts[i], err = c.Uint(); err != nil {
			return time.Time{}, err
		}
	}

	t := Epoch.AddDate(0, 0, int(parts[0])).Add(time.Duration(parts[1]) * time.Millisecond)
	if len(parts) == 4 {
		t = t.Add(time.Duration(parts[2])*time.Microsecond + time.Duration(parts[3])*time.Nanosecond)
	}
	return t, nil
}
