// Package msg15 declares the Level 1.5 image header of the SEVIRI
// radiometer on the Meteosat Second Generation satellites.
//
// The header is a single packed big-endian record of eight top-level
// fields: a format version byte followed by seven sections. Field order,
// widths and dimensions follow the Level 1.5 native and HRIT formats.
//
//	v, err := header.Decode(msg15.Schema(), data, msg15.ByteOrder)
//	if err != nil {
//		return err
//	}
//	lon, err := v.Get("SatelliteStatus.SatelliteDefinition.NominalLongitude")
package msg15

import (
	"encoding/binary"
	"sync"

	"github.com/robert-malhotra/go-seviri/schema"
)

// ByteOrder is the byte order of every multi-byte header field.
var ByteOrder binary.ByteOrder = binary.BigEndian

// Name is the schema name of the Level 1.5 header.
const Name = "Level15Header"

// Shared layout names.
const (
	TimeCdsShortName      = "TimeCdsShort"
	TimeCdsExpandedName   = "TimeCdsExpanded"
	SoftwareVersionName   = "SoftwareVersion"
	ReferenceGridName     = "ReferenceGrid"
	EarthMoonSunCoeffName = "EarthMoonSunCoeff"
)

// Top-level fields.
const (
	Version               = "15HEADERVersion"
	SatelliteStatus       = "SatelliteStatus"
	ImageAcquisition      = "ImageAcquisition"
	CelestialEvents       = "CelestialEvents"
	ImageDescription      = "ImageDescription"
	RadiometricProcessing = "RadiometricProcessing"
	GeometricProcessing   = "GeometricProcessing"
	IMPFConfiguration     = "IMPFConfiguration"
)

// Byte sizes.
const (
	TimeCdsShortSize    = 6
	TimeCdsExpandedSize = 10

	SatelliteStatusSize       = 60134
	ImageAcquisitionSize      = 700
	CelestialEventsSize       = 326058
	ImageDescriptionSize      = 101
	RadiometricProcessingSize = 20815
	GeometricProcessingSize   = 17653
	IMPFConfigurationSize     = 17837

	// ExpectedSize is the documented size of the whole header.
	ExpectedSize = 443299
)

// Sections lists the top-level fields in header order.
var Sections = []string{
	Version,
	SatelliteStatus,
	ImageAcquisition,
	CelestialEvents,
	ImageDescription,
	RadiometricProcessing,
	GeometricProcessing,
	IMPFConfiguration,
}

var (
	once   sync.Once
	shared *schema.Schema
)

// Schema returns the process-wide Level 1.5 header schema. It is built on
// first use and is safe for concurrent use.
func Schema() *schema.Schema {
	once.Do(func() {
		shared = New()
	})
	return shared
}

// New builds a fresh copy of the Level 1.5 header schema.
func New() *schema.Schema {
	return newBuilder().MustBuild(Name, level15Header())
}

func newBuilder() *schema.Builder {
	return schema.NewBuilder().
		Define(TimeCdsShortName, schema.Record(
			schema.F("Day", schema.Uint16()),
			schema.F("MilliSeconds", schema.Uint32()),
		)).
		Define(TimeCdsExpandedName, schema.Record(
			schema.F("Day", schema.Uint16()),
			schema.F("MilliSecsOfDay", schema.Uint32()),
			schema.F("MicrosecsOfMillisecs", schema.Uint16()),
			schema.F("NanosecsOfMicrosecs", schema.Uint16()),
		)).
		Define(SoftwareVersionName, schema.Record(
			schema.F("Issue", schema.Uint16()),
			schema.F("Revision", schema.Uint16()),
		)).
		Define(ReferenceGridName, schema.Record(
			schema.F("NumberOfLines", schema.Int32()),
			schema.F("NumberOfColumns", schema.Int32()),
			schema.F("LineDirGridStep", schema.Float32()),
			schema.F("ColumnDirGridStep", schema.Float32()),
			schema.F("GridOrigin", schema.Uint8()),
		)).
		Define(EarthMoonSunCoeffName, schema.Record(
			schema.F("StartTime", timeShort()),
			schema.F("EndTime", timeShort()),
			schema.F("AlphaCoef", schema.Array(schema.Float64(), 8)),
			schema.F("BetaCoef", schema.Array(schema.Float64(), 8)),
		))
}

func level15Header() *schema.Type {
	return schema.Record(
		schema.F(Version, schema.Uint8()),
		schema.F(SatelliteStatus, satelliteStatus()),
		schema.F(ImageAcquisition, imageAcquisition()),
		schema.F(CelestialEvents, celestialEvents()),
		schema.F(ImageDescription, imageDescription()),
		schema.F(RadiometricProcessing, radiometricProcessing()),
		schema.F(GeometricProcessing, geometricProcessing()),
		schema.F(IMPFConfiguration, impfConfiguration()),
	)
}

func timeShort() *schema.Type    { return schema.Ref(TimeCdsShortName) }
func timeExpanded() *schema.Type { return schema.Ref(TimeCdsExpandedName) }

func f64s(n ...int) *schema.Type { return schema.Array(schema.Float64(), n...) }
func f32s(n ...int) *schema.Type { return schema.Array(schema.Float32(), n...) }
func u16s(n int) *schema.Type    { return schema.Array(schema.Uint16(), n) }
func u8s(n int) *schema.Type     { return schema.Array(schema.Uint8(), n) }
