package domain

import "fmt"

// locArcSecondLimit is the number of milliarcseconds in 180 degrees of arc.
// DecodeLOCPosition does not read it; nothing else in this package does
// either.
const locArcSecondLimit = 1000 * 60 * 60 * 180

// LOCSize is a measurement encoded as a base-and-power-of-ten nibble pair,
// in centimetres (RFC 1876). Base values above 9 are out of the RFC's
// documented range but are preserved rather than rejected, per this
// engine's choice to render an out-of-range marker instead of failing.
type LOCSize struct {
	Base     uint8
	Exponent uint8
}

// DecodeLOCSize splits a byte into its base (high nibble) and power-of-ten
// exponent (low nibble).
func DecodeLOCSize(b uint8) LOCSize {
	return LOCSize{Base: b >> 4, Exponent: b & 0x0F}
}

func (s LOCSize) String() string {
	if s.Base > 9 || s.Exponent > 9 {
		return fmt.Sprintf("out-of-range(%de%d)", s.Base, s.Exponent)
	}
	return fmt.Sprintf("%de%d", s.Base, s.Exponent)
}

// LOCDirection is one compass direction relative to the equator or prime
// meridian.
type LOCDirection byte

const (
	LOCNorth LOCDirection = 'N'
	LOCEast  LOCDirection = 'E'
	LOCSouth LOCDirection = 'S'
	LOCWest  LOCDirection = 'W'
)

// LOCPosition is a decoded latitude or longitude. InRange is false when the
// raw wire value falls outside ±90° (latitude) or ±180° (longitude); the
// raw value is preserved either way so the caller can render a marker
// instead of rejecting the record.
type LOCPosition struct {
	Raw      uint32
	Vertical bool
	InRange  bool

	Degrees         uint32
	Arcminutes      uint32
	Arcseconds      uint32
	Milliarcseconds uint32
	Direction       LOCDirection
}

// DecodeLOCPosition interprets a raw wire value as thousandths of an
// arcsecond relative to 2^31 (the equator for latitude, the prime meridian
// for longitude).
func DecodeLOCPosition(raw uint32, vertical bool) LOCPosition {
	const center = uint32(0x80000000)
	maxDegrees := uint32(180)
	if vertical {
		maxDegrees = 90
	}
	limit := uint32(1000*60*60) * maxDegrees

	pos := LOCPosition{Raw: raw, Vertical: vertical}

	var delta uint32
	var positive bool
	if raw >= center {
		delta = raw - center
		positive = true
	} else {
		delta = center - raw
		positive = false
	}
	if delta > limit {
		return pos
	}
	pos.InRange = true

	pos.Milliarcseconds = delta % 1000
	totalArcseconds := delta / 1000
	pos.Arcseconds = totalArcseconds % 60
	totalArcminutes := totalArcseconds / 60
	pos.Arcminutes = totalArcminutes % 60
	pos.Degrees = totalArcminutes / 60

	if vertical {
		if positive {
			pos.Direction = LOCNorth
		} else {
			pos.Direction = LOCSouth
		}
	} else {
		if positive {
			pos.Direction = LOCEast
		} else {
			pos.Direction = LOCWest
		}
	}
	return pos
}

func (p LOCPosition) String() string {
	if !p.InRange {
		return fmt.Sprintf("out-of-range(%d)", p.Raw)
	}
	s := fmt.Sprintf("%d°%d′%d", p.Degrees, p.Arcminutes, p.Arcseconds)
	if p.Milliarcseconds != 0 {
		s += fmt.Sprintf(".%03d", p.Milliarcseconds)
	}
	return fmt.Sprintf("%s″ %c", s, p.Direction)
}

// LOCAltitude is a decoded height above or below the GPS reference
// spheroid's 100,000m-below base.
type LOCAltitude struct {
	Raw         uint32
	Metres      int64
	Centimetres int64
}

// DecodeLOCAltitude converts a raw wire value into metres and centimetres
// relative to 100,000m below the GPS reference spheroid.
func DecodeLOCAltitude(raw uint32) LOCAltitude {
	v := int64(raw) - 10000000
	return LOCAltitude{Raw: raw, Metres: v / 100, Centimetres: v % 100}
}

func (a LOCAltitude) String() string {
	if a.Centimetres == 0 {
		return fmt.Sprintf("%dm", a.Metres)
	}
	return fmt.Sprintf("%d.%02dm", a.Metres, abs64(a.Centimetres))
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

// LOC points to a location on Earth via latitude, longitude, and altitude
// (RFC 1876).
type LOC struct {
	Size                LOCSize
	HorizontalPrecision LOCSize
	VerticalPrecision   LOCSize
	Latitude            LOCPosition
	Longitude           LOCPosition
	Altitude            LOCAltitude
}

func (LOC) RRType() RRType { return RRTypeLOC }
