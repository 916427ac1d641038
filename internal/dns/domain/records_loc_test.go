package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeLOCSize_SplitsNibbles(t *testing.T) {
	s := DecodeLOCSize(0x35)
	assert.Equal(t, uint8(3), s.Base)
	assert.Equal(t, uint8(5), s.Exponent)
	assert.Equal(t, "3e5", s.String())
}

func TestLOCSize_String_OutOfRangeNibble(t *testing.T) {
	s := LOCSize{Base: 0xA, Exponent: 0}
	assert.Equal(t, "out-of-range(10e0)", s.String())
}

func TestDecodeLOCPosition_EquatorIsZeroDegreesNorth(t *testing.T) {
	pos := DecodeLOCPosition(0x80000000, true)
	assert.True(t, pos.InRange)
	assert.Equal(t, uint32(0), pos.Degrees)
	assert.Equal(t, LOCNorth, pos.Direction)
	assert.Equal(t, "0°0′0″ N", pos.String())
}

func TestDecodeLOCPosition_SouthOfEquator(t *testing.T) {
	pos := DecodeLOCPosition(0x80000000-1000*60*60, true)
	assert.True(t, pos.InRange)
	assert.Equal(t, uint32(1), pos.Degrees)
	assert.Equal(t, LOCSouth, pos.Direction)
}

func TestDecodeLOCPosition_WestOfPrimeMeridian(t *testing.T) {
	pos := DecodeLOCPosition(0x80000000-1, false)
	assert.True(t, pos.InRange)
	assert.Equal(t, LOCWest, pos.Direction)
}

func TestDecodeLOCPosition_OutOfRangeLatitude(t *testing.T) {
	pos := DecodeLOCPosition(0xFFFFFFFF, true)
	assert.False(t, pos.InRange)
	assert.Equal(t, "out-of-range(4294967295)", pos.String())
}

func TestDecodeLOCPosition_MilliarcsecondsRendered(t *testing.T) {
	pos := DecodeLOCPosition(0x80000000+1500, true)
	assert.True(t, pos.InRange)
	assert.Equal(t, uint32(500), pos.Milliarcseconds)
	assert.Contains(t, pos.String(), ".500″")
}

func TestDecodeLOCAltitude_AboveAndBelowReference(t *testing.T) {
	above := DecodeLOCAltitude(10000000 + 12345)
	assert.Equal(t, int64(123), above.Metres)
	assert.Equal(t, "123.45m", above.String())

	atReference := DecodeLOCAltitude(10000000)
	assert.Equal(t, "0m", atReference.String())
}

func TestDecodeLOCAltitude_BelowReferenceIsNegative(t *testing.T) {
	below := DecodeLOCAltitude(10000000 - 12345)
	assert.Equal(t, int64(-123), below.Metres)
	assert.Equal(t, "-123.45m", below.String())
}

func TestDecodeLOCAltitude_BelowReferenceWholeMetres(t *testing.T) {
	below := DecodeLOCAltitude(10000000 - 500)
	assert.Equal(t, int64(-5), below.Metres)
	assert.Equal(t, "-5m", below.String())
}

func TestLOC_RRType(t *testing.T) {
	assert.Equal(t, RRTypeLOC, LOC{}.RRType())
}
