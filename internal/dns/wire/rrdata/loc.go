package rrdata

import (
	"github.com/haukened/dogo/internal/dns/domain"
	"github.com/haukened/dogo/internal/dns/wire/cursor"
)

// locSupportedVersion is the only LOC record version this engine
// understands; anything else is rejected.
const locSupportedVersion = 0

func decodeLOC(cur *cursor.Cursor, rdlength int) (domain.RecordData, error) {
	if rdlength < 16 {
		return nil, &WrongLength{Type: domain.RRTypeLOC, Stated: rdlength, Wanted: 16, AtLeast: true}
	}

	version, err := cur.ReadU8()
	if err != nil {
		return nil, err
	}
	if version != locSupportedVersion {
		return nil, &WrongVersion{Got: version, Expected: locSupportedVersion}
	}

	sizeByte, err := cur.ReadU8()
	if err != nil {
		return nil, err
	}
	horizByte, err := cur.ReadU8()
	if err != nil {
		return nil, err
	}
	vertByte, err := cur.ReadU8()
	if err != nil {
		return nil, err
	}
	latRaw, err := cur.ReadU32()
	if err != nil {
		return nil, err
	}
	lonRaw, err := cur.ReadU32()
	if err != nil {
		return nil, err
	}
	altRaw, err := cur.ReadU32()
	if err != nil {
		return nil, err
	}
	// LOC is a floor-checked type: extra trailing bytes beyond the 16-byte
	// body are tolerated and discarded rather than rejected.
	if _, err := readRemaining(cur, rdlength, 16); err != nil {
		return nil, err
	}

	return domain.LOC{
		Size:                domain.DecodeLOCSize(sizeByte),
		HorizontalPrecision: domain.DecodeLOCSize(horizByte),
		VerticalPrecision:   domain.DecodeLOCSize(vertByte),
		Latitude:            domain.DecodeLOCPosition(latRaw, true),
		Longitude:           domain.DecodeLOCPosition(lonRaw, false),
		Altitude:            domain.DecodeLOCAltitude(altRaw),
	}, nil
}
