// Package rrdata decodes resource-record data (the bytes after a record's
// fixed header) into the typed domain.RecordData variants, one function per
// record type in the closed decodable set.
package rrdata

import (
	"fmt"

	"github.com/haukened/dogo/internal/dns/domain"
	"github.com/haukened/dogo/internal/dns/wire/cursor"
)

// WrongLength is returned when a record's rdlength does not satisfy the
// type's length contract: either an exact match or a floor.
type WrongLength struct {
	Type    domain.RRType
	Stated  int
	Wanted  int
	AtLeast bool
}

func (e *WrongLength) Error() string {
	if e.AtLeast {
		return fmt.Sprintf("record length should be at least %d, got %d", e.Wanted, e.Stated)
	}
	return fmt.Sprintf("record length should be %d, got %d", e.Wanted, e.Stated)
}

// WrongVersion is returned when a record carries a version byte this
// engine does not understand, currently only LOC.
type WrongVersion struct {
	Got      uint8
	Expected uint8
}

func (e *WrongVersion) Error() string {
	return fmt.Sprintf("record specifies version %d, expected up to %d", e.Got, e.Expected)
}

// decodeFunc reads exactly rdlength bytes of rdata starting at the cursor's
// current position, and returns the typed record.
type decodeFunc func(cur *cursor.Cursor, rdlength int) (domain.RecordData, error)

var decoders = map[domain.RRType]decodeFunc{
	domain.RRTypeA:          decodeA,
	domain.RRTypeAAAA:       decodeAAAA,
	domain.RRTypeCAA:        decodeCAA,
	domain.RRTypeCNAME:      decodeCNAME,
	domain.RRTypeEUI48:      decodeEUI48,
	domain.RRTypeEUI64:      decodeEUI64,
	domain.RRTypeHINFO:      decodeHINFO,
	domain.RRTypeLOC:        decodeLOC,
	domain.RRTypeMX:         decodeMX,
	domain.RRTypeNAPTR:      decodeNAPTR,
	domain.RRTypeNS:         decodeNS,
	domain.RRTypeOPENPGPKEY: decodeOPENPGPKEY,
	domain.RRTypePTR:        decodePTR,
	domain.RRTypeSOA:        decodeSOA,
	domain.RRTypeSRV:        decodeSRV,
	domain.RRTypeSSHFP:      decodeSSHFP,
	domain.RRTypeTLSA:       decodeTLSA,
	domain.RRTypeTXT:        decodeTXT,
	domain.RRTypeURI:        decodeURI,
}

// Decode dispatches to the decoder registered for rtype, or returns an
// Other carrying the raw bytes for any type outside the closed set. The
// cursor must be positioned at the start of rdata; on return it has
// advanced by exactly rdlength bytes for every successfully decoded record.
func Decode(rtype domain.RRType, cur *cursor.Cursor, rdlength int) (domain.RecordData, error) {
	fn, ok := decoders[rtype]
	if !ok {
		raw, err := cur.ReadBytes(rdlength)
		if err != nil {
			return nil, err
		}
		return domain.Other{Code: rtype, Data: raw}, nil
	}

	start := cur.Pos()
	data, err := fn(cur, rdlength)
	if err != nil {
		return nil, err
	}
	consumed := cur.Pos() - start
	if consumed != rdlength {
		return nil, &WrongLength{Type: rtype, Stated: rdlength, Wanted: consumed, AtLeast: false}
	}
	return data, nil
}

// readRemaining reads whatever rdata bytes remain after `consumed` bytes
// have already been read out of a record stated to be rdlength bytes long.
func readRemaining(cur *cursor.Cursor, rdlength, consumed int) ([]byte, error) {
	remaining := rdlength - consumed
	if remaining < 0 {
		remaining = 0
	}
	return cur.ReadBytes(remaining)
}
