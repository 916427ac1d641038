package rrdata

import (
	"github.com/haukened/dogo/internal/dns/domain"
	"github.com/haukened/dogo/internal/dns/wire/cursor"
)

func decodeURI(cur *cursor.Cursor, rdlength int) (domain.RecordData, error) {
	if rdlength < 5 {
		return nil, &WrongLength{Type: domain.RRTypeURI, Stated: rdlength, Wanted: 5, AtLeast: true}
	}
	priority, err := cur.ReadU16()
	if err != nil {
		return nil, err
	}
	weight, err := cur.ReadU16()
	if err != nil {
		return nil, err
	}
	target, err := readRemaining(cur, rdlength, 4)
	if err != nil {
		return nil, err
	}
	return domain.URI{Priority: priority, Weight: weight, Target: target}, nil
}
