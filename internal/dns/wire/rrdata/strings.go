package rrdata

import (
	"github.com/haukened/dogo/internal/dns/domain"
	"github.com/haukened/dogo/internal/dns/wire/cursor"
)

func decodeHINFO(cur *cursor.Cursor, rdlength int) (domain.RecordData, error) {
	cpu, err := cur.ReadCharString()
	if err != nil {
		return nil, err
	}
	os, err := cur.ReadCharString()
	if err != nil {
		return nil, err
	}
	return domain.HINFO{CPU: cpu, OS: os}, nil
}

func decodeTXT(cur *cursor.Cursor, rdlength int) (domain.RecordData, error) {
	start := cur.Pos()
	var values [][]byte
	for cur.Pos()-start < rdlength {
		v, err := cur.ReadCharString()
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return domain.TXT{Values: values}, nil
}

func decodeCAA(cur *cursor.Cursor, rdlength int) (domain.RecordData, error) {
	if rdlength < 2 {
		return nil, &WrongLength{Type: domain.RRTypeCAA, Stated: rdlength, Wanted: 2, AtLeast: true}
	}
	flags, err := cur.ReadU8()
	if err != nil {
		return nil, err
	}
	tag, err := cur.ReadCharString()
	if err != nil {
		return nil, err
	}
	value, err := readRemaining(cur, rdlength, 2+len(tag))
	if err != nil {
		return nil, err
	}
	return domain.CAA{Critical: flags&0x80 != 0, Tag: tag, Value: value}, nil
}
