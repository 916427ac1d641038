package rrdata

import (
	"net"

	"github.com/haukened/dogo/internal/dns/domain"
	"github.com/haukened/dogo/internal/dns/wire/cursor"
)

func decodeA(cur *cursor.Cursor, rdlength int) (domain.RecordData, error) {
	if rdlength != 4 {
		return nil, &WrongLength{Type: domain.RRTypeA, Stated: rdlength, Wanted: 4}
	}
	b, err := cur.ReadBytes(4)
	if err != nil {
		return nil, err
	}
	return domain.A{Address: net.IPv4(b[0], b[1], b[2], b[3])}, nil
}

func decodeAAAA(cur *cursor.Cursor, rdlength int) (domain.RecordData, error) {
	if rdlength != 16 {
		return nil, &WrongLength{Type: domain.RRTypeAAAA, Stated: rdlength, Wanted: 16}
	}
	b, err := cur.ReadBytes(16)
	if err != nil {
		return nil, err
	}
	return domain.AAAA{Address: net.IP(b)}, nil
}

func decodeEUI48(cur *cursor.Cursor, rdlength int) (domain.RecordData, error) {
	if rdlength != 6 {
		return nil, &WrongLength{Type: domain.RRTypeEUI48, Stated: rdlength, Wanted: 6}
	}
	b, err := cur.ReadBytes(6)
	if err != nil {
		return nil, err
	}
	var out domain.EUI48
	copy(out.Octets[:], b)
	return out, nil
}

func decodeEUI64(cur *cursor.Cursor, rdlength int) (domain.RecordData, error) {
	if rdlength != 8 {
		return nil, &WrongLength{Type: domain.RRTypeEUI64, Stated: rdlength, Wanted: 8}
	}
	b, err := cur.ReadBytes(8)
	if err != nil {
		return nil, err
	}
	var out domain.EUI64
	copy(out.Octets[:], b)
	return out, nil
}
