package rrdata

import (
	"github.com/haukened/dogo/internal/dns/domain"
	"github.com/haukened/dogo/internal/dns/wire/cursor"
)

func decodeCNAME(cur *cursor.Cursor, rdlength int) (domain.RecordData, error) {
	name, err := cur.ReadName()
	if err != nil {
		return nil, err
	}
	return domain.CNAME{Target: name}, nil
}

func decodeNS(cur *cursor.Cursor, rdlength int) (domain.RecordData, error) {
	name, err := cur.ReadName()
	if err != nil {
		return nil, err
	}
	return domain.NS{Nameserver: name}, nil
}

func decodePTR(cur *cursor.Cursor, rdlength int) (domain.RecordData, error) {
	name, err := cur.ReadName()
	if err != nil {
		return nil, err
	}
	return domain.PTR{Target: name}, nil
}

func decodeMX(cur *cursor.Cursor, rdlength int) (domain.RecordData, error) {
	pref, err := cur.ReadU16()
	if err != nil {
		return nil, err
	}
	exchange, err := cur.ReadName()
	if err != nil {
		return nil, err
	}
	return domain.MX{Preference: pref, Exchange: exchange}, nil
}

func decodeSOA(cur *cursor.Cursor, rdlength int) (domain.RecordData, error) {
	mname, err := cur.ReadName()
	if err != nil {
		return nil, err
	}
	rname, err := cur.ReadName()
	if err != nil {
		return nil, err
	}
	serial, err := cur.ReadU32()
	if err != nil {
		return nil, err
	}
	refresh, err := cur.ReadU32()
	if err != nil {
		return nil, err
	}
	retry, err := cur.ReadU32()
	if err != nil {
		return nil, err
	}
	expire, err := cur.ReadU32()
	if err != nil {
		return nil, err
	}
	minimum, err := cur.ReadU32()
	if err != nil {
		return nil, err
	}
	return domain.SOA{
		MName:   mname,
		RName:   rname,
		Serial:  serial,
		Refresh: refresh,
		Retry:   retry,
		Expire:  expire,
		Minimum: minimum,
	}, nil
}

func decodeSRV(cur *cursor.Cursor, rdlength int) (domain.RecordData, error) {
	priority, err := cur.ReadU16()
	if err != nil {
		return nil, err
	}
	weight, err := cur.ReadU16()
	if err != nil {
		return nil, err
	}
	port, err := cur.ReadU16()
	if err != nil {
		return nil, err
	}
	target, err := cur.ReadName()
	if err != nil {
		return nil, err
	}
	return domain.SRV{Priority: priority, Weight: weight, Port: port, Target: target}, nil
}

func decodeNAPTR(cur *cursor.Cursor, rdlength int) (domain.RecordData, error) {
	order, err := cur.ReadU16()
	if err != nil {
		return nil, err
	}
	preference, err := cur.ReadU16()
	if err != nil {
		return nil, err
	}
	flags, err := cur.ReadCharString()
	if err != nil {
		return nil, err
	}
	services, err := cur.ReadCharString()
	if err != nil {
		return nil, err
	}
	regexp, err := cur.ReadCharString()
	if err != nil {
		return nil, err
	}
	replacement, err := cur.ReadName()
	if err != nil {
		return nil, err
	}
	return domain.NAPTR{
		Order:       order,
		Preference:  preference,
		Flags:       flags,
		Services:    services,
		Regexp:      regexp,
		Replacement: replacement,
	}, nil
}
