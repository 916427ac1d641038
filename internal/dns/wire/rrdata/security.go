package rrdata

import (
	"github.com/haukened/dogo/internal/dns/domain"
	"github.com/haukened/dogo/internal/dns/wire/cursor"
)

func decodeSSHFP(cur *cursor.Cursor, rdlength int) (domain.RecordData, error) {
	algorithm, err := cur.ReadU8()
	if err != nil {
		return nil, err
	}
	fptype, err := cur.ReadU8()
	if err != nil {
		return nil, err
	}
	fp, err := readRemaining(cur, rdlength, 2)
	if err != nil {
		return nil, err
	}
	return domain.SSHFP{Algorithm: algorithm, FingerprintType: fptype, Fingerprint: fp}, nil
}

func decodeTLSA(cur *cursor.Cursor, rdlength int) (domain.RecordData, error) {
	usage, err := cur.ReadU8()
	if err != nil {
		return nil, err
	}
	selector, err := cur.ReadU8()
	if err != nil {
		return nil, err
	}
	matchingType, err := cur.ReadU8()
	if err != nil {
		return nil, err
	}
	cert, err := readRemaining(cur, rdlength, 3)
	if err != nil {
		return nil, err
	}
	return domain.TLSA{Usage: usage, Selector: selector, MatchingType: matchingType, CertData: cert}, nil
}

func decodeOPENPGPKEY(cur *cursor.Cursor, rdlength int) (domain.RecordData, error) {
	if rdlength < 1 {
		return nil, &WrongLength{Type: domain.RRTypeOPENPGPKEY, Stated: rdlength, Wanted: 1, AtLeast: true}
	}
	key, err := cur.ReadBytes(rdlength)
	if err != nil {
		return nil, err
	}
	return domain.OPENPGPKEY{Key: key}, nil
}
