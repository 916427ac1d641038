// Package wire implements RFC 1035 message encoding and decoding: the
// 12-byte header, question section, and the three resource-record
// sections, dispatching rdata parsing to rrdata and name decompression to
// cursor.
package wire

import (
	"bytes"
	"encoding/binary"

	"github.com/haukened/dogo/internal/dns/dogerrors"
	"github.com/haukened/dogo/internal/dns/domain"
	"github.com/haukened/dogo/internal/dns/wire/cursor"
	"github.com/haukened/dogo/internal/dns/wire/rrdata"
)

// EncodeRequest serializes a Message built by domain.BuildRequest into its
// wire form. Names are never compressed on encode, per §4.1.
func EncodeRequest(msg domain.Message) ([]byte, error) {
	var buf bytes.Buffer

	writeU16(&buf, msg.Header.TxID)
	writeU16(&buf, msg.Header.Flags.Encode())
	writeU16(&buf, uint16(len(msg.Questions)))
	writeU16(&buf, uint16(len(msg.Answers)))
	writeU16(&buf, uint16(len(msg.Authorities)))
	writeU16(&buf, uint16(len(msg.Additionals)))

	for _, q := range msg.Questions {
		if err := q.Name.Validate(); err != nil {
			return nil, err
		}
		encodeName(&buf, q.Name)
		writeU16(&buf, uint16(q.Type))
		writeU16(&buf, uint16(q.Class))
	}

	for _, rr := range append(append([]domain.ResourceRecord{}, msg.Answers...), msg.Authorities...) {
		if err := encodeResourceRecord(&buf, rr); err != nil {
			return nil, err
		}
	}
	for _, rr := range msg.Additionals {
		if err := encodeResourceRecord(&buf, rr); err != nil {
			return nil, err
		}
	}

	return buf.Bytes(), nil
}

func writeU16(buf *bytes.Buffer, v uint16) {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	buf.Write(b[:])
}

func writeU32(buf *bytes.Buffer, v uint32) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	buf.Write(b[:])
}

// encodeName writes a name label-length-prefixed, terminated by a zero
// byte, without compression.
func encodeName(buf *bytes.Buffer, name domain.Name) {
	for _, l := range name.Labels {
		buf.WriteByte(byte(len(l)))
		buf.Write(l)
	}
	buf.WriteByte(0)
}

// encodeResourceRecord writes one RR. OPT is special-cased: its class
// field carries the advertised UDP payload size and its TTL field carries
// the extended rcode, version, and flags (RFC 6891 §6.1.3).
func encodeResourceRecord(buf *bytes.Buffer, rr domain.ResourceRecord) error {
	encodeName(buf, rr.Name)
	writeU16(buf, uint16(rr.Type))

	if opt, ok := rr.Data.(domain.OPT); ok {
		writeU16(buf, opt.UDPPayloadSize)
		ttl := uint32(opt.ExtendedRCode)<<24 | uint32(opt.Version)<<16 | uint32(opt.Flags)
		writeU32(buf, ttl)
		writeU16(buf, uint16(len(opt.Data)))
		buf.Write(opt.Data)
		return nil
	}

	writeU16(buf, uint16(rr.Class))
	writeU32(buf, rr.TTL)

	other, ok := rr.Data.(domain.Other)
	if !ok {
		other = domain.Other{Code: rr.Type, Data: nil}
	}
	writeU16(buf, uint16(len(other.Data)))
	buf.Write(other.Data)
	return nil
}

// DecodeMessage parses a complete DNS message, dispatching per-type rdata
// decoding to rrdata.Decode. Every decode violation is wrapped in a
// dogerrors.ProtocolError.
func DecodeMessage(data []byte) (domain.Message, error) {
	msg, err := decodeMessage(data)
	if err != nil {
		return domain.Message{}, &dogerrors.ProtocolError{Cause: err}
	}
	return msg, nil
}

func decodeMessage(data []byte) (domain.Message, error) {
	cur := cursor.New(data)

	txid, err := cur.ReadU16()
	if err != nil {
		return domain.Message{}, err
	}
	flagWord, err := cur.ReadU16()
	if err != nil {
		return domain.Message{}, err
	}
	qdcount, err := cur.ReadU16()
	if err != nil {
		return domain.Message{}, err
	}
	ancount, err := cur.ReadU16()
	if err != nil {
		return domain.Message{}, err
	}
	nscount, err := cur.ReadU16()
	if err != nil {
		return domain.Message{}, err
	}
	arcount, err := cur.ReadU16()
	if err != nil {
		return domain.Message{}, err
	}

	msg := domain.Message{
		Header: domain.Header{
			TxID:    txid,
			Flags:   domain.DecodeFlags(flagWord),
			QDCount: qdcount,
			ANCount: ancount,
			NSCount: nscount,
			ARCount: arcount,
		},
	}

	for i := 0; i < int(qdcount); i++ {
		q, err := decodeQuestion(cur)
		if err != nil {
			return domain.Message{}, err
		}
		msg.Questions = append(msg.Questions, q)
	}

	for i := 0; i < int(ancount); i++ {
		rr, err := decodeResourceRecord(cur)
		if err != nil {
			return domain.Message{}, err
		}
		msg.Answers = append(msg.Answers, rr)
	}
	for i := 0; i < int(nscount); i++ {
		rr, err := decodeResourceRecord(cur)
		if err != nil {
			return domain.Message{}, err
		}
		msg.Authorities = append(msg.Authorities, rr)
	}
	for i := 0; i < int(arcount); i++ {
		rr, err := decodeResourceRecord(cur)
		if err != nil {
			return domain.Message{}, err
		}
		msg.Additionals = append(msg.Additionals, rr)
	}

	return msg, nil
}

func decodeQuestion(cur *cursor.Cursor) (domain.Question, error) {
	name, err := cur.ReadName()
	if err != nil {
		return domain.Question{}, err
	}
	qtype, err := cur.ReadU16()
	if err != nil {
		return domain.Question{}, err
	}
	qclass, err := cur.ReadU16()
	if err != nil {
		return domain.Question{}, err
	}
	return domain.Question{Name: name, Type: domain.RRType(qtype), Class: domain.RRClass(qclass)}, nil
}

// decodeResourceRecord reads one RR. OPT is intercepted before the generic
// class/TTL/rdata read, because its class and TTL fields are repurposed.
func decodeResourceRecord(cur *cursor.Cursor) (domain.ResourceRecord, error) {
	name, err := cur.ReadName()
	if err != nil {
		return domain.ResourceRecord{}, err
	}
	rtype, err := cur.ReadU16()
	if err != nil {
		return domain.ResourceRecord{}, err
	}
	rrType := domain.RRType(rtype)

	if rrType == domain.RRTypeOPT {
		return decodeOPTRecord(cur, name)
	}

	rclass, err := cur.ReadU16()
	if err != nil {
		return domain.ResourceRecord{}, err
	}
	ttl, err := cur.ReadU32()
	if err != nil {
		return domain.ResourceRecord{}, err
	}
	rdlength, err := cur.ReadU16()
	if err != nil {
		return domain.ResourceRecord{}, err
	}

	data, err := rrdata.Decode(rrType, cur, int(rdlength))
	if err != nil {
		return domain.ResourceRecord{}, err
	}

	return domain.ResourceRecord{
		Name:     name,
		Type:     rrType,
		Class:    domain.RRClass(rclass),
		TTL:      ttl,
		RDLength: rdlength,
		Data:     data,
	}, nil
}

func decodeOPTRecord(cur *cursor.Cursor, name domain.Name) (domain.ResourceRecord, error) {
	udpPayloadSize, err := cur.ReadU16()
	if err != nil {
		return domain.ResourceRecord{}, err
	}
	ttl, err := cur.ReadU32()
	if err != nil {
		return domain.ResourceRecord{}, err
	}
	rdlength, err := cur.ReadU16()
	if err != nil {
		return domain.ResourceRecord{}, err
	}
	rdata, err := cur.ReadBytes(int(rdlength))
	if err != nil {
		return domain.ResourceRecord{}, err
	}

	opt := domain.OPT{
		UDPPayloadSize: udpPayloadSize,
		ExtendedRCode:  uint8(ttl >> 24),
		Version:        uint8(ttl >> 16),
		Flags:          uint16(ttl),
		Data:           rdata,
	}

	return domain.ResourceRecord{
		Name:     name,
		Type:     domain.RRTypeOPT,
		RDLength: rdlength,
		Data:     opt,
	}, nil
}
