package rrdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haukened/dogo/internal/dns/domain"
	"github.com/haukened/dogo/internal/dns/wire/cursor"
)

func TestDecode_A(t *testing.T) {
	cur := cursor.New([]byte{0x7F, 0x00, 0x00, 0x01})
	data, err := Decode(domain.RRTypeA, cur, 4)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1", data.(domain.A).Address.String())
}

func TestDecode_A_WrongLength(t *testing.T) {
	cur := cursor.New([]byte{0x7F, 0x00, 0x00, 0x00, 0x01})
	_, err := Decode(domain.RRTypeA, cur, 5)
	require.Error(t, err)
	assert.Equal(t, "record length should be 4, got 5", err.Error())
}

func TestDecode_A_TooShort(t *testing.T) {
	cur := cursor.New([]byte{0x7F, 0x00, 0x00})
	_, err := Decode(domain.RRTypeA, cur, 3)
	require.Error(t, err)
	assert.Equal(t, "record length should be 4, got 3", err.Error())
}

func TestDecode_AAAA(t *testing.T) {
	addr := []byte{0x20, 0x01, 0x0d, 0xb8, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1}
	cur := cursor.New(addr)
	data, err := Decode(domain.RRTypeAAAA, cur, 16)
	require.NoError(t, err)
	assert.Equal(t, "2001:db8::1", data.(domain.AAAA).Address.String())
}

func TestDecode_EUI48_EUI64(t *testing.T) {
	cur48 := cursor.New([]byte{1, 2, 3, 4, 5, 6})
	d48, err := Decode(domain.RRTypeEUI48, cur48, 6)
	require.NoError(t, err)
	assert.Equal(t, "01-02-03-04-05-06", d48.(domain.EUI48).FormattedAddress())

	cur64 := cursor.New([]byte{1, 2, 3, 4, 5, 6, 7, 8})
	d64, err := Decode(domain.RRTypeEUI64, cur64, 8)
	require.NoError(t, err)
	assert.Equal(t, "01-02-03-04-05-06-07-08", d64.(domain.EUI64).FormattedAddress())
}

func TestDecode_CNAME(t *testing.T) {
	buf := []byte{3, 'o', 'n', 'e', 0}
	cur := cursor.New(buf)
	data, err := Decode(domain.RRTypeCNAME, cur, len(buf))
	require.NoError(t, err)
	assert.Equal(t, "one.", data.(domain.CNAME).Target.String())
}

func TestDecode_MX(t *testing.T) {
	buf := []byte{0x00, 0x0A, 3, 'm', 'x', '1', 0}
	cur := cursor.New(buf)
	data, err := Decode(domain.RRTypeMX, cur, len(buf))
	require.NoError(t, err)
	mx := data.(domain.MX)
	assert.Equal(t, uint16(10), mx.Preference)
	assert.Equal(t, "mx1.", mx.Exchange.String())
}

func TestDecode_SOA(t *testing.T) {
	buf := []byte{
		1, 'a', 0,
		2, 'm', 'x', 0,
		0x78, 0x68, 0x52, 0x2c,
		0x00, 0x00, 0x07, 0x08,
		0x00, 0x00, 0x03, 0x84,
		0x00, 0x09, 0x3a, 0x80,
		0x00, 0x01, 0x51, 0x80,
	}
	cur := cursor.New(buf)
	data, err := Decode(domain.RRTypeSOA, cur, len(buf))
	require.NoError(t, err)
	soa := data.(domain.SOA)
	assert.Equal(t, "a.", soa.MName.String())
	assert.Equal(t, "mx.", soa.RName.String())
	assert.Equal(t, uint32(2020102700), soa.Serial)
	assert.Equal(t, uint32(86400), soa.Minimum)
}

func TestDecode_TXT(t *testing.T) {
	buf := []byte{3, 'f', 'o', 'o', 3, 'b', 'a', 'r'}
	cur := cursor.New(buf)
	data, err := Decode(domain.RRTypeTXT, cur, len(buf))
	require.NoError(t, err)
	assert.Equal(t, "foobar", data.(domain.TXT).Joined())
}

func TestDecode_HINFO(t *testing.T) {
	buf := []byte{3, 'x', '8', '6', 5, 'l', 'i', 'n', 'u', 'x'}
	cur := cursor.New(buf)
	data, err := Decode(domain.RRTypeHINFO, cur, len(buf))
	require.NoError(t, err)
	h := data.(domain.HINFO)
	assert.Equal(t, []byte("x86"), h.CPU)
	assert.Equal(t, []byte("linux"), h.OS)
}

func TestDecode_CAA(t *testing.T) {
	buf := []byte{0x80, 5, 'i', 's', 's', 'u', 'e', 'l', 'e', 't', 's'}
	cur := cursor.New(buf)
	data, err := Decode(domain.RRTypeCAA, cur, len(buf))
	require.NoError(t, err)
	caa := data.(domain.CAA)
	assert.True(t, caa.Critical)
	assert.Equal(t, []byte("issue"), caa.Tag)
	assert.Equal(t, []byte("lets"), caa.Value)
}

func TestDecode_CAA_TooShort(t *testing.T) {
	cur := cursor.New([]byte{0x80})
	_, err := Decode(domain.RRTypeCAA, cur, 1)
	require.Error(t, err)
	assert.Equal(t, "record length should be at least 2, got 1", err.Error())
}

func TestDecode_SSHFP(t *testing.T) {
	buf := []byte{1, 1, 0xAB, 0xCD}
	cur := cursor.New(buf)
	data, err := Decode(domain.RRTypeSSHFP, cur, len(buf))
	require.NoError(t, err)
	s := data.(domain.SSHFP)
	assert.Equal(t, uint8(1), s.Algorithm)
	assert.Equal(t, "abcd", s.HexFingerprint())
}

func TestDecode_TLSA(t *testing.T) {
	buf := []byte{3, 1, 1, 0xDE, 0xAD}
	cur := cursor.New(buf)
	data, err := Decode(domain.RRTypeTLSA, cur, len(buf))
	require.NoError(t, err)
	tl := data.(domain.TLSA)
	assert.Equal(t, uint8(3), tl.Usage)
	assert.Equal(t, "dead", tl.HexCertData())
}

func TestDecode_OPENPGPKEY_TooShort(t *testing.T) {
	cur := cursor.New([]byte{})
	_, err := Decode(domain.RRTypeOPENPGPKEY, cur, 0)
	require.Error(t, err)
	assert.Equal(t, "record length should be at least 1, got 0", err.Error())
}

func TestDecode_URI(t *testing.T) {
	buf := []byte{0, 1, 0, 10, 'h', 't', 't', 'p'}
	cur := cursor.New(buf)
	data, err := Decode(domain.RRTypeURI, cur, len(buf))
	require.NoError(t, err)
	u := data.(domain.URI)
	assert.Equal(t, uint16(1), u.Priority)
	assert.Equal(t, uint16(10), u.Weight)
	assert.Equal(t, []byte("http"), u.Target)
}

func TestDecode_URI_TooShort(t *testing.T) {
	cur := cursor.New([]byte{0, 1, 0, 10})
	_, err := Decode(domain.RRTypeURI, cur, 4)
	require.Error(t, err)
	assert.Equal(t, "record length should be at least 5, got 4", err.Error())
}

func TestDecode_LOC_WrongVersion(t *testing.T) {
	buf := make([]byte, 16)
	buf[0] = 1
	cur := cursor.New(buf)
	_, err := Decode(domain.RRTypeLOC, cur, len(buf))
	require.Error(t, err)
	assert.Equal(t, "record specifies version 1, expected up to 0", err.Error())
}

func TestDecode_LOC_TooShort(t *testing.T) {
	cur := cursor.New(make([]byte, 10))
	_, err := Decode(domain.RRTypeLOC, cur, 10)
	require.Error(t, err)
	assert.Equal(t, "record length should be at least 16, got 10", err.Error())
}

func TestDecode_LOC_OutOfRange(t *testing.T) {
	buf := make([]byte, 16)
	buf[1] = 0xFF // size nibbles out of range
	cur := cursor.New(buf)
	data, err := Decode(domain.RRTypeLOC, cur, len(buf))
	require.NoError(t, err)
	loc := data.(domain.LOC)
	assert.Contains(t, loc.Size.String(), "out-of-range")
}

func TestDecode_UnknownType_IsOther(t *testing.T) {
	cur := cursor.New([]byte{0x12, 0x34})
	data, err := Decode(domain.RRTypeDS, cur, 2)
	require.NoError(t, err)
	other := data.(domain.Other)
	assert.Equal(t, domain.RRTypeDS, other.Code)
	assert.Equal(t, []byte{0x12, 0x34}, other.Data)
}
