package domain

import "encoding/base64"

// SSHFP carries the fingerprint of an SSH host key (RFC 4255).
type SSHFP struct {
	Algorithm       uint8
	FingerprintType uint8
	Fingerprint     []byte
}

func (SSHFP) RRType() RRType { return RRTypeSSHFP }

// HexFingerprint renders the fingerprint as lowercase hex, the conventional
// display form for SSHFP records.
func (s SSHFP) HexFingerprint() string { return hexLower(s.Fingerprint) }

// TLSA associates a TLS certificate, or a hash of one, with a domain (DANE,
// RFC 6698).
type TLSA struct {
	Usage        uint8
	Selector     uint8
	MatchingType uint8
	CertData     []byte
}

func (TLSA) RRType() RRType { return RRTypeTLSA }

// HexCertData renders the certificate association data as lowercase hex.
func (t TLSA) HexCertData() string { return hexLower(t.CertData) }

// OPENPGPKEY carries an OpenPGP public key (RFC 7929).
type OPENPGPKEY struct {
	Key []byte
}

func (OPENPGPKEY) RRType() RRType { return RRTypeOPENPGPKEY }

// Base64Key renders the key using standard base64, the conventional display
// form for OPENPGPKEY records.
func (o OPENPGPKEY) Base64Key() string { return base64.StdEncoding.EncodeToString(o.Key) }

func hexLower(b []byte) string {
	const digits = "0123456789abcdef"
	out := make([]byte, len(b)*2)
	for i, c := range b {
		out[i*2] = digits[c>>4]
		out[i*2+1] = digits[c&0x0F]
	}
	return string(out)
}
