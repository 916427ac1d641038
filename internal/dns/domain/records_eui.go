package domain

import "fmt"

// EUI48 holds a six-octet (48-bit) Extended Unique Identifier, often used
// as a MAC address (RFC 7043).
type EUI48 struct {
	Octets [6]byte
}

func (EUI48) RRType() RRType { return RRTypeEUI48 }

// FormattedAddress renders the identifier as dash-separated hex octets.
func (e EUI48) FormattedAddress() string {
	return fmt.Sprintf("%02x-%02x-%02x-%02x-%02x-%02x",
		e.Octets[0], e.Octets[1], e.Octets[2], e.Octets[3], e.Octets[4], e.Octets[5])
}

// EUI64 holds an eight-octet (64-bit) Extended Unique Identifier.
type EUI64 struct {
	Octets [8]byte
}

func (EUI64) RRType() RRType { return RRTypeEUI64 }

// FormattedAddress renders the identifier as dash-separated hex octets.
func (e EUI64) FormattedAddress() string {
	return fmt.Sprintf("%02x-%02x-%02x-%02x-%02x-%02x-%02x-%02x",
		e.Octets[0], e.Octets[1], e.Octets[2], e.Octets[3],
		e.Octets[4], e.Octets[5], e.Octets[6], e.Octets[7])
}
