package domain

import "net"

// A is an IPv4 address record.
type A struct {
	Address net.IP
}

func (A) RRType() RRType { return RRTypeA }

func (a A) String() string { return a.Address.String() }

// AAAA is an IPv6 address record.
type AAAA struct {
	Address net.IP
}

func (AAAA) RRType() RRType { return RRTypeAAAA }

func (a AAAA) String() string { return a.Address.String() }
