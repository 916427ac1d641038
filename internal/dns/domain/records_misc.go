package domain

// URI holds a URI along with weight and priority values used to balance
// between several records (RFC 7553).
type URI struct {
	Priority uint16
	Weight   uint16
	Target   []byte
}

func (URI) RRType() RRType { return RRTypeURI }

// OPT is the EDNS(0) pseudo-record (RFC 6891). Unlike every other record
// type, its class and TTL fields are repurposed: class carries the
// sender's UDP payload size, and TTL carries the extended rcode, version,
// and flags.
type OPT struct {
	UDPPayloadSize uint16
	ExtendedRCode  uint8
	Version        uint8
	Flags          uint16
	Data           []byte
}

func (OPT) RRType() RRType { return RRTypeOPT }
