package domain

// MX names a mail exchange server and its preference relative to other MX
// records for the same domain.
type MX struct {
	Preference uint16
	Exchange   Name
}

func (MX) RRType() RRType { return RRTypeMX }

// SOA carries administrative information about the zone a domain lives in.
type SOA struct {
	MName   Name
	RName   Name
	Serial  uint32
	Refresh uint32
	Retry   uint32
	Expire  uint32
	Minimum uint32
}

func (SOA) RRType() RRType { return RRTypeSOA }

// SRV locates a service by host and port, with priority/weight load
// balancing (RFC 2782).
type SRV struct {
	Priority uint16
	Weight   uint16
	Port     uint16
	Target   Name
}

func (SRV) RRType() RRType { return RRTypeSRV }
