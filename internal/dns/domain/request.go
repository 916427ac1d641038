package domain

// EDNSPolicy selects whether a query carries an OPT pseudo-record, and
// whether the (external) renderer should display it. Disable omits OPT
// entirely; both Hide and Show append it to the wire message, differing
// only in how the renderer treats it.
type EDNSPolicy int

const (
	EDNSDisable EDNSPolicy = iota
	EDNSHide
	EDNSShow
)

// DefaultUDPPayloadSize is the OPT record's default advertised buffer size
// when no -Z bufsize=N tweak is given.
const DefaultUDPPayloadSize uint16 = 512

// Tweaks are the optional header-bit and EDNS overrides selectable with
// -Z on the command line.
type Tweaks struct {
	AA         bool
	AD         bool
	CD         bool
	BufSize    uint16
	BufSizeSet bool
}

// RequestParams are the inputs needed to build one outgoing query message.
type RequestParams struct {
	Name   Name
	Type   RRType
	Class  RRClass
	TxID   uint16
	EDNS   EDNSPolicy
	Tweaks Tweaks
}

// BuildRequest assembles a query Message per §4.3: qr=0, opcode=0, rd=1
// always, with aa/ad/cd set from the tweaks; a single question; an OPT record appended
// to the additional section iff EDNS requests one.
func BuildRequest(p RequestParams) Message {
	flags := Flags{
		QR:     false,
		Opcode: 0,
		RD:     true,
		AA:     p.Tweaks.AA,
		AD:     p.Tweaks.AD,
		CD:     p.Tweaks.CD,
	}

	msg := Message{
		Header: Header{
			TxID:    p.TxID,
			Flags:   flags,
			QDCount: 1,
		},
		Questions: []Question{{Name: p.Name, Type: p.Type, Class: p.Class}},
	}

	if p.EDNS == EDNSHide || p.EDNS == EDNSShow {
		bufsize := DefaultUDPPayloadSize
		if p.Tweaks.BufSizeSet {
			bufsize = p.Tweaks.BufSize
		}
		msg.Additionals = append(msg.Additionals, ResourceRecord{
			Name: Name{},
			Type: RRTypeOPT,
			Data: OPT{UDPPayloadSize: bufsize},
		})
		msg.Header.ARCount = 1
	}

	return msg
}
