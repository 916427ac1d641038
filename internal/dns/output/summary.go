package output

import (
	"fmt"

	"github.com/haukened/dogo/internal/dns/domain"
)

// RecordSummary renders one record's rdata as the single-line human
// summary used by both the table and short renderers. Each record type
// carries wildly different data, so the format depends on what kind of
// record it is — mirrors the teacher-independent but spec-grounded
// per-type summary table from the original CLI this was distilled from.
func RecordSummary(data domain.RecordData) string {
	switch d := data.(type) {
	case domain.A:
		return d.Address.String()
	case domain.AAAA:
		return d.Address.String()
	case domain.CAA:
		state := "non-critical"
		if d.Critical {
			state = "critical"
		}
		return fmt.Sprintf("%s %s (%s)", EscapeText(d.Tag), EscapeText(d.Value), state)
	case domain.CNAME:
		return d.Target.String()
	case domain.EUI48:
		return d.FormattedAddress()
	case domain.EUI64:
		return d.FormattedAddress()
	case domain.HINFO:
		return fmt.Sprintf("%s %s", EscapeText(d.CPU), EscapeText(d.OS))
	case domain.LOC:
		return fmt.Sprintf("%s (%s, %s) (%s, %s, %s)",
			d.Size, d.HorizontalPrecision, d.VerticalPrecision,
			d.Latitude, d.Longitude, d.Altitude)
	case domain.MX:
		return fmt.Sprintf("%d %s", d.Preference, d.Exchange)
	case domain.NAPTR:
		return fmt.Sprintf("%d %d %s %s %s %s",
			d.Order, d.Preference, EscapeText(d.Flags), EscapeText(d.Services), EscapeText(d.Regexp), d.Replacement)
	case domain.NS:
		return d.Nameserver.String()
	case domain.OPENPGPKEY:
		return d.Base64Key()
	case domain.OPT:
		return fmt.Sprintf("udp=%d rcode=%d version=%d flags=%#04x", d.UDPPayloadSize, d.ExtendedRCode, d.Version, d.Flags)
	case domain.PTR:
		return d.Target.String()
	case domain.SOA:
		return fmt.Sprintf("%s %s %d %d %d %d %d",
			d.MName, d.RName, d.Serial, d.Refresh, d.Retry, d.Expire, d.Minimum)
	case domain.SRV:
		return fmt.Sprintf("%d %d %d %s", d.Priority, d.Weight, d.Port, d.Target)
	case domain.SSHFP:
		return fmt.Sprintf("%d %d %s", d.Algorithm, d.FingerprintType, d.HexFingerprint())
	case domain.TLSA:
		return fmt.Sprintf("%d %d %d %s", d.Usage, d.Selector, d.MatchingType, d.HexCertData())
	case domain.TXT:
		out := ""
		for i, v := range d.Values {
			if i > 0 {
				out += " "
			}
			out += fmt.Sprintf("%q", EscapeText(v))
		}
		return out
	case domain.URI:
		return fmt.Sprintf("%d %d %s", d.Priority, d.Weight, EscapeText(d.Target))
	case domain.Other:
		return fmt.Sprintf("(%s, %d bytes)", d.Code, len(d.Data))
	default:
		return fmt.Sprintf("%v", d)
	}
}
