package output

import (
	"encoding/json"
	"io"

	"github.com/haukened/dogo/internal/dns/dispatch"
	"github.com/haukened/dogo/internal/dns/domain"
)

type jsonQuestion struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Class string `json:"class"`
}

type jsonRecord struct {
	Name string      `json:"name"`
	Type string      `json:"type"`
	TTL  uint32      `json:"ttl"`
	Data interface{} `json:"data"`
}

type jsonOutcome struct {
	Query       jsonQuestion `json:"query"`
	Endpoint    string       `json:"endpoint,omitempty"`
	Transport   string       `json:"transport"`
	Answers     []jsonRecord `json:"answers,omitempty"`
	Authorities []jsonRecord `json:"authorities,omitempty"`
	Additionals []jsonRecord `json:"additionals,omitempty"`
	Truncated   bool         `json:"truncated,omitempty"`
	Error       string       `json:"error,omitempty"`
	DurationMS  int64        `json:"duration_ms,omitempty"`
}

// WriteJSON renders every outcome as a JSON array. Invalid UTF-8 within any
// record's text fields is substituted with U+FFFD by encoding/json itself
// — the Go stdlib does this for every string it marshals, so the JSON
// adapter needs no escaping logic of its own (Testable Property 8).
func WriteJSON(w io.Writer, outcomes []dispatch.Outcome, opts Options) error {
	rendered := make([]jsonOutcome, 0, len(outcomes))
	for _, o := range outcomes {
		jo := jsonOutcome{
			Query: jsonQuestion{
				Name:  o.Request.Questions[0].Name.String(),
				Type:  o.Request.Questions[0].Type.String(),
				Class: o.Request.Questions[0].Class.String(),
			},
			Endpoint:   o.Endpoint.Addr + o.Endpoint.URL,
			Transport:  o.Transport.String(),
			Truncated:  o.Truncated,
			DurationMS: o.Duration.Milliseconds(),
		}
		if o.Err != nil {
			jo.Error = o.Err.Error()
		} else {
			jo.Answers = toJSONRecords(o.Response.Answers)
			jo.Authorities = toJSONRecords(o.Response.Authorities)
			jo.Additionals = toJSONRecords(o.Response.Additionals)
		}
		rendered = append(rendered, jo)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rendered)
}

func toJSONRecords(rrs []domain.ResourceRecord) []jsonRecord {
	out := make([]jsonRecord, 0, len(rrs))
	for _, rr := range rrs {
		out = append(out, jsonRecord{
			Name: rr.Name.String(),
			Type: rr.Type.String(),
			TTL:  rr.TTL,
			Data: jsonRecordData(rr.Data),
		})
	}
	return out
}

// jsonRecordData mirrors RecordSummary's type switch but keeps each field
// separate and leaves byte slices as raw (unescaped) strings.
func jsonRecordData(data domain.RecordData) interface{} {
	switch d := data.(type) {
	case domain.A:
		return d.Address.String()
	case domain.AAAA:
		return d.Address.String()
	case domain.CAA:
		return map[string]interface{}{"critical": d.Critical, "tag": string(d.Tag), "value": string(d.Value)}
	case domain.CNAME:
		return d.Target.String()
	case domain.EUI48:
		return d.FormattedAddress()
	case domain.EUI64:
		return d.FormattedAddress()
	case domain.HINFO:
		return map[string]interface{}{"cpu": string(d.CPU), "os": string(d.OS)}
	case domain.LOC:
		return map[string]interface{}{
			"size": d.Size.String(), "horizontal_precision": d.HorizontalPrecision.String(),
			"vertical_precision": d.VerticalPrecision.String(),
			"latitude":           d.Latitude.String(), "longitude": d.Longitude.String(),
			"altitude": d.Altitude.String(),
		}
	case domain.MX:
		return map[string]interface{}{"preference": d.Preference, "exchange": d.Exchange.String()}
	case domain.NAPTR:
		return map[string]interface{}{
			"order": d.Order, "preference": d.Preference, "flags": string(d.Flags),
			"service": string(d.Services), "regexp": string(d.Regexp), "replacement": d.Replacement.String(),
		}
	case domain.NS:
		return d.Nameserver.String()
	case domain.OPENPGPKEY:
		return d.Base64Key()
	case domain.OPT:
		return map[string]interface{}{
			"udp_payload_size": d.UDPPayloadSize, "extended_rcode": d.ExtendedRCode,
			"version": d.Version, "flags": d.Flags,
		}
	case domain.PTR:
		return d.Target.String()
	case domain.SOA:
		return map[string]interface{}{
			"mname": d.MName.String(), "rname": d.RName.String(), "serial": d.Serial,
			"refresh": d.Refresh, "retry": d.Retry, "expire": d.Expire, "minimum": d.Minimum,
		}
	case domain.SRV:
		return map[string]interface{}{"priority": d.Priority, "weight": d.Weight, "port": d.Port, "target": d.Target.String()}
	case domain.SSHFP:
		return map[string]interface{}{"algorithm": d.Algorithm, "type": d.FingerprintType, "fingerprint": d.HexFingerprint()}
	case domain.TLSA:
		return map[string]interface{}{"usage": d.Usage, "selector": d.Selector, "matching_type": d.MatchingType, "cert_data": d.HexCertData()}
	case domain.TXT:
		values := make([]string, len(d.Values))
		for i, v := range d.Values {
			values[i] = string(v)
		}
		return values
	case domain.URI:
		return map[string]interface{}{"priority": d.Priority, "weight": d.Weight, "target": string(d.Target)}
	case domain.Other:
		return map[string]interface{}{"code": d.Code.String(), "bytes": len(d.Data)}
	default:
		return nil
	}
}
