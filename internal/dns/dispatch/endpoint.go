package dispatch

import (
	"fmt"
	"strings"

	"github.com/haukened/dogo/internal/dns/transport"
)

// ParseEndpoint turns one -n/--nameserver argument into a transport.Endpoint.
// A value starting with a URL scheme is treated as a complete DoH URL; any
// other value is an addr[:port] pair (resolution of bare hostnames is left
// to the OS, per §4.4).
func ParseEndpoint(raw string) (transport.Endpoint, error) {
	if raw == "" {
		return transport.Endpoint{}, fmt.Errorf("empty nameserver")
	}
	if strings.HasPrefix(raw, "https://") || strings.HasPrefix(raw, "http://") {
		return transport.Endpoint{URL: raw}, nil
	}
	return transport.Endpoint{Addr: raw}, nil
}
