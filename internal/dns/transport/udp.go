package transport

import (
	"context"
	"fmt"
	"net"

	"github.com/haukened/dogo/internal/dns/common/log"
)

const defaultDNSPort = "53"
const maxUDPResponseSize = 65535

// UDPTransport sends one datagram and awaits one reply.
type UDPTransport struct {
	logger log.Logger
}

// NewUDPTransport builds a UDPTransport that logs through logger.
func NewUDPTransport(logger log.Logger) *UDPTransport {
	return &UDPTransport{logger: logger}
}

func (t *UDPTransport) Send(ctx context.Context, request []byte, endpoint Endpoint) ([]byte, error) {
	ctx, cancel := withDeadline(ctx)
	defer cancel()

	addr := withDefaultPort(endpoint.Addr, defaultDNSPort)

	var d net.Dialer
	conn, err := d.DialContext(ctx, "udp", addr)
	if err != nil {
		return nil, fmt.Errorf("dial udp %s: %w", addr, err)
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	if _, err := conn.Write(request); err != nil {
		return nil, fmt.Errorf("write udp %s: %w", addr, err)
	}
	t.logger.Debug(map[string]any{"addr": addr, "bytes": len(request)}, "sent udp query")

	buf := make([]byte, maxUDPResponseSize)
	n, err := conn.Read(buf)
	if err != nil {
		if isTimeout(err) {
			return nil, &TimeoutError{Op: "udp read"}
		}
		return nil, fmt.Errorf("read udp %s: %w", addr, err)
	}
	t.logger.Debug(map[string]any{"addr": addr, "bytes": n}, "received udp response")

	return buf[:n], nil
}

func isTimeout(err error) bool {
	var ne net.Error
	if e, ok := err.(net.Error); ok {
		ne = e
		return ne.Timeout()
	}
	return false
}

// withDefaultPort appends defaultPort if addr has none, honoring bracketed
// IPv6 literals.
func withDefaultPort(addr, defaultPort string) string {
	if _, _, err := net.SplitHostPort(addr); err == nil {
		return addr
	}
	return net.JoinHostPort(addr, defaultPort)
}
