package transport

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"net"

	"github.com/haukened/dogo/internal/dns/common/log"
)

const defaultDoTPort = "853"

// TLSTransport is DNS-over-TLS: the same u16 length-prefixed framing as
// TCPTransport, carried over an authenticated TLS connection. Hostname
// verification is never disabled; RootCAs defaults to the system trust
// store and exists as a field only so tests can supply a private CA.
type TLSTransport struct {
	logger  log.Logger
	RootCAs *x509.CertPool
}

// NewTLSTransport builds a TLSTransport that logs through logger and
// verifies against the system trust store.
func NewTLSTransport(logger log.Logger) *TLSTransport {
	return &TLSTransport{logger: logger}
}

func (t *TLSTransport) Send(ctx context.Context, request []byte, endpoint Endpoint) ([]byte, error) {
	ctx, cancel := withDeadline(ctx)
	defer cancel()

	addr := withDefaultPort(endpoint.Addr, defaultDoTPort)
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		host = addr
	}

	var d net.Dialer
	rawConn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("dial tls %s: %w", addr, err)
	}

	if deadline, ok := ctx.Deadline(); ok {
		_ = rawConn.SetDeadline(deadline)
	}

	conn := tls.Client(rawConn, &tls.Config{
		ServerName: host,
		MinVersion: tls.VersionTLS12,
		RootCAs:    t.RootCAs,
	})
	if err := conn.HandshakeContext(ctx); err != nil {
		rawConn.Close()
		return nil, fmt.Errorf("tls handshake %s: %w", addr, err)
	}
	defer conn.Close()

	return sendFramed(conn, addr, request, t.logger)
}
