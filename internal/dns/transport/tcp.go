package transport

import (
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"net"

	"github.com/haukened/dogo/internal/dns/common/log"
)

// TCPTransport sends one u16-length-prefixed message and reads one back.
type TCPTransport struct {
	logger log.Logger
}

// NewTCPTransport builds a TCPTransport that logs through logger.
func NewTCPTransport(logger log.Logger) *TCPTransport {
	return &TCPTransport{logger: logger}
}

func (t *TCPTransport) Send(ctx context.Context, request []byte, endpoint Endpoint) ([]byte, error) {
	ctx, cancel := withDeadline(ctx)
	defer cancel()

	addr := withDefaultPort(endpoint.Addr, defaultDNSPort)

	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("dial tcp %s: %w", addr, err)
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	return sendFramed(conn, addr, request, t.logger)
}

// sendFramed writes a u16 BE length prefix followed by request, then reads
// back a length prefix and exactly that many bytes. Shared by TCP and TLS,
// which differ only in how the net.Conn is established.
func sendFramed(conn net.Conn, addr string, request []byte, logger log.Logger) ([]byte, error) {
	var prefix [2]byte
	binary.BigEndian.PutUint16(prefix[:], uint16(len(request)))

	if _, err := conn.Write(prefix[:]); err != nil {
		return nil, fmt.Errorf("write length prefix %s: %w", addr, err)
	}
	if _, err := conn.Write(request); err != nil {
		return nil, fmt.Errorf("write tcp %s: %w", addr, err)
	}
	logger.Debug(map[string]any{"addr": addr, "bytes": len(request)}, "sent framed query")

	var respPrefix [2]byte
	if _, err := io.ReadFull(conn, respPrefix[:]); err != nil {
		if isTimeout(err) {
			return nil, &TimeoutError{Op: "tcp length prefix"}
		}
		return nil, fmt.Errorf("read length prefix %s: %w", addr, err)
	}
	want := int(binary.BigEndian.Uint16(respPrefix[:]))

	buf := make([]byte, want)
	n, err := io.ReadFull(conn, buf)
	if err != nil {
		if isTimeout(err) {
			return nil, &TimeoutError{Op: "tcp body"}
		}
		if err == io.ErrUnexpectedEOF || err == io.EOF {
			return nil, &TruncatedStreamError{Want: want, Got: n}
		}
		return nil, fmt.Errorf("read tcp body %s: %w", addr, err)
	}
	logger.Debug(map[string]any{"addr": addr, "bytes": n}, "received framed response")

	return buf, nil
}
