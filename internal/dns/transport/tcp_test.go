package transport

import (
	"context"
	"encoding/binary"
	"net"
	"testing"

	"github.com/stretchr/testify/require"
)

// echoTCPServer binds an ephemeral TCP socket, accepts one connection, reads
// one length-prefixed frame, and writes reply back length-prefixed.
func echoTCPServer(t *testing.T, reply []byte) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()

		var prefix [2]byte
		if _, err := conn.Read(prefix[:]); err != nil {
			return
		}
		want := int(binary.BigEndian.Uint16(prefix[:]))
		body := make([]byte, want)
		_, _ = conn.Read(body)

		var respPrefix [2]byte
		binary.BigEndian.PutUint16(respPrefix[:], uint16(len(reply)))
		conn.Write(respPrefix[:])
		conn.Write(reply)
	}()

	return ln.Addr().String()
}

func TestTCPTransport_Send(t *testing.T) {
	want := []byte{0x01, 0x02, 0x03, 0x04}
	addr := echoTCPServer(t, want)

	tr := NewTCPTransport(&testLogger{})
	got, err := tr.Send(context.Background(), []byte{0xff, 0xee}, Endpoint{Addr: addr})
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestTCPTransport_Send_TruncatedStream(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		var prefix [2]byte
		conn.Read(prefix[:])
		body := make([]byte, int(binary.BigEndian.Uint16(prefix[:])))
		conn.Read(body)

		// Claim a 10-byte response, then close after writing only 2.
		var respPrefix [2]byte
		binary.BigEndian.PutUint16(respPrefix[:], 10)
		conn.Write(respPrefix[:])
		conn.Write([]byte{0x01, 0x02})
	}()

	tr := NewTCPTransport(&testLogger{})
	_, err = tr.Send(context.Background(), []byte{0x01}, Endpoint{Addr: ln.Addr().String()})
	require.Error(t, err)
	var truncated *TruncatedStreamError
	require.ErrorAs(t, err, &truncated)
	require.Equal(t, 10, truncated.Want)
}
