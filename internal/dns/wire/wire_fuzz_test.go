package wire

import (
	"testing"

	"github.com/haukened/dogo/internal/dns/dogerrors"
)

// FuzzDecodeMessage drives Testable Property 2: for every byte sequence,
// decode either returns a message or a ProtocolError, never a panic, an
// infinite loop, or an out-of-bounds read. go test -fuzz mutates the seed
// corpus below; a plain `go test` just replays it.
func FuzzDecodeMessage(f *testing.F) {
	f.Add(responseFixture())
	f.Add([]byte{})
	f.Add([]byte{0x00})
	f.Add([]byte{0xc0, 0xc0, 0xc0, 0xc0}) // self-referential compression pointer
	f.Add(make([]byte, 12))               // header only, zero counts claimed wrong

	f.Fuzz(func(t *testing.T, data []byte) {
		_, err := DecodeMessage(data)
		if err == nil {
			return
		}
		if _, ok := err.(*dogerrors.ProtocolError); !ok {
			t.Fatalf("decode returned a non-ProtocolError error: %v (%T)", err, err)
		}
	})
}
