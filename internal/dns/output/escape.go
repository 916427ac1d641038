package output

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// EscapeText renders b for the plain-text/table adapter: printable ASCII
// (0x20–0x7e) passes through unchanged; control bytes and any byte ≥0x80
// that is not part of a valid UTF-8 sequence become \xHH, per §4.1 (the
// JSON adapter instead relies on encoding/json's own U+FFFD substitution
// for invalid UTF-8 in a Go string). A valid multi-byte UTF-8 sequence
// passes through unchanged. '"' and '\\' are printable ASCII and also pass
// through unchanged here, unlike domain.Name.String, which backslash-escapes
// them.
func EscapeText(b []byte) string {
	var out strings.Builder
	i := 0
	for i < len(b) {
		c := b[i]
		switch {
		case c >= 0x20 && c < 0x7f:
			out.WriteByte(c)
			i++
		case c < 0x80:
			fmt.Fprintf(&out, `\x%02X`, c)
			i++
		default:
			r, size := utf8.DecodeRune(b[i:])
			if r == utf8.RuneError && size <= 1 {
				fmt.Fprintf(&out, `\x%02X`, c)
				i++
			} else {
				out.Write(b[i : i+size])
				i += size
			}
		}
	}
	return out.String()
}
