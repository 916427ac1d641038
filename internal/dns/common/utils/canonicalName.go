package utils

import "strings"

// CanonicalDNSName trims surrounding whitespace from a name typed on the
// command line before it is handed to domain.ParseName. Case is preserved:
// DNS names are byte-exact on the wire, and dog (like dig) echoes back
// whatever case the caller typed.
func CanonicalDNSName(name string) string {
	return strings.TrimSpace(name)
}
