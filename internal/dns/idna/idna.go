// Package idna is the optional capability hook named in §4.3: when
// enabled, non-ASCII labels in a query name are transformed to their
// A-label form before encoding. Off by default.
package idna

import (
	"golang.org/x/net/idna"

	"github.com/haukened/dogo/internal/dns/domain"
)

var profile = idna.New(
	idna.MapForLookup(),
	idna.BidiRule(),
	idna.Transitional(false),
)

// ToASCII converts every non-ASCII label in name to its Punycode A-label
// form, leaving already-ASCII labels untouched.
func ToASCII(name domain.Name) (domain.Name, error) {
	s, err := profile.ToASCII(name.String())
	if err != nil {
		return domain.Name{}, err
	}
	return domain.ParseName(s)
}
