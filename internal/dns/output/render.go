// Package output renders a completed dispatch run as a table, one
// short-mode line per answer, or JSON — the external contract described in
// §4.6: a typed Response plus its wall-clock duration in, rendered text
// out.
package output

import (
	"io"

	"github.com/haukened/dogo/internal/dns/dispatch"
	"github.com/haukened/dogo/internal/dns/dogerrors"
)

// Format selects which of the three renderers handles a run's outcomes.
type Format int

const (
	FormatTable Format = iota
	FormatShort
	FormatJSON
)

// Options carries every renderer-facing flag from §6.
type Options struct {
	Format   Format
	Color    ColorPolicy
	Seconds  bool // render durations/TTLs as integer seconds
	ShowTime bool // --time: print transport wall time per request
}

// Render writes outcomes to w in the format opts selects. It returns
// dogerrors.NoResult when short mode finds nothing printable, per the
// short-mode contract driving exit code 2.
func Render(w io.Writer, outcomes []dispatch.Outcome, opts Options) error {
	switch opts.Format {
	case FormatShort:
		if !WriteShort(w, outcomes) {
			return &dogerrors.NoResult{}
		}
		return nil
	case FormatJSON:
		return WriteJSON(w, outcomes, opts)
	default:
		WriteTable(w, outcomes, opts)
		return nil
	}
}
