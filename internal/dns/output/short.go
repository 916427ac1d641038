package output

import (
	"fmt"
	"io"

	"github.com/haukened/dogo/internal/dns/dispatch"
)

// WriteShort renders every answer record across all outcomes as one line
// each. Returns false if nothing was printed, matching the short-mode
// contract that drives exit code 2.
func WriteShort(w io.Writer, outcomes []dispatch.Outcome) bool {
	printed := false
	for _, o := range outcomes {
		if o.Err != nil {
			continue
		}
		for _, rr := range o.Response.Answers {
			fmt.Fprintln(w, RecordSummary(rr.Data))
			printed = true
		}
	}
	return printed
}
