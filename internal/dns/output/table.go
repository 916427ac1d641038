package output

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/haukened/dogo/internal/dns/dispatch"
	"github.com/haukened/dogo/internal/dns/domain"
)

// section names one of the three record sections a row belongs to, for the
// leading marker column.
type section string

const (
	sectionAnswer     section = "ANSWER"
	sectionAuthority  section = "AUTHORITY"
	sectionAdditional section = "ADDITIONAL"
)

// WriteTable renders every outcome as a tab-aligned table: one row per
// record across all three sections, grouped per request, with the
// request's own line first.
func WriteTable(w io.Writer, outcomes []dispatch.Outcome, opts Options) {
	tw := tabwriter.NewWriter(w, 0, 2, 2, ' ', 0)
	color := opts.Color.Enabled()

	for _, o := range outcomes {
		writeRequestLine(tw, o, opts, color)

		if o.Err != nil {
			fmt.Fprintf(tw, "  %s\n", colorize(color, ansiRed, o.Err.Error()))
			continue
		}

		if o.Truncated {
			fmt.Fprintln(tw, "  (response truncated; retry via -T to see the complete answer)")
		}

		writeRows(tw, o.Response.Answers, sectionAnswer, opts, color)
		writeRows(tw, o.Response.Authorities, sectionAuthority, opts, color)
		writeRows(tw, o.Response.Additionals, sectionAdditional, opts, color)
	}

	tw.Flush()
}

func writeRequestLine(w io.Writer, o dispatch.Outcome, opts Options, color bool) {
	q := o.Request.Questions[0]
	line := fmt.Sprintf("%s\t%s\t%s\t%s", colorize(color, ansiBold, q.Name.String()), q.Type, q.Class, o.Transport)
	if opts.ShowTime {
		line += "\t" + formatDuration(o.Duration, opts.Seconds)
	}
	fmt.Fprintln(w, line)
}

func writeRows(w io.Writer, rrs []domain.ResourceRecord, sec section, opts Options, color bool) {
	for _, rr := range rrs {
		ttl := formatDuration(time.Duration(rr.TTL)*time.Second, opts.Seconds)
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\t%s\n",
			sec, rr.Name.String(), rr.Type, ttl, RecordSummary(rr.Data))
	}
}

func formatDuration(d time.Duration, seconds bool) string {
	if seconds {
		return fmt.Sprintf("%ds", int64(d.Seconds()))
	}
	return d.String()
}
