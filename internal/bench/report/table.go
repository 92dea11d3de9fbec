package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"
)

func WriteTable(r *Report, w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "\n=== Detection Benchmark: %s ===\n\n", r.Meta.Suite)
	fmt.Fprintf(tw, "Accuracy: %.1f%% (%d/%d)\n\n", r.Summary.Accuracy, r.Summary.Correct, r.Summary.Total)

	writeMethodTable(tw, r)
	writeLatency(tw, r)
	writeCaseTable(tw, r)

	tw.Flush()
}

func writeMethodTable(tw *tabwriter.Writer, r *Report) {
	writeRow(tw, "Method", "Cases", "Correct", "Accuracy")
	writeSeparator(tw, 4)
	for _, m := range r.Methods {
		writeRow(tw, m.Method, fmt.Sprint(m.Total), fmt.Sprint(m.Correct), fmt.Sprintf("%.1f%%", m.Accuracy))
	}
	fmt.Fprintln(tw)
}

func writeLatency(tw *tabwriter.Writer, r *Report) {
	s := r.Summary.Latency
	writeRow(tw, "Min", "p50", "p90", "p99", "Max", "Mean", "Samples")
	writeSeparator(tw, 7)
	writeRow(tw,
		fmtDuration(s.Min),
		fmtDuration(s.P50()),
		fmtDuration(s.P90()),
		fmtDuration(s.P99()),
		fmtDuration(s.Max),
		fmtDuration(s.Mean),
		fmt.Sprint(s.SampleCount),
	)
	fmt.Fprintln(tw)
}

func writeCaseTable(tw *tabwriter.Writer, r *Report) {
	writeRow(tw, "Case", "Method", "Detected", "Key", "Confidence", "p50", "Outcome")
	writeSeparator(tw, 7)
	for _, c := range r.Cases {
		detected, key := "-", "-"
		if c.Detected != "" {
			detected = c.Detected
		}
		if c.Key != nil {
			key = fmt.Sprint(*c.Key)
		}
		writeRow(tw,
			c.CaseID,
			c.Method,
			detected,
			key,
			fmt.Sprintf("%.1f%%", c.Confidence),
			fmtDuration(c.Latency.P50()),
			string(c.Outcome),
		)
	}
	fmt.Fprintln(tw)
}

func writeRow(tw *tabwriter.Writer, cols ...string) {
	fmt.Fprintln(tw, strings.Join(cols, "\t"))
}

func writeSeparator(tw *tabwriter.Writer, n int) {
	sep := make([]string, n)
	for i := range sep {
		sep[i] = "---"
	}
	writeRow(tw, sep...)
}

func fmtDuration(d time.Duration) string {
	if d == 0 {
		return "-"
	}
	if d < time.Millisecond {
		return fmt.Sprintf("%.1fµs", float64(d.Nanoseconds())/1000)
	}
	if d < time.Second {
		return fmt.Sprintf("%.2fms", float64(d.Microseconds())/1000)
	}
	return fmt.Sprintf("%.2fs", d.Seconds())
}
