// Package report renders console summaries of an ignition point table.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/couchcryptid/nfdb-fire-analysis/internal/domain"
)

// WriteSummary prints the basic statistics for a table: total record
// count, mean and median burned area at two decimals, and the cause
// frequency table sorted by descending count. An empty table prints a
// zero count and NaN statistics; it never fails.
func WriteSummary(w io.Writer, t domain.Table) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Total fires: %d\n", len(t))
	fmt.Fprintf(&b, "Average size (ha): %.2f\n", domain.MeanSize(t))
	fmt.Fprintf(&b, "Median size (ha): %.2f\n", domain.MedianSize(t))

	b.WriteString("\nCauses:\n")
	counts := domain.CountByCause(t)

	width := 0
	for _, c := range counts {
		if len(c.Cause) > width {
			width = len(c.Cause)
		}
	}
	for _, c := range counts {
		fmt.Fprintf(&b, "%-*s  %d\n", width, c.Cause, c.Count)
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	return nil
}
