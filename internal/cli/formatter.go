package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/idelchi/smbscan/internal/scan"
)

const (
	// TabSpacing is the number of spaces between tabwriter columns.
	TabSpacing = 2
)

// PrintSummary outputs the walk counters in human-readable table format.
func PrintSummary(summary scan.Summary, reportPath string, writer io.Writer) error {
	w := tabwriter.NewWriter(writer, 0, 4, TabSpacing, ' ', 0)

	fmt.Fprintln(w, "Findings:\t")
	fmt.Fprintf(w, "  %s:\t%d\n", scan.FlagEmpty, summary.Empty)
	fmt.Fprintf(w, "  %s:\t%d\n", scan.FlagExceeded, summary.Exceeded)

	fmt.Fprintln(w, "\nStats:\t")
	fmt.Fprintf(w, "Directories listed:\t%d\n", summary.Directories)
	fmt.Fprintf(w, "Files checked:\t%d\n", summary.Files)
	fmt.Fprintf(w, "Total size:\t%s (%d bytes)\n",
		humanize.IBytes(uint64(summary.Bytes)), summary.Bytes) //nolint:gosec // Bytes is always positive
	fmt.Fprintf(w, "Skipped entries:\t%d\n", summary.Errors)

	fmt.Fprintf(w, "\nReport:\t%s\n", reportPath)
	fmt.Fprintf(w, "Elapsed:\t%v\n", summary.Elapsed)

	return w.Flush()
}
