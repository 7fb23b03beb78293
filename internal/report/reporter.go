// Package report formats the outcome of a scan pass for humans and tools.
package report

import (
	"fmt"
	"io"
	"os"

	"github.com/yacobolo/cssprune"
)

// Report summarizes one scan pass and its inclusion decisions.
type Report struct {
	Stats      cssprune.ScanStats
	TokenCount int      // candidate tokens extracted
	Universe   int      // candidate classes considered
	Safelisted int      // classes forced by the safelist
	Kept       []string // classes that survive
	Dropped    []string // classes pruned from output
}

// Options control report rendering.
type Options struct {
	UseColors bool // render with terminal styles
	Verbose   bool // list every kept/dropped class instead of counts
}

// Reporter writes scan reports to a single destination.
type Reporter struct {
	w         io.Writer
	useColors bool
	verbose   bool
}

// NewReporter creates a reporter for w.
func NewReporter(w io.Writer, opts Options) *Reporter {
	return &Reporter{
		w:         w,
		useColors: opts.UseColors,
		verbose:   opts.Verbose,
	}
}

// ShouldUseColors determines if colors should be enabled: an explicit
// flag wins, then CI color conventions, then TTY detection.
func ShouldUseColors(forced bool) bool {
	if forced {
		return true
	}
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}
	if fileInfo, _ := os.Stdout.Stat(); fileInfo != nil && (fileInfo.Mode()&os.ModeCharDevice) != 0 {
		return true
	}
	return false
}

// Print renders the report as text.
func (r *Reporter) Print(rep Report) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, renderStyle(StyleCyan, "Scan Report", r.useColors))
	fmt.Fprintln(r.w, "===========")

	fmt.Fprintf(r.w, "Files discovered:   %d\n", rep.Stats.FilesDiscovered)
	fmt.Fprintf(r.w, "Files scanned:      %d\n", rep.Stats.FilesScanned)
	if rep.Stats.FilesSkipped > 0 {
		fmt.Fprintf(r.w, "Files skipped:      %d (hidden/ignored)\n", rep.Stats.FilesSkipped)
	}
	fmt.Fprintf(r.w, "Tokens extracted:   %d\n", rep.TokenCount)
	fmt.Fprintf(r.w, "Candidate classes:  %d\n", rep.Universe)
	fmt.Fprintf(r.w, "Safelisted:         %d\n", rep.Safelisted)

	fmt.Fprintln(r.w, "")
	fmt.Fprintf(r.w, "%s %d\n", renderStyle(StyleGreen, "Kept:", r.useColors), len(rep.Kept))
	if r.verbose {
		for _, class := range rep.Kept {
			fmt.Fprintf(r.w, "  + %s\n", class)
		}
	}

	fmt.Fprintf(r.w, "%s %d\n", renderStyle(StyleRed, "Dropped:", r.useColors), len(rep.Dropped))
	if r.verbose {
		for _, class := range rep.Dropped {
			fmt.Fprintf(r.w, "  - %s\n", class)
		}
	}

	if !r.verbose && (len(rep.Kept) > 0 || len(rep.Dropped) > 0) {
		fmt.Fprintln(r.w, "")
		fmt.Fprintln(r.w, renderStyle(StyleGray, "Hint: Run with --verbose to list classes", r.useColors))
	}
	fmt.Fprintln(r.w, "")
}
