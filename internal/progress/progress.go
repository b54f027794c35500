// Package progress formats and prints the batch's completion percentage,
// the "progress reporting" collaborator named in the system design: a
// pure consumer of the shared counters, never a source of truth for
// them.
package progress

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Reporter writes a live progress line to stderr when it is attached to
// a terminal, and stays silent otherwise so piped/batch runs don't fill
// a log with escape codes.
type Reporter struct {
	enabled bool
}

// NewReporter detects whether stderr is a terminal and configures the
// reporter accordingly.
func NewReporter() *Reporter {
	fd := os.Stderr.Fd()
	return &Reporter{enabled: isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)}
}

// Report overwrites the current progress line with completed/total.
func (r *Reporter) Report(completed, total int64) {
	if !r.enabled || total == 0 {
		return
	}
	pct := float64(completed) / float64(total) * 100
	fmt.Fprintf(os.Stderr, "\r%s", color.HiYellowString("solving: %d/%d (%.1f%%)", completed, total, pct))
}

// Done prints the final tally. Always printed, terminal or not, since
// it's a one-shot summary rather than a redrawn line.
func (r *Reporter) Done(completed, total, failed int64) {
	if r.enabled {
		fmt.Fprintln(os.Stderr)
	}
	color.HiGreen("solved %d/%d puzzles (%d failed)", completed, total, failed)
}

// Warnf reports a non-fatal condition, such as a puzzle whose matrix
// arena overflowed.
func (r *Reporter) Warnf(format string, args ...any) {
	color.New(color.FgHiRed).Fprintf(os.Stderr, format+"\n", args...)
}
