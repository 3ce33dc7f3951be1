package driver

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"mamushi/internal/diag"
)

// Exit statuses of a batch run.
const (
	ExitOK       = 0
	ExitChanged  = 1 // a file would change (check mode) or failed
	ExitInternal = 123
)

const (
	parseFailureMessage  = "Unable to parse input file, are you sure the Vyper code is valid?"
	safetyFailureMessage = "Formatting changed the AST, aborting"
)

var (
	reportBold  = color.New(color.Bold)
	reportError = color.New(color.FgRed)
)

// Report aggregates per-file results into user-facing lines and an exit
// status. Lines go to Out (normally stderr).
type Report struct {
	Out     io.Writer
	Check   bool
	Diff    bool
	Quiet   bool
	Verbose bool

	changeCount   int
	sameCount     int
	failureCount  int
	internalCount int
}

// Add records one result.
func (r *Report) Add(res Result) {
	if !res.Success {
		r.Failed(res.Path, FailureMessage(res.Err), IsInternal(res.Err))
		return
	}
	r.Done(res.Path, res.Changed)
}

// Done records a successfully processed file.
func (r *Report) Done(path string, changed bool) {
	if changed {
		verb := "reformatted"
		if r.Check || r.Diff {
			verb = "would reformat"
		}
		if r.Verbose || !r.Quiet {
			r.printf("%s %s\n", verb, path)
		}
		r.changeCount++
		return
	}
	if r.Verbose {
		r.printf("%s already well formatted, good job.\n", path)
	}
	r.sameCount++
}

// Failed records a file that could not be formatted. Errors are printed even
// in quiet mode.
func (r *Report) Failed(path, message string, internal bool) {
	r.printf("%s\n", reportError.Sprintf("error: cannot format %s: %s", path, message))
	r.failureCount++
	if internal {
		r.internalCount++
	}
}

// ExitCode is 123 when the engine itself failed (safety rejection or panic),
// 1 for any other failure or for a pending change in check mode, else 0.
func (r *Report) ExitCode() int {
	switch {
	case r.internalCount > 0:
		return ExitInternal
	case r.failureCount > 0:
		return ExitChanged
	case r.Check && r.changeCount > 0:
		return ExitChanged
	}
	return ExitOK
}

// Counts returns the changed, unchanged and failed totals.
func (r *Report) Counts() (changed, same, failed int) {
	return r.changeCount, r.sameCount, r.failureCount
}

// Finish prints the closing line and, when summary is set, the counts.
func (r *Report) Finish(summary bool) {
	if r.Quiet && !r.Verbose {
		return
	}
	if r.ExitCode() != ExitOK {
		r.printf("%s\n", reportBold.Sprint("Oh no! 💥 💔 💥"))
	} else {
		r.printf("%s\n", reportBold.Sprint("All done! ✨ 🍰 ✨"))
	}
	if summary {
		if s := r.String(); s != "" {
			r.printf("%s\n", s)
		}
	}
}

// String renders the summary, e.g. "1 file reformatted, 2 files left
// unchanged." Zero counts are left out.
func (r *Report) String() string {
	reformatted, unchanged, failed := "reformatted", "left unchanged", "failed to reformat"
	if r.Check || r.Diff {
		reformatted, unchanged, failed = "would be reformatted", "would be left unchanged", "would fail to reformat"
	}
	var parts []string
	if r.changeCount > 0 {
		parts = append(parts, reportBold.Sprintf("%s %s", files(r.changeCount), reformatted))
	}
	if r.sameCount > 0 {
		parts = append(parts, fmt.Sprintf("%s %s", files(r.sameCount), unchanged))
	}
	if r.failureCount > 0 {
		parts = append(parts, reportError.Sprintf("%s %s", files(r.failureCount), failed))
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, ", ") + "."
}

func (r *Report) printf(format string, args ...any) {
	if r.Out == nil {
		return
	}
	fmt.Fprintf(r.Out, format, args...)
}

func files(n int) string {
	if n == 1 {
		return "1 file"
	}
	return fmt.Sprintf("%d files", n)
}

// FailureMessage is the one-line reason shown for a failed file.
func FailureMessage(err error) string {
	if err == nil {
		return "unknown error"
	}
	d, ok := diag.As(err)
	if !ok {
		return err.Error()
	}
	switch d.Code.Phase() {
	case diag.PhaseLex, diag.PhaseSyntax:
		return parseFailureMessage
	case diag.PhaseSafety:
		return safetyFailureMessage
	}
	return d.Message
}

// IsInternal reports whether err is an engine failure rather than a problem
// with the input or the filesystem.
func IsInternal(err error) bool {
	if err == nil {
		return false
	}
	var d *diag.Diagnostic
	if !errors.As(err, &d) {
		return false
	}
	switch d.Code.Phase() {
	case diag.PhaseSafety, diag.PhaseInternal:
		return true
	}
	return false
}
