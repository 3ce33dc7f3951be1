package driver

import (
	"mamushi/internal/observ"
	"mamushi/internal/source"
)

// Result captures the outcome of formatting a single file.
type Result struct {
	Path      string
	Success   bool
	Changed   bool
	Cached    bool  // skipped: the cache knows the file is canonical
	Err       error // a *diag.Diagnostic for every failure the pipeline produces
	Formatted []byte
	Diff      string // unified diff, only in Diff mode and when Changed
	Timing    observ.Report

	// File is the parsed source; diagnostics with a position refer to it.
	File *source.File
}
