// Package diag defines the diagnostic model shared by every stage of the
// formatting pipeline.
//
// A Diagnostic is both a data record (severity, code, message, primary span,
// resolved position) and an error value: the lexer and parser stop at the
// first problem and return it as a *Diagnostic, the comparator returns one
// when a rewrite is rejected, and the driver wraps I/O failures and recovered
// panics into one so that every per-file failure has the same shape.
//
// Codes are grouped by phase (see Code.Phase): lexical 1xxx, syntax 2xxx,
// safety 3xxx, I/O 4xxx, internal 5xxx. Their string IDs are stable and may
// appear in scripts and golden files.
//
// Package diag performs no rendering; see internal/diagfmt.
package diag
