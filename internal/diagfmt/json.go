package diagfmt

import (
	"encoding/json"
	"io"

	"mamushi/internal/diag"
	"mamushi/internal/source"
)

// DiagnosticJSON is the machine-readable form of a diagnostic.
type DiagnosticJSON struct {
	Severity string          `json:"severity"`
	Code     string          `json:"code"`
	Title    string          `json:"title"`
	Message  string          `json:"message"`
	Path     string          `json:"path,omitempty"`
	Span     *SpanJSON       `json:"span,omitempty"`
	Pos      *source.LineCol `json:"pos,omitempty"`
}

type SpanJSON struct {
	Start uint32 `json:"start"`
	End   uint32 `json:"end"`
}

// DiagnosticsOutput wraps a list of diagnostics.
type DiagnosticsOutput struct {
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Count       int              `json:"count"`
}

// JSON writes ds as one indented object.
func JSON(w io.Writer, ds []*diag.Diagnostic, opts JSONOpts) error {
	out := DiagnosticsOutput{Diagnostics: make([]DiagnosticJSON, 0, len(ds))}
	for i, d := range ds {
		if opts.Max > 0 && i >= opts.Max {
			break
		}
		dj := DiagnosticJSON{
			Severity: d.Severity.String(),
			Code:     d.Code.ID(),
			Title:    d.Code.Title(),
			Message:  d.Message,
			Path:     displayPath(d.Path, opts.PathMode),
		}
		if d.Located() {
			dj.Span = &SpanJSON{Start: d.Primary.Start, End: d.Primary.End}
			if opts.IncludePositions {
				pos := d.Pos
				dj.Pos = &pos
			}
		}
		out.Diagnostics = append(out.Diagnostics, dj)
	}
	out.Count = len(out.Diagnostics)

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
