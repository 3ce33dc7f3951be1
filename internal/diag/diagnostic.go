package diag

import (
	"errors"
	"fmt"

	"mamushi/internal/source"
)

// Diagnostic is a located finding. It implements error so that pipeline
// stages can return it directly.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Path     string
	Primary  source.Span
	Pos      source.LineCol // resolved start of Primary; zero when unknown
}

// At builds an error diagnostic located at span inside f.
func At(f *source.File, code Code, span source.Span, msg string) *Diagnostic {
	d := &Diagnostic{
		Severity: SevError,
		Code:     code,
		Message:  msg,
		Primary:  span,
	}
	if f != nil {
		d.Path = f.Path
		d.Pos = f.Position(span.Start)
	}
	return d
}

// Newf builds an unlocated error diagnostic.
func Newf(code Code, path, format string, args ...any) *Diagnostic {
	return &Diagnostic{
		Severity: SevError,
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
		Path:     path,
	}
}

// Located reports whether the diagnostic carries a source position.
func (d *Diagnostic) Located() bool {
	return d.Pos.Line != 0
}

func (d *Diagnostic) Error() string {
	switch {
	case d.Path != "" && d.Located():
		return fmt.Sprintf("%s:%d:%d: %s", d.Path, d.Pos.Line, d.Pos.Col, d.Message)
	case d.Located():
		return fmt.Sprintf("%d:%d: %s", d.Pos.Line, d.Pos.Col, d.Message)
	case d.Path != "":
		return fmt.Sprintf("%s: %s", d.Path, d.Message)
	}
	return d.Message
}

// As extracts a *Diagnostic from err's chain.
func As(err error) (*Diagnostic, bool) {
	var d *Diagnostic
	if errors.As(err, &d) {
		return d, true
	}
	return nil, false
}

// PhaseOf classifies err; errors without a diagnostic are PhaseUnknown.
func PhaseOf(err error) Phase {
	if d, ok := As(err); ok {
		return d.Code.Phase()
	}
	return PhaseUnknown
}
