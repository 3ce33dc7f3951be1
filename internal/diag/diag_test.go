package diag

import (
	"errors"
	"fmt"
	"testing"

	"mamushi/internal/source"
)

func TestCodePhaseAndID(t *testing.T) {
	tests := []struct {
		code  Code
		phase Phase
		id    string
	}{
		{LexUnterminatedString, PhaseLex, "LEX1002"},
		{SynUnexpectedToken, PhaseSyntax, "SYN2001"},
		{SafetyASTChanged, PhaseSafety, "SAF3001"},
		{IOWriteFailed, PhaseIO, "IO4002"},
		{InternalPanic, PhaseInternal, "INT5001"},
		{UnknownCode, PhaseUnknown, "E0000"},
	}
	for _, tt := range tests {
		if got := tt.code.Phase(); got != tt.phase {
			t.Errorf("%d.Phase() = %v, want %v", tt.code, got, tt.phase)
		}
		if got := tt.code.ID(); got != tt.id {
			t.Errorf("%d.ID() = %q, want %q", tt.code, got, tt.id)
		}
	}
}

func TestDiagnosticError(t *testing.T) {
	f := source.NewVirtualFile("c.vy", "x = (\n")
	d := At(f, LexUnclosedBracket, source.Span{Start: 4, End: 5}, "'(' was never closed")
	if got, want := d.Error(), "c.vy:1:5: '(' was never closed"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}

	wrapped := fmt.Errorf("parse: %w", d)
	got, ok := As(wrapped)
	if !ok || got != d {
		t.Fatalf("As did not unwrap the diagnostic")
	}
	if PhaseOf(wrapped) != PhaseLex {
		t.Fatalf("PhaseOf = %v, want lex", PhaseOf(wrapped))
	}
	if PhaseOf(errors.New("plain")) != PhaseUnknown {
		t.Fatal("plain errors have no phase")
	}
}

func TestBagLimitSortDedup(t *testing.T) {
	b := NewBag(3)
	d1 := &Diagnostic{Severity: SevError, Code: SynUnexpectedToken, Path: "b.vy", Primary: source.Span{Start: 5, End: 6}}
	d2 := &Diagnostic{Severity: SevError, Code: SynUnexpectedToken, Path: "a.vy", Primary: source.Span{Start: 9, End: 9}}
	d3 := &Diagnostic{Severity: SevError, Code: SynUnexpectedToken, Path: "a.vy", Primary: source.Span{Start: 9, End: 9}}
	for _, d := range []*Diagnostic{d1, d2, d3} {
		if !b.Add(d) {
			t.Fatalf("Add(%v) rejected below the limit", d)
		}
	}
	if b.Add(&Diagnostic{}) {
		t.Fatal("Add accepted a diagnostic past the limit")
	}
	b.Sort()
	b.Dedup()
	if b.Len() != 2 || b.Items()[0].Path != "a.vy" {
		t.Fatalf("unexpected items after sort+dedup: %+v", b.Items())
	}
	if !b.HasErrors() {
		t.Fatal("HasErrors = false")
	}
}
