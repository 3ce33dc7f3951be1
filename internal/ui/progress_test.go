package ui

import (
	"strings"
	"testing"

	"mamushi/internal/driver"
)

func TestApplyEvent(t *testing.T) {
	files := []string{"a.vy", "b.vy"}
	m := NewProgressModel("formatting", files, nil).(*progressModel)

	m.applyEvent(driver.Event{File: "a.vy", Stage: driver.StageParse, Status: driver.StatusWorking})
	if got := m.items[0].status; got != "parsing" {
		t.Fatalf("status = %q, want parsing", got)
	}
	if got := m.percent(); got != 0.15 {
		t.Errorf("percent = %v, want 0.15", got)
	}

	m.applyEvent(driver.Event{File: "a.vy", Stage: driver.StageParse, Status: driver.StatusDone})
	m.applyEvent(driver.Event{File: "b.vy", Status: driver.StatusCached})
	m.applyEvent(driver.Event{File: "unknown.vy", Status: driver.StatusError})
	if got := m.finished(); got != 2 {
		t.Errorf("finished = %d, want 2", got)
	}
	if got := m.percent(); got != 1 {
		t.Errorf("percent = %v, want 1", got)
	}

	view := m.View()
	if !strings.Contains(view, "(2/2)") || !strings.Contains(view, "a.vy") {
		t.Errorf("unexpected view:\n%s", view)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"contracts/token.vy", 40, "contracts/token.vy"},
		{"contracts/token.vy", 10, "contrac..."},
		{"contracts/token.vy", 4, "c..."},
		{"contracts/token.vy", 3, "con"},
		{"x", 0, "x"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}
