package difffmt

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/google/go-cmp/cmp"
)

func TestLines(t *testing.T) {
	got := Lines("a\nb\nc\n", "a\nB\nc\n")
	want := []Line{{' ', "a"}, {'-', "b"}, {'+', "B"}, {' ', "c"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Lines mismatch (-want +got):\n%s", diff)
	}
	if Lines("same\n", "same\n") != nil {
		t.Error("equal inputs must give no lines")
	}
}

func TestLinesMissingFinalNewline(t *testing.T) {
	got := Lines("a\nb", "a\nb\n")
	want := []Line{{' ', "a"}, {'-', "b(missing final newline)"}, {'+', "b"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Lines mismatch (-want +got):\n%s", diff)
	}
}

func TestLinesLargeFile(t *testing.T) {
	var old, new strings.Builder
	for i := 0; i < 50000; i++ {
		fmt.Fprintf(&old, "x_%d: uint256\n", i)
		if i == 25000 {
			new.WriteString("y: uint256\n")
			continue
		}
		fmt.Fprintf(&new, "x_%d: uint256\n", i)
	}
	got := Lines(old.String(), new.String())
	if len(got) != 50001 {
		t.Fatalf("got %d lines, want 50001", len(got))
	}
	if got[25000] != (Line{'-', "x_25000: uint256"}) || got[25001] != (Line{'+', "y: uint256"}) {
		t.Errorf("unexpected change lines: %v %v", got[25000], got[25001])
	}
	if got[0].Op != ' ' || got[len(got)-1] != (Line{' ', "x_49999: uint256"}) {
		t.Errorf("unexpected context lines: %v %v", got[0], got[len(got)-1])
	}
}

func TestUnifiedHeadersAndHunks(t *testing.T) {
	var old, new strings.Builder
	for i := 0; i < 20; i++ {
		line := "line\n"
		if i == 10 {
			old.WriteString("x=1\n")
			new.WriteString("x = 1\n")
			continue
		}
		old.WriteString(line)
		new.WriteString(line)
	}
	then := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	got := Unified("token.vy", []byte(old.String()), []byte(new.String()), then, then.Add(time.Second))

	wantHead := "--- STDIN\t2024-01-15 10:30:00.000000 +0000 - token.vy\n" +
		"+++ STDOUT\t2024-01-15 10:30:01.000000 +0000 - token.vy\n" +
		"@@ -8,7 +8,7 @@\n"
	if !strings.HasPrefix(got, wantHead) {
		t.Fatalf("unexpected header:\n%s", got)
	}
	if !strings.Contains(got, "\n-x=1\n+x = 1\n") {
		t.Errorf("change lines missing:\n%s", got)
	}
	if n := strings.Count(got, "\n"); n != 3+7+1 {
		t.Errorf("got %d lines, want 11:\n%s", n, got)
	}
}

func TestUnifiedEqual(t *testing.T) {
	now := time.Now()
	if got := Unified("a.vy", []byte("x\n"), []byte("x\n"), now, now); got != "" {
		t.Errorf("want empty diff, got %q", got)
	}
}

func TestColorize(t *testing.T) {
	saved := color.NoColor
	defer func() { color.NoColor = saved }()

	d := "--- a\n+++ b\n@@ -1,1 +1,1 @@\n-x\n+y\n"
	color.NoColor = true
	if got := Colorize(d); got != d {
		t.Errorf("colorless output changed: %q", got)
	}
	color.NoColor = false
	got := Colorize(d)
	if !strings.Contains(got, "\x1b[32m+y") || !strings.Contains(got, "\x1b[31m-x") {
		t.Errorf("expected ANSI colors, got %q", got)
	}
}
