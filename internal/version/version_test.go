package version

import (
	"strings"
	"testing"

	"github.com/fatih/color"
)

func withVersion(t *testing.T, v, commit, msg, date string) {
	t.Helper()
	origVersion, origCommit, origMsg, origDate := Version, GitCommit, GitMessage, BuildDate
	Version, GitCommit, GitMessage, BuildDate = v, commit, msg, date
	t.Cleanup(func() {
		Version, GitCommit, GitMessage, BuildDate = origVersion, origCommit, origMsg, origDate
	})
}

func TestVersion_DefaultValues(t *testing.T) {
	if Version == "" {
		t.Error("Version should have a default value")
	}
	if strings.Contains(Version, "\x1b") {
		t.Errorf("Version must be plain text, got %q", Version)
	}
}

func TestColored(t *testing.T) {
	orig := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = orig })

	tests := []struct {
		version, want string
	}{
		{"0.1.0-dev", "0.1.0-dev"},
		{"1.2.3", "1.2.3"},
		{"1.2.3-rc.1+build.123", "1.2.3-rc.1+build.123"},
		{"nightly", "nightly"},
	}
	for _, tt := range tests {
		withVersion(t, tt.version, "", "", "")
		if got := Colored(); got != tt.want {
			t.Errorf("Colored(%q) = %q, want %q", tt.version, got, tt.want)
		}
	}
}
