package diagfmt

import "fmt"

// PathMode specifies how file paths are displayed.
type PathMode uint8

const (
	// PathModeAsIs prints the path the driver received.
	PathModeAsIs PathMode = iota
	// PathModeAbsolute always uses absolute paths.
	PathModeAbsolute
	// PathModeRelative makes paths relative to the working directory.
	PathModeRelative
	PathModeBasename
)

var pathModeNames = map[string]PathMode{
	"as-is":    PathModeAsIs,
	"absolute": PathModeAbsolute,
	"relative": PathModeRelative,
	"basename": PathModeBasename,
}

// ParsePathMode maps a --path-mode value to its PathMode.
func ParsePathMode(s string) (PathMode, error) {
	if m, ok := pathModeNames[s]; ok {
		return m, nil
	}
	return PathModeAsIs, fmt.Errorf("invalid path mode %q (expected as-is|absolute|relative|basename)", s)
}

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color    bool
	Context  int8 // строк исходника до и после основной
	PathMode PathMode
}

// JSONOpts configures JSON output of diagnostics.
type JSONOpts struct {
	IncludePositions bool // добавить line/col
	PathMode         PathMode
	Max              int // обрезка вывода
}
