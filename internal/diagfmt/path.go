package diagfmt

import (
	"os"
	"path/filepath"
)

func displayPath(p string, mode PathMode) string {
	if p == "" {
		return p
	}
	switch mode {
	case PathModeAbsolute:
		if abs, err := filepath.Abs(p); err == nil {
			return filepath.ToSlash(abs)
		}
	case PathModeRelative:
		wd, err := os.Getwd()
		if err != nil {
			return p
		}
		abs, err := filepath.Abs(p)
		if err != nil {
			return p
		}
		if rel, err := filepath.Rel(wd, abs); err == nil {
			return filepath.ToSlash(rel)
		}
	case PathModeBasename:
		return filepath.Base(p)
	}
	return p
}
