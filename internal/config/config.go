// Package config loads project settings for the formatter.
//
// Назначение: найти ближайший mamushi.toml или pyproject.toml с секцией
// [tool.mamushi] и превратить его в Config.
// Не делает: не разбирает флаги командной строки (это cmd/mamushi).
// Зависимости: github.com/BurntSushi/toml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	// FileName is the dedicated configuration file.
	FileName = "mamushi.toml"
	// PyProject is searched for a [tool.mamushi] table.
	PyProject = "pyproject.toml"

	DefaultLineLength = 80
)

// DefaultInclude lists the extensions collected when walking directories.
var DefaultInclude = []string{".vy", ".vyi"}

// Config is the effective project configuration.
type Config struct {
	Path       string // file the values came from; empty for defaults
	Root       string // directory of Path; exclude patterns are relative to it
	LineLength int
	Safe       bool
	Include    []string
	Exclude    []string
	Unknown    []string // keys present in the table but not understood
}

type fileConfig struct {
	LineLength *int     `toml:"line-length"`
	Safe       *bool    `toml:"safe"`
	Include    []string `toml:"include"`
	Exclude    []string `toml:"exclude"`
}

type pyprojectFile struct {
	Tool struct {
		Mamushi fileConfig `toml:"mamushi"`
	} `toml:"tool"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		LineLength: DefaultLineLength,
		Safe:       true,
		Include:    slices.Clone(DefaultInclude),
	}
}

// Find walks upward from startDir and returns the first configuration file.
// In each directory mamushi.toml wins over pyproject.toml; a pyproject.toml
// without [tool.mamushi] is skipped.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	if info, err := os.Stat(dir); err == nil && !info.IsDir() {
		dir = filepath.Dir(dir)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		ok, err := exists(candidate)
		if err != nil {
			return "", false, err
		}
		if ok {
			return candidate, true, nil
		}

		candidate = filepath.Join(dir, PyProject)
		ok, err = exists(candidate)
		if err != nil {
			return "", false, err
		}
		if ok {
			has, err := hasToolTable(candidate)
			if err != nil {
				return "", false, err
			}
			if has {
				return candidate, true, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

func exists(path string) (bool, error) {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, os.ErrNotExist):
		return false, nil
	}
	return false, fmt.Errorf("failed to stat %q: %w", path, err)
}

func hasToolTable(path string) (bool, error) {
	var raw map[string]any
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return false, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	return meta.IsDefined("tool", "mamushi"), nil
}

// Load reads path on top of Default.
func Load(path string) (Config, error) {
	cfg := Default()
	cfg.Path = path
	cfg.Root = filepath.Dir(path)
	if abs, err := filepath.Abs(cfg.Root); err == nil {
		cfg.Root = abs
	}

	var (
		fc     fileConfig
		meta   toml.MetaData
		err    error
		prefix string
	)
	if filepath.Base(path) == PyProject {
		var pp pyprojectFile
		meta, err = toml.DecodeFile(path, &pp)
		fc = pp.Tool.Mamushi
		prefix = "tool.mamushi."
	} else {
		meta, err = toml.DecodeFile(path, &fc)
	}
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}

	for _, key := range meta.Undecoded() {
		name := key.String()
		if prefix != "" {
			if !strings.HasPrefix(name, prefix) {
				continue
			}
			name = strings.TrimPrefix(name, prefix)
		}
		cfg.Unknown = append(cfg.Unknown, name)
	}

	if fc.LineLength != nil {
		if *fc.LineLength <= 0 {
			return Config{}, fmt.Errorf("%s: line-length must be positive, got %d", path, *fc.LineLength)
		}
		cfg.LineLength = *fc.LineLength
	}
	if fc.Safe != nil {
		cfg.Safe = *fc.Safe
	}
	if len(fc.Include) > 0 {
		cfg.Include = cfg.Include[:0]
		for _, ext := range fc.Include {
			if !strings.HasPrefix(ext, ".") {
				ext = "." + ext
			}
			cfg.Include = append(cfg.Include, ext)
		}
	}
	for _, pat := range fc.Exclude {
		if _, err := filepath.Match(pat, ""); err != nil {
			return Config{}, fmt.Errorf("%s: bad exclude pattern %q: %w", path, pat, err)
		}
		cfg.Exclude = append(cfg.Exclude, pat)
	}
	return cfg, nil
}

// Discover finds and loads the configuration governing startDir, falling back
// to Default when there is none.
func Discover(startDir string) (Config, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}

// Accepts reports whether a file met during a directory walk should be
// formatted.
func (c Config) Accepts(path string) bool {
	return slices.Contains(c.Include, filepath.Ext(path))
}

// Excluded reports whether path matches an exclude pattern, either by its
// base name or by its slash path relative to Root.
func (c Config) Excluded(path string) bool {
	if len(c.Exclude) == 0 {
		return false
	}
	base := filepath.Base(path)
	rel := filepath.ToSlash(path)
	if c.Root != "" {
		if abs, err := filepath.Abs(path); err == nil {
			if r, err := filepath.Rel(c.Root, abs); err == nil {
				rel = filepath.ToSlash(r)
			}
		}
	}
	for _, pat := range c.Exclude {
		if ok, _ := filepath.Match(pat, base); ok {
			return true
		}
		if ok, _ := filepath.Match(pat, rel); ok {
			return true
		}
	}
	return false
}
