package driver

import (
	"runtime"
	"time"

	"github.com/rs/zerolog"

	"mamushi/internal/config"
)

// Options configures a batch run.
type Options struct {
	LineLength int
	InPlace    bool // overwrite changed files; ignored in Check or Diff mode
	Safe       bool // reject rewrites the comparator does not accept
	Check      bool
	Diff       bool
	Jobs       int // 0 means GOMAXPROCS
	Timings    bool

	Cache    *DiskCache
	Progress ProgressSink
	Logger   *zerolog.Logger
	Config   config.Config // include/exclude rules for directory walks

	now func() time.Time
}

// DefaultOptions mirrors the CLI defaults.
func DefaultOptions() Options {
	return Options{
		LineLength: config.DefaultLineLength,
		InPlace:    true,
		Safe:       true,
		Config:     config.Default(),
	}
}

func (o Options) withDefaults() Options {
	if o.LineLength <= 0 {
		o.LineLength = config.DefaultLineLength
	}
	if o.Jobs <= 0 {
		o.Jobs = runtime.GOMAXPROCS(0)
	}
	if o.Progress == nil {
		o.Progress = nopSink{}
	}
	if o.Logger == nil {
		nop := zerolog.Nop()
		o.Logger = &nop
	}
	if len(o.Config.Include) == 0 {
		o.Config.Include = config.DefaultInclude
	}
	if o.now == nil {
		o.now = time.Now
	}
	return o
}

// writeBack reports whether changed files are overwritten.
func (o Options) writeBack() bool {
	return o.InPlace && !o.Check && !o.Diff
}

// printFormatted reports whether formatted content goes to stdout.
func (o Options) printFormatted() bool {
	return !o.InPlace && !o.Check && !o.Diff
}
