package driver

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"mamushi/internal/compare"
	"mamushi/internal/diag"
	"mamushi/internal/difffmt"
	"mamushi/internal/format"
	"mamushi/internal/observ"
	"mamushi/internal/parser"
	"mamushi/internal/source"
	"mamushi/internal/version"
)

// formatSingleFile runs one file through read -> parse -> format -> compare
// -> write. Nothing is written unless every earlier stage succeeded. A panic
// anywhere in the engine becomes an InternalPanic diagnostic for this file
// only.
func formatSingleFile(ctx context.Context, path string, opts Options) (res Result) {
	res.Path = path
	log := opts.Logger.With().Str("path", path).Logger()

	var timer *observ.Timer
	if opts.Timings {
		timer = observ.NewTimer()
	}
	started := time.Now()
	stage := StageRead

	defer func() {
		if r := recover(); r != nil {
			res = Result{
				Path: path,
				Err:  diag.Newf(diag.InternalPanic, path, "internal error during %s: %v", stage, r),
				File: res.File,
			}
			log.Error().Str("stage", string(stage)).Interface("panic", r).Bytes("stack", debug.Stack()).Msg("formatter panicked")
		}
		res.Timing = timer.Report()

		status := StatusDone
		switch {
		case res.Err != nil:
			status = StatusError
		case res.Cached:
			status = StatusCached
		}
		opts.Progress.OnEvent(Event{File: path, Stage: stage, Status: status, Err: res.Err, Elapsed: time.Since(started)})
	}()

	enter := func(s Stage) int {
		stage = s
		opts.Progress.OnEvent(Event{File: path, Stage: s, Status: StatusWorking, Elapsed: time.Since(started)})
		return timer.Begin(string(s))
	}

	if err := ctx.Err(); err != nil {
		res.Err = err
		return res
	}

	t := enter(StageRead)
	data, err := os.ReadFile(path)
	timer.End(t, "")
	if err != nil {
		res.Err = diag.Newf(diag.IOReadFailed, path, "%v", err)
		return res
	}
	mtime := opts.now()
	if info, err := os.Stat(path); err == nil {
		mtime = info.ModTime()
	}

	var key Digest
	if opts.Cache != nil {
		key = Key(data, opts.LineLength, opts.Safe)
		var payload DiskPayload
		hit, err := opts.Cache.Get(key, &payload)
		if err != nil {
			log.Warn().Err(err).Msg("cache read failed")
		}
		if hit {
			log.Debug().Msg("cache hit")
			res.Success, res.Cached = true, true
			res.Formatted = data
			return res
		}
	}

	t = enter(StageParse)
	file := source.NewFile(path, data)
	res.File = file
	mod, err := parser.Parse(file)
	timer.End(t, "")
	if err != nil {
		log.Debug().Err(err).Msg("unable to parse")
		res.Err = err
		return res
	}

	t = enter(StageFormat)
	out := format.Format(mod, format.Options{MaxWidth: opts.LineLength})
	changed := !bytes.Equal(data, out)
	note := "unchanged"
	if changed {
		note = "changed"
	}
	timer.End(t, note)

	if opts.Safe && changed {
		t = enter(StageCompare)
		err := compare.Check(file.Content, out)
		timer.End(t, "")
		if err != nil {
			log.Error().Err(err).Msg("safety check rejected the rewrite")
			res.Err = err
			return res
		}
	}

	res.Formatted = out
	res.Changed = changed
	if opts.Diff && changed {
		res.Diff = difffmt.Unified(path, data, out, mtime, opts.now())
	}

	if opts.writeBack() && changed {
		t = enter(StageWrite)
		err := writeFile(path, out)
		timer.End(t, "")
		if err != nil {
			res.Err = diag.Newf(diag.IOWriteFailed, path, "%v", err)
			res.Changed = false
			return res
		}
		log.Debug().Msg("reformatted")
	}
	res.Success = true

	if opts.Cache != nil && (!changed || opts.writeBack()) {
		if changed {
			key = Key(out, opts.LineLength, opts.Safe)
		}
		payload := DiskPayload{Path: path, Size: len(out), LineLength: opts.LineLength, Version: version.Version}
		if err := opts.Cache.Put(key, &payload); err != nil {
			log.Warn().Err(err).Msg("cache write failed")
		}
	}
	return res
}

func writeFile(path string, content []byte) error {
	mode := os.FileMode(0o644)
	if info, statErr := os.Stat(path); statErr == nil {
		mode = info.Mode()
	}
	if err := os.WriteFile(path, content, mode.Perm()); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
