package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"mamushi/internal/config"
	"mamushi/internal/diag"
	"mamushi/internal/diagfmt"
	"mamushi/internal/difffmt"
	"mamushi/internal/driver"
	"mamushi/internal/observ"
	"mamushi/internal/ui"
)

func addFormatFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.IntP("line-length", "l", config.DefaultLineLength, "max line length")
	f.Bool("in-place", true, "overwrite files in place")
	f.Bool("safe", true, "compare input and output trees to ensure they are equivalent")
	f.Bool("check", false, "don't write the files back, just return the status (0 nothing would change, 1 some files would be reformatted, 123 internal error)")
	f.Bool("diff", false, "don't write the files back, just output a diff for each file on stdout")
	f.IntP("jobs", "j", 0, "max parallel workers (0=auto)")
	f.Bool("cache", false, "skip files recorded as already formatted")
	f.Bool("clear-cache", false, "drop the format cache before running")
	f.String("ui", "off", "progress UI (auto|on|off)")
	f.String("config", "", "configuration file (default: nearest mamushi.toml or pyproject.toml)")
	f.String("diagnostics", "pretty", "failure detail format with --verbose (pretty|json)")
	f.String("path-mode", "as-is", "paths in diagnostics (as-is|absolute|relative|basename)")
}

type formatFlags struct {
	opts        driver.Options
	cache       bool
	clearCache  bool
	ui          uiMode
	diagnostics string
	pathMode    diagfmt.PathMode
	quiet       bool
	verbose     bool
	timings     bool
}

func readFormatFlags(cmd *cobra.Command, args []string) (formatFlags, error) {
	var ff formatFlags
	var err error
	f := cmd.Flags()
	pf := cmd.Root().PersistentFlags()

	ff.opts = driver.DefaultOptions()
	configPath, _ := f.GetString("config")
	ff.opts.Config, err = loadConfig(configPath, args)
	if err != nil {
		return ff, err
	}
	ff.opts.LineLength = ff.opts.Config.LineLength
	ff.opts.Safe = ff.opts.Config.Safe

	if f.Changed("line-length") {
		if ff.opts.LineLength, err = f.GetInt("line-length"); err != nil {
			return ff, err
		}
		if ff.opts.LineLength <= 0 {
			return ff, fmt.Errorf("--line-length must be positive, got %d", ff.opts.LineLength)
		}
	}
	if f.Changed("safe") {
		if ff.opts.Safe, err = f.GetBool("safe"); err != nil {
			return ff, err
		}
	}
	if ff.opts.InPlace, err = f.GetBool("in-place"); err != nil {
		return ff, err
	}
	if ff.opts.Check, err = f.GetBool("check"); err != nil {
		return ff, err
	}
	if ff.opts.Diff, err = f.GetBool("diff"); err != nil {
		return ff, err
	}
	if ff.opts.Jobs, err = f.GetInt("jobs"); err != nil {
		return ff, err
	}
	if ff.cache, err = f.GetBool("cache"); err != nil {
		return ff, err
	}
	if ff.clearCache, err = f.GetBool("clear-cache"); err != nil {
		return ff, err
	}
	uiValue, _ := f.GetString("ui")
	if ff.ui, err = readUIMode(uiValue); err != nil {
		return ff, err
	}
	if ff.diagnostics, err = f.GetString("diagnostics"); err != nil {
		return ff, err
	}
	if ff.diagnostics != "pretty" && ff.diagnostics != "json" {
		return ff, fmt.Errorf("invalid --diagnostics value %q (expected pretty|json)", ff.diagnostics)
	}
	pathMode, _ := f.GetString("path-mode")
	if ff.pathMode, err = diagfmt.ParsePathMode(pathMode); err != nil {
		return ff, err
	}
	if ff.quiet, err = pf.GetBool("quiet"); err != nil {
		return ff, err
	}
	if ff.verbose, err = pf.GetBool("verbose"); err != nil {
		return ff, err
	}
	if ff.timings, err = pf.GetBool("timings"); err != nil {
		return ff, err
	}
	ff.opts.Timings = ff.timings
	return ff, nil
}

func loadConfig(explicit string, args []string) (config.Config, error) {
	if explicit != "" {
		return config.Load(explicit)
	}
	start := "."
	if len(args) > 0 {
		start = args[0]
	}
	return config.Discover(start)
}

func runFormat(cmd *cobra.Command, args []string) error {
	ff, err := readFormatFlags(cmd, args)
	if err != nil {
		return err
	}
	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()

	logger, err := newLogger(cmd, stderr)
	if err != nil {
		return err
	}
	ff.opts.Logger = &logger
	if path := ff.opts.Config.Path; path != "" {
		logger.Debug().Str("config", path).Msg("using configuration")
		for _, key := range ff.opts.Config.Unknown {
			logger.Warn().Str("config", path).Str("key", key).Msg("unknown configuration key")
		}
	}

	if ff.cache || ff.clearCache {
		cache, err := driver.OpenDiskCache("mamushi")
		if err != nil {
			return fmt.Errorf("open cache: %w", err)
		}
		if ff.clearCache {
			if err := cache.DropAll(); err != nil {
				return fmt.Errorf("clear cache: %w", err)
			}
		}
		if ff.cache {
			ff.opts.Cache = cache
		}
	}

	paths := args
	if len(paths) == 0 {
		cwd, err := os.Getwd()
		if err != nil {
			return err
		}
		paths = []string{cwd}
	}

	results, err := formatWithProgress(cmd.Context(), paths, ff)
	if err != nil {
		if errors.Is(err, driver.ErrNoFiles) {
			if !ff.quiet {
				fmt.Fprintln(stderr, "No Vyper files are present to be formatted. Nothing to do 😴")
			}
			return nil
		}
		return err
	}

	report := &driver.Report{Out: stderr, Check: ff.opts.Check, Diff: ff.opts.Diff, Quiet: ff.quiet, Verbose: ff.verbose}
	bag := diag.NewBag(len(results))
	timings := make([]observ.Report, 0, len(results))
	for _, res := range results {
		timings = append(timings, res.Timing)
		report.Add(res)
		if !res.Success {
			if d, ok := diag.As(res.Err); ok && ff.verbose {
				if ff.diagnostics == "json" {
					bag.Add(d)
				} else {
					if err := diagfmt.Pretty(stderr, d, res.File, diagfmt.PrettyOpts{Color: !color.NoColor, Context: 1, PathMode: ff.pathMode}); err != nil {
						return err
					}
				}
			}
			continue
		}
		if res.Diff != "" {
			if _, err := io.WriteString(stdout, difffmt.Colorize(res.Diff)); err != nil {
				return fmt.Errorf("write diff: %w", err)
			}
		}
		if !ff.opts.InPlace && !ff.opts.Check && !ff.opts.Diff && len(res.Formatted) > 0 {
			if _, err := stdout.Write(res.Formatted); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
		}
	}

	if bag.Len() > 0 {
		bag.Sort()
		if err := diagfmt.JSON(stderr, bag.Items(), diagfmt.JSONOpts{IncludePositions: true, PathMode: ff.pathMode}); err != nil {
			return err
		}
	}
	if ff.timings {
		fmt.Fprint(stderr, observ.Aggregate(timings).String())
	}
	report.Finish(ff.opts.InPlace)

	if code := report.ExitCode(); code != driver.ExitOK {
		return exitError{code: code}
	}
	return nil
}

// formatWithProgress runs the batch, with the progress display when asked.
// The display reads events on the main goroutine while workers run.
func formatWithProgress(ctx context.Context, paths []string, ff formatFlags) ([]driver.Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if ff.quiet || !shouldUseTUI(ff.ui) {
		return driver.FormatPaths(ctx, paths, ff.opts)
	}

	files, err := driver.Files(ctx, paths, ff.opts)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, driver.ErrNoFiles
	}

	type outcome struct {
		results []driver.Result
		err     error
	}
	events := make(chan driver.Event, 256)
	done := make(chan outcome, 1)
	opts := ff.opts
	opts.Progress = driver.ChannelSink{Ch: events}
	// Логи поверх TUI ломают отрисовку.
	quietLog := opts.Logger.Level(zerolog.ErrorLevel)
	opts.Logger = &quietLog

	go func() {
		res, err := driver.FormatPaths(ctx, paths, opts)
		done <- outcome{results: res, err: err}
		close(events)
	}()

	uiErr := ui.Run(os.Stderr, "formatting", files, events)
	if uiErr != nil {
		// UI завершился раньше: не даём воркерам заблокироваться на канале.
		go func() {
			for range events {
			}
		}()
	}
	out := <-done
	if out.err == nil && uiErr != nil {
		out.err = fmt.Errorf("progress display: %w", uiErr)
	}
	return out.results, out.err
}
