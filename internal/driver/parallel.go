package driver

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// FormatPaths formats the given files and directories. Results come back in
// the sorted order of the collected files, one per file; a failure in one
// file never stops the others. The returned error is reserved for problems
// with the run itself (bad path, cancellation).
func FormatPaths(ctx context.Context, paths []string, opts Options) ([]Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	opts = opts.withDefaults()

	files, err := collectSourceFiles(ctx, paths, opts.Config)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, ErrNoFiles
	}
	opts.Logger.Debug().Int("files", len(files)).Int("jobs", opts.Jobs).Msg("formatting")

	for _, path := range files {
		opts.Progress.OnEvent(Event{File: path, Status: StatusQueued})
	}

	// Результаты (индексы уникальны для каждой горутины, мьютекс не нужен)
	results := make([]Result, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(opts.Jobs, len(files)))
	for i, path := range files {
		g.Go(func() error {
			// Проверка отмены
			if err := gctx.Err(); err != nil {
				results[i] = Result{Path: path, Err: err}
				return err
			}
			results[i] = formatSingleFile(gctx, path, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

// Files returns the list FormatPaths would process, for progress displays
// that need it up front.
func Files(ctx context.Context, paths []string, opts Options) ([]string, error) {
	opts = opts.withDefaults()
	return collectSourceFiles(ctx, paths, opts.Config)
}
