package driver

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mamushi/internal/config"
	"mamushi/internal/diag"
)

const (
	minimalContract = "@external\ndef a():\n    pass\n"
	untidyContract  = "@external\ndef a():\n  pass\n"
	brokenContract  = "@external\ndef a()\n    pass\n"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return root
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func byPath(results []Result) map[string]Result {
	out := make(map[string]Result, len(results))
	for _, r := range results {
		out[filepath.Base(r.Path)] = r
	}
	return out
}

func TestCheckModeWritesNothing(t *testing.T) {
	root := writeTree(t, map[string]string{"good.vy": minimalContract, "bad.vy": untidyContract})
	opts := DefaultOptions()
	opts.Check = true

	results, err := FormatPaths(context.Background(), []string{root}, opts)
	require.NoError(t, err)
	require.Len(t, results, 2)

	got := byPath(results)
	assert.True(t, got["good.vy"].Success)
	assert.False(t, got["good.vy"].Changed)
	assert.True(t, got["bad.vy"].Success)
	assert.True(t, got["bad.vy"].Changed)
	assert.Equal(t, untidyContract, readFile(t, filepath.Join(root, "bad.vy")))

	report := Report{Check: true}
	for _, r := range results {
		report.Add(r)
	}
	assert.Equal(t, ExitChanged, report.ExitCode())
	assert.Equal(t, "1 file would be reformatted, 1 file would be left unchanged.", report.String())
}

func TestInPlaceRewrites(t *testing.T) {
	root := writeTree(t, map[string]string{"bad.vy": untidyContract})
	path := filepath.Join(root, "bad.vy")

	results, err := FormatPaths(context.Background(), []string{path}, DefaultOptions())
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.True(t, results[0].Changed)
	assert.Equal(t, minimalContract, readFile(t, path))

	results, err = FormatPaths(context.Background(), []string{path}, DefaultOptions())
	require.NoError(t, err)
	assert.False(t, results[0].Changed)
}

func TestOutOfPlaceReturnsContent(t *testing.T) {
	root := writeTree(t, map[string]string{"bad.vy": untidyContract})
	opts := DefaultOptions()
	opts.InPlace = false

	results, err := FormatPaths(context.Background(), []string{root}, opts)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, minimalContract, string(results[0].Formatted))
	assert.True(t, opts.printFormatted())
	assert.Equal(t, untidyContract, readFile(t, filepath.Join(root, "bad.vy")))
}

func TestDiffMode(t *testing.T) {
	root := writeTree(t, map[string]string{"bad.vy": untidyContract, "good.vy": minimalContract})
	opts := DefaultOptions()
	opts.Diff = true

	results, err := FormatPaths(context.Background(), []string{root}, opts)
	require.NoError(t, err)
	got := byPath(results)

	d := got["bad.vy"].Diff
	assert.Contains(t, d, "--- STDIN\t")
	assert.Contains(t, d, "+++ STDOUT\t")
	assert.Contains(t, d, "-  pass\n")
	assert.Contains(t, d, "+    pass\n")
	assert.Empty(t, got["good.vy"].Diff)
	assert.Equal(t, untidyContract, readFile(t, filepath.Join(root, "bad.vy")))
}

func TestSyntaxErrorLeavesFileAndBatchContinues(t *testing.T) {
	root := writeTree(t, map[string]string{"broken.vy": brokenContract, "bad.vy": untidyContract})

	results, err := FormatPaths(context.Background(), []string{root}, DefaultOptions())
	require.NoError(t, err)
	got := byPath(results)

	broken := got["broken.vy"]
	assert.False(t, broken.Success)
	assert.Equal(t, diag.PhaseSyntax, diag.PhaseOf(broken.Err))
	assert.Equal(t, parseFailureMessage, FailureMessage(broken.Err))
	assert.False(t, IsInternal(broken.Err))
	assert.Equal(t, brokenContract, readFile(t, filepath.Join(root, "broken.vy")))

	assert.True(t, got["bad.vy"].Success)
	assert.Equal(t, minimalContract, readFile(t, filepath.Join(root, "bad.vy")))

	var out bytes.Buffer
	report := Report{Out: &out}
	for _, r := range results {
		report.Add(r)
	}
	assert.Equal(t, ExitChanged, report.ExitCode())
	assert.Contains(t, out.String(), "error: cannot format "+broken.Path+": "+parseFailureMessage)
	assert.Contains(t, out.String(), "reformatted "+got["bad.vy"].Path)
}

func TestCollectSourceFiles(t *testing.T) {
	root := writeTree(t, map[string]string{
		"a.vy":           minimalContract,
		"sub/b.vyi":      minimalContract,
		"notes.txt":      "hello",
		"vendor/c.vy":    minimalContract,
		"explicit.vyper": minimalContract,
	})
	cfg := config.Default()
	cfg.Root = root
	cfg.Exclude = []string{"vendor"}

	files, err := collectSourceFiles(context.Background(), []string{root, filepath.Join(root, "explicit.vyper"), filepath.Join(root, "a.vy")}, cfg)
	require.NoError(t, err)
	var names []string
	for _, f := range files {
		rel, err := filepath.Rel(root, f)
		require.NoError(t, err)
		names = append(names, filepath.ToSlash(rel))
	}
	assert.Equal(t, []string{"a.vy", "explicit.vyper", "sub/b.vyi"}, names)

	_, err = collectSourceFiles(context.Background(), []string{filepath.Join(root, "missing.vy")}, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid path")
}

func TestNoFiles(t *testing.T) {
	root := writeTree(t, map[string]string{"notes.txt": "hello"})
	_, err := FormatPaths(context.Background(), []string{root}, DefaultOptions())
	assert.ErrorIs(t, err, ErrNoFiles)
}

func TestCacheSkipsKnownFiles(t *testing.T) {
	// good.vy differs from the rewrite of bad.vy, so the first run has no hits
	// whatever order the workers finish in.
	other := "@external\ndef b():\n    pass\n"
	root := writeTree(t, map[string]string{"good.vy": other, "bad.vy": untidyContract})
	cache, err := OpenDiskCacheAt(filepath.Join(t.TempDir(), "cache"))
	require.NoError(t, err)

	opts := DefaultOptions()
	opts.Cache = cache
	results, err := FormatPaths(context.Background(), []string{root}, opts)
	require.NoError(t, err)
	for _, r := range results {
		assert.False(t, r.Cached, r.Path)
	}

	results, err = FormatPaths(context.Background(), []string{root}, opts)
	require.NoError(t, err)
	for _, r := range results {
		assert.True(t, r.Cached, r.Path)
		assert.True(t, r.Success)
		assert.False(t, r.Changed)
	}

	var payload DiskPayload
	hit, err := cache.Get(Key([]byte(minimalContract), 80, true), &payload)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, 80, payload.LineLength)

	hit, err = cache.Get(Key([]byte(other), 80, true), &payload)
	require.NoError(t, err)
	assert.True(t, hit)

	hit, err = cache.Get(Key([]byte(minimalContract), 100, true), &payload)
	require.NoError(t, err)
	assert.False(t, hit, "line length must be part of the key")

	require.NoError(t, cache.DropAll())
	hit, err = cache.Get(Key([]byte(minimalContract), 80, true), &payload)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestProgressAndTimings(t *testing.T) {
	root := writeTree(t, map[string]string{"bad.vy": untidyContract, "broken.vy": brokenContract})

	var (
		mu   sync.Mutex
		last = map[string]Event{}
		seen = map[Status]int{}
	)
	opts := DefaultOptions()
	opts.Check = true
	opts.Timings = true
	opts.Jobs = 2
	opts.Progress = SinkFunc(func(ev Event) {
		mu.Lock()
		defer mu.Unlock()
		last[filepath.Base(ev.File)] = ev
		seen[ev.Status]++
	})

	results, err := FormatPaths(context.Background(), []string{root}, opts)
	require.NoError(t, err)

	assert.Equal(t, StatusDone, last["bad.vy"].Status)
	assert.Equal(t, StatusError, last["broken.vy"].Status)
	assert.Equal(t, StageParse, last["broken.vy"].Stage)
	assert.Equal(t, 2, seen[StatusQueued])

	got := byPath(results)
	var names []string
	for _, p := range got["bad.vy"].Timing.Phases {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"read", "parse", "format", "compare"}, names)
}

func TestCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := FormatPaths(ctx, []string{"."}, DefaultOptions())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestReport(t *testing.T) {
	var out bytes.Buffer
	r := Report{Out: &out, Verbose: true}
	r.Done("a.vy", false)
	r.Done("b.vy", true)
	r.Done("c.vy", true)
	assert.Equal(t, ExitOK, r.ExitCode())
	assert.Equal(t, "2 files reformatted, 1 file left unchanged.", r.String())
	assert.Contains(t, out.String(), "a.vy already well formatted, good job.\n")

	r.Failed("d.vy", safetyFailureMessage, true)
	assert.Equal(t, ExitInternal, r.ExitCode())
	assert.Equal(t, "2 files reformatted, 1 file left unchanged, 1 file failed to reformat.", r.String())

	out.Reset()
	r.Finish(true)
	assert.Equal(t, "Oh no! 💥 💔 💥\n2 files reformatted, 1 file left unchanged, 1 file failed to reformat.\n", out.String())

	quiet := Report{Out: &out, Quiet: true}
	out.Reset()
	quiet.Done("a.vy", true)
	quiet.Finish(true)
	assert.Empty(t, out.String())
	quiet.Failed("b.vy", "boom", false)
	assert.Equal(t, "error: cannot format b.vy: boom\n", out.String())
	assert.Equal(t, ExitChanged, quiet.ExitCode())
}

func TestFailureClassification(t *testing.T) {
	tests := []struct {
		code     diag.Code
		message  string
		internal bool
	}{
		{diag.LexUnterminatedString, parseFailureMessage, false},
		{diag.SynExpectColon, parseFailureMessage, false},
		{diag.SafetyASTChanged, safetyFailureMessage, true},
		{diag.SafetyReparseFailed, safetyFailureMessage, true},
		{diag.IOWriteFailed, "disk full", false},
		{diag.InternalPanic, "disk full", true},
	}
	for _, tt := range tests {
		err := diag.Newf(tt.code, "x.vy", "disk full")
		assert.Equal(t, tt.message, FailureMessage(err), tt.code.ID())
		assert.Equal(t, tt.internal, IsInternal(err), tt.code.ID())
	}
}

func TestParseFailureLogLevel(t *testing.T) {
	root := writeTree(t, map[string]string{"broken.vy": brokenContract})

	for _, tt := range []struct {
		level  zerolog.Level
		logged bool
	}{
		{zerolog.InfoLevel, false},
		{zerolog.DebugLevel, true},
	} {
		var buf bytes.Buffer
		logger := zerolog.New(&buf).Level(tt.level)
		opts := DefaultOptions()
		opts.Logger = &logger

		results, err := FormatPaths(context.Background(), []string{root}, opts)
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.False(t, results[0].Success)
		assert.Equal(t, tt.logged, bytes.Contains(buf.Bytes(), []byte("unable to parse")), tt.level.String())
	}
}
