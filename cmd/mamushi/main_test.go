package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	canonical = "@external\ndef a():\n    pass\n"
	untidy    = "@external\ndef a():\n  pass\n"
	broken    = "@external\ndef a()\n    pass\n"
	longCall  = "x = compute(alpha, beta, gamma)\n"
)

func runCLI(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(append([]string{"--color", "off"}, args...), &out, &errOut)
	return code, out.String(), errOut.String()
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func contents(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestFormatInPlace(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.vy", untidy)

	code, stdout, stderr := runCLI(t, dir)
	assert.Equal(t, 0, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "reformatted "+path)
	assert.Contains(t, stderr, "All done! ✨ 🍰 ✨")
	assert.Contains(t, stderr, "1 file reformatted.")
	assert.Equal(t, canonical, contents(t, path))
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.vy", untidy)
	writeFile(t, dir, "b.vy", canonical)

	code, _, stderr := runCLI(t, "--check", dir)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "would reformat "+path)
	assert.Contains(t, stderr, "Oh no! 💥 💔 💥")
	assert.Contains(t, stderr, "1 file would be reformatted, 1 file would be left unchanged.")
	assert.Equal(t, untidy, contents(t, path))

	code, _, _ = runCLI(t, "--check", filepath.Join(dir, "b.vy"))
	assert.Equal(t, 0, code)
}

func TestOutOfPlacePrintsContent(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.vy", untidy)

	code, stdout, _ := runCLI(t, "--in-place=false", path)
	assert.Equal(t, 0, code)
	assert.Equal(t, canonical, stdout)
	assert.Equal(t, untidy, contents(t, path))
}

func TestDiff(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.vy", untidy)

	code, stdout, _ := runCLI(t, "--diff", path)
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "--- STDIN\t")
	assert.Contains(t, stdout, " - "+path+"\n")
	assert.Contains(t, stdout, "+    pass\n")
	assert.Equal(t, untidy, contents(t, path))
}

func TestSyntaxErrorVerbose(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.vy", broken)

	code, _, stderr := runCLI(t, "-v", path)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "error: cannot format "+path+": Unable to parse input file, are you sure the Vyper code is valid?")
	assert.Contains(t, stderr, "SYN")
	assert.Contains(t, stderr, "def a()")
	assert.Equal(t, broken, contents(t, path))
}

func TestSyntaxErrorJSONDiagnostics(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.vy", broken)

	code, _, stderr := runCLI(t, "-q", "-v", "--diagnostics", "json", path)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, `"code": "SYN`)

	code, _, stderr = runCLI(t, "-q", "-v", "--diagnostics", "json", "--path-mode", "basename", path)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, `"path": "a.vy"`)

	code, _, _ = runCLI(t, "--path-mode", "full", path)
	assert.Equal(t, 1, code)
}

func TestConfigFileAndOverride(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "mamushi.toml", "line-length = 20\n")
	path := writeFile(t, dir, "a.vy", longCall)

	code, stdout, _ := runCLI(t, "--in-place=false", path)
	assert.Equal(t, 0, code)
	assert.Equal(t, "x = compute(\n    alpha,\n    beta,\n    gamma,\n)\n", stdout)

	code, stdout, _ = runCLI(t, "--in-place=false", "-l", "120", path)
	assert.Equal(t, 0, code)
	assert.Equal(t, longCall, stdout)

	code, _, stderr := runCLI(t, "-l", "0", path)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "--line-length must be positive")
}

func TestNothingToDo(t *testing.T) {
	code, _, stderr := runCLI(t, t.TempDir())
	assert.Equal(t, 0, code)
	assert.Contains(t, stderr, "Nothing to do")
}

func TestMissingPath(t *testing.T) {
	code, _, stderr := runCLI(t, filepath.Join(t.TempDir(), "missing.vy"))
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "invalid path")
}

func TestTokenizeAndParse(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.vy", canonical)

	code, stdout, _ := runCLI(t, "tokenize", path)
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, `"external"`)

	code, stdout, _ = runCLI(t, "tokenize", "--format", "json", path)
	assert.Equal(t, 0, code)
	var toks []map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &toks))
	assert.NotEmpty(t, toks)

	code, stdout, _ = runCLI(t, "parse", path)
	assert.Equal(t, 0, code)
	assert.NotEmpty(t, stdout)

	bad := writeFile(t, dir, "b.vy", broken)
	code, _, stderr := runCLI(t, "parse", bad)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "error SYN")
}

func TestVersion(t *testing.T) {
	code, stdout, _ := runCLI(t, "version", "--format", "json", "--hash")
	assert.Equal(t, 0, code)
	var payload versionPayload
	require.NoError(t, json.Unmarshal([]byte(stdout), &payload))
	assert.Equal(t, "mamushi", payload.Tool)
	assert.Equal(t, "unknown", payload.GitCommit)

	code, stdout, _ = runCLI(t, "version")
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "mamushi ")
}

func TestProfilesWritten(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.vy", canonical)
	cpu := filepath.Join(dir, "cpu.pprof")
	mem := filepath.Join(dir, "mem.pprof")

	code, _, _ := runCLI(t, "--cpu-profile", cpu, "--mem-profile", mem, "--check", dir)
	assert.Equal(t, 0, code)
	assert.FileExists(t, cpu)
	assert.FileExists(t, mem)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestOutputWriteError(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.vy", untidy)

	var errOut bytes.Buffer
	code := run([]string{"--color", "off", "--in-place=false", path}, failingWriter{}, &errOut)
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut.String(), "write output: broken pipe")
}
