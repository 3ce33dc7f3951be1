package diagfmt_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mamushi/internal/diag"
	"mamushi/internal/diagfmt"
	"mamushi/internal/lexer"
	"mamushi/internal/source"
)

func sample() (*source.File, *diag.Diagnostic) {
	f := source.NewVirtualFile("t.vy", "x = 1\ny = = 2\n")
	d := diag.At(f, diag.SynUnexpectedToken, source.Span{Start: 10, End: 11}, "unexpected '='")
	return f, d
}

func TestPrettyExcerpt(t *testing.T) {
	f, d := sample()
	var buf bytes.Buffer
	require.NoError(t, diagfmt.Pretty(&buf, d, f, diagfmt.PrettyOpts{}))

	want := "t.vy:2:5: error SYN2001: unexpected '='\n" +
		"2 | y = = 2\n" +
		"  |     ^\n"
	assert.Equal(t, want, buf.String())
}

func TestPrettyContext(t *testing.T) {
	f, d := sample()
	var buf bytes.Buffer
	require.NoError(t, diagfmt.Pretty(&buf, d, f, diagfmt.PrettyOpts{Context: 1}))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "1 | x = 1", lines[1])
	assert.Equal(t, "2 | y = = 2", lines[2])
}

func TestPrettyUnlocated(t *testing.T) {
	d := diag.Newf(diag.SafetyASTChanged, "a.vy", "Formatting changed the AST at %s", "Module")
	var buf bytes.Buffer
	require.NoError(t, diagfmt.Pretty(&buf, d, nil, diagfmt.PrettyOpts{PathMode: diagfmt.PathModeBasename}))
	assert.Equal(t, "a.vy: error SAF3001: Formatting changed the AST at Module\n", buf.String())
}

func TestPrettyColor(t *testing.T) {
	f, d := sample()
	var buf bytes.Buffer
	require.NoError(t, diagfmt.Pretty(&buf, d, f, diagfmt.PrettyOpts{Color: true}))
	assert.Contains(t, buf.String(), "\x1b[")
}

func TestJSON(t *testing.T) {
	_, d := sample()
	var buf bytes.Buffer
	require.NoError(t, diagfmt.JSON(&buf, []*diag.Diagnostic{d, d}, diagfmt.JSONOpts{IncludePositions: true, Max: 1}))

	var out diagfmt.DiagnosticsOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	require.Equal(t, 1, out.Count)
	got := out.Diagnostics[0]
	assert.Equal(t, "SYN2001", got.Code)
	assert.Equal(t, "ERROR", got.Severity)
	require.NotNil(t, got.Pos)
	assert.Equal(t, uint32(2), got.Pos.Line)
	assert.Equal(t, uint32(10), got.Span.Start)
}

func TestTokens(t *testing.T) {
	f := source.NewVirtualFile("t.vy", "x = 1  # one\n")
	toks, err := lexer.Tokenize(f)
	require.NoError(t, err)

	var pretty bytes.Buffer
	require.NoError(t, diagfmt.FormatTokensPretty(&pretty, toks, f))
	assert.Contains(t, pretty.String(), `"x" at 1:1-1:2`)

	var raw bytes.Buffer
	require.NoError(t, diagfmt.FormatTokensJSON(&raw, toks))
	var out []diagfmt.TokenOutput
	require.NoError(t, json.Unmarshal(raw.Bytes(), &out))
	require.NotEmpty(t, out)
	assert.Equal(t, "Ident", out[0].Kind)
	assert.Equal(t, "EOF", out[len(out)-1].Kind)
}

func TestParsePathMode(t *testing.T) {
	for name, want := range map[string]diagfmt.PathMode{
		"as-is":    diagfmt.PathModeAsIs,
		"absolute": diagfmt.PathModeAbsolute,
		"relative": diagfmt.PathModeRelative,
		"basename": diagfmt.PathModeBasename,
	} {
		got, err := diagfmt.ParsePathMode(name)
		require.NoError(t, err)
		assert.Equal(t, want, got, name)
	}
	_, err := diagfmt.ParsePathMode("full")
	assert.Error(t, err)
}

func TestPathModes(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	abs := filepath.Join(wd, "contracts", "a.vy")
	d := diag.Newf(diag.SafetyASTChanged, abs, "changed")

	render := func(mode diagfmt.PathMode) string {
		var buf bytes.Buffer
		require.NoError(t, diagfmt.Pretty(&buf, d, nil, diagfmt.PrettyOpts{PathMode: mode}))
		return strings.SplitN(buf.String(), ":", 2)[0]
	}
	assert.Equal(t, "contracts/a.vy", render(diagfmt.PathModeRelative))
	assert.Equal(t, filepath.ToSlash(abs), render(diagfmt.PathModeAbsolute))
	assert.Equal(t, "a.vy", render(diagfmt.PathModeBasename))
}
