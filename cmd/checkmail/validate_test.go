package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and stdin, returning stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func decodeResults(t *testing.T, out string) []Result {
	t.Helper()

	var results []Result
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if line == "" {
			continue
		}
		var r Result
		require.NoError(t, json.Unmarshal([]byte(line), &r), "line %q", line)
		results = append(results, r)
	}
	return results
}

func TestValidate_Args(t *testing.T) {
	out, err := execute(t, "", "validate", "florian@carrere.cc", "admin@busyboo.com")
	require.NoError(t, err)

	results := decodeResults(t, out)
	require.Len(t, results, 2)
	assert.True(t, results[0].Valid)
	assert.True(t, results[1].Valid)
}

func TestValidate_RejectedArgs(t *testing.T) {
	out, err := execute(t, "", "validate", "a@gmail.fi", " test@gmail.com", "test@gmail@gmail.com")
	require.Error(t, err)
	assert.Equal(t, "2 of 3 addresses rejected", err.Error())

	results := decodeResults(t, out)
	require.Len(t, results, 3)
	assert.True(t, results[0].Valid)
	assert.Equal(t, " test@gmail.com", results[1].Input)
	assert.Equal(t, "invalid format:  test@gmail.com", results[1].Error)
	assert.Equal(t, kindBadFormat, results[2].Kind)
}

func TestValidate_Stdin(t *testing.T) {
	stdin := "florian@carrere.cc\nflorian@carrere.cc \n\ntest@wrong domain.com\n"
	out, err := execute(t, stdin, "validate", "--only-invalid")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 of 3")

	results := decodeResults(t, out)
	require.Len(t, results, 2)
	assert.Equal(t, "florian@carrere.cc ", results[0].Input)
	assert.Equal(t, "test@wrong domain.com", results[1].Input)
}

func TestValidate_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "signups.txt")
	require.NoError(t, os.WriteFile(path, []byte("a@gmail.fi\r\nadmin@busyboo.com\n"), 0644))

	out, err := execute(t, "", "validate", "--file", path, "--format", "pretty")
	require.NoError(t, err)
	assert.Equal(t, "ok       a@gmail.fi\nok       admin@busyboo.com\n", out)
}

func TestValidate_FileNotFound(t *testing.T) {
	_, err := execute(t, "", "validate", "--file", "/nonexistent/signups.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "input file")
	assert.NotContains(t, err.Error(), "/nonexistent")
}

func TestValidate_FlagErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"bad format", []string{"validate", "--format", "xml", "a@gmail.fi"}, "invalid --format"},
		{"args and file", []string{"validate", "--file", "x.txt", "a@gmail.fi"}, "cannot be combined"},
		{"follow without file", []string{"validate", "--follow"}, "--follow requires --file"},
		{"follow stdin", []string{"validate", "--follow", "--file", "-"}, "--follow requires --file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, "", tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidate_CustomPattern(t *testing.T) {
	out, err := execute(t, "", "validate", "--pattern", `[a-z]+@example\.com`, "admin@example.com")
	require.NoError(t, err)
	assert.True(t, decodeResults(t, out)[0].Valid)

	_, err = execute(t, "", "validate", "--pattern", `[a-z]+@example\.com`, "florian@carrere.cc")
	require.Error(t, err)
}

func TestValidate_PatternFromEnv(t *testing.T) {
	t.Setenv(patternEnv, `[a-z]+@example\.com`)

	_, err := execute(t, "", "validate", "florian@carrere.cc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 1")
}

func TestValidate_BrokenPattern(t *testing.T) {
	out, err := execute(t, "", "validate", "--pattern", `[a-z`, "a@gmail.fi", "b@gmail.fi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected error (")

	// Processing stops at the first candidate.
	results := decodeResults(t, out)
	require.Len(t, results, 1)
	assert.Equal(t, kindUnexpected, results[0].Kind)
}

func TestValidate_NoInput(t *testing.T) {
	out, err := execute(t, "", "validate")
	require.NoError(t, err)
	assert.Empty(t, out)
}
