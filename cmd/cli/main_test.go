package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_NormalizesToJSON(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	args := []string{"-e", "a=1", "b=2"}
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	// --- Act ---
	err := run(out, errOut, args)

	// --- Assert ---
	require.NoError(t, err)
	assert.JSONEq(t, `{"a": 1, "b": 2}`, out.String())
}

func TestRun_YAMLOutput(t *testing.T) {
	t.Parallel()

	args := []string{"--yaml", "a=1"}
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	err := run(out, errOut, args)

	require.NoError(t, err)
	assert.Equal(t, "a: 1\n", out.String())
}

func TestRun_FileSource(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	filePath := filepath.Join(t.TempDir(), "extra_vars.yml")
	require.NoError(t, os.WriteFile(filePath, []byte("a: 1\n"), 0600))

	args := []string{"@" + filePath, "b=2"}
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	// --- Act ---
	err := run(out, errOut, args)

	// --- Assert ---
	require.NoError(t, err)
	assert.JSONEq(t, `{"a": 1, "b": 2}`, out.String())
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	args := []string{"-h"}
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	// --- Act ---
	// The run function should see `shouldExit=true` and return a nil error.
	err := run(out, errOut, args)

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, errOut.String(), "Usage:", "Expected help text to be printed to the error stream")
	require.Empty(t, out.String(), "nothing should reach the result stream")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// Providing an unknown flag will cause cli.Parse to return an error.
	args := []string{"--this-is-not-a-valid-flag"}
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	// --- Act ---
	// The run function should propagate the error from cli.Parse.
	err := run(out, errOut, args)

	// --- Assert ---
	require.Error(t, err, "run() should return an error when argument parsing fails")
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}

func TestRun_BadSource(t *testing.T) {
	t.Parallel()

	args := []string{"x="}
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	err := run(out, errOut, args)

	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to parse some of the extra variables")
	require.Empty(t, out.String())
}
