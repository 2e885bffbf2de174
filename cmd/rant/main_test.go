package main

// File : cmd/rant/main_test.go

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/textgen/rant"
)

func TestRunFilePrintsRenderedOutput(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "greeting.rant")
	require.NoError(t, os.WriteFile(path, []byte("Hello, world!"), 0o644))

	engine := rant.New()
	var buf bytes.Buffer
	oldStdout := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	code := runFile(engine, path)

	w.Close()
	os.Stdout = oldStdout
	_, err = buf.ReadFrom(r)
	require.NoError(t, err)

	require.Equal(t, 0, code)
	require.Contains(t, buf.String(), "Hello, world!")
}

func TestRunFileReportsMissingFile(t *testing.T) {
	engine := rant.New()
	code := runFile(engine, filepath.Join(t.TempDir(), "missing.rant"))
	require.Equal(t, 1, code)
}

func TestRunFileReportsCompileError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.rant")
	require.NoError(t, os.WriteFile(path, []byte("{a|b"), 0o644))

	engine := rant.New()
	code := runFile(engine, path)
	require.Equal(t, 1, code)
}
