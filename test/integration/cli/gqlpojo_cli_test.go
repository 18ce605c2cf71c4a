//go:build integration
// +build integration

package cli_test

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildBinary compiles gqlpojo into a temp directory and returns its path
func buildBinary(t *testing.T) string {
	t.Helper()

	_, testFile, _, ok := runtime.Caller(0)
	require.True(t, ok, "Failed to get test file path")

	// Navigate from test/integration/cli to project root
	projectRoot := filepath.Join(filepath.Dir(testFile), "..", "..", "..")
	binary := filepath.Join(t.TempDir(), "gqlpojo")

	cmd := exec.Command("go", "build", "-o", binary, ".")
	cmd.Dir = projectRoot
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "Failed to build gqlpojo: %s", out)
	return binary
}

// newProject copies the test schema into a fresh project directory
func newProject(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	data, err := os.ReadFile(filepath.Join("testdata", "schema.graphqls"))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "schema.graphqls"), data, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "gqlpojo.yaml"), []byte(
		"schema: schema.graphqls\noutput: gen\npackage: com.example.films\nscalars:\n  DateTime: java.time.OffsetDateTime\n",
	), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "gen"), 0o755))
	return dir
}

func TestGenerateJava(t *testing.T) {
	binary := buildBinary(t)
	dir := newProject(t)

	cmd := exec.Command(binary, "generate")
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "generate failed: %s", out)
	assert.Contains(t, string(out), "Generated 3 files for package com.example.films")

	pkgDir := filepath.Join(dir, "gen", "com", "example", "films")
	for _, name := range []string{"Film.java", "FilmFilter.java", "Genre.java"} {
		assert.FileExists(t, filepath.Join(pkgDir, name))
	}
	assert.NoFileExists(t, filepath.Join(pkgDir, "Query.java"))
	assert.NoFileExists(t, filepath.Join(pkgDir, "Node.java"))

	film, err := os.ReadFile(filepath.Join(pkgDir, "Film.java"))
	require.NoError(t, err)
	assert.Contains(t, string(film), "import java.time.OffsetDateTime;")
	assert.Contains(t, string(film), "private List<String> tags;")
}

func TestGenerateGoWithFlags(t *testing.T) {
	binary := buildBinary(t)
	dir := newProject(t)

	cmd := exec.Command(binary, "generate",
		"--language", "go",
		"--parser", "gqlparser",
		"--interfaces",
		"--scalar", "DateTime=time.Time",
	)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "generate failed: %s", out)

	pkgDir := filepath.Join(dir, "gen", "com", "example", "films")
	assert.FileExists(t, filepath.Join(pkgDir, "Node.go"))

	film, err := os.ReadFile(filepath.Join(pkgDir, "Film.go"))
	require.NoError(t, err)
	assert.Contains(t, string(film), "package films")
	assert.Contains(t, string(film), "time.Time")
}

func TestGenerateInvalidSchema(t *testing.T) {
	binary := buildBinary(t)
	dir := newProject(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "schema.graphqls"), []byte("type Broken {"), 0o644))

	cmd := exec.Command(binary, "generate")
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	require.Error(t, err)
	assert.Contains(t, string(out), "parse schema")
}

func TestWatchRegenerates(t *testing.T) {
	binary := buildBinary(t)
	dir := newProject(t)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	cmd := exec.CommandContext(ctx, binary, "watch")
	cmd.Dir = dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	require.NoError(t, cmd.Start())
	defer func() {
		if cmd.Process != nil {
			cmd.Process.Kill()
			cmd.Wait()
		}
	}()

	pkgDir := filepath.Join(dir, "gen", "com", "example", "films")
	require.Eventually(t, func() bool {
		_, err := os.Stat(filepath.Join(pkgDir, "Film.java"))
		return err == nil
	}, 10*time.Second, 100*time.Millisecond, "initial generation: %s", stderr.String())

	schema, err := os.ReadFile(filepath.Join(dir, "schema.graphqls"))
	require.NoError(t, err)
	schema = append(schema, []byte("\ntype Studio {\n  name: String\n}\n")...)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "schema.graphqls"), schema, 0o644))

	assert.Eventually(t, func() bool {
		_, err := os.Stat(filepath.Join(pkgDir, "Studio.java"))
		return err == nil
	}, 10*time.Second, 100*time.Millisecond, "regeneration: stdout=%s stderr=%s", stdout.String(), stderr.String())
}
