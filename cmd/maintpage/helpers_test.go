package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alnah/go-maintpage"
	"github.com/alnah/go-maintpage/internal/assets"
)

// ---------------------------------------------------------------------------
// Test Infrastructure - Fake builder and environment
// ---------------------------------------------------------------------------

// fakeBuilder records the job it receives instead of running the pipeline.
type fakeBuilder struct {
	calls  int
	opts   int
	job    maintpage.Job
	report *maintpage.Report
	err    error
}

func (f *fakeBuilder) Build(_ context.Context, job maintpage.Job) (*maintpage.Report, error) {
	f.calls++
	f.job = job
	if f.err != nil {
		return nil, f.err
	}
	if f.report != nil {
		return f.report, nil
	}
	return &maintpage.Report{OutputPath: job.OutputPath}, nil
}

// newTestEnv returns an environment writing to buffers and building with b.
func newTestEnv(b *fakeBuilder) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	env := &Environment{
		Stdout: &stdout,
		Stderr: &stderr,
		NewBuilder: func(opts ...maintpage.Option) Builder {
			b.opts = len(opts)
			return b
		},
	}
	return env, &stdout, &stderr
}

// isolateEnv clears MAINTPAGE_* variables and points the user config
// directory at an empty temp dir so no real settings file is picked up.
func isolateEnv(t *testing.T) {
	t.Helper()
	for name := range knownEnvVars {
		t.Setenv(name, "")
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
}

// newProject scaffolds the named embedded starter into a temp dir.
func newProject(t *testing.T, starter string) string {
	t.Helper()
	dir := t.TempDir()
	s, err := assets.LoadStarter(starter)
	require.NoError(t, err)
	_, err = assets.Scaffold(dir, s, false)
	require.NoError(t, err)
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}
