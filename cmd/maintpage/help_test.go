package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// ---------------------------------------------------------------------------
// TestRunHelp - Command help
// ---------------------------------------------------------------------------

func TestRunHelp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		args []string
		want string
	}{
		{nil, "Commands:"},
		{[]string{cmdBuild}, "Usage: maintpage build"},
		{[]string{cmdInit}, "Usage: maintpage init"},
		{[]string{cmdCheck}, "--json"},
		{[]string{cmdVersion}, "Usage: maintpage version"},
		{[]string{cmdHelp}, "Usage: maintpage help"},
	}

	for _, tt := range tests {
		env, stdout, _ := newTestEnv(&fakeBuilder{})

		code := runHelp(tt.args, env)

		assert.Equal(t, ExitSuccess, code)
		assert.Contains(t, stdout.String(), tt.want)
	}
}

func TestRunHelp_UnknownCommand(t *testing.T) {
	t.Parallel()
	env, stdout, stderr := newTestEnv(&fakeBuilder{})

	code := runHelp([]string{"deploy"}, env)

	assert.Equal(t, ExitUsage, code)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "Unknown command: deploy")
}

func TestPrintBuildFlags_ListsEnvironment(t *testing.T) {
	t.Parallel()
	env, stdout, _ := newTestEnv(&fakeBuilder{})

	runHelp([]string{cmdBuild}, env)

	for name := range knownEnvVars {
		assert.Contains(t, stdout.String(), name)
	}
}
