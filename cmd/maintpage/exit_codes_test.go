package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alnah/go-maintpage"
	"github.com/alnah/go-maintpage/internal/assets"
	"github.com/alnah/go-maintpage/internal/config"
)

// ---------------------------------------------------------------------------
// TestExitCodeFor - Error to exit code mapping
// ---------------------------------------------------------------------------

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"usage", usageError(errors.New("bad flag")), ExitUsage},
		{"unknown command", ErrUnknownCommand, ExitUsage},
		{"settings not found", fmt.Errorf("%w: x.yaml", config.ErrConfigNotFound), ExitUsage},
		{"settings parse", config.ErrConfigParse, ExitUsage},
		{"settings field required", config.ErrFieldRequired, ExitUsage},
		{"settings value", config.ErrInvalidValue, ExitUsage},
		{"settings field too long", config.ErrFieldTooLong, ExitUsage},
		{"invalid job", maintpage.ErrInvalidJob, ExitUsage},
		{"invalid level", maintpage.ErrInvalidLevel, ExitUsage},
		{"starter not found", assets.ErrStarterNotFound, ExitUsage},
		{"invalid starter name", assets.ErrInvalidAssetName, ExitUsage},
		{"starter directory", assets.ErrInvalidBasePath, ExitUsage},
		{"file exists", assets.ErrFileExists, ExitGeneral},
		{"generic", errors.New("boom"), ExitGeneral},
		{
			"minify stage",
			&maintpage.StageError{Stage: maintpage.StagePruned, Err: maintpage.ErrMinify},
			ExitGeneral,
		},
		{
			"stage wrapping a level error",
			&maintpage.StageError{Stage: maintpage.StagePruned, Err: maintpage.ErrInvalidLevel},
			ExitGeneral,
		},
		{
			"wrapped stage error",
			fmt.Errorf("build: %w", &maintpage.StageError{Stage: maintpage.StageStart, Err: maintpage.ErrDataParse}),
			ExitGeneral,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, exitCodeFor(tt.err))
		})
	}
}
