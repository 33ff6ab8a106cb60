package main

import (
	"errors"
	"fmt"

	"github.com/alnah/go-maintpage"
	"github.com/alnah/go-maintpage/internal/assets"
	"github.com/alnah/go-maintpage/internal/config"
)

// Exit codes for the maintpage CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage.
const (
	ExitSuccess = 0 // Page built, project scaffolded or checks passed
	ExitGeneral = 1 // A build stage failed, including minifier errors
	ExitUsage   = 2 // Invalid flags, settings or command, before any stage runs
)

// Sentinel errors for command-line handling.
var (
	ErrUsage          = errors.New("invalid usage")
	ErrUnknownCommand = errors.New("unknown command")
)

func usageError(err error) error {
	return fmt.Errorf("%w: %w", ErrUsage, err)
}

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Stage failures are runtime errors even when caused by bad input files.
	if _, ok := maintpage.FailedStage(err); ok {
		return ExitGeneral
	}

	// Usage/settings/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrFieldRequired) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, maintpage.ErrInvalidJob) ||
		errors.Is(err, maintpage.ErrInvalidLevel) ||
		errors.Is(err, assets.ErrInvalidAssetName) ||
		errors.Is(err, assets.ErrStarterNotFound) ||
		errors.Is(err, assets.ErrInvalidBasePath) {
		return ExitUsage
	}

	return ExitGeneral
}
