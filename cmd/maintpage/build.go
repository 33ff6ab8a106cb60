package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/alnah/go-maintpage"
	"github.com/alnah/go-maintpage/internal/config"
	"github.com/alnah/go-maintpage/internal/fileutil"
	"github.com/alnah/go-maintpage/internal/hints"
	"github.com/alnah/go-maintpage/internal/logging"
)

// runBuild executes the build command and returns an exit code.
func runBuild(ctx context.Context, args []string, env *Environment) int {
	flags, positional, err := parseBuildFlags(cmdBuild, args, printBuildUsage, env.Stderr)
	if err != nil {
		return parseFailure(err)
	}
	if len(positional) > 0 {
		return fail(env, usageError(fmt.Errorf("unexpected argument %q", positional[0])), "")
	}

	cfg, cfgPath, err := resolveSettings(flags, env.Stderr)
	if err != nil {
		return fail(env, err, settingsHint(err))
	}

	verbosity := verbosityOf(flags.common)
	logging.Setup(env.Stderr, verbosity)
	logger := logging.GetLogger(cmdBuild)
	done := logging.LogOperationStart(logger, cmdBuild)
	defer done()

	if cfgPath != "" {
		logger.Debug().Str("path", cfgPath).Msg("Using settings file")
	}

	job := jobFromConfig(cfg)
	if missing := missingDirs(job.LoadPaths); len(missing) > 0 {
		logger.Warn().Strs("paths", missing).Msg("Stylesheet load paths not found" + hints.ForLoadPath(missing))
	}

	opts := []maintpage.Option{
		maintpage.WithLogger(logging.GetLogger("pipeline")),
		maintpage.WithPrecision(cfg.Style.Precision),
	}
	if cfg.Output.Atomic {
		opts = append(opts, maintpage.WithAtomicWrite())
	}

	report, err := env.NewBuilder(opts...).Build(ctx, job)
	if err != nil {
		if maintpage.IsCanceled(err) {
			return fail(env, errors.New("build canceled"), "")
		}
		return fail(env, err, buildHint(err, job))
	}

	if verbosity > logging.Quiet {
		printReport(env, report, cfg.Purge.Rejected, verbosity >= logging.Verbose)
	}
	return ExitSuccess
}

func verbosityOf(f commonFlags) logging.Verbosity {
	switch {
	case f.quiet:
		return logging.Quiet
	case f.verbose:
		return logging.Verbose
	default:
		return logging.Normal
	}
}

func missingDirs(dirs []string) []string {
	var missing []string
	for _, d := range dirs {
		if !fileutil.DirExists(d) {
			missing = append(missing, d)
		}
	}
	return missing
}

// printReport writes the build summary to stdout.
func printReport(env *Environment, r *maintpage.Report, rejected, timing bool) {
	fmt.Fprintf(env.Stdout, "Built %s\n", r.OutputPath)
	fmt.Fprintf(env.Stdout, "  CSS: %s KB compiled, %s KB purged, %s KB minified\n",
		maintpage.KB(r.RawSize), maintpage.KB(r.PurgedSize), maintpage.KB(r.FinalSize))
	if len(r.Warnings) > 0 {
		fmt.Fprintf(env.Stdout, "  Warnings: %d\n", len(r.Warnings))
	}
	if timing {
		fmt.Fprintf(env.Stdout, "  Time: %s\n", r.Total().Round(time.Millisecond))
	}
	if rejected && len(r.Rejected) > 0 {
		fmt.Fprintf(env.Stdout, "Rejected selectors (%d):\n", len(r.Rejected))
		for _, sel := range r.Rejected {
			fmt.Fprintf(env.Stdout, "  %s\n", sel)
		}
	}
}

// fail prints err with an optional hint and returns its exit code.
func fail(env *Environment, err error, hint string) int {
	fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hint)
	return exitCodeFor(err)
}

// settingsHint returns a hint for settings resolution errors.
func settingsHint(err error) string {
	if !errors.Is(err, config.ErrConfigNotFound) {
		return ""
	}
	var searched []string
	if dir, dirErr := os.UserConfigDir(); dirErr == nil {
		searched = append(searched, filepath.Join(dir, config.DefaultName, config.DefaultName+".yaml"))
	}
	return hints.ForConfigNotFound(searched)
}

// buildHint returns a hint for pipeline errors.
func buildHint(err error, job maintpage.Job) string {
	switch {
	case errors.Is(err, maintpage.ErrDataNotFound):
		return hints.ForDataNotFound(job.DataPath)
	case errors.Is(err, maintpage.ErrStyleCompile):
		return hints.ForStyleCompile()
	case errors.Is(err, maintpage.ErrPrune):
		return hints.ForPrune()
	case errors.Is(err, maintpage.ErrMinify):
		return hints.ForMinifyErrors()
	case errors.Is(err, maintpage.ErrRender):
		return hints.ForTemplate()
	case errors.Is(err, maintpage.ErrWriteOutput):
		return hints.ForOutputDirectory()
	default:
		return ""
	}
}
