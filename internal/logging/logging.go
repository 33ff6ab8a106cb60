// Package logging configures the zerolog logger shared by the CLI and the
// build pipeline.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Verbosity selects the global log level.
type Verbosity int

const (
	Quiet   Verbosity = iota - 1 // errors only
	Normal                       // progress and sizes
	Verbose                      // stage timings, rejected selectors, resolved imports
)

// Level maps a verbosity to the zerolog level it enables.
func (v Verbosity) Level() zerolog.Level {
	switch {
	case v <= Quiet:
		return zerolog.ErrorLevel
	case v == Normal:
		return zerolog.InfoLevel
	default:
		return zerolog.DebugLevel
	}
}

// Setup configures the global logger to write human-readable lines to w.
// Colors are disabled when NO_COLOR is set or w is not a terminal file.
func Setup(w io.Writer, v Verbosity) zerolog.Logger {
	zerolog.SetGlobalLevel(v.Level())

	console := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.Kitchen,
		NoColor:    noColor(w),
	}

	log.Logger = zerolog.New(console).With().Timestamp().Logger()
	if v >= Verbose {
		log.Logger = log.Logger.With().Caller().Logger()
	}

	log.Debug().Str("level", v.Level().String()).Msg("Logger initialized")
	return log.Logger
}

// GetLogger returns the global logger tagged with a component name.
func GetLogger(component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}

// LogOperationStart logs the start of an operation at debug level and
// returns a function that logs its completion with the elapsed time.
func LogOperationStart(logger zerolog.Logger, operation string) func() time.Duration {
	start := time.Now()
	logger.Debug().Str("operation", operation).Msg("Operation started")

	return func() time.Duration {
		elapsed := time.Since(start)
		logger.Debug().
			Str("operation", operation).
			Dur("duration", elapsed).
			Msg("Operation completed")
		return elapsed
	}
}

func noColor(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return true
	}
	info, err := f.Stat()
	if err != nil {
		return true
	}
	return info.Mode()&os.ModeCharDevice == 0
}
