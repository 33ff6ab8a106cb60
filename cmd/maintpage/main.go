package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Command names.
const (
	cmdBuild   = "build"
	cmdInit    = "init"
	cmdCheck   = "check"
	cmdVersion = "version"
	cmdHelp    = "help"
)

func main() {
	// Configure GOMAXPROCS with conditional logging
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if hasVerboseFlag(os.Args[1:]) {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	ctx, stop := notifyContext(context.Background())
	code := runMain(ctx, os.Args, DefaultEnv())
	stop()
	os.Exit(code)
}

// runMain dispatches to a command and returns the process exit code.
// A missing command, or a first argument that is a flag, runs build.
func runMain(ctx context.Context, args []string, env *Environment) int {
	rest := args[1:]
	cmd := cmdBuild
	if len(rest) > 0 && !strings.HasPrefix(rest[0], "-") {
		cmd, rest = rest[0], rest[1:]
	}

	switch cmd {
	case cmdBuild:
		return runBuild(ctx, rest, env)
	case cmdInit:
		return runInit(rest, env)
	case cmdCheck:
		return runCheck(ctx, rest, env)
	case cmdVersion:
		fmt.Fprintf(env.Stdout, "maintpage %s\n", Version)
		return ExitSuccess
	case cmdHelp:
		return runHelp(rest, env)
	default:
		fmt.Fprintf(env.Stderr, "error: %v: %s\n", ErrUnknownCommand, cmd)
		printUsage(env.Stderr)
		return exitCodeFor(ErrUnknownCommand)
	}
}

// parseFailure returns the exit code for a flag parsing error. pflag has
// already printed the error and usage; -h and --help exit successfully.
func parseFailure(err error) int {
	if errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}
	return exitCodeFor(err)
}

func hasVerboseFlag(args []string) bool {
	for _, a := range args {
		if a == "-v" || a == "--verbose" {
			return true
		}
	}
	return false
}
