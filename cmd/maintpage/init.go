package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/alnah/go-maintpage/internal/assets"
)

// runInit scaffolds a starter project and returns an exit code.
func runInit(args []string, env *Environment) int {
	flags, positional, err := parseInitFlags(args, env.Stderr)
	if err != nil {
		return parseFailure(err)
	}
	if len(positional) > 1 {
		return fail(env, usageError(fmt.Errorf("expected at most one directory, got %d", len(positional))), "")
	}

	dir := "."
	if len(positional) == 1 {
		dir = positional[0]
	}
	name := flags.starter
	if name == "" {
		name = assets.DefaultStarterName
	}

	resolver, err := assets.NewAssetResolver(flags.from)
	if err != nil {
		return fail(env, err, "")
	}
	starter, err := resolver.LoadStarter(name)
	if err != nil {
		hint := ""
		if errors.Is(err, assets.ErrStarterNotFound) {
			hint = "\n  hint: available starters: " + strings.Join(assets.StarterNames(), ", ")
		}
		return fail(env, err, hint)
	}

	written, err := assets.Scaffold(dir, starter, flags.force)
	if err != nil {
		hint := ""
		if errors.Is(err, assets.ErrFileExists) {
			hint = "\n  hint: use --force to overwrite existing files"
		}
		return fail(env, err, hint)
	}

	if !flags.quiet {
		printScaffold(env, dir, starter, written)
	}
	return ExitSuccess
}

// printScaffold lists the created files and the commands to run next.
func printScaffold(env *Environment, dir string, s *assets.Starter, written []string) {
	fmt.Fprintf(env.Stdout, "Created %s starter in %s:\n", s.Name, dir)
	for _, p := range written {
		fmt.Fprintf(env.Stdout, "  %s\n", p)
	}
	fmt.Fprintln(env.Stdout)
	fmt.Fprintln(env.Stdout, "Next steps:")
	if filepath.Clean(dir) != "." {
		fmt.Fprintf(env.Stdout, "  cd %s\n", dir)
	}
	if _, ok := s.Files["package.json"]; ok {
		fmt.Fprintln(env.Stdout, "  npm install")
	}
	fmt.Fprintln(env.Stdout, "  maintpage build")
}
