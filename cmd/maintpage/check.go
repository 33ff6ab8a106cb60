package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"

	"github.com/alnah/go-maintpage"
	"github.com/alnah/go-maintpage/internal/config"
	"github.com/alnah/go-maintpage/internal/fileutil"
	"github.com/alnah/go-maintpage/internal/purge"
	"github.com/alnah/go-maintpage/internal/yamlutil"
)

// Check statuses.
const (
	statusReady    = "ready"
	statusWarnings = "warnings"
	statusErrors   = "errors"
)

// checkResult holds the outcome of every check.
type checkResult struct {
	Status       string      `json:"status"` // "ready", "warnings", "errors"
	SettingsFile string      `json:"settings_file,omitempty"`
	Checks       []checkItem `json:"checks"`
	Warnings     []string    `json:"warnings,omitempty"`
	Errors       []string    `json:"errors,omitempty"`
}

// checkItem is one verified input.
type checkItem struct {
	Name string `json:"name"`
	Path string `json:"path,omitempty"`
	OK   bool   `json:"ok"`
}

// runCheck verifies build inputs without building and returns an exit code.
// Exit codes: 0 = OK (including warnings), 1 = errors found, 2 = bad settings.
func runCheck(ctx context.Context, args []string, env *Environment) int {
	flags, positional, err := parseBuildFlags(cmdCheck, args, printCheckUsage, env.Stderr)
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

	result := runChecks(ctx, cfg)
	result.SettingsFile = cfgPath

	if flags.json {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printCheckResult(env.Stdout, result)
		if flags.common.verbose {
			printSettings(env.Stdout, cfg)
		}
	}

	if result.Status == statusErrors {
		return ExitGeneral
	}
	return ExitSuccess
}

// runChecks verifies every input the build reads and the output location.
func runChecks(ctx context.Context, cfg *config.Config) *checkResult {
	result := &checkResult{Status: statusReady}
	job := jobFromConfig(cfg)

	add := func(name, path string, err error) {
		result.Checks = append(result.Checks, checkItem{Name: name, Path: path, OK: err == nil})
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", name, err))
		}
	}

	loader := &maintpage.JSONLoader{}
	_, err := loader.Load(ctx, job.DataPath)
	add("page data", job.DataPath, err)

	add("stylesheet", job.StyleSource, requireFile(job.StyleSource))

	for _, dir := range job.LoadPaths {
		ok := fileutil.DirExists(dir)
		result.Checks = append(result.Checks, checkItem{Name: "load path", Path: dir, OK: ok})
		if !ok {
			result.Warnings = append(result.Warnings, "load path not found: "+dir)
		}
	}

	sources := make([]purge.Source, len(job.Content))
	for i, c := range job.Content {
		sources[i] = purge.Source{Path: c.Path}
	}
	candidates, err := purge.Extract(ctx, sources)
	add("content", "", err)
	if err == nil && candidates.Len() == 0 {
		result.Warnings = append(result.Warnings, "content sources contain no selector candidates; every rule would be pruned")
	}

	tpl := filepath.Join(job.TemplateDir, job.TemplateName)
	add("template", tpl, requireFile(tpl))

	outDir := filepath.Dir(job.OutputPath)
	ok := fileutil.DirExists(outDir)
	result.Checks = append(result.Checks, checkItem{Name: "output directory", Path: outDir, OK: ok})
	if !ok {
		result.Warnings = append(result.Warnings, "output directory will be created: "+outDir)
	}

	if len(result.Errors) > 0 {
		result.Status = statusErrors
	} else if len(result.Warnings) > 0 {
		result.Status = statusWarnings
	}
	return result
}

func requireFile(path string) error {
	if !fileutil.FileExists(path) {
		return fmt.Errorf("file not found: %s", path)
	}
	return nil
}

// printCheckResult outputs human-readable check results.
func printCheckResult(w io.Writer, r *checkResult) {
	fmt.Fprintln(w, "maintpage check")
	fmt.Fprintln(w)

	if r.SettingsFile != "" {
		fmt.Fprintf(w, "Settings: %s\n", r.SettingsFile)
	} else {
		fmt.Fprintln(w, "Settings: defaults")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Inputs")
	for _, c := range r.Checks {
		mark := "[OK]"
		if !c.OK {
			mark = "[ERROR]"
			if c.Name == "load path" || c.Name == "output directory" {
				mark = "[WARN]"
			}
		}
		if c.Path != "" {
			fmt.Fprintf(w, "  %s %s: %s\n", mark, c.Name, c.Path)
		} else {
			fmt.Fprintf(w, "  %s %s\n", mark, c.Name)
		}
	}
	fmt.Fprintln(w)

	if len(r.Warnings) > 0 {
		fmt.Fprintln(w, "Warnings:")
		for _, warn := range r.Warnings {
			fmt.Fprintf(w, "  [WARN] %s\n", warn)
		}
		fmt.Fprintln(w)
	}

	if len(r.Errors) > 0 {
		fmt.Fprintln(w, "Errors:")
		for _, err := range r.Errors {
			fmt.Fprintf(w, "  [ERROR] %s\n", err)
		}
		fmt.Fprintln(w)
	}

	switch r.Status {
	case statusReady:
		fmt.Fprintln(w, "Status: Ready to build")
	case statusWarnings:
		fmt.Fprintln(w, "Status: Ready with warnings")
	case statusErrors:
		fmt.Fprintln(w, "Status: Not ready (see errors above)")
	}
}

// printSettings outputs the effective settings as YAML.
func printSettings(w io.Writer, cfg *config.Config) {
	data, err := yamlutil.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(w, "cannot print settings: %v\n", err)
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Effective settings:")
	_, _ = w.Write(data)
}
