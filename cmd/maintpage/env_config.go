package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alnah/go-maintpage/internal/config"
)

// envConfig holds settings from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	// Tier 1 - Essential
	ConfigPath string // MAINTPAGE_CONFIG: settings file name or path
	Root       string // MAINTPAGE_ROOT: project root
	Output     string // MAINTPAGE_OUTPUT: output HTML file

	// Tier 2 - Inputs
	Data         string   // MAINTPAGE_DATA: page data file
	Style        string   // MAINTPAGE_STYLE: SCSS source
	LoadPaths    []string // MAINTPAGE_LOAD_PATHS: import directories, OS path-list separated
	Content      []string // MAINTPAGE_CONTENT: content files or globs, OS path-list separated
	TemplateDir  string   // MAINTPAGE_TEMPLATE_DIR: template directory
	TemplateName string   // MAINTPAGE_TEMPLATE: template file name

	// Tier 3 - Tuning
	MinifyLevel *int  // MAINTPAGE_MINIFY_LEVEL: 0, 1 or 2
	Atomic      *bool // MAINTPAGE_ATOMIC: write through a temporary file
}

// knownEnvVars lists valid MAINTPAGE_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	// Tier 1 - Essential
	"MAINTPAGE_CONFIG": true,
	"MAINTPAGE_ROOT":   true,
	"MAINTPAGE_OUTPUT": true,
	// Tier 2 - Inputs
	"MAINTPAGE_DATA":         true,
	"MAINTPAGE_STYLE":        true,
	"MAINTPAGE_LOAD_PATHS":   true,
	"MAINTPAGE_CONTENT":      true,
	"MAINTPAGE_TEMPLATE_DIR": true,
	"MAINTPAGE_TEMPLATE":     true,
	// Tier 3 - Tuning
	"MAINTPAGE_MINIFY_LEVEL": true,
	"MAINTPAGE_ATOMIC":       true,
}

// loadEnvConfig reads settings from environment variables.
// Unparseable numbers and booleans are ignored.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		// Tier 1
		ConfigPath: os.Getenv("MAINTPAGE_CONFIG"),
		Root:       os.Getenv("MAINTPAGE_ROOT"),
		Output:     os.Getenv("MAINTPAGE_OUTPUT"),
		// Tier 2
		Data:         os.Getenv("MAINTPAGE_DATA"),
		Style:        os.Getenv("MAINTPAGE_STYLE"),
		LoadPaths:    splitPathList(os.Getenv("MAINTPAGE_LOAD_PATHS")),
		Content:      splitPathList(os.Getenv("MAINTPAGE_CONTENT")),
		TemplateDir:  os.Getenv("MAINTPAGE_TEMPLATE_DIR"),
		TemplateName: os.Getenv("MAINTPAGE_TEMPLATE"),
	}

	if level := os.Getenv("MAINTPAGE_MINIFY_LEVEL"); level != "" {
		if l, err := strconv.Atoi(level); err == nil {
			cfg.MinifyLevel = &l
		}
	}

	if atomic := os.Getenv("MAINTPAGE_ATOMIC"); atomic != "" {
		if a, err := strconv.ParseBool(atomic); err == nil {
			cfg.Atomic = &a
		}
	}

	return cfg
}

func splitPathList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, p := range filepath.SplitList(s) {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// warnUnknownEnvVars logs warnings for unrecognized MAINTPAGE_* variables.
// Helps catch typos like MAINTPAGE_OUPUT instead of MAINTPAGE_OUTPUT.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "MAINTPAGE_") {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment variable values to settings.
// Set variables override the settings file; CLI flags are applied later via
// mergeFlags. This ensures: CLI flags > env vars > settings file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	// Tier 1
	if env.Root != "" {
		cfg.Root = env.Root
	}
	if env.Output != "" {
		cfg.Output.Path = env.Output
	}

	// Tier 2
	if env.Data != "" {
		cfg.Data = env.Data
	}
	if env.Style != "" {
		cfg.Style.Source = env.Style
	}
	if len(env.LoadPaths) > 0 {
		cfg.Style.LoadPaths = env.LoadPaths
	}
	if len(env.Content) > 0 {
		cfg.Purge.Content = env.Content
	}
	if env.TemplateDir != "" {
		cfg.Template.Dir = env.TemplateDir
	}
	if env.TemplateName != "" {
		cfg.Template.Name = env.TemplateName
	}

	// Tier 3
	if env.MinifyLevel != nil {
		cfg.Minify.Level = *env.MinifyLevel
	}
	if env.Atomic != nil {
		cfg.Output.Atomic = *env.Atomic
	}
}
