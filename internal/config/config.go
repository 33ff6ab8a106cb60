package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/alnah/go-maintpage/internal/fileutil"
	"github.com/alnah/go-maintpage/internal/yamlutil"
)

// Sentinel errors for build settings.
var (
	ErrConfigNotFound  = errors.New("settings file not found")
	ErrEmptyConfigName = errors.New("settings name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse settings")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrFieldRequired   = errors.New("field is required")
	ErrInvalidValue    = errors.New("invalid value")
)

// DefaultName is the settings file name looked up when none is given.
const DefaultName = "maintpage"

// Field limits.
const (
	MaxPathLength    = 4096 // PATH_MAX on Linux
	MaxPatternLength = 512  // safelist regular expression
	MaxListLength    = 256  // load paths, content sources, safelist entries
	MaxPrecision     = 20
	MaxMinifyLevel   = 2
)

// Config holds the build settings. Relative paths resolve against Root,
// which itself is relative to the working directory.
type Config struct {
	Root     string         `yaml:"root"`
	Data     string         `yaml:"data"`
	Style    StyleConfig    `yaml:"style"`
	Purge    PurgeConfig    `yaml:"purge"`
	Minify   MinifyConfig   `yaml:"minify"`
	Template TemplateConfig `yaml:"template"`
	Output   OutputConfig   `yaml:"output"`
}

// StyleConfig defines the stylesheet source.
type StyleConfig struct {
	Source    string   `yaml:"source"`
	LoadPaths []string `yaml:"loadPaths"` // searched after the source's directory
	Precision int      `yaml:"precision"` // 0 = compiler default
}

// PurgeConfig defines unused-rule pruning.
type PurgeConfig struct {
	Content  []string       `yaml:"content"` // files or doublestar globs
	Safelist SafelistConfig `yaml:"safelist"`
	Rejected bool           `yaml:"rejected"` // list removed selectors after the build
}

// SafelistConfig holds regular expressions exempting selectors from pruning.
type SafelistConfig struct {
	Standard []string `yaml:"standard"`
	Deep     []string `yaml:"deep"`
	Greedy   []string `yaml:"greedy"`
}

// MinifyConfig defines CSS minification.
type MinifyConfig struct {
	Level int `yaml:"level"` // 0 whitespace, 1 values, 2 restructure
}

// TemplateConfig defines the page template.
type TemplateConfig struct {
	Dir  string `yaml:"dir"`
	Name string `yaml:"name"`
}

// OutputConfig defines the output file.
type OutputConfig struct {
	Path   string `yaml:"path"`
	Atomic bool   `yaml:"atomic"` // write a temporary file then rename it
}

// DefaultConfig returns the settings of the standard project layout:
// config.json, src/styles.scss and src/template.njk, built to
// dist/maintenance.html.
func DefaultConfig() *Config {
	return &Config{
		Root: ".",
		Data: "config.json",
		Style: StyleConfig{
			Source:    "src/styles.scss",
			LoadPaths: []string{"node_modules"},
		},
		Purge: PurgeConfig{
			Content: []string{"src/template.njk"},
			Safelist: SafelistConfig{
				Standard: []string{"^govuk-width-container"},
				Greedy:   []string{"data-", "js-"},
			},
		},
		Minify:   MinifyConfig{Level: MaxMinifyLevel},
		Template: TemplateConfig{Dir: "src", Name: "template.njk"},
		Output:   OutputConfig{Path: "dist/maintenance.html"},
	}
}

// Validate checks required fields, ranges, safelist patterns and field
// lengths. Called by LoadConfig, but available for settings built in code
// or overridden from flags and the environment.
func (c *Config) Validate() error {
	paths := []struct {
		name, value string
		required    bool
	}{
		{"root", c.Root, false},
		{"data", c.Data, true},
		{"style.source", c.Style.Source, true},
		{"template.dir", c.Template.Dir, true},
		{"template.name", c.Template.Name, true},
		{"output.path", c.Output.Path, true},
	}
	for _, p := range paths {
		if p.required && strings.TrimSpace(p.value) == "" {
			return fmt.Errorf("%w: %s", ErrFieldRequired, p.name)
		}
		if err := validateFieldLength(p.name, p.value, MaxPathLength); err != nil {
			return err
		}
	}

	if len(c.Purge.Content) == 0 {
		return fmt.Errorf("%w: purge.content", ErrFieldRequired)
	}
	if err := validateList("style.loadPaths", c.Style.LoadPaths, MaxPathLength); err != nil {
		return err
	}
	if err := validateList("purge.content", c.Purge.Content, MaxPathLength); err != nil {
		return err
	}

	safelists := []struct {
		name     string
		patterns []string
	}{
		{"purge.safelist.standard", c.Purge.Safelist.Standard},
		{"purge.safelist.deep", c.Purge.Safelist.Deep},
		{"purge.safelist.greedy", c.Purge.Safelist.Greedy},
	}
	for _, s := range safelists {
		if err := validateList(s.name, s.patterns, MaxPatternLength); err != nil {
			return err
		}
		for i, p := range s.patterns {
			if _, err := regexp.Compile(p); err != nil {
				return fmt.Errorf("%w: %s[%d]: %v", ErrInvalidValue, s.name, i, err)
			}
		}
	}

	if c.Minify.Level < 0 || c.Minify.Level > MaxMinifyLevel {
		return fmt.Errorf("%w: minify.level: must be between 0 and %d, got %d", ErrInvalidValue, MaxMinifyLevel, c.Minify.Level)
	}
	if c.Style.Precision < 0 || c.Style.Precision > MaxPrecision {
		return fmt.Errorf("%w: style.precision: must be between 0 and %d, got %d", ErrInvalidValue, MaxPrecision, c.Style.Precision)
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

func validateList(fieldName string, values []string, maxLength int) error {
	if len(values) > MaxListLength {
		return fmt.Errorf("%w: %s (%d entries, max %d)", ErrFieldTooLong, fieldName, len(values), MaxListLength)
	}
	for i, v := range values {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("%w: %s[%d] is empty", ErrInvalidValue, fieldName, i)
		}
		if err := validateFieldLength(fmt.Sprintf("%s[%d]", fieldName, i), v, maxLength); err != nil {
			return err
		}
	}
	return nil
}

// Resolve returns p joined to the project root unless it is absolute.
func (c *Config) Resolve(p string) string {
	return fileutil.Resolve(c.Root, p)
}

// LoadConfig loads settings from a file path or settings name. Fields
// missing from the file keep their DefaultConfig value.
// If nameOrPath contains a path separator or ends in .yaml or .yml, it's
// treated as a file path.
// Otherwise it's treated as a name and searched in dir, then in the user
// config directory.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath, dir string) (*Config, string, error) {
	if nameOrPath == "" {
		return nil, "", ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) || hasYAMLExt(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath, dir)
		if err != nil {
			return nil, "", err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- settings path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, "", fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, "", fmt.Errorf("reading settings file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, "", fmt.Errorf("%w: %s: %v", ErrConfigParse, configPath, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}

	return cfg, configPath, nil
}

func hasYAMLExt(s string) bool {
	ext := filepath.Ext(s)
	return ext == ".yaml" || ext == ".yml"
}

// resolveConfigPath searches for a settings file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: dir, <user config dir>/maintpage/
func resolveConfigPath(name, dir string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		localPath := filepath.Join(dir, name+ext)
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "maintpage", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
