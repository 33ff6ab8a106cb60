package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSettings(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// ---------------------------------------------------------------------------
// TestDefaultConfig - Standard project layout
// ---------------------------------------------------------------------------

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	assert.Equal(t, ".", cfg.Root)
	assert.Equal(t, "config.json", cfg.Data)
	assert.Equal(t, "src/styles.scss", cfg.Style.Source)
	assert.Equal(t, []string{"node_modules"}, cfg.Style.LoadPaths)
	assert.Equal(t, []string{"src/template.njk"}, cfg.Purge.Content)
	assert.Equal(t, []string{"^govuk-width-container"}, cfg.Purge.Safelist.Standard)
	assert.Equal(t, []string{"data-", "js-"}, cfg.Purge.Safelist.Greedy)
	assert.Empty(t, cfg.Purge.Safelist.Deep)
	assert.Equal(t, 2, cfg.Minify.Level)
	assert.Equal(t, "src", cfg.Template.Dir)
	assert.Equal(t, "template.njk", cfg.Template.Name)
	assert.Equal(t, "dist/maintenance.html", cfg.Output.Path)
	assert.False(t, cfg.Output.Atomic)
	require.NoError(t, cfg.Validate())
}

// ---------------------------------------------------------------------------
// TestValidate - Field checks
// ---------------------------------------------------------------------------

func TestValidate(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("a", MaxPathLength+1)
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr error
		wantMsg string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "level 0", mutate: func(c *Config) { c.Minify.Level = 0 }},
		{name: "empty root", mutate: func(c *Config) { c.Root = "" }},
		{name: "no load paths", mutate: func(c *Config) { c.Style.LoadPaths = nil }},
		{name: "missing data", mutate: func(c *Config) { c.Data = " " }, wantErr: ErrFieldRequired, wantMsg: "data"},
		{name: "missing style", mutate: func(c *Config) { c.Style.Source = "" }, wantErr: ErrFieldRequired, wantMsg: "style.source"},
		{name: "missing template dir", mutate: func(c *Config) { c.Template.Dir = "" }, wantErr: ErrFieldRequired, wantMsg: "template.dir"},
		{name: "missing template name", mutate: func(c *Config) { c.Template.Name = "" }, wantErr: ErrFieldRequired, wantMsg: "template.name"},
		{name: "missing output", mutate: func(c *Config) { c.Output.Path = "" }, wantErr: ErrFieldRequired, wantMsg: "output.path"},
		{name: "no content", mutate: func(c *Config) { c.Purge.Content = nil }, wantErr: ErrFieldRequired, wantMsg: "purge.content"},
		{name: "empty content entry", mutate: func(c *Config) { c.Purge.Content = []string{""} }, wantErr: ErrInvalidValue, wantMsg: "purge.content[0]"},
		{name: "path too long", mutate: func(c *Config) { c.Output.Path = long }, wantErr: ErrFieldTooLong, wantMsg: "output.path"},
		{name: "load path too long", mutate: func(c *Config) { c.Style.LoadPaths = []string{"ok", long} }, wantErr: ErrFieldTooLong, wantMsg: "style.loadPaths[1]"},
		{
			name:    "too many content sources",
			mutate:  func(c *Config) { c.Purge.Content = make([]string, MaxListLength+1) },
			wantErr: ErrFieldTooLong,
			wantMsg: "purge.content",
		},
		{name: "bad standard pattern", mutate: func(c *Config) { c.Purge.Safelist.Standard = []string{"("} }, wantErr: ErrInvalidValue, wantMsg: "purge.safelist.standard[0]"},
		{name: "bad greedy pattern", mutate: func(c *Config) { c.Purge.Safelist.Greedy = []string{"ok", "[z-a]"} }, wantErr: ErrInvalidValue, wantMsg: "purge.safelist.greedy[1]"},
		{name: "pattern too long", mutate: func(c *Config) { c.Purge.Safelist.Deep = []string{strings.Repeat("x", MaxPatternLength+1)} }, wantErr: ErrFieldTooLong, wantMsg: "purge.safelist.deep[0]"},
		{name: "level too high", mutate: func(c *Config) { c.Minify.Level = 3 }, wantErr: ErrInvalidValue, wantMsg: "minify.level"},
		{name: "level negative", mutate: func(c *Config) { c.Minify.Level = -1 }, wantErr: ErrInvalidValue, wantMsg: "minify.level"},
		{name: "precision negative", mutate: func(c *Config) { c.Style.Precision = -1 }, wantErr: ErrInvalidValue, wantMsg: "style.precision"},
		{name: "precision too high", mutate: func(c *Config) { c.Style.Precision = MaxPrecision + 1 }, wantErr: ErrInvalidValue, wantMsg: "style.precision"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Root = "site"

	assert.Equal(t, filepath.Join("site", "config.json"), cfg.Resolve("config.json"))
	abs := filepath.Join(t.TempDir(), "config.json")
	assert.Equal(t, abs, cfg.Resolve(abs))
}

// ---------------------------------------------------------------------------
// TestLoadConfig - File lookup and decoding
// ---------------------------------------------------------------------------

func TestLoadConfig_FilePath(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeSettings(t, dir, "site.yaml", `
data: page.json
style:
  source: scss/main.scss
  loadPaths: [vendor, node_modules]
  precision: 8
purge:
  content:
    - "templates/**/*.njk"
  safelist:
    deep: ["^is-"]
  rejected: true
minify:
  level: 0
output:
  atomic: true
`)

	cfg, used, err := LoadConfig(path, "")
	require.NoError(t, err)

	assert.Equal(t, path, used)
	assert.Equal(t, "page.json", cfg.Data)
	assert.Equal(t, "scss/main.scss", cfg.Style.Source)
	assert.Equal(t, []string{"vendor", "node_modules"}, cfg.Style.LoadPaths)
	assert.Equal(t, 8, cfg.Style.Precision)
	assert.Equal(t, []string{"templates/**/*.njk"}, cfg.Purge.Content)
	assert.Equal(t, []string{"^is-"}, cfg.Purge.Safelist.Deep)
	assert.True(t, cfg.Purge.Rejected)
	assert.Equal(t, 0, cfg.Minify.Level)
	assert.True(t, cfg.Output.Atomic)

	// Missing keys keep their defaults.
	assert.Equal(t, "dist/maintenance.html", cfg.Output.Path)
	assert.Equal(t, "template.njk", cfg.Template.Name)
	assert.Equal(t, []string{"^govuk-width-container"}, cfg.Purge.Safelist.Standard)
}

func TestLoadConfig_NameInDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeSettings(t, dir, DefaultName+".yml", "data: other.json\n")

	cfg, used, err := LoadConfig(DefaultName, dir)
	require.NoError(t, err)
	assert.Equal(t, path, used)
	assert.Equal(t, "other.json", cfg.Data)
}

func TestLoadConfig_YAMLBeforeYML(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeSettings(t, dir, DefaultName+".yml", "data: yml.json\n")
	writeSettings(t, dir, DefaultName+".yaml", "data: yaml.json\n")

	cfg, _, err := LoadConfig(DefaultName, dir)
	require.NoError(t, err)
	assert.Equal(t, "yaml.json", cfg.Data)
}

func TestLoadConfig_NotFound(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	dir := t.TempDir()
	_, _, err := LoadConfig(DefaultName, dir)
	require.ErrorIs(t, err, ErrConfigNotFound)
	assert.Contains(t, err.Error(), filepath.Join(dir, DefaultName+".yaml"))

	_, _, err = LoadConfig(filepath.Join(dir, "missing.yaml"), "")
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestLoadConfig_UserConfigDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	userDir, err := os.UserConfigDir()
	if err != nil {
		t.Skip("no user config directory on this platform")
	}
	require.NoError(t, os.MkdirAll(filepath.Join(userDir, "maintpage"), 0o755))
	writeSettings(t, filepath.Join(userDir, "maintpage"), "shared.yaml", "minify:\n  level: 1\n")

	cfg, _, err := LoadConfig("shared", t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Minify.Level)
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{name: "unknown field", content: "dta: config.json\n", wantErr: ErrConfigParse},
		{name: "wrong type", content: "minify:\n  level: high\n", wantErr: ErrConfigParse},
		{name: "invalid value", content: "minify:\n  level: 7\n", wantErr: ErrInvalidValue},
		{name: "bad pattern", content: "purge:\n  safelist:\n    greedy: [\"(\"]\n", wantErr: ErrInvalidValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := writeSettings(t, dir, strings.ReplaceAll(tt.name, " ", "-")+".yaml", tt.content)
			_, _, err := LoadConfig(path, "")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoadConfig_EmptyName(t *testing.T) {
	t.Parallel()

	_, _, err := LoadConfig("", ".")
	assert.ErrorIs(t, err, ErrEmptyConfigName)
}
