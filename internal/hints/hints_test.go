package hints

// Notes:
// - ForLoadPath tests cannot use t.Parallel() because they modify the
//   package-level InCI variable

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForConfigNotFound(t *testing.T) {
	t.Parallel()

	user := filepath.Join("home", "me", ".config", "maintpage", "maintpage.yaml")
	hint := ForConfigNotFound([]string{"maintpage.yaml", "maintpage.yml", user})

	assert.True(t, strings.HasPrefix(hint, "\n  hint: "))
	assert.Contains(t, hint, "--config")
	assert.Contains(t, hint, "or create "+user)
}

func TestForConfigNotFound_NoUserPath(t *testing.T) {
	t.Parallel()

	hint := ForConfigNotFound([]string{"maintpage.yaml"})
	assert.Equal(t, "\n  hint: use --config /path/to/maintpage.yaml", hint)
}

func TestForDataNotFound(t *testing.T) {
	t.Parallel()

	hint := ForDataNotFound("config.json")
	assert.Contains(t, hint, "create config.json")
	assert.Contains(t, hint, "maintpage init")
}

func TestForLoadPath_Local(t *testing.T) {
	orig := InCI
	defer func() { InCI = orig }()
	InCI = func() bool { return false }

	hint := ForLoadPath([]string{"vendor/scss", "node_modules"})

	assert.Equal(t, "\n  hint: missing load path: vendor/scss, node_modules; run 'npm install'", hint)
}

func TestForLoadPath_CI(t *testing.T) {
	orig := InCI
	defer func() { InCI = orig }()
	InCI = func() bool { return true }

	hint := ForLoadPath([]string{filepath.Join("site", "node_modules")})

	assert.Contains(t, hint, "npm ci")
}

func TestForLoadPath_NoPackageDir(t *testing.T) {
	hint := ForLoadPath([]string{"vendor"})
	assert.Equal(t, "\n  hint: missing load path: vendor", hint)
	assert.Empty(t, ForLoadPath(nil))
}

func TestStaticHints(t *testing.T) {
	t.Parallel()

	for name, hint := range map[string]string{
		"style":    ForStyleCompile(),
		"prune":    ForPrune(),
		"minify":   ForMinifyErrors(),
		"template": ForTemplate(),
		"output":   ForOutputDirectory(),
	} {
		assert.True(t, strings.HasPrefix(hint, "\n  hint: "), name)
		assert.NotContains(t, strings.TrimPrefix(hint, "\n"), "\n", name)
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()

	assert.Empty(t, format(""))
	assert.Empty(t, formatHints(nil))
	assert.Equal(t, "\n  hint: a; b", formatHints([]string{"a", "b"}))
}
