// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"path/filepath"
	"strings"
)

// InCI reports whether the process runs under a CI system.
var InCI = func() bool {
	return os.Getenv("CI") != "" ||
		os.Getenv("GITHUB_ACTIONS") != "" ||
		os.Getenv("GITLAB_CI") != "" ||
		os.Getenv("JENKINS_URL") != ""
}

// ForConfigNotFound returns hints for settings file not found errors.
// Suggests --config and creating the file in the user config directory.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/maintpage.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(filepath.ToSlash(p), "/maintpage/") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForDataNotFound returns hints for a missing page data file.
func ForDataNotFound(path string) string {
	return format("create " + path + " with a JSON object, or run 'maintpage init'")
}

// ForLoadPath returns hints when stylesheet load paths do not exist.
// Package directories such as node_modules come from the package manager.
func ForLoadPath(missing []string) string {
	if len(missing) == 0 {
		return ""
	}
	var hints []string
	hints = append(hints, "missing load path: "+strings.Join(missing, ", "))
	for _, m := range missing {
		if filepath.Base(m) == "node_modules" {
			if InCI() {
				hints = append(hints, "run 'npm ci' before building")
			} else {
				hints = append(hints, "run 'npm install'")
			}
			break
		}
	}
	return formatHints(hints)
}

// ForStyleCompile returns hints for stylesheet compilation errors.
func ForStyleCompile() string {
	return format("imports resolve from the stylesheet's directory, then each --load-path; '~pkg/file' looks up pkg in the load paths")
}

// ForPrune returns hints for pruning errors.
func ForPrune() string {
	return format("content paths and globs in purge.content resolve against the project root")
}

// ForMinifyErrors returns hints when the minifier reports errors.
func ForMinifyErrors() string {
	return format("nothing was written; rerun with --verbose to log the pruned CSS size and rejected selectors")
}

// ForTemplate returns hints for template errors.
func ForTemplate() string {
	return format("templates use Jinja/Nunjucks syntax; available filters include safe, escape and markdown")
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
