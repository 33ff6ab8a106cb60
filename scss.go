package maintpage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bep/golibsass/libsass"
	"github.com/bep/golibsass/libsass/libsasserrors"
	"github.com/rs/zerolog"

	"github.com/alnah/go-maintpage/internal/fileutil"
)

// StyleCompiler compiles a stylesheet source to CSS.
type StyleCompiler interface {
	Compile(ctx context.Context, sourcePath string, loadPaths []string) (CompileResult, error)
}

// SassCompiler compiles SCSS with LibSass in expanded output style.
// Imports resolve from the source's directory first, then the load paths.
// A leading "~" ("~govuk-frontend/dist/govuk/index") is stripped and the
// rest looked up in the load paths, as webpack's sass-loader does.
type SassCompiler struct {
	Precision int // 0 keeps the LibSass default
	Logger    zerolog.Logger
}

// Compile-time interface check.
var _ StyleCompiler = (*SassCompiler)(nil)

// Compile reads sourcePath and compiles it.
func (c *SassCompiler) Compile(ctx context.Context, sourcePath string, loadPaths []string) (CompileResult, error) {
	if err := ctx.Err(); err != nil {
		return CompileResult{}, err
	}

	// #nosec G304 -- path comes from the build settings
	src, err := os.ReadFile(sourcePath)
	if err != nil {
		return CompileResult{}, fmt.Errorf("%w: %w", ErrStyleNotFound, err)
	}

	includePaths := make([]string, 0, len(loadPaths)+1)
	includePaths = append(includePaths, absOrSelf(filepath.Dir(sourcePath)))
	for _, p := range loadPaths {
		includePaths = append(includePaths, absOrSelf(p))
	}

	tracker := &importTracker{loadPaths: includePaths[1:], logger: c.Logger, seen: make(map[string]bool)}
	transpiler, err := libsass.New(libsass.Options{
		OutputStyle:    libsass.ExpandedStyle,
		Precision:      c.Precision,
		IncludePaths:   includePaths,
		ImportResolver: tracker.resolve,
	})
	if err != nil {
		return CompileResult{}, fmt.Errorf("%w: %w", ErrStyleCompile, err)
	}

	result, err := transpiler.Execute(string(src))
	if err != nil {
		return CompileResult{}, fmt.Errorf("%w: %s", ErrStyleCompile, describeSassError(sourcePath, err))
	}

	return CompileResult{CSS: result.CSS, Imports: tracker.imports}, nil
}

func describeSassError(sourcePath string, err error) string {
	var serr libsasserrors.Error
	if !errors.As(err, &serr) {
		return err.Error()
	}
	file := serr.File
	if file == "" || file == "stdin" {
		file = sourcePath
	}
	return fmt.Sprintf("%s:%d:%d: %s", file, serr.Line, serr.Column, strings.TrimSpace(serr.Message))
}

func absOrSelf(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

// importTracker records every import LibSass asks about and resolves
// "~"-prefixed ones against the load paths.
type importTracker struct {
	loadPaths []string
	logger    zerolog.Logger
	seen      map[string]bool
	imports   []string
}

func (t *importTracker) resolve(url, prev string) (string, string, bool) {
	if !strings.HasPrefix(url, "~") {
		t.record(url, "")
		return "", "", false
	}

	target := strings.TrimPrefix(url, "~")
	for _, dir := range t.loadPaths {
		if path, ok := findPartial(filepath.Join(dir, filepath.FromSlash(target))); ok {
			t.record(url, path)
			// Empty body: LibSass loads the file from path.
			return path, "", true
		}
	}

	// Let LibSass fail with its own "file to import not found" message.
	t.record(url, "")
	return "", "", false
}

func (t *importTracker) record(url, resolved string) {
	if t.seen[url] {
		return
	}
	t.seen[url] = true
	t.imports = append(t.imports, url)

	ev := t.logger.Debug().Str("import", url)
	if resolved != "" {
		ev = ev.Str("resolved", resolved)
	}
	ev.Msg("Sass import")
}

// findPartial tries the file names Sass would try for an import path:
// the path itself, then the partial and index variants, .scss before .css.
func findPartial(base string) (string, bool) {
	dir, name := filepath.Split(base)
	var candidates []string
	if ext := filepath.Ext(name); ext == ".scss" || ext == ".sass" || ext == ".css" {
		candidates = append(candidates, base, filepath.Join(dir, "_"+name))
	} else {
		for _, ext := range []string{".scss", ".sass", ".css"} {
			candidates = append(candidates,
				filepath.Join(dir, name+ext),
				filepath.Join(dir, "_"+name+ext),
				filepath.Join(base, "index"+ext),
				filepath.Join(base, "_index"+ext),
			)
		}
	}
	for _, c := range candidates {
		if fileutil.FileExists(c) {
			return c, true
		}
	}
	return "", false
}
