package maintpage

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"sync"

	"github.com/flosch/pongo2/v6"
)

// Renderer renders one named template from a base directory.
type Renderer interface {
	Render(ctx context.Context, baseDir, name string, data map[string]any) (string, error)
}

// TemplateRenderer renders Jinja/Nunjucks-style templates with pongo2.
// Output is autoescaped; {{ css|safe }} injects the stylesheet verbatim.
// Block tags swallow their trailing newline and leading indentation.
type TemplateRenderer struct{}

// Compile-time interface check.
var _ Renderer = (*TemplateRenderer)(nil)

var registerOnce sync.Once

func registerFilters() {
	registerOnce.Do(func() {
		pongo2.SetAutoescape(true)
		if !pongo2.FilterExists("markdown") {
			_ = pongo2.RegisterFilter("markdown", filterMarkdown)
		}
	})
}

// Render loads name from baseDir and executes it with data. Missing
// templates, syntax errors and unknown tags or filters wrap ErrRender.
func (r *TemplateRenderer) Render(ctx context.Context, baseDir, name string, data map[string]any) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	registerFilters()

	loader, err := pongo2.NewLocalFileSystemLoader(baseDir)
	if err != nil {
		return "", fmt.Errorf("%w: template directory: %w", ErrRender, err)
	}
	set := pongo2.NewSet("maintpage", loader)
	set.Options.TrimBlocks = true
	set.Options.LStripBlocks = true

	tpl, err := set.FromFile(name)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrRender, err)
	}
	out, err := tpl.Execute(pongo2.Context(data))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrRender, err)
	}
	return out, nil
}

var identifier = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

// templateContext returns a new map holding the page data plus the
// stylesheet under "css", which wins over a "css" key in the data. Keys
// that are not identifiers cannot be referenced from a template and are
// left out; they are returned sorted so callers can report them.
func templateContext(data map[string]any, css string) (map[string]any, []string) {
	ctx := make(map[string]any, len(data)+1)
	var skipped []string
	for k, v := range data {
		if !identifier.MatchString(k) {
			skipped = append(skipped, k)
			continue
		}
		ctx[k] = v
	}
	ctx["css"] = css
	sort.Strings(skipped)
	return ctx, skipped
}
