package maintpage

import (
	"fmt"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"

	"github.com/alnah/go-maintpage/internal/stylesheet"
)

const cssMediaType = "text/css"

// Minifier compacts CSS at a given level. Problems are reported in the
// result, never as a Go error.
type Minifier interface {
	Minify(css string, level Level) MinifyResult
}

// CSSMinifier parses the input once to collect structural errors, applies
// rule restructuring at LevelRestructure, then hands the compact text to
// tdewolff/minify for value optimisation at LevelValues and above.
type CSSMinifier struct {
	m *minify.M
}

// Compile-time interface check.
var _ Minifier = (*CSSMinifier)(nil)

// NewCSSMinifier creates a minifier.
func NewCSSMinifier() *CSSMinifier {
	m := minify.New()
	m.AddFunc(cssMediaType, css.Minify)
	return &CSSMinifier{m: m}
}

// Minify compacts src.
func (c *CSSMinifier) Minify(src string, level Level) MinifyResult {
	var res MinifyResult
	if err := level.Validate(); err != nil {
		res.Errors = append(res.Errors, err.Error())
		return res
	}

	sheet, errs := stylesheet.Parse(src)
	for _, e := range errs {
		res.Errors = append(res.Errors, e.Error())
	}
	if len(res.Errors) > 0 {
		return res
	}

	sheet.StripComments()
	res.Warnings = dropEmptyDeclarations(sheet)
	if level >= LevelRestructure {
		sheet.Restructure()
	}

	out := sheet.Compact()
	if level >= LevelValues {
		minified, err := c.m.String(cssMediaType, out)
		if err != nil {
			res.Errors = append(res.Errors, err.Error())
			return res
		}
		out = minified
	}

	res.Styles = out
	return res
}

func dropEmptyDeclarations(sheet *stylesheet.Stylesheet) []string {
	var warnings []string
	stylesheet.Walk(sheet.Nodes, func(r *stylesheet.Rule) {
		kept := r.Declarations[:0]
		for _, d := range r.Declarations {
			if d.Value == "" {
				warnings = append(warnings, fmt.Sprintf("empty property %q in %q dropped", d.Property, r.SelectorText()))
				continue
			}
			kept = append(kept, d)
		}
		r.Declarations = kept
	})
	return warnings
}
