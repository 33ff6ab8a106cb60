// Package purge removes CSS rules whose selectors are not referenced by any
// content source.
//
// A selector survives when every tag, class, id and attribute it names was
// extracted from the content, or when a safelist pattern exempts it:
//
//	standard  matched against each simple-selector name; a match counts as found
//	deep      a match on any simple-selector name keeps the whole selector
//	greedy    matched anywhere in the selector text; a match keeps it
//
// Universal selectors, pseudo-classes and pseudo-elements never cause removal.
// Grouping at-rules are pruned recursively and dropped when empty; @font-face,
// @keyframes, @page, @import, @charset and unknown at-rules are always kept.
package purge

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/alnah/go-maintpage/internal/stylesheet"
)

// Safelist holds compiled exemption patterns.
type Safelist struct {
	Standard []*regexp.Regexp
	Deep     []*regexp.Regexp
	Greedy   []*regexp.Regexp
}

// CompileSafelist compiles the three pattern tiers.
func CompileSafelist(standard, deep, greedy []string) (Safelist, error) {
	var (
		s   Safelist
		err error
	)
	if s.Standard, err = compileAll(standard); err != nil {
		return Safelist{}, err
	}
	if s.Deep, err = compileAll(deep); err != nil {
		return Safelist{}, err
	}
	if s.Greedy, err = compileAll(greedy); err != nil {
		return Safelist{}, err
	}
	return s, nil
}

func compileAll(patterns []string) ([]*regexp.Regexp, error) {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrBadPattern, p, err)
		}
		out = append(out, re)
	}
	return out, nil
}

func matchAny(res []*regexp.Regexp, s string) bool {
	for _, re := range res {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}

// Matcher decides whether a selector is used.
type Matcher struct {
	candidates *Candidates
	safelist   Safelist
}

// NewMatcher returns a matcher over the given candidates.
func NewMatcher(c *Candidates, s Safelist) *Matcher {
	return &Matcher{candidates: c, safelist: s}
}

// Keep reports whether a single (non-list) selector must be kept.
func (m *Matcher) Keep(selector string) bool {
	if matchAny(m.safelist.Greedy, selector) {
		return true
	}

	parts := parseSelector(selector)
	for _, p := range parts {
		if matchAny(m.safelist.Deep, p.name) {
			return true
		}
	}
	for _, p := range parts {
		if !m.found(p) {
			return false
		}
	}
	return true
}

func (m *Matcher) found(p simple) bool {
	if matchAny(m.safelist.Standard, p.name) {
		return true
	}

	c := m.candidates
	switch p.kind {
	case tagSelector:
		return c.Has(p.name) || c.Has(strings.ToLower(p.name))
	case attrSelector:
		if !c.Has(p.name) && !c.Has(strings.ToLower(p.name)) {
			return false
		}
		return p.op == "" || m.attrValueFound(p)
	default:
		return c.Has(p.name)
	}
}

func (m *Matcher) attrValueFound(p simple) bool {
	want := p.value
	if p.fold {
		want = strings.ToLower(want)
	}
	for w := range m.candidates.words {
		if p.fold {
			w = strings.ToLower(w)
		}
		if attrOpMatch(p.op, w, want) {
			return true
		}
	}
	// Values with characters the extractor splits on ("/", ".", spaces)
	// never appear as a single candidate.
	return m.candidates.rawContains(p.value, p.fold)
}

func attrOpMatch(op, have, want string) bool {
	switch op {
	case "=", "~=":
		return have == want
	case "|=":
		return have == want || strings.HasPrefix(have, want+"-")
	case "^=":
		return strings.HasPrefix(have, want)
	case "$=":
		return strings.HasSuffix(have, want)
	case "*=":
		return strings.Contains(have, want)
	}
	return false
}

// Prune removes unused selectors and rules from sheet in place and returns
// the removed selectors in order of first appearance.
func Prune(sheet *stylesheet.Stylesheet, m *Matcher) []string {
	r := &rejections{seen: make(map[string]bool)}
	sheet.Nodes = pruneNodes(sheet.Nodes, m, r)
	return r.list
}

type rejections struct {
	seen map[string]bool
	list []string
}

func (r *rejections) add(sel string) {
	if !r.seen[sel] {
		r.seen[sel] = true
		r.list = append(r.list, sel)
	}
}

func pruneNodes(nodes []stylesheet.Node, m *Matcher, r *rejections) []stylesheet.Node {
	out := nodes[:0]
	for _, n := range nodes {
		switch v := n.(type) {
		case *stylesheet.Rule:
			kept := v.Selectors[:0]
			for _, sel := range v.Selectors {
				if m.Keep(sel) {
					kept = append(kept, sel)
				} else {
					r.add(sel)
				}
			}
			v.Selectors = kept
			if len(kept) == 0 {
				continue
			}
		case *stylesheet.AtRule:
			if v.IsGrouping() {
				v.Children = pruneNodes(v.Children, m, r)
				if v.IsEmpty() {
					continue
				}
			}
		}
		out = append(out, n)
	}
	return out
}

// CSS parses src, prunes it against the candidates and prints the result in
// expanded form. Syntax errors are fatal: pruning a misparsed sheet could
// drop rules that are in use.
func CSS(src string, c *Candidates, s Safelist) (string, []string, error) {
	sheet, errs := stylesheet.Parse(src)
	if len(errs) > 0 {
		return "", nil, fmt.Errorf("%w: %w", ErrInvalidCSS, errs[0])
	}
	rejected := Prune(sheet, NewMatcher(c, s))
	return sheet.String(), rejected, nil
}
