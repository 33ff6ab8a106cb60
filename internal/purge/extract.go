package purge

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/net/html"
)

// Source is one content input: a file path or glob pattern, or raw markup
// whose extractor is chosen by Extension.
type Source struct {
	Path      string
	Raw       string
	Extension string
}

func (s Source) String() string {
	if s.Path != "" {
		return s.Path
	}
	return "raw" + s.Extension
}

// Extractor returns the selector candidates found in content.
type Extractor func(content string) []string

var wordPattern = regexp.MustCompile(`[A-Za-z0-9_-]+`)

// DefaultExtractor returns every run of letters, digits, underscores and
// dashes. It works on any text format, templates included.
func DefaultExtractor(content string) []string {
	return wordPattern.FindAllString(content, -1)
}

// HTMLExtractor parses content as HTML and returns tag names, ids, classes,
// attribute names and attribute values. Text nodes are also run through
// DefaultExtractor so classes toggled by inline scripts are kept.
func HTMLExtractor(content string) []string {
	doc, err := html.Parse(strings.NewReader(content))
	if err != nil {
		return DefaultExtractor(content)
	}

	var out []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.ElementNode:
			out = append(out, n.Data)
			for _, attr := range n.Attr {
				out = append(out, attr.Key)
				switch attr.Key {
				case "class":
					out = append(out, strings.Fields(attr.Val)...)
				default:
					out = append(out, attr.Val)
				}
			}
		case html.TextNode:
			out = append(out, DefaultExtractor(n.Data)...)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return out
}

// ExtractorFor picks an extractor from a file extension.
func ExtractorFor(ext string) Extractor {
	switch strings.ToLower(ext) {
	case ".html", ".htm":
		return HTMLExtractor
	default:
		return DefaultExtractor
	}
}

// Candidates is the set of selector names found in the content sources,
// plus the raw content for attribute-value lookups.
type Candidates struct {
	words map[string]struct{}
	raw   []string
	Files []string
}

// NewCandidates builds a candidate set from already extracted words.
func NewCandidates(words ...string) *Candidates {
	c := &Candidates{words: make(map[string]struct{}, len(words))}
	c.add(words)
	return c
}

func (c *Candidates) add(words []string) {
	for _, w := range words {
		if w != "" {
			c.words[w] = struct{}{}
		}
	}
}

// Has reports whether name was extracted from some source.
func (c *Candidates) Has(name string) bool {
	_, ok := c.words[name]
	return ok
}

// Len returns the number of distinct candidates.
func (c *Candidates) Len() int {
	return len(c.words)
}

// Words returns the candidates in sorted order.
func (c *Candidates) Words() []string {
	out := make([]string, 0, len(c.words))
	for w := range c.words {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

func (c *Candidates) rawContains(s string, fold bool) bool {
	if fold {
		s = strings.ToLower(s)
	}
	for _, r := range c.raw {
		if fold {
			r = strings.ToLower(r)
		}
		if strings.Contains(r, s) {
			return true
		}
	}
	return false
}

// Extract reads every source and collects its candidates. Path sources may
// be doublestar globs ("src/**/*.njk"); a path or glob that matches no file
// is an error.
func Extract(ctx context.Context, sources []Source) (*Candidates, error) {
	c := NewCandidates()
	for _, src := range sources {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if src.Path == "" {
			c.raw = append(c.raw, src.Raw)
			c.add(ExtractorFor(src.Extension)(src.Raw))
			continue
		}

		files, err := expand(src.Path)
		if err != nil {
			return nil, err
		}
		for _, file := range files {
			// #nosec G304 -- content paths come from the build settings
			data, err := os.ReadFile(file)
			if err != nil {
				return nil, fmt.Errorf("%w: %s: %w", ErrContentUnreadable, file, err)
			}
			content := string(data)
			c.raw = append(c.raw, content)
			c.add(ExtractorFor(filepath.Ext(file))(content))
			c.Files = append(c.Files, file)
		}
	}
	return c, nil
}

func expand(pattern string) ([]string, error) {
	if !doublestar.ValidatePattern(filepath.ToSlash(pattern)) {
		return nil, fmt.Errorf("%w: %q", ErrBadPattern, pattern)
	}
	files, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrBadPattern, pattern, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoContent, pattern)
	}
	sort.Strings(files)
	return files, nil
}
