package maintpage

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// Level is the minifier aggressiveness.
type Level int

const (
	// LevelWhitespace removes comments and optional whitespace only.
	LevelWhitespace Level = 0
	// LevelValues also optimises values inside each rule.
	LevelValues Level = 1
	// LevelRestructure also merges and deduplicates rules.
	LevelRestructure Level = 2
)

// Validate checks that the level is one of the known levels.
func (l Level) Validate() error {
	if l < LevelWhitespace || l > LevelRestructure {
		return fmt.Errorf("%w: %d (must be 0, 1 or 2)", ErrInvalidLevel, int(l))
	}
	return nil
}

// Content is a pruning content source: a file path or doublestar glob, or
// raw markup with an extension hint (".html" selects the HTML extractor).
type Content struct {
	Path      string
	Raw       string
	Extension string
}

// Safelist holds regular expressions exempting selectors from pruning.
type Safelist struct {
	Standard []string // matched against each tag, class, id or attribute name
	Deep     []string // any matching name keeps the whole selector
	Greedy   []string // matched anywhere in the selector text
}

// CompileResult is the stylesheet compiler output.
type CompileResult struct {
	CSS     string
	Imports []string // every import the compiler was asked to resolve, in order
}

// PruneResult is the pruner output.
type PruneResult struct {
	CSS      string
	Rejected []string
}

// MinifyResult is the minifier output. Styles must not be used when Errors
// is non-empty.
type MinifyResult struct {
	Styles   string
	Errors   []string
	Warnings []string
}

// Job describes one build. Relative paths are used as given; callers
// resolve them against the project root.
type Job struct {
	DataPath     string
	StyleSource  string
	LoadPaths    []string
	Content      []Content
	Safelist     Safelist
	MinifyLevel  Level
	TemplateDir  string
	TemplateName string
	OutputPath   string
}

// Validate checks that every required field is set.
func (j Job) Validate() error {
	required := []struct {
		name, value string
	}{
		{"data path", j.DataPath},
		{"style source", j.StyleSource},
		{"template directory", j.TemplateDir},
		{"template name", j.TemplateName},
		{"output path", j.OutputPath},
	}
	for _, r := range required {
		if r.value == "" {
			return fmt.Errorf("%w: %s is empty", ErrInvalidJob, r.name)
		}
	}
	if len(j.Content) == 0 {
		return fmt.Errorf("%w: no content sources for pruning", ErrInvalidJob)
	}
	return j.MinifyLevel.Validate()
}

// Report summarises a successful build.
type Report struct {
	OutputPath string
	RawSize    int // compiled CSS, bytes
	PurgedSize int // after pruning
	FinalSize  int // after minification
	Imports    []string
	Rejected   []string
	Warnings   []string
	Durations  map[Stage]time.Duration // time spent reaching each stage
}

// Total returns the summed stage durations.
func (r *Report) Total() time.Duration {
	var total time.Duration
	for _, d := range r.Durations {
		total += d
	}
	return total
}

// KB formats a byte count in kilobytes with two decimals.
func KB(n int) string {
	return fmt.Sprintf("%.2f", float64(n)/1024)
}

// Option configures a Builder.
type Option func(*Builder)

// WithLogger sets the logger for progress and size reporting.
func WithLogger(l zerolog.Logger) Option {
	return func(b *Builder) {
		b.logger = l
	}
}

// WithConfigLoader replaces the page data loader.
func WithConfigLoader(l ConfigLoader) Option {
	return func(b *Builder) {
		b.loader = l
	}
}

// WithStyleCompiler replaces the stylesheet compiler.
func WithStyleCompiler(c StyleCompiler) Option {
	return func(b *Builder) {
		b.compiler = c
	}
}

// WithPruner replaces the unused-rule pruner.
func WithPruner(p Pruner) Option {
	return func(b *Builder) {
		b.pruner = p
	}
}

// WithMinifier replaces the CSS minifier.
func WithMinifier(m Minifier) Option {
	return func(b *Builder) {
		b.minifier = m
	}
}

// WithRenderer replaces the template renderer.
func WithRenderer(r Renderer) Option {
	return func(b *Builder) {
		b.renderer = r
	}
}

// WithOutputWriter replaces the output writer.
func WithOutputWriter(w OutputWriter) Option {
	return func(b *Builder) {
		b.writer = w
	}
}

// WithAtomicWrite makes the default writer write through a temporary file
// and rename it into place.
func WithAtomicWrite() Option {
	return func(b *Builder) {
		b.writer = &FileWriter{Atomic: true}
	}
}

// WithPrecision sets the number of decimal places kept by the default
// stylesheet compiler.
// Panics if p < 0 (programmer error).
func WithPrecision(p int) Option {
	if p < 0 {
		panic("maintpage: WithPrecision must not be negative")
	}
	return func(b *Builder) {
		b.precision = p
	}
}
