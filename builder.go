package maintpage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Builder runs the maintenance page pipeline: page data, stylesheet
// compilation, pruning, minification, rendering and output.
type Builder struct {
	loader    ConfigLoader
	compiler  StyleCompiler
	pruner    Pruner
	minifier  Minifier
	renderer  Renderer
	writer    OutputWriter
	logger    zerolog.Logger
	precision int
}

// New creates a Builder with the default stage implementations.
// Use options to replace stages (e.g., in tests) or to tune them.
func New(opts ...Option) *Builder {
	b := &Builder{
		loader:   &JSONLoader{},
		minifier: NewCSSMinifier(),
		renderer: &TemplateRenderer{},
		writer:   &FileWriter{},
		logger:   zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(b)
	}

	// Built after options so they see the final logger and precision.
	if b.compiler == nil {
		b.compiler = &SassCompiler{Precision: b.precision, Logger: b.logger}
	}
	if b.pruner == nil {
		b.pruner = &ContentPruner{Logger: b.logger}
	}

	return b
}

// run tracks the pipeline state for one Build call.
type run struct {
	stage  Stage
	mark   time.Time
	report *Report
}

func (r *run) advance(to Stage) {
	now := time.Now()
	r.report.Durations[to] = now.Sub(r.mark)
	r.mark = now
	r.stage = to
}

func (r *run) fail(err error) error {
	return &StageError{Stage: r.stage, Err: err}
}

// Build runs every stage once, in order. The context is checked between
// stages; a cancelled build stops before the next one starts. Any failure
// is returned as a *StageError naming the last state reached.
//
// When the minifier reports errors, nothing is rendered or written and the
// error wraps ErrMinify.
func (b *Builder) Build(ctx context.Context, job Job) (*Report, error) {
	if err := job.Validate(); err != nil {
		return nil, err
	}

	r := &run{
		stage: StageStart,
		mark:  time.Now(),
		report: &Report{
			OutputPath: job.OutputPath,
			Durations:  make(map[Stage]time.Duration, int(StageDone)),
		},
	}
	report := r.report

	// Page data
	b.logger.Info().Str("path", job.DataPath).Msg("Loading config...")
	data, err := b.loader.Load(ctx, job.DataPath)
	if err != nil {
		return nil, r.fail(err)
	}
	r.advance(StageConfigLoaded)
	if err := ctx.Err(); err != nil {
		return nil, r.fail(err)
	}

	// Stylesheet
	b.logger.Info().Str("source", job.StyleSource).Msg("Compiling SCSS...")
	compiled, err := b.compiler.Compile(ctx, job.StyleSource, job.LoadPaths)
	if err != nil {
		return nil, r.fail(err)
	}
	report.RawSize = len(compiled.CSS)
	report.Imports = compiled.Imports
	b.logger.Info().Str("kb", KB(report.RawSize)).Msg("Raw CSS size")
	r.advance(StageStyleCompiled)
	if err := ctx.Err(); err != nil {
		return nil, r.fail(err)
	}

	// Pruning
	b.logger.Info().Int("sources", len(job.Content)).Msg("Purging unused CSS...")
	pruned, err := b.pruner.Prune(ctx, compiled.CSS, job.Content, job.Safelist)
	if err != nil {
		return nil, r.fail(err)
	}
	report.PurgedSize = len(pruned.CSS)
	report.Rejected = pruned.Rejected
	b.logger.Info().
		Str("kb", KB(report.PurgedSize)).
		Int("rejected", len(pruned.Rejected)).
		Msg("Purged CSS size")
	r.advance(StagePruned)
	if err := ctx.Err(); err != nil {
		return nil, r.fail(err)
	}

	// Minification
	b.logger.Info().Int("level", int(job.MinifyLevel)).Msg("Minifying CSS...")
	minified := b.minifier.Minify(pruned.CSS, job.MinifyLevel)
	for _, w := range minified.Warnings {
		b.logger.Warn().Msg(w)
	}
	report.Warnings = minified.Warnings
	if len(minified.Errors) > 0 {
		for _, e := range minified.Errors {
			b.logger.Error().Msg(e)
		}
		return nil, r.fail(fmt.Errorf("%w: %s", ErrMinify, strings.Join(minified.Errors, "; ")))
	}
	report.FinalSize = len(minified.Styles)
	b.logger.Info().Str("kb", KB(report.FinalSize)).Msg("Final CSS size")
	r.advance(StageMinified)
	if err := ctx.Err(); err != nil {
		return nil, r.fail(err)
	}

	// Rendering
	b.logger.Info().Str("template", job.TemplateName).Msg("Rendering template...")
	tplData, skipped := templateContext(data, minified.Styles)
	if len(skipped) > 0 {
		b.logger.Warn().Strs("keys", skipped).Msg("Page data keys are not valid template names and were skipped")
	}
	html, err := b.renderer.Render(ctx, job.TemplateDir, job.TemplateName, tplData)
	if err != nil {
		return nil, r.fail(err)
	}
	r.advance(StageRendered)
	if err := ctx.Err(); err != nil {
		return nil, r.fail(err)
	}

	// Output
	if err := b.writer.Write(ctx, job.OutputPath, html); err != nil {
		return nil, r.fail(err)
	}
	r.advance(StageWritten)
	b.logger.Info().Str("path", job.OutputPath).Str("kb", KB(len(html))).Msg("Wrote maintenance page")

	r.advance(StageDone)
	for s := StageConfigLoaded; s <= StageDone; s++ {
		b.logger.Debug().Stringer("stage", s).Dur("took", report.Durations[s]).Msg("Stage timing")
	}
	return report, nil
}

// IsCanceled reports whether err stopped a build because its context was
// cancelled or timed out.
func IsCanceled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
