// Package maintpage builds a static maintenance page: one HTML file with
// its stylesheet inlined.
//
// # Quick Start
//
//	b := maintpage.New(maintpage.WithLogger(logger))
//	report, err := b.Build(ctx, maintpage.Job{
//	    DataPath:     "config.json",
//	    StyleSource:  "src/styles.scss",
//	    LoadPaths:    []string{"node_modules"},
//	    Content:      []maintpage.Content{{Path: "src/template.njk"}},
//	    Safelist:     maintpage.Safelist{Standard: []string{"^govuk-width-container"}},
//	    MinifyLevel:  maintpage.LevelRestructure,
//	    TemplateDir:  "src",
//	    TemplateName: "template.njk",
//	    OutputPath:   "dist/maintenance.html",
//	})
//
// # Pipeline
//
// Build runs each stage once, in order:
//
//  1. Page data: a JSON object, passed to the template verbatim
//  2. Stylesheet: SCSS compiled with LibSass, imports resolved from the
//     source directory and the load paths ("~pkg/file" included)
//  3. Pruning: rules whose selectors never appear in the content sources
//     are removed, unless a safelist pattern exempts them
//  4. Minification: level 0 strips whitespace and comments, level 1 also
//     shortens values, level 2 also merges and deduplicates rules
//  5. Rendering: a pongo2 (Jinja/Nunjucks syntax) template with autoescape,
//     trim-blocks and lstrip-blocks; the stylesheet is available as css
//  6. Output: the parent directory is created and the file overwritten
//
// A failure stops the build and is returned as a *StageError. Use
// errors.Is with the sentinel errors (ErrDataParse, ErrMinify, ...) for the
// cause and FailedStage for where the build stopped. When the minifier
// reports errors nothing is rendered or written.
//
// # Templates
//
// Page data values are escaped unless marked safe. The stylesheet is
// injected with {{ css|safe }}. The markdown filter renders a string as
// Markdown with raw HTML disabled:
//
//	<style>{{ css|safe }}</style>
//	<h1>{{ title }}</h1>
//	{{ message|markdown }}
//
// # Custom Stages
//
// Every stage sits behind an interface (ConfigLoader, StyleCompiler,
// Pruner, Minifier, Renderer, OutputWriter) and can be replaced with the
// matching With* option.
package maintpage
