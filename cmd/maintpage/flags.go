package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	root    string
	quiet   bool
	verbose bool
}

// inputFlags holds the page data and template flags.
type inputFlags struct {
	data         string
	templateDir  string
	templateName string
}

// styleFlags holds stylesheet flags.
type styleFlags struct {
	source    string
	loadPaths []string
	precision int
}

// purgeFlags holds unused-rule pruning flags.
type purgeFlags struct {
	content  []string
	standard []string
	deep     []string
	greedy   []string
	rejected bool
}

// outputFlags holds minification and output flags.
type outputFlags struct {
	level  int
	path   string
	atomic bool
}

// buildFlags holds all flags for the build and check commands.
type buildFlags struct {
	common commonFlags
	input  inputFlags
	style  styleFlags
	purge  purgeFlags
	output outputFlags
	json   bool // check only

	// changed records the flags set on the command line; only those
	// override the settings file and environment.
	changed map[string]bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "settings file name or path")
	fs.StringVarP(&f.root, "root", "C", "", "project root directory")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show timings, imports and rejected selectors")
}

// addInputFlags adds page data and template flags to a FlagSet.
func addInputFlags(fs *flag.FlagSet, f *inputFlags) {
	fs.StringVarP(&f.data, "data", "d", "", "page data JSON file")
	fs.StringVar(&f.templateDir, "template-dir", "", "template directory")
	fs.StringVarP(&f.templateName, "template", "t", "", "template file name inside the template directory")
}

// addStyleFlags adds stylesheet flags to a FlagSet.
func addStyleFlags(fs *flag.FlagSet, f *styleFlags) {
	fs.StringVarP(&f.source, "style", "s", "", "SCSS source file")
	fs.StringArrayVarP(&f.loadPaths, "load-path", "I", nil, "stylesheet import directory (repeatable)")
	fs.IntVar(&f.precision, "precision", 0, "decimal places kept in compiled numbers (0 = compiler default)")
}

// addPurgeFlags adds pruning flags to a FlagSet.
func addPurgeFlags(fs *flag.FlagSet, f *purgeFlags) {
	fs.StringArrayVar(&f.content, "content", nil, "file or glob scanned for used selectors (repeatable)")
	fs.StringArrayVar(&f.standard, "safelist", nil, "regexp keeping matching class, id, tag or attribute names (repeatable)")
	fs.StringArrayVar(&f.deep, "safelist-deep", nil, "regexp keeping whole selectors containing a matching name (repeatable)")
	fs.StringArrayVar(&f.greedy, "safelist-greedy", nil, "regexp keeping selectors whose text matches (repeatable)")
	fs.BoolVar(&f.rejected, "rejected", false, "list removed selectors after the build")
}

// addOutputFlags adds minification and output flags to a FlagSet.
func addOutputFlags(fs *flag.FlagSet, f *outputFlags) {
	fs.IntVarP(&f.level, "minify-level", "l", 0, "minification level: 0 whitespace, 1 values, 2 restructure")
	fs.StringVarP(&f.path, "output", "o", "", "output HTML file")
	fs.BoolVar(&f.atomic, "atomic", false, "write through a temporary file and rename it")
}

// parseBuildFlags parses build (or check) flags and returns positional args.
func parseBuildFlags(name string, args []string, usage func(io.Writer), stderr io.Writer) (*buildFlags, []string, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &buildFlags{changed: make(map[string]bool)}

	addCommonFlags(fs, &f.common)
	addInputFlags(fs, &f.input)
	addStyleFlags(fs, &f.style)
	addPurgeFlags(fs, &f.purge)
	addOutputFlags(fs, &f.output)
	if name == cmdCheck {
		fs.BoolVar(&f.json, "json", false, "print the report as JSON")
	}

	fs.Usage = func() { usage(stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, usageError(err)
	}
	fs.Visit(func(fl *flag.Flag) { f.changed[fl.Name] = true })

	return f, fs.Args(), nil
}

// initFlags holds flags for the init command.
type initFlags struct {
	starter string
	from    string
	force   bool
	quiet   bool
}

// parseInitFlags parses init flags and returns positional args.
func parseInitFlags(args []string, stderr io.Writer) (*initFlags, []string, error) {
	fs := flag.NewFlagSet(cmdInit, flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &initFlags{}

	fs.StringVar(&f.starter, "starter", "", "starter project name (default \"default\")")
	fs.StringVar(&f.from, "from", "", "directory of custom starters, tried before the built-in ones")
	fs.BoolVarP(&f.force, "force", "f", false, "overwrite existing files")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")

	fs.Usage = func() { printInitUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, usageError(err)
	}
	return f, fs.Args(), nil
}
