package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: maintpage [command] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  build      Build the maintenance page (default)")
	fmt.Fprintln(w, "  init       Create a starter project")
	fmt.Fprintln(w, "  check      Verify settings and inputs without building")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'maintpage help <command>' for details on a specific command.")
}

// printBuildFlags prints the flags shared by build and check.
func printBuildFlags(w io.Writer) {
	fmt.Fprintln(w, "Settings:")
	fmt.Fprintln(w, "  -c, --config <name>         Settings file name or path (default: maintpage.yaml if present)")
	fmt.Fprintln(w, "  -C, --root <dir>            Project root; relative paths resolve against it")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Inputs:")
	fmt.Fprintln(w, "  -d, --data <path>           Page data JSON file")
	fmt.Fprintln(w, "  -s, --style <path>          SCSS source file")
	fmt.Fprintln(w, "  -I, --load-path <dir>       Stylesheet import directory (repeatable)")
	fmt.Fprintln(w, "      --precision <n>         Decimal places in compiled numbers (0 = default)")
	fmt.Fprintln(w, "      --template-dir <dir>    Template directory")
	fmt.Fprintln(w, "  -t, --template <name>       Template file inside the template directory")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Pruning:")
	fmt.Fprintln(w, "      --content <glob>        File or glob scanned for used selectors (repeatable)")
	fmt.Fprintln(w, "      --safelist <re>         Keep class, id, tag or attribute names matching re")
	fmt.Fprintln(w, "      --safelist-deep <re>    Keep whole selectors containing a name matching re")
	fmt.Fprintln(w, "      --safelist-greedy <re>  Keep selectors whose text matches re")
	fmt.Fprintln(w, "      --rejected              List removed selectors")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -l, --minify-level <n>      0 whitespace, 1 values, 2 restructure")
	fmt.Fprintln(w, "  -o, --output <path>         Output HTML file")
	fmt.Fprintln(w, "      --atomic                Write a temporary file then rename it")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet                 Only show errors")
	fmt.Fprintln(w, "  -v, --verbose               Show timings, imports and rejected selectors")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  MAINTPAGE_CONFIG, MAINTPAGE_ROOT, MAINTPAGE_DATA, MAINTPAGE_STYLE,")
	fmt.Fprintln(w, "  MAINTPAGE_LOAD_PATHS, MAINTPAGE_CONTENT, MAINTPAGE_TEMPLATE_DIR,")
	fmt.Fprintln(w, "  MAINTPAGE_TEMPLATE, MAINTPAGE_MINIFY_LEVEL, MAINTPAGE_OUTPUT, MAINTPAGE_ATOMIC")
	fmt.Fprintln(w, "  Flags override environment variables, which override the settings file.")
}

// printBuildUsage prints usage for the build command.
func printBuildUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: maintpage build [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Compile, prune and minify the stylesheet, then render the page template.")
	fmt.Fprintln(w)
	printBuildFlags(w)
}

// printCheckUsage prints usage for the check command.
func printCheckUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: maintpage check [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Verify settings and inputs without building.")
	fmt.Fprintln(w, "Accepts the build flags, plus:")
	fmt.Fprintln(w, "      --json                  Print the report as JSON")
	fmt.Fprintln(w)
	printBuildFlags(w)
}

// printInitUsage prints usage for the init command.
func printInitUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: maintpage init [dir] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Create a starter project in dir (default: current directory).")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --starter <name>    Starter project: default, govuk")
	fmt.Fprintln(w, "      --from <dir>        Directory of custom starters, tried first")
	fmt.Fprintln(w, "  -f, --force             Overwrite existing files")
	fmt.Fprintln(w, "  -q, --quiet             Only show errors")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case cmdBuild:
		printBuildUsage(env.Stdout)
	case cmdInit:
		printInitUsage(env.Stdout)
	case cmdCheck:
		printCheckUsage(env.Stdout)
	case cmdVersion:
		fmt.Fprintln(env.Stdout, "Usage: maintpage version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case cmdHelp:
		fmt.Fprintln(env.Stdout, "Usage: maintpage help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
