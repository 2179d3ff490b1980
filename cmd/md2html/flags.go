package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// stylesheetFlags holds stylesheet href flags.
type stylesheetFlags struct {
	cdn       bool
	page      string
	highlight string
}

// highlightFlags holds syntax highlighting flags.
type highlightFlags struct {
	enabled bool
	style   string
}

// footerFlags holds copyright footer flags.
type footerFlags struct {
	owner string
	year  string
}

// assetFlags holds template and asset directory flags.
type assetFlags struct {
	template  string
	assetPath string
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common      commonFlags
	output      string
	extensions  []string
	rawHTML     bool
	stylesheets stylesheetFlags
	highlight   highlightFlags
	footer      footerFlags
	assets      assetFlags

	// changed records flags given on the command line, so booleans and
	// lists can override config values only when explicitly set.
	changed map[string]bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed progress")
}

// addStylesheetFlags adds stylesheet flags to a FlagSet.
func addStylesheetFlags(fs *flag.FlagSet, f *stylesheetFlags) {
	fs.BoolVar(&f.cdn, "cdn", false, "link Primer from the CDN")
	fs.StringVar(&f.page, "page-css", "", "page stylesheet href")
	fs.StringVar(&f.highlight, "highlight-css", "", "code stylesheet href")
}

// addHighlightFlags adds syntax highlighting flags to a FlagSet.
func addHighlightFlags(fs *flag.FlagSet, f *highlightFlags) {
	fs.BoolVar(&f.enabled, "highlight", false, "highlight fenced code with chroma")
	fs.StringVar(&f.style, "highlight-style", "", "chroma style name")
}

// addFooterFlags adds footer flags to a FlagSet.
func addFooterFlags(fs *flag.FlagSet, f *footerFlags) {
	fs.StringVar(&f.owner, "footer-owner", "", "copyright holder")
	fs.StringVar(&f.year, "footer-year", "", "copyright year, \"auto\" or \"auto:FORMAT\"")
}

// addAssetFlags adds asset flags to a FlagSet.
func addAssetFlags(fs *flag.FlagSet, f *assetFlags) {
	fs.StringVar(&f.template, "template", "", "page template name")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
}

// parseConvertFlags parses convert command flags and returns remaining positional args.
// Errors and usage go to w.
func parseConvertFlags(args []string, w io.Writer) (*convertFlags, []string, error) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	fs.SetOutput(w)
	f := &convertFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output file (default stdout)")
	fs.StringSliceVar(&f.extensions, "extensions", nil, "comma-separated Markdown extensions")
	fs.BoolVar(&f.rawHTML, "raw-html", true, "pass raw HTML through (false omits it)")

	addCommonFlags(fs, &f.common)
	addStylesheetFlags(fs, &f.stylesheets)
	addHighlightFlags(fs, &f.highlight)
	addFooterFlags(fs, &f.footer)
	addAssetFlags(fs, &f.assets)

	fs.Usage = func() { printConvertUsage(w) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	f.changed = make(map[string]bool)
	fs.Visit(func(fl *flag.Flag) { f.changed[fl.Name] = true })

	return f, fs.Args(), nil
}

// cssFlags holds flags for the css command.
type cssFlags struct {
	style  string
	output string
	list   bool
}

// parseCSSFlags parses css command flags.
func parseCSSFlags(args []string, w io.Writer) (*cssFlags, []string, error) {
	fs := flag.NewFlagSet("css", flag.ContinueOnError)
	fs.SetOutput(w)
	f := &cssFlags{}

	fs.StringVarP(&f.style, "style", "s", "", "chroma style name")
	fs.StringVarP(&f.output, "output", "o", "", "output file (default stdout)")
	fs.BoolVar(&f.list, "list", false, "list available styles")

	fs.Usage = func() { printCSSUsage(w) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseConfigFlags parses config command flags.
func parseConfigFlags(args []string, w io.Writer) (*commonFlags, []string, error) {
	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(w)
	f := &commonFlags{}
	addCommonFlags(fs, f)

	fs.Usage = func() { printConfigUsage(w) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// hasVerboseFlag reports whether -v or --verbose appears before "--".
// Used before full parsing to configure start-up logging.
func hasVerboseFlag(args []string) bool {
	for _, a := range args {
		if a == "--" {
			return false
		}
		if a == "-v" || a == "--verbose" {
			return true
		}
	}
	return false
}
