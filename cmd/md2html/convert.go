package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/config"
	"github.com/alnah/go-md2html/internal/fileutil"
	"github.com/alnah/go-md2html/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrReadMarkdown = errors.New("failed to read markdown")
	ErrWriteOutput  = errors.New("failed to write output")
	ErrTooManyArgs  = errors.New("too many arguments")
)

const (
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
	maxInputSize    = 32 << 20
	stdinName       = "-"
)

// runConvert reads one Markdown document, converts it and writes the page.
func runConvert(ctx context.Context, args []string, flags *convertFlags, env *Environment) error {
	if len(args) > 1 {
		return fmt.Errorf("%w: expected at most one input file, got %d", ErrTooManyArgs, len(args))
	}

	cfg, err := loadConfig(flags.common.config)
	if err != nil {
		return err
	}

	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	opts, err := buildOptions(cfg, env.Now)
	if err != nil {
		return err
	}

	conv, err := md2html.NewConverter(opts...)
	if err != nil {
		return err
	}

	inputPath := stdinName
	if len(args) == 1 {
		inputPath = args[0]
	}

	markdown, err := readInput(inputPath, flags.common.quiet, env)
	if err != nil {
		return err
	}

	start := env.Now()
	result, err := conv.Convert(ctx, md2html.Input{Markdown: string(markdown)})
	if err != nil {
		return err
	}

	if err := writeOutput(flags.output, result.HTML, env); err != nil {
		return err
	}

	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Converted %s -> %s %q (%v)\n",
			displayName(inputPath, "stdin"), displayName(flags.output, "stdout"), result.Title,
			env.Now().Sub(start).Round(time.Millisecond))
	}
	return nil
}

// loadConfig loads the named config, or the defaults when name is empty.
// A missing config carries a hint listing where it was searched for.
func loadConfig(name string) (*config.Config, error) {
	if name == "" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(name) {
			return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
		}
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// mergeFlags applies explicitly set CLI flags over config values (CLI wins).
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	if flags.changed["extensions"] {
		cfg.Extensions = flags.extensions
	}
	if flags.changed["raw-html"] {
		cfg.RawHTML = flags.rawHTML
	}

	if flags.changed["cdn"] {
		cfg.Stylesheets.Mode = config.StylesheetModeLocal
		if flags.stylesheets.cdn {
			cfg.Stylesheets.Mode = config.StylesheetModeCDN
		}
	}
	if flags.stylesheets.page != "" {
		cfg.Stylesheets.Page = flags.stylesheets.page
	}
	if flags.stylesheets.highlight != "" {
		cfg.Stylesheets.Highlight = flags.stylesheets.highlight
	}

	if flags.changed["highlight"] {
		cfg.Highlight.Enabled = flags.highlight.enabled
	}
	// Naming a style implies highlighting.
	if flags.highlight.style != "" {
		cfg.Highlight.Style = flags.highlight.style
		cfg.Highlight.Enabled = true
	}

	if flags.footer.owner != "" {
		cfg.Footer.Owner = flags.footer.owner
	}
	if flags.footer.year != "" {
		cfg.Footer.Year = flags.footer.year
	}

	if flags.assets.template != "" {
		cfg.Template = flags.assets.template
	}
	if flags.assets.assetPath != "" {
		cfg.Assets.BasePath = flags.assets.assetPath
	}
}

// buildOptions translates a validated config into converter options.
func buildOptions(cfg *config.Config, now func() time.Time) ([]md2html.Option, error) {
	exts, err := md2html.ParseExtensions(cfg.Extensions)
	if err != nil {
		return nil, err
	}
	mode, err := md2html.ParseStylesheetMode(cfg.Stylesheets.Mode)
	if err != nil {
		return nil, err
	}

	opts := []md2html.Option{
		md2html.WithExtensions(exts...),
		md2html.WithStylesheetMode(mode),
		md2html.WithStylesheets(md2html.Stylesheets{
			Page:      cfg.Stylesheets.Page,
			Highlight: cfg.Stylesheets.Highlight,
		}),
		md2html.WithRawHTML(cfg.RawHTML),
		md2html.WithFooter(md2html.Footer{Owner: cfg.Footer.Owner, Year: cfg.Footer.Year}),
		md2html.WithAssetPath(cfg.Assets.BasePath),
		md2html.WithTemplate(cfg.Template),
		md2html.WithClock(now),
	}
	if cfg.Highlight.Enabled {
		opts = append(opts, md2html.WithHighlighting(cfg.Highlight.Style))
	}
	return opts, nil
}

// readInput reads the whole document from a file or, for "-", from stdin.
func readInput(path string, quiet bool, env *Environment) ([]byte, error) {
	if path == stdinName {
		if !quiet && env.StdinIsTerminal != nil && env.StdinIsTerminal() {
			fmt.Fprintln(env.Stderr, "md2html: waiting for input"+hints.ForStdinTerminal())
		}
		data, err := fileutil.ReadAllLimited(env.Stdin, maxInputSize)
		if err != nil {
			return nil, fmt.Errorf("%w: stdin: %w", ErrReadMarkdown, err)
		}
		return data, nil
	}

	f, err := os.Open(path) // #nosec G304 -- path is user-provided
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadMarkdown, err)
	}
	defer f.Close()

	data, err := fileutil.ReadAllLimited(f, maxInputSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrReadMarkdown, path, err)
	}
	return data, nil
}

// writeOutput writes the page to stdout, or atomically to a file.
func writeOutput(path string, page []byte, env *Environment) error {
	if path == "" || path == stdinName {
		if _, err := io.Copy(env.Stdout, bytes.NewReader(page)); err != nil {
			return fmt.Errorf("%w: stdout: %w", ErrWriteOutput, err)
		}
		return nil
	}

	if err := fileutil.WriteFileAtomic(path, page, filePermissions); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	return nil
}

// displayName names a path for messages, using std for the standard streams.
func displayName(path, std string) string {
	if path == "" || path == stdinName {
		return std
	}
	return path
}
