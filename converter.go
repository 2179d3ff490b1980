package md2html

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"sync"

	"github.com/alnah/go-md2html/internal/assets"
	"github.com/alnah/go-md2html/internal/dateutil"
	"github.com/alnah/go-md2html/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.CommonMarkPreprocessor)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.GoldmarkConverter)(nil)
	_ pipeline.PageRenderer         = (*pipeline.PageTemplate)(nil)
	_ assets.AssetLoader            = (*assets.AssetResolver)(nil)
)

// Converter orchestrates the Markdown-to-HTML page pipeline.
// A Converter holds no per-call state and is safe for concurrent use.
type Converter struct {
	cfg           converterConfig
	assetLoader   assets.AssetLoader
	preprocessor  pipeline.MarkdownPreprocessor
	htmlConverter pipeline.HTMLConverter
	pageRenderer  pipeline.PageRenderer

	tocEnabled  bool
	stylesheets Stylesheets
	footer      pipeline.PageFooter
}

// NewConverter creates a Converter with the default configuration:
// the five default extensions, local stylesheets and the stock footer.
// Returns error if an option is invalid or the page template cannot be loaded.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg:          defaultConverterConfig(),
		preprocessor: &pipeline.CommonMarkPreprocessor{},
	}

	for _, opt := range opts {
		opt(c)
	}

	mdOpts, err := c.markdownOptions()
	if err != nil {
		return nil, err
	}
	if c.htmlConverter == nil {
		c.htmlConverter = pipeline.NewGoldmarkConverter(mdOpts)
	}

	if err := c.resolveStylesheets(); err != nil {
		return nil, err
	}

	year, err := dateutil.ResolveYear(c.cfg.footer.Year, c.cfg.now())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFooterYear, err)
	}
	c.footer = pipeline.PageFooter{Owner: c.cfg.footer.Owner, Year: year}

	if c.pageRenderer == nil {
		if err := c.loadTemplate(); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// markdownOptions maps the extension set to renderer options.
func (c *Converter) markdownOptions() (pipeline.MarkdownOptions, error) {
	opts := pipeline.MarkdownOptions{
		RawHTML:        c.cfg.rawHTML,
		Highlight:      c.cfg.highlight,
		HighlightStyle: c.cfg.highlightStyle,
	}

	for _, ext := range c.cfg.extensions {
		switch ext {
		case ExtTOC:
			c.tocEnabled = true
		case ExtFencedCode:
			opts.FencedCode = true
		case ExtTables:
			opts.Tables = true
		case ExtCodeFriendly:
			opts.CodeFriendly = true
		case ExtStrike:
			opts.Strikethrough = true
		case ExtFootnotes:
			opts.Footnotes = true
		default:
			return opts, fmt.Errorf("%w: %q", ErrUnknownExtension, ext)
		}
	}

	if c.cfg.highlight {
		if err := pipeline.ValidateHighlightStyle(c.cfg.highlightStyle); err != nil {
			return opts, err
		}
	}

	return opts, nil
}

// resolveStylesheets picks the hrefs for the mode, then applies explicit overrides.
func (c *Converter) resolveStylesheets() error {
	mode, err := ParseStylesheetMode(string(c.cfg.stylesheetMode))
	if err != nil {
		return err
	}

	c.stylesheets = mode.Stylesheets()
	if c.cfg.stylesheets.Page != "" {
		c.stylesheets.Page = c.cfg.stylesheets.Page
	}
	if c.cfg.stylesheets.Highlight != "" {
		c.stylesheets.Highlight = c.cfg.stylesheets.Highlight
	}
	return nil
}

// loadTemplate resolves the asset loader and parses the page template.
func (c *Converter) loadTemplate() error {
	c.assetLoader = assets.NewEmbeddedLoader()
	if c.cfg.assetPath != "" {
		resolver, err := assets.NewAssetResolver(c.cfg.assetPath)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
		}
		c.assetLoader = resolver
	}

	name := c.cfg.templateName
	if name == "" {
		name = assets.DefaultTemplateName
	}

	content, err := c.assetLoader.LoadTemplate(name)
	if err != nil {
		return fmt.Errorf("loading page template: %w", err)
	}

	page, err := pipeline.NewPageTemplate(content)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTemplate, err)
	}
	c.pageRenderer = page
	return nil
}

// Convert runs the full pipeline and returns the page.
// The context is used for cancellation.
// Returns ErrNoHeading if the document has no heading to take the title from.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *ConvertResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	mdContent := c.preprocessor.PreprocessMarkdown(ctx, input.Markdown)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	rendered, err := c.htmlConverter.ToHTML(ctx, mdContent)
	if err != nil {
		return nil, fmt.Errorf("converting to HTML: %w", err)
	}

	title, toc, err := pipeline.ExtractTOC(rendered.TOC)
	if err != nil {
		return nil, err
	}
	if !c.tocEnabled {
		toc = ""
	}

	body := pipeline.SpliceTOC(rendered.Body, toc)

	page, err := c.pageRenderer.RenderPage(ctx, &pipeline.PageData{
		Title:               title,
		PageStylesheet:      c.stylesheets.Page,
		HighlightStylesheet: c.stylesheets.Highlight,
		Body:                template.HTML(body), // #nosec G203 -- rendered by goldmark, raw HTML follows WithRawHTML
		Footer:              c.footer,
	})
	if err != nil {
		return nil, fmt.Errorf("rendering page: %w", err)
	}

	return &ConvertResult{
		HTML:  []byte(page),
		Title: title,
		TOC:   toc,
	}, nil
}

// Stylesheets returns the hrefs linked from generated pages.
func (c *Converter) Stylesheets() Stylesheets {
	return c.stylesheets
}

var defaultConverter = sync.OnceValues(func() (*Converter, error) {
	return NewConverter()
})

// Translate converts Markdown to a complete HTML page with the default
// configuration. The same input always yields the same output.
func Translate(markdown string) (string, error) {
	conv, err := defaultConverter()
	if err != nil {
		return "", err
	}

	result, err := conv.Convert(context.Background(), Input{Markdown: markdown})
	if err != nil {
		return "", err
	}
	return string(result.HTML), nil
}

// IsConfigError reports whether err was caused by an invalid option rather
// than by the document being converted.
func IsConfigError(err error) bool {
	return errors.Is(err, ErrUnknownExtension) ||
		errors.Is(err, ErrInvalidStylesheetMode) ||
		errors.Is(err, ErrUnknownHighlightStyle) ||
		errors.Is(err, ErrInvalidFooterYear) ||
		errors.Is(err, ErrInvalidAssetPath) ||
		errors.Is(err, ErrTemplateNotFound) ||
		errors.Is(err, ErrInvalidTemplate)
}
