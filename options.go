package md2html

import "time"

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds the options collected before NewConverter validates them.
type converterConfig struct {
	extensions     []Extension
	stylesheetMode StylesheetMode
	stylesheets    Stylesheets // explicit hrefs, override the mode per field
	highlight      bool
	highlightStyle string
	rawHTML        bool
	footer         Footer
	assetPath      string
	templateName   string
	now            func() time.Time
}

func defaultConverterConfig() converterConfig {
	return converterConfig{
		extensions:     DefaultExtensions(),
		stylesheetMode: StylesheetLocal,
		rawHTML:        true,
		footer:         DefaultFooter(),
		now:            time.Now,
	}
}

// WithExtensions replaces the extension set. An empty list disables every extension.
func WithExtensions(exts ...Extension) Option {
	return func(c *Converter) {
		c.cfg.extensions = append([]Extension(nil), exts...)
	}
}

// WithStylesheetMode selects local or CDN stylesheet hrefs.
func WithStylesheetMode(mode StylesheetMode) Option {
	return func(c *Converter) {
		c.cfg.stylesheetMode = mode
	}
}

// WithStylesheets sets explicit stylesheet hrefs. Empty fields keep the
// href chosen by the stylesheet mode.
func WithStylesheets(s Stylesheets) Option {
	return func(c *Converter) {
		c.cfg.stylesheets = s
	}
}

// WithHighlighting enables chroma syntax highlighting of fenced code with
// the named style. An empty style selects the default.
func WithHighlighting(style string) Option {
	return func(c *Converter) {
		c.cfg.highlight = true
		c.cfg.highlightStyle = style
	}
}

// WithRawHTML controls raw HTML in the Markdown. It passes through by
// default; false replaces it with a comment. TOC placeholders are kept
// either way.
func WithRawHTML(enabled bool) Option {
	return func(c *Converter) {
		c.cfg.rawHTML = enabled
	}
}

// WithFooter sets the copyright footer.
func WithFooter(f Footer) Option {
	return func(c *Converter) {
		c.cfg.footer = f
	}
}

// WithAssetPath loads templates from a directory, falling back to the
// embedded ones. See internal/assets for the layout.
func WithAssetPath(path string) Option {
	return func(c *Converter) {
		c.cfg.assetPath = path
	}
}

// WithTemplate selects the page template by name (default "page").
func WithTemplate(name string) Option {
	return func(c *Converter) {
		c.cfg.templateName = name
	}
}

// WithClock sets the time source used to resolve "auto" footer years.
func WithClock(now func() time.Time) Option {
	return func(c *Converter) {
		if now != nil {
			c.cfg.now = now
		}
	}
}
