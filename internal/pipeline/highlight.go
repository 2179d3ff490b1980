package pipeline

import (
	"errors"
	"fmt"
	"io"
	"sort"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/util"
)

// DefaultHighlightStyle is the chroma style used when none is configured.
const DefaultHighlightStyle = "monokai"

// ErrUnknownHighlightStyle indicates the chroma style does not exist.
var ErrUnknownHighlightStyle = errors.New("unknown highlight style")

// newHighlighting builds the goldmark extension for chroma highlighting.
// Classes instead of inline styles let the external pygments.css apply.
func newHighlighting(style string) goldmark.Extender {
	if style == "" {
		style = DefaultHighlightStyle
	}
	return highlighting.NewHighlighting(
		highlighting.WithStyle(style),
		highlighting.WithFormatOptions(
			chromahtml.WithClasses(true),
		),
		highlighting.WithWrapperRenderer(codehiliteWrapper),
	)
}

// codehiliteWrapper wraps highlighted blocks in <div class="codehilite">,
// keeping the fence language as a language-X class.
func codehiliteWrapper(w util.BufWriter, ctx highlighting.CodeBlockContext, entering bool) {
	if !entering {
		_, _ = w.WriteString("</div>\n")
		return
	}
	_, _ = w.WriteString(`<div class="codehilite`)
	if lang, ok := ctx.Language(); ok && len(lang) > 0 {
		_, _ = w.WriteString(" language-")
		_, _ = w.Write(util.EscapeHTML(lang))
	}
	_, _ = w.WriteString(`">`)
}

// ValidateHighlightStyle returns ErrUnknownHighlightStyle for names chroma
// does not register. An empty name means the default style.
func ValidateHighlightStyle(name string) error {
	if name == "" {
		return nil
	}
	if _, ok := styles.Registry[name]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownHighlightStyle, name)
	}
	return nil
}

// HighlightStyles returns the registered chroma style names, sorted.
func HighlightStyles() []string {
	names := make([]string, 0, len(styles.Registry))
	for name := range styles.Registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// WriteHighlightCSS writes the stylesheet matching class-based highlighting
// for the named chroma style.
func WriteHighlightCSS(w io.Writer, name string) error {
	if err := ValidateHighlightStyle(name); err != nil {
		return err
	}
	if name == "" {
		name = DefaultHighlightStyle
	}
	formatter := chromahtml.New(chromahtml.WithClasses(true))
	if err := formatter.WriteCSS(w, styles.Get(name)); err != nil {
		return fmt.Errorf("writing highlight CSS: %w", err)
	}
	return nil
}
