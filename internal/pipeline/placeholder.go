package pipeline

import (
	"strings"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

// TOCPlaceholder marks where the table of contents is spliced into the body.
const TOCPlaceholder = "<!-- TOC -->"

// Goldmark's safe mode output for raw HTML blocks and inline raw HTML.
const (
	rawHTMLOmitted       = "<!-- raw HTML omitted -->\n"
	inlineRawHTMLOmitted = "<!-- raw HTML omitted -->"
)

// placeholderRenderer replaces Goldmark's raw HTML renderers. A block or
// inline comment that is exactly the TOC placeholder is always written
// through, so the marker survives safe mode. Everything else follows the
// Unsafe setting.
type placeholderRenderer struct {
	html.Config
}

// newPlaceholderRenderer creates the HTML block renderer.
func newPlaceholderRenderer() renderer.NodeRenderer {
	return &placeholderRenderer{Config: html.NewConfig()}
}

// SetOption receives the renderer options (html.WithUnsafe and friends).
func (r *placeholderRenderer) SetOption(name renderer.OptionName, value any) {
	r.Config.SetOption(name, value)
}

// RegisterFuncs implements renderer.NodeRenderer.
func (r *placeholderRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindHTMLBlock, r.renderHTMLBlock)
	reg.Register(ast.KindRawHTML, r.renderRawHTML)
}

func (r *placeholderRenderer) renderHTMLBlock(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*ast.HTMLBlock)
	placeholder := isTOCPlaceholder(n, source)

	if entering {
		switch {
		case placeholder:
			_, _ = w.WriteString(TOCPlaceholder + "\n")
		case r.Unsafe:
			lines := n.Lines()
			for i := 0; i < lines.Len(); i++ {
				line := lines.At(i)
				r.Writer.SecureWrite(w, line.Value(source))
			}
		default:
			_, _ = w.WriteString(rawHTMLOmitted)
		}
		return ast.WalkContinue, nil
	}

	if n.HasClosure() && !placeholder {
		if r.Unsafe {
			closure := n.ClosureLine
			r.Writer.SecureWrite(w, closure.Value(source))
		} else {
			_, _ = w.WriteString(rawHTMLOmitted)
		}
	}
	return ast.WalkContinue, nil
}

// isTOCPlaceholder reports whether the block holds nothing but the marker.
func isTOCPlaceholder(n *ast.HTMLBlock, source []byte) bool {
	var b strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		b.Write(line.Value(source))
	}
	if n.HasClosure() {
		b.Write(n.ClosureLine.Value(source))
	}
	return strings.TrimSpace(b.String()) == TOCPlaceholder
}

func (r *placeholderRenderer) renderRawHTML(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkSkipChildren, nil
	}

	n := node.(*ast.RawHTML)
	var raw []byte
	for i := 0; i < n.Segments.Len(); i++ {
		segment := n.Segments.At(i)
		raw = append(raw, segment.Value(source)...)
	}

	switch {
	case string(raw) == TOCPlaceholder:
		_, _ = w.WriteString(TOCPlaceholder)
	case r.Unsafe:
		_, _ = w.Write(raw)
	default:
		_, _ = w.WriteString(inlineRawHTMLOmitted)
	}
	return ast.WalkSkipChildren, nil
}
