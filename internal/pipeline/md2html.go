package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// ErrHTMLConversion indicates HTML conversion failed.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// MarkdownOptions selects the Markdown features Goldmark is built with.
type MarkdownOptions struct {
	FencedCode     bool   // ``` and ~~~ blocks
	Tables         bool   // pipe tables
	Strikethrough  bool   // ~~text~~
	CodeFriendly   bool   // underscores never emphasize
	Footnotes      bool   // [^1] footnotes
	RawHTML        bool   // pass raw HTML through instead of omitting it
	Highlight      bool   // chroma highlighting of fenced code
	HighlightStyle string // chroma style name, used with Highlight
}

// Heading is a document heading in source order.
type Heading struct {
	Level int    // 1-6
	ID    string // anchor ID generated by the parser
	HTML  string // rendered inline content
}

// Rendered is the output of the HTML stage.
type Rendered struct {
	Body     string    // HTML fragment, may contain TOCPlaceholder
	TOC      string    // nested list fragment, see BuildTOCFragment
	Headings []Heading // headings the TOC was built from
}

// HTMLConverter abstracts Markdown to HTML conversion.
type HTMLConverter interface {
	ToHTML(ctx context.Context, content string) (*Rendered, error)
}

// GoldmarkConverter converts Markdown to HTML using goldmark (pure Go).
type GoldmarkConverter struct {
	md goldmark.Markdown
}

// NewGoldmarkConverter creates a GoldmarkConverter for the given options.
func NewGoldmarkConverter(opts MarkdownOptions) *GoldmarkConverter {
	p := parser.NewParser(
		parser.WithBlockParsers(blockParsers(opts.FencedCode)...),
		parser.WithInlineParsers(parser.DefaultInlineParsers()...),
		parser.WithParagraphTransformers(parser.DefaultParagraphTransformers()...),
	)

	var extensions []goldmark.Extender
	if opts.Tables {
		extensions = append(extensions, extension.Table)
	}
	if opts.Strikethrough {
		extensions = append(extensions, extension.Strikethrough)
	}
	if opts.Footnotes {
		extensions = append(extensions, extension.Footnote)
	}
	if opts.Highlight {
		extensions = append(extensions, newHighlighting(opts.HighlightStyle))
	}

	parserOpts := []parser.Option{
		parser.WithAutoHeadingID(), // Generate IDs for headings (required for TOC)
	}
	if opts.CodeFriendly {
		parserOpts = append(parserOpts, parser.WithInlineParsers(
			util.Prioritized(newUnderscoreParser(), 100), // ahead of emphasis
		))
	}

	rendererOpts := []renderer.Option{
		html.WithXHTML(), // Self-closing tags
		renderer.WithNodeRenderers(
			util.Prioritized(newPlaceholderRenderer(), 100), // overrides the default HTML block renderer
		),
	}
	if opts.RawHTML {
		rendererOpts = append(rendererOpts, html.WithUnsafe())
	}

	// WithParser must come first: later options mutate the parser in place.
	md := goldmark.New(
		goldmark.WithParser(p),
		goldmark.WithExtensions(extensions...),
		goldmark.WithParserOptions(parserOpts...),
		goldmark.WithRendererOptions(rendererOpts...),
	)
	return &GoldmarkConverter{md: md}
}

// blockParsers returns Goldmark's block parsers, without the fenced code
// parser when fenced code is disabled.
func blockParsers(fenced bool) []util.PrioritizedValue {
	defaults := parser.DefaultBlockParsers()
	if fenced {
		return defaults
	}
	kept := make([]util.PrioritizedValue, 0, len(defaults))
	for _, v := range defaults {
		if bp, ok := v.Value.(parser.BlockParser); ok && bytes.IndexByte(bp.Trigger(), '`') >= 0 {
			continue
		}
		kept = append(kept, v)
	}
	return kept
}

// ToHTML converts Markdown content to an HTML fragment and its TOC fragment.
// Supports context cancellation via goroutine + select pattern since
// Goldmark doesn't natively support context.
func (c *GoldmarkConverter) ToHTML(ctx context.Context, content string) (*Rendered, error) {
	// Fast path: check context before starting
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	type result struct {
		rendered *Rendered
		err      error
	}

	done := make(chan result, 1)

	go func() {
		r, err := c.render([]byte(content))
		if err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrHTMLConversion, err)}
			return
		}
		done <- result{rendered: r}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-done:
		return r.rendered, r.err
	}
}

// render parses once and renders both the body and the heading list.
func (c *GoldmarkConverter) render(source []byte) (*Rendered, error) {
	doc := c.md.Parser().Parse(text.NewReader(source))

	var body bytes.Buffer
	if err := c.md.Renderer().Render(&body, source, doc); err != nil {
		return nil, err
	}

	headings, err := c.collectHeadings(doc, source)
	if err != nil {
		return nil, err
	}

	return &Rendered{
		Body:     body.String(),
		TOC:      BuildTOCFragment(headings),
		Headings: headings,
	}, nil
}

// collectHeadings walks the AST and renders the inline content of every
// heading, so emphasis and code survive into the TOC.
func (c *GoldmarkConverter) collectHeadings(doc ast.Node, source []byte) ([]Heading, error) {
	var headings []Heading
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}

		var inner bytes.Buffer
		for child := h.FirstChild(); child != nil; child = child.NextSibling() {
			if err := c.md.Renderer().Render(&inner, source, child); err != nil {
				return ast.WalkStop, err
			}
		}

		headings = append(headings, Heading{
			Level: h.Level,
			ID:    headingID(h),
			HTML:  strings.TrimSpace(inner.String()),
		})
		return ast.WalkSkipChildren, nil
	})
	return headings, err
}

// headingID reads the id attribute set by parser.WithAutoHeadingID.
func headingID(h *ast.Heading) string {
	v, ok := h.AttributeString("id")
	if !ok {
		return ""
	}
	switch id := v.(type) {
	case []byte:
		return string(id)
	case string:
		return id
	}
	return ""
}
