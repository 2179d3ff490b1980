// Package md2html converts a Markdown document into a standalone HTML page
// styled with Primer.
//
// # Quick Start
//
//	page, err := md2html.Translate("# Hello\n\n<!-- TOC -->\n\n## Usage\n")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(page)
//
// The first heading becomes the page title. Documents without a heading
// fail with ErrNoHeading.
//
// # Conversion Pipeline
//
//  1. Markdown preprocessing (line ending normalization, BOM removal)
//  2. Markdown to HTML via Goldmark, plus a nested-list TOC fragment
//  3. Title and TOC extraction from the fragment
//  4. Replacement of every <!-- TOC --> placeholder with the TOC
//  5. Page templating (title, stylesheets, body, copyright footer)
//
// # Configuration
//
// Use functional options to customize the converter:
//
//	conv, err := md2html.NewConverter(
//	    md2html.WithExtensions(md2html.DefaultExtensions()...),
//	    md2html.WithStylesheetMode(md2html.StylesheetCDN),
//	    md2html.WithHighlighting("monokai"),
//	    md2html.WithFooter(md2html.Footer{Owner: "Jane Doe", Year: "auto"}),
//	)
//	result, err := conv.Convert(ctx, md2html.Input{Markdown: content})
//
// Option errors are reported by NewConverter; IsConfigError separates them
// from conversion errors.
//
// # Extensions
//
// The default set is toc, fenced-code-blocks, tables, code-friendly and
// strike. footnotes is available on request. Without toc, placeholders
// are removed instead of replaced.
//
// # Raw HTML
//
// Raw HTML in the Markdown passes through to the page. WithRawHTML(false)
// replaces it with a comment, except for <!-- TOC --> placeholders, which
// are honoured on their own line and inside a paragraph.
package md2html
