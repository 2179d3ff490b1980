package md2html

// Notes:
// - Converter.Convert is tested twice: with mocked pipeline stages to check
//   data flow and error handling, and end to end with the real stages to
//   check the page properties users rely on.
// - Internal test options (withHTMLConverter, withPageRenderer) inject mocks.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alnah/go-md2html/internal/pipeline"
)

// ---------------------------------------------------------------------------
// Mock Implementations
// ---------------------------------------------------------------------------

type mockHTMLConverter struct {
	input    string
	rendered *pipeline.Rendered
	err      error
	panic    bool
}

func (m *mockHTMLConverter) ToHTML(ctx context.Context, content string) (*pipeline.Rendered, error) {
	m.input = content
	if m.panic {
		panic("boom")
	}
	if m.err != nil {
		return nil, m.err
	}
	return m.rendered, nil
}

type mockPageRenderer struct {
	data *pipeline.PageData
	err  error
}

func (m *mockPageRenderer) RenderPage(ctx context.Context, data *pipeline.PageData) (string, error) {
	m.data = data
	if m.err != nil {
		return "", m.err
	}
	return "<page>" + string(data.Body) + "</page>", nil
}

func withHTMLConverter(h pipeline.HTMLConverter) Option {
	return func(c *Converter) { c.htmlConverter = h }
}

func withPageRenderer(p pipeline.PageRenderer) Option {
	return func(c *Converter) { c.pageRenderer = p }
}

// renderedDoc is a "# Title / ## Sub" document as the HTML stage sees it.
func renderedDoc() *pipeline.Rendered {
	headings := []pipeline.Heading{
		{Level: 1, ID: "title", HTML: "Title"},
		{Level: 2, ID: "sub", HTML: "Sub"},
	}
	return &pipeline.Rendered{
		Body:     "<h1 id=\"title\">Title</h1>\n<!-- TOC -->\n<h2 id=\"sub\">Sub</h2>\n",
		TOC:      pipeline.BuildTOCFragment(headings),
		Headings: headings,
	}
}

// ---------------------------------------------------------------------------
// TestConverter_Convert - Data flow with mocked stages
// ---------------------------------------------------------------------------

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("passes preprocessed markdown and page data", func(t *testing.T) {
		t.Parallel()

		htmlConv := &mockHTMLConverter{rendered: renderedDoc()}
		page := &mockPageRenderer{}
		conv, err := NewConverter(withHTMLConverter(htmlConv), withPageRenderer(page))
		if err != nil {
			t.Fatalf("NewConverter() unexpected error: %v", err)
		}

		result, err := conv.Convert(context.Background(), Input{Markdown: "# Title\r\n"})
		if err != nil {
			t.Fatalf("Convert() unexpected error: %v", err)
		}

		if htmlConv.input != "# Title\n" {
			t.Errorf("HTML stage input = %q, want normalized line endings", htmlConv.input)
		}
		if page.data.Title != "Title" {
			t.Errorf("Title = %q, want %q", page.data.Title, "Title")
		}
		if page.data.PageStylesheet != LocalPrimerHref || page.data.HighlightStylesheet != PygmentsHref {
			t.Errorf("stylesheets = %q, %q", page.data.PageStylesheet, page.data.HighlightStylesheet)
		}
		if page.data.Footer != (pipeline.PageFooter{Owner: "Kevin McAreavey", Year: "2024"}) {
			t.Errorf("Footer = %+v", page.data.Footer)
		}
		if strings.Contains(string(page.data.Body), pipeline.TOCPlaceholder) {
			t.Error("placeholder should be replaced before templating")
		}
		if !strings.Contains(string(page.data.Body), `<a href="#sub">Sub</a>`) {
			t.Errorf("body should contain the TOC, got %s", page.data.Body)
		}
		if result.Title != "Title" {
			t.Errorf("result.Title = %q", result.Title)
		}
		if !strings.HasPrefix(string(result.HTML), "<page>") {
			t.Errorf("result.HTML = %q, want the rendered page", result.HTML)
		}
	})

	t.Run("toc disabled removes placeholder", func(t *testing.T) {
		t.Parallel()

		page := &mockPageRenderer{}
		conv, err := NewConverter(
			WithExtensions(ExtTables),
			withHTMLConverter(&mockHTMLConverter{rendered: renderedDoc()}),
			withPageRenderer(page),
		)
		if err != nil {
			t.Fatalf("NewConverter() unexpected error: %v", err)
		}

		result, err := conv.Convert(context.Background(), Input{Markdown: "x"})
		if err != nil {
			t.Fatalf("Convert() unexpected error: %v", err)
		}
		body := string(page.data.Body)
		if strings.Contains(body, pipeline.TOCPlaceholder) || strings.Contains(body, "<ul>") {
			t.Errorf("body should have neither placeholder nor TOC, got %s", body)
		}
		if result.TOC != "" {
			t.Errorf("result.TOC = %q, want empty", result.TOC)
		}
		if result.Title != "Title" {
			t.Errorf("title should still be extracted, got %q", result.Title)
		}
	})

	t.Run("html stage error is wrapped", func(t *testing.T) {
		t.Parallel()

		conv, err := NewConverter(withHTMLConverter(&mockHTMLConverter{err: ErrHTMLConversion}))
		if err != nil {
			t.Fatalf("NewConverter() unexpected error: %v", err)
		}

		_, err = conv.Convert(context.Background(), Input{Markdown: "# A"})
		if !errors.Is(err, ErrHTMLConversion) {
			t.Errorf("Convert() error = %v, want ErrHTMLConversion", err)
		}
	})

	t.Run("no heading", func(t *testing.T) {
		t.Parallel()

		conv, err := NewConverter(withHTMLConverter(&mockHTMLConverter{rendered: &pipeline.Rendered{Body: "<p>x</p>"}}))
		if err != nil {
			t.Fatalf("NewConverter() unexpected error: %v", err)
		}

		_, err = conv.Convert(context.Background(), Input{Markdown: "x"})
		if !errors.Is(err, ErrNoHeading) {
			t.Errorf("Convert() error = %v, want ErrNoHeading", err)
		}
	})

	t.Run("page render error is wrapped", func(t *testing.T) {
		t.Parallel()

		conv, err := NewConverter(
			withHTMLConverter(&mockHTMLConverter{rendered: renderedDoc()}),
			withPageRenderer(&mockPageRenderer{err: ErrTemplateRender}),
		)
		if err != nil {
			t.Fatalf("NewConverter() unexpected error: %v", err)
		}

		_, err = conv.Convert(context.Background(), Input{Markdown: "# Title"})
		if !errors.Is(err, ErrTemplateRender) {
			t.Errorf("Convert() error = %v, want ErrTemplateRender", err)
		}
	})

	t.Run("panic is recovered", func(t *testing.T) {
		t.Parallel()

		conv, err := NewConverter(withHTMLConverter(&mockHTMLConverter{panic: true}))
		if err != nil {
			t.Fatalf("NewConverter() unexpected error: %v", err)
		}

		_, err = conv.Convert(context.Background(), Input{Markdown: "# A"})
		if err == nil || !strings.Contains(err.Error(), "internal error") {
			t.Errorf("Convert() error = %v, want internal error", err)
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		conv, err := NewConverter()
		if err != nil {
			t.Fatalf("NewConverter() unexpected error: %v", err)
		}

		_, err = conv.Convert(ctx, Input{Markdown: "# A"})
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Convert() error = %v, want context.Canceled", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestNewConverter - Option validation
// ---------------------------------------------------------------------------

func TestNewConverter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		opts    []Option
		wantErr error
	}{
		{name: "defaults"},
		{name: "no extensions", opts: []Option{WithExtensions()}},
		{name: "all extensions", opts: []Option{WithExtensions(KnownExtensions()...)}},
		{name: "unknown extension", opts: []Option{WithExtensions("smarty")}, wantErr: ErrUnknownExtension},
		{name: "cdn mode", opts: []Option{WithStylesheetMode(StylesheetCDN)}},
		{name: "invalid mode", opts: []Option{WithStylesheetMode("inline")}, wantErr: ErrInvalidStylesheetMode},
		{name: "highlighting default style", opts: []Option{WithHighlighting("")}},
		{name: "unknown highlight style", opts: []Option{WithHighlighting("nope")}, wantErr: ErrUnknownHighlightStyle},
		{name: "auto footer year", opts: []Option{WithFooter(Footer{Owner: "A", Year: "auto"})}},
		{name: "invalid footer year", opts: []Option{WithFooter(Footer{Owner: "A", Year: "auto:"})}, wantErr: ErrInvalidFooterYear},
		{name: "missing asset path", opts: []Option{WithAssetPath("/nonexistent/md2html/assets")}, wantErr: ErrInvalidAssetPath},
		{name: "unknown template", opts: []Option{WithTemplate("nope")}, wantErr: ErrTemplateNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			conv, err := NewConverter(tt.opts...)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("NewConverter() error = %v, want %v", err, tt.wantErr)
				}
				if !IsConfigError(err) {
					t.Errorf("IsConfigError(%v) = false, want true", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewConverter() unexpected error: %v", err)
			}
			if conv == nil {
				t.Fatal("NewConverter() returned nil converter")
			}
		})
	}
}

func TestConverter_Stylesheets(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts []Option
		want Stylesheets
	}{
		{
			name: "local",
			want: Stylesheets{Page: "primer.css", Highlight: "pygments.css"},
		},
		{
			name: "cdn",
			opts: []Option{WithStylesheetMode(StylesheetCDN)},
			want: Stylesheets{Page: PrimerCDNURL, Highlight: "pygments.css"},
		},
		{
			name: "explicit highlight keeps mode page",
			opts: []Option{WithStylesheetMode(StylesheetCDN), WithStylesheets(Stylesheets{Highlight: "css/code.css"})},
			want: Stylesheets{Page: PrimerCDNURL, Highlight: "css/code.css"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			conv, err := NewConverter(tt.opts...)
			if err != nil {
				t.Fatalf("NewConverter() unexpected error: %v", err)
			}
			if got := conv.Stylesheets(); got != tt.want {
				t.Errorf("Stylesheets() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestTranslate - End-to-end page properties
// ---------------------------------------------------------------------------

const helloDoc = "# Hello\n\n<!-- TOC -->\n\n## Sub\n\ntext\n"

func TestTranslate(t *testing.T) {
	t.Parallel()

	got, err := Translate(helloDoc)
	if err != nil {
		t.Fatalf("Translate() unexpected error: %v", err)
	}

	if !strings.HasPrefix(got, "<!DOCTYPE html>") {
		t.Errorf("page should start with doctype, got %q", got[:min(len(got), 40)])
	}
	if n := strings.Count(got, "<title>Hello</title>"); n != 1 {
		t.Errorf("found %d <title>Hello</title>, want 1", n)
	}
	if strings.Contains(got, "<!-- TOC -->") {
		t.Error("placeholder should be replaced")
	}

	for _, want := range []string{
		`<link rel="stylesheet" href="primer.css">`,
		`<link rel="stylesheet" href="pygments.css">`,
		`<div class="container-lg p-4">`,
		`<div class="col-12">`,
		`<div class="markdown-body border rounded-3 p-6">`,
		`<h1 id="hello">Hello</h1>`,
		`<h2 id="sub">Sub</h2>`,
		`<a href="#sub">Sub</a>`,
		`<footer class="p-6 mt-4">`,
		`<p class="text-center">Copyright &copy; <strong>Kevin McAreavey</strong> 2024</p>`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("page should contain %q\ngot:\n%s", want, got)
		}
	}

	tocAt := strings.Index(got, `<a href="#sub">`)
	subAt := strings.Index(got, `<h2 id="sub">`)
	if tocAt < 0 || tocAt > subAt {
		t.Error("TOC should be spliced where the placeholder was, before the Sub heading")
	}
	if strings.Contains(got, `<a href="#hello">`) {
		t.Error("TOC should not link the title heading")
	}
}

func TestTranslate_Idempotent(t *testing.T) {
	t.Parallel()

	first, err := Translate(helloDoc)
	if err != nil {
		t.Fatalf("Translate() unexpected error: %v", err)
	}
	second, err := Translate(helloDoc)
	if err != nil {
		t.Fatalf("Translate() unexpected error: %v", err)
	}
	if first != second {
		t.Error("same input should produce identical output")
	}
}

func TestTranslate_Errors(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "just a paragraph\n", "| a |\n|---|\n| 1 |\n"} {
		if _, err := Translate(input); !errors.Is(err, ErrNoHeading) {
			t.Errorf("Translate(%q) error = %v, want ErrNoHeading", input, err)
		}
	}
}

func TestTranslate_TitleEscaped(t *testing.T) {
	t.Parallel()

	got, err := Translate("# Fish & Chips < 3\n")
	if err != nil {
		t.Fatalf("Translate() unexpected error: %v", err)
	}
	if !strings.Contains(got, "<title>Fish &amp; Chips &lt; 3</title>") {
		t.Errorf("title should be escaped, got:\n%s", got)
	}
}

func TestTranslate_TitleFromHeadingMarkup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		wantTitle string
		wantNot   []string
	}{
		{
			name:      "link in heading",
			input:     "# [Link](http://x) title\n\n<!-- TOC -->\n\n## Sub\n",
			wantTitle: "<title>Link title</title>",
			wantNot:   []string{"<title></title>"},
		},
		{
			name:      "link in sub heading",
			input:     "# T\n\n<!-- TOC -->\n\n## See [docs](http://y)\n",
			wantTitle: "<title>T</title>",
			wantNot:   []string{`<a href="#see-docs">See </a>`},
		},
		{
			name:      "raw html in heading",
			input:     "# A & B <x>\n",
			wantTitle: "<title>A &amp; B</title>",
			wantNot:   []string{"<title>A &amp; B </title>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Translate(tt.input)
			if err != nil {
				t.Fatalf("Translate() unexpected error: %v", err)
			}
			if !strings.Contains(got, tt.wantTitle) {
				t.Errorf("page should contain %q\ngot:\n%s", tt.wantTitle, got)
			}
			for _, notWant := range tt.wantNot {
				if strings.Contains(got, notWant) {
					t.Errorf("page should not contain %q", notWant)
				}
			}
		})
	}
}

func TestTranslate_SplicedTOCNotIndented(t *testing.T) {
	t.Parallel()

	got, err := Translate("# T\n\n<!-- TOC -->\n\n## A\n\n### B\n\n## C\n")
	if err != nil {
		t.Fatalf("Translate() unexpected error: %v", err)
	}
	start := strings.Index(got, `<ul>`)
	end := strings.LastIndex(got, `</ul>`)
	if start < 0 || end < start {
		t.Fatalf("page should contain a TOC list, got:\n%s", got)
	}
	for _, line := range strings.Split(got[start:end], "\n") {
		if strings.HasPrefix(line, " ") {
			t.Errorf("TOC line %q should not be indented", line)
		}
	}
}

func TestTranslate_SingleHeadingHasEmptyTOC(t *testing.T) {
	t.Parallel()

	got, err := Translate("# Only\n\n<!-- TOC -->\n\nbody\n")
	if err != nil {
		t.Fatalf("Translate() unexpected error: %v", err)
	}
	if strings.Contains(got, "<!-- TOC -->") || strings.Contains(got, "<ul>") {
		t.Errorf("placeholder should be replaced by nothing, got:\n%s", got)
	}
}

// ---------------------------------------------------------------------------
// TestConverter_Options - Options observable in the page
// ---------------------------------------------------------------------------

func TestConverter_Options(t *testing.T) {
	t.Parallel()

	fixed := func() time.Time { return time.Date(2031, 1, 2, 0, 0, 0, 0, time.UTC) }

	tests := []struct {
		name         string
		opts         []Option
		input        string
		wantContains []string
		wantNot      []string
	}{
		{
			name:         "cdn stylesheet",
			opts:         []Option{WithStylesheetMode(StylesheetCDN)},
			input:        "# A\n",
			wantContains: []string{`href="` + PrimerCDNURL + `"`, `href="pygments.css"`},
		},
		{
			name:         "auto footer year",
			opts:         []Option{WithFooter(Footer{Owner: "Jane", Year: "auto"}), WithClock(fixed)},
			input:        "# A\n",
			wantContains: []string{"<strong>Jane</strong> 2031"},
		},
		{
			name:         "raw html passes by default",
			input:        "# A\n\n<div class=\"note\">hi</div>\n",
			wantContains: []string{`<div class="note">hi</div>`},
			wantNot:      []string{"raw HTML omitted"},
		},
		{
			name:         "raw html omitted on request",
			opts:         []Option{WithRawHTML(false)},
			input:        "# A\n\n<div class=\"note\">hi</div>\n",
			wantNot:      []string{`<div class="note">`},
			wantContains: []string{"<!-- raw HTML omitted -->"},
		},
		{
			name:         "inline placeholder spliced",
			input:        "# T\n\nsee <!-- TOC --> here\n\n## A\n",
			wantContains: []string{`<a href="#a">A</a>`, "</ul> here"},
			wantNot:      []string{"<!-- TOC -->", "raw HTML omitted"},
		},
		{
			name:         "inline placeholder spliced in safe mode",
			opts:         []Option{WithRawHTML(false)},
			input:        "# T\n\nsee <!-- TOC --> and <span>x</span>\n\n## A\n",
			wantContains: []string{`<a href="#a">A</a>`, "<!-- raw HTML omitted -->"},
			wantNot:      []string{"<!-- TOC -->", "<span>"},
		},
		{
			name:         "highlighting",
			opts:         []Option{WithHighlighting("github")},
			input:        "# A\n\n```go\nfunc main() {}\n```\n",
			wantContains: []string{`<div class="codehilite language-go">`},
		},
		{
			name:         "footnotes",
			opts:         []Option{WithExtensions(append(DefaultExtensions(), ExtFootnotes)...)},
			input:        "# A\n\nText[^1].\n\n[^1]: Note.\n",
			wantContains: []string{"footnote"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			conv, err := NewConverter(tt.opts...)
			if err != nil {
				t.Fatalf("NewConverter() unexpected error: %v", err)
			}
			result, err := conv.Convert(context.Background(), Input{Markdown: tt.input})
			if err != nil {
				t.Fatalf("Convert() unexpected error: %v", err)
			}

			got := string(result.HTML)
			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("page should contain %q\ngot:\n%s", want, got)
				}
			}
			for _, notWant := range tt.wantNot {
				if strings.Contains(got, notWant) {
					t.Errorf("page should not contain %q", notWant)
				}
			}
		})
	}
}

func TestConverter_CustomTemplate(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	tmplDir := filepath.Join(dir, "templates")
	if err := os.MkdirAll(tmplDir, 0o755); err != nil {
		t.Fatalf("setup: %v", err)
	}
	custom := "<html><title>{{.Title}}</title>{{.Body}}</html>"
	if err := os.WriteFile(filepath.Join(tmplDir, "page.html"), []byte(custom), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	conv, err := NewConverter(WithAssetPath(dir))
	if err != nil {
		t.Fatalf("NewConverter() unexpected error: %v", err)
	}
	result, err := conv.Convert(context.Background(), Input{Markdown: "# Custom\n"})
	if err != nil {
		t.Fatalf("Convert() unexpected error: %v", err)
	}

	want := "<html><title>Custom</title><h1 id=\"custom\">Custom</h1>\n</html>"
	if string(result.HTML) != want {
		t.Errorf("Convert() =\n%s\nwant:\n%s", result.HTML, want)
	}
}

func TestConverter_InvalidCustomTemplate(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	tmplDir := filepath.Join(dir, "templates")
	if err := os.MkdirAll(tmplDir, 0o755); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := os.WriteFile(filepath.Join(tmplDir, "page.html"), []byte("{{.Title"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	_, err := NewConverter(WithAssetPath(dir))
	if !errors.Is(err, ErrInvalidTemplate) {
		t.Errorf("NewConverter() error = %v, want ErrInvalidTemplate", err)
	}
}
