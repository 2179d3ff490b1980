package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
)

// ErrTemplateRender indicates the page template failed to execute.
var ErrTemplateRender = errors.New("page template rendering failed")

// PageFooter holds the copyright line of the page.
type PageFooter struct {
	Owner string
	Year  string
}

// PageData holds everything the page template interpolates.
type PageData struct {
	Title               string
	PageStylesheet      string
	HighlightStylesheet string
	Body                template.HTML
	Footer              PageFooter
}

// PageRenderer defines the contract for wrapping a body in a full page.
type PageRenderer interface {
	RenderPage(ctx context.Context, data *PageData) (string, error)
}

// PageTemplate renders pages from an html/template source.
type PageTemplate struct {
	tmpl *template.Template
}

// NewPageTemplate creates a PageTemplate from template content.
// Returns error if the template cannot be parsed.
func NewPageTemplate(tmplContent string) (*PageTemplate, error) {
	tmpl, err := template.New("page").Parse(tmplContent)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}
	return &PageTemplate{tmpl: tmpl}, nil
}

// RenderPage executes the template with data.
func (p *PageTemplate) RenderPage(ctx context.Context, data *PageData) (string, error) {
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	var buf bytes.Buffer
	if err := p.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrTemplateRender, err)
	}
	return buf.String(), nil
}
