package md2html

import (
	"errors"

	"github.com/alnah/go-md2html/internal/assets"
	"github.com/alnah/go-md2html/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	// ErrNoHeading indicates the document has no heading to take the title from.
	ErrNoHeading = pipeline.ErrNoHeading

	ErrHTMLConversion  = pipeline.ErrHTMLConversion
	ErrTemplateRender  = pipeline.ErrTemplateRender
	ErrInvalidTemplate = errors.New("invalid page template")

	// Asset loading errors.
	ErrTemplateNotFound = assets.ErrTemplateNotFound
	ErrInvalidAssetPath = errors.New("invalid asset path")

	// Option validation errors, reported by NewConverter.
	ErrUnknownExtension      = errors.New("unknown extension")
	ErrInvalidStylesheetMode = errors.New("invalid stylesheet mode")
	ErrUnknownHighlightStyle = pipeline.ErrUnknownHighlightStyle
	ErrInvalidFooterYear     = errors.New("invalid footer year")
)
