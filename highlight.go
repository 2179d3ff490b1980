package md2html

import (
	"io"

	"github.com/alnah/go-md2html/internal/pipeline"
)

// DefaultHighlightStyle is the chroma style used when none is named.
const DefaultHighlightStyle = pipeline.DefaultHighlightStyle

// HighlightStyles returns the names accepted by WithHighlighting, sorted.
func HighlightStyles() []string {
	return pipeline.HighlightStyles()
}

// WriteHighlightCSS writes the stylesheet matching highlighted pages for the
// named chroma style, suitable for saving as pygments.css.
// Returns ErrUnknownHighlightStyle for unregistered names.
func WriteHighlightCSS(w io.Writer, style string) error {
	return pipeline.WriteHighlightCSS(w, style)
}

// ExtensionNames returns the names of all known extensions.
func ExtensionNames() []string {
	exts := KnownExtensions()
	names := make([]string, len(exts))
	for i, ext := range exts {
		names[i] = string(ext)
	}
	return names
}
