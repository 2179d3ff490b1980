package md2html

import (
	"fmt"
	"strings"
)

// Extension names a Markdown feature of the renderer.
type Extension string

// Supported extensions.
const (
	// ExtTOC replaces every <!-- TOC --> placeholder with the table of contents.
	// Without it, placeholders are removed.
	ExtTOC Extension = "toc"
	// ExtFencedCode enables ``` and ~~~ code blocks.
	ExtFencedCode Extension = "fenced-code-blocks"
	// ExtTables enables pipe tables.
	ExtTables Extension = "tables"
	// ExtCodeFriendly stops underscores from producing emphasis.
	ExtCodeFriendly Extension = "code-friendly"
	// ExtStrike renders ~~text~~ as <del>.
	ExtStrike Extension = "strike"
	// ExtFootnotes enables [^1] footnotes.
	ExtFootnotes Extension = "footnotes"
)

// DefaultExtensions returns the extension set used when none is configured.
func DefaultExtensions() []Extension {
	return []Extension{ExtTOC, ExtFencedCode, ExtTables, ExtCodeFriendly, ExtStrike}
}

// KnownExtensions returns every supported extension.
func KnownExtensions() []Extension {
	return append(DefaultExtensions(), ExtFootnotes)
}

// ParseExtension converts a name to an Extension.
// Returns ErrUnknownExtension for unsupported names.
func ParseExtension(name string) (Extension, error) {
	ext := Extension(strings.TrimSpace(name))
	for _, known := range KnownExtensions() {
		if ext == known {
			return ext, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownExtension, name)
}

// ParseExtensions parses a list of extension names, ignoring blanks.
func ParseExtensions(names []string) ([]Extension, error) {
	exts := make([]Extension, 0, len(names))
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			continue
		}
		ext, err := ParseExtension(name)
		if err != nil {
			return nil, err
		}
		exts = append(exts, ext)
	}
	return exts, nil
}

// StylesheetMode selects where the page stylesheet is loaded from.
type StylesheetMode string

// Stylesheet modes.
const (
	// StylesheetLocal links primer.css next to the page.
	StylesheetLocal StylesheetMode = "local"
	// StylesheetCDN links a pinned Primer release from unpkg.
	StylesheetCDN StylesheetMode = "cdn"
)

// Stylesheet hrefs.
const (
	LocalPrimerHref = "primer.css"
	PygmentsHref    = "pygments.css"

	// PrimerCDNURL pins the exact 20.2.4 release rather than the ^20.2.4
	// semver range, so a page links the same stylesheet whenever it is
	// rendered.
	PrimerCDNURL = "https://unpkg.com/@primer/css@20.2.4/dist/primer.css"
)

// ParseStylesheetMode converts a case-insensitive name to a StylesheetMode.
// An empty name selects StylesheetLocal.
func ParseStylesheetMode(name string) (StylesheetMode, error) {
	switch StylesheetMode(strings.ToLower(strings.TrimSpace(name))) {
	case "", StylesheetLocal:
		return StylesheetLocal, nil
	case StylesheetCDN:
		return StylesheetCDN, nil
	}
	return "", fmt.Errorf("%w: %q (must be local or cdn)", ErrInvalidStylesheetMode, name)
}

// Stylesheets holds the two hrefs linked from the page head.
type Stylesheets struct {
	Page      string // Primer, or any page stylesheet
	Highlight string // Pygments-compatible code stylesheet
}

// Stylesheets returns the hrefs for the mode.
func (m StylesheetMode) Stylesheets() Stylesheets {
	if m == StylesheetCDN {
		return Stylesheets{Page: PrimerCDNURL, Highlight: PygmentsHref}
	}
	return Stylesheets{Page: LocalPrimerHref, Highlight: PygmentsHref}
}

// Footer configures the copyright line.
type Footer struct {
	Owner string
	// Year is printed verbatim, except "auto" (current year) and
	// "auto:FORMAT" (e.g. "auto:YYYY-MM"), resolved when the converter is built.
	Year string
}

// DefaultFooter returns the footer of the stock page.
func DefaultFooter() Footer {
	return Footer{Owner: "Kevin McAreavey", Year: "2024"}
}

// Input holds one conversion request.
type Input struct {
	Markdown string // Markdown source, read whole
}

// ConvertResult holds the output of a conversion.
type ConvertResult struct {
	HTML  []byte // complete page
	Title string // text of the first heading
	TOC   string // table of contents spliced into the body, may be empty
}
