package pipeline

import (
	"errors"
	"fmt"
	"html"
	"strings"
)

// ErrNoHeading indicates the TOC fragment has no link to take a title from,
// which happens when the document has no headings.
var ErrNoHeading = errors.New("document has no heading to use as title")

// BuildTOCFragment renders headings as a nested list. Deeper headings nest
// under the item before them, so the first heading becomes the root item
// and everything below it sits in that item's nested <ul>.
//
//	<ul>
//	<li><a href="#hello">Hello</a>
//	<ul>
//	<li><a href="#sub">Sub</a></li>
//	</ul></li>
//	</ul>
//
// Lines carry no indentation, so any nested list reads cleanly once spliced.
// Links inside a heading are reduced to their text, since links cannot nest.
// Returns "" when there are no headings.
func BuildTOCFragment(headings []Heading) string {
	if len(headings) == 0 {
		return ""
	}

	var lines []string
	stack := []int{0} // open list levels, 0 is the sentinel
	closeItem := func() {
		last := len(lines) - 1
		if !strings.HasSuffix(lines[last], "</li>") {
			lines[last] += "</li>"
		}
	}

	for _, h := range headings {
		top := stack[len(stack)-1]
		switch {
		case h.Level > top:
			lines = append(lines, "<ul>")
			stack = append(stack, h.Level)
		case h.Level == top:
			closeItem()
		default:
			// Close lists until the heading fits as a sibling. A heading
			// shallower than every open list joins the outermost one.
			for len(stack) > 2 && h.Level <= stack[len(stack)-2] {
				stack = stack[:len(stack)-1]
				closeItem()
				lines = append(lines, "</ul></li>")
			}
			closeItem()
			stack[len(stack)-1] = h.Level
		}
		lines = append(lines, fmt.Sprintf(`<li><a href="#%s">%s</a>`,
			html.EscapeString(h.ID), unwrapLinks(h.HTML)))
	}

	for len(stack) > 1 {
		stack = stack[:len(stack)-1]
		closeItem()
		lines = append(lines, "</ul>")
	}

	return strings.Join(lines, "\n") + "\n"
}

// ExtractTOC reads the title and the usable TOC from a TOC fragment.
//
// The title is the text of the first link in document order, with runs of
// whitespace collapsed and the ends trimmed. The TOC is
// the markup of the first list nested inside the first list, which drops
// the root item (it repeats the title). A root without nested list yields
// an empty TOC. Returns ErrNoHeading if the fragment has no link.
func ExtractTOC(fragment string) (title, toc string, err error) {
	root, err := parseFragment(fragment)
	if err != nil {
		return "", "", fmt.Errorf("parsing TOC fragment: %w", err)
	}

	link := findElement(root, "a")
	if link == nil {
		return "", "", ErrNoHeading
	}
	title = strings.Join(strings.Fields(textContent(link)), " ")

	outer := findElement(root, "ul")
	if outer == nil {
		return title, "", nil
	}
	nested := findDescendant(outer, "ul")
	if nested == nil {
		return title, "", nil
	}

	toc, err = renderNode(nested)
	if err != nil {
		return "", "", fmt.Errorf("rendering TOC: %w", err)
	}
	return title, toc, nil
}

// SpliceTOC replaces every TOC placeholder in body with toc.
func SpliceTOC(body, toc string) string {
	return strings.ReplaceAll(body, TOCPlaceholder, toc)
}
