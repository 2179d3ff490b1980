package pipeline

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// parseFragment parses an HTML fragment in body context and hangs the
// resulting nodes under a document node for uniform traversal.
func parseFragment(content string) (*html.Node, error) {
	context := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	nodes, err := html.ParseFragment(strings.NewReader(content), context)
	if err != nil {
		return nil, err
	}

	container := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		container.AppendChild(n)
	}
	return container, nil
}

// findElement returns the first element named tag in depth-first order,
// n itself included.
func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	return findDescendant(n, tag)
}

// findDescendant is findElement excluding n itself.
func findDescendant(n *html.Node, tag string) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

// textContent concatenates all text below n.
func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

// renderNode renders n and its subtree back to markup.
func renderNode(n *html.Node) (string, error) {
	var buf strings.Builder
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// unwrapLinks replaces every <a> element in an inline fragment with its
// children. The fragment is returned unchanged if it has no link or cannot
// be parsed.
func unwrapLinks(fragment string) string {
	if !strings.Contains(fragment, "<a") {
		return fragment
	}
	root, err := parseFragment(fragment)
	if err != nil {
		return fragment
	}
	unwrapElements(root, "a")

	var b strings.Builder
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&b, c); err != nil {
			return fragment
		}
	}
	return b.String()
}

// unwrapElements hoists the children of every element named tag below n
// into its place.
func unwrapElements(n *html.Node, tag string) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		unwrapElements(c, tag)
		if c.Type == html.ElementNode && c.Data == tag {
			for gc := c.FirstChild; gc != nil; {
				gcNext := gc.NextSibling
				c.RemoveChild(gc)
				n.InsertBefore(gc, c)
				gc = gcNext
			}
			n.RemoveChild(c)
		}
		c = next
	}
}
