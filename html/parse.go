// Package html implements the HTML side of the extraction pipeline: tolerant
// parsing, partitioning a document into size-bounded chunks, and the
// depth-first walker that classifies nodes into text, table, and image
// segments. The walker is pure: it describes artifacts without storing them.
package html

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Parse parses raw HTML into a node tree. Parsing is best-effort: malformed
// fragments degrade to text or empty nodes rather than failing, matching
// html.Parse semantics.
func Parse(raw string) (*html.Node, error) {
	return html.Parse(strings.NewReader(raw))
}

// Body returns the body element of a parsed document, or the document itself
// if no body exists (html.Parse synthesizes one for any input, so the
// fallback only matters for hand-built trees).
func Body(doc *html.Node) *html.Node {
	if n := findElement(doc, atom.Body); n != nil {
		return n
	}
	return doc
}

func findElement(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, a); found != nil {
			return found
		}
	}
	return nil
}

func attrVal(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
