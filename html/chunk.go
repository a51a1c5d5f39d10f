package html

import (
	"bytes"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Chunk partitions a parsed document into an ordered sequence of container
// nodes, each holding copies of consecutive top-level body children whose
// combined serialized size stays within maxSize. A single child whose own
// markup exceeds maxSize becomes its own chunk; the bound is best-effort,
// not absolute. The source tree is never mutated.
//
// Concatenating the chunks' children in order reproduces the body's child
// order exactly. The final accumulator is always emitted, so the last chunk
// may be empty; callers skip chunks with no children.
func Chunk(doc *html.Node, maxSize int) ([]*html.Node, error) {
	body := Body(doc)

	var chunks []*html.Node
	acc := newContainer()
	size := 0

	for c := body.FirstChild; c != nil; c = c.NextSibling {
		n, err := renderedLen(c)
		if err != nil {
			return nil, err
		}

		if size+n > maxSize && size > 0 {
			chunks = append(chunks, acc)
			acc = newContainer()
			size = 0
		}

		if n > maxSize {
			// Oversized node: standalone chunk, accumulator untouched.
			standalone := newContainer()
			standalone.AppendChild(cloneTree(c))
			chunks = append(chunks, standalone)
			continue
		}

		acc.AppendChild(cloneTree(c))
		size += n
	}

	return append(chunks, acc), nil
}

func newContainer() *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
}

func renderedLen(n *html.Node) (int, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return 0, err
	}
	return buf.Len(), nil
}

// cloneTree deep-copies a node and its descendants without parent/sibling
// links, so the copy can be appended to a new container.
func cloneTree(n *html.Node) *html.Node {
	c := &html.Node{
		Type:      n.Type,
		DataAtom:  n.DataAtom,
		Data:      n.Data,
		Namespace: n.Namespace,
	}
	if len(n.Attr) > 0 {
		c.Attr = make([]html.Attribute, len(n.Attr))
		copy(c.Attr, n.Attr)
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		c.AppendChild(cloneTree(child))
	}
	return c
}
