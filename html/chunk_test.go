package html_test

import (
	"bytes"
	"strings"
	"testing"

	pagehtml "github.com/fwojciec/pagescan/html"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

// renderChildren serializes a node's children in order.
func renderChildren(t *testing.T, n *html.Node) string {
	t.Helper()

	var buf bytes.Buffer
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		require.NoError(t, html.Render(&buf, c))
	}
	return buf.String()
}

func mustParse(t *testing.T, raw string) *html.Node {
	t.Helper()

	doc, err := pagehtml.Parse(raw)
	require.NoError(t, err)
	return doc
}

func TestChunk_ConcatenationReproducesDocumentOrder(t *testing.T) {
	t.Parallel()

	raw := "<p>one</p><div><span>two</span></div><p>three</p><ul><li>four</li></ul><p>five</p>"
	doc := mustParse(t, raw)
	original := renderChildren(t, pagehtml.Body(doc))

	chunks, err := pagehtml.Chunk(doc, 40)
	require.NoError(t, err)

	var concatenated strings.Builder
	for _, chunk := range chunks {
		concatenated.WriteString(renderChildren(t, chunk))
	}

	assert.Equal(t, original, concatenated.String())
}

func TestChunk_FiveSmallParagraphs(t *testing.T) {
	t.Parallel()

	// Each paragraph serializes to exactly 30 bytes.
	para := "<p>" + strings.Repeat("a", 23) + "</p>"
	doc := mustParse(t, strings.Repeat(para, 5))

	chunks, err := pagehtml.Chunk(doc, 100)
	require.NoError(t, err)

	var nonEmpty []*html.Node
	for _, chunk := range chunks {
		if chunk.FirstChild != nil {
			nonEmpty = append(nonEmpty, chunk)
		}
	}

	// 5 x 30 = 150 > 100, so at least two chunks; no accumulated chunk
	// exceeds the bound.
	require.Len(t, nonEmpty, 2)
	assert.Len(t, childSlice(nonEmpty[0]), 3)
	assert.Len(t, childSlice(nonEmpty[1]), 2)
	for _, chunk := range nonEmpty {
		assert.LessOrEqual(t, len(renderChildren(t, chunk)), 100)
	}
}

func TestChunk_OversizedNodeBecomesOwnChunk(t *testing.T) {
	t.Parallel()

	big := "<div>" + strings.Repeat("x", 200) + "</div>"
	raw := "<p>before</p>" + big + "<p>after</p>"
	doc := mustParse(t, raw)

	chunks, err := pagehtml.Chunk(doc, 100)
	require.NoError(t, err)

	var nonEmpty []*html.Node
	for _, chunk := range chunks {
		if chunk.FirstChild != nil {
			nonEmpty = append(nonEmpty, chunk)
		}
	}

	// The accumulator is flushed before the oversized node is emitted, so
	// document order survives even though the bound is exceeded.
	require.Len(t, nonEmpty, 3)
	assert.Equal(t, "<p>before</p>", renderChildren(t, nonEmpty[0]))
	assert.Equal(t, big, renderChildren(t, nonEmpty[1]))
	assert.Equal(t, "<p>after</p>", renderChildren(t, nonEmpty[2]))
	assert.Greater(t, len(renderChildren(t, nonEmpty[1])), 100)
}

func TestChunk_EmptyDocumentYieldsEmptySeed(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, "")

	chunks, err := pagehtml.Chunk(doc, 100)
	require.NoError(t, err)

	// The synthetic seed container comes back empty; filtering it out is
	// the caller's job.
	require.Len(t, chunks, 1)
	assert.Nil(t, chunks[0].FirstChild)
}

func TestChunk_DoesNotMutateSource(t *testing.T) {
	t.Parallel()

	raw := "<p>one</p><p>two</p><p>three</p>"
	doc := mustParse(t, raw)
	before := renderChildren(t, pagehtml.Body(doc))

	_, err := pagehtml.Chunk(doc, 10)
	require.NoError(t, err)

	assert.Equal(t, before, renderChildren(t, pagehtml.Body(doc)))
}

func childSlice(n *html.Node) []*html.Node {
	var children []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		children = append(children, c)
	}
	return children
}
