package html

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// SegmentKind classifies a walker output segment.
type SegmentKind int

// SegmentKind constants.
const (
	SegmentText SegmentKind = iota
	SegmentTable
	SegmentImage
)

// Segment is one unit of walker output, in document order. Text segments
// carry the trimmed text content (possibly empty), table segments carry the
// table rendered as comma-joined rows, and image segments carry the raw src
// attribute as written in the markup.
type Segment struct {
	Kind SegmentKind
	Text string
	Src  string
}

// Walk traverses the subtree rooted at n depth-first and returns its content
// segments in document order. Classification priority: table, image, text,
// script/style (skipped with all descendants), then recursion into other
// elements. Walk has no side effects; resolving image URLs and storing
// artifacts happen elsewhere.
func Walk(n *html.Node) []Segment {
	var segs []Segment
	walk(n, &segs)
	return segs
}

func walk(n *html.Node, segs *[]Segment) {
	switch {
	case n.Type == html.ElementNode && n.DataAtom == atom.Table:
		*segs = append(*segs, Segment{Kind: SegmentTable, Text: renderTable(n)})

	case n.Type == html.ElementNode && n.DataAtom == atom.Img:
		// An img without src has nothing to fetch and contributes nothing.
		if src := attrVal(n, "src"); src != "" {
			*segs = append(*segs, Segment{Kind: SegmentImage, Src: src})
		}

	case n.Type == html.TextNode:
		// Text that trims to empty still emits an empty line downstream;
		// this is intentional pass-through, not filtering.
		*segs = append(*segs, Segment{Kind: SegmentText, Text: strings.TrimSpace(n.Data)})

	case n.Type == html.ElementNode && (n.DataAtom == atom.Script || n.DataAtom == atom.Style):
		// Skipped entirely, descendants included.

	default:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c, segs)
		}
	}
}

var cellNewlineRe = regexp.MustCompile(`[ \t]*\n[ \t]*`)

// renderTable flattens a table to newline-separated rows of comma-joined
// cell texts. Cell text is trimmed and embedded newlines collapse to single
// spaces, so the rendering is stable under source-markup whitespace.
func renderTable(n *html.Node) string {
	doc := goquery.NewDocumentFromNode(n)

	var rows []string
	doc.Find("tr").Each(func(_ int, row *goquery.Selection) {
		var cells []string
		row.Find("th, td").Each(func(_ int, cell *goquery.Selection) {
			var b strings.Builder
			for _, cn := range cell.Nodes {
				cellText(cn, &b)
			}
			text := strings.TrimSpace(b.String())
			text = cellNewlineRe.ReplaceAllString(text, " ")
			cells = append(cells, text)
		})
		rows = append(rows, strings.Join(cells, ","))
	})

	return strings.Join(rows, "\n")
}

// cellText collects the text content of a cell's subtree. Script and style
// elements are excluded with all their descendants, same as in the walker's
// own dispatch; tables short-circuit it, so the exclusion repeats here.
func cellText(n *html.Node, b *strings.Builder) {
	if n.Type == html.ElementNode && (n.DataAtom == atom.Script || n.DataAtom == atom.Style) {
		return
	}
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		cellText(c, b)
	}
}
