package pagescan

import (
	"regexp"
	"strings"
)

var (
	doctypeRe = regexp.MustCompile(`(?i)^\s*<!doctype[^>]*>`)
	markerRe  = regexp.MustCompile(`\s*(\[(?:IMAGE|TABLE):)`)
	blankRe   = regexp.MustCompile(`\n(?:\s*\n)+`)
)

// entityReplacer decodes the five standard HTML entities in a single
// left-to-right pass.
var entityReplacer = strings.NewReplacer(
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#39;", "'",
	"&apos;", "'",
)

// Sanitize normalizes entity-encoded and whitespace-irregular text into a
// canonical plain-text form safe for the text processor. It is pure and
// deterministic.
//
// The transformation order matters: entity decoding runs before marker
// normalization, so every marker ends up at the start of its own line, and
// blank-line collapsing runs last so inserted newlines never stack.
func Sanitize(text string) string {
	text = doctypeRe.ReplaceAllString(text, "")
	text = strings.ReplaceAll(text, "\u00a0", " ")
	text = strings.ReplaceAll(text, "&nbsp;", " ")
	text = entityReplacer.Replace(text)

	// A marker never appears mid-line: strip whatever whitespace preceded it
	// and force a line break.
	text = markerRe.ReplaceAllString(text, "\n$1")

	text = blankRe.ReplaceAllString(text, "\n")
	return text
}
