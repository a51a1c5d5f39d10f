package pagescan_test

import (
	"testing"

	"github.com/fwojciec/pagescan"
	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "strips leading doctype",
			input: "<!DOCTYPE html>Hello",
			want:  "Hello",
		},
		{
			name:  "strips leading doctype case-insensitively",
			input: "<!doctype HTML>Hello",
			want:  "Hello",
		},
		{
			name:  "keeps doctype-like text mid-document",
			input: "about <!DOCTYPE html> declarations",
			want:  "about <!DOCTYPE html> declarations",
		},
		{
			name:  "replaces non-breaking spaces",
			input: "a b&nbsp;c",
			want:  "a b c",
		},
		{
			name:  "decodes standard entities",
			input: "&lt;a&gt; &amp; &quot;b&quot; &#39;c&#39;",
			want:  `<a> & "b" 'c'`,
		},
		{
			name:  "moves marker to its own line",
			input: "intro [IMAGE:image_ab.jpg]\nmore",
			want:  "intro\n[IMAGE:image_ab.jpg]\nmore",
		},
		{
			name:  "strips whitespace before table marker",
			input: "row data   \t[TABLE:table_cd.txt]",
			want:  "row data\n[TABLE:table_cd.txt]",
		},
		{
			name:  "marker already at line start stays put",
			input: "intro\n[TABLE:table_cd.txt]",
			want:  "intro\n[TABLE:table_cd.txt]",
		},
		{
			name:  "collapses blank line runs",
			input: "a\n\n\nb\n \t\nc",
			want:  "a\nb\nc",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, pagescan.Sanitize(tt.input))
		})
	}
}

func TestSanitize_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"<!DOCTYPE html>Title\n\n\nBody text with spaces",
		"intro text [IMAGE:image_ab.jpg]\n\n[TABLE:table_cd.txt]\nend",
		"plain paragraph\nanother line",
		"cells &lt;tagged&gt; with \"quotes\"",
		"",
	}

	for _, input := range inputs {
		once := pagescan.Sanitize(input)
		assert.Equal(t, once, pagescan.Sanitize(once), "input %q", input)
	}
}
