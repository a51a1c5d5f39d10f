package pagescan_test

import (
	"testing"

	"github.com/fwojciec/pagescan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeExtraction(t *testing.T) {
	t.Parallel()

	t.Run("decodes a valid response", func(t *testing.T) {
		t.Parallel()

		data := `{
			"title": "Example Page",
			"sections": [
				{
					"header": "Intro",
					"content": [
						{"type": "text", "description": "opening paragraph", "value": "Hello"},
						{"type": "image", "description": "logo", "value": "image_ab12.jpg"},
						{"type": "table", "description": "pricing", "value": "table_cd34.txt"}
					]
				}
			]
		}`

		e, err := pagescan.DecodeExtraction(data)
		require.NoError(t, err)

		assert.Equal(t, "Example Page", e.Title)
		require.Len(t, e.Sections, 1)
		require.Len(t, e.Sections[0].Content, 3)
		assert.Equal(t, pagescan.ItemImage, e.Sections[0].Content[1].Type)
		assert.Equal(t, "image_ab12.jpg", e.Sections[0].Content[1].Value)
	})

	t.Run("malformed JSON is an internal error", func(t *testing.T) {
		t.Parallel()

		_, err := pagescan.DecodeExtraction("not json at all")
		require.Error(t, err)
		assert.Equal(t, pagescan.EINTERNAL, pagescan.ErrorCode(err))
	})

	t.Run("unknown item type is invalid", func(t *testing.T) {
		t.Parallel()

		data := `{"title": "x", "sections": [{"header": "h", "content": [{"type": "video", "description": "", "value": ""}]}]}`

		_, err := pagescan.DecodeExtraction(data)
		require.Error(t, err)
		assert.Equal(t, pagescan.EINVALID, pagescan.ErrorCode(err))
	})

	t.Run("empty sections are fine", func(t *testing.T) {
		t.Parallel()

		e, err := pagescan.DecodeExtraction(`{"title": "", "sections": []}`)
		require.NoError(t, err)
		assert.Empty(t, e.Sections)
	})
}
