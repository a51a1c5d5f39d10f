package pagescan

import "encoding/json"

// ItemType identifies the kind of a content item within an extracted section.
type ItemType string

// ItemType constants.
const (
	ItemText  ItemType = "text"
	ItemImage ItemType = "image"
	ItemTable ItemType = "table"
)

// Valid reports whether the item type is a known type.
func (t ItemType) Valid() bool {
	return t == ItemText || t == ItemImage || t == ItemTable
}

// Item is one piece of content within a section. For image and table items
// the value holds the artifact reference from the inline marker.
type Item struct {
	Type        ItemType `json:"type"`
	Description string   `json:"description"`
	Value       string   `json:"value"`
}

// Section groups content items under a page heading.
type Section struct {
	Header  string `json:"header"`
	Content []Item `json:"content"`
}

// Extraction is the structured description of one chunk's content as
// returned by the text processor.
type Extraction struct {
	Title    string    `json:"title"`
	Sections []Section `json:"sections"`
}

// Validate returns an error if the extraction contains invalid fields.
func (e *Extraction) Validate() error {
	for _, s := range e.Sections {
		for _, item := range s.Content {
			if !item.Type.Valid() {
				return Errorf(EINVALID, "unknown content item type %q", item.Type)
			}
		}
	}
	return nil
}

// DecodeExtraction parses a text processor response into an Extraction.
// The processor contract is a single JSON object per chunk; anything else is
// a hard failure for the whole scan, so no partial value is returned.
func DecodeExtraction(data string) (*Extraction, error) {
	var e Extraction
	if err := json.Unmarshal([]byte(data), &e); err != nil {
		return nil, Errorf(EINTERNAL, "text processor returned malformed JSON: %v", err)
	}
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return &e, nil
}
