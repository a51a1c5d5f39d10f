// Package gemini provides a Google Gemini-backed implementation of
// pagescan.TextProcessor.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/pagescan"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

const systemInstruction = `You are a content extraction assistant. You receive plain text extracted from one chunk of a web page. The text may contain inline markers of the form [IMAGE:filename] or [TABLE:filename] referring to stored artifacts.

Respond with a single JSON object of this exact shape:
{"title": string, "sections": [{"header": string, "content": [{"type": "text"|"image"|"table", "description": string, "value": string}]}]}

Rules:
- "title" is the page or chunk title, or an empty string if none is apparent.
- Group content under the nearest preceding heading; use an empty header if there is none.
- For image and table items, "value" must be the marker's filename exactly as it appears, and "description" a short description of the surrounding context.
- For text items, "value" is the text itself.
- Do not invent content that is not in the input.`

// Ensure Processor implements pagescan.TextProcessor at compile time.
var _ pagescan.TextProcessor = (*Processor)(nil)

// Processor implements pagescan.TextProcessor using Google Gemini.
type Processor struct {
	client *genai.Client
}

// NewProcessor creates a new Processor.
func NewProcessor(client *genai.Client) *Processor {
	return &Processor{client: client}
}

// ProcessText submits chunk text to Gemini and returns the JSON response.
func (p *Processor) ProcessText(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", pagescan.Errorf(pagescan.EINVALID, "text required")
	}

	result, err := p.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: BuildUserPrompt(text)}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", pagescan.Errorf(pagescan.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
// The response is constrained to JSON so DecodeExtraction can parse it
// without stripping markdown fences.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.1)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: systemInstruction}},
		},
		Temperature:      &temp,
		ResponseMIMEType: "application/json",
	}
}

// BuildUserPrompt wraps chunk text for submission.
func BuildUserPrompt(text string) string {
	var sb strings.Builder
	sb.WriteString("<chunk>\n")
	fmt.Fprintf(&sb, "%s\n", text)
	sb.WriteString("</chunk>\n\n")
	sb.WriteString("Extract the structured content of this chunk.")
	return sb.String()
}
