package pagescan

import "context"

// TextProcessor converts sanitized plain text from one chunk into a
// structured JSON description of its content.
type TextProcessor interface {
	// ProcessText submits the text and returns the processor's response,
	// which is expected to be a JSON-encoded Extraction. The core does not
	// retry or enforce its own timeout; both belong to the caller's stack.
	ProcessText(ctx context.Context, text string) (string, error)
}
