package mock

import (
	"context"

	"github.com/fwojciec/pagescan"
)

var _ pagescan.TextProcessor = (*TextProcessor)(nil)

// TextProcessor is a mock implementation of pagescan.TextProcessor.
type TextProcessor struct {
	ProcessTextFn func(ctx context.Context, text string) (string, error)
}

func (p *TextProcessor) ProcessText(ctx context.Context, text string) (string, error) {
	return p.ProcessTextFn(ctx, text)
}
