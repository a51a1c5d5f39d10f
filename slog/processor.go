// Package slog provides logging decorators for pagescan collaborator
// interfaces using the standard library's structured logger.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pagescan"
)

// Ensure LoggingProcessor implements pagescan.TextProcessor at compile time.
var _ pagescan.TextProcessor = (*LoggingProcessor)(nil)

// LoggingProcessor wraps a TextProcessor with request/response logging.
type LoggingProcessor struct {
	next   pagescan.TextProcessor
	logger *slog.Logger
}

// NewLoggingProcessor creates a new LoggingProcessor.
func NewLoggingProcessor(next pagescan.TextProcessor, logger *slog.Logger) *LoggingProcessor {
	return &LoggingProcessor{next: next, logger: logger}
}

// ProcessText delegates to the wrapped processor, logging size and duration.
func (p *LoggingProcessor) ProcessText(ctx context.Context, text string) (string, error) {
	start := time.Now()

	out, err := p.next.ProcessText(ctx, text)
	if err != nil {
		p.logger.Error("process", "chars", len(text), "err", err)
		return "", err
	}

	p.logger.Info("process", "chars", len(text), "bytes", len(out), "duration", time.Since(start))
	return out, nil
}
