package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pagescan"
)

// Ensure LoggingImageFetcher implements pagescan.ImageFetcher at compile time.
var _ pagescan.ImageFetcher = (*LoggingImageFetcher)(nil)

// LoggingImageFetcher wraps an ImageFetcher with per-fetch logging.
type LoggingImageFetcher struct {
	next   pagescan.ImageFetcher
	logger *slog.Logger
}

// NewLoggingImageFetcher creates a new LoggingImageFetcher.
func NewLoggingImageFetcher(next pagescan.ImageFetcher, logger *slog.Logger) *LoggingImageFetcher {
	return &LoggingImageFetcher{next: next, logger: logger}
}

// FetchImage delegates to the wrapped fetcher, logging url, bytes and duration.
func (f *LoggingImageFetcher) FetchImage(ctx context.Context, url string) ([]byte, error) {
	start := time.Now()

	data, err := f.next.FetchImage(ctx, url)
	if err != nil {
		f.logger.Error("fetch_image", "url", url, "err", err)
		return nil, err
	}

	f.logger.Info("fetch_image", "url", url, "bytes", len(data), "duration", time.Since(start))
	return data, nil
}
