package mock

import (
	"context"

	"github.com/fwojciec/pagescan"
)

var _ pagescan.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of pagescan.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}

var _ pagescan.ImageFetcher = (*ImageFetcher)(nil)

// ImageFetcher is a mock implementation of pagescan.ImageFetcher.
type ImageFetcher struct {
	FetchImageFn func(ctx context.Context, url string) ([]byte, error)
}

func (f *ImageFetcher) FetchImage(ctx context.Context, url string) ([]byte, error) {
	return f.FetchImageFn(ctx, url)
}
