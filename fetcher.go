package pagescan

import "context"

// Fetcher retrieves raw HTML from URLs. It stands in for the HTML source
// provider that supplies scan input; implementations may use plain HTTP or
// browser automation.
type Fetcher interface {
	// Fetch retrieves the page and returns its HTML.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases fetcher resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}

// ImageFetcher retrieves raw image bytes from absolute URLs.
type ImageFetcher interface {
	// FetchImage downloads the image at the given absolute URL.
	FetchImage(ctx context.Context, url string) ([]byte, error)
}
