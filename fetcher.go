package pageforge

import "context"

// Fetcher retrieves HTML content from URLs.
type Fetcher interface {
	// Fetch retrieves the page at the URL.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}
