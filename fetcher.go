package semafor

import "context"

// Fetcher retrieves raw HTML from URLs.
type Fetcher interface {
	// Fetch returns the page body for the given URL.
	// The context controls timeout and cancellation.
	// Returns EUNAVAILABLE on a non-success HTTP status.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}
