package skim

import "context"

// Fetcher retrieves raw HTML from URLs.
// Implementations may use browser automation to handle JavaScript-rendered content.
type Fetcher interface {
	// Fetch retrieves the HTML document at url.
	// The context controls timeout and cancellation; an elapsed deadline
	// surfaces as an ETIMEOUT error.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}

// DomainLimiter rate-limits outbound requests per domain.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled before the wait completes.
	Wait(ctx context.Context, domain string) error
}
