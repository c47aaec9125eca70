// Package rod provides a browser-based implementation of skim.Fetcher for
// pages that render their article content client-side.
package rod

import (
	"context"
	"fmt"
	"time"

	"github.com/fwojciec/skim"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultFetchTimeout is the default timeout for browser fetches.
// Kept consistent with http.DefaultFetchTimeout (10s).
const DefaultFetchTimeout = 10 * time.Second

// Ensure Fetcher implements skim.Fetcher at compile time.
var _ skim.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML from URLs using Chrome browser automation.
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	browser *rod.Browser
	kill    func()
}

// NewFetcher creates a new Fetcher that launches a headless Chrome browser.
// Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher() (*Fetcher, error) {
	l := launcher.New().Headless(true)
	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill() // Clean up launched process on connection failure
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	return &Fetcher{browser: browser, kill: l.Kill}, nil
}

// Fetch navigates to the URL, waits for the page to load, and returns the
// rendered HTML. An elapsed context deadline surfaces as ETIMEOUT.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", f.fetchError(ctx, url, err)
	}

	page, err := f.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", skim.Errorf(skim.EUNAVAILABLE, "opening page: %v", err)
	}
	defer page.Close()

	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return "", f.fetchError(ctx, url, err)
	}
	if err := page.WaitLoad(); err != nil {
		return "", f.fetchError(ctx, url, err)
	}

	html, err := page.HTML()
	if err != nil {
		return "", f.fetchError(ctx, url, err)
	}

	return html, nil
}

// fetchError distinguishes deadline expiry from navigation failures.
func (f *Fetcher) fetchError(ctx context.Context, url string, err error) error {
	if ctx.Err() == context.DeadlineExceeded {
		return skim.Errorf(skim.ETIMEOUT, "timed out fetching %s", url)
	}
	return skim.Errorf(skim.EUNAVAILABLE, "fetching %s: %v", url, err)
}

// Close releases browser resources.
func (f *Fetcher) Close() error {
	err := f.browser.Close()
	if f.kill != nil {
		f.kill()
	}
	return err
}
