// Package slog provides logging decorators for skim services using the
// standard library's structured logger.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/skim"
)

// Ensure LoggingFetcher implements skim.Fetcher.
var _ skim.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with request logging.
type LoggingFetcher struct {
	next   skim.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next skim.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the outcome.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (string, error) {
	begin := time.Now()
	html, err := f.next.Fetch(ctx, url)
	if err != nil {
		f.logger.Error("page fetch failed",
			"url", url,
			"duration", time.Since(begin),
			"error", err,
		)
		return "", err
	}
	f.logger.Info("page fetched",
		"url", url,
		"bytes", len(html),
		"duration", time.Since(begin),
	)
	return html, nil
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
