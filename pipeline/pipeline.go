// Package pipeline provides summarization orchestration. It coordinates
// fetching, content extraction, normalization, the completion-service call,
// and storage of the result.
package pipeline

import (
	"context"
	"fmt"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/skim"
	"golang.org/x/sync/errgroup"
)

// Default bounds for a single pipeline run.
const (
	// DefaultFetchTimeout bounds the page fetch; the in-flight request is
	// aborted when it fires.
	DefaultFetchTimeout = 10 * time.Second

	// DefaultSummarizeTimeout bounds the completion-service call so a hung
	// upstream cannot block a run indefinitely.
	DefaultSummarizeTimeout = 60 * time.Second

	// DefaultConcurrency is the batch-mode worker limit.
	DefaultConcurrency = 4
)

// Pipeline orchestrates the summarization of web pages.
//
// A Pipeline carries no per-run state: concurrent Run calls are independent
// requests and are not deduplicated or debounced here.
type Pipeline struct {
	Fetcher     skim.Fetcher
	Extractor   skim.Extractor
	Summarizer  skim.Summarizer
	Summaries   skim.SummaryService
	RateLimiter skim.DomainLimiter

	FetchTimeout     time.Duration
	SummarizeTimeout time.Duration
	Concurrency      int
}

// Result holds the outcome of a batch run.
type Result struct {
	Saved  int
	Failed int
}

// ProgressEvent reports progress during a batch run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Summary   *skim.Summary
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting batch progress.
type ProgressFunc func(event ProgressEvent)

// Run summarizes a single page and persists the result.
//
// The URL must be absolute with an http(s) scheme. The fetch is bounded by
// FetchTimeout and the completion call by SummarizeTimeout; each stage fails
// fast with a coded error and nothing is retried.
func (p *Pipeline) Run(ctx context.Context, rawURL string) (*skim.Summary, error) {
	u, err := url.Parse(rawURL)
	if err != nil || !u.IsAbs() || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, skim.Errorf(skim.EINVALID, "an absolute http(s) URL is required")
	}

	if p.RateLimiter != nil {
		if err := p.RateLimiter.Wait(ctx, u.Host); err != nil {
			return nil, err
		}
	}

	fetchTimeout := p.FetchTimeout
	if fetchTimeout <= 0 {
		fetchTimeout = DefaultFetchTimeout
	}
	fctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	html, err := p.Fetcher.Fetch(fctx, rawURL)
	cancel()
	if err != nil {
		return nil, err
	}

	text, err := p.Extractor.Extract(html)
	if err != nil {
		return nil, err
	}

	text = skim.ClampText(skim.NormalizeText(text), skim.MaxArticleChars)
	if text == "" {
		return nil, skim.Errorf(skim.EUNPROCESSABLE, "no extractable content")
	}

	summarizeTimeout := p.SummarizeTimeout
	if summarizeTimeout <= 0 {
		summarizeTimeout = DefaultSummarizeTimeout
	}
	sctx, cancel := context.WithTimeout(ctx, summarizeTimeout)
	draft, err := p.Summarizer.Summarize(sctx, text)
	cancel()
	if err != nil {
		return nil, err
	}

	summary := &skim.Summary{
		URL:        rawURL,
		Title:      draft.Title,
		Bullets:    draft.Bullets,
		SourceHash: fmt.Sprintf("%x", xxhash.Sum64String(text)),
	}
	if err := p.Summaries.CreateSummary(ctx, summary); err != nil {
		return nil, err
	}

	return summary, nil
}

// RunAll summarizes several pages with bounded concurrency. Individual page
// failures are reported through progress and counted, not propagated; the
// returned error reflects context cancellation only.
func (p *Pipeline) RunAll(ctx context.Context, urls []string, progress ProgressFunc) (*Result, error) {
	concurrency := p.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	total := len(urls)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	type runResult struct {
		url     string
		summary *skim.Summary
		err     error
	}

	resultCh := make(chan runResult, total)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for _, u := range urls {
			u := u
			g.Go(func() error {
				summary, err := p.Run(gctx, u)
				resultCh <- runResult{url: u, summary: summary, err: err}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	var completed atomic.Int64
	var result Result

	for r := range resultCh {
		completed.Add(1)
		if r.err != nil {
			result.Failed++
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressFailed,
					Completed: int(completed.Load()),
					Total:     total,
					URL:       r.url,
					Error:     r.err,
				})
			}
			continue
		}

		result.Saved++
		if progress != nil {
			progress(ProgressEvent{
				Type:      ProgressCompleted,
				Completed: int(completed.Load()),
				Total:     total,
				URL:       r.url,
				Summary:   r.summary,
			})
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	return &result, ctx.Err()
}
