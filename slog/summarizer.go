package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/skim"
)

// Ensure LoggingSummarizer implements skim.Summarizer.
var _ skim.Summarizer = (*LoggingSummarizer)(nil)

// LoggingSummarizer wraps a Summarizer with completion-call logging.
type LoggingSummarizer struct {
	next   skim.Summarizer
	logger *slog.Logger
}

// NewLoggingSummarizer creates a new LoggingSummarizer.
func NewLoggingSummarizer(next skim.Summarizer, logger *slog.Logger) *LoggingSummarizer {
	return &LoggingSummarizer{next: next, logger: logger}
}

// Summarize delegates to the wrapped summarizer and logs the outcome.
func (s *LoggingSummarizer) Summarize(ctx context.Context, text string) (*skim.SummaryDraft, error) {
	begin := time.Now()
	draft, err := s.next.Summarize(ctx, text)
	if err != nil {
		s.logger.Error("summarization failed",
			"chars", len(text),
			"duration", time.Since(begin),
			"error", err,
		)
		return nil, err
	}
	s.logger.Info("summarization complete",
		"chars", len(text),
		"bullets", len(draft.Bullets),
		"duration", time.Since(begin),
	)
	return draft, nil
}
