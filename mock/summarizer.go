package mock

import (
	"context"

	"github.com/fwojciec/skim"
)

var _ skim.Summarizer = (*Summarizer)(nil)

// Summarizer is a mock implementation of skim.Summarizer.
type Summarizer struct {
	SummarizeFn func(ctx context.Context, text string) (*skim.SummaryDraft, error)
}

func (s *Summarizer) Summarize(ctx context.Context, text string) (*skim.SummaryDraft, error) {
	return s.SummarizeFn(ctx, text)
}
