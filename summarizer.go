package skim

import "context"

// SummaryDraft is the bounded result recovered from a model completion,
// before persistence assigns identity and timestamps.
type SummaryDraft struct {
	// Title is never empty; assembly falls back to DefaultTitle.
	Title string

	// Bullets holds at most MaxBullets key points, most salient first.
	Bullets []string
}

// Summarizer produces a title and key points for extracted article text.
type Summarizer interface {
	// Summarize sends the text to a completion service and recovers a
	// structured draft from its free-form output.
	Summarize(ctx context.Context, text string) (*SummaryDraft, error)
}
