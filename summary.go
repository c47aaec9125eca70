package skim

import (
	"context"
	"time"
)

// MaxBullets is the upper bound on key points per summary. The assembly
// stage truncates, never pads.
const MaxBullets = 3

// DefaultTitle is used when the model omits a usable title.
const DefaultTitle = "Untitled page"

// Summary represents a stored page summary.
type Summary struct {
	ID         string    `json:"id"`
	URL        string    `json:"url"`
	Title      string    `json:"title"`
	Bullets    []string  `json:"bullets"`
	SourceHash string    `json:"sourceHash"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Validate returns an error if the summary contains invalid fields.
func (s *Summary) Validate() error {
	if s.URL == "" {
		return Errorf(EINVALID, "summary URL required")
	}
	if s.Title == "" {
		return Errorf(EINVALID, "summary title required")
	}
	if len(s.Bullets) > MaxBullets {
		return Errorf(EINVALID, "summary has more than %d bullets", MaxBullets)
	}
	return nil
}

// SummaryService represents a service for managing stored summaries.
type SummaryService interface {
	// CreateSummary persists a new summary, assigning its ID and CreatedAt.
	CreateSummary(ctx context.Context, summary *Summary) error

	// FindSummaryByID retrieves a summary by ID.
	// Returns ENOTFOUND if the summary does not exist.
	FindSummaryByID(ctx context.Context, id string) (*Summary, error)

	// FindSummaries retrieves summaries matching the filter,
	// most recent first.
	FindSummaries(ctx context.Context, filter SummaryFilter) ([]*Summary, error)

	// DeleteSummary permanently removes a summary.
	// Returns ENOTFOUND if the summary does not exist.
	DeleteSummary(ctx context.Context, id string) error
}

// SummaryFilter represents a filter for FindSummaries.
type SummaryFilter struct {
	ID  *string `json:"id"`
	URL *string `json:"url"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
