package mock

import (
	"context"

	"github.com/fwojciec/skim"
)

var _ skim.SummaryService = (*SummaryService)(nil)

// SummaryService is a mock implementation of skim.SummaryService.
type SummaryService struct {
	CreateSummaryFn   func(ctx context.Context, summary *skim.Summary) error
	FindSummaryByIDFn func(ctx context.Context, id string) (*skim.Summary, error)
	FindSummariesFn   func(ctx context.Context, filter skim.SummaryFilter) ([]*skim.Summary, error)
	DeleteSummaryFn   func(ctx context.Context, id string) error
}

func (s *SummaryService) CreateSummary(ctx context.Context, summary *skim.Summary) error {
	return s.CreateSummaryFn(ctx, summary)
}

func (s *SummaryService) FindSummaryByID(ctx context.Context, id string) (*skim.Summary, error) {
	return s.FindSummaryByIDFn(ctx, id)
}

func (s *SummaryService) FindSummaries(ctx context.Context, filter skim.SummaryFilter) ([]*skim.Summary, error) {
	return s.FindSummariesFn(ctx, filter)
}

func (s *SummaryService) DeleteSummary(ctx context.Context, id string) error {
	return s.DeleteSummaryFn(ctx, id)
}
