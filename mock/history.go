package mock

import (
	"context"

	"github.com/fwojciec/skim"
)

var _ skim.HistoryStore = (*HistoryStore)(nil)

// HistoryStore is a mock implementation of skim.HistoryStore.
type HistoryStore struct {
	LoadFn func(ctx context.Context) []*skim.Summary
	SaveFn func(ctx context.Context, entries []*skim.Summary)
}

func (s *HistoryStore) Load(ctx context.Context) []*skim.Summary {
	return s.LoadFn(ctx)
}

func (s *HistoryStore) Save(ctx context.Context, entries []*skim.Summary) {
	s.SaveFn(ctx, entries)
}
