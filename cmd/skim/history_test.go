package main_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/fwojciec/skim"
	main "github.com/fwojciec/skim/cmd/skim"
	"github.com/fwojciec/skim/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints entries most recent first", func(t *testing.T) {
		t.Parallel()

		history := &mock.HistoryStore{
			LoadFn: func(_ context.Context) []*skim.Summary {
				return []*skim.Summary{
					{
						ID:        "sum-2",
						URL:       "https://example.com/b",
						Title:     "Newer Page",
						CreatedAt: time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC),
					},
					{
						ID:        "sum-1",
						URL:       "https://example.com/a",
						Title:     "Older Page",
						CreatedAt: time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC),
					},
				}
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  stderr,
			History: history,
		}

		cmd := &main.HistoryCmd{}

		err := cmd.Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "Newer Page")
		assert.Contains(t, output, "Older Page")
		assert.Contains(t, output, "2025-06-02 09:30")
		assert.Less(t,
			bytes.Index(stdout.Bytes(), []byte("Newer Page")),
			bytes.Index(stdout.Bytes(), []byte("Older Page")),
		)
	})

	t.Run("shows helpful message when history is empty", func(t *testing.T) {
		t.Parallel()

		history := &mock.HistoryStore{
			LoadFn: func(_ context.Context) []*skim.Summary { return nil },
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  stderr,
			History: history,
		}

		cmd := &main.HistoryCmd{}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "History is empty")
	})
}
