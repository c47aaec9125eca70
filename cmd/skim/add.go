package main

import (
	"fmt"
	"sync"

	"github.com/fwojciec/skim"
	"github.com/fwojciec/skim/pipeline"
)

// Run executes the add command.
func (c *AddCmd) Run(deps *Dependencies) error {
	if len(c.URLs) == 0 {
		fmt.Fprintln(deps.Stderr, "error: at least one URL is required")
		return skim.Errorf(skim.EINVALID, "at least one URL is required")
	}

	if c.Concurrency > 0 {
		deps.Pipeline.Concurrency = c.Concurrency
	}

	// Progress callbacks arrive from worker goroutines.
	var mu sync.Mutex
	var saved []*skim.Summary

	progress := func(event pipeline.ProgressEvent) {
		mu.Lock()
		defer mu.Unlock()

		switch event.Type {
		case pipeline.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Summarizing %d page(s)\n", event.Total)
		case pipeline.ProgressCompleted:
			saved = append(saved, event.Summary)
			fmt.Fprintf(deps.Stdout, "\n%s\n  %s\n", event.Summary.Title, event.Summary.URL)
			for _, b := range event.Summary.Bullets {
				fmt.Fprintf(deps.Stdout, "  - %s\n", b)
			}
		case pipeline.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", event.URL, skim.ErrorMessage(event.Error))
		}
	}

	result, err := deps.Pipeline.RunAll(deps.Ctx, c.URLs, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	// Record successes in the local history, most recent first.
	if len(saved) > 0 {
		entries := deps.History.Load(deps.Ctx)
		for _, s := range saved {
			entries = skim.UpsertHistory(entries, s)
		}
		deps.History.Save(deps.Ctx, entries)
	}

	fmt.Fprintf(deps.Stdout, "\nSaved %d, failed %d\n", result.Saved, result.Failed)
	return nil
}
