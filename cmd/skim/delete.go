package main

import (
	"fmt"

	"github.com/fwojciec/skim"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return skim.Errorf(skim.EINVALID, "use --force to confirm deletion")
	}

	summary, err := deps.Summaries.FindSummaryByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", skim.ErrorMessage(err))
		return err
	}

	if err := deps.Summaries.DeleteSummary(deps.Ctx, summary.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", skim.ErrorMessage(err))
		return err
	}

	// Drop the matching history entry so the recency list stays consistent.
	entries := deps.History.Load(deps.Ctx)
	deps.History.Save(deps.Ctx, skim.RemoveHistory(entries, summary.ID, summary.URL))

	fmt.Fprintf(deps.Stdout, "Deleted summary %q\n", summary.Title)
	return nil
}
