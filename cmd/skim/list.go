package main

import (
	"fmt"

	"github.com/fwojciec/skim"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := skim.SummaryFilter{Limit: c.Limit, Offset: c.Offset}
	if c.URL != "" {
		filter.URL = &c.URL
	}

	summaries, err := deps.Summaries.FindSummaries(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", skim.ErrorMessage(err))
		return err
	}

	if len(summaries) == 0 {
		fmt.Fprintln(deps.Stdout, "No summaries found. Use 'skim add' to create one.")
		return nil
	}

	for _, s := range summaries {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", s.ID, s.Title, s.URL)
	}

	return nil
}
