package main

import (
	"fmt"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	entries := deps.History.Load(deps.Ctx)

	if len(entries) == 0 {
		fmt.Fprintln(deps.Stdout, "History is empty. Use 'skim add' to summarize a page.")
		return nil
	}

	for _, e := range entries {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", e.CreatedAt.Format("2006-01-02 15:04"), e.Title, e.URL)
	}

	return nil
}
