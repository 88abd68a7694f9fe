package main

import (
	"fmt"
	"text/tabwriter"
	"time"
)

// Run executes the history list command.
func (c *HistoryListCmd) Run(deps *Dependencies) error {
	entries, err := deps.History.List(deps.Ctx, c.Limit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(deps.Stdout, "No saved results.")
		return nil
	}

	tw := tabwriter.NewWriter(deps.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSAVED\tSOURCE\tSUBJECT")
	for _, e := range entries {
		subject := ""
		if e.Result != nil {
			subject = e.Result.Subject
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.ID, e.CreatedAt.Format(time.DateTime), e.Source, subject)
	}
	return tw.Flush()
}

// Run executes the history show command.
func (c *HistoryShowCmd) Run(deps *Dependencies) error {
	entry, err := deps.History.Find(deps.Ctx, c.ID)
	if err != nil {
		return err
	}
	if c.JSON {
		return writeJSON(deps.Stdout, entry)
	}
	fmt.Fprintf(deps.Stdout, "id: %s\nsaved: %s\nsource: %s\n\n", entry.ID, entry.CreatedAt.Format(time.RFC3339), entry.Source)
	return writeRows(deps.Stdout, entry.Result)
}

// Run executes the history delete command.
func (c *HistoryDeleteCmd) Run(deps *Dependencies) error {
	if err := deps.History.Delete(deps.Ctx, c.ID); err != nil {
		return err
	}
	fmt.Fprintf(deps.Stdout, "deleted %s\n", c.ID)
	return nil
}
