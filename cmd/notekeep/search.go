package main

import (
	"github.com/matsen/notekeep/internal/storage"
	"github.com/spf13/cobra"
)

// checkSearch requires --query to be given, though it may be empty.
func (a *app) checkSearch(cmd *cobra.Command) error {
	if !cmd.Flags().Changed("query") {
		return usagef("--query is required for the search command")
	}
	return nil
}

func (a *app) runSearch(db *storage.DB) error {
	notes, err := db.Search(a.opts.query)
	if err != nil {
		return err
	}

	if a.opts.json {
		return outputJSON(a.stdout, notes)
	}
	if len(notes) == 0 {
		outputHuman(a.stdout, "No notes matching '%s' were found.\n", a.opts.query)
		return nil
	}
	printNotesHuman(a.stdout, notes)
	return nil
}
