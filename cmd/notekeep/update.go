package main

import (
	"github.com/matsen/notekeep/internal/storage"
	"github.com/spf13/cobra"
)

// checkUpdate requires a target (--title or --id) plus the new body.
// --new-title defaults to the current title when updating by title.
func (a *app) checkUpdate(cmd *cobra.Command) error {
	byID := cmd.Flags().Changed("id")
	if byID == (a.opts.title != "") {
		return usagef("exactly one of --title or --id is required for the update command")
	}
	if a.opts.body == "" {
		return usagef("--body is required for the update command")
	}
	if byID && a.opts.newTitle == "" {
		return usagef("--new-title is required when updating by --id")
	}
	return nil
}

func (a *app) runUpdate(db *storage.DB) error {
	var (
		n   int64
		err error
	)
	if a.opts.title != "" {
		newTitle := a.opts.newTitle
		if newTitle == "" {
			newTitle = a.opts.title
		}
		n, err = db.UpdateByTitle(a.opts.title, newTitle, a.opts.body)
	} else {
		n, err = db.UpdateByID(a.opts.id, a.opts.newTitle, a.opts.body)
	}
	if err != nil {
		return err
	}

	if a.opts.json {
		return outputJSON(a.stdout, CountResponse{Status: "updated", Count: n})
	}
	outputHuman(a.stdout, "Updated %d %s.\n", n, pluralNotes(n))
	return nil
}
