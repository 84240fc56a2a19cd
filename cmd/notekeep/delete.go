package main

import (
	"github.com/matsen/notekeep/internal/storage"
	"github.com/spf13/cobra"
)

// checkDelete requires exactly one of --title or --id.
func (a *app) checkDelete(cmd *cobra.Command) error {
	byID := cmd.Flags().Changed("id")
	if byID == (a.opts.title != "") {
		return usagef("exactly one of --title or --id is required for the delete command")
	}
	return nil
}

// runDelete removes by id when --id is given, otherwise every note with
// the exact title.
func (a *app) runDelete(db *storage.DB) error {
	var (
		n   int64
		err error
		by  string
	)
	if a.opts.title != "" {
		by = "title " + quote(a.opts.title)
		n, err = db.DeleteByTitle(a.opts.title)
	} else {
		by = "id " + formatID(a.opts.id)
		n, err = db.DeleteByID(a.opts.id)
	}
	if err != nil {
		return err
	}

	if a.opts.json {
		return outputJSON(a.stdout, CountResponse{Status: "deleted", Count: n})
	}
	outputHuman(a.stdout, "Deleted %d %s with %s.\n", n, pluralNotes(n), by)
	return nil
}
