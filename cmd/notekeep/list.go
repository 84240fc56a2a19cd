package main

import (
	"github.com/matsen/notekeep/internal/storage"
)

func (a *app) runList(db *storage.DB) error {
	notes, err := db.List()
	if err != nil {
		return err
	}

	if a.opts.json {
		return outputJSON(a.stdout, notes)
	}
	if len(notes) == 0 {
		outputHuman(a.stdout, "No notes found.\n")
		return nil
	}
	printNotesHuman(a.stdout, notes)
	return nil
}
