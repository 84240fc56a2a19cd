package main

import (
	"github.com/matsen/notekeep/internal/storage"
)

func (a *app) checkAdd() error {
	if a.opts.title == "" || a.opts.body == "" {
		return usagef("--title and --body are required for the add command")
	}
	return nil
}

func (a *app) runAdd(db *storage.DB) error {
	note, err := db.Add(a.opts.title, a.opts.body)
	if err != nil {
		return err
	}

	if a.opts.json {
		return outputJSON(a.stdout, note)
	}
	outputHuman(a.stdout, "Note added with title: %s\n", note.Title)
	return nil
}
