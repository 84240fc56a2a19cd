package main

import (
	"github.com/matsen/notekeep/internal/export"
	"github.com/matsen/notekeep/internal/storage"
)

func (a *app) checkExport() error {
	if a.opts.format == "" || a.opts.output == "" {
		return usagef("--format and --output are required for the export command")
	}
	_, err := export.ParseFormat(a.opts.format)
	return err
}

// runExport writes every note, or only those matching --query when given.
func (a *app) runExport(db *storage.DB) error {
	format, err := export.ParseFormat(a.opts.format)
	if err != nil {
		return err
	}

	var notes []storage.Note
	if a.opts.query != "" {
		notes, err = db.Search(a.opts.query)
	} else {
		notes, err = db.List()
	}
	if err != nil {
		return err
	}

	if err := export.Export(notes, format, a.opts.output); err != nil {
		return err
	}
	a.logger.Debug("exported notes", "count", len(notes), "format", format, "path", a.opts.output)

	if a.opts.json {
		return outputJSON(a.stdout, ExportResponse{
			Status: "exported",
			Path:   a.opts.output,
			Format: format.String(),
			Count:  len(notes),
		})
	}
	outputHuman(a.stdout, "Notes exported to %s in %s format.\n", a.opts.output, format)
	return nil
}
