package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/matsen/notekeep/internal/storage"
)

// outputJSON writes a value as formatted JSON.
func outputJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputHuman writes a human-readable string.
func outputHuman(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintf(w, format, args...)
}

// ErrorResponse is a JSON error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// CountResponse reports how many notes a delete or update touched.
type CountResponse struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// ExportResponse is the response for the export command.
type ExportResponse struct {
	Status string `json:"status"`
	Path   string `json:"path"`
	Format string `json:"format"`
	Count  int    `json:"count"`
}

// printNotesHuman prints one block per note:
//
//	[id] title (created ts):
//	body
func printNotesHuman(w io.Writer, notes []storage.Note) {
	for _, n := range notes {
		fmt.Fprintf(w, "[%d] %s (created %s):\n%s\n\n", n.ID, n.Title, n.CreatedAt, n.Body)
	}
}

func pluralNotes(n int64) string {
	if n == 1 {
		return "note"
	}
	return "notes"
}

func quote(s string) string {
	return "'" + s + "'"
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
