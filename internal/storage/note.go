// Package storage persists notes in a local SQLite file.
package storage

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// TimestampLayout is the UTC ISO-8601 layout used for created_at.
// Fixed-width microseconds keep the column lexically sortable.
const TimestampLayout = "2006-01-02T15:04:05.000000Z"

// Note is a single persisted note.
type Note struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	CreatedAt string `json:"created_at"`
}

// ErrNoteNotFound is returned by Get when no note has the requested id.
var ErrNoteNotFound = errors.New("note not found")

// ValidationError reports a note field that is empty after trimming.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s must not be empty", e.Field)
}

// validate checks title and body before anything touches the database.
func validate(title, body string) error {
	if strings.TrimSpace(title) == "" {
		return &ValidationError{Field: "title"}
	}
	if strings.TrimSpace(body) == "" {
		return &ValidationError{Field: "body"}
	}
	return nil
}

// FormatTimestamp renders t in TimestampLayout after converting to UTC.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
