package storage

import (
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database connection holding the notes table.
type DB struct {
	db     *sql.DB
	now    func() time.Time
	logger *slog.Logger
}

// Option configures a DB at open time.
type Option func(*DB)

// WithClock overrides the clock used for created_at.
func WithClock(now func() time.Time) Option {
	return func(d *DB) {
		d.now = now
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(d *DB) {
		d.logger = logger
	}
}

// selectNoteFields contains the standard field list for SELECT queries.
const selectNoteFields = `id, title, body, created_at`

// likeEscape is the ESCAPE character for LIKE patterns built by Search.
const likeEscape = `\`

// OpenDB opens or creates a SQLite database at the given path and makes
// sure the notes table exists.
func OpenDB(path string, opts ...Option) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	db.SetMaxOpenConns(1) // SQLite doesn't support concurrent writes

	d := &DB{
		db:     db,
		now:    time.Now,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(d)
	}

	if err := d.Initialize(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	d.logger.Debug("opened note database", "path", path)
	return d, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

// Initialize creates the notes table if it doesn't exist. Safe to call on
// every startup.
func (d *DB) Initialize() error {
	schema := `
		CREATE TABLE IF NOT EXISTS notes (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			body TEXT NOT NULL,
			created_at TEXT NOT NULL
		);
	`

	_, err := d.db.Exec(schema)
	return err
}

// Add inserts a new note stamped with the current UTC time.
func (d *DB) Add(title, body string) (Note, error) {
	if err := validate(title, body); err != nil {
		return Note{}, err
	}

	note := Note{
		Title:     title,
		Body:      body,
		CreatedAt: FormatTimestamp(d.now()),
	}

	result, err := d.db.Exec(
		`INSERT INTO notes (title, body, created_at) VALUES (?, ?, ?)`,
		note.Title, note.Body, note.CreatedAt,
	)
	if err != nil {
		return Note{}, fmt.Errorf("inserting note: %w", err)
	}

	note.ID, err = result.LastInsertId()
	if err != nil {
		return Note{}, fmt.Errorf("reading inserted id: %w", err)
	}

	d.logger.Debug("added note", "id", note.ID, "title", note.Title)
	return note, nil
}

// Get retrieves a note by its id.
func (d *DB) Get(id int64) (Note, error) {
	row := d.db.QueryRow(`SELECT `+selectNoteFields+` FROM notes WHERE id = ?`, id)

	var n Note
	if err := row.Scan(&n.ID, &n.Title, &n.Body, &n.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return Note{}, ErrNoteNotFound
		}
		return Note{}, fmt.Errorf("getting note %d: %w", id, err)
	}
	return n, nil
}

// List returns every note in insertion order.
func (d *DB) List() ([]Note, error) {
	rows, err := d.db.Query(`SELECT ` + selectNoteFields + ` FROM notes ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("listing notes: %w", err)
	}
	defer rows.Close()

	return scanNotes(rows)
}

// Search returns notes whose title or body contains keyword. ASCII letters
// compare without regard to case; all other text must match exactly.
// An empty keyword matches every note.
func (d *DB) Search(keyword string) ([]Note, error) {
	pattern := "%" + escapeLike(keyword) + "%"

	rows, err := d.db.Query(`
		SELECT `+selectNoteFields+`
		FROM notes
		WHERE title LIKE ? ESCAPE '`+likeEscape+`'
		   OR body LIKE ? ESCAPE '`+likeEscape+`'
		ORDER BY id ASC`, pattern, pattern)
	if err != nil {
		return nil, fmt.Errorf("searching notes: %w", err)
	}
	defer rows.Close()

	return scanNotes(rows)
}

// DeleteByTitle removes every note whose title matches exactly and
// returns how many were removed.
func (d *DB) DeleteByTitle(title string) (int64, error) {
	return d.exec("deleting notes by title", `DELETE FROM notes WHERE title = ?`, title)
}

// DeleteByID removes the note with the given id, if any.
func (d *DB) DeleteByID(id int64) (int64, error) {
	return d.exec("deleting note by id", `DELETE FROM notes WHERE id = ?`, id)
}

// UpdateByTitle replaces title and body on every note titled oldTitle.
// created_at is left untouched.
func (d *DB) UpdateByTitle(oldTitle, newTitle, newBody string) (int64, error) {
	if err := validate(newTitle, newBody); err != nil {
		return 0, err
	}
	return d.exec("updating notes by title",
		`UPDATE notes SET title = ?, body = ? WHERE title = ?`,
		newTitle, newBody, oldTitle)
}

// UpdateByID replaces title and body on the note with the given id.
func (d *DB) UpdateByID(id int64, newTitle, newBody string) (int64, error) {
	if err := validate(newTitle, newBody); err != nil {
		return 0, err
	}
	return d.exec("updating note by id",
		`UPDATE notes SET title = ?, body = ? WHERE id = ?`,
		newTitle, newBody, id)
}

// Count returns the total number of notes.
func (d *DB) Count() (int, error) {
	var count int
	err := d.db.QueryRow("SELECT COUNT(*) FROM notes").Scan(&count)
	return count, err
}

// exec runs a mutating statement and reports the affected row count.
func (d *DB) exec(op, query string, args ...interface{}) (int64, error) {
	result, err := d.db.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: reading rows affected: %w", op, err)
	}

	d.logger.Debug(op, "rows", n)
	return n, nil
}

func scanNotes(rows *sql.Rows) ([]Note, error) {
	notes := []Note{}
	for rows.Next() {
		var n Note
		if err := rows.Scan(&n.ID, &n.Title, &n.Body, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning note: %w", err)
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

// escapeLike makes %, _ and the escape character match literally.
func escapeLike(s string) string {
	r := strings.NewReplacer(
		likeEscape, likeEscape+likeEscape,
		"%", likeEscape+"%",
		"_", likeEscape+"_",
	)
	return r.Replace(s)
}
