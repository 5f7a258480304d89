package db

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/thesavant42/peoplesome-ng/internal/models"
)

// Fixed-width UTC layout so created_at sorts correctly as text
const timestampFormat = "2006-01-02T15:04:05.000000000Z"

// AddBookmark saves a location under a name and returns the stored bookmark.
// An empty name falls back to the location itself.
func (db *DB) AddBookmark(name, location string) (models.Bookmark, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return models.Bookmark{}, fmt.Errorf("bookmark location cannot be empty")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = location
	}

	b := models.Bookmark{
		ID:        uuid.NewString(),
		Name:      name,
		Location:  location,
		CreatedAt: time.Now().UTC(),
	}

	_, err := db.conn.Exec(insertBookmark, b.ID, b.Name, b.Location, b.CreatedAt.Format(timestampFormat))
	if err != nil {
		return models.Bookmark{}, fmt.Errorf("failed to save bookmark: %w", err)
	}
	return b, nil
}

// GetBookmarks returns all bookmarks, newest first
func (db *DB) GetBookmarks() ([]models.Bookmark, error) {
	rows, err := db.conn.Query(selectBookmarks)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookmarks: %w", err)
	}
	defer rows.Close()

	var bookmarks []models.Bookmark
	for rows.Next() {
		b, err := scanBookmark(rows)
		if err != nil {
			return nil, err
		}
		bookmarks = append(bookmarks, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate bookmarks: %w", err)
	}
	return bookmarks, nil
}

// GetBookmark returns the bookmark with the given id, or ErrNotFound
func (db *DB) GetBookmark(id string) (models.Bookmark, error) {
	b, err := scanBookmark(db.conn.QueryRow(selectBookmark, id))
	if err == sql.ErrNoRows {
		return models.Bookmark{}, fmt.Errorf("bookmark %s: %w", id, ErrNotFound)
	}
	return b, err
}

// GetBookmarkByName returns the newest bookmark with the given name, or ErrNotFound
func (db *DB) GetBookmarkByName(name string) (models.Bookmark, error) {
	b, err := scanBookmark(db.conn.QueryRow(selectBookmarkByName, name))
	if err == sql.ErrNoRows {
		return models.Bookmark{}, fmt.Errorf("bookmark %q: %w", name, ErrNotFound)
	}
	return b, err
}

// DeleteBookmark removes a bookmark. Deleting a missing id returns ErrNotFound.
func (db *DB) DeleteBookmark(id string) error {
	result, err := db.conn.Exec(deleteBookmark, id)
	if err != nil {
		return fmt.Errorf("failed to delete bookmark: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return fmt.Errorf("bookmark %s: %w", id, ErrNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBookmark(row rowScanner) (models.Bookmark, error) {
	var b models.Bookmark
	var createdAt string
	if err := row.Scan(&b.ID, &b.Name, &b.Location, &createdAt); err != nil {
		if err == sql.ErrNoRows {
			return models.Bookmark{}, err
		}
		return models.Bookmark{}, fmt.Errorf("failed to scan bookmark: %w", err)
	}
	b.CreatedAt, _ = time.Parse(timestampFormat, createdAt)
	return b, nil
}
