package db

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a requested row does not exist
var ErrNotFound = errors.New("not found")

// DB wraps the SQLite database connection
type DB struct {
	conn *sql.DB
}

// New creates a new database connection and initializes the schema
func New(dbPath string) (*DB, error) {
	// Ensure the directory exists
	dir := filepath.Dir(dbPath)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Initialize bookmarks table
	if _, err := conn.Exec(createBookmarksTable); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create bookmarks schema: %w", err)
	}

	// Initialize settings table
	if _, err := conn.Exec(createSettingsTable); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create settings schema: %w", err)
	}

	return &DB{conn: conn}, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.conn.Close()
}

// =============================================================================
// Settings
// =============================================================================

// Setting keys
const (
	SettingLastLocation = "last_location"
)

// SetSetting saves a setting to the database
func (db *DB) SetSetting(key, value string) error {
	_, err := db.conn.Exec(upsertSetting, key, value)
	if err != nil {
		return fmt.Errorf("failed to save setting: %w", err)
	}
	return nil
}

// GetSetting retrieves a setting from the database
func (db *DB) GetSetting(key string) (string, error) {
	var value string
	err := db.conn.QueryRow(selectSetting, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil // Not found, return empty string
	}
	if err != nil {
		return "", fmt.Errorf("failed to get setting: %w", err)
	}
	return value, nil
}

// GetLastLocation returns the location the browser was showing when it last exited
func (db *DB) GetLastLocation() (string, error) {
	return db.GetSetting(SettingLastLocation)
}

// SetLastLocation records the location to resume from
func (db *DB) SetLastLocation(location string) error {
	return db.SetSetting(SettingLastLocation, location)
}
