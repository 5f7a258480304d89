package db

// Schema for saved locations (bookmarks)
const createBookmarksTable = `
CREATE TABLE IF NOT EXISTS bookmarks (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    location TEXT NOT NULL,
    created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_bookmarks_created ON bookmarks(created_at);
`

const insertBookmark = `
INSERT INTO bookmarks (id, name, location, created_at) VALUES (?, ?, ?, ?)
`

const selectBookmarks = `
SELECT id, name, location, created_at
FROM bookmarks
ORDER BY created_at DESC, name ASC
`

const selectBookmark = `
SELECT id, name, location, created_at FROM bookmarks WHERE id = ?
`

const selectBookmarkByName = `
SELECT id, name, location, created_at
FROM bookmarks
WHERE name = ?
ORDER BY created_at DESC
LIMIT 1
`

const deleteBookmark = `
DELETE FROM bookmarks WHERE id = ?
`

// Schema for key/value settings (last visited location, etc.)
const createSettingsTable = `
CREATE TABLE IF NOT EXISTS settings (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL,
    updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
`

const upsertSetting = `
INSERT INTO settings (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
`

const selectSetting = `
SELECT value FROM settings WHERE key = ?
`
