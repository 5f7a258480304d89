package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	database, err := New(filepath.Join(t.TempDir(), "nested", "people.db"))
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database
}

func TestBookmarks(t *testing.T) {
	database := newTestDB(t)

	women, err := database.AddBookmark("Women of the 19th century", "/people?centuries=19&sex=f")
	require.NoError(t, err)
	assert.NotEmpty(t, women.ID)

	unnamed, err := database.AddBookmark("  ", "/people?sort=born")
	require.NoError(t, err)
	assert.Equal(t, "/people?sort=born", unnamed.Name)

	bookmarks, err := database.GetBookmarks()
	require.NoError(t, err)
	require.Len(t, bookmarks, 2)
	// newest first
	assert.Equal(t, unnamed.ID, bookmarks[0].ID)
	assert.Equal(t, women.Location, bookmarks[1].Location)
	assert.False(t, bookmarks[1].CreatedAt.IsZero())

	got, err := database.GetBookmark(women.ID)
	require.NoError(t, err)
	assert.Equal(t, women.Name, got.Name)

	byName, err := database.GetBookmarkByName("Women of the 19th century")
	require.NoError(t, err)
	assert.Equal(t, women.ID, byName.ID)

	require.NoError(t, database.DeleteBookmark(women.ID))
	_, err = database.GetBookmark(women.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, database.DeleteBookmark(women.ID), ErrNotFound)
}

func TestAddBookmarkRequiresLocation(t *testing.T) {
	database := newTestDB(t)
	_, err := database.AddBookmark("empty", " ")
	assert.Error(t, err)
}

func TestLastLocation(t *testing.T) {
	database := newTestDB(t)

	loc, err := database.GetLastLocation()
	require.NoError(t, err)
	assert.Empty(t, loc)

	require.NoError(t, database.SetLastLocation("/people?sex=m"))
	require.NoError(t, database.SetLastLocation("/people/bob-1920?sex=m"))

	loc, err = database.GetLastLocation()
	require.NoError(t, err)
	assert.Equal(t, "/people/bob-1920?sex=m", loc)
}
