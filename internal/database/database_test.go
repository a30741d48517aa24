package database

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestConnectRejectsUnknownDriver(t *testing.T) {
	_, err := Connect("oracle", "whatever")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database driver")
}

func TestConnectCreatesSchema(t *testing.T) {
	db, err := Connect(DriverSQLite, filepath.Join(t.TempDir(), "catalog.db"))
	require.NoError(t, err)

	for _, table := range []string{
		"developers", "genres", "platforms", "tags",
		"games", "game_platforms", "game_tags",
	} {
		assert.True(t, db.Migrator().HasTable(table), "missing table %s", table)
	}
}

func TestMigrateIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.db")

	db, err := Connect(DriverSQLite, path)
	require.NoError(t, err)

	// Opening the same store again re-runs the migration over existing
	// tables; so does calling it directly.
	again, err := Connect(DriverSQLite, path)
	require.NoError(t, err)
	require.NoError(t, Migrate(again))

	assert.True(t, db.Migrator().HasTable("games"))
	assert.True(t, again.Migrator().HasTable("game_tags"))
}

func TestForeignKeysEnforced(t *testing.T) {
	db, err := Connect(DriverSQLite, filepath.Join(t.TempDir(), "catalog.db"))
	require.NoError(t, err)

	// SQLite only checks references when the pragma is on, so an orphan
	// insert failing proves the DSN carried it.
	err = db.Exec(
		"INSERT INTO games (title, release_date, developer_id, genre_id) VALUES (?, ?, ?, ?)",
		"Orphan", time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), 4242, 4242,
	).Error
	require.Error(t, err)
	assert.ErrorIs(t, err, gorm.ErrForeignKeyViolated)
}

func TestSQLiteDSNOptions(t *testing.T) {
	assert.Equal(t, "catalog.db?_foreign_keys=on&_busy_timeout=5000", sqliteDSN("catalog.db"))

	// The empty path falls back to the default store file.
	assert.Equal(t, "gameshelf.db?_foreign_keys=on&_busy_timeout=5000", sqliteDSN(""))

	// A DSN that already carries options keeps them.
	assert.Equal(t,
		"file:catalog.db?cache=shared&_foreign_keys=on&_busy_timeout=5000",
		sqliteDSN("file:catalog.db?cache=shared"))
}
