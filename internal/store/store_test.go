package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"gameshelf/backend/internal/database"
	"gameshelf/backend/internal/models"

	"github.com/stretchr/testify/require"
)

// newTestStore opens a fresh migrated SQLite catalog in a temp dir.
func newTestStore(t *testing.T) *Store {
	t.Helper()

	db, err := database.Connect(database.DriverSQLite, filepath.Join(t.TempDir(), "catalog.db"))
	require.NoError(t, err)

	return New(db)
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func mustDeveloper(t *testing.T, s *Store, name, country string) *models.Developer {
	t.Helper()
	developer, err := s.GetOrCreateDeveloper(context.Background(), name, country)
	require.NoError(t, err)
	return developer
}

func mustGenre(t *testing.T, s *Store, name string) *models.Genre {
	t.Helper()
	genre, err := s.GetOrCreateGenre(context.Background(), name)
	require.NoError(t, err)
	return genre
}

func mustPlatform(t *testing.T, s *Store, name string) *models.Platform {
	t.Helper()
	platform, err := s.GetOrCreatePlatform(context.Background(), name)
	require.NoError(t, err)
	return platform
}

func mustTag(t *testing.T, s *Store, name string, category models.TagCategory) *models.Tag {
	t.Helper()
	tag, err := s.GetOrCreateTag(context.Background(), name, category)
	require.NoError(t, err)
	return tag
}

// mustGame creates a minimal valid game for tests that only need a target.
func mustGame(t *testing.T, s *Store, title string, released time.Time, params GameParams) *models.Game {
	t.Helper()

	if params.DeveloperID == 0 {
		params.DeveloperID = mustDeveloper(t, s, "Nintendo", "Japan").ID
	}
	if params.GenreID == 0 {
		params.GenreID = mustGenre(t, s, "Action-Adventure").ID
	}
	params.Title = title
	params.ReleaseDate = released

	game, err := s.CreateGame(context.Background(), params)
	require.NoError(t, err)
	return game
}

func count(t *testing.T, s *Store, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, s.db.Model(model).Count(&n).Error)
	return n
}
