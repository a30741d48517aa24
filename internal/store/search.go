package store

import (
	"context"
	"fmt"

	"gameshelf/backend/internal/models"
)

// SortOrder selects the release-date ordering of search results.
type SortOrder string

const (
	// SortReleaseDateDesc orders newest-first. It is the default.
	SortReleaseDateDesc SortOrder = "release_date_desc"
	// SortReleaseDateAsc orders oldest-first.
	SortReleaseDateAsc SortOrder = "release_date_asc"
)

// GameFilter narrows SearchGames. Zero-valued fields are ignored; slice
// fields match games carrying ANY of the listed names. Filters combine
// with AND across fields.
type GameFilter struct {
	// Tags matches by tag name regardless of category.
	Tags []string
	// Preferences matches by tag name within the preference category.
	Preferences []string
	// Genres matches by genre name.
	Genres []string
	// Country matches the developer's country exactly.
	Country string
	// Platform matches a single platform name.
	Platform string
	// Sort defaults to SortReleaseDateDesc when empty.
	Sort SortOrder
}

// SearchGames returns games matching the filter with every relation
// resolved. Results come back in a total order: release date per the
// requested direction, then ID in the same direction, so equal dates
// tie-break deterministically and flipping the sort exactly reverses
// the result.
func (s *Store) SearchGames(ctx context.Context, filter GameFilter) ([]models.Game, error) {
	query := s.db.WithContext(ctx).Model(&models.Game{})

	if len(filter.Tags) > 0 {
		query = query.Where("games.id IN (?)",
			s.db.Table("game_tags").
				Select("game_tags.game_id").
				Joins("JOIN tags ON tags.id = game_tags.tag_id").
				Where("tags.name IN ?", filter.Tags))
	}
	if len(filter.Preferences) > 0 {
		query = query.Where("games.id IN (?)",
			s.db.Table("game_tags").
				Select("game_tags.game_id").
				Joins("JOIN tags ON tags.id = game_tags.tag_id").
				Where("tags.name IN ? AND tags.category = ?", filter.Preferences, models.TagCategoryPreference))
	}
	if len(filter.Genres) > 0 {
		query = query.Where("games.genre_id IN (?)",
			s.db.Model(&models.Genre{}).
				Select("id").
				Where("name IN ?", filter.Genres))
	}
	if filter.Country != "" {
		query = query.Where("games.developer_id IN (?)",
			s.db.Model(&models.Developer{}).
				Select("id").
				Where("country = ?", filter.Country))
	}
	if filter.Platform != "" {
		query = query.Where("games.id IN (?)",
			s.db.Table("game_platforms").
				Select("game_platforms.game_id").
				Joins("JOIN platforms ON platforms.id = game_platforms.platform_id").
				Where("platforms.name = ?", filter.Platform))
	}

	switch filter.Sort {
	case SortReleaseDateAsc:
		query = query.Order("games.release_date ASC").Order("games.id ASC")
	case SortReleaseDateDesc, "":
		query = query.Order("games.release_date DESC").Order("games.id DESC")
	default:
		return nil, fmt.Errorf("%w: unknown sort order %q", ErrValidation, filter.Sort)
	}

	var games []models.Game
	err := query.
		Preload("Developer").
		Preload("Genre").
		Preload("Platforms").
		Preload("Tags").
		Find(&games).Error
	if err != nil {
		return nil, err
	}
	return games, nil
}
