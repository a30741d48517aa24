package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gameshelf/backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GameParams is the fully-populated, ID-referenced payload for creating or
// updating a game. Updates replace the scalar fields and both association
// sets wholesale.
type GameParams struct {
	Title       string    `validate:"required,max=255"`
	ReleaseDate time.Time `validate:"required"`
	Description string
	Rating      *float64 `validate:"omitempty,gte=0"`
	Price       *float64 `validate:"omitempty,gte=0"`
	ImageURL    string   `validate:"max=512"`
	DeveloperID uint     `validate:"required"`
	GenreID     uint     `validate:"required"`
	PlatformIDs []uint
	TagIDs      []uint
}

// GameImport is the name-referenced payload used by the import endpoint and
// the seed loader. Every reference resolves through get-or-create inside the
// same transaction as the insert.
type GameImport struct {
	Title          string    `validate:"required,max=255"`
	ReleaseDate    time.Time `validate:"required"`
	Description    string
	Rating         *float64 `validate:"omitempty,gte=0"`
	Price          *float64 `validate:"omitempty,gte=0"`
	ImageURL       string   `validate:"max=512"`
	Developer      string   `validate:"required,max=255"`
	Country        string   `validate:"required,max=100"`
	Genre          string   `validate:"required,max=100"`
	Platforms      []string
	GenreTags      []string
	PreferenceTags []string
}

// CreateGame inserts a game and its association rows in one transaction. A
// nonexistent developer, genre, platform, or tag reference fails the whole
// operation with ErrConstraintViolation.
func (s *Store) CreateGame(ctx context.Context, params GameParams) (*models.Game, error) {
	if err := s.checkPayload(params); err != nil {
		return nil, err
	}

	game := models.Game{
		Title:       params.Title,
		ReleaseDate: params.ReleaseDate,
		Description: params.Description,
		Rating:      params.Rating,
		Price:       params.Price,
		ImageURL:    params.ImageURL,
		DeveloperID: params.DeveloperID,
		GenreID:     params.GenreID,
	}

	err := s.withTx(ctx, func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(&game).Error; err != nil {
			return err
		}
		return attachAssociations(tx, game.ID, params.PlatformIDs, params.TagIDs)
	})
	if err != nil {
		return nil, err
	}

	return s.GetGame(ctx, game.ID)
}

// GetGame returns one game with its developer, genre, platforms, and tags
// resolved.
func (s *Store) GetGame(ctx context.Context, id uint) (*models.Game, error) {
	var game models.Game
	err := s.db.WithContext(ctx).
		Preload("Developer").
		Preload("Genre").
		Preload("Platforms").
		Preload("Tags").
		First(&game, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("game %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &game, nil
}

// UpdateGame overwrites a game's fields and replaces both association sets in
// one transaction. Games are the only entity with an update path: developer
// and genre rows are re-pointed, never mutated.
func (s *Store) UpdateGame(ctx context.Context, id uint, params GameParams) (*models.Game, error) {
	if err := s.checkPayload(params); err != nil {
		return nil, err
	}

	err := s.withTx(ctx, func(tx *gorm.DB) error {
		var game models.Game
		if err := tx.First(&game, id).Error; err != nil {
			return err
		}

		updates := map[string]any{
			"title":        params.Title,
			"release_date": params.ReleaseDate,
			"description":  params.Description,
			"rating":       params.Rating,
			"price":        params.Price,
			"image_url":    params.ImageURL,
			"developer_id": params.DeveloperID,
			"genre_id":     params.GenreID,
		}
		if err := tx.Model(&game).Updates(updates).Error; err != nil {
			return err
		}

		if err := tx.Where("game_id = ?", id).Delete(&models.GamePlatform{}).Error; err != nil {
			return err
		}
		if err := tx.Where("game_id = ?", id).Delete(&models.GameTag{}).Error; err != nil {
			return err
		}
		return attachAssociations(tx, id, params.PlatformIDs, params.TagIDs)
	})
	if err != nil {
		return nil, err
	}

	return s.GetGame(ctx, id)
}

// DeleteGame removes a game; its junction rows fall to the ON DELETE CASCADE
// constraints.
func (s *Store) DeleteGame(ctx context.Context, id uint) error {
	return s.withTx(ctx, func(tx *gorm.DB) error {
		res := tx.Delete(&models.Game{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("game %d: %w", id, ErrNotFound)
		}
		return nil
	})
}

// ImportGame creates a game from a name-referenced record.
func (s *Store) ImportGame(ctx context.Context, record GameImport) (*models.Game, error) {
	if err := s.checkPayload(record); err != nil {
		return nil, err
	}

	var gameID uint
	err := s.withTx(ctx, func(tx *gorm.DB) error {
		id, err := importGame(tx, record)
		if err != nil {
			return err
		}
		gameID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetGame(ctx, gameID)
}

// SeedCatalog imports a batch of records as one transaction; any failure
// rolls back the entire batch. Returns the number of games inserted.
func (s *Store) SeedCatalog(ctx context.Context, records []GameImport) (int, error) {
	for i := range records {
		if err := s.checkPayload(records[i]); err != nil {
			return 0, fmt.Errorf("record %d (%q): %w", i, records[i].Title, err)
		}
	}

	err := s.withTx(ctx, func(tx *gorm.DB) error {
		for i := range records {
			if _, err := importGame(tx, records[i]); err != nil {
				return fmt.Errorf("record %d (%q): %w", i, records[i].Title, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(records), nil
}

// importGame runs the name-resolving insert inside an open transaction; the
// seed path shares it so a whole catalog loads as one unit.
func importGame(tx *gorm.DB, record GameImport) (uint, error) {
	developer, err := getOrCreateDeveloper(tx, record.Developer, record.Country)
	if err != nil {
		return 0, err
	}
	genre, err := getOrCreateGenre(tx, record.Genre)
	if err != nil {
		return 0, err
	}

	game := models.Game{
		Title:       record.Title,
		ReleaseDate: record.ReleaseDate,
		Description: record.Description,
		Rating:      record.Rating,
		Price:       record.Price,
		ImageURL:    record.ImageURL,
		DeveloperID: developer.ID,
		GenreID:     genre.ID,
	}
	if err := tx.Omit(clause.Associations).Create(&game).Error; err != nil {
		return 0, err
	}

	for _, name := range record.Platforms {
		platform, err := getOrCreatePlatform(tx, name)
		if err != nil {
			return 0, err
		}
		if err := tx.Create(&models.GamePlatform{GameID: game.ID, PlatformID: platform.ID}).Error; err != nil {
			return 0, err
		}
	}
	for _, name := range record.GenreTags {
		if err := importTag(tx, game.ID, name, models.TagCategoryGenre); err != nil {
			return 0, err
		}
	}
	for _, name := range record.PreferenceTags {
		if err := importTag(tx, game.ID, name, models.TagCategoryPreference); err != nil {
			return 0, err
		}
	}

	return game.ID, nil
}

func importTag(tx *gorm.DB, gameID uint, name string, category models.TagCategory) error {
	tag, err := getOrCreateTag(tx, name, category)
	if err != nil {
		return err
	}
	return tx.Create(&models.GameTag{GameID: gameID, TagID: tag.ID}).Error
}

// attachAssociations inserts junction rows directly, so a duplicate pair or a
// reference to a missing platform/tag surfaces as a constraint violation.
func attachAssociations(tx *gorm.DB, gameID uint, platformIDs, tagIDs []uint) error {
	for _, platformID := range platformIDs {
		if err := tx.Create(&models.GamePlatform{GameID: gameID, PlatformID: platformID}).Error; err != nil {
			return err
		}
	}
	for _, tagID := range tagIDs {
		if err := tx.Create(&models.GameTag{GameID: gameID, TagID: tagID}).Error; err != nil {
			return err
		}
	}
	return nil
}
