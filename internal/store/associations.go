package store

import (
	"context"
	"fmt"

	"gameshelf/backend/internal/models"

	"gorm.io/gorm"
)

// AttachPlatform links a platform to a game. Attaching an already-linked pair
// fails with ErrConstraintViolation and leaves the single original row.
func (s *Store) AttachPlatform(ctx context.Context, gameID, platformID uint) error {
	return s.withTx(ctx, func(tx *gorm.DB) error {
		return tx.Create(&models.GamePlatform{GameID: gameID, PlatformID: platformID}).Error
	})
}

// DetachPlatform removes the link between a game and a platform.
func (s *Store) DetachPlatform(ctx context.Context, gameID, platformID uint) error {
	return s.withTx(ctx, func(tx *gorm.DB) error {
		res := tx.Where("game_id = ? AND platform_id = ?", gameID, platformID).Delete(&models.GamePlatform{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("game %d has no platform %d: %w", gameID, platformID, ErrNotFound)
		}
		return nil
	})
}

// AttachTag links a tag to a game, with the same duplicate-pair semantics as
// AttachPlatform.
func (s *Store) AttachTag(ctx context.Context, gameID, tagID uint) error {
	return s.withTx(ctx, func(tx *gorm.DB) error {
		return tx.Create(&models.GameTag{GameID: gameID, TagID: tagID}).Error
	})
}

// DetachTag removes the link between a game and a tag.
func (s *Store) DetachTag(ctx context.Context, gameID, tagID uint) error {
	return s.withTx(ctx, func(tx *gorm.DB) error {
		res := tx.Where("game_id = ? AND tag_id = ?", gameID, tagID).Delete(&models.GameTag{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("game %d has no tag %d: %w", gameID, tagID, ErrNotFound)
		}
		return nil
	})
}
