package store

import (
	"context"
	"fmt"

	"gameshelf/backend/internal/models"

	"gorm.io/gorm"
)

// ListDevelopers returns every developer, name-ordered.
func (s *Store) ListDevelopers(ctx context.Context) ([]models.Developer, error) {
	var developers []models.Developer
	if err := s.db.WithContext(ctx).Order("name").Find(&developers).Error; err != nil {
		return nil, err
	}
	return developers, nil
}

// ListGenres returns every genre, name-ordered.
func (s *Store) ListGenres(ctx context.Context) ([]models.Genre, error) {
	var genres []models.Genre
	if err := s.db.WithContext(ctx).Order("name").Find(&genres).Error; err != nil {
		return nil, err
	}
	return genres, nil
}

// ListPlatforms returns every platform, name-ordered.
func (s *Store) ListPlatforms(ctx context.Context) ([]models.Platform, error) {
	var platforms []models.Platform
	if err := s.db.WithContext(ctx).Order("name").Find(&platforms).Error; err != nil {
		return nil, err
	}
	return platforms, nil
}

// ListTags returns tags name-ordered, optionally restricted to one category.
// The empty category means all tags.
func (s *Store) ListTags(ctx context.Context, category models.TagCategory) ([]models.Tag, error) {
	if category != "" && !category.Valid() {
		return nil, fmt.Errorf("%w: unknown tag category %q", ErrValidation, category)
	}

	query := s.db.WithContext(ctx).Order("name")
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var tags []models.Tag
	if err := query.Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

// DeleteDeveloper removes a developer. The ON DELETE CASCADE chain takes its
// games and their junction rows with it; the rest of the catalog is left
// untouched.
func (s *Store) DeleteDeveloper(ctx context.Context, id uint) error {
	return s.withTx(ctx, func(tx *gorm.DB) error {
		res := tx.Delete(&models.Developer{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("developer %d: %w", id, ErrNotFound)
		}
		return nil
	})
}

// DeleteGenre removes a genre with the same cascade semantics as
// DeleteDeveloper.
func (s *Store) DeleteGenre(ctx context.Context, id uint) error {
	return s.withTx(ctx, func(tx *gorm.DB) error {
		res := tx.Delete(&models.Genre{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("genre %d: %w", id, ErrNotFound)
		}
		return nil
	})
}

// GetOrCreateDeveloper looks a developer up by (name, country), creating it
// when absent.
func (s *Store) GetOrCreateDeveloper(ctx context.Context, name, country string) (*models.Developer, error) {
	var developer *models.Developer
	err := s.withTx(ctx, func(tx *gorm.DB) error {
		var err error
		developer, err = getOrCreateDeveloper(tx, name, country)
		return err
	})
	if err != nil {
		return nil, err
	}
	return developer, nil
}

// GetOrCreateGenre looks a genre up by name, creating it when absent.
func (s *Store) GetOrCreateGenre(ctx context.Context, name string) (*models.Genre, error) {
	var genre *models.Genre
	err := s.withTx(ctx, func(tx *gorm.DB) error {
		var err error
		genre, err = getOrCreateGenre(tx, name)
		return err
	})
	if err != nil {
		return nil, err
	}
	return genre, nil
}

// GetOrCreatePlatform looks a platform up by name, creating it when absent.
func (s *Store) GetOrCreatePlatform(ctx context.Context, name string) (*models.Platform, error) {
	var platform *models.Platform
	err := s.withTx(ctx, func(tx *gorm.DB) error {
		var err error
		platform, err = getOrCreatePlatform(tx, name)
		return err
	})
	if err != nil {
		return nil, err
	}
	return platform, nil
}

// GetOrCreateTag looks a tag up by (name, category), creating it when absent.
func (s *Store) GetOrCreateTag(ctx context.Context, name string, category models.TagCategory) (*models.Tag, error) {
	var tag *models.Tag
	err := s.withTx(ctx, func(tx *gorm.DB) error {
		var err error
		tag, err = getOrCreateTag(tx, name, category)
		return err
	})
	if err != nil {
		return nil, err
	}
	return tag, nil
}

func getOrCreateDeveloper(tx *gorm.DB, name, country string) (*models.Developer, error) {
	if name == "" || country == "" {
		return nil, fmt.Errorf("%w: developer name and country are required", ErrValidation)
	}
	var developer models.Developer
	err := tx.Where(&models.Developer{Name: name, Country: country}).FirstOrCreate(&developer).Error
	if err != nil {
		return nil, err
	}
	return &developer, nil
}

func getOrCreateGenre(tx *gorm.DB, name string) (*models.Genre, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: genre name is required", ErrValidation)
	}
	var genre models.Genre
	err := tx.Where(&models.Genre{Name: name}).FirstOrCreate(&genre).Error
	if err != nil {
		return nil, err
	}
	return &genre, nil
}

func getOrCreatePlatform(tx *gorm.DB, name string) (*models.Platform, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: platform name is required", ErrValidation)
	}
	var platform models.Platform
	err := tx.Where(&models.Platform{Name: name}).FirstOrCreate(&platform).Error
	if err != nil {
		return nil, err
	}
	return &platform, nil
}

func getOrCreateTag(tx *gorm.DB, name string, category models.TagCategory) (*models.Tag, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: tag name is required", ErrValidation)
	}
	if !category.Valid() {
		return nil, fmt.Errorf("%w: unknown tag category %q", ErrValidation, category)
	}
	var tag models.Tag
	err := tx.Where(&models.Tag{Name: name, Category: category}).FirstOrCreate(&tag).Error
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

// FilterOptions carries the distinct values consumers offer as filter
// choices.
type FilterOptions struct {
	Genres      []string
	Preferences []string
	Countries   []string
	Platforms   []string
}

// FilterOptions returns the distinct, ordered values for each filter family.
func (s *Store) FilterOptions(ctx context.Context) (*FilterOptions, error) {
	opts := &FilterOptions{}
	db := s.db.WithContext(ctx)

	if err := db.Model(&models.Genre{}).Order("name").Pluck("name", &opts.Genres).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Tag{}).
		Where("category = ?", models.TagCategoryPreference).
		Order("name").
		Pluck("name", &opts.Preferences).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Developer{}).
		Distinct().
		Order("country").
		Pluck("country", &opts.Countries).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Platform{}).Order("name").Pluck("name", &opts.Platforms).Error; err != nil {
		return nil, err
	}

	return opts, nil
}
