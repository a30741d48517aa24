package models

import "time"

// TagCategory splits tags into the two filter families shown to users.
type TagCategory string

const (
	// TagCategoryGenre marks fine-grained genre labels (e.g., "Roguelike").
	TagCategoryGenre TagCategory = "genre"

	// TagCategoryPreference marks play-style preferences (e.g., "Co-op").
	TagCategoryPreference TagCategory = "preference"
)

// Valid reports whether c is one of the known categories.
func (c TagCategory) Valid() bool {
	return c == TagCategoryGenre || c == TagCategoryPreference
}

// Tag represents a game label used for filtering.
// The same name may appear in both categories, so the natural key is the
// composite (name, category).
type Tag struct {
	ID        uint        `gorm:"primaryKey"`
	Name      string      `gorm:"size:100;not null;uniqueIndex:idx_tags_name_category"`
	Category  TagCategory `gorm:"type:varchar(20);not null;uniqueIndex:idx_tags_name_category"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
