package models

import "time"

// Developer represents a game studio.
// The same studio name can exist in more than one country, so lookups use
// the composite natural key (name, country).
type Developer struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:255;not null;uniqueIndex:idx_developers_name_country"`
	Country     string `gorm:"size:100;not null;uniqueIndex:idx_developers_name_country"`
	FoundedYear *int
	Website     string `gorm:"size:512"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
