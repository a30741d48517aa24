package models

import "time"

// Platform represents a system a game ships on (e.g., "Nintendo Switch").
type Platform struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"size:100;unique;not null"`
	Manufacturer string `gorm:"size:100"`
	ReleaseYear  *int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
