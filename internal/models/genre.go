package models

import "time"

// Genre represents a top-level game genre (e.g., "RPG", "Action").
// Finer-grained genre labels live in the tag table instead.
type Genre struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:100;unique;not null"`
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
