package models

import "time"

// Game is the central catalog entity. Every game belongs to exactly one
// developer and one genre; both references cascade on delete, so removing a
// developer or genre physically removes its games and, transitively, their
// junction rows.
type Game struct {
	ID          uint      `gorm:"primaryKey"`
	Title       string    `gorm:"size:255;not null;index"`
	ReleaseDate time.Time `gorm:"not null;index"`
	Description string
	Rating      *float64 `gorm:"index"`
	Price       *float64
	ImageURL    string `gorm:"size:512"`
	DeveloperID uint   `gorm:"not null;index"`
	GenreID     uint   `gorm:"not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Developer Developer   `gorm:"foreignKey:DeveloperID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Genre     Genre       `gorm:"foreignKey:GenreID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Platforms []*Platform `gorm:"many2many:game_platforms;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Tags      []*Tag      `gorm:"many2many:game_tags;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// TagsByCategory returns the names of the game's tags in the given category,
// preserving load order.
func (g *Game) TagsByCategory(category TagCategory) []string {
	var names []string
	for _, tag := range g.Tags {
		if tag != nil && tag.Category == category {
			names = append(names, tag.Name)
		}
	}
	return names
}
