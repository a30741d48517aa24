package models

// GamePlatform links a game to a platform it ships on.
// The primary key is a composite of (GameID, PlatformID), so attaching the
// same pair twice is a constraint violation rather than a silent second row.
type GamePlatform struct {
	GameID     uint `gorm:"primaryKey"`
	PlatformID uint `gorm:"primaryKey;index"`
}

// GameTag links a game to a tag, keyed the same way as GamePlatform.
type GameTag struct {
	GameID uint `gorm:"primaryKey"`
	TagID  uint `gorm:"primaryKey;index"`
}
