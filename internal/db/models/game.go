// Package models contains database model definitions.
package models

import (
	"time"
)

// GameType is a coarse genre classification for the game catalog.
type GameType string

const (
	// GameTypeShooter is a first or third person shooter.
	GameTypeShooter GameType = "shooter"
	// GameTypeRacing is a racing game.
	GameTypeRacing GameType = "racing"
	// GameTypeSports is a sports game.
	GameTypeSports GameType = "sports"
	// GameTypeOther is everything else.
	GameTypeOther GameType = "other"
)

// Game represents one entry of the game catalog. The settings engine only
// reads games for selection lists; catalog maintenance lives outside this
// service.
type Game struct {
	// ID is the unique identifier for the game.
	ID uint64 `gorm:"primaryKey" json:"id"`
	// Name is the unique catalog name.
	Name string `gorm:"unique;size:100;not null" json:"name"`
	// Slug is the unique URL-safe key derived from the name.
	Slug string `gorm:"unique;size:100;not null" json:"slug"`
	// Description is optional free text.
	Description string `gorm:"type:text" json:"description,omitempty"`
	// GameType is the genre classification.
	GameType GameType `gorm:"type:varchar(20);not null;default:'other'" json:"game_type"`
	// IsActive marks games shown on the public site.
	IsActive bool `json:"is_active"`
	// CreatedAt is managed by GORM.
	CreatedAt time.Time `json:"created_at"`
	// UpdatedAt is managed by GORM.
	UpdatedAt time.Time `json:"updated_at"`
}
