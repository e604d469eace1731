package models

import (
	"time"

	"gorm.io/datatypes"
)

// SettingProfile is a named, game-specific configuration instance. Values
// holds exactly the enabled subset of the game's internal names with the
// value last set for each; it is always replaced wholesale on update.
//
// Values is persisted independently of the definitions table on purpose:
// deleting or renaming a definition must not touch the profiles that still
// reference its old internal name.
type SettingProfile struct {
	// ID is the unique identifier for the profile.
	ID uint64 `gorm:"primaryKey" json:"id"`
	// GameID is the owning game.
	GameID uint64 `gorm:"not null;index;uniqueIndex:idx_profile_game_name" json:"game_id"`
	// Name is the profile name, unique within the game.
	Name string `gorm:"size:100;not null;uniqueIndex:idx_profile_game_name" json:"name"`
	// Description is optional free text.
	Description string `gorm:"type:text" json:"description,omitempty"`
	// ProcessorType is advisory hardware metadata, never validated.
	ProcessorType string `gorm:"size:150" json:"processor_type,omitempty"`
	// RAM is advisory hardware metadata, never validated.
	RAM string `gorm:"size:100" json:"ram,omitempty"`
	// GraphicCard is advisory hardware metadata, never validated.
	GraphicCard string `gorm:"size:150" json:"graphic_card,omitempty"`
	// Values maps internal names to their typed values.
	Values datatypes.JSONMap `json:"values"`
	// IsActive is advisory; multiple active profiles per game are allowed.
	IsActive bool `gorm:"default:true" json:"is_active"`
	// CreatedAt is managed by GORM.
	CreatedAt time.Time `json:"created_at"`
	// UpdatedAt is managed by GORM.
	UpdatedAt time.Time `json:"updated_at"`
}
