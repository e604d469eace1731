package models

import (
	"time"

	"github.com/GoGameSettings-Admin/GoGameSettings-Admin/internal/settings"
)

// SettingDefinition is the persisted form of one configurable field of a
// game's schema. The flat column layout carries all variant fields; the
// domain view obtained through Definition() narrows them per field type.
type SettingDefinition struct {
	// ID is the unique identifier for the definition.
	ID uint64 `gorm:"primaryKey" json:"id"`
	// GameID is the owning game. Definitions are never shared across games.
	GameID uint64 `gorm:"not null;index;uniqueIndex:idx_definition_game_name" json:"game_id"`
	// Name is the machine key, unique within the game.
	Name string `gorm:"size:100;not null;uniqueIndex:idx_definition_game_name" json:"name"`
	// DisplayName is the human label.
	DisplayName string `gorm:"size:100;not null" json:"display_name"`
	// FieldType is fixed at creation and selects the value domain.
	FieldType settings.FieldType `gorm:"type:varchar(20);not null" json:"field_type"`
	// Category is used for grouping and ordering only.
	Category settings.Category `gorm:"type:varchar(50);not null" json:"category"`
	// Options is the ordered option list, meaningful for select fields only.
	Options []string `gorm:"serializer:json" json:"options,omitempty"`
	// MinValue is the lower bound, meaningful for number fields only.
	MinValue *int `json:"min_value,omitempty"`
	// MaxValue is the upper bound, meaningful for number fields only.
	MaxValue *int `json:"max_value,omitempty"`
	// DefaultValue is the textual default, interpreted per field type.
	DefaultValue string `gorm:"size:100" json:"default_value"`
	// Order is the sort key within the category.
	Order int `gorm:"default:0" json:"order"`
	// CreatedAt is managed by GORM.
	CreatedAt time.Time `json:"created_at"`
	// UpdatedAt is managed by GORM.
	UpdatedAt time.Time `json:"updated_at"`
}

// Definition converts the row into the domain view used by coercion,
// grouping, drafting and resolution.
func (d SettingDefinition) Definition() settings.Definition {
	def := settings.Definition{
		ID:          d.ID,
		GameID:      d.GameID,
		Name:        d.Name,
		DisplayName: d.DisplayName,
		Type:        d.FieldType,
		Category:    d.Category,
		Options:     d.Options,
		Default:     d.DefaultValue,
		Order:       d.Order,
	}

	if d.MinValue != nil {
		def.MinValue = *d.MinValue
	}

	if d.MaxValue != nil {
		def.MaxValue = *d.MaxValue
	}

	return def
}

// Definitions converts a slice of rows into domain views.
func Definitions(rows []SettingDefinition) []settings.Definition {
	defs := make([]settings.Definition, len(rows))
	for i, row := range rows {
		defs[i] = row.Definition()
	}

	return defs
}
