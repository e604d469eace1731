package definition

import (
	"github.com/GoGameSettings-Admin/GoGameSettings-Admin/internal/db/models"
	"github.com/GoGameSettings-Admin/GoGameSettings-Admin/internal/settings"
)

// definitionInput is the request body for creating or updating a setting
// definition. Domain invariants (option lists, ranges, name derivation) are
// enforced by the schema store; the tags only guard the body shape.
type definitionInput struct {
	GameID       uint64   `json:"game_id"`
	Name         string   `json:"name" validate:"omitempty,max=100"`
	DisplayName  string   `json:"display_name" validate:"max=100"`
	FieldType    string   `json:"field_type" validate:"omitempty,oneof=select number toggle text"`
	Category     string   `json:"category" validate:"omitempty,max=50"`
	Options      []string `json:"options" validate:"omitempty,dive,max=100"`
	MinValue     *int     `json:"min_value"`
	MaxValue     *int     `json:"max_value"`
	DefaultValue string   `json:"default_value" validate:"max=100"`
	Order        int      `json:"order"`
}

// row converts the input into a storage row.
func (in definitionInput) row() *models.SettingDefinition {
	return &models.SettingDefinition{
		GameID:       in.GameID,
		Name:         in.Name,
		DisplayName:  in.DisplayName,
		FieldType:    settings.FieldType(in.FieldType),
		Category:     settings.Category(in.Category),
		Options:      in.Options,
		MinValue:     in.MinValue,
		MaxValue:     in.MaxValue,
		DefaultValue: in.DefaultValue,
		Order:        in.Order,
	}
}
