package profile

import (
	"gorm.io/datatypes"

	"github.com/GoGameSettings-Admin/GoGameSettings-Admin/internal/db/models"
)

// profileInput is the request body for creating or updating a setting
// profile.
//
// When EnabledSettings is present the persisted values map is computed
// through the authoring draft: values acts as the working map and only keys
// in the enabled set survive the save. Without EnabledSettings the values
// map is stored as given. Either way the save is a full replace.
type profileInput struct {
	GameID          uint64         `json:"game_id"`
	Name            string         `json:"name" validate:"max=100"`
	Description     string         `json:"description"`
	ProcessorType   string         `json:"processor_type" validate:"max=150"`
	RAM             string         `json:"ram" validate:"max=100"`
	GraphicCard     string         `json:"graphic_card" validate:"max=150"`
	Values          map[string]any `json:"values"`
	EnabledSettings *[]string      `json:"enabled_settings"`
	IsActive        *bool          `json:"is_active"`
}

// row converts the input into a storage row with the given persisted values.
func (in profileInput) row(values map[string]any) *models.SettingProfile {
	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}

	return &models.SettingProfile{
		GameID:        in.GameID,
		Name:          in.Name,
		Description:   in.Description,
		ProcessorType: in.ProcessorType,
		RAM:           in.RAM,
		GraphicCard:   in.GraphicCard,
		Values:        datatypes.JSONMap(values),
		IsActive:      active,
	}
}

// draftSeed is the response of the new-profile endpoint: the pre-seeded
// working map next to the deliberately empty enabled set.
type draftSeed struct {
	GameID          uint64         `json:"game_id"`
	EnabledSettings []string       `json:"enabled_settings"`
	CandidateValues map[string]any `json:"candidate_values"`
}
