// Package profile provides CRUD operations for per-game setting profiles.
//
// The profile store never inspects the definitions table. Values maps are
// written and replaced wholesale; whether their keys still resolve against
// the live schema is the consistency guard's concern at render time.
package profile

import (
	"errors"

	"gorm.io/gorm"

	"github.com/GoGameSettings-Admin/GoGameSettings-Admin/internal/db/models"
	"github.com/GoGameSettings-Admin/GoGameSettings-Admin/internal/settings"
)

const (
	gameQueryPattern     = "game_id = ?"
	gameNameQueryPattern = "game_id = ? AND name = ?"
)

var (
	// ErrProfileNotFound is returned when a profile is not found.
	ErrProfileNotFound = errors.New("setting profile not found")
	// ErrNameTaken is returned when the profile name is already used within
	// the game.
	ErrNameTaken = errors.New("setting profile name already in use for this game")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// GetByID retrieves a profile by its ID.
func GetByID(db *gorm.DB, id uint64) (*models.SettingProfile, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var p models.SettingProfile

	result := db.First(&p, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}

		return nil, result.Error
	}

	return &p, nil
}

// GetAllByGame retrieves all profiles of a game, ordered by name.
func GetAllByGame(db *gorm.DB, gameID uint64) ([]models.SettingProfile, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var profiles []models.SettingProfile

	result := db.Where(gameQueryPattern, gameID).Order("name").Find(&profiles)
	if result.Error != nil {
		return nil, result.Error
	}

	return profiles, nil
}

// Create validates and stores a new profile.
func Create(db *gorm.DB, p *models.SettingProfile) (*models.SettingProfile, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	if err := validate(p); err != nil {
		return nil, err
	}

	taken, err := nameTaken(db, p.GameID, p.Name, 0)
	if err != nil {
		return nil, err
	}

	if taken {
		return nil, ErrNameTaken
	}

	if result := db.Create(p); result.Error != nil {
		return nil, result.Error
	}

	return p, nil
}

// Update replaces an existing profile. Values is a full replace, not a
// patch: the last full write wins and concurrent edits are not merged.
func Update(db *gorm.DB, id uint64, input *models.SettingProfile) (*models.SettingProfile, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	existing, err := GetByID(db, id)
	if err != nil {
		return nil, err
	}

	existing.GameID = input.GameID
	existing.Name = input.Name
	existing.Description = input.Description
	existing.ProcessorType = input.ProcessorType
	existing.RAM = input.RAM
	existing.GraphicCard = input.GraphicCard
	existing.Values = input.Values
	existing.IsActive = input.IsActive

	if err := validate(existing); err != nil {
		return nil, err
	}

	taken, err := nameTaken(db, existing.GameID, existing.Name, id)
	if err != nil {
		return nil, err
	}

	if taken {
		return nil, ErrNameTaken
	}

	if result := db.Save(existing); result.Error != nil {
		return nil, result.Error
	}

	return existing, nil
}

// Delete removes a profile by ID. Definitions are unaffected.
func Delete(db *gorm.DB, id uint64) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Delete(&models.SettingProfile{}, id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}

	return nil
}

func validate(p *models.SettingProfile) error {
	name, err := settings.ValidateProfileName(p.Name)
	if err != nil {
		return err
	}

	p.Name = name

	if p.GameID == 0 {
		return settings.NewValidationError("game", "game required")
	}

	return nil
}

func nameTaken(db *gorm.DB, gameID uint64, name string, selfID uint64) (bool, error) {
	var existing models.SettingProfile

	result := db.Where(gameNameQueryPattern, gameID, name).First(&existing)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return false, nil
		}

		return false, result.Error
	}

	return existing.ID != selfID, nil
}
