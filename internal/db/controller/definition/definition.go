// Package definition provides CRUD operations for per-game setting
// definitions (the schema store).
package definition

import (
	"errors"
	"sort"

	"gorm.io/gorm"

	"github.com/GoGameSettings-Admin/GoGameSettings-Admin/internal/db/models"
	"github.com/GoGameSettings-Admin/GoGameSettings-Admin/internal/settings"
)

const (
	gameQueryPattern     = "game_id = ?"
	gameNameQueryPattern = "game_id = ? AND name = ?"
)

var (
	// ErrDefinitionNotFound is returned when a definition is not found.
	ErrDefinitionNotFound = errors.New("setting definition not found")
	// ErrNameTaken is returned when the internal name is already used within
	// the game.
	ErrNameTaken = errors.New("setting definition name already in use for this game")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// GetByID retrieves a definition by its ID.
func GetByID(db *gorm.DB, id uint64) (*models.SettingDefinition, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var def models.SettingDefinition

	result := db.First(&def, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrDefinitionNotFound
		}

		return nil, result.Error
	}

	return &def, nil
}

// GetAllByGame retrieves all definitions of a game, ordered by the fixed
// category enumeration, then Order ascending, ties broken by ID (creation
// order). The ordering is load-bearing for the schema editor and the
// profile authoring layout.
func GetAllByGame(db *gorm.DB, gameID uint64) ([]models.SettingDefinition, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var defs []models.SettingDefinition

	result := db.Where(gameQueryPattern, gameID).Find(&defs)
	if result.Error != nil {
		return nil, result.Error
	}

	sortRows(defs)

	return defs, nil
}

// sortRows applies the render ordering to definition rows. The category rank
// lives in the domain package, so the sort cannot be expressed portably in
// SQL across the supported engines.
func sortRows(defs []models.SettingDefinition) {
	sort.SliceStable(defs, func(i, j int) bool {
		a, b := defs[i], defs[j]

		if ra, rb := a.Category.Rank(), b.Category.Rank(); ra != rb {
			return ra < rb
		}

		if a.Order != b.Order {
			return a.Order < b.Order
		}

		return a.ID < b.ID
	})
}

// Create validates and stores a new definition. The internal name is derived
// from the display name when unset, and a select default outside the option
// list is silently cleared.
func Create(db *gorm.DB, def *models.SettingDefinition) (*models.SettingDefinition, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	if err := normalizeAndValidate(def); err != nil {
		return nil, err
	}

	taken, err := nameTaken(db, def.GameID, def.Name, 0)
	if err != nil {
		return nil, err
	}

	if taken {
		return nil, ErrNameTaken
	}

	if result := db.Create(def); result.Error != nil {
		return nil, result.Error
	}

	return def, nil
}

// Update validates and stores changes to an existing definition. The field
// type is fixed at creation and cannot be changed.
func Update(db *gorm.DB, id uint64, input *models.SettingDefinition) (*models.SettingDefinition, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	existing, err := GetByID(db, id)
	if err != nil {
		return nil, err
	}

	if input.FieldType != "" && input.FieldType != existing.FieldType {
		return nil, settings.NewValidationError("field_type", "field type is fixed at creation")
	}

	existing.DisplayName = input.DisplayName
	existing.Name = input.Name
	existing.Category = input.Category
	existing.Options = input.Options
	existing.MinValue = input.MinValue
	existing.MaxValue = input.MaxValue
	existing.DefaultValue = input.DefaultValue
	existing.Order = input.Order

	if err := normalizeAndValidate(existing); err != nil {
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

// Delete removes a definition by ID. The delete is deliberately
// non-cascading: profiles referencing the definition's internal name keep
// their stored values and surface them through the tolerant lookup instead.
func Delete(db *gorm.DB, id uint64) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Delete(&models.SettingDefinition{}, id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrDefinitionNotFound
	}

	return nil
}

// normalizeAndValidate runs the domain normalization and invariants against
// the row and writes the normalized fields back.
func normalizeAndValidate(def *models.SettingDefinition) error {
	view := def.Definition()
	view.Normalize()

	if err := view.Validate(); err != nil {
		return err
	}

	def.Name = view.Name
	def.DisplayName = view.DisplayName
	def.DefaultValue = view.Default

	return nil
}

func nameTaken(db *gorm.DB, gameID uint64, name string, selfID uint64) (bool, error) {
	var existing models.SettingDefinition

	result := db.Where(gameNameQueryPattern, gameID, name).First(&existing)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return false, nil
		}

		return false, result.Error
	}

	return existing.ID != selfID, nil
}
