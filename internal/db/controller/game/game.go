// Package game provides read access and seeding support for the game
// catalog. The settings engine consumes games only for selection lists;
// catalog maintenance is an external collaborator.
package game

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/GoGameSettings-Admin/GoGameSettings-Admin/internal/db/models"
	"github.com/GoGameSettings-Admin/GoGameSettings-Admin/internal/settings"
)

const nameQueryPattern = "name = ?"

var (
	// ErrGameNotFound is returned when a game is not found.
	ErrGameNotFound = errors.New("game not found")
	// ErrGameNameEmpty is returned when creating a game with an empty name.
	ErrGameNameEmpty = errors.New("game name cannot be empty")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// GetByID retrieves a game by its ID.
func GetByID(db *gorm.DB, id uint64) (*models.Game, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var g models.Game

	result := db.First(&g, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrGameNotFound
		}

		return nil, result.Error
	}

	return &g, nil
}

// GetAll retrieves all games ordered by name.
func GetAll(db *gorm.DB) ([]models.Game, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var games []models.Game

	result := db.Order("name").Find(&games)
	if result.Error != nil {
		return nil, result.Error
	}

	return games, nil
}

// GetOrCreate returns the game with the given name, creating it when
// missing. Used by seeding.
func GetOrCreate(db *gorm.DB, g *models.Game) (*models.Game, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	g.Name = strings.TrimSpace(g.Name)
	if g.Name == "" {
		return nil, ErrGameNameEmpty
	}

	var existing models.Game

	result := db.Where(nameQueryPattern, g.Name).First(&existing)
	if result.Error == nil {
		return &existing, nil
	}

	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, result.Error
	}

	if g.Slug == "" {
		g.Slug = settings.Slugify(g.Name)
	}

	if result := db.Create(g); result.Error != nil {
		return nil, result.Error
	}

	return g, nil
}
