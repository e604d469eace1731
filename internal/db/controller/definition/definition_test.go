package definition

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/GoGameSettings-Admin/GoGameSettings-Admin/internal/db/models"
	"github.com/GoGameSettings-Admin/GoGameSettings-Admin/internal/settings"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to create test database")

	err = db.AutoMigrate(&models.SettingDefinition{})
	require.NoError(t, err, "failed to migrate test database")

	return db
}

func intPtr(n int) *int { return &n }

func selectDefinition(gameID uint64) *models.SettingDefinition {
	return &models.SettingDefinition{
		GameID:       gameID,
		DisplayName:  "Texture Quality",
		FieldType:    settings.FieldTypeSelect,
		Category:     settings.CategoryGraphics,
		Options:      []string{"Low", "Medium", "High"},
		DefaultValue: "Medium",
		Order:        1,
	}
}

func TestCreate(t *testing.T) {
	testCases := []struct {
		name          string
		dbParam       bool
		input         func() *models.SettingDefinition
		expectedError string
		check         func(t *testing.T, def *models.SettingDefinition)
	}{
		{
			name:          "nil database",
			dbParam:       false,
			input:         func() *models.SettingDefinition { return selectDefinition(1) },
			expectedError: ErrDBNil.Error(),
		},
		{
			name:    "internal name derived from display name",
			dbParam: true,
			input:   func() *models.SettingDefinition { return selectDefinition(1) },
			check: func(t *testing.T, def *models.SettingDefinition) {
				assert.Equal(t, "texture_quality", def.Name)
				assert.NotZero(t, def.ID)
			},
		},
		{
			name:    "empty display name rejected",
			dbParam: true,
			input: func() *models.SettingDefinition {
				def := selectDefinition(1)
				def.DisplayName = ""
				return def
			},
			expectedError: "display name required",
		},
		{
			name:    "select without options rejected",
			dbParam: true,
			input: func() *models.SettingDefinition {
				def := selectDefinition(1)
				def.Options = nil
				return def
			},
			expectedError: "options required",
		},
		{
			name:    "inverted number range rejected",
			dbParam: true,
			input: func() *models.SettingDefinition {
				return &models.SettingDefinition{
					GameID:      1,
					DisplayName: "Field of View",
					FieldType:   settings.FieldTypeNumber,
					Category:    settings.CategoryDisplay,
					MinValue:    intPtr(105),
					MaxValue:    intPtr(55),
				}
			},
			expectedError: "invalid range",
		},
		{
			name:    "equal number bounds accepted",
			dbParam: true,
			input: func() *models.SettingDefinition {
				return &models.SettingDefinition{
					GameID:      1,
					DisplayName: "Field of View",
					FieldType:   settings.FieldTypeNumber,
					Category:    settings.CategoryDisplay,
					MinValue:    intPtr(60),
					MaxValue:    intPtr(60),
				}
			},
		},
		{
			name:    "select default outside options silently cleared",
			dbParam: true,
			input: func() *models.SettingDefinition {
				def := selectDefinition(1)
				def.DefaultValue = "Ultra"
				return def
			},
			check: func(t *testing.T, def *models.SettingDefinition) {
				assert.Empty(t, def.DefaultValue)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var db *gorm.DB
			if tc.dbParam {
				db = setupTestDB(t)
			}

			def, err := Create(db, tc.input())

			if tc.expectedError != "" {
				require.Error(t, err)
				assert.Equal(t, tc.expectedError, err.Error())
				assert.Nil(t, def)
			} else {
				require.NoError(t, err)
				require.NotNil(t, def)

				if tc.check != nil {
					tc.check(t, def)
				}
			}
		})
	}
}

func TestCreateDuplicateNamePerGame(t *testing.T) {
	db := setupTestDB(t)

	_, err := Create(db, selectDefinition(1))
	require.NoError(t, err)

	_, err = Create(db, selectDefinition(1))
	require.ErrorIs(t, err, ErrNameTaken)

	// the same internal name is fine for a different game
	_, err = Create(db, selectDefinition(2))
	require.NoError(t, err)
}

func TestGetAllByGameOrdering(t *testing.T) {
	db := setupTestDB(t)

	// insert out of render order on purpose
	rows := []*models.SettingDefinition{
		{GameID: 1, DisplayName: "Master Volume", FieldType: settings.FieldTypeNumber,
			Category: settings.CategoryAudio, MinValue: intPtr(0), MaxValue: intPtr(100), Order: 1},
		{GameID: 1, DisplayName: "Lighting Quality", FieldType: settings.FieldTypeSelect,
			Category: settings.CategoryGraphics, Options: []string{"Low", "High"}, Order: 2},
		{GameID: 1, DisplayName: "Texture Quality", FieldType: settings.FieldTypeSelect,
			Category: settings.CategoryGraphics, Options: []string{"Low", "High"}, Order: 2},
		{GameID: 1, DisplayName: "Fullscreen Mode", FieldType: settings.FieldTypeSelect,
			Category: settings.CategoryDisplay, Options: []string{"Fullscreen", "Windowed"}, Order: 1},
		{GameID: 2, DisplayName: "Other Game Setting", FieldType: settings.FieldTypeText,
			Category: settings.CategoryControls},
	}

	for _, row := range rows {
		_, err := Create(db, row)
		require.NoError(t, err)
	}

	defs, err := GetAllByGame(db, 1)
	require.NoError(t, err)
	require.Len(t, defs, 4)

	names := make([]string, len(defs))
	for i, def := range defs {
		names[i] = def.Name
	}

	// category enumeration first, then Order, ties broken by creation order:
	// lighting_quality was created before texture_quality at equal Order
	assert.Equal(t, []string{
		"fullscreen_mode",
		"lighting_quality",
		"texture_quality",
		"master_volume",
	}, names)
}

func TestUpdate(t *testing.T) {
	db := setupTestDB(t)

	created, err := Create(db, selectDefinition(1))
	require.NoError(t, err)

	t.Run("not found", func(t *testing.T) {
		_, err := Update(db, 9999, selectDefinition(1))
		require.ErrorIs(t, err, ErrDefinitionNotFound)
	})

	t.Run("field type is fixed", func(t *testing.T) {
		input := selectDefinition(1)
		input.FieldType = settings.FieldTypeText

		_, err := Update(db, created.ID, input)
		require.Error(t, err)
		require.NotNil(t, settings.AsValidationError(err))
	})

	t.Run("successful update clears drifted default", func(t *testing.T) {
		input := selectDefinition(1)
		input.Options = []string{"Low", "High"}
		input.DefaultValue = "Medium" // no longer a member

		updated, err := Update(db, created.ID, input)
		require.NoError(t, err)
		assert.Empty(t, updated.DefaultValue)
		assert.Equal(t, []string{"Low", "High"}, updated.Options)
	})

	t.Run("rename collides with sibling", func(t *testing.T) {
		other := selectDefinition(1)
		other.DisplayName = "Shadow Quality"
		_, err := Create(db, other)
		require.NoError(t, err)

		input := selectDefinition(1)
		input.DisplayName = "Shadow Quality"
		input.Name = ""

		_, err = Update(db, created.ID, input)
		require.ErrorIs(t, err, ErrNameTaken)
	})
}

func TestDelete(t *testing.T) {
	db := setupTestDB(t)

	created, err := Create(db, selectDefinition(1))
	require.NoError(t, err)

	require.NoError(t, Delete(db, created.ID))
	require.ErrorIs(t, Delete(db, created.ID), ErrDefinitionNotFound)
	require.ErrorIs(t, Delete(nil, created.ID), ErrDBNil)
}
