package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefinitionNormalize(t *testing.T) {
	t.Run("derives internal name from display name", func(t *testing.T) {
		def := Definition{
			GameID:      1,
			DisplayName: "Texture Quality",
			Type:        FieldTypeText,
			Category:    CategoryGraphics,
		}

		def.Normalize()
		assert.Equal(t, "texture_quality", def.Name)
	})

	t.Run("explicit internal name wins", func(t *testing.T) {
		def := Definition{
			GameID:      1,
			Name:        "tex_q",
			DisplayName: "Texture Quality",
			Type:        FieldTypeText,
			Category:    CategoryGraphics,
		}

		def.Normalize()
		assert.Equal(t, "tex_q", def.Name)
	})

	t.Run("select default outside options is silently cleared", func(t *testing.T) {
		def := Definition{
			GameID:      1,
			DisplayName: "Texture Quality",
			Type:        FieldTypeSelect,
			Category:    CategoryGraphics,
			Options:     []string{"Low", "Medium", "High"},
			Default:     "Ultra",
		}

		def.Normalize()
		assert.Empty(t, def.Default)
		require.NoError(t, def.Validate())
	})

	t.Run("select default inside options is kept", func(t *testing.T) {
		def := Definition{
			GameID:      1,
			DisplayName: "Texture Quality",
			Type:        FieldTypeSelect,
			Category:    CategoryGraphics,
			Options:     []string{"Low", "Medium", "High"},
			Default:     "Medium",
		}

		def.Normalize()
		assert.Equal(t, "Medium", def.Default)
	})
}

func TestDefinitionValidate(t *testing.T) {
	valid := func() Definition {
		return Definition{
			GameID:      1,
			Name:        "texture_quality",
			DisplayName: "Texture Quality",
			Type:        FieldTypeSelect,
			Category:    CategoryGraphics,
			Options:     []string{"Low", "High"},
		}
	}

	testCases := []struct {
		name    string
		mutate  func(*Definition)
		wantErr string
	}{
		{name: "valid", mutate: func(*Definition) {}},
		{
			name:    "empty display name",
			mutate:  func(d *Definition) { d.DisplayName = "" },
			wantErr: "display name required",
		},
		{
			name: "display name slugifies to nothing",
			mutate: func(d *Definition) {
				d.DisplayName = "!!!"
				d.Name = ""
			},
			wantErr: "name required",
		},
		{
			name:    "missing game",
			mutate:  func(d *Definition) { d.GameID = 0 },
			wantErr: "game required",
		},
		{
			name:    "select without options",
			mutate:  func(d *Definition) { d.Options = nil },
			wantErr: "options required",
		},
		{
			name: "number with inverted range",
			mutate: func(d *Definition) {
				d.Type = FieldTypeNumber
				d.Options = nil
				d.MinValue = 100
				d.MaxValue = 50
			},
			wantErr: "invalid range",
		},
		{
			name: "number with equal bounds",
			mutate: func(d *Definition) {
				d.Type = FieldTypeNumber
				d.Options = nil
				d.MinValue = 60
				d.MaxValue = 60
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			def := valid()
			tc.mutate(&def)

			err := def.Validate()

			if tc.wantErr != "" {
				require.Error(t, err)
				assert.Equal(t, tc.wantErr, err.Error())
			} else {
				require.NoError(t, err)
			}
		})
	}

	t.Run("unknown field type", func(t *testing.T) {
		def := valid()
		def.Type = "slider"

		require.ErrorIs(t, def.Validate(), ErrUnknownFieldType)
	})

	t.Run("unknown category", func(t *testing.T) {
		def := valid()
		def.Category = "gameplay"

		require.ErrorIs(t, def.Validate(), ErrUnknownCategory)
	})
}

func TestSortDefinitions(t *testing.T) {
	defs := []Definition{
		{ID: 5, Name: "master_volume", Category: CategoryAudio, Order: 1},
		{ID: 2, Name: "texture_quality", Category: CategoryGraphics, Order: 2},
		{ID: 4, Name: "brightness", Category: CategoryDisplay, Order: 7},
		{ID: 3, Name: "lighting_quality", Category: CategoryGraphics, Order: 2},
		{ID: 1, Name: "fullscreen_mode", Category: CategoryDisplay, Order: 1},
	}

	sorted := SortDefinitions(defs)

	names := make([]string, len(sorted))
	for i, def := range sorted {
		names[i] = def.Name
	}

	// display before graphics before audio; within graphics the equal Order
	// ties break on ID (creation order)
	assert.Equal(t, []string{
		"fullscreen_mode",
		"brightness",
		"texture_quality",
		"lighting_quality",
		"master_volume",
	}, names)
}

func TestGroupByCategory(t *testing.T) {
	defs := []Definition{
		{ID: 1, Name: "master_volume", Category: CategoryAudio, Order: 1},
		{ID: 2, Name: "fullscreen_mode", Category: CategoryDisplay, Order: 1},
		{ID: 3, Name: "refresh_rate", Category: CategoryDisplay, Order: 2},
	}

	groups := GroupByCategory(defs)

	// empty categories are omitted and order follows the fixed enumeration
	require.Len(t, groups, 2)
	assert.Equal(t, CategoryDisplay, groups[0].Category)
	assert.Equal(t, "Display", groups[0].Label)
	assert.Len(t, groups[0].Definitions, 2)
	assert.Equal(t, CategoryAudio, groups[1].Category)
	assert.Len(t, groups[1].Definitions, 1)
}
