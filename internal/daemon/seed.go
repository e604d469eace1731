package daemon

import (
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	definitioncontroller "github.com/GoGameSettings-Admin/GoGameSettings-Admin/internal/db/controller/definition"
	gamecontroller "github.com/GoGameSettings-Admin/GoGameSettings-Admin/internal/db/controller/game"
	"github.com/GoGameSettings-Admin/GoGameSettings-Admin/internal/db/models"
	"github.com/GoGameSettings-Admin/GoGameSettings-Admin/internal/settings"
)

func intp(n int) *int { return &n }

// seed fills an empty dev database with a sample game and a realistic
// shooter settings schema, so the API is explorable without manual setup.
// Existing definitions of the sample game are left untouched.
func seed(db *gorm.DB) {
	game, err := gamecontroller.GetOrCreate(db, &models.Game{
		Name:        "Battlefield 2042",
		Description: "Large-scale warfare FPS",
		GameType:    models.GameTypeShooter,
		IsActive:    true,
	})
	if err != nil {
		log.Error().Err(err).Msg("seed: game creation failed")
		return
	}

	var count int64

	db.Model(&models.SettingDefinition{}).Where("game_id = ?", game.ID).Count(&count)

	if count > 0 {
		return
	}

	defs := []models.SettingDefinition{
		{Name: "fullscreen_mode", DisplayName: "Fullscreen Mode", Category: settings.CategoryDisplay, FieldType: settings.FieldTypeSelect, Options: []string{"Fullscreen", "Borderless", "Windowed"}, DefaultValue: "Fullscreen", Order: 1},
		{Name: "fullscreen_resolution", DisplayName: "Fullscreen Resolution", Category: settings.CategoryDisplay, FieldType: settings.FieldTypeSelect, Options: []string{"1920x1080", "2560x1440", "3840x2160", "1280x720", "1600x900"}, DefaultValue: "1920x1080", Order: 2},
		{Name: "refresh_rate", DisplayName: "Refresh Rate", Category: settings.CategoryDisplay, FieldType: settings.FieldTypeSelect, Options: []string{"60Hz", "120Hz", "144Hz", "165Hz", "240Hz"}, DefaultValue: "60Hz", Order: 3},
		{Name: "field_of_view", DisplayName: "Field of View", Category: settings.CategoryDisplay, FieldType: settings.FieldTypeNumber, MinValue: intp(55), MaxValue: intp(105), DefaultValue: "74", Order: 4},
		{Name: "brightness", DisplayName: "Brightness", Category: settings.CategoryDisplay, FieldType: settings.FieldTypeNumber, MinValue: intp(0), MaxValue: intp(100), DefaultValue: "50", Order: 5},
		{Name: "hdr_enabled", DisplayName: "HDR", Category: settings.CategoryDisplay, FieldType: settings.FieldTypeToggle, DefaultValue: "Off", Order: 6},

		{Name: "graphics_quality", DisplayName: "Graphics Quality", Category: settings.CategoryGraphics, FieldType: settings.FieldTypeSelect, Options: []string{"Low", "Medium", "High", "Ultra", "Custom"}, DefaultValue: "High", Order: 1},
		{Name: "texture_quality", DisplayName: "Texture Quality", Category: settings.CategoryGraphics, FieldType: settings.FieldTypeSelect, Options: []string{"Low", "Medium", "High", "Ultra"}, DefaultValue: "High", Order: 2},
		{Name: "texture_filtering", DisplayName: "Texture Filtering", Category: settings.CategoryGraphics, FieldType: settings.FieldTypeSelect, Options: []string{"Low", "Medium", "High", "Ultra"}, DefaultValue: "Ultra", Order: 3},
		{Name: "lighting_quality", DisplayName: "Lighting Quality", Category: settings.CategoryGraphics, FieldType: settings.FieldTypeSelect, Options: []string{"Low", "Medium", "High", "Ultra"}, DefaultValue: "High", Order: 4},
		{Name: "anti_aliasing", DisplayName: "Anti-Aliasing Post", Category: settings.CategoryGraphics, FieldType: settings.FieldTypeSelect, Options: []string{"Off", "TAA Low", "TAA High"}, DefaultValue: "TAA High", Order: 5},
		{Name: "ambient_occlusion", DisplayName: "Ambient Occlusion", Category: settings.CategoryGraphics, FieldType: settings.FieldTypeSelect, Options: []string{"Off", "HBAO", "SSAO"}, DefaultValue: "HBAO", Order: 6},

		{Name: "dynamic_resolution_scale", DisplayName: "Dynamic Resolution Scale", Category: settings.CategoryAdvanced, FieldType: settings.FieldTypeToggle, DefaultValue: "Off", Order: 1},
		{Name: "dlss", DisplayName: "DLSS (NVIDIA)", Category: settings.CategoryAdvanced, FieldType: settings.FieldTypeSelect, Options: []string{"Off", "Performance", "Balanced", "Quality", "Ultra Quality"}, DefaultValue: "Off", Order: 2},
		{Name: "fsr", DisplayName: "AMD FSR (FidelityFX)", Category: settings.CategoryAdvanced, FieldType: settings.FieldTypeSelect, Options: []string{"Off", "Performance", "Balanced", "Quality", "Ultra Quality"}, DefaultValue: "Off", Order: 3},
		{Name: "vertical_sync", DisplayName: "Vertical Sync", Category: settings.CategoryAdvanced, FieldType: settings.FieldTypeToggle, DefaultValue: "Off", Order: 4},
		{Name: "render_scale", DisplayName: "Render Scale", Category: settings.CategoryAdvanced, FieldType: settings.FieldTypeNumber, MinValue: intp(25), MaxValue: intp(200), DefaultValue: "100", Order: 5},
		{Name: "ray_traced_ambient_occlusion", DisplayName: "Ray Traced Ambient Occlusion", Category: settings.CategoryAdvanced, FieldType: settings.FieldTypeToggle, DefaultValue: "Off", Order: 6},

		{Name: "motion_blur", DisplayName: "Motion Blur", Category: settings.CategoryPostProcess, FieldType: settings.FieldTypeNumber, MinValue: intp(0), MaxValue: intp(100), DefaultValue: "50", Order: 1},
		{Name: "chromatic_aberration", DisplayName: "Chromatic Aberration", Category: settings.CategoryPostProcess, FieldType: settings.FieldTypeToggle, DefaultValue: "On", Order: 2},
		{Name: "film_grain", DisplayName: "Film Grain", Category: settings.CategoryPostProcess, FieldType: settings.FieldTypeToggle, DefaultValue: "On", Order: 3},
		{Name: "vignette", DisplayName: "Vignette", Category: settings.CategoryPostProcess, FieldType: settings.FieldTypeToggle, DefaultValue: "On", Order: 4},
		{Name: "lens_distortion", DisplayName: "Lens Distortion", Category: settings.CategoryPostProcess, FieldType: settings.FieldTypeToggle, DefaultValue: "On", Order: 5},

		{Name: "minimap_size", DisplayName: "Minimap Size", Category: settings.CategoryView, FieldType: settings.FieldTypeNumber, MinValue: intp(75), MaxValue: intp(150), DefaultValue: "100", Order: 1},
		{Name: "hud_scale", DisplayName: "HUD Scale", Category: settings.CategoryView, FieldType: settings.FieldTypeNumber, MinValue: intp(50), MaxValue: intp(150), DefaultValue: "100", Order: 2},
		{Name: "hud_opacity", DisplayName: "HUD Opacity", Category: settings.CategoryView, FieldType: settings.FieldTypeNumber, MinValue: intp(0), MaxValue: intp(100), DefaultValue: "100", Order: 3},
		{Name: "crosshair_color", DisplayName: "Crosshair Color", Category: settings.CategoryView, FieldType: settings.FieldTypeSelect, Options: []string{"White", "Red", "Green", "Blue", "Yellow", "Cyan", "Magenta"}, DefaultValue: "White", Order: 4},
		{Name: "kill_log", DisplayName: "Kill Log", Category: settings.CategoryView, FieldType: settings.FieldTypeToggle, DefaultValue: "On", Order: 5},

		{Name: "master_volume", DisplayName: "Master Volume", Category: settings.CategoryAudio, FieldType: settings.FieldTypeNumber, MinValue: intp(0), MaxValue: intp(100), DefaultValue: "100", Order: 1},
		{Name: "music_volume", DisplayName: "Music Volume", Category: settings.CategoryAudio, FieldType: settings.FieldTypeNumber, MinValue: intp(0), MaxValue: intp(100), DefaultValue: "50", Order: 2},
		{Name: "voice_chat_output", DisplayName: "Voice Chat Output", Category: settings.CategoryAudio, FieldType: settings.FieldTypeSelect, Options: []string{"Headphones", "Speakers", "Both"}, DefaultValue: "Headphones", Order: 3},
		{Name: "speaker_configuration", DisplayName: "Speaker Configuration", Category: settings.CategoryAudio, FieldType: settings.FieldTypeSelect, Options: []string{"Headphones", "Stereo", "Home Cinema", "TV Speakers", "War Tapes"}, DefaultValue: "Headphones", Order: 4},
		{Name: "subtitles", DisplayName: "Subtitles", Category: settings.CategoryAudio, FieldType: settings.FieldTypeToggle, DefaultValue: "On", Order: 5},

		{Name: "mouse_sensitivity", DisplayName: "Mouse Sensitivity", Category: settings.CategoryControls, FieldType: settings.FieldTypeNumber, MinValue: intp(1), MaxValue: intp(100), DefaultValue: "15", Order: 1},
		{Name: "soldier_zoom_sensitivity", DisplayName: "Soldier Zoom Sensitivity", Category: settings.CategoryControls, FieldType: settings.FieldTypeNumber, MinValue: intp(1), MaxValue: intp(100), DefaultValue: "100", Order: 2},
		{Name: "raw_mouse_input", DisplayName: "Raw Mouse Input", Category: settings.CategoryControls, FieldType: settings.FieldTypeToggle, DefaultValue: "On", Order: 3},
		{Name: "invert_vertical_look", DisplayName: "Invert Vertical Look", Category: settings.CategoryControls, FieldType: settings.FieldTypeToggle, DefaultValue: "Off", Order: 4},
		{Name: "keybind_notes", DisplayName: "Keybind Notes", Category: settings.CategoryControls, FieldType: settings.FieldTypeText, DefaultValue: "", Order: 5},
	}

	created := 0

	for i := range defs {
		defs[i].GameID = game.ID

		if _, err := definitioncontroller.Create(db, &defs[i]); err != nil {
			log.Error().Err(err).Str("name", defs[i].Name).Msg("seed: definition creation failed")
			continue
		}

		created++
	}

	log.Info().Int("definitions", created).Str("game", game.Name).Msg("seeded sample settings schema")
}
