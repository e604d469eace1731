package definition

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/GoGameSettings-Admin/GoGameSettings-Admin/internal/config"
	"github.com/GoGameSettings-Admin/GoGameSettings-Admin/internal/db/models"
	"github.com/GoGameSettings-Admin/GoGameSettings-Admin/internal/settings"
)

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to create test database")

	err = db.AutoMigrate(&models.SettingDefinition{})
	require.NoError(t, err, "failed to migrate test database")

	app := fiber.New()

	svc := Service{}
	require.NoError(t, svc.Init(app, &config.Config{}, db))

	return app, db
}

func jsonRequest(t *testing.T, app *fiber.App, method, target string, body any) *http.Response {
	t.Helper()

	var reader io.Reader

	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)

		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()

	defer resp.Body.Close()

	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func TestCreateDefinition(t *testing.T) {
	app, _ := setupApp(t)

	resp := jsonRequest(t, app, fiber.MethodPost, Path, map[string]any{
		"game_id":       1,
		"display_name":  "Texture Quality",
		"field_type":    "select",
		"category":      "graphics",
		"options":       []string{"Low", "Medium", "High"},
		"default_value": "Medium",
		"order":         1,
	})

	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var def models.SettingDefinition

	decodeBody(t, resp, &def)
	assert.Equal(t, "texture_quality", def.Name, "internal name derived from display name")
	assert.NotZero(t, def.ID)
}

func TestCreateDefinitionBadFieldType(t *testing.T) {
	app, _ := setupApp(t)

	resp := jsonRequest(t, app, fiber.MethodPost, Path, map[string]any{
		"game_id":      1,
		"display_name": "Broken",
		"field_type":   "slider",
		"category":     "graphics",
	})

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCreateDefinitionValidationError(t *testing.T) {
	app, _ := setupApp(t)

	// select without options fails the domain invariant, not the body shape
	resp := jsonRequest(t, app, fiber.MethodPost, Path, map[string]any{
		"game_id":      1,
		"display_name": "Texture Quality",
		"field_type":   "select",
		"category":     "graphics",
	})

	require.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	var body map[string]any

	decodeBody(t, resp, &body)
	assert.Equal(t, "options", body["field"])
}

func TestCreateDefinitionDuplicateName(t *testing.T) {
	app, _ := setupApp(t)

	input := map[string]any{
		"game_id":      1,
		"display_name": "HDR",
		"field_type":   "toggle",
		"category":     "display",
	}

	resp := jsonRequest(t, app, fiber.MethodPost, Path, input)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = jsonRequest(t, app, fiber.MethodPost, Path, input)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestListDefinitionsOrdered(t *testing.T) {
	app, db := setupApp(t)

	rows := []models.SettingDefinition{
		{GameID: 1, Name: "master_volume", DisplayName: "Master Volume", FieldType: settings.FieldTypeNumber, Category: settings.CategoryAudio, Order: 1},
		{GameID: 1, Name: "hdr_enabled", DisplayName: "HDR", FieldType: settings.FieldTypeToggle, Category: settings.CategoryDisplay, Order: 2},
		{GameID: 1, Name: "fullscreen_mode", DisplayName: "Fullscreen Mode", FieldType: settings.FieldTypeSelect, Category: settings.CategoryDisplay, Options: []string{"Fullscreen", "Windowed"}, Order: 1},
	}
	for i := range rows {
		require.NoError(t, db.Create(&rows[i]).Error)
	}

	resp := jsonRequest(t, app, fiber.MethodGet, Path+"?game=1", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var defs []models.SettingDefinition

	decodeBody(t, resp, &defs)
	require.Len(t, defs, 3)

	// display before audio, order within category
	assert.Equal(t, "fullscreen_mode", defs[0].Name)
	assert.Equal(t, "hdr_enabled", defs[1].Name)
	assert.Equal(t, "master_volume", defs[2].Name)
}

func TestListDefinitionsRequiresGame(t *testing.T) {
	app, _ := setupApp(t)

	resp := jsonRequest(t, app, fiber.MethodGet, Path, nil)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestGroupedOmitsEmptyCategories(t *testing.T) {
	app, db := setupApp(t)

	rows := []models.SettingDefinition{
		{GameID: 1, Name: "hdr_enabled", DisplayName: "HDR", FieldType: settings.FieldTypeToggle, Category: settings.CategoryDisplay, Order: 1},
		{GameID: 1, Name: "subtitles", DisplayName: "Subtitles", FieldType: settings.FieldTypeToggle, Category: settings.CategoryAudio, Order: 1},
	}
	for i := range rows {
		require.NoError(t, db.Create(&rows[i]).Error)
	}

	resp := jsonRequest(t, app, fiber.MethodGet, Path+"/grouped?game=1", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var groups []settings.Group

	decodeBody(t, resp, &groups)
	require.Len(t, groups, 2)
	assert.Equal(t, "Display", groups[0].Label)
	assert.Equal(t, "Audio", groups[1].Label)
}

func TestUpdateDefinitionFieldTypeFixed(t *testing.T) {
	app, db := setupApp(t)

	row := models.SettingDefinition{
		GameID: 1, Name: "hdr_enabled", DisplayName: "HDR",
		FieldType: settings.FieldTypeToggle, Category: settings.CategoryDisplay,
	}
	require.NoError(t, db.Create(&row).Error)

	resp := jsonRequest(t, app, fiber.MethodPut, fmt.Sprintf("%s/%d", Path, row.ID), map[string]any{
		"game_id":      1,
		"display_name": "HDR",
		"field_type":   "text",
		"category":     "display",
	})

	require.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	var body map[string]any

	decodeBody(t, resp, &body)
	assert.Contains(t, body["error"], "field type is fixed")
}

func TestDeleteDefinition(t *testing.T) {
	app, db := setupApp(t)

	row := models.SettingDefinition{
		GameID: 1, Name: "hdr_enabled", DisplayName: "HDR",
		FieldType: settings.FieldTypeToggle, Category: settings.CategoryDisplay,
	}
	require.NoError(t, db.Create(&row).Error)

	resp := jsonRequest(t, app, fiber.MethodDelete, fmt.Sprintf("%s/%d", Path, row.ID), nil)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp = jsonRequest(t, app, fiber.MethodDelete, fmt.Sprintf("%s/%d", Path, row.ID), nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
