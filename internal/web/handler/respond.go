// Package handler provides shared plumbing for the JSON API handlers.
package handler

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/GoGameSettings-Admin/GoGameSettings-Admin/internal/db/controller/definition"
	"github.com/GoGameSettings-Admin/GoGameSettings-Admin/internal/db/controller/game"
	"github.com/GoGameSettings-Admin/GoGameSettings-Admin/internal/db/controller/profile"
	"github.com/GoGameSettings-Admin/GoGameSettings-Admin/internal/settings"
)

// RespondError maps a controller or domain error onto the JSON error
// contract. Validation failures keep the request state untouched on the
// caller side, so they carry the offending field; everything unexpected is
// logged and collapsed into a plain 500.
func RespondError(c *fiber.Ctx, err error) error {
	if ve := settings.AsValidationError(err); ve != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": ve.Message,
			"field": ve.Field,
		})
	}

	switch {
	case errors.Is(err, settings.ErrUnknownSetting):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": err.Error(),
		})

	case errors.Is(err, definition.ErrDefinitionNotFound),
		errors.Is(err, profile.ErrProfileNotFound),
		errors.Is(err, game.ErrGameNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})

	case errors.Is(err, definition.ErrNameTaken),
		errors.Is(err, profile.ErrNameTaken):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	log.Error().Err(err).Str("path", c.Path()).Msg("request failed")

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "internal server error",
	})
}

// RespondBadBody reports an unparsable or structurally invalid request body.
func RespondBadBody(c *fiber.Ctx, err error) error {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		fields := make([]string, len(validationErrors))
		for i, ve := range validationErrors {
			fields[i] = ve.Field() + " failed " + ve.Tag()
		}

		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "invalid body",
			"fields": fields,
		})
	}

	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": "invalid body",
	})
}

// GameQuery extracts the mandatory game selector from the query string.
func GameQuery(c *fiber.Ctx) (uint64, error) {
	id := c.QueryInt("game", 0)
	if id <= 0 {
		return 0, settings.NewValidationError("game", "game required")
	}

	return uint64(id), nil
}

// ParamID extracts a positive numeric :id path parameter.
func ParamID(c *fiber.Ctx) (uint64, error) {
	id, err := c.ParamsInt("id", 0)
	if err != nil || id <= 0 {
		return 0, settings.NewValidationError("id", "invalid id")
	}

	return uint64(id), nil
}
