// Package definition provides the JSON endpoints of the schema store:
// per-game setting definitions with their type-dependent invariants.
package definition

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoGameSettings-Admin/GoGameSettings-Admin/internal/config"
	controller "github.com/GoGameSettings-Admin/GoGameSettings-Admin/internal/db/controller/definition"
	"github.com/GoGameSettings-Admin/GoGameSettings-Admin/internal/db/models"
	"github.com/GoGameSettings-Admin/GoGameSettings-Admin/internal/settings"
	"github.com/GoGameSettings-Admin/GoGameSettings-Admin/internal/web/handler"
)

// Path is the base path for the setting definition resource.
const Path = handler.APIRootPath + "/definitions"

// Service provides CRUD endpoints for setting definitions.
type Service struct {
	cfg       *config.Config
	db        *gorm.DB
	validator *validator.Validate
}

// Handler is the exported instance.
var Handler = Service{}

// Init registers routes.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		log.Error().Msg(handler.ErrNilACDFatalLogMsg)
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.db = db
	s.validator = validator.New()

	app.Get(Path+"/grouped", s.Grouped)
	app.Get(Path, s.List)
	app.Post(Path, s.Create)
	app.Put(Path+"/:id", s.Update)
	app.Patch(Path+"/:id", s.Update)
	app.Delete(Path+"/:id", s.Delete)

	return nil
}

// List returns the definitions of a game in render order: the fixed
// category enumeration, then order, then creation order.
func (s *Service) List(c *fiber.Ctx) error {
	gameID, err := handler.GameQuery(c)
	if err != nil {
		return handler.RespondError(c, err)
	}

	defs, err := controller.GetAllByGame(s.db, gameID)
	if err != nil {
		return handler.RespondError(c, err)
	}

	return c.JSON(defs)
}

// Grouped returns the definitions of a game bucketed per category for the
// schema editor and the profile authoring layout. Empty categories are
// omitted.
func (s *Service) Grouped(c *fiber.Ctx) error {
	gameID, err := handler.GameQuery(c)
	if err != nil {
		return handler.RespondError(c, err)
	}

	defs, err := controller.GetAllByGame(s.db, gameID)
	if err != nil {
		return handler.RespondError(c, err)
	}

	return c.JSON(settings.GroupByCategory(models.Definitions(defs)))
}

// Create stores a new definition.
func (s *Service) Create(c *fiber.Ctx) error {
	in, err := s.parseBody(c)
	if err != nil {
		return handler.RespondBadBody(c, err)
	}

	def, err := controller.Create(s.db, in.row())
	if err != nil {
		return handler.RespondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(def)
}

// Update replaces an existing definition. The field type is fixed at
// creation.
func (s *Service) Update(c *fiber.Ctx) error {
	id, err := handler.ParamID(c)
	if err != nil {
		return handler.RespondError(c, err)
	}

	in, err := s.parseBody(c)
	if err != nil {
		return handler.RespondBadBody(c, err)
	}

	def, err := controller.Update(s.db, id, in.row())
	if err != nil {
		return handler.RespondError(c, err)
	}

	return c.JSON(def)
}

// Delete removes a definition. Profiles that reference its internal name
// keep their stored values; the consistency guard surfaces them as unknown
// settings from now on.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, err := handler.ParamID(c)
	if err != nil {
		return handler.RespondError(c, err)
	}

	if err := controller.Delete(s.db, id); err != nil {
		return handler.RespondError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Service) parseBody(c *fiber.Ctx) (*definitionInput, error) {
	in := new(definitionInput)

	if err := c.BodyParser(in); err != nil {
		return nil, err
	}

	if err := s.validator.Struct(in); err != nil {
		return nil, err
	}

	return in, nil
}
