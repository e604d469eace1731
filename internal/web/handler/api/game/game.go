// Package game provides the read-only JSON endpoints for the game catalog,
// consumed by selection lists.
package game

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoGameSettings-Admin/GoGameSettings-Admin/internal/config"
	controller "github.com/GoGameSettings-Admin/GoGameSettings-Admin/internal/db/controller/game"
	"github.com/GoGameSettings-Admin/GoGameSettings-Admin/internal/web/handler"
)

// Path is the base path for the game catalog resource.
const Path = handler.APIRootPath + "/games"

// Service provides the game catalog endpoints.
type Service struct {
	cfg *config.Config
	db  *gorm.DB
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

	app.Get(Path, s.List)
	app.Get(Path+"/:id", s.Get)

	return nil
}

// List returns all games ordered by name.
func (s *Service) List(c *fiber.Ctx) error {
	games, err := controller.GetAll(s.db)
	if err != nil {
		return handler.RespondError(c, err)
	}

	return c.JSON(games)
}

// Get returns one game by id.
func (s *Service) Get(c *fiber.Ctx) error {
	id, err := handler.ParamID(c)
	if err != nil {
		return handler.RespondError(c, err)
	}

	g, err := controller.GetByID(s.db, id)
	if err != nil {
		return handler.RespondError(c, err)
	}

	return c.JSON(g)
}
