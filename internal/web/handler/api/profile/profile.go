// Package profile provides the JSON endpoints of the profile store, the
// draft seed for new profiles, and the resolved consistency-guard view.
package profile

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoGameSettings-Admin/GoGameSettings-Admin/internal/config"
	definitioncontroller "github.com/GoGameSettings-Admin/GoGameSettings-Admin/internal/db/controller/definition"
	controller "github.com/GoGameSettings-Admin/GoGameSettings-Admin/internal/db/controller/profile"
	"github.com/GoGameSettings-Admin/GoGameSettings-Admin/internal/db/models"
	"github.com/GoGameSettings-Admin/GoGameSettings-Admin/internal/settings"
	"github.com/GoGameSettings-Admin/GoGameSettings-Admin/internal/web/handler"
)

// Path is the base path for the setting profile resource.
const Path = handler.APIRootPath + "/profiles"

// Service provides CRUD endpoints for setting profiles.
type Service struct {
	cfg       *config.Config
	db        *gorm.DB
	validator *validator.Validate
}

// Handler is the exported instance.
var Handler = Service{}

// Init registers routes. The static "new" segment is registered before the
// parametrized ID routes so fiber does not swallow it as an ID.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		log.Error().Msg(handler.ErrNilACDFatalLogMsg)

		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.db = db
	s.validator = validator.New()

	app.Get(Path+"/new", s.New)
	app.Get(Path, s.List)
	app.Get(Path+"/:id", s.Get)
	app.Get(Path+"/:id/resolved", s.Resolved)
	app.Post(Path, s.Create)
	app.Put(Path+"/:id", s.Update)
	app.Delete(Path+"/:id", s.Delete)

	return nil
}

// List returns the profiles of a game, ordered by name.
func (s *Service) List(c *fiber.Ctx) error {
	gameID, err := handler.GameQuery(c)
	if err != nil {
		return handler.RespondError(c, err)
	}

	profiles, err := controller.GetAllByGame(s.db, gameID)
	if err != nil {
		return handler.RespondError(c, err)
	}

	return c.JSON(profiles)
}

// Get returns a single profile with its raw stored values.
func (s *Service) Get(c *fiber.Ctx) error {
	id, err := handler.ParamID(c)
	if err != nil {
		return handler.RespondError(c, err)
	}

	p, err := controller.GetByID(s.db, id)
	if err != nil {
		return handler.RespondError(c, err)
	}

	return c.JSON(p)
}

// New returns the draft seed for a fresh profile of a game: the candidate
// working map pre-filled with every definition default, next to an empty
// enabled set. Nothing is persisted until the author enables a setting and
// saves.
func (s *Service) New(c *fiber.Ctx) error {
	gameID, err := handler.GameQuery(c)
	if err != nil {
		return handler.RespondError(c, err)
	}

	defs, err := s.gameDefinitions(gameID)
	if err != nil {
		return handler.RespondError(c, err)
	}

	draft, err := settings.NewDraft(gameID, defs)
	if err != nil {
		return handler.RespondError(c, err)
	}

	return c.JSON(draftSeed{
		GameID:          gameID,
		EnabledSettings: draft.Enabled(),
		CandidateValues: draft.Working(),
	})
}

// Resolved renders a profile's stored values against the current schema of
// its game. Keys whose definition has since been deleted or renamed come
// back with known=false and the unknown-setting label; the stored values
// themselves are never touched.
func (s *Service) Resolved(c *fiber.Ctx) error {
	id, err := handler.ParamID(c)
	if err != nil {
		return handler.RespondError(c, err)
	}

	p, err := controller.GetByID(s.db, id)
	if err != nil {
		return handler.RespondError(c, err)
	}

	defs, err := s.gameDefinitions(p.GameID)
	if err != nil {
		return handler.RespondError(c, err)
	}

	return c.JSON(settings.Resolve(defs, p.Values))
}

// Create stores a new profile.
func (s *Service) Create(c *fiber.Ctx) error {
	in, err := s.parseBody(c)
	if err != nil {
		return handler.RespondBadBody(c, err)
	}

	values, err := s.persistedValues(in)
	if err != nil {
		return handler.RespondError(c, err)
	}

	p, err := controller.Create(s.db, in.row(values))
	if err != nil {
		return handler.RespondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(p)
}

// Update replaces an existing profile wholesale. Last full write wins;
// concurrent edits are not merged.
func (s *Service) Update(c *fiber.Ctx) error {
	id, err := handler.ParamID(c)
	if err != nil {
		return handler.RespondError(c, err)
	}

	in, err := s.parseBody(c)
	if err != nil {
		return handler.RespondBadBody(c, err)
	}

	values, err := s.persistedValues(in)
	if err != nil {
		return handler.RespondError(c, err)
	}

	p, err := controller.Update(s.db, id, in.row(values))
	if err != nil {
		return handler.RespondError(c, err)
	}

	return c.JSON(p)
}

// Delete removes a profile. Definitions are unaffected.
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

// persistedValues computes the values map to store. Without an explicit
// enabled set the submitted map is taken as-is. With one, the submitted map
// becomes the draft's working state and only the listed keys survive.
// Enabling a name that has neither a submitted value nor a live definition
// is refused, which keeps orphans resavable but not inventable; missing
// values of live definitions are seeded from the coerced default.
func (s *Service) persistedValues(in *profileInput) (map[string]any, error) {
	if in.EnabledSettings == nil {
		if in.Values == nil {
			return map[string]any{}, nil
		}

		return in.Values, nil
	}

	defs, err := s.gameDefinitions(in.GameID)
	if err != nil {
		return nil, err
	}

	draft, err := settings.EditDraft(in.GameID, in.Values, defs)
	if err != nil {
		return nil, err
	}

	byName := make(map[string]settings.Definition, len(defs))
	for _, def := range defs {
		byName[def.Name] = def
	}

	for _, name := range draft.Enabled() {
		draft.Disable(name)
	}

	for _, name := range *in.EnabledSettings {
		if _, ok := draft.WorkingValue(name); !ok {
			def, known := byName[name]
			if !known {
				return nil, settings.ErrUnknownSetting
			}

			if err := draft.SetValue(name, def.DefaultValue()); err != nil {
				return nil, err
			}
		}

		draft.Enable(name)
	}

	return draft.Values(), nil
}

func (s *Service) gameDefinitions(gameID uint64) ([]settings.Definition, error) {
	rows, err := definitioncontroller.GetAllByGame(s.db, gameID)
	if err != nil {
		return nil, err
	}

	return models.Definitions(rows), nil
}

func (s *Service) parseBody(c *fiber.Ctx) (*profileInput, error) {
	in := new(profileInput)

	if err := c.BodyParser(in); err != nil {
		return nil, err
	}

	if err := s.validator.Struct(in); err != nil {
		return nil, err
	}

	return in, nil
}
