// Package daemon assembles the settings engine: database, migrations, seed
// data and the web service.
package daemon

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoGameSettings-Admin/GoGameSettings-Admin/internal/config"
	"github.com/GoGameSettings-Admin/GoGameSettings-Admin/internal/db/dsn"
	"github.com/GoGameSettings-Admin/GoGameSettings-Admin/internal/db/models"
	"github.com/GoGameSettings-Admin/GoGameSettings-Admin/internal/logger"
	"github.com/GoGameSettings-Admin/GoGameSettings-Admin/internal/uniuri"
	"github.com/GoGameSettings-Admin/GoGameSettings-Admin/internal/web"
)

// devTokenLength is the length of the generated dev mode API token.
const devTokenLength = 32

// Daemon represents the main application daemon.
type Daemon struct {
	cfg        *config.Config
	webService *web.Service
}

// Start starts the Daemon's web service and blocks until it stops.
func (d *Daemon) Start() error {
	addr := fmt.Sprintf(":%d", d.cfg.Webserver.Port)

	log.Info().Str("addr", addr).Msg("starting web service")

	return d.webService.Start(addr)
}

// WaitShutdown delegates to the web service's graceful shutdown.
func (d *Daemon) WaitShutdown() {
	d.webService.WaitShutdown()
}

// New creates a new Daemon instance with the provided configuration.
func New(cfg *config.Config) *Daemon {
	if cfg == nil {
		log.Fatal().Msg("config is nil")
		return nil
	}

	if err := logger.Init(cfg.Log); err != nil {
		log.Error().Err(err).Msg("logger init failed, using defaults")
	}

	if cfg.DevMode && cfg.Webserver.APIToken == "" {
		cfg.Webserver.APIToken = uniuri.NewLen(devTokenLength)
		log.Warn().Str("token", cfg.Webserver.APIToken).Msg("dev mode: generated API token")
	}

	db, err := openDatabase(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("database setup failed")
		return nil
	}

	if cfg.DevMode {
		seed(db)
	}

	return &Daemon{
		cfg:        cfg,
		webService: web.New(cfg, db),
	}
}

// Seed opens the configured database, runs migrations and fills in the
// sample schema. Used by the seed command; the daemon seeds on its own in
// dev mode.
func Seed(cfg *config.Config) error {
	db, err := openDatabase(cfg)
	if err != nil {
		return err
	}

	seed(db)

	return nil
}

func openDatabase(cfg *config.Config) (*gorm.DB, error) {
	dialector, err := dsn.Dialector(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err = db.AutoMigrate(
		&models.Game{},
		&models.SettingDefinition{},
		&models.SettingProfile{},
	); err != nil {
		return nil, err
	}

	return db, nil
}
