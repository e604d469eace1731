// Package web wires the fiber application: middleware, the JSON resource
// handlers and the service lifecycle.
package web

import (
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoGameSettings-Admin/GoGameSettings-Admin/internal/config"
	fiberlogger "github.com/GoGameSettings-Admin/GoGameSettings-Admin/internal/logger/adapter/fiber"
	"github.com/GoGameSettings-Admin/GoGameSettings-Admin/internal/web/handler"
	"github.com/GoGameSettings-Admin/GoGameSettings-Admin/internal/web/handler/api/definition"
	"github.com/GoGameSettings-Admin/GoGameSettings-Admin/internal/web/handler/api/game"
	"github.com/GoGameSettings-Admin/GoGameSettings-Admin/internal/web/handler/api/profile"
)

// CheckAliveURI is the liveness probe endpoint.
const CheckAliveURI = "/checkalive"

// Service represents the web service.
type Service struct {
	App          *fiber.App
	cfg          *config.Config
	fastShutDown bool
	alive        atomic.Bool
	db           *gorm.DB
}

// Start starts the web service on the given address.
func (s *Service) Start(addr string) error {
	s.alive.Store(true)

	var doneFiber = make(chan bool)

	go func() {
		if err := s.App.Listen(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msgf("fiber listen error: %v", err)
		}

		doneFiber <- true
	}()

	<-doneFiber // wait for fiber to stop

	return nil
}

// WaitShutdown waits for graceful shutdown of the service.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	// Graceful shutdown for reverse proxies: set status to fail, so checkalive returns fail.
	if !s.fastShutDown {
		log.Info().Msgf(
			"graceful shutdown: return 503 while %d seconds to let LB to remove this pod from active targets",
			s.cfg.Webserver.ShutDownTime,
		)

		s.alive.Store(false)
		time.Sleep(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second)
	}

	serverShutdown := make(chan struct{})

	go func() {
		log.Info().Msg("stopping http server ...")

		err := s.App.Shutdown()
		if err != nil {
			log.Error().Err(err).Msg("")
		}

		serverShutdown <- struct{}{}
	}()

	<-serverShutdown
	log.Info().Msg("http server was stopped ... good bye...")
}

// New creates a new web service with the given configuration.
func New(cfg *config.Config, db *gorm.DB) *Service {
	if cfg == nil {
		panic("config cannot be nil")
	}

	if db == nil {
		panic("db cannot be nil")
	}

	app := fiber.New(
		fiber.Config{
			ReadBufferSize: 8192,
			AppName:        cfg.Title,
			CaseSensitive:  true,
			Prefork:        false,
			Immutable:      true,
		},
	)

	if !cfg.Webserver.DisableRecover {
		app.Use(recover.New())
	}

	if cfg.Webserver.CleanPath {
		app.Use(cleanPath)
	}

	// access logging through the zerolog adapter; liveness probes stay quiet
	app.Use(fiberlogger.New(fiberlogger.Config{
		Config:        cfg.Log,
		CheckAliveURI: CheckAliveURI,
	}))

	app.Use(AuthMiddleware(cfg))

	service := &Service{
		cfg: cfg,
		App: app,
		db:  db,
	}

	app.Get(CheckAliveURI, service.checkAlive)

	for _, h := range []handler.Service{
		&game.Handler,
		&definition.Handler,
		&profile.Handler,
	} {
		if err := h.Init(app, cfg, db); err != nil {
			log.Fatal().Err(err).Msg("handler init failed")
		}
	}

	return service
}

// checkAlive reports 200 while the service accepts traffic and 503 during
// the graceful shutdown window.
func (s *Service) checkAlive(c *fiber.Ctx) error {
	if !s.alive.Load() {
		return c.SendStatus(fiber.StatusServiceUnavailable)
	}

	return c.SendStatus(fiber.StatusOK)
}

// cleanPath collapses duplicate slashes so reverse proxies with sloppy
// prefix joining still hit the right route.
func cleanPath(c *fiber.Ctx) error {
	p := c.Path()
	if strings.Contains(p, "//") {
		for strings.Contains(p, "//") {
			p = strings.ReplaceAll(p, "//", "/")
		}

		c.Path(p)
	}

	return c.Next()
}
