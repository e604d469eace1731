package config

import (
	"github.com/GoGameSettings-Admin/GoGameSettings-Admin/internal/logger"
)

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	DB        DB
	Log       logger.Log
	Title     string
	Webserver Webserver
}

// Webserver implement webserver settings.
type Webserver struct {
	CleanPath      bool   // use clean path middleware to allow multi slash requests
	DisableRecover bool   // disable recover middleware
	Domain         string // domain name for the webserver
	Port           int    // listening port for the webserver
	ShutDownTime   int    // wait time for shutdown
	URL            string // base url for the webserver

	// APIToken is the opaque credential every API request must carry.
	// Issuing and rotating credentials is an external concern; in dev mode
	// an empty token is replaced by a generated one at startup.
	APIToken string
}
