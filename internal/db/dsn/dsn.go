// Package dsn provides Data Source Name and dialector construction for
// database connections.
package dsn

import (
	"errors"
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/GoGameSettings-Admin/GoGameSettings-Admin/internal/config"
)

// ErrUnknownEngine is returned when DB.GormEngine names no supported engine.
var ErrUnknownEngine = errors.New("unknown gorm engine, expected mysql, postgres or sqlite")

// Create builds the MySQL Data Source Name from the configuration.
func Create(dbCfg *config.Config) string {
	out := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?%s",
		dbCfg.DB.User,
		dbCfg.DB.Password,
		dbCfg.DB.Host,
		dbCfg.DB.Port,
		dbCfg.DB.Name,
		dbCfg.DB.Extras,
	)

	return out
}

// CreatePostgres builds the PostgreSQL Data Source Name from the
// configuration.
func CreatePostgres(dbCfg *config.Config) string {
	out := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s %s",
		dbCfg.DB.Host,
		dbCfg.DB.Port,
		dbCfg.DB.User,
		dbCfg.DB.Password,
		dbCfg.DB.Name,
		dbCfg.DB.Extras,
	)

	return out
}

// Dialector selects the gorm dialector for the configured engine.
func Dialector(cfg *config.Config) (gorm.Dialector, error) {
	switch cfg.DB.GormEngine {
	case "mysql":
		return mysql.Open(Create(cfg)), nil
	case "postgres":
		return postgres.Open(CreatePostgres(cfg)), nil
	case "sqlite":
		file := cfg.DB.File
		if file == "" {
			file = "gamesettings.db"
		}

		return sqlite.Open(file), nil
	}

	return nil, ErrUnknownEngine
}
