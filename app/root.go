// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"

	"github.com/GoGameSettings-Admin/GoGameSettings-Admin/internal/config"
)

var (
	configPath string // Path to the configuration file
	cfg        config.Config
	err        error
)

var rootCmd = &cobra.Command{
	Use:   "go-gamesettings-admin",
	Short: "GoGameSettings-Admin is a schema-driven settings engine for games",
	Long: `GoGameSettings-Admin manages per-game setting schemas and named
setting profiles. Each game defines the configurable fields it supports and
profiles capture concrete value sets against that schema.`,
	Args: cobra.OnlyValidArgs,
}

func init() { //nolint: gochecknoinits
	rootCmd.PersistentFlags().StringVarP(
		&configPath,
		"config",
		"c",
		"./etc/",
		"Path to the configuration directory",
	)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
