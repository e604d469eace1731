package app

import (
	"github.com/spf13/cobra"

	"github.com/GoGameSettings-Admin/GoGameSettings-Admin/internal/config"
	"github.com/GoGameSettings-Admin/GoGameSettings-Admin/internal/daemon"
)

func init() { //nolint: gochecknoinits
	rootCmd.AddCommand(seedCmd)
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Migrate the database and load the sample settings schema",
	PreRun: func(_ *cobra.Command, _ []string) {
		if cfg, err = config.ReadConfig(configPath); err != nil {
			panic(err)
		}
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return daemon.Seed(&cfg)
	},
}
