package main

import (
	"fmt"

	"github.com/Yaghost/FitGoal/internal/config"
	"github.com/Yaghost/FitGoal/internal/logger"

	"github.com/spf13/cobra"
)

var (
	configPath string

	cfg config.Config
	log *logger.Logger
)

var rootCmd = &cobra.Command{
	Use:   "fitgoal",
	Short: "FitGoal backend: students, exercises and workout plans",
	Long: `FitGoal serves a JSON API for managing gym students, a shared exercise
catalog and weekly workout plans, backed by MongoDB.

QUICK START:

  $ fitgoal serve                   # MongoDB at database.uri
  $ fitgoal serve --in-memory       # no database, data lost on exit
  $ fitgoal ensure-indexes          # create collection indexes and exit

CONFIGURATION:

  config.yaml in the working directory (or --config), overridden by
  environment variables such as SERVER_ADDRESS and DATABASE_URI.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("could not load config: %w", err)
		}
		log, err = logger.New(cfg.Log.Mode)
		if err != nil {
			return fmt.Errorf("could not initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if log != nil {
			log.Sync()
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", ".", "config directory or YAML file")
	rootCmd.AddCommand(serveCmd, ensureIndexesCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
