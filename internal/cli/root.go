// Package cli wires the planner's commands.
package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/diegoclair/crew-planner/internal/config"
	"github.com/diegoclair/crew-planner/internal/database"
	"github.com/diegoclair/crew-planner/internal/domain/contract"
	"github.com/diegoclair/crew-planner/internal/logger"
	"github.com/diegoclair/crew-planner/migrator/sqlite"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:           "planner",
	Short:         "Crew and installation planning board",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// a missing .env is normal outside development
		_ = godotenv.Load()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "planner.yaml", "configuration file")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

// store is an open, migrated database and its repositories.
type store struct {
	db *database.DB
	dm contract.DataManager
}

func (s *store) Close() error { return s.db.Close() }

func openStore(cfg *config.Config, log logger.Logger) (*store, error) {
	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	log.Infof("Running migrations on %s", cfg.DatabasePath)
	if err := sqlite.Migrate(db.DB()); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &store{db: db, dm: database.NewInstance(db)}, nil
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// cliLogger keeps log lines on stderr so command output stays pipeable.
func cliLogger() logger.Logger {
	return logger.NewWithWriter(os.Stderr, "cli", os.Getenv("LOG_LEVEL"))
}
