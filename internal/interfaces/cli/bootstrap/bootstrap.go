// Package bootstrap loads configuration, logging, the business timezone and
// the database connection shared by every command.
package bootstrap

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/cbnu/subscribe-service/internal/infrastructure/config"
	"github.com/cbnu/subscribe-service/internal/infrastructure/database"
	"github.com/cbnu/subscribe-service/internal/shared/biztime"
	"github.com/cbnu/subscribe-service/internal/shared/logger"
)

// Options are the flags every command accepts.
type Options struct {
	Env        string
	ConfigPath string
}

// Bind registers --env and --config as persistent flags on cmd.
func (o *Options) Bind(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&o.Env, "env", "e", "development", "Environment (development, test, production)")
	cmd.PersistentFlags().StringVarP(&o.ConfigPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
}

// Environment is a loaded runtime for one command invocation.
type Environment struct {
	Config *config.Config
	Log    logger.Interface
	DB     *gorm.DB
}

// Load reads configuration and initializes the logger and business timezone.
// The ENV variable overrides --env.
func Load(opts Options) (*Environment, error) {
	env := opts.Env
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.LoadFrom(opts.ConfigPath, env)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	if err := biztime.Init(cfg.Subscription.Timezone); err != nil {
		return nil, fmt.Errorf("failed to initialize business timezone: %w", err)
	}

	return &Environment{Config: cfg, Log: logger.NewLogger()}, nil
}

// LoadWithDB is Load followed by opening the configured database.
func LoadWithDB(opts Options) (*Environment, error) {
	e, err := Load(opts)
	if err != nil {
		return nil, err
	}
	if err := database.Init(&e.Config.Database); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	e.DB = database.Get()
	return e, nil
}

// Close releases the database connection and flushes the logger.
func (e *Environment) Close() {
	if e.DB != nil {
		if err := database.Close(); err != nil {
			e.Log.Warnw("failed to close database", "error", err)
		}
	}
	_ = logger.Sync()
}
