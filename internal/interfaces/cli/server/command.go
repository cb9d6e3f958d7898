package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/cbnu/subscribe-service/internal/infrastructure/migration"
	"github.com/cbnu/subscribe-service/internal/interfaces/cli/bootstrap"
	httpRouter "github.com/cbnu/subscribe-service/internal/interfaces/http"
	"github.com/cbnu/subscribe-service/internal/shared/logger"
	"github.com/cbnu/subscribe-service/internal/shared/version"
)

var (
	opts               bootstrap.Options
	autoMigrate        bool
	skipMigrationCheck bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the point wallet and subscription HTTP server with the specified configuration.`,
		RunE:  run,
	}

	opts.Bind(cmd)
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Apply pending migrations on startup (not recommended for production)")
	cmd.Flags().BoolVar(&skipMigrationCheck, "skip-migration-check", false, "Skip migration status check on startup")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	rt, err := bootstrap.LoadWithDB(opts)
	if err != nil {
		return err
	}
	defer rt.Close()

	cfg := rt.Config
	if cfg.Server.Mode == "" {
		cfg.Server.Mode = mapEnvToGinMode(opts.Env)
	}

	logger.Info("starting server",
		"environment", opts.Env,
		"version", version.Current(),
		"auto_migrate", autoMigrate)

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {}

	if err := handleMigrations(cmd.Context(), rt, opts.Env); err != nil {
		return fmt.Errorf("migration handling failed: %w", err)
	}

	container, err := httpRouter.NewContainer(rt.DB, cfg, rt.Log)
	if err != nil {
		return fmt.Errorf("failed to wire application: %w", err)
	}
	defer container.Shutdown()

	router := httpRouter.NewRouter(container)
	router.SetupRoutes()

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      router.GetEngine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server starting",
			"address", cfg.Server.GetAddr(),
			"mode", cfg.Server.Mode)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
	}

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		return err
	}

	logger.Info("server exited gracefully")
	return nil
}

func handleMigrations(ctx context.Context, rt *bootstrap.Environment, environment string) error {
	if skipMigrationCheck {
		logger.Info("skipping migration check")
		return nil
	}

	manager, err := migration.NewManager(rt.Config.Database.MigrationStrategy, rt.Log)
	if err != nil {
		return err
	}

	if autoMigrate {
		if environment == "production" {
			logger.Warn("auto-migration is enabled in production environment - this is not recommended!")
		}
		return manager.Migrate(ctx, rt.DB)
	}

	v, err := manager.Version(ctx, rt.DB)
	if err != nil {
		logger.Warn("failed to check migration status", "error", err)
		return nil
	}
	if v == 0 {
		logger.Warn("database schema is empty, run `subscribe migrate up` or pass --auto-migrate")
	} else {
		logger.Info("current migration version", "version", v)
	}
	return nil
}

func mapEnvToGinMode(environment string) string {
	switch environment {
	case "production", "prod", "release":
		return gin.ReleaseMode
	case "test", "testing":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}
