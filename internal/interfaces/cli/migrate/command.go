package migrate

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cbnu/subscribe-service/internal/infrastructure/migration"
	"github.com/cbnu/subscribe-service/internal/interfaces/cli/bootstrap"
)

var (
	opts       bootstrap.Options
	strategy   string
	name       string
	steps      int
	scriptsDir string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage database migrations including running migrations, checking status, and creating new migration files.`,
	}

	opts.Bind(cmd)
	cmd.PersistentFlags().StringVarP(&strategy, "strategy", "s", "", "Migration strategy (goose, golang_migrate, gorm_auto_migrate); defaults to database.migration_strategy")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
		newCreateCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		Long:  `Apply all pending database migrations to bring the database schema up to date.`,
		RunE:  runUp,
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		Long:  `Rollback a specified number of database migrations.`,
		RunE:  runDown,
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		Long:  `Display the current migration version and strategy.`,
		RunE:  runStatus,
	}
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new migration",
		Long:  `Create goose and golang-migrate script templates for every supported dialect.`,
		RunE:  runCreate,
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Name of the migration, lower_snake_case (required)")
	cmd.Flags().StringVar(&scriptsDir, "dir", "./internal/infrastructure/migration/scripts", "Scripts root directory")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newManager(rt *bootstrap.Environment) (*migration.Manager, error) {
	name := strategy
	if name == "" {
		name = rt.Config.Database.MigrationStrategy
	}
	return migration.NewManager(name, rt.Log)
}

func runUp(cmd *cobra.Command, args []string) error {
	rt, err := bootstrap.LoadWithDB(opts)
	if err != nil {
		return err
	}
	defer rt.Close()

	manager, err := newManager(rt)
	if err != nil {
		return err
	}

	rt.Log.Infow("running up migrations", "environment", opts.Env, "driver", rt.Config.Database.Driver)
	if err := manager.Migrate(cmd.Context(), rt.DB); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Migrations applied")
	return nil
}

func runDown(cmd *cobra.Command, args []string) error {
	rt, err := bootstrap.LoadWithDB(opts)
	if err != nil {
		return err
	}
	defer rt.Close()

	manager, err := newManager(rt)
	if err != nil {
		return err
	}

	rt.Log.Infow("running down migrations", "environment", opts.Env, "steps", steps)
	if err := manager.Rollback(cmd.Context(), rt.DB, steps); err != nil {
		return fmt.Errorf("down migration failed: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Rolled back %d migration(s)\n", steps)
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	rt, err := bootstrap.LoadWithDB(opts)
	if err != nil {
		return err
	}
	defer rt.Close()

	manager, err := newManager(rt)
	if err != nil {
		return err
	}

	version, err := manager.Version(cmd.Context(), rt.DB)
	if err != nil {
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	info := manager.GetStrategyInfo()
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\nMigration Status:\n")
	fmt.Fprintf(out, "  Environment:     %s\n", opts.Env)
	fmt.Fprintf(out, "  Driver:          %s\n", rt.Config.Database.Driver)
	fmt.Fprintf(out, "  Strategy:        %v (%v)\n", info["name"], info["description"])
	fmt.Fprintf(out, "  Current Version: %d\n", version)
	return nil
}

func runCreate(cmd *cobra.Command, args []string) error {
	rt, err := bootstrap.Load(opts)
	if err != nil {
		return err
	}
	defer rt.Close()

	root, err := filepath.Abs(scriptsDir)
	if err != nil {
		return fmt.Errorf("failed to resolve scripts path: %w", err)
	}

	files, err := migration.NewGenerator(root, rt.Log).CreateMigration(name)
	if err != nil {
		return fmt.Errorf("failed to create migration: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Migration '%s' created:\n", name)
	for _, f := range files {
		fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", f)
	}
	return nil
}
