package migration

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/mysql"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/pressly/goose/v3"
	"gorm.io/gorm"

	"github.com/cbnu/subscribe-service/internal/infrastructure/persistence/models"
	"github.com/cbnu/subscribe-service/internal/shared/logger"
)

// Strategy names accepted by NewStrategy.
const (
	StrategyGoose         = "goose"
	StrategyGolangMigrate = "golang_migrate"
	StrategyAutoMigrate   = "gorm_auto_migrate"
)

var ErrUnsupportedOperation = errors.New("operation not supported by migration strategy")

// Strategy defines the interface for different migration strategies
type Strategy interface {
	// Migrate applies every pending migration
	Migrate(ctx context.Context, db *gorm.DB) error
	// Down rolls back the given number of migrations
	Down(ctx context.Context, db *gorm.DB, steps int) error
	// Version reports the current schema version
	Version(ctx context.Context, db *gorm.DB) (int64, error)
	// GetName returns the strategy name
	GetName() string
}

// NewStrategy builds the strategy registered under name.
func NewStrategy(name string, log logger.Interface) (Strategy, error) {
	switch name {
	case StrategyGoose, "":
		return NewGooseStrategy(log), nil
	case StrategyGolangMigrate:
		return NewGolangMigrateStrategy(log), nil
	case StrategyAutoMigrate:
		return NewGormAutoMigrateStrategy(log), nil
	default:
		return nil, fmt.Errorf("unknown migration strategy %q", name)
	}
}

// GormAutoMigrateStrategy derives the schema from the persistence models.
type GormAutoMigrateStrategy struct {
	logger logger.Interface
}

func NewGormAutoMigrateStrategy(log logger.Interface) Strategy {
	return &GormAutoMigrateStrategy{logger: log.With("component", "migration.gorm")}
}

func (s *GormAutoMigrateStrategy) Migrate(ctx context.Context, db *gorm.DB) error {
	all := models.All()
	s.logger.Infow("starting gorm auto migration", "models_count", len(all))

	if err := db.WithContext(ctx).AutoMigrate(all...); err != nil {
		s.logger.Errorw("auto migration failed", "error", err)
		return fmt.Errorf("failed to auto migrate: %w", err)
	}

	s.logger.Infow("auto migration completed successfully")
	return nil
}

func (s *GormAutoMigrateStrategy) Down(ctx context.Context, db *gorm.DB, steps int) error {
	return fmt.Errorf("%s: down: %w", s.GetName(), ErrUnsupportedOperation)
}

func (s *GormAutoMigrateStrategy) Version(ctx context.Context, db *gorm.DB) (int64, error) {
	return 0, fmt.Errorf("%s: version: %w", s.GetName(), ErrUnsupportedOperation)
}

func (s *GormAutoMigrateStrategy) GetName() string {
	return StrategyAutoMigrate
}

// GooseStrategy applies the embedded goose scripts for the connection's dialect.
type GooseStrategy struct {
	logger logger.Interface
}

func NewGooseStrategy(log logger.Interface) Strategy {
	return &GooseStrategy{logger: log.With("component", "migration.goose")}
}

// prepare configures goose's package-level state for db.
func (s *GooseStrategy) prepare(db *gorm.DB) (string, error) {
	dialect, err := dialectOf(db)
	if err != nil {
		return "", err
	}

	goose.SetBaseFS(scripts)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect(dialect); err != nil {
		return "", fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return gooseDir(dialect), nil
}

func (s *GooseStrategy) Migrate(ctx context.Context, db *gorm.DB) error {
	dir, err := s.prepare(db)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	currentVersion, err := goose.GetDBVersionContext(ctx, sqlDB)
	if err != nil {
		s.logger.Errorw("failed to get current version", "error", err)
		return fmt.Errorf("failed to get current version: %w", err)
	}

	s.logger.Infow("starting goose migration", "scripts_dir", dir, "version", currentVersion)

	if err := goose.UpContext(ctx, sqlDB, dir); err != nil {
		s.logger.Errorw("migration failed", "error", err)
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	finalVersion, err := goose.GetDBVersionContext(ctx, sqlDB)
	if err != nil {
		s.logger.Errorw("failed to get final version", "error", err)
		return fmt.Errorf("failed to get final version: %w", err)
	}

	s.logger.Infow("migration completed successfully",
		"from_version", currentVersion,
		"to_version", finalVersion)

	return nil
}

func (s *GooseStrategy) Down(ctx context.Context, db *gorm.DB, steps int) error {
	dir, err := s.prepare(db)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	s.logger.Infow("starting down migration", "steps", steps)

	for i := 0; i < steps; i++ {
		if err := goose.DownContext(ctx, sqlDB, dir); err != nil {
			s.logger.Errorw("down migration failed", "error", err)
			return fmt.Errorf("failed to run down migration: %w", err)
		}
	}

	s.logger.Infow("down migration completed successfully")
	return nil
}

func (s *GooseStrategy) Version(ctx context.Context, db *gorm.DB) (int64, error) {
	if _, err := s.prepare(db); err != nil {
		return 0, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return 0, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	version, err := goose.GetDBVersionContext(ctx, sqlDB)
	if err != nil {
		return 0, fmt.Errorf("failed to get version: %w", err)
	}
	return version, nil
}

func (s *GooseStrategy) GetName() string {
	return StrategyGoose
}

// GolangMigrateStrategy applies the embedded up/down script pairs with golang-migrate.
type GolangMigrateStrategy struct {
	logger logger.Interface
}

func NewGolangMigrateStrategy(log logger.Interface) Strategy {
	return &GolangMigrateStrategy{logger: log.With("component", "migration.golang-migrate")}
}

// newMigrate binds golang-migrate to the pool behind db. The returned
// instance is not closed by callers: its database driver would close the
// shared pool. Only the source is released.
func (s *GolangMigrateStrategy) newMigrate(db *gorm.DB) (*migrate.Migrate, func(), error) {
	dialect, err := dialectOf(db)
	if err != nil {
		return nil, nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	var driver migratedb.Driver
	switch dialect {
	case "mysql":
		driver, err = mysql.WithInstance(sqlDB, &mysql.Config{})
	case "postgres":
		driver, err = postgres.WithInstance(sqlDB, &postgres.Config{})
	case "sqlite3":
		driver, err = sqlite3.WithInstance(sqlDB, &sqlite3.Config{})
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create %s driver: %w", dialect, err)
	}

	src, err := iofs.New(scripts, migrateDir(dialect))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open migration scripts: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, dialect, driver)
	if err != nil {
		_ = src.Close()
		return nil, nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}
	return m, func() { _ = src.Close() }, nil
}

func (s *GolangMigrateStrategy) Migrate(ctx context.Context, db *gorm.DB) error {
	m, release, err := s.newMigrate(db)
	if err != nil {
		return err
	}
	defer release()

	currentVersion, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		s.logger.Errorw("failed to get current migration version", "error", err)
		return fmt.Errorf("failed to get current migration version: %w", err)
	}

	s.logger.Infow("starting golang-migrate migration",
		"version", currentVersion,
		"dirty", dirty)

	if dirty {
		s.logger.Warnw("database is in dirty state, please fix manually")
		return fmt.Errorf("database is in dirty state at version %d", currentVersion)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		s.logger.Errorw("migration failed", "error", err)
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	finalVersion, _, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		s.logger.Errorw("failed to get final migration version", "error", err)
		return fmt.Errorf("failed to get final migration version: %w", err)
	}

	s.logger.Infow("migration completed successfully",
		"from_version", currentVersion,
		"to_version", finalVersion)

	return nil
}

func (s *GolangMigrateStrategy) Down(ctx context.Context, db *gorm.DB, steps int) error {
	m, release, err := s.newMigrate(db)
	if err != nil {
		return err
	}
	defer release()

	s.logger.Infow("starting down migration", "steps", steps)

	if err := m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		s.logger.Errorw("down migration failed", "error", err)
		return fmt.Errorf("failed to run down migrations: %w", err)
	}

	s.logger.Infow("down migration completed successfully")
	return nil
}

func (s *GolangMigrateStrategy) Version(ctx context.Context, db *gorm.DB) (int64, error) {
	m, release, err := s.newMigrate(db)
	if err != nil {
		return 0, err
	}
	defer release()

	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	if dirty {
		return int64(version), fmt.Errorf("database is in dirty state at version %d", version)
	}
	return int64(version), nil
}

func (s *GolangMigrateStrategy) GetName() string {
	return StrategyGolangMigrate
}
