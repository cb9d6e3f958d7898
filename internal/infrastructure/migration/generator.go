package migration

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/cbnu/subscribe-service/internal/shared/logger"
)

var migrationNamePattern = regexp.MustCompile(`^[a-z0-9_]+$`)

// Generator writes empty migration files for every supported dialect under
// scriptsRoot (normally internal/infrastructure/migration/scripts).
type Generator struct {
	scriptsRoot string
	now         func() time.Time
	logger      logger.Interface
}

func NewGenerator(scriptsRoot string, log logger.Interface) *Generator {
	return &Generator{
		scriptsRoot: scriptsRoot,
		now:         time.Now,
		logger:      log.With("component", "migration.generator"),
	}
}

// CreateMigration creates a goose file and a golang-migrate up/down pair per
// dialect, all stamped with the same timestamp version. It returns the paths written.
func (g *Generator) CreateMigration(name string) ([]string, error) {
	if !migrationNamePattern.MatchString(name) {
		return nil, fmt.Errorf("invalid migration name %q: use lowercase letters, digits and underscores", name)
	}

	g.logger.Infow("creating new migration", "name", name)

	created := g.now()
	version := created.UTC().Format("20060102150405")
	stamp := created.Format("2006-01-02 15:04:05")

	var written []string
	for _, dialect := range []string{"mysql", "postgres", "sqlite3"} {
		files := map[string]string{
			filepath.Join(g.scriptsRoot, "goose", dialect, fmt.Sprintf("%s_%s.sql", version, name)):        gooseTemplate(name, stamp),
			filepath.Join(g.scriptsRoot, "migrate", dialect, fmt.Sprintf("%s_%s.up.sql", version, name)):   upTemplate(name, stamp),
			filepath.Join(g.scriptsRoot, "migrate", dialect, fmt.Sprintf("%s_%s.down.sql", version, name)): downTemplate(name, stamp),
		}
		for path, content := range files {
			if err := g.writeFile(path, content); err != nil {
				return written, fmt.Errorf("failed to create %s: %w", path, err)
			}
			written = append(written, path)
		}
	}

	g.logger.Infow("migration files created successfully", "name", name, "files", len(written))
	return written, nil
}

// writeFile refuses to overwrite an existing migration.
func (g *Generator) writeFile(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = file.WriteString(content)
	return err
}

func gooseTemplate(name, stamp string) string {
	return fmt.Sprintf(`-- Migration: %s
-- Created: %s

-- +goose Up

-- +goose Down
`, name, stamp)
}

func upTemplate(name, stamp string) string {
	return fmt.Sprintf(`-- Migration: %s
-- Created: %s
`, name, stamp)
}

func downTemplate(name, stamp string) string {
	return fmt.Sprintf(`-- Rollback Migration: %s
-- Created: %s
`, name, stamp)
}
