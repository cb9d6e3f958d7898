package migration

import (
	"embed"
	"fmt"
	"path"

	"gorm.io/gorm"
)

//go:embed scripts
var scripts embed.FS

const (
	gooseScriptsRoot   = "scripts/goose"
	migrateScriptsRoot = "scripts/migrate"
)

// dialectOf maps the gorm dialector to the script directory and tool dialect name.
func dialectOf(db *gorm.DB) (string, error) {
	switch name := db.Dialector.Name(); name {
	case "mysql":
		return "mysql", nil
	case "postgres":
		return "postgres", nil
	case "sqlite":
		return "sqlite3", nil
	default:
		return "", fmt.Errorf("no migration scripts for dialect %q", name)
	}
}

func gooseDir(dialect string) string {
	return path.Join(gooseScriptsRoot, dialect)
}

func migrateDir(dialect string) string {
	return path.Join(migrateScriptsRoot, dialect)
}
