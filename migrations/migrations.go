// Package migrations embeds the schema for both supported database drivers.
package migrations

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed sqlite/*.sql postgres/*.sql
var files embed.FS

// New builds a migrate instance for the given driver ("sqlite" or
// "postgres") and dsn (file path or connection URL).
func New(driver, dsn string) (*migrate.Migrate, error) {
	var dir, url string

	switch driver {
	case "sqlite":
		dir, url = "sqlite", "sqlite3://"+dsn
	case "postgres":
		dir, url = "postgres", dsn
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	src, err := iofs.New(files, dir)
	if err != nil {
		return nil, err
	}

	return migrate.NewWithSourceInstance("iofs", src, url)
}

// Up applies every pending migration. No change is not an error.
func Up(driver, dsn string) error {
	m, err := New(driver, dsn)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}
