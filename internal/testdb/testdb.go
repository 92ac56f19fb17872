// Package testdb opens throwaway SQLite databases with the real schema.
package testdb

import (
	"path/filepath"
	"testing"

	"github.com/Egor213/LogLens/migrations"
	"github.com/Egor213/LogLens/pkg/database"
	"github.com/stretchr/testify/require"
)

func New(t testing.TB) *database.Database {
	t.Helper()

	path := filepath.Join(t.TempDir(), "loglens.db")
	require.NoError(t, migrations.Up(database.DriverSQLite, path))

	db, err := database.New(database.DriverSQLite, path, database.ConnAttempts(1))
	require.NoError(t, err)
	t.Cleanup(db.Close)

	return db
}
