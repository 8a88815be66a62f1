// Package testutil provides shared fixtures for package tests.
package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite" // SQLite driver (pure Go)

	"github.com/yigit/coursereg/internal/app/migrations"
	"github.com/yigit/coursereg/internal/config"
)

// testDBCounter generates unique names for in-memory test databases.
var testDBCounter atomic.Uint64

// NewSQLiteDB opens an isolated in-memory SQLite database with every
// migration applied. The database is closed when the test finishes.
func NewSQLiteDB(t testing.TB) *sql.DB {
	t.Helper()

	id := testDBCounter.Add(1)
	dsn := fmt.Sprintf("file:coursereg_test_%d?mode=memory&cache=shared&_pragma=foreign_keys(1)", id)
	database, err := sql.Open("sqlite", dsn)
	require.NoError(t, err)
	database.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = database.Close() })

	migrator, err := migrations.NewMigrator(database, config.DriverSQLite)
	require.NoError(t, err)
	require.NoError(t, migrator.Up(context.Background()))

	return database
}

// CountRows returns the number of rows in table.
func CountRows(t testing.TB, database *sql.DB, table string) int {
	t.Helper()

	var n int
	err := database.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n)
	require.NoError(t, err)
	return n
}
