package testutil

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/moneywiz-decoder/internal/rowdata"
)

// Migrations holds the golang-migrate files for the Core Data schema.
//
//go:embed migrations/*.sql
var Migrations embed.FS

// Migrate creates the Core Data tables the decoder reads and registers the
// entity names in Z_PRIMARYKEY.
func Migrate(db *sql.DB) error {
	driver, err := sqlite.WithInstance(db, &sqlite.Config{})
	if err != nil {
		return fmt.Errorf("sqlite.WithInstance: %w", err)
	}
	source, err := iofs.New(Migrations, "migrations")
	if err != nil {
		return fmt.Errorf("iofs.New: %w", err)
	}
	defer source.Close()

	m, err := migrate.NewWithInstance("iofs", source, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("migrate.NewWithInstance: %w", err)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate.Up: %w", err)
	}
	return nil
}

// NewDB returns a migrated database in a temporary file together with its
// path. The database is closed when the test ends.
func NewDB(t testing.TB) (*sql.DB, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "moneywiz.sqlite")
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, Migrate(db))
	return db, path
}

// Insert writes row into table. Columns are written in sorted order.
func Insert(db *sql.DB, table string, row rowdata.Row) error {
	columns := make([]string, 0, len(row))
	for column := range row {
		columns = append(columns, column)
	}
	sort.Strings(columns)

	args := make([]any, len(columns))
	for i, column := range columns {
		args[i] = row[column]
	}

	query := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s)",
		table,
		strings.Join(columns, ", "),
		strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", "),
	)
	if _, err := db.Exec(query, args...); err != nil {
		return fmt.Errorf("insert into %s: %w", table, err)
	}
	return nil
}

// MustInsert inserts each row into ZSYNCOBJECT and fails the test on error.
func MustInsert(t testing.TB, db *sql.DB, rows ...rowdata.Row) {
	t.Helper()
	for _, row := range rows {
		require.NoError(t, Insert(db, "ZSYNCOBJECT", row))
	}
}
