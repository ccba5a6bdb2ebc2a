package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/carson-networks/moneywiz-decoder/internal/rowdata"
)

const driverName = "sqlite"

// ErrRecordNotFound is returned by single-row lookups that match nothing.
var ErrRecordNotFound = errors.New("record not found")

// Config selects the database file to read.
type Config struct {
	Path     string
	ReadOnly bool
}

// uriPathEscaper escapes the characters SQLite URI filenames treat specially.
var uriPathEscaper = strings.NewReplacer("%", "%25", "?", "%3F", "#", "%23")

// DSN builds the modernc sqlite connection string for the config as a SQLite
// URI filename.
func (c Config) DSN() string {
	dsn := "file:" + uriPathEscaper.Replace(c.Path)
	if c.ReadOnly {
		dsn += "?mode=ro"
	}
	return dsn
}

// Storage reads records out of a MoneyWiz Core Data store.
type Storage struct {
	DB *sql.DB

	entToTypename map[int64]string
	typenameToEnt map[string]int64
}

// Open opens the database described by cfg and loads its entity map.
func Open(ctx context.Context, cfg Config) (*Storage, error) {
	db, err := sql.Open(driverName, cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("Storage.Open: %w", err)
	}
	s, err := NewStorage(ctx, db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// NewStorage wraps an open database and loads the Z_PRIMARYKEY entity map.
func NewStorage(ctx context.Context, db *sql.DB) (*Storage, error) {
	s := &Storage{
		DB:            db,
		entToTypename: make(map[int64]string),
		typenameToEnt: make(map[string]int64),
	}
	if err := s.loadPrimaryKeys(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Storage) loadPrimaryKeys(ctx context.Context) error {
	rows, err := s.DB.QueryContext(ctx, `SELECT Z_ENT, Z_NAME FROM Z_PRIMARYKEY ORDER BY Z_ENT`)
	if err != nil {
		return fmt.Errorf("Storage.loadPrimaryKeys: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var ent int64
		var name string
		if err := rows.Scan(&ent, &name); err != nil {
			return fmt.Errorf("Storage.loadPrimaryKeys: %w", err)
		}
		s.entToTypename[ent] = name
		s.typenameToEnt[name] = ent
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("Storage.loadPrimaryKeys: %w", err)
	}
	return nil
}

// TypenameFor returns the entity name registered for ent.
func (s *Storage) TypenameFor(ent int64) (string, bool) {
	name, ok := s.entToTypename[ent]
	return name, ok
}

// EntFor returns the entity number registered for typename.
func (s *Storage) EntFor(typename string) (int64, bool) {
	ent, ok := s.typenameToEnt[typename]
	return ent, ok
}

// Entities returns a copy of the Z_ENT to entity name map.
func (s *Storage) Entities() map[int64]string {
	out := make(map[int64]string, len(s.entToTypename))
	for k, v := range s.entToTypename {
		out[k] = v
	}
	return out
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

// scanRows reads every row into a column name to value map. Binary values
// are copied since the driver may reuse them.
func scanRows(rows *sql.Rows) ([]rowdata.Row, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var out []rowdata.Row
	for rows.Next() {
		values := make([]any, len(columns))
		pointers := make([]any, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}
		if err := rows.Scan(pointers...); err != nil {
			return nil, err
		}

		row := make(rowdata.Row, len(columns))
		for i, column := range columns {
			if b, ok := values[i].([]byte); ok {
				values[i] = append([]byte(nil), b...)
			}
			row[column] = values[i]
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
