package storage

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"cdinventory/internal/fileutil"
	"cdinventory/internal/inventory"
	"cdinventory/internal/logging"
)

//go:embed schema.sql
var schemaSQL string

// schemaVersion is the current schema version. Databases written with another
// version are rejected rather than migrated.
const schemaVersion = 1

// ErrSchemaMismatch indicates the database schema version doesn't match the expected version.
var ErrSchemaMismatch = errors.New("schema version mismatch")

// SQLite keeps the snapshot as ordered rows in a SQLite database.
type SQLite struct {
	path   string
	logger *slog.Logger
}

// NewSQLite returns a gateway backed by the database file at path. The
// database is created on the first Save.
func NewSQLite(path string, logger *slog.Logger) *SQLite {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &SQLite{path: path, logger: logger}
}

// Location returns the database file path.
func (s *SQLite) Location() string {
	return s.path
}

// Load reads every record ordered by its stored position.
func (s *SQLite) Load(ctx context.Context) (inventory.Inventory, error) {
	exists, err := fileutil.Exists(s.path)
	if err != nil {
		return nil, fmt.Errorf("stat database: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, s.path)
	}

	db, err := s.open(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, "SELECT id, title, artist FROM records ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	defer rows.Close()

	inv := inventory.Inventory{}
	for rows.Next() {
		var record inventory.Record
		if err := rows.Scan(&record.ID, &record.Title, &record.Artist); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		inv = append(inv, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}

	s.logger.Debug("loaded inventory snapshot",
		logging.Int(logging.FieldRecordCount, inv.Len()),
		logging.String(logging.FieldLocation, s.path))
	return inv, nil
}

// Save replaces all stored rows with inv.
func (s *SQLite) Save(ctx context.Context, inv inventory.Inventory) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create database directory: %w", err)
	}

	db, err := s.open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, "DELETE FROM records"); err != nil {
		return fmt.Errorf("clear records: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, "INSERT INTO records (position, id, title, artist) VALUES (?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for position, record := range inv {
		if _, err := stmt.ExecContext(ctx, position, record.ID, record.Title, record.Artist); err != nil {
			return fmt.Errorf("insert record %d: %w", record.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save tx: %w", err)
	}

	s.logger.Debug("saved inventory snapshot",
		logging.Int(logging.FieldRecordCount, inv.Len()),
		logging.String(logging.FieldLocation, s.path))
	return nil
}

// Close is a no-op; the database is closed after every call.
func (s *SQLite) Close() error {
	return nil
}

func (s *SQLite) open(ctx context.Context) (*sql.DB, error) {
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// Pragmas are per connection.
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.ExecContext(ctx, pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	if err := initSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func initSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	var version int
	err := db.QueryRowContext(ctx, "SELECT version FROM schema_version LIMIT 1").Scan(&version)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		if _, err := db.ExecContext(ctx, "INSERT INTO schema_version (version) VALUES (?)", schemaVersion); err != nil {
			return fmt.Errorf("record schema version: %w", err)
		}
		return nil
	case err != nil:
		return fmt.Errorf("read schema version: %w", err)
	}

	if version != schemaVersion {
		return fmt.Errorf("%w: database has version %d, expected %d", ErrSchemaMismatch, version, schemaVersion)
	}
	return nil
}
