// Package db is the SQLite storage backend. It satisfies the same gateway
// as the JSON file: the whole list is read and replaced at once, with a
// position column keeping insertion order.
package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrations embed.FS

// FileName is the default database file name inside the data directory
const FileName = "actionary.db"

// DB wraps the SQL database connection
type DB struct {
	*sql.DB
	logger *log.Logger
}

// Open opens the database at path and brings its schema up to date.
// logger may be nil.
func Open(path string, logger *log.Logger) (*DB, error) {
	if logger == nil {
		logger = log.New(os.Stderr)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	dsn := fmt.Sprintf("file:%s?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on", path)
	sqlDB, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// One connection: SQLite has a single writer and the store never reads
	// concurrently with itself
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db := &DB{DB: sqlDB, logger: logger}
	if err := db.migrate(context.Background()); err != nil {
		sqlDB.Close()
		return nil, err
	}
	return db, nil
}

// migrate applies pending embedded migrations. goose's provider is used
// instead of its package-level API so nothing is printed to the terminal.
func (db *DB) migrate(ctx context.Context) error {
	sub, err := fs.Sub(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("failed to load migrations: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectSQLite3, db.DB, sub)
	if err != nil {
		return fmt.Errorf("failed to prepare migrations: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	for _, r := range results {
		db.logger.Debug("migration applied", "version", r.Source.Version, "took", r.Duration)
	}
	return nil
}

// SchemaVersion returns the latest applied migration version
func (db *DB) SchemaVersion(ctx context.Context) (int64, error) {
	var version int64
	err := db.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(version_id), 0) FROM goose_db_version WHERE is_applied = 1`,
	).Scan(&version)
	if err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	return version, nil
}

// Transaction runs fn inside a transaction, rolling back if it fails
func (db *DB) Transaction(fn func(*sql.Tx) error) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			db.logger.Warn("rollback failed", "err", rbErr)
		}
		return err
	}

	return tx.Commit()
}
