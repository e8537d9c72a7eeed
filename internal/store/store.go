package store

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/mattn/go-sqlite3"
	"go.mcconachie.co/slack-archive/internal/emoji"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Store keeps the emoji index in SQLite so that the exporter can query it
// without loading the JSON index.
type Store struct {
	db     *sql.DB
	logger *zap.Logger
}

// Run describes one SaveIndex call.
type Run struct {
	ID          string
	BasicCount  int
	CustomCount int
}

// Open opens (creating if needed) the database at path and applies the
// embedded migrations.
func Open(path string, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := migrateUp(db); err != nil {
		db.Close()
		return nil, err
	}

	logger.Debug("Emoji index database ready", zap.String("path", path))
	return &Store{db: db, logger: logger}, nil
}

func migrateUp(db *sql.DB) error {
	src, err := iofs.New(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("failed to load migrations: %w", err)
	}
	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		return fmt.Errorf("failed to create sqlite3 migrate driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite3", driver)
	if err != nil {
		return fmt.Errorf("failed to init migrate instance: %w", err)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveIndex replaces the stored index with index and records the run.
func (s *Store) SaveIndex(ctx context.Context, runID string, index emoji.Index) (Run, error) {
	run := Run{ID: runID}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Run{}, fmt.Errorf("SaveIndex begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM emojis`); err != nil {
		return Run{}, fmt.Errorf("SaveIndex clear: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO emojis (name, custom, path, unicode) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return Run{}, fmt.Errorf("SaveIndex prepare: %w", err)
	}
	defer stmt.Close()

	for name, e := range index {
		if _, err := stmt.ExecContext(ctx, name, e.Custom, e.Path, e.Unicode); err != nil {
			return Run{}, fmt.Errorf("SaveIndex insert %q: %w", name, err)
		}
		if e.Custom {
			run.CustomCount++
		} else {
			run.BasicCount++
		}
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO index_runs (run_id, basic_count, custom_count) VALUES (?, ?, ?)`,
		run.ID, run.BasicCount, run.CustomCount); err != nil {
		return Run{}, fmt.Errorf("SaveIndex record run: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return Run{}, fmt.Errorf("SaveIndex commit: %w", err)
	}

	s.logger.Debug("Saved emoji index",
		zap.String("run_id", run.ID),
		zap.Int("basic", run.BasicCount),
		zap.Int("custom", run.CustomCount))
	return run, nil
}

// LoadIndex returns the stored index.
func (s *Store) LoadIndex(ctx context.Context) (emoji.Index, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name, custom, path, unicode FROM emojis`)
	if err != nil {
		return nil, fmt.Errorf("LoadIndex query: %w", err)
	}
	defer rows.Close()

	index := make(emoji.Index)
	for rows.Next() {
		var e emoji.Emoji
		if err := rows.Scan(&e.Name, &e.Custom, &e.Path, &e.Unicode); err != nil {
			return nil, fmt.Errorf("LoadIndex scan: %w", err)
		}
		index[e.Name] = e
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("LoadIndex rows: %w", err)
	}
	return index, nil
}

// Lookup returns a single entry; ok is false when name is not indexed.
func (s *Store) Lookup(ctx context.Context, name string) (e emoji.Emoji, ok bool, err error) {
	row := s.db.QueryRowContext(ctx, `SELECT name, custom, path, unicode FROM emojis WHERE name = ?`, name)
	if err := row.Scan(&e.Name, &e.Custom, &e.Path, &e.Unicode); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return emoji.Emoji{}, false, nil
		}
		return emoji.Emoji{}, false, fmt.Errorf("Lookup scan: %w", err)
	}
	return e, true, nil
}

// LastRun returns the most recent run, ok is false before the first save.
func (s *Store) LastRun(ctx context.Context) (run Run, ok bool, err error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT run_id, basic_count, custom_count FROM index_runs ORDER BY built_at DESC, rowid DESC LIMIT 1`)
	if err := row.Scan(&run.ID, &run.BasicCount, &run.CustomCount); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Run{}, false, nil
		}
		return Run{}, false, fmt.Errorf("LastRun scan: %w", err)
	}
	return run, true, nil
}
