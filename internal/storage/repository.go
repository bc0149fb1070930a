package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	_ "modernc.org/sqlite"
)

// LoadRecord summarizes one successful manifest load.
type LoadRecord struct {
	Source     string
	PhotoCount int
	LoadedAt   time.Time
}

type Repository struct {
	db *sql.DB
}

func NewRepository(path string) (*Repository, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	return &Repository{db: db}, nil
}

func (r *Repository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

func (r *Repository) Init(ctx context.Context) error {
	const schema = `
CREATE TABLE IF NOT EXISTS preferences (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS manifest_loads (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  source TEXT NOT NULL,
  photo_count INTEGER NOT NULL,
  loaded_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_manifest_loads_source ON manifest_loads(source, id);
`
	_, err := r.db.ExecContext(ctx, schema)
	if err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// CheckWritable fails when the database file cannot accept writes. The probe
// row is rolled back.
func (r *Repository) CheckWritable(ctx context.Context) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `INSERT OR REPLACE INTO preferences (key, value) VALUES ('__write_check', '1')`); err != nil {
		return fmt.Errorf("write check: %w", err)
	}
	return nil
}

func (r *Repository) SavePreferences(ctx context.Context, prefs map[string]bool) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
INSERT INTO preferences (key, value)
VALUES (?, ?)
ON CONFLICT(key) DO UPDATE SET value=excluded.value
`)
	if err != nil {
		return fmt.Errorf("prepare preference statement: %w", err)
	}
	defer stmt.Close()

	for key, value := range prefs {
		if _, err := stmt.ExecContext(ctx, key, strconv.FormatBool(value)); err != nil {
			return fmt.Errorf("save preference %s: %w", key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// LoadPreferences returns stored boolean preferences. Missing keys are absent
// from the map and unparsable values are skipped.
func (r *Repository) LoadPreferences(ctx context.Context) (map[string]bool, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT key, value FROM preferences`)
	if err != nil {
		return nil, fmt.Errorf("query preferences: %w", err)
	}
	defer rows.Close()

	prefs := make(map[string]bool)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("scan preference: %w", err)
		}
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			continue
		}
		prefs[key] = parsed
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}
	return prefs, nil
}

func (r *Repository) RecordLoad(ctx context.Context, record LoadRecord) error {
	loadedAt := record.LoadedAt
	if loadedAt.IsZero() {
		loadedAt = time.Now()
	}
	_, err := r.db.ExecContext(ctx, `
INSERT INTO manifest_loads (source, photo_count, loaded_at)
VALUES (?, ?, ?)
`, record.Source, record.PhotoCount, loadedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("record manifest load: %w", err)
	}
	return nil
}

// LastLoad returns the most recent load of source. ok is false when the
// source was never loaded.
func (r *Repository) LastLoad(ctx context.Context, source string) (LoadRecord, bool, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT source, photo_count, loaded_at
FROM manifest_loads
WHERE source = ?
ORDER BY id DESC
LIMIT 1
`, source)

	var record LoadRecord
	var loadedAt string
	if err := row.Scan(&record.Source, &record.PhotoCount, &loadedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return LoadRecord{}, false, nil
		}
		return LoadRecord{}, false, fmt.Errorf("query last manifest load: %w", err)
	}
	parsed, err := time.Parse(time.RFC3339Nano, loadedAt)
	if err != nil {
		return LoadRecord{}, false, fmt.Errorf("parse loaded_at %q: %w", loadedAt, err)
	}
	record.LoadedAt = parsed
	return record, true, nil
}
