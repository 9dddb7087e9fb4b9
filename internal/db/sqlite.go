package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"
)

var pragmas = []string{
	"PRAGMA journal_mode=WAL",
	"PRAGMA synchronous=NORMAL",
	"PRAGMA foreign_keys=ON",
}

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS resolutions (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		seed INTEGER NOT NULL,
		turns INTEGER NOT NULL,
		winner TEXT,
		report_count INTEGER NOT NULL,
		log BLOB NOT NULL,
		created_at INTEGER NOT NULL -- unix millis
	)`,
	`CREATE TABLE IF NOT EXISTS resolution_units (
		resolution_id TEXT NOT NULL REFERENCES resolutions(id) ON DELETE CASCADE,
		position INTEGER NOT NULL,
		name TEXT NOT NULL,
		kind TEXT NOT NULL,
		start_bv INTEGER NOT NULL,
		end_bv INTEGER NOT NULL,
		destroyed INTEGER NOT NULL,
		cause TEXT,
		PRIMARY KEY (resolution_id, position)
	)`,
}

// ConnectSQLite opens an archive read-only.
func ConnectSQLite(path string) (*sql.DB, error) {
	return open(path+"?mode=ro", false)
}

// ConnectArchiveDB opens an archive for writing and creates its tables.
func ConnectArchiveDB(path string) (*sql.DB, error) {
	return open(path, true)
}

func open(dsn string, migrate bool) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("pragma %s: %w", pragma, err)
		}
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	if !migrate {
		return db, nil
	}
	for _, ddl := range sqliteSchema {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return nil, fmt.Errorf("create table: %w", err)
		}
	}
	return db, nil
}

// ─── SQLite archive ─────────────────────────────────────────────────────────

type SQLiteArchive struct {
	DB     *sql.DB
	logger zerolog.Logger
}

func NewSQLiteArchive(db *sql.DB, logger zerolog.Logger) *SQLiteArchive {
	return &SQLiteArchive{DB: db, logger: logger}
}

func (a *SQLiteArchive) Save(ctx context.Context, r *Resolution) error {
	prepare(r)
	blob, err := encodeLog(r.Reports)
	if err != nil {
		return err
	}

	tx, err := a.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO resolutions (id, title, seed, turns, winner, report_count, log, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID.String(), r.Title, r.Seed, r.Turns, r.Winner, len(r.Reports), blob, r.CreatedAt.UnixMilli())
	if err != nil {
		return fmt.Errorf("insert resolution %s: %w", r.ID, err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO resolution_units (resolution_id, position, name, kind, start_bv, end_bv, destroyed, cause)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare units: %w", err)
	}
	defer stmt.Close()
	for i, u := range r.Units {
		if _, err := stmt.ExecContext(ctx, r.ID.String(), i, u.Name, u.Kind, u.StartBV, u.EndBV, u.Destroyed, u.Cause); err != nil {
			return fmt.Errorf("insert unit %q: %w", u.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	a.logger.Debug().Str("resolution", r.ID.String()).Int("reports", len(r.Reports)).Msg("archived resolution")
	return nil
}

func (a *SQLiteArchive) Get(ctx context.Context, id uuid.UUID) (*Resolution, error) {
	r := &Resolution{ID: id}
	var (
		winner  sql.NullString
		created int64
		blob    []byte
	)
	err := a.DB.QueryRowContext(ctx,
		`SELECT title, seed, turns, winner, log, created_at FROM resolutions WHERE id = ?`, id.String(),
	).Scan(&r.Title, &r.Seed, &r.Turns, &winner, &blob, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query resolution %s: %w", id, err)
	}
	r.Winner = winner.String
	r.CreatedAt = time.UnixMilli(created).UTC()
	if r.Reports, err = decodeLog(blob); err != nil {
		return nil, err
	}

	rows, err := a.DB.QueryContext(ctx,
		`SELECT name, kind, start_bv, end_bv, destroyed, cause FROM resolution_units
		 WHERE resolution_id = ? ORDER BY position`, id.String())
	if err != nil {
		return nil, fmt.Errorf("query units: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			u     UnitSummary
			cause sql.NullString
		)
		if err := rows.Scan(&u.Name, &u.Kind, &u.StartBV, &u.EndBV, &u.Destroyed, &cause); err != nil {
			return nil, fmt.Errorf("scan unit: %w", err)
		}
		u.Cause = cause.String
		r.Units = append(r.Units, u)
	}
	return r, rows.Err()
}

func (a *SQLiteArchive) List(ctx context.Context, limit int) ([]Summary, error) {
	rows, err := a.DB.QueryContext(ctx,
		`SELECT id, title, winner, turns, report_count, created_at FROM resolutions
		 ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list resolutions: %w", err)
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		var (
			s       Summary
			id      string
			winner  sql.NullString
			created int64
		)
		if err := rows.Scan(&id, &s.Title, &winner, &s.Turns, &s.ReportCount, &created); err != nil {
			return nil, fmt.Errorf("scan resolution: %w", err)
		}
		if s.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("parse id %q: %w", id, err)
		}
		s.CreatedAt = time.UnixMilli(created).UTC()
		s.Winner = winner.String
		out = append(out, s)
	}
	return out, rows.Err()
}

func (a *SQLiteArchive) Close() error { return a.DB.Close() }
