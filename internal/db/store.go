package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

var pgSchema = []string{
	`CREATE TABLE IF NOT EXISTS resolutions (
		id UUID PRIMARY KEY,
		title TEXT NOT NULL,
		seed BIGINT NOT NULL,
		turns INTEGER NOT NULL,
		winner TEXT,
		report_count INTEGER NOT NULL,
		log BYTEA NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS resolution_units (
		resolution_id UUID NOT NULL REFERENCES resolutions(id) ON DELETE CASCADE,
		position INTEGER NOT NULL,
		name TEXT NOT NULL,
		kind TEXT NOT NULL,
		start_bv INTEGER NOT NULL,
		end_bv INTEGER NOT NULL,
		destroyed BOOLEAN NOT NULL,
		cause TEXT,
		PRIMARY KEY (resolution_id, position)
	)`,
}

// ─── PostgreSQL archive ─────────────────────────────────────────────────────

type PGArchive struct {
	Pool   *pgxpool.Pool
	logger zerolog.Logger
}

// ConnectPostgres opens a pool and makes sure the archive tables exist.
func ConnectPostgres(ctx context.Context, url string, logger zerolog.Logger) (*PGArchive, error) {
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	a := NewPGArchive(pool, logger)
	if err := a.Migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return a, nil
}

func NewPGArchive(pool *pgxpool.Pool, logger zerolog.Logger) *PGArchive {
	return &PGArchive{Pool: pool, logger: logger}
}

func (a *PGArchive) Migrate(ctx context.Context) error {
	for _, ddl := range pgSchema {
		if _, err := a.Pool.Exec(ctx, ddl); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}
	return nil
}

func (a *PGArchive) Save(ctx context.Context, r *Resolution) error {
	prepare(r)
	blob, err := encodeLog(r.Reports)
	if err != nil {
		return err
	}

	tx, err := a.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`INSERT INTO resolutions (id, title, seed, turns, winner, report_count, log, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		r.ID, r.Title, r.Seed, r.Turns, r.Winner, len(r.Reports), blob, r.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert resolution %s: %w", r.ID, err)
	}

	batch := &pgx.Batch{}
	for i, u := range r.Units {
		batch.Queue(
			`INSERT INTO resolution_units (resolution_id, position, name, kind, start_bv, end_bv, destroyed, cause)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			r.ID, i, u.Name, u.Kind, u.StartBV, u.EndBV, u.Destroyed, u.Cause)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("insert units: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	a.logger.Debug().Str("resolution", r.ID.String()).Int("reports", len(r.Reports)).Msg("archived resolution")
	return nil
}

func (a *PGArchive) Get(ctx context.Context, id uuid.UUID) (*Resolution, error) {
	r := &Resolution{ID: id}
	var (
		winner *string
		blob   []byte
	)
	err := a.Pool.QueryRow(ctx,
		`SELECT title, seed, turns, winner, log, created_at FROM resolutions WHERE id = $1`, id,
	).Scan(&r.Title, &r.Seed, &r.Turns, &winner, &blob, &r.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query resolution %s: %w", id, err)
	}
	if winner != nil {
		r.Winner = *winner
	}
	if r.Reports, err = decodeLog(blob); err != nil {
		return nil, err
	}

	rows, err := a.Pool.Query(ctx,
		`SELECT name, kind, start_bv, end_bv, destroyed, COALESCE(cause, '') FROM resolution_units
		 WHERE resolution_id = $1 ORDER BY position`, id)
	if err != nil {
		return nil, fmt.Errorf("query units: %w", err)
	}
	r.Units, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (UnitSummary, error) {
		var u UnitSummary
		err := row.Scan(&u.Name, &u.Kind, &u.StartBV, &u.EndBV, &u.Destroyed, &u.Cause)
		return u, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan units: %w", err)
	}
	return r, nil
}

func (a *PGArchive) List(ctx context.Context, limit int) ([]Summary, error) {
	rows, err := a.Pool.Query(ctx,
		`SELECT id, title, COALESCE(winner, ''), turns, report_count, created_at FROM resolutions
		 ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("list resolutions: %w", err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Summary, error) {
		var s Summary
		err := row.Scan(&s.ID, &s.Title, &s.Winner, &s.Turns, &s.ReportCount, &s.CreatedAt)
		return s, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan resolutions: %w", err)
	}
	return out, nil
}

func (a *PGArchive) Close() error {
	a.Pool.Close()
	return nil
}
