package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	getRecordSQL = `SELECT value FROM records WHERE key = $1`

	upsertRecordSQL = `
INSERT INTO records (key, value, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (key) DO UPDATE
SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`
)

type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// RecordRepository implements usecase.RecordStore on a PostgreSQL table.
type RecordRepository struct {
	db      querier
	retrier *Retrier
}

// NewRecordRepository creates a new RecordRepository.
func NewRecordRepository(pool *pgxpool.Pool) *RecordRepository {
	return newRecordRepositoryWithQuerier(pool, NewRetrier())
}

func newRecordRepositoryWithQuerier(db querier, retrier *Retrier) *RecordRepository {
	return &RecordRepository{db: db, retrier: retrier}
}

// Get retrieves a record by key.
func (r *RecordRepository) Get(ctx context.Context, key string) (string, bool, error) {
	var value string

	err := r.db.QueryRow(ctx, getRecordSQL, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}

		return "", false, fmt.Errorf("failed to get record %s: %w", key, err)
	}

	return value, true, nil
}

// Set creates or overwrites a record.
func (r *RecordRepository) Set(ctx context.Context, key, value string) error {
	return r.retrier.Retry(ctx, func() error {
		_, err := r.db.Exec(ctx, upsertRecordSQL, key, value)
		return err
	})
}
