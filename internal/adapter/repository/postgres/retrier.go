package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// SQLSTATE codes worth a second attempt.
const (
	pgErrSerializationFailure = "40001"
	pgErrDeadlock             = "40P01"
	pgErrAdminShutdown        = "57P01"
)

// Retrier retries record writes that failed on transient conflicts.
type Retrier struct {
	maxRetries      int
	initialInterval time.Duration
	maxInterval     time.Duration
	logger          zerolog.Logger
}

// NewRetrier creates a Retrier making up to three extra attempts.
func NewRetrier() *Retrier {
	return &Retrier{
		maxRetries:      3,
		initialInterval: 50 * time.Millisecond,
		maxInterval:     time.Second,
		logger:          log.Logger,
	}
}

func (r *Retrier) policy(ctx context.Context) backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = r.initialInterval
	b.MaxInterval = r.maxInterval
	b.MaxElapsedTime = 0

	return backoff.WithContext(backoff.WithMaxRetries(b, uint64(r.maxRetries)), ctx)
}

// Retry runs op until it succeeds, fails permanently or runs out of attempts.
func (r *Retrier) Retry(ctx context.Context, op func() error) error {
	attempt := 0
	notify := func(err error, wait time.Duration) {
		attempt++
		r.logger.Warn().
			Err(err).
			Int("retry", attempt).
			Dur("wait", wait).
			Msg("record write conflicted, retrying")
	}

	return backoff.RetryNotify(func() error {
		err := op()
		if err != nil && !isRetryable(err) {
			return backoff.Permanent(err)
		}
		return err
	}, r.policy(ctx), notify)
}

func isRetryable(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrSerializationFailure, pgErrDeadlock, pgErrAdminShutdown:
		return true
	default:
		return false
	}
}
