package shared

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"rent-elegance/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrTransactionBegin   = errs.New("failed to begin transaction")
	ErrTransactionCommit  = errs.New("failed to commit transaction")
	ErrMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

// RetryPolicy bounds how often a snapshot write is retried on contention.
type RetryPolicy struct {
	Attempts int
	Backoff  time.Duration
}

var DefaultRetry = RetryPolicy{Attempts: 3, Backoff: 100 * time.Millisecond}

// RunInTx commits when fn succeeds and rolls back otherwise.
func RunInTx(ctx context.Context, pool *pgxpool.Pool, fn func(tx pgx.Tx) error) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return errs.Mark(err, ErrTransactionBegin)
	}
	defer func() {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback transaction", "error", rbErr)
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return errs.Mark(err, ErrTransactionCommit)
	}
	return nil
}

// RunInTxWithRetry reruns fn in a fresh transaction while the failure is
// retryable, waiting Backoff times the attempt number in between.
func RunInTxWithRetry(ctx context.Context, pool *pgxpool.Pool, policy RetryPolicy, fn func(tx pgx.Tx) error) error {
	var err error
	for attempt := 1; ; attempt++ {
		err = RunInTx(ctx, pool, fn)
		if err == nil || !IsRetryableError(err) {
			return err
		}
		if attempt > policy.Attempts {
			break
		}

		wait := time.Duration(attempt) * policy.Backoff
		slog.Warn("retrying transaction",
			"attempt", attempt,
			"wait_time", wait,
			"error", err)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}

	slog.Error("transaction failed after max retries", "attempts", policy.Attempts+1, "error", err)
	return errs.Mark(err, ErrMaxRetriesExceeded)
}

// IsRetryableError reports serialization failures, deadlocks and lock timeouts.
func IsRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	switch pgErr.Code {
	case "40001", "40P01", "55P03":
		return true
	default:
		return false
	}
}
