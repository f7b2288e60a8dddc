package helpers

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/taxdesk/tax-service/internal/db"
	"github.com/taxdesk/tax-service/internal/logger"
	"go.uber.org/zap"
)

// TransactionFunc is a function that executes within a database transaction
type TransactionFunc func(tx pgx.Tx) error

// serializable is the isolation level retried transactions run at; only it
// reports 40001 serialization failures.
var serializable = pgx.TxOptions{IsoLevel: pgx.Serializable}

// WithTransaction runs fn inside a transaction, committing when fn returns nil
// and rolling back otherwise.
func WithTransaction(ctx context.Context, pool *pgxpool.Pool, fn TransactionFunc) error {
	return WithTransactionOptions(ctx, pool, pgx.TxOptions{}, fn)
}

// WithTransactionOptions is WithTransaction with explicit transaction options.
func WithTransactionOptions(ctx context.Context, pool *pgxpool.Pool, opts pgx.TxOptions, fn TransactionFunc) error {
	tx, err := pool.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	// Rollback after a successful commit returns ErrTxClosed.
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			logger.Log.Error("Failed to rollback transaction", zap.Error(rollbackErr))
		}
	}()

	if err := fn(tx); err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// WithTransactionRetry runs fn in a SERIALIZABLE transaction and reruns it
// from the start up to maxRetries times on serialization failures. fn must
// not carry state over from a failed attempt.
func WithTransactionRetry(ctx context.Context, pool *pgxpool.Pool, maxRetries int, fn TransactionFunc) error {
	return RetrySerializable(maxRetries, func() error {
		return WithTransactionOptions(ctx, pool, serializable, fn)
	})
}

// RetrySerializable calls attempt until it succeeds, fails with anything other
// than a serialization failure, or has been retried maxRetries times.
func RetrySerializable(maxRetries int, attempt func() error) error {
	var err error
	for i := 0; i <= maxRetries; i++ {
		err = attempt()
		if err == nil || !IsSerializationFailure(err) || i == maxRetries {
			return err
		}
		logger.Log.Warn("Transaction failed due to serialization error, retrying",
			zap.Int("attempt", i+1),
			zap.Int("max_retries", maxRetries),
			zap.Error(err),
		)
	}
	return err
}

// IsSerializationFailure reports whether err wraps SQLSTATE 40001.
func IsSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "40001"
}

// TxRunner hands services a Querier bound to a single pool transaction.
type TxRunner struct {
	pool       *pgxpool.Pool
	maxRetries int
}

// NewTxRunner creates a runner that retries serialization failures maxRetries times.
func NewTxRunner(pool *pgxpool.Pool, maxRetries int) *TxRunner {
	return &TxRunner{pool: pool, maxRetries: maxRetries}
}

// InTx runs fn with queries scoped to one serializable transaction. fn may be
// called more than once.
func (r *TxRunner) InTx(ctx context.Context, fn func(q db.Querier) error) error {
	return WithTransactionRetry(ctx, r.pool, r.maxRetries, func(tx pgx.Tx) error {
		return fn(db.New(tx))
	})
}
