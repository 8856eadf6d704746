package repository

import (
	"context"
	"fmt"

	"quiz-seed/internal/domain"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// contextKey is the type of context keys owned by this package.
type contextKey string

const (
	// TransactionContextKey carries the active *sqlx.Tx.
	TransactionContextKey contextKey = "tx"
)

// GetExecutor returns the transaction stored in ctx, or db when there is none.
func GetExecutor(ctx context.Context, db DBTX) DBTX {
	if tx := ctx.Value(TransactionContextKey); tx != nil {
		if sqlxTx, ok := tx.(*sqlx.Tx); ok {
			return sqlxTx
		}
	}
	return db
}

// TransactionManagerAdapter implements domain.TransactionManager on *sqlx.DB.
type TransactionManagerAdapter struct {
	db  *sqlx.DB
	log *zap.Logger
}

// NewTransactionManagerAdapter creates a new transaction manager.
func NewTransactionManagerAdapter(db *sqlx.DB, log *zap.Logger) domain.TransactionManager {
	return &TransactionManagerAdapter{db: db, log: log}
}

// WithTransaction runs fn inside a transaction. fn's error rolls back,
// otherwise the transaction is committed.
func (tma *TransactionManagerAdapter) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := tma.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				tma.log.Error("Failed to rollback transaction after panic", zap.Error(rollbackErr))
			}
			panic(p)
		}
	}()

	txCtx := context.WithValue(ctx, TransactionContextKey, tx)

	if err := fn(txCtx); err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			return fmt.Errorf("failed to rollback transaction: %v (original error: %w)", rollbackErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
