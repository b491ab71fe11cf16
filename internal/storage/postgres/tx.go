package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pribylovaa/chirper/internal/storage"
)

const maxTxAttempts = 3

// WithTx выполняет fn в транзакции READ COMMITTED.
// Сбой сериализации или дедлок повторяются до maxTxAttempts раз.
// Вложенный вызов внутри транзакции переиспользует её.
func (s *Storage) WithTx(ctx context.Context, fn func(ctx context.Context, tx storage.Storage) error) error {
	const op = "storage.postgres.WithTx"

	if s.pool == nil {
		return fn(ctx, s)
	}

	var err error
	for attempt := 1; attempt <= maxTxAttempts; attempt++ {
		err = s.runTx(ctx, fn)
		if err == nil {
			return nil
		}

		if !retryable(err) || ctx.Err() != nil {
			break
		}
	}

	return fmt.Errorf("%s: %w", op, err)
}

func (s *Storage) runTx(ctx context.Context, fn func(ctx context.Context, tx storage.Storage) error) error {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return err
	}

	// После Commit откат возвращает ErrTxClosed и ничего не делает.
	defer func() { _ = tx.Rollback(context.WithoutCancel(ctx)) }()

	if err := fn(ctx, &Storage{db: tx}); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func retryable(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	return pgErr.Code == pgerrcode.SerializationFailure || pgErr.Code == pgerrcode.DeadlockDetected
}
