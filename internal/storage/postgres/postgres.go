// postgres предоставляет реализацию storage.Storage на базе PostgreSQL (pgx/v5).
//
// Один и тот же тип Storage работает поверх пула соединений или поверх
// транзакции: запросы выполняются через querier, который реализуют
// и *pgxpool.Pool, и pgx.Tx.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pribylovaa/chirper/internal/config"
	"github.com/pribylovaa/chirper/internal/storage"
)

type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Storage struct {
	pool *pgxpool.Pool // nil внутри транзакции
	db   querier
}

// New создаёт пул соединений и проверяет доступность БД.
func New(ctx context.Context, cfg config.DBConfig) (*Storage, error) {
	const op = "storage.postgres.New"

	pcfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if cfg.MaxConns > 0 {
		pcfg.MaxConns = cfg.MaxConns
	}

	if cfg.MaxConnIdleTime > 0 {
		pcfg.MaxConnIdleTime = cfg.MaxConnIdleTime
	}

	if cfg.ConnectTimeout > 0 {
		pcfg.ConnConfig.ConnectTimeout = cfg.ConnectTimeout
	}

	pool, err := pgxpool.NewWithConfig(ctx, pcfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{pool: pool, db: pool}, nil
}

// Ping проверяет соединение с БД (readiness).
func (s *Storage) Ping(ctx context.Context) error {
	if s.pool == nil {
		return nil
	}

	return s.pool.Ping(ctx)
}

// Close закрывает пул. Внутри транзакции — no-op.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// mapError переводит ошибки драйвера в ошибки слоя storage.
func mapError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return storage.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return &storage.ConflictError{Field: conflictField(pgErr.ConstraintName)}
		case pgerrcode.ForeignKeyViolation:
			return storage.ErrInvalidReference
		}
	}

	return err
}

func conflictField(constraint string) string {
	switch constraint {
	case "profiles_username_key":
		return storage.FieldUsername
	case "profiles_email_key":
		return storage.FieldEmail
	default:
		return ""
	}
}

// Проверка выполнения контракта верхнего уровня.
var _ storage.Storage = (*Storage)(nil)
