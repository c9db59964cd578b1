package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// pingTimeout bounds the connectivity check performed by Connect.
const pingTimeout = 10 * time.Second

// Postgres manages the connection pool for the application
type Postgres struct {
	pool   *pgxpool.Pool
	config Config
}

// NewPostgres creates a new Postgres instance; no connection is made until Connect.
func NewPostgres(cfg Config) *Postgres {
	return &Postgres{config: cfg}
}

// Connect creates the connection pool and verifies connectivity with a
// bounded ping, so startup fails fast when the database is unreachable.
func (p *Postgres) Connect(ctx context.Context) error {
	poolConfig, err := pgxpool.ParseConfig(p.config.DSN())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}

	p.pool = pool
	return nil
}

// Close releases the connection pool
func (p *Postgres) Close() error {
	if p.pool != nil {
		p.pool.Close()
	}
	return nil
}

// Ping checks the database connection
func (p *Postgres) Ping(ctx context.Context) error {
	if p.pool == nil {
		return ErrConnection
	}
	if err := p.pool.Ping(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}
	return nil
}

// Acquire checks a single connection out of the pool. The caller must call
// Release on the returned connection; store operations hold it for exactly
// one round trip.
func (p *Postgres) Acquire(ctx context.Context) (*pgxpool.Conn, error) {
	if p.pool == nil {
		return nil, ErrConnection
	}
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnection, err)
	}
	return conn, nil
}

// PostgreSQL error codes that map onto dedicated sentinels.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// TranslateError maps driver errors onto the package sentinels. Absence
// (pgx.ErrNoRows) becomes ErrNotFound; constraint violations keep their
// class; everything else is reported as a query failure. The original
// driver error text is preserved in the wrapped message.
func TranslateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%w: %s", ErrDuplicate, pgErr.Message)
		case pgForeignKeyViolation:
			return fmt.Errorf("%w: %s", ErrForeignKey, pgErr.Message)
		}
	}
	return fmt.Errorf("%w: %v", ErrQuery, err)
}
