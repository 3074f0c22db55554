package db

import (
	"context"
	"errors"

	"github.com/itbasis/go-clock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrPlayerNotFound  error = errors.New("player not found")
	ErrClanNotFound    error = errors.New("clan not found")
	ErrListNotFound    error = errors.New("cwl list not found")
	ErrContentNotFound error = errors.New("content not found")
	// Returned when a concurrent assignment wins the race for the same
	// player scope and the internal retry fails as well.
	ErrAssignmentConflict error = errors.New("conflicting player assignment")
)

func New(ctx context.Context, connString string, clock clock.Clock) (DB, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}

	// Test the connection
	if err := pool.Ping(ctx); err != nil {
		return nil, err
	}

	return &postgresDB{pool: pool, clock: clock}, nil
}

type postgresDB struct {
	pool  *pgxpool.Pool
	clock clock.Clock
}

// 23505 is the postgres unique_violation error code.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
