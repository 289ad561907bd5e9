// Package postgres stores cards, statements, and classified transactions,
// and serves them back for reporting.
package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps the shared connection pool.
type DB struct {
	Pool *pgxpool.Pool
}

// Connect opens a pool against connString and verifies it with a ping.
func Connect(ctx context.Context, connString string) (*DB, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &DB{Pool: pool}, nil
}

// Close releases the pool. Safe on a zero DB.
func (db *DB) Close() {
	if db.Pool != nil {
		db.Pool.Close()
	}
}
