package db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type contextKey string

const connKey contextKey = "db_conn"

// Queryable is the subset of pgx operations shared by pools, connections and
// transactions. Repositories accept either the shared pool or a context-scoped
// connection through this interface.
type Queryable interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

// WithConn returns a context carrying a specific connection or transaction.
// Repositories prefer it over the pool, so callers can group several repo
// calls on one transaction (the seed path does this).
func WithConn(ctx context.Context, conn Queryable) context.Context {
	return context.WithValue(ctx, connKey, conn)
}

// ConnFromContext returns the context-scoped connection, or nil when the
// caller did not pin one.
func ConnFromContext(ctx context.Context) Queryable {
	if c, ok := ctx.Value(connKey).(Queryable); ok {
		return c
	}
	return nil
}
