package cycle

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/curaclinic/curaclinic/internal/platform/db"
)

type queryable interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

func (r *repoPG) conn(ctx context.Context) queryable {
	if c := db.ConnFromContext(ctx); c != nil {
		return c
	}
	return r.pool
}

const cycleCols = `id, year, month, start_date, end_date`

func (r *repoPG) scanCycle(row pgx.Row) (*Cycle, error) {
	var c Cycle
	err := row.Scan(&c.ID, &c.Year, &c.Month, &c.StartDate, &c.EndDate)
	return &c, err
}

func (r *repoPG) Get(ctx context.Context, year, month int) (*Cycle, error) {
	c, err := r.scanCycle(r.conn(ctx).QueryRow(ctx,
		`SELECT `+cycleCols+` FROM monthly_cycles WHERE year = $1 AND month = $2`, year, month))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *repoPG) ListByYear(ctx context.Context, year int) ([]*Cycle, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+cycleCols+` FROM monthly_cycles WHERE year = $1 ORDER BY month ASC`, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Cycle
	for rows.Next() {
		c, err := r.scanCycle(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	return items, nil
}

func (r *repoPG) Upsert(ctx context.Context, c *Cycle) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO monthly_cycles (id, year, month, start_date, end_date)
		VALUES ($1,$2,$3,$4,$5)
		ON CONFLICT (year, month) DO UPDATE SET start_date = EXCLUDED.start_date, end_date = EXCLUDED.end_date`,
		c.ID, c.Year, c.Month, c.StartDate, c.EndDate)
	return err
}
