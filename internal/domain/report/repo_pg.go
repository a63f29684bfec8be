package report

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/curaclinic/curaclinic/internal/domain/visit"
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

func (r *repoPG) CountByTypeInRange(ctx context.Context, from, to time.Time) (map[visit.VisitType]int, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT type, COUNT(*)
		FROM visits
		WHERE date BETWEEN $1 AND $2
		GROUP BY type`, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[visit.VisitType]int)
	for rows.Next() {
		var t visit.VisitType
		var n int
		if err := rows.Scan(&t, &n); err != nil {
			return nil, err
		}
		counts[t] = n
	}
	return counts, nil
}

func (r *repoPG) CountByTypeAndGender(ctx context.Context, f AggregateFilters) (map[visit.VisitType]map[string]int, error) {
	query := `
		SELECT v.type, p.gender, COUNT(*)
		FROM visits v
		JOIN patients p ON p.id = v.patient_id
		WHERE 1=1`
	var args []interface{}
	idx := 1

	if f.From != nil {
		query += fmt.Sprintf(` AND v.date >= $%d`, idx)
		args = append(args, *f.From)
		idx++
	}
	if f.To != nil {
		query += fmt.Sprintf(` AND v.date <= $%d`, idx)
		args = append(args, *f.To)
		idx++
	}
	if f.Gender != nil {
		query += fmt.Sprintf(` AND p.gender = $%d`, idx)
		args = append(args, *f.Gender)
		idx++
	}
	if f.MinBirthDate != nil {
		query += fmt.Sprintf(` AND p.birth_date > $%d`, idx)
		args = append(args, *f.MinBirthDate)
		idx++
	}
	if f.MaxBirthDate != nil {
		query += fmt.Sprintf(` AND p.birth_date <= $%d`, idx)
		args = append(args, *f.MaxBirthDate)
		idx++
	}
	query += ` GROUP BY v.type, p.gender`

	rows, err := r.conn(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[visit.VisitType]map[string]int)
	for rows.Next() {
		var t visit.VisitType
		var gender string
		var n int
		if err := rows.Scan(&t, &gender, &n); err != nil {
			return nil, err
		}
		if counts[t] == nil {
			counts[t] = make(map[string]int)
		}
		counts[t][gender] = n
	}
	return counts, nil
}
