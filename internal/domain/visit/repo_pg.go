package visit

import (
	"context"
	"time"

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

const visitCols = `id, patient_id, type, date, next_appointment_date, next_appointment_time,
	quantity, observations, created_at`

func (r *repoPG) scanVisit(row pgx.Row) (*Visit, error) {
	var v Visit
	err := row.Scan(&v.ID, &v.PatientID, &v.Type, &v.Date,
		&v.NextAppointmentDate, &v.NextAppointmentTime,
		&v.Quantity, &v.Observations, &v.CreatedAt)
	return &v, err
}

func (r *repoPG) Create(ctx context.Context, v *Visit) error {
	v.ID = uuid.New()
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO visits (id, patient_id, type, date, next_appointment_date,
			next_appointment_time, quantity, observations)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING created_at`,
		v.ID, v.PatientID, v.Type, v.Date, v.NextAppointmentDate,
		v.NextAppointmentTime, v.Quantity, v.Observations).Scan(&v.CreatedAt)
}

func (r *repoPG) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*Visit, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+visitCols+` FROM visits WHERE patient_id = $1 ORDER BY date DESC, created_at DESC`,
		patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Visit
	for rows.Next() {
		v, err := r.scanVisit(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, v)
	}
	return items, nil
}

const agendaCols = `v.id, v.patient_id, v.type, v.date, v.next_appointment_date, v.next_appointment_time,
	v.quantity, v.observations, v.created_at, p.first_name, p.last_name, p.rut`

func scanAgendaEntry(row pgx.Row) (*AgendaEntry, error) {
	var e AgendaEntry
	err := row.Scan(&e.ID, &e.PatientID, &e.Type, &e.Date,
		&e.NextAppointmentDate, &e.NextAppointmentTime,
		&e.Quantity, &e.Observations, &e.CreatedAt,
		&e.PatientFirstName, &e.PatientLastName, &e.PatientRUT)
	return &e, err
}

func (r *repoPG) Agenda(ctx context.Context, from, to time.Time) ([]*AgendaEntry, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT `+agendaCols+`
		FROM visits v
		JOIN patients p ON p.id = v.patient_id
		WHERE v.next_appointment_date BETWEEN $1 AND $2
		ORDER BY v.next_appointment_date ASC, v.next_appointment_time ASC NULLS LAST`,
		from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*AgendaEntry
	for rows.Next() {
		e, err := scanAgendaEntry(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	return items, nil
}

func (r *repoPG) ByNextAppointmentDate(ctx context.Context, date time.Time) ([]*AgendaEntry, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT `+agendaCols+`
		FROM visits v
		JOIN patients p ON p.id = v.patient_id
		WHERE v.next_appointment_date = $1
		ORDER BY v.next_appointment_time ASC NULLS LAST`,
		date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*AgendaEntry
	for rows.Next() {
		e, err := scanAgendaEntry(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	return items, nil
}
