package visit

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Repository is the visit store contract.
type Repository interface {
	Create(ctx context.Context, v *Visit) error
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*Visit, error)
	// Agenda returns visits with a next appointment inside [from, to]
	// inclusive, joined with patient identity, ordered by date then time.
	Agenda(ctx context.Context, from, to time.Time) ([]*AgendaEntry, error)
	// ByNextAppointmentDate returns visits booked for the given date, with
	// patient identity, for the availability engine.
	ByNextAppointmentDate(ctx context.Context, date time.Time) ([]*AgendaEntry, error)
}
