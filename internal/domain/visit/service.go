package visit

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Service struct {
	visits Repository
}

func NewService(visits Repository) *Service {
	return &Service{visits: visits}
}

// Create validates and stores a visit. Visits are immutable afterwards.
func (s *Service) Create(ctx context.Context, v *Visit) error {
	if v.PatientID == uuid.Nil {
		return fmt.Errorf("patient_id is required")
	}
	if !v.Type.Valid() {
		return fmt.Errorf("invalid visit type: %s", v.Type)
	}
	if v.Date.IsZero() {
		return fmt.Errorf("date is required")
	}
	if v.Quantity == 0 {
		v.Quantity = 1
	}
	if v.Quantity < 0 {
		return fmt.Errorf("quantity must be positive")
	}
	if v.NextAppointmentTime != nil {
		if v.NextAppointmentDate == nil {
			return fmt.Errorf("next_appointment_time requires next_appointment_date")
		}
		if !IsSlotTime(*v.NextAppointmentTime) {
			return fmt.Errorf("invalid appointment time: %s", *v.NextAppointmentTime)
		}
	}
	return s.visits.Create(ctx, v)
}

func (s *Service) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*Visit, error) {
	return s.visits.ListByPatient(ctx, patientID)
}

// Agenda lists upcoming appointments in [from, to] inclusive with patient
// identity, ordered by date then slot time.
func (s *Service) Agenda(ctx context.Context, from, to time.Time) ([]*AgendaEntry, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("to before from")
	}
	return s.visits.Agenda(ctx, from, to)
}

// Availability returns one entry per canonical slot time for the given
// date, in ascending order. Occupancy is advisory: nothing stops two
// writers from racing into the same slot, so callers re-check right
// before committing a booking.
func (s *Service) Availability(ctx context.Context, date time.Time) ([]Slot, error) {
	booked, err := s.visits.ByNextAppointmentDate(ctx, date)
	if err != nil {
		return nil, err
	}

	byTime := make(map[string]*AgendaEntry, len(booked))
	for _, e := range booked {
		if e.NextAppointmentTime == nil {
			continue
		}
		if _, taken := byTime[*e.NextAppointmentTime]; !taken {
			byTime[*e.NextAppointmentTime] = e
		}
	}

	slots := make([]Slot, 0, len(SlotTimes))
	for _, t := range SlotTimes {
		slot := Slot{Time: t, Available: true}
		if e, ok := byTime[t]; ok {
			slot.Available = false
			id := e.ID
			slot.VisitID = &id
			slot.Patient = &SlotPatient{
				ID:        e.PatientID,
				FirstName: e.PatientFirstName,
				LastName:  e.PatientLastName,
				RUT:       e.PatientRUT,
			}
		}
		slots = append(slots, slot)
	}
	return slots, nil
}
