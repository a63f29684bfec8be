package visit

import (
	"time"

	"github.com/google/uuid"
)

// VisitType is the closed set of treatment types.
type VisitType string

const (
	TypeAvanzada     VisitType = "avanzada"
	TypePieDiabetico VisitType = "pie_diabetico"
	TypeUlceraVenosa VisitType = "ulcera_venosa"
)

func (t VisitType) Valid() bool {
	switch t {
	case TypeAvanzada, TypePieDiabetico, TypeUlceraVenosa:
		return true
	}
	return false
}

// ReportBucket maps a visit type to its reporting bucket. Advanced wound
// care and diabetic foot are reported together.
func (t VisitType) ReportBucket() string {
	if t == TypeUlceraVenosa {
		return "ulcera_venosa"
	}
	return "avanzada"
}

// SlotTimes is the canonical ordered set of bookable half-hour slots. Both
// visit validation and the availability engine read from this list.
var SlotTimes = []string{
	"12:30", "13:00", "13:30", "14:00", "14:30", "15:00", "15:30", "16:00",
}

func IsSlotTime(t string) bool {
	for _, s := range SlotTimes {
		if s == t {
			return true
		}
	}
	return false
}

// Visit is a single treatment event. Immutable once created.
type Visit struct {
	ID                  uuid.UUID  `json:"id"`
	PatientID           uuid.UUID  `json:"patient_id"`
	Type                VisitType  `json:"type"`
	Date                time.Time  `json:"date"`
	NextAppointmentDate *time.Time `json:"next_appointment_date,omitempty"`
	NextAppointmentTime *string    `json:"next_appointment_time,omitempty"`
	Quantity            int        `json:"quantity"`
	Observations        *string    `json:"observations,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
}

// AgendaEntry is a visit joined with the identity of its patient, used by
// the agenda and availability views.
type AgendaEntry struct {
	Visit
	PatientFirstName string `json:"patient_first_name"`
	PatientLastName  string `json:"patient_last_name"`
	PatientRUT       string `json:"patient_rut"`
}

// Slot is one availability entry for a date. Derived, never persisted.
type Slot struct {
	Time      string       `json:"time"`
	Available bool         `json:"available"`
	VisitID   *uuid.UUID   `json:"visit_id,omitempty"`
	Patient   *SlotPatient `json:"patient,omitempty"`
}

// SlotPatient identifies who occupies a booked slot.
type SlotPatient struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	RUT       string    `json:"rut"`
}
