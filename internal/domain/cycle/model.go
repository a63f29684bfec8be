package cycle

import (
	"time"

	"github.com/google/uuid"
)

// Cycle is a configured reporting window for one (year, month). Months
// without a configured cycle fall back to the calendar month.
type Cycle struct {
	ID        uuid.UUID `json:"id"`
	Year      int       `json:"year"`
	Month     int       `json:"month"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

// DateRange is the resolved effective window for a month, either a
// configured cycle or the calendar month.
type DateRange struct {
	Start time.Time `json:"start_date"`
	End   time.Time `json:"end_date"`
}

// MonthEndConfig is one generator input entry: the month and the day its
// cycle should end on.
type MonthEndConfig struct {
	Month   int       `json:"month"`
	EndDate time.Time `json:"end_date"`
}
