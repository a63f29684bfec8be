package report

import (
	"context"
	"time"

	"github.com/curaclinic/curaclinic/internal/domain/visit"
)

// AggregateFilters restrict the visit population for the detailed report.
// MinBirthDate is an exclusive lower bound, MaxBirthDate an inclusive upper
// bound; both derive from age filters.
type AggregateFilters struct {
	From         *time.Time
	To           *time.Time
	Gender       *string
	MinBirthDate *time.Time
	MaxBirthDate *time.Time
}

// Repository exposes the aggregate queries both reports are built from.
type Repository interface {
	// CountByTypeInRange counts visits with date in [from, to] inclusive,
	// grouped by type. Types with no visits are absent from the map.
	CountByTypeInRange(ctx context.Context, from, to time.Time) (map[visit.VisitType]int, error)
	// CountByTypeAndGender counts filtered visits grouped by type and the
	// patient's gender.
	CountByTypeAndGender(ctx context.Context, f AggregateFilters) (map[visit.VisitType]map[string]int, error)
}
