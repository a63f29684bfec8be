package report

import (
	"context"
	"fmt"
	"time"

	"github.com/curaclinic/curaclinic/internal/domain/cycle"
	"github.com/curaclinic/curaclinic/internal/domain/visit"
)

type Service struct {
	visits Repository
	cycles *cycle.Service
	nowFn  func() time.Time
}

func NewService(visits Repository, cycles *cycle.Service) *Service {
	return &Service{visits: visits, cycles: cycles, nowFn: time.Now}
}

// Monthly counts visits per type inside the month's effective range,
// inclusive on both ends.
func (s *Service) Monthly(ctx context.Context, year, month int) (*MonthlyReport, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("invalid month: %d", month)
	}
	rng, err := s.cycles.EffectiveRange(ctx, year, month)
	if err != nil {
		return nil, err
	}
	counts, err := s.visits.CountByTypeInRange(ctx, rng.Start, rng.End)
	if err != nil {
		return nil, err
	}

	r := &MonthlyReport{
		Year:         year,
		Month:        month,
		StartDate:    rng.Start,
		EndDate:      rng.End,
		Avanzada:     counts[visit.TypeAvanzada],
		PieDiabetico: counts[visit.TypePieDiabetico],
		UlceraVenosa: counts[visit.TypeUlceraVenosa],
	}
	r.Total = r.Avanzada + r.PieDiabetico + r.UlceraVenosa
	return r, nil
}

// Detailed builds the quarterly summary. The quarter window runs from the
// effective start of its first month to the effective end of its last
// month, so cycle adjustments on the boundary months shift the whole
// window. Age filters convert to birth-date bounds against the clock read
// at call time.
func (s *Service) Detailed(ctx context.Context, f DetailedFilters) (*DetailedReport, error) {
	agg := AggregateFilters{Gender: f.Gender}

	out := &DetailedReport{
		Filters:      f,
		Avanzada:     Bucket{ByGender: make(map[string]int)},
		UlceraVenosa: Bucket{ByGender: make(map[string]int)},
	}

	if f.Year != nil && f.Quarter != nil {
		q := *f.Quarter
		if q < 1 || q > 4 {
			return nil, fmt.Errorf("invalid quarter: %d", q)
		}
		firstMonth := (q-1)*3 + 1
		lastMonth := q * 3
		startRng, err := s.cycles.EffectiveRange(ctx, *f.Year, firstMonth)
		if err != nil {
			return nil, err
		}
		endRng, err := s.cycles.EffectiveRange(ctx, *f.Year, lastMonth)
		if err != nil {
			return nil, err
		}
		agg.From = &startRng.Start
		agg.To = &endRng.End
		out.StartDate = &startRng.Start
		out.EndDate = &endRng.End
	}

	now := s.nowFn().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if f.AgeMax != nil {
		// Exclusive bound: anyone who has already turned ageMax+1 is out.
		min := today.AddDate(-(*f.AgeMax + 1), 0, 0)
		agg.MinBirthDate = &min
	}
	if f.AgeMin != nil {
		max := today.AddDate(-*f.AgeMin, 0, 0)
		agg.MaxBirthDate = &max
	}

	counts, err := s.visits.CountByTypeAndGender(ctx, agg)
	if err != nil {
		return nil, err
	}

	for t, byGender := range counts {
		bucket := &out.Avanzada
		if t.ReportBucket() == "ulcera_venosa" {
			bucket = &out.UlceraVenosa
		}
		for gender, n := range byGender {
			bucket.Total += n
			bucket.ByGender[gender] += n
		}
	}
	out.Total = out.Avanzada.Total + out.UlceraVenosa.Total
	return out, nil
}
