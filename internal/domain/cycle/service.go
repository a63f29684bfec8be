package cycle

import (
	"context"
	"fmt"
	"sort"
	"time"
)

type Service struct {
	cycles Repository
}

func NewService(cycles Repository) *Service {
	return &Service{cycles: cycles}
}

// EffectiveRange resolves the reporting window for (year, month): the
// configured cycle verbatim when one exists, otherwise the full calendar
// month. Absence of a cycle is never an error.
func (s *Service) EffectiveRange(ctx context.Context, year, month int) (DateRange, error) {
	c, err := s.cycles.Get(ctx, year, month)
	if err != nil {
		return DateRange{}, err
	}
	if c != nil {
		return DateRange{Start: c.StartDate, End: c.EndDate}, nil
	}
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return DateRange{Start: start, End: end}, nil
}

// GenerateYearCycles builds and persists cycles for a year from per-month
// end-date configs. Configs are sorted by month; each cycle starts the day
// after the previous configured cycle's end. The first config chains from
// the prior year's December cycle when one exists, otherwise from January 1.
// Gap months get no record. Idempotent: re-running reproduces the same rows.
func (s *Service) GenerateYearCycles(ctx context.Context, year int, configs []MonthEndConfig) ([]*Cycle, error) {
	if len(configs) == 0 {
		return nil, fmt.Errorf("at least one month config is required")
	}
	sorted := make([]MonthEndConfig, len(configs))
	copy(sorted, configs)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Month < sorted[j].Month })

	for _, cfg := range sorted {
		if cfg.Month < 1 || cfg.Month > 12 {
			return nil, fmt.Errorf("invalid month: %d", cfg.Month)
		}
		if cfg.EndDate.IsZero() {
			return nil, fmt.Errorf("end_date is required for month %d", cfg.Month)
		}
	}

	prevDec, err := s.cycles.Get(ctx, year-1, 12)
	if err != nil {
		return nil, err
	}

	var out []*Cycle
	var prevEnd time.Time
	for i, cfg := range sorted {
		var start time.Time
		switch {
		case i > 0:
			start = prevEnd.AddDate(0, 0, 1)
		case prevDec != nil:
			start = prevDec.EndDate.AddDate(0, 0, 1)
		default:
			start = time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
		}

		c := &Cycle{
			Year:      year,
			Month:     cfg.Month,
			StartDate: start,
			EndDate:   cfg.EndDate,
		}
		if err := s.cycles.Upsert(ctx, c); err != nil {
			return nil, fmt.Errorf("upsert cycle %d-%02d: %w", year, cfg.Month, err)
		}
		out = append(out, c)
		prevEnd = cfg.EndDate
	}
	return out, nil
}

// Upsert validates and stores a single cycle keyed by (year, month).
func (s *Service) Upsert(ctx context.Context, c *Cycle) error {
	if c.Month < 1 || c.Month > 12 {
		return fmt.Errorf("invalid month: %d", c.Month)
	}
	if c.StartDate.IsZero() || c.EndDate.IsZero() {
		return fmt.Errorf("start_date and end_date are required")
	}
	if c.EndDate.Before(c.StartDate) {
		return fmt.Errorf("end_date before start_date")
	}
	return s.cycles.Upsert(ctx, c)
}

// BulkUpsert stores cycles one by one. Entries already written stay
// committed when a later entry fails.
func (s *Service) BulkUpsert(ctx context.Context, cycles []*Cycle) error {
	for _, c := range cycles {
		if err := s.Upsert(ctx, c); err != nil {
			return fmt.Errorf("cycle %d-%02d: %w", c.Year, c.Month, err)
		}
	}
	return nil
}

func (s *Service) ListByYear(ctx context.Context, year int) ([]*Cycle, error) {
	return s.cycles.ListByYear(ctx, year)
}
