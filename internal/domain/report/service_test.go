package report

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/curaclinic/curaclinic/internal/domain/cycle"
	"github.com/curaclinic/curaclinic/internal/domain/visit"
)

// -- mocks --

type cycleMock struct {
	cycles []*cycle.Cycle
}

func (m *cycleMock) Get(_ context.Context, year, month int) (*cycle.Cycle, error) {
	for _, c := range m.cycles {
		if c.Year == year && c.Month == month {
			return c, nil
		}
	}
	return nil, nil
}

func (m *cycleMock) ListByYear(_ context.Context, year int) ([]*cycle.Cycle, error) {
	var out []*cycle.Cycle
	for _, c := range m.cycles {
		if c.Year == year {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *cycleMock) Upsert(_ context.Context, c *cycle.Cycle) error {
	m.cycles = append(m.cycles, c)
	return nil
}

type testPatient struct {
	gender    string
	birthDate time.Time
}

type testVisit struct {
	patient testPatient
	typ     visit.VisitType
	date    time.Time
}

type visitMock struct {
	visits []testVisit
}

func (m *visitMock) add(typ visit.VisitType, date time.Time, gender string, birth time.Time) {
	m.visits = append(m.visits, testVisit{
		patient: testPatient{gender: gender, birthDate: birth},
		typ:     typ,
		date:    date,
	})
}

func (m *visitMock) CountByTypeInRange(_ context.Context, from, to time.Time) (map[visit.VisitType]int, error) {
	counts := make(map[visit.VisitType]int)
	for _, v := range m.visits {
		if v.date.Before(from) || v.date.After(to) {
			continue
		}
		counts[v.typ]++
	}
	return counts, nil
}

func (m *visitMock) CountByTypeAndGender(_ context.Context, f AggregateFilters) (map[visit.VisitType]map[string]int, error) {
	counts := make(map[visit.VisitType]map[string]int)
	for _, v := range m.visits {
		if f.From != nil && v.date.Before(*f.From) {
			continue
		}
		if f.To != nil && v.date.After(*f.To) {
			continue
		}
		if f.Gender != nil && v.patient.gender != *f.Gender {
			continue
		}
		if f.MinBirthDate != nil && !v.patient.birthDate.After(*f.MinBirthDate) {
			continue
		}
		if f.MaxBirthDate != nil && v.patient.birthDate.After(*f.MaxBirthDate) {
			continue
		}
		if counts[v.typ] == nil {
			counts[v.typ] = make(map[string]int)
		}
		counts[v.typ][v.patient.gender]++
	}
	return counts, nil
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func intPtr(n int) *int       { return &n }
func strPtr(s string) *string { return &s }

func newTestService(visits *visitMock, cycles *cycleMock, now time.Time) *Service {
	svc := NewService(visits, cycle.NewService(cycles))
	svc.nowFn = func() time.Time { return now }
	return svc
}

// -- monthly --

func TestMonthly_InclusiveRange(t *testing.T) {
	visits := &visitMock{}
	anyBirth := date(1960, 1, 1)
	visits.add(visit.TypeAvanzada, date(2024, 5, 1), "femenino", anyBirth)   // on start
	visits.add(visit.TypeAvanzada, date(2024, 5, 31), "femenino", anyBirth)  // on end
	visits.add(visit.TypeUlceraVenosa, date(2024, 6, 1), "femenino", anyBirth) // past end

	svc := newTestService(visits, &cycleMock{}, date(2024, 6, 15))
	r, err := svc.Monthly(context.Background(), 2024, 5)
	if err != nil {
		t.Fatalf("Monthly() error: %v", err)
	}
	if r.Avanzada != 2 {
		t.Errorf("expected 2 avanzada visits (both range ends inclusive), got %d", r.Avanzada)
	}
	if r.UlceraVenosa != 0 {
		t.Errorf("expected visit one day after end excluded, got %d", r.UlceraVenosa)
	}
	if r.Total != 2 {
		t.Errorf("expected total 2, got %d", r.Total)
	}
	if !r.StartDate.Equal(date(2024, 5, 1)) || !r.EndDate.Equal(date(2024, 5, 31)) {
		t.Errorf("expected echoed calendar range, got [%s, %s]",
			r.StartDate.Format("2006-01-02"), r.EndDate.Format("2006-01-02"))
	}
}

func TestMonthly_ZeroFilled(t *testing.T) {
	svc := newTestService(&visitMock{}, &cycleMock{}, date(2024, 6, 15))
	r, err := svc.Monthly(context.Background(), 2024, 5)
	if err != nil {
		t.Fatalf("Monthly() error: %v", err)
	}
	if r.Avanzada != 0 || r.PieDiabetico != 0 || r.UlceraVenosa != 0 || r.Total != 0 {
		t.Errorf("expected all-zero report, got %+v", r)
	}
}

func TestMonthly_UsesConfiguredCycle(t *testing.T) {
	cycles := &cycleMock{}
	cycles.Upsert(context.Background(), &cycle.Cycle{
		ID: uuid.New(), Year: 2024, Month: 5,
		StartDate: date(2024, 5, 6), EndDate: date(2024, 6, 2),
	})
	visits := &visitMock{}
	anyBirth := date(1960, 1, 1)
	visits.add(visit.TypePieDiabetico, date(2024, 5, 3), "masculino", anyBirth) // before cycle start
	visits.add(visit.TypePieDiabetico, date(2024, 6, 1), "masculino", anyBirth) // inside extended cycle

	svc := newTestService(visits, cycles, date(2024, 7, 1))
	r, err := svc.Monthly(context.Background(), 2024, 5)
	if err != nil {
		t.Fatalf("Monthly() error: %v", err)
	}
	if r.PieDiabetico != 1 {
		t.Errorf("expected only the visit inside the configured cycle, got %d", r.PieDiabetico)
	}
}

// -- detailed --

func TestDetailed_BucketMerge(t *testing.T) {
	visits := &visitMock{}
	anyBirth := date(1960, 1, 1)
	visits.add(visit.TypeAvanzada, date(2024, 1, 10), "femenino", anyBirth)
	visits.add(visit.TypePieDiabetico, date(2024, 2, 10), "masculino", anyBirth)
	visits.add(visit.TypeUlceraVenosa, date(2024, 3, 10), "femenino", anyBirth)

	svc := newTestService(visits, &cycleMock{}, date(2024, 4, 1))
	r, err := svc.Detailed(context.Background(), DetailedFilters{
		Year: intPtr(2024), Quarter: intPtr(1),
	})
	if err != nil {
		t.Fatalf("Detailed() error: %v", err)
	}
	if r.Avanzada.Total != 2 {
		t.Errorf("expected avanzada bucket to merge both types, got %d", r.Avanzada.Total)
	}
	if r.UlceraVenosa.Total != 1 {
		t.Errorf("expected ulcera_venosa bucket 1, got %d", r.UlceraVenosa.Total)
	}
	if r.Avanzada.ByGender["femenino"] != 1 || r.Avanzada.ByGender["masculino"] != 1 {
		t.Errorf("unexpected avanzada gender breakdown: %v", r.Avanzada.ByGender)
	}
	if r.Total != 3 {
		t.Errorf("expected total 3, got %d", r.Total)
	}
}

func TestDetailed_QuarterUsesBoundaryMonthCycles(t *testing.T) {
	cycles := &cycleMock{}
	cycles.Upsert(context.Background(), &cycle.Cycle{
		ID: uuid.New(), Year: 2024, Month: 1,
		StartDate: date(2023, 12, 28), EndDate: date(2024, 1, 28),
	})
	cycles.Upsert(context.Background(), &cycle.Cycle{
		ID: uuid.New(), Year: 2024, Month: 3,
		StartDate: date(2024, 2, 26), EndDate: date(2024, 3, 24),
	})

	svc := newTestService(&visitMock{}, cycles, date(2024, 4, 1))
	r, err := svc.Detailed(context.Background(), DetailedFilters{
		Year: intPtr(2024), Quarter: intPtr(1),
	})
	if err != nil {
		t.Fatalf("Detailed() error: %v", err)
	}
	if r.StartDate == nil || !r.StartDate.Equal(date(2023, 12, 28)) {
		t.Errorf("expected window start from January's cycle, got %v", r.StartDate)
	}
	if r.EndDate == nil || !r.EndDate.Equal(date(2024, 3, 24)) {
		t.Errorf("expected window end from March's cycle, got %v", r.EndDate)
	}
}

func TestDetailed_GenderFilter(t *testing.T) {
	visits := &visitMock{}
	anyBirth := date(1960, 1, 1)
	visits.add(visit.TypeAvanzada, date(2024, 1, 10), "femenino", anyBirth)
	visits.add(visit.TypeAvanzada, date(2024, 1, 11), "masculino", anyBirth)

	svc := newTestService(visits, &cycleMock{}, date(2024, 4, 1))
	r, err := svc.Detailed(context.Background(), DetailedFilters{Gender: strPtr("femenino")})
	if err != nil {
		t.Fatalf("Detailed() error: %v", err)
	}
	if r.Avanzada.Total != 1 {
		t.Errorf("expected only the femenino visit, got %d", r.Avanzada.Total)
	}
	if r.Filters.Gender == nil || *r.Filters.Gender != "femenino" {
		t.Error("expected gender filter echoed back")
	}
}

func TestDetailed_AgeBoundaries(t *testing.T) {
	now := date(2024, 6, 15)
	visits := &visitMock{}
	// Exactly 20 on the query date.
	visits.add(visit.TypeAvanzada, date(2024, 1, 10), "femenino", date(2004, 6, 15))
	// Exactly 30 on the query date.
	visits.add(visit.TypeAvanzada, date(2024, 1, 11), "femenino", date(1994, 6, 15))
	// 25 years old, inside the band.
	visits.add(visit.TypeAvanzada, date(2024, 1, 12), "femenino", date(1999, 1, 1))

	svc := newTestService(visits, &cycleMock{}, now)
	r, err := svc.Detailed(context.Background(), DetailedFilters{
		AgeMin: intPtr(20), AgeMax: intPtr(29),
	})
	if err != nil {
		t.Fatalf("Detailed() error: %v", err)
	}
	if r.Avanzada.Total != 2 {
		t.Errorf("expected exactly-20 and 25-year-old included, exactly-30 excluded; got %d", r.Avanzada.Total)
	}
}

func TestDetailed_InvalidQuarter(t *testing.T) {
	svc := newTestService(&visitMock{}, &cycleMock{}, date(2024, 6, 15))
	if _, err := svc.Detailed(context.Background(), DetailedFilters{
		Year: intPtr(2024), Quarter: intPtr(5),
	}); err == nil {
		t.Error("expected error for quarter 5")
	}
}
