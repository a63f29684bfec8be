package patient

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
)

type mockRepo struct {
	patients map[uuid.UUID]*Patient
}

func newMockRepo() *mockRepo {
	return &mockRepo{patients: make(map[uuid.UUID]*Patient)}
}

func (m *mockRepo) Create(_ context.Context, p *Patient) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	cp := *p
	m.patients[p.ID] = &cp
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id uuid.UUID) (*Patient, error) {
	p, ok := m.patients[id]
	if !ok {
		return nil, fmt.Errorf("no rows")
	}
	return p, nil
}

func (m *mockRepo) GetByRUT(_ context.Context, rut string) (*Patient, error) {
	for _, p := range m.patients {
		if p.RUT == rut {
			return p, nil
		}
	}
	return nil, nil
}

func (m *mockRepo) Update(_ context.Context, p *Patient) error {
	if _, ok := m.patients[p.ID]; !ok {
		return fmt.Errorf("no rows")
	}
	cp := *p
	m.patients[p.ID] = &cp
	return nil
}

func (m *mockRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.patients, id)
	return nil
}

func (m *mockRepo) List(_ context.Context, limit, offset int) ([]*Patient, int, error) {
	var all []*Patient
	for _, p := range m.patients {
		all = append(all, p)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].LastName < all[j].LastName })
	total := len(all)
	if offset >= total {
		return nil, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return all[offset:end], total, nil
}

func validPatient(rut string) *Patient {
	return &Patient{
		RUT:       rut,
		FirstName: "Ana",
		LastName:  "Soto",
		BirthDate: time.Date(1970, 6, 1, 0, 0, 0, 0, time.UTC),
		Gender:    "femenino",
	}
}

func TestCreate_RejectsDuplicateRUT(t *testing.T) {
	svc := NewService(newMockRepo())

	if err := svc.Create(context.Background(), validPatient("12.345.678-9")); err != nil {
		t.Fatalf("first Create() error: %v", err)
	}
	err := svc.Create(context.Background(), validPatient("12.345.678-9"))
	if !errors.Is(err, ErrRUTTaken) {
		t.Errorf("expected ErrRUTTaken, got %v", err)
	}
}

func TestCreate_Validation(t *testing.T) {
	svc := NewService(newMockRepo())

	cases := []struct {
		name   string
		mutate func(*Patient)
	}{
		{"missing rut", func(p *Patient) { p.RUT = "" }},
		{"missing name", func(p *Patient) { p.FirstName = "" }},
		{"missing birth date", func(p *Patient) { p.BirthDate = time.Time{} }},
		{"missing gender", func(p *Patient) { p.Gender = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := validPatient("5.555.555-5")
			tc.mutate(p)
			if err := svc.Create(context.Background(), p); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestUpdate_AllowsOwnRUT(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)

	p := validPatient("12.345.678-9")
	if err := svc.Create(context.Background(), p); err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	p.Phone = func() *string { s := "+56 9 1111 2222"; return &s }()
	if err := svc.Update(context.Background(), p); err != nil {
		t.Errorf("updating a patient keeping their own RUT should succeed, got %v", err)
	}

	other := validPatient("9.876.543-2")
	if err := svc.Create(context.Background(), other); err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	other.RUT = "12.345.678-9"
	if err := svc.Update(context.Background(), other); !errors.Is(err, ErrRUTTaken) {
		t.Errorf("expected ErrRUTTaken when stealing another patient's RUT, got %v", err)
	}
}

func TestSeed_Idempotent(t *testing.T) {
	repo := newMockRepo()

	created, err := Seed(context.Background(), repo)
	if err != nil {
		t.Fatalf("Seed() error: %v", err)
	}
	if created != len(demoPatients) {
		t.Errorf("expected %d created on first seed, got %d", len(demoPatients), created)
	}

	created, err = Seed(context.Background(), repo)
	if err != nil {
		t.Fatalf("second Seed() error: %v", err)
	}
	if created != 0 {
		t.Errorf("expected 0 created on reseed, got %d", created)
	}
	if len(repo.patients) != len(demoPatients) {
		t.Errorf("expected %d patients after reseed, got %d", len(demoPatients), len(repo.patients))
	}
}
