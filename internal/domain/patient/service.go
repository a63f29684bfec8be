package patient

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// ErrRUTTaken is returned when another patient already carries the RUT.
var ErrRUTTaken = fmt.Errorf("rut already registered")

type Service struct {
	patients Repository
}

func NewService(patients Repository) *Service {
	return &Service{patients: patients}
}

func (s *Service) validate(p *Patient) error {
	if p.RUT == "" {
		return fmt.Errorf("rut is required")
	}
	if p.FirstName == "" || p.LastName == "" {
		return fmt.Errorf("first_name and last_name are required")
	}
	if p.BirthDate.IsZero() {
		return fmt.Errorf("birth_date is required")
	}
	if p.Gender == "" {
		return fmt.Errorf("gender is required")
	}
	return nil
}

func (s *Service) Create(ctx context.Context, p *Patient) error {
	if err := s.validate(p); err != nil {
		return err
	}
	existing, err := s.patients.GetByRUT(ctx, p.RUT)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrRUTTaken
	}
	return s.patients.Create(ctx, p)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Patient, error) {
	return s.patients.GetByID(ctx, id)
}

func (s *Service) GetByRUT(ctx context.Context, rut string) (*Patient, error) {
	return s.patients.GetByRUT(ctx, rut)
}

func (s *Service) Update(ctx context.Context, p *Patient) error {
	if err := s.validate(p); err != nil {
		return err
	}
	existing, err := s.patients.GetByRUT(ctx, p.RUT)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != p.ID {
		return ErrRUTTaken
	}
	return s.patients.Update(ctx, p)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.patients.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*Patient, int, error) {
	return s.patients.List(ctx, limit, offset)
}
