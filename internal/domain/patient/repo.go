package patient

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the patient store contract.
type Repository interface {
	Create(ctx context.Context, p *Patient) error
	GetByID(ctx context.Context, id uuid.UUID) (*Patient, error)
	// GetByRUT returns (nil, nil) when no patient carries the RUT.
	GetByRUT(ctx context.Context, rut string) (*Patient, error)
	Update(ctx context.Context, p *Patient) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*Patient, int, error)
}
