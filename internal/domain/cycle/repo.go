package cycle

import "context"

// Repository is the cycle store contract.
type Repository interface {
	// Get returns the cycle for (year, month), or (nil, nil) when none is
	// configured. Absence is not an error.
	Get(ctx context.Context, year, month int) (*Cycle, error)
	ListByYear(ctx context.Context, year int) ([]*Cycle, error)
	// Upsert inserts or replaces the cycle keyed by (year, month).
	Upsert(ctx context.Context, c *Cycle) error
}
