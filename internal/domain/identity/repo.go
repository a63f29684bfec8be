package identity

import "context"

// Repository is the user store contract.
type Repository interface {
	Create(ctx context.Context, u *User) error
	// GetByUsername returns (nil, nil) when the username is unknown.
	GetByUsername(ctx context.Context, username string) (*User, error)
	List(ctx context.Context) ([]*User, error)
}
