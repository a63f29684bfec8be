package identity

import (
	"context"
	"errors"
)

type seedUser struct {
	username string
	password string
	role     string
}

// Default accounts created by the seed command. Passwords are meant for
// local development only.
var seedUsers = []seedUser{
	{username: "admin", password: "admin12345", role: RoleAdmin},
	{username: "enfermera", password: "clinica123", role: RoleUser},
}

// Seed creates the default accounts, skipping usernames already present.
func Seed(ctx context.Context, svc *Service) (int, error) {
	created := 0
	for _, su := range seedUsers {
		_, err := svc.Register(ctx, su.username, su.password, su.role)
		if errors.Is(err, ErrUsernameTaken) {
			continue
		}
		if err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}
