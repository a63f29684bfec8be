package identity

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/curaclinic/curaclinic/internal/platform/auth"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

type mockRepo struct {
	users map[string]*User
}

func newMockRepo() *mockRepo {
	return &mockRepo{users: make(map[string]*User)}
}

func (m *mockRepo) Create(_ context.Context, u *User) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	u.CreatedAt = time.Now()
	cp := *u
	m.users[u.Username] = &cp
	return nil
}

func (m *mockRepo) GetByUsername(_ context.Context, username string) (*User, error) {
	return m.users[username], nil
}

func (m *mockRepo) List(_ context.Context) ([]*User, error) {
	var out []*User
	for _, u := range m.users {
		out = append(out, u)
	}
	return out, nil
}

func TestRegister_HashesPassword(t *testing.T) {
	svc := NewService(newMockRepo(), testSecret)

	u, err := svc.Register(context.Background(), "cynthia", "secretpass", RoleAdmin)
	if err != nil {
		t.Fatalf("Register() error: %v", err)
	}
	if u.PasswordHash == "secretpass" || u.PasswordHash == "" {
		t.Error("expected bcrypt hash, not the raw password")
	}
	if u.Role != RoleAdmin {
		t.Errorf("expected role admin, got %s", u.Role)
	}
}

func TestRegister_Validation(t *testing.T) {
	svc := NewService(newMockRepo(), testSecret)

	if _, err := svc.Register(context.Background(), "", "secretpass", RoleUser); err == nil {
		t.Error("expected error for empty username")
	}
	if _, err := svc.Register(context.Background(), "ana", "short", RoleUser); err == nil {
		t.Error("expected error for short password")
	}
	if _, err := svc.Register(context.Background(), "ana", "secretpass", "doctor"); err == nil {
		t.Error("expected error for unknown role")
	}

	u, err := svc.Register(context.Background(), "ana", "secretpass", "")
	if err != nil {
		t.Fatalf("Register() error: %v", err)
	}
	if u.Role != RoleUser {
		t.Errorf("expected role defaulted to user, got %s", u.Role)
	}
}

func TestRegister_DuplicateUsername(t *testing.T) {
	svc := NewService(newMockRepo(), testSecret)

	if _, err := svc.Register(context.Background(), "ana", "secretpass", RoleUser); err != nil {
		t.Fatalf("Register() error: %v", err)
	}
	if _, err := svc.Register(context.Background(), "ana", "otherpass1", RoleUser); !errors.Is(err, ErrUsernameTaken) {
		t.Errorf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	svc := NewService(newMockRepo(), testSecret)
	if _, err := svc.Register(context.Background(), "cynthia", "secretpass", RoleAdmin); err != nil {
		t.Fatalf("Register() error: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "cynthia", "secretpass")
	if err != nil {
		t.Fatalf("Login() error: %v", err)
	}
	if user.Username != "cynthia" {
		t.Errorf("expected user cynthia, got %s", user.Username)
	}

	claims, err := auth.ParseToken(testSecret, token)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if claims.Role != RoleAdmin || claims.Username != "cynthia" {
		t.Errorf("unexpected claims: %+v", claims)
	}
}

func TestLogin_BadCredentials(t *testing.T) {
	svc := NewService(newMockRepo(), testSecret)
	if _, err := svc.Register(context.Background(), "cynthia", "secretpass", RoleAdmin); err != nil {
		t.Fatalf("Register() error: %v", err)
	}

	if _, _, err := svc.Login(context.Background(), "cynthia", "wrongpass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "nobody", "secretpass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials for unknown user, got %v", err)
	}
}

func TestSeed_Idempotent(t *testing.T) {
	svc := NewService(newMockRepo(), testSecret)

	created, err := Seed(context.Background(), svc)
	if err != nil {
		t.Fatalf("Seed() error: %v", err)
	}
	if created != len(seedUsers) {
		t.Errorf("expected %d users created, got %d", len(seedUsers), created)
	}

	created, err = Seed(context.Background(), svc)
	if err != nil {
		t.Fatalf("second Seed() error: %v", err)
	}
	if created != 0 {
		t.Errorf("expected 0 users created on reseed, got %d", created)
	}
}
