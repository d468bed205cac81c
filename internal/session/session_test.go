package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/agnesederberg/Final-project-2/internal/auth"
	"github.com/agnesederberg/Final-project-2/internal/models"
	"github.com/agnesederberg/Final-project-2/internal/repository"

	"github.com/google/uuid"
)

func newTestManager(t *testing.T) (*Manager, *repository.Memory, models.User) {
	t.Helper()
	ctx := context.Background()

	repo := repository.NewMemory()
	hash, err := auth.HashPassword("secret1")
	if err != nil {
		t.Fatal(err)
	}
	user := models.User{Name: "Ann", Email: "ann@example.com", PasswordHash: hash}
	if err := repo.CreateUser(ctx, &user); err != nil {
		t.Fatal(err)
	}

	m := NewManager(repo, NewMemoryStore(), []byte("test-secret"), time.Hour, 24*time.Hour)
	return m, repo, user
}

func TestLoginSuccess(t *testing.T) {
	ctx := context.Background()
	m, _, user := newTestManager(t)

	token, err := m.Login(ctx, "ann@example.com", "secret1", false)
	if err != nil {
		t.Fatal(err)
	}

	principal, err := m.Current(ctx, token)
	if err != nil {
		t.Fatal(err)
	}
	if principal.ID != user.ID || principal.Email != "ann@example.com" {
		t.Errorf("Unexpected principal: %+v", principal)
	}
}

func TestLoginFailureIsGeneric(t *testing.T) {
	ctx := context.Background()
	m, _, _ := newTestManager(t)

	// Unknown email and wrong password must be indistinguishable.
	_, errEmail := m.Login(ctx, "nobody@example.com", "secret1", false)
	_, errPassword := m.Login(ctx, "ann@example.com", "wrong", false)

	if !errors.Is(errEmail, ErrInvalidCredentials) {
		t.Errorf("Unknown email: got %v, want ErrInvalidCredentials", errEmail)
	}
	if !errors.Is(errPassword, ErrInvalidCredentials) {
		t.Errorf("Wrong password: got %v, want ErrInvalidCredentials", errPassword)
	}
	if errEmail.Error() != errPassword.Error() {
		t.Error("Failure messages differ between unknown email and wrong password")
	}
}

func TestLogoutReturnsToAnonymous(t *testing.T) {
	ctx := context.Background()
	m, _, _ := newTestManager(t)

	token, err := m.Login(ctx, "ann@example.com", "secret1", false)
	if err != nil {
		t.Fatal(err)
	}
	if err := m.Logout(ctx, token); err != nil {
		t.Fatal(err)
	}

	if _, err := m.Current(ctx, token); !errors.Is(err, ErrUnauthenticated) {
		t.Errorf("Session still live after logout: %v", err)
	}
}

func TestLogoutIsIdempotent(t *testing.T) {
	ctx := context.Background()
	m, _, _ := newTestManager(t)

	token, err := m.Login(ctx, "ann@example.com", "secret1", false)
	if err != nil {
		t.Fatal(err)
	}

	if err := m.Logout(ctx, token); err != nil {
		t.Fatal(err)
	}
	if err := m.Logout(ctx, token); err != nil {
		t.Errorf("Second logout errored: %v", err)
	}
	if err := m.Logout(ctx, ""); err != nil {
		t.Errorf("Logout while anonymous errored: %v", err)
	}
	if err := m.Logout(ctx, "garbage-token"); err != nil {
		t.Errorf("Logout with garbage token errored: %v", err)
	}
}

func TestCurrentWithoutToken(t *testing.T) {
	ctx := context.Background()
	m, _, _ := newTestManager(t)

	if _, err := m.Current(ctx, ""); !errors.Is(err, ErrUnauthenticated) {
		t.Errorf("Expected ErrUnauthenticated, got %v", err)
	}
	if _, err := m.Current(ctx, "garbage-token"); !errors.Is(err, ErrUnauthenticated) {
		t.Errorf("Expected ErrUnauthenticated for garbage token, got %v", err)
	}
}

func TestCurrentAfterUserDeleted(t *testing.T) {
	ctx := context.Background()
	m, repo, user := newTestManager(t)

	token, err := m.Login(ctx, "ann@example.com", "secret1", false)
	if err != nil {
		t.Fatal(err)
	}
	if err := repo.DeleteUser(ctx, user.ID); err != nil {
		t.Fatal(err)
	}

	if _, err := m.Current(ctx, token); !errors.Is(err, ErrUnauthenticated) {
		t.Errorf("Session for a deleted user still resolves: %v", err)
	}
}

func TestMemoryStoreExpiry(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	if err := store.Save(ctx, "s1", uuid.Nil, -time.Minute); err != nil {
		t.Fatal(err)
	}
	live, err := store.Exists(ctx, "s1")
	if err != nil {
		t.Fatal(err)
	}
	if live {
		t.Error("Expired session reported live")
	}
}
