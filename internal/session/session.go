// Package session tracks the authenticated principal for a request.
// A session is a signed token referencing a server-side session record,
// so logout invalidates the token before it expires.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/agnesederberg/Final-project-2/internal/auth"
	"github.com/agnesederberg/Final-project-2/internal/repository"

	"github.com/google/uuid"
)

var (
	// ErrInvalidCredentials is deliberately generic: it never says
	// whether the email or the password was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUnauthenticated means no valid session accompanies the request.
	ErrUnauthenticated = errors.New("unauthenticated")
)

// Store records which session IDs are live. Implementations: Redis in
// production, MemoryStore in tests.
type Store interface {
	Save(ctx context.Context, sessionID string, userID uuid.UUID, ttl time.Duration) error
	Exists(ctx context.Context, sessionID string) (bool, error)
	Delete(ctx context.Context, sessionID string) error
}

// Principal is the authenticated user attached to a request context.
type Principal struct {
	ID    uuid.UUID
	Name  string
	Email string
}

type Manager struct {
	users       repository.UserReader
	store       Store
	secret      []byte
	sessionTTL  time.Duration
	rememberTTL time.Duration
}

func NewManager(users repository.UserReader, store Store, secret []byte, sessionTTL, rememberTTL time.Duration) *Manager {
	return &Manager{
		users:       users,
		store:       store,
		secret:      secret,
		sessionTTL:  sessionTTL,
		rememberTTL: rememberTTL,
	}
}

// Login checks the credentials and, on success, opens a session and
// returns its token. The remember flag extends the session lifetime.
func (m *Manager) Login(ctx context.Context, email, password string, remember bool) (string, error) {
	user, err := m.users.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if auth.VerifyPassword(user.PasswordHash, password) != nil {
		return "", ErrInvalidCredentials
	}

	ttl := m.sessionTTL
	if remember {
		ttl = m.rememberTTL
	}
	sessionID := uuid.NewString()
	if err := m.store.Save(ctx, sessionID, user.ID, ttl); err != nil {
		return "", fmt.Errorf("saving session: %w", err)
	}
	return auth.SignSessionToken(m.secret, user.ID, sessionID, ttl)
}

// Logout closes the session behind the token. It is idempotent: an
// invalid, expired or already-closed token is a no-op, not an error.
func (m *Manager) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	claims, err := auth.ParseSessionToken(m.secret, token)
	if err != nil {
		return nil
	}
	return m.store.Delete(ctx, claims.SessionID)
}

// Current resolves the principal behind a token, or ErrUnauthenticated.
func (m *Manager) Current(ctx context.Context, token string) (*Principal, error) {
	if token == "" {
		return nil, ErrUnauthenticated
	}
	claims, err := auth.ParseSessionToken(m.secret, token)
	if err != nil {
		return nil, ErrUnauthenticated
	}
	live, err := m.store.Exists(ctx, claims.SessionID)
	if err != nil {
		return nil, fmt.Errorf("checking session: %w", err)
	}
	if !live {
		return nil, ErrUnauthenticated
	}

	user, err := m.users.FindUserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, err
	}
	return &Principal{ID: user.ID, Name: user.Name, Email: user.Email}, nil
}
