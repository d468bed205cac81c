package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("secret1")
	if err != nil {
		t.Fatal(err)
	}
	if hash == "secret1" {
		t.Fatal("Stored digest equals the plaintext")
	}
	if err := VerifyPassword(hash, "secret1"); err != nil {
		t.Errorf("Correct password rejected: %v", err)
	}
	if err := VerifyPassword(hash, "secret2"); err == nil {
		t.Error("Wrong password accepted")
	}
}

func TestHashPasswordSalted(t *testing.T) {
	h1, err := HashPassword("secret1")
	if err != nil {
		t.Fatal(err)
	}
	h2, err := HashPassword("secret1")
	if err != nil {
		t.Fatal(err)
	}
	if h1 == h2 {
		t.Error("Two digests of the same password are identical; salting is broken")
	}
}

func TestSessionTokenRoundTrip(t *testing.T) {
	secret := []byte("test-secret")
	userID := uuid.New()

	token, err := SignSessionToken(secret, userID, "session-1", time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	claims, err := ParseSessionToken(secret, token)
	if err != nil {
		t.Fatal(err)
	}
	if claims.UserID != userID {
		t.Errorf("UserID = %s, want %s", claims.UserID, userID)
	}
	if claims.SessionID != "session-1" {
		t.Errorf("SessionID = %q, want %q", claims.SessionID, "session-1")
	}
}

func TestSessionTokenRejectsWrongSecret(t *testing.T) {
	token, err := SignSessionToken([]byte("secret-a"), uuid.New(), "session-1", time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ParseSessionToken([]byte("secret-b"), token); err == nil {
		t.Error("Token signed with another secret accepted")
	}
}

func TestSessionTokenExpires(t *testing.T) {
	secret := []byte("test-secret")
	token, err := SignSessionToken(secret, uuid.New(), "session-1", -time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ParseSessionToken(secret, token); err == nil {
		t.Error("Expired token accepted")
	}
}
