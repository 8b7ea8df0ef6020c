package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func newTestIssuer(now time.Time) *TokenIssuer {
	issuer := NewTokenIssuer(JWTConfig{Secret: "test-secret", ExpiryHours: 1})
	issuer.now = func() time.Time { return now }
	return issuer
}

func TestTokenIssuerRoundTrip(t *testing.T) {
	now := time.Now()
	issuer := newTestIssuer(now)
	userID := uuid.New()

	token, expiresAt, err := issuer.Issue(userID, "jane@example.com", "admin")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	if !expiresAt.Equal(now.Add(time.Hour)) {
		t.Errorf("expiresAt = %v, want %v", expiresAt, now.Add(time.Hour))
	}

	claims, err := issuer.Parse(token)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if claims.Subject != userID.String() {
		t.Errorf("Subject = %q, want %q", claims.Subject, userID)
	}
	if claims.Email != "jane@example.com" || claims.Role != "admin" {
		t.Errorf("claims = %+v", claims)
	}
}

func TestTokenIssuerRejects(t *testing.T) {
	now := time.Now()
	issuer := newTestIssuer(now)

	token, _, err := issuer.Issue(uuid.New(), "jane@example.com", "user")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	t.Run("expired", func(t *testing.T) {
		later := newTestIssuer(now.Add(2 * time.Hour))
		if _, err := later.Parse(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Parse() error = %v, want ErrInvalidToken", err)
		}
	})

	t.Run("other secret", func(t *testing.T) {
		other := NewTokenIssuer(JWTConfig{Secret: "another-secret", ExpiryHours: 1})
		if _, err := other.Parse(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Parse() error = %v, want ErrInvalidToken", err)
		}
	})

	t.Run("garbage", func(t *testing.T) {
		if _, err := issuer.Parse("not-a-token"); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Parse() error = %v, want ErrInvalidToken", err)
		}
	})
}
