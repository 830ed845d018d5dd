package auth

import (
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
)

func TestJWTIssuer(t *testing.T) {
	issuer := NewJWTIssuer([]byte("secret"), time.Hour)
	base := time.Date(2024, 5, 27, 9, 0, 0, 0, time.UTC)
	issuer.now = func() time.Time { return base }

	token, exp, err := issuer.Issue("admin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !exp.Equal(base.Add(time.Hour)) {
		t.Fatalf("unexpected expiry %v", exp)
	}

	t.Run("valid", func(t *testing.T) {
		sub, err := issuer.Validate(token)
		if err != nil || sub != "admin" {
			t.Fatalf("expected admin, got %q err=%v", sub, err)
		}
	})

	t.Run("expired", func(t *testing.T) {
		late := NewJWTIssuer([]byte("secret"), time.Hour)
		late.now = func() time.Time { return base.Add(2 * time.Hour) }
		if _, err := late.Validate(token); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewJWTIssuer([]byte("other"), time.Hour)
		other.now = issuer.now
		if _, err := other.Validate(token); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("garbage", func(t *testing.T) {
		if _, err := issuer.Validate("not.a.token"); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("s3nha")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword(hash, []byte("s3nha")); err != nil {
		t.Fatalf("hash does not match: %v", err)
	}
}

func TestRandomSecret(t *testing.T) {
	a, _ := RandomSecret()
	b, _ := RandomSecret()
	if len(a) != 64 || a == b {
		t.Fatalf("unexpected secrets %q %q", a, b)
	}
}
