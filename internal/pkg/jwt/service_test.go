package jwt

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func newTestService(now time.Time) *HMACService {
	s := NewHMACService("access-secret", "refresh-secret", 15*time.Minute, 7*24*time.Hour)
	s.now = func() time.Time { return now }
	return s
}

func TestAccessTokenRoundTrip(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s := newTestService(now)

	uid := uuid.New()
	tok, err := s.GenerateAccessToken(uid, "dev@mail.test", "EMPLOYER")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := s.ValidateToken(tok)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.UserID != uid {
		t.Fatalf("user id not preserved")
	}
	if claims.Email != "dev@mail.test" || claims.Role != "EMPLOYER" {
		t.Fatalf("identity claims not preserved: %+v", claims)
	}
	if claims.TokenType != TokenTypeAccess {
		t.Fatalf("expected access token type, got %q", claims.TokenType)
	}
	if s.IsRefreshToken(claims) {
		t.Fatalf("access token misclassified as refresh")
	}
}

func TestRefreshTokenHasNoIdentityClaims(t *testing.T) {
	s := newTestService(time.Now())

	tok, err := s.GenerateRefreshToken(uuid.New())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := s.ValidateToken(tok)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.Email != "" || claims.Role != "" {
		t.Fatalf("refresh token should not carry email/role: %+v", claims)
	}
	if !s.IsRefreshToken(claims) {
		t.Fatalf("refresh token not recognized")
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	issued := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s := newTestService(issued)

	tok, err := s.GenerateAccessToken(uuid.New(), "", "")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	s.now = func() time.Time { return issued.Add(16 * time.Minute) }
	if _, err := s.ValidateToken(tok); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestGarbageTokenRejected(t *testing.T) {
	s := newTestService(time.Now())
	if _, err := s.ValidateToken("not.a.token"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestTokenSignedWithWrongSecretRejected(t *testing.T) {
	now := time.Now()
	issuer := newTestService(now)
	verifier := NewHMACService("other-access", "other-refresh", 15*time.Minute, time.Hour)
	verifier.now = func() time.Time { return now }

	tok, err := issuer.GenerateAccessToken(uuid.New(), "", "")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := verifier.ValidateToken(tok); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}
