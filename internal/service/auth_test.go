package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret-0123456789-0123456789-0123456789"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

func TestValidateAccessToken(t *testing.T) {
	svc := NewAuthService(nil, nil, testSecret)
	now := time.Now()

	t.Run("valid", func(t *testing.T) {
		s := signToken(t, testSecret, jwt.MapClaims{
			"sub":   "user-1",
			"email": "priya@example.com",
			"iat":   now.Unix(),
			"exp":   now.Add(time.Minute).Unix(),
		})
		userID, email, err := svc.ValidateAccessToken(s)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if userID != "user-1" || email != "priya@example.com" {
			t.Fatalf("got %q %q", userID, email)
		}
	})

	t.Run("expired", func(t *testing.T) {
		s := signToken(t, testSecret, jwt.MapClaims{
			"sub": "user-1",
			"exp": now.Add(-time.Minute).Unix(),
		})
		if _, _, err := svc.ValidateAccessToken(s); err != ErrInvalidToken {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		s := signToken(t, "some-other-secret", jwt.MapClaims{
			"sub": "user-1",
			"exp": now.Add(time.Minute).Unix(),
		})
		if _, _, err := svc.ValidateAccessToken(s); err != ErrInvalidToken {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("missing subject", func(t *testing.T) {
		s := signToken(t, testSecret, jwt.MapClaims{
			"email": "priya@example.com",
			"exp":   now.Add(time.Minute).Unix(),
		})
		if _, _, err := svc.ValidateAccessToken(s); err != ErrInvalidToken {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("garbage", func(t *testing.T) {
		if _, _, err := svc.ValidateAccessToken("not-a-jwt"); err != ErrInvalidToken {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})
}

func TestUpdateProfileValidation(t *testing.T) {
	svc := NewAuthService(nil, nil, testSecret)

	// Rejections happen before any repository call, so nil repos are fine.
	tests := []struct {
		label string
		name  string
	}{
		{"empty", ""},
		{"single rune", "आ"},
		{"over a hundred runes", strings.Repeat("न", 101)},
		{"whitespace only", "   "},
	}
	for _, tc := range tests {
		t.Run(tc.label, func(t *testing.T) {
			_, err := svc.UpdateProfile(context.Background(), "user-1", tc.name, "")
			if !errors.Is(err, ErrInvalidName) {
				t.Fatalf("expected ErrInvalidName, got %v", err)
			}
		})
	}
}

func TestChangePasswordRejectsShortPassword(t *testing.T) {
	svc := NewAuthService(nil, nil, testSecret)

	err := svc.ChangePassword(context.Background(), "user-1", "old-password", "short")
	if !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("expected ErrWeakPassword, got %v", err)
	}
}

func TestValidFullNameCountsRunes(t *testing.T) {
	tests := []struct {
		name string
		ok   bool
	}{
		{"आर", true},                     // two runes, six bytes
		{strings.Repeat("न", 100), true}, // at the limit in runes, far over in bytes
		{strings.Repeat("न", 101), false},
		{"P", false},
	}
	for _, tc := range tests {
		if got := validFullName(tc.name); got != tc.ok {
			t.Errorf("validFullName(%d runes) = %v, want %v", len([]rune(tc.name)), got, tc.ok)
		}
	}
}
