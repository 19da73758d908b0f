package security

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "abcdefghijklmnopqrstuvwxyz123456"

func TestJWTManagerRoundTrip(t *testing.T) {
	mgr := NewJWTManager(testSecret, "notes", 24*time.Hour)
	token, exp, err := mgr.SignSession(42, "ada@example.com")
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if d := time.Until(exp); d < 23*time.Hour || d > 24*time.Hour {
		t.Fatalf("unexpected expiry distance %s", d)
	}

	claims, err := mgr.ParseSession(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.Email != "ada@example.com" || claims.AccountID != 42 {
		t.Fatalf("unexpected claims %+v", claims)
	}
	if claims.Subject != "42" || claims.ID == "" {
		t.Fatalf("expected subject and jti, got %+v", claims.RegisteredClaims)
	}
}

func TestJWTManagerRejects(t *testing.T) {
	mgr := NewJWTManager(testSecret, "notes", 24*time.Hour)
	valid, _, err := mgr.SignSession(1, "a@b.co")
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	issued := time.Now()
	expired := NewJWTManager(testSecret, "notes", 24*time.Hour)
	expired.now = func() time.Time { return issued.Add(-25 * time.Hour) }
	old, _, err := expired.SignSession(1, "a@b.co")
	if err != nil {
		t.Fatalf("sign expired: %v", err)
	}

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		AccountID: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "notes",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none: %v", err)
	}

	tests := []struct {
		name  string
		mgr   *JWTManager
		token string
	}{
		{name: "empty", mgr: mgr, token: ""},
		{name: "malformed", mgr: mgr, token: "not-a-jwt"},
		{name: "wrong secret", mgr: NewJWTManager(strings.Repeat("z", 32), "notes", time.Hour), token: valid},
		{name: "wrong issuer", mgr: NewJWTManager(testSecret, "other", time.Hour), token: valid},
		{name: "expired after 24h", mgr: mgr, token: old},
		{name: "alg none", mgr: mgr, token: noneToken},
		{name: "tampered", mgr: mgr, token: valid[:len(valid)-2] + "xx"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.mgr.ParseSession(tc.token)
			if !errors.Is(err, ErrInvalidToken) {
				t.Fatalf("expected ErrInvalidToken, got %v", err)
			}
		})
	}
}

func TestJWTManagerAcceptsJustBeforeExpiry(t *testing.T) {
	issued := time.Now()
	mgr := NewJWTManager(testSecret, "notes", 24*time.Hour)
	mgr.now = func() time.Time { return issued }
	token, _, err := mgr.SignSession(9, "x@y.io")
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	mgr.now = func() time.Time { return issued.Add(24*time.Hour - time.Minute) }
	if _, err := mgr.ParseSession(token); err != nil {
		t.Fatalf("expected token valid just before 24h, got %v", err)
	}
	mgr.now = func() time.Time { return issued.Add(24*time.Hour + time.Minute) }
	if _, err := mgr.ParseSession(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected token invalid after 24h, got %v", err)
	}
}
