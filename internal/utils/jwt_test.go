package utils

import (
    "testing"
    "time"

    "github.com/golang-jwt/jwt/v5"

    "github.com/iliyamo/parking-reservation/internal/model"
)

func TestAccessTokenRoundTrip(t *testing.T) {
    const secret = "test-secret"
    tok, err := NewAccessToken(secret, 42, model.RoleVendor, 15)
    if err != nil {
        t.Fatalf("NewAccessToken: %v", err)
    }
    if time.Until(tok.Exp) <= 0 {
        t.Fatalf("expiry %v is not in the future", tok.Exp)
    }

    parsed, err := jwt.Parse(tok.Token, func(tk *jwt.Token) (interface{}, error) {
        if _, ok := tk.Method.(*jwt.SigningMethodHMAC); !ok {
            t.Fatalf("unexpected signing method %v", tk.Method)
        }
        return []byte(secret), nil
    })
    if err != nil || !parsed.Valid {
        t.Fatalf("parse back failed: %v", err)
    }
    claims := parsed.Claims.(jwt.MapClaims)
    if sub, _ := claims["sub"].(float64); uint64(sub) != 42 {
        t.Errorf("sub = %v, want 42", claims["sub"])
    }
    if role, _ := claims["role"].(string); role != "vendor" {
        t.Errorf("role = %q, want vendor", role)
    }
}

func TestAccessTokenRejectsWrongSecret(t *testing.T) {
    tok, err := NewAccessToken("right", 1, model.RoleUser, 5)
    if err != nil {
        t.Fatalf("NewAccessToken: %v", err)
    }
    parsed, err := jwt.Parse(tok.Token, func(tk *jwt.Token) (interface{}, error) {
        return []byte("wrong"), nil
    })
    if err == nil && parsed.Valid {
        t.Fatal("token validated with the wrong secret")
    }
}

func TestNewRefreshToken(t *testing.T) {
    a, err := NewRefreshToken(7)
    if err != nil {
        t.Fatalf("NewRefreshToken: %v", err)
    }
    b, err := NewRefreshToken(7)
    if err != nil {
        t.Fatalf("NewRefreshToken: %v", err)
    }
    if a.Raw == b.Raw {
        t.Fatal("two refresh tokens should never collide")
    }
    if len(a.Raw) != 96 {
        t.Fatalf("raw token length = %d, want 96 hex chars", len(a.Raw))
    }
    if a.Exp.Before(time.Now().Add(6 * 24 * time.Hour)) {
        t.Fatalf("expiry %v sooner than expected", a.Exp)
    }
}

func TestHashRefreshRawIsStable(t *testing.T) {
    h1 := HashRefreshRaw("abc")
    h2 := HashRefreshRaw("abc")
    if h1 != h2 {
        t.Fatal("hash must be deterministic")
    }
    if len(h1) != 64 {
        t.Fatalf("hash length = %d, want 64 hex chars", len(h1))
    }
    if h1 == HashRefreshRaw("abd") {
        t.Fatal("distinct inputs should hash differently")
    }
}
