package utils // package utils provides helper functions for token creation and hashing

import (
    "crypto/rand"   // secure random number generation
    "crypto/sha256" // SHA-256 hashing for refresh tokens
    "encoding/hex"  // hex encoding and decoding functions
    "time"          // time utilities for generating expirations

    "github.com/golang-jwt/jwt/v5" // JWT library for creating signed tokens

    "github.com/iliyamo/parking-reservation/internal/model"
)

// AccessToken represents a signed JWT access token along with its expiry.
// Access tokens are short-lived and sent in the Authorization header when
// calling protected endpoints.
type AccessToken struct {
    Token string    // the serialized JWT string
    Exp   time.Time // the UTC expiration time
}

// RefreshToken represents a long-lived token used to obtain new access
// tokens.  Raw is returned to the client; the database stores only a
// SHA-256 hash of it.
type RefreshToken struct {
    Raw string    // raw token string returned to the client
    Exp time.Time // UTC expiration time
}

// NewAccessToken builds and signs an HS256 JWT for a user.  The claims
// carry the subject (user ID), the account role, expiration and issued-at.
// Role middleware downstream parses the role claim back through
// model.ParseRole, so only closed-set values ever enter a token.
func NewAccessToken(secret string, userID uint64, role model.Role, ttlMin int) (AccessToken, error) {
    exp := time.Now().UTC().Add(time.Duration(ttlMin) * time.Minute)
    claims := jwt.MapClaims{
        "sub":  userID,
        "role": role.String(),
        "exp":  exp.Unix(),
        "iat":  time.Now().UTC().Unix(),
    }
    t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
    signed, err := t.SignedString([]byte(secret))
    if err != nil {
        return AccessToken{}, err
    }
    return AccessToken{Token: signed, Exp: exp}, nil
}

// NewRefreshToken returns a cryptographically secure random token and its
// expiration.  The ttlDays parameter controls how long it stays valid.
func NewRefreshToken(ttlDays int) (RefreshToken, error) {
    raw, err := randomHex(48) // 48 bytes -> 96 hex chars
    if err != nil {
        return RefreshToken{}, err
    }
    return RefreshToken{
        Raw: raw,
        Exp: time.Now().UTC().Add(time.Duration(ttlDays) * 24 * time.Hour),
    }, nil
}

// HashRefreshRaw returns the SHA-256 hash of the raw refresh token as a
// hex string.  Storing only the hash prevents stolen database rows from
// refreshing sessions.
func HashRefreshRaw(raw string) string {
    sum := sha256.Sum256([]byte(raw))
    return hex.EncodeToString(sum[:])
}

// randomHex returns a hex-encoded string generated from n bytes of
// cryptographically secure random data.
func randomHex(n int) (string, error) {
    buf := make([]byte, n)
    if _, err := rand.Read(buf); err != nil {
        return "", err
    }
    return hex.EncodeToString(buf), nil
}
