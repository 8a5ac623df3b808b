package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/icehawks/roster-system/internal/core/domain"
	"github.com/icehawks/roster-system/internal/core/ports"
)

const defaultTokenTTL = 7 * 24 * time.Hour

// TokenCodec issues and verifies HS256-signed identity tokens. The signing
// secret is process-wide configuration loaded once at startup.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenCodec creates a codec with the given secret and token lifetime.
// A non-positive ttl falls back to seven days.
func NewTokenCodec(secret string, ttl time.Duration) *TokenCodec {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenCodec{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token embedding the user's identity snapshot. The claims are
// fixed at issuance; later role changes do not alter an outstanding token.
func (tc *TokenCodec) Issue(user *domain.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":     user.ID,
		"email":   user.Email,
		"role_id": user.RoleID,
		"iat":     now.Unix(),
		"exp":     now.Add(tc.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(tc.secret)
}

// Verify parses and validates a token. Expired tokens return
// domain.ErrTokenExpired; any other failure, including an unexpected signing
// method, returns domain.ErrTokenInvalid.
func (tc *TokenCodec) Verify(token string) (*ports.TokenClaims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return tc.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}
	if !tkn.Valid {
		return nil, domain.ErrTokenInvalid
	}

	out := &ports.TokenClaims{
		UserID: int64(numClaim(claims, "sub")),
		RoleID: int64(numClaim(claims, "role_id")),
	}
	if email, ok := claims["email"].(string); ok {
		out.Email = email
	}
	if iat, err := claims.GetIssuedAt(); err == nil && iat != nil {
		out.IssuedAt = iat.Time
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		out.ExpiresAt = exp.Time
	}
	if out.UserID == 0 {
		return nil, domain.ErrTokenInvalid
	}
	return out, nil
}

// numClaim reads a numeric claim. JSON decoding turns all numbers into
// float64, so the round trip through MapClaims loses the integer type.
func numClaim(claims jwt.MapClaims, key string) float64 {
	n, _ := claims[key].(float64)
	return n
}

var _ ports.TokenCodec = (*TokenCodec)(nil)
