package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// Claims are the backend token claims this client cares about
type Claims struct {
	Subject string
	Role    string
	Expiry  time.Time
}

// ParseClaims reads claims out of a backend-issued token without verifying
// the signature. The backend holds the secret and remains the verifier;
// this side only needs the role for request shaping.
func ParseClaims(tokenString string) (*Claims, error) {
	parser := jwt.NewParser()

	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	out := &Claims{}
	if sub, ok := claims["sub"].(string); ok {
		out.Subject = sub
	}
	if role, ok := claims["role"].(string); ok {
		out.Role = role
	}
	if exp, ok := claims["exp"].(float64); ok {
		out.Expiry = time.Unix(int64(exp), 0)
	}
	return out, nil
}

// Expired reports whether the token's expiry has passed.
// Tokens without an exp claim are treated as live.
func (c *Claims) Expired(now time.Time) bool {
	return !c.Expiry.IsZero() && now.After(c.Expiry)
}
