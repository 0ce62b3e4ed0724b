package session

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpiry extracts the exp claim from a bearer token without verifying
// its signature; the server remains the authority on validity, this only
// lets the UI flag a session that is certainly stale. Tokens that are not
// parseable JWTs, or carry no exp claim, report no expiry.
func TokenExpiry(token string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// ExpiresAt reports the stored token's expiry, when one is stored and it is
// a JWT with an exp claim.
func (s *Store) ExpiresAt(ctx context.Context) (time.Time, bool) {
	token, ok, err := s.Token(ctx)
	if err != nil || !ok {
		return time.Time{}, false
	}
	return TokenExpiry(token)
}
