package identity

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DecodeExpiry extracts the exp claim from a bearer token without verifying
// its signature. Signature checks are the server's job; the client only needs
// the expiry to know when a persisted session has gone stale.
func DecodeExpiry(token string) (time.Time, bool) {
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

// IsExpired reports whether the token can no longer back a session. A missing
// or undecodable token is always expired; a decodable one is live strictly
// before its expiry instant.
func IsExpired(token string, now time.Time) bool {
	exp, ok := DecodeExpiry(token)
	if !ok {
		return true
	}
	return !now.Before(exp)
}
