package credstore

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ExpiryHint reads the expiry claim out of the token without verifying it.
// The token stays opaque for authorization purposes (only the backend's
// verify endpoint decides validity); this exists so the UI can show when a
// session will lapse. Returns ok=false for non-JWT or claim-less tokens.
func ExpiryHint(token string) (time.Time, bool) {
	claims := &jwt.RegisteredClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}
