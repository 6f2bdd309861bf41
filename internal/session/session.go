package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session is the per-request view of the persisted role and auth token.
// Renderers receive it by value and never touch the cookie store directly.
type Session struct {
	Role  Role
	Token string
}

// HasToken reports whether an auth token is present.
func (s Session) HasToken() bool {
	return s.Token != ""
}

// Valid is false when an authenticated role has no token, or when the token
// is a JWT that has already expired.
func (s Session) Valid() bool {
	return s.validAt(time.Now())
}

func (s Session) validAt(now time.Time) bool {
	if s.Role.Authenticated() && !s.HasToken() {
		return false
	}
	if s.HasToken() && tokenExpired(s.Token, now) {
		return false
	}
	return true
}

// tokenExpired inspects the exp claim without verifying the signature; the
// backend remains the authority on token validity. Opaque tokens never expire
// from the frontend's point of view.
func tokenExpired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(now)
}
