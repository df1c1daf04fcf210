package service

import (
	"net/http"
	"time"
)

// SessionCookieName is the name of the signed session cookie.
const SessionCookieName = "viewer"

// SessionCodec signs and validates the "viewer" session cookie. The cookie
// value carries only the user's stable identifier; the session token stored
// on the user record is checked separately by the authorization middleware.
type SessionCodec interface {
	// Encode signs the user identifier into a cookie value.
	Encode(userID string) (string, error)

	// Decode validates a cookie value and returns the user identifier.
	Decode(value string) (string, error)

	// Cookie builds the session cookie for a signed value. A zero maxAge
	// yields a session-scoped cookie.
	Cookie(value string, maxAge time.Duration) *http.Cookie

	// Clear builds a cookie that explicitly removes the session cookie.
	Clear() *http.Cookie
}
