// Package session provides the signed session cookie implementation.
package session

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"homestay/config"
	"homestay/internal/domain/service"
)

// SessionTTL is the lifetime of the session cookie set on OAuth login.
const SessionTTL = 365 * 24 * time.Hour

// jwtCodec signs the session cookie value as an HS256 JWT whose subject is
// the user identifier.
type jwtCodec struct {
	secret      []byte
	insecureDev bool
}

// NewJWTCodec is the constructor for jwtCodec.
func NewJWTCodec(cfg *config.Config) (service.SessionCodec, error) {
	if cfg.Session == nil || cfg.Session.Secret == "" {
		return nil, errors.New("session secret must be provided")
	}

	return &jwtCodec{
		secret:      []byte(cfg.Session.Secret),
		insecureDev: cfg.Session.InsecureDev,
	}, nil
}

// Encode signs the user identifier into a cookie value.
func (c *jwtCodec) Encode(userID string) (string, error) {
	claims := jwt.MapClaims{
		"sub": userID,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(SessionTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign session value")
	}

	return signed, nil
}

// Decode validates a cookie value and returns the user identifier.
func (c *jwtCodec) Decode(value string) (string, error) {
	token, err := jwt.Parse(value, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return c.secret, nil
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to parse session value")
	}

	subject, err := token.Claims.GetSubject()
	if err != nil || subject == "" {
		return "", errors.New("session value carries no subject")
	}

	return subject, nil
}

// Cookie builds the session cookie for a signed value.
func (c *jwtCodec) Cookie(value string, maxAge time.Duration) *http.Cookie {
	cookie := &http.Cookie{
		Name:     service.SessionCookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   !c.insecureDev,
	}
	if maxAge > 0 {
		cookie.MaxAge = int(maxAge.Seconds())
	}

	return cookie
}

// Clear builds a cookie that removes the session cookie on the client.
func (c *jwtCodec) Clear() *http.Cookie {
	return &http.Cookie{
		Name:     service.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   !c.insecureDev,
	}
}
