package middleware

import (
	"log/slog"

	deliverycontext "homestay/internal/delivery/context"
	"homestay/internal/domain/repository"
	"homestay/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// HeaderXCSRFToken carries the session token the client holds; it must match
// the token stored on the user record for the viewer to resolve.
const HeaderXCSRFToken = "X-CSRF-Token"

// AuthMiddleware resolves the viewer behind each request from the session
// cookie. Resolution is best effort: a missing or stale cookie, an unknown
// user or a token mismatch all leave the request anonymous rather than
// rejecting it. Handlers decide whether anonymity is acceptable.
type AuthMiddleware struct {
	codec    service.SessionCodec
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(codec service.SessionCodec, userRepo repository.UserRepository, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{codec: codec, userRepo: userRepo, logger: logger}
}

// ResolveViewer validates the session cookie, loads the user it points at and
// checks the request's session token against the stored one.
func (m *AuthMiddleware) ResolveViewer(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(service.SessionCookieName)
		if err != nil || cookie.Value == "" {
			return next(c)
		}

		userID, err := m.codec.Decode(cookie.Value)
		if err != nil {
			m.logger.Debug("Session cookie failed validation", slog.Any("error", err))

			return next(c)
		}

		user, err := m.userRepo.FindByID(c.Request().Context(), userID)
		if err != nil {
			return next(c)
		}

		token := c.Request().Header.Get(HeaderXCSRFToken)
		if token == "" || token != user.Token {
			return next(c)
		}

		deliverycontext.SetViewer(c, user)

		return next(c)
	}
}
