// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"homestay/internal/delivery/http/response"
	"homestay/internal/domain/entity"
	domainerrors "homestay/internal/domain/errors"
	"homestay/internal/domain/service"
	"homestay/internal/infra/session"
	"homestay/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ViewerHandler holds dependencies for login and session handlers.
type ViewerHandler struct {
	uc                 usecase.ViewerUsecase
	codec              service.SessionCodec
	googleOAuthService service.OAuthService
	logger             *slog.Logger
}

// NewViewerHandler is the constructor for ViewerHandler, injected by Fx.
func NewViewerHandler(uc usecase.ViewerUsecase, codec service.SessionCodec, googleOAuthService service.OAuthService, logger *slog.Logger) *ViewerHandler {
	return &ViewerHandler{
		uc:                 uc,
		codec:              codec,
		googleOAuthService: googleOAuthService,
		logger:             logger,
	}
}

// GoogleLogin hands out the Google authorization URL for the frontend to
// redirect to, or redirects directly when asked.
func (h *ViewerHandler) GoogleLogin(c echo.Context) error {
	oauthURL := h.googleOAuthService.BuildAuthorizationURL()

	if c.QueryParam("redirect") == "true" {
		return c.Redirect(http.StatusTemporaryRedirect, oauthURL)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"oauth_url": oauthURL,
	}, "Google OAuth URL generated successfully")
}

// SignIn handles both login paths. A code in the body selects the OAuth
// exchange, in which case the accompanying state must be one this service
// issued; otherwise the identity is taken from the signed session cookie and
// the session is renewed.
func (h *ViewerHandler) SignIn(c echo.Context) error {
	var input *usecase.SignInInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sign-in input")
	}
	if input == nil {
		input = &usecase.SignInInput{}
	}

	if input.Code == "" {
		input.ViewerID = h.viewerIDFromCookie(c)
	} else if !h.googleOAuthService.ValidateState(input.State) {
		return errors.WithStack(domainerrors.ErrAuthenticationFailed.WrapMessage("state parameter rejected"))
	}

	output, err := h.uc.SignIn(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.applyCookie(c, output); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, entity.NewViewer(output.User), "Sign-in resolved")
}

// SignOut ends the session by removing the cookie. The stored session token
// stays valid until the next login rotates it.
func (h *ViewerHandler) SignOut(c echo.Context) error {
	c.SetCookie(h.codec.Clear())

	return response.Success(c, http.StatusOK, entity.NewViewer(nil), "Signed out")
}

// viewerIDFromCookie decodes the signed session cookie into a user id. Any
// failure yields an empty id, which the sign-in flow treats as no viewer.
func (h *ViewerHandler) viewerIDFromCookie(c echo.Context) string {
	cookie, err := c.Cookie(service.SessionCookieName)
	if err != nil || cookie.Value == "" {
		return ""
	}

	userID, err := h.codec.Decode(cookie.Value)
	if err != nil {
		h.logger.Debug("Session cookie failed validation on sign-in", slog.Any("error", err))

		return ""
	}

	return userID
}

// applyCookie materializes the sign-in output's cookie side effects.
func (h *ViewerHandler) applyCookie(c echo.Context, output *usecase.SignInOutput) error {
	switch {
	case output.ClearCookie:
		c.SetCookie(h.codec.Clear())
	case output.SetCookie && output.User != nil:
		value, err := h.codec.Encode(output.User.ID)
		if err != nil {
			return errors.Wrap(err, "failed to encode session cookie")
		}
		c.SetCookie(h.codec.Cookie(value, session.SessionTTL))
	}

	return nil
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
