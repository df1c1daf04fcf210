package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"homestay/config"
	"homestay/internal/domain/entity"
	domainerrors "homestay/internal/domain/errors"
	"homestay/internal/domain/service"
	"homestay/internal/infra/session"
	mockSvc "homestay/internal/mocks/service"
	mockUsecase "homestay/internal/mocks/usecase"
	"homestay/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testCodec(t *testing.T) service.SessionCodec {
	cfg := &config.Config{}
	cfg.Session = &config.SessionConfig{
		Secret:      "test_session_secret_key_very_long_for_testing",
		InsecureDev: true,
	}

	codec, err := session.NewJWTCodec(cfg)
	require.NoError(t, err)

	return codec
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == service.SessionCookieName {
			return cookie
		}
	}
	t.Fatal("no session cookie in response")

	return nil
}

func TestViewerHandler_GoogleLogin(t *testing.T) {
	oauth := mockSvc.NewMockOAuthService(t)
	oauth.EXPECT().
		BuildAuthorizationURL().
		Return("https://accounts.google.com/o/oauth2/v2/auth?client_id=test")

	handler := NewViewerHandler(nil, testCodec(t), oauth, discardLogger())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/oauth/google", nil)
	rec := httptest.NewRecorder()

	err := handler.GoogleLogin(e.NewContext(req, rec))

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "client_id=test")
}

func TestViewerHandler_GoogleLogin_Redirect(t *testing.T) {
	oauth := mockSvc.NewMockOAuthService(t)
	oauth.EXPECT().
		BuildAuthorizationURL().
		Return("https://accounts.google.com/o/oauth2/v2/auth?client_id=test")

	handler := NewViewerHandler(nil, testCodec(t), oauth, discardLogger())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/oauth/google?redirect=true", nil)
	rec := httptest.NewRecorder()

	err := handler.GoogleLogin(e.NewContext(req, rec))

	require.NoError(t, err)
	assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
}

func TestViewerHandler_SignIn_WithCode(t *testing.T) {
	oauth := mockSvc.NewMockOAuthService(t)
	oauth.EXPECT().
		ValidateState("issued-state").
		Return(true)

	uc := mockUsecase.NewMockViewerUsecase(t)
	uc.EXPECT().
		SignIn(mock.Anything, &usecase.SignInInput{Code: "auth-code", State: "issued-state"}).
		Return(&usecase.SignInOutput{
			User:      &entity.User{ID: "user-1", Token: "session-token"},
			SetCookie: true,
		}, nil)

	handler := NewViewerHandler(uc, testCodec(t), oauth, discardLogger())

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/viewer/sign-in", strings.NewReader(`{"code":"auth-code","state":"issued-state"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err := handler.SignIn(e.NewContext(req, rec))

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"token":"session-token"`)
	assert.Contains(t, rec.Body.String(), `"didRequest":true`)

	cookie := sessionCookie(t, rec)
	assert.NotEmpty(t, cookie.Value)
	assert.Positive(t, cookie.MaxAge)
}

func TestViewerHandler_SignIn_RejectedState(t *testing.T) {
	oauth := mockSvc.NewMockOAuthService(t)
	oauth.EXPECT().
		ValidateState("forged-state").
		Return(false)

	uc := mockUsecase.NewMockViewerUsecase(t)

	handler := NewViewerHandler(uc, testCodec(t), oauth, discardLogger())

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/viewer/sign-in", strings.NewReader(`{"code":"auth-code","state":"forged-state"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err := handler.SignIn(e.NewContext(req, rec))

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAuthenticationFailed)
	uc.AssertNotCalled(t, "SignIn")
}

func TestViewerHandler_SignIn_CookieRenewal(t *testing.T) {
	codec := testCodec(t)
	encoded, err := codec.Encode("user-1")
	require.NoError(t, err)

	uc := mockUsecase.NewMockViewerUsecase(t)
	uc.EXPECT().
		SignIn(mock.Anything, &usecase.SignInInput{ViewerID: "user-1"}).
		Return(&usecase.SignInOutput{User: &entity.User{ID: "user-1"}}, nil)

	handler := NewViewerHandler(uc, codec, nil, discardLogger())

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/viewer/sign-in", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.AddCookie(&http.Cookie{Name: service.SessionCookieName, Value: encoded})
	rec := httptest.NewRecorder()

	err = handler.SignIn(e.NewContext(req, rec))

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	// Renewal neither sets nor clears the cookie.
	assert.Empty(t, rec.Result().Cookies())
}

func TestViewerHandler_SignIn_StaleCookieCleared(t *testing.T) {
	codec := testCodec(t)
	encoded, err := codec.Encode("ghost")
	require.NoError(t, err)

	uc := mockUsecase.NewMockViewerUsecase(t)
	uc.EXPECT().
		SignIn(mock.Anything, &usecase.SignInInput{ViewerID: "ghost"}).
		Return(&usecase.SignInOutput{ClearCookie: true}, nil)

	handler := NewViewerHandler(uc, codec, nil, discardLogger())

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/viewer/sign-in", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.AddCookie(&http.Cookie{Name: service.SessionCookieName, Value: encoded})
	rec := httptest.NewRecorder()

	err = handler.SignIn(e.NewContext(req, rec))

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	// The anonymous viewer still acknowledges the attempt.
	assert.Contains(t, rec.Body.String(), `"didRequest":true`)
	assert.NotContains(t, rec.Body.String(), `"id"`)

	cookie := sessionCookie(t, rec)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}

func TestViewerHandler_SignOut(t *testing.T) {
	handler := NewViewerHandler(nil, testCodec(t), nil, discardLogger())

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/viewer/sign-out", nil)
	rec := httptest.NewRecorder()

	err := handler.SignOut(e.NewContext(req, rec))

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"didRequest":true`)

	cookie := sessionCookie(t, rec)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}
