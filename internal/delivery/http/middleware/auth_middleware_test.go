package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"homestay/config"
	deliverycontext "homestay/internal/delivery/context"
	"homestay/internal/domain/entity"
	"homestay/internal/domain/repository"
	"homestay/internal/domain/service"
	"homestay/internal/infra/session"
	mockRepo "homestay/internal/mocks/repository"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authFixtures struct {
	middleware *AuthMiddleware
	codec      service.SessionCodec
	userRepo   *mockRepo.MockUserRepository
}

func createTestAuthMiddleware(t *testing.T) authFixtures {
	cfg := &config.Config{}
	cfg.Session = &config.SessionConfig{
		Secret:      "test_session_secret_key_very_long_for_testing",
		InsecureDev: true,
	}

	codec, err := session.NewJWTCodec(cfg)
	require.NoError(t, err)

	userRepo := mockRepo.NewMockUserRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return authFixtures{
		middleware: NewAuthMiddleware(codec, userRepo, logger),
		codec:      codec,
		userRepo:   userRepo,
	}
}

func resolveRequest(t *testing.T, fx authFixtures, setup func(*http.Request)) *entity.User {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/viewer/stripe/connect", nil)
	if setup != nil {
		setup(req)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var resolved *entity.User
	next := func(c echo.Context) error {
		resolved = deliverycontext.GetViewer(c)
		return nil
	}

	err := fx.middleware.ResolveViewer(next)(c)
	require.NoError(t, err)

	return resolved
}

func TestAuthMiddleware_ResolvesViewer(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	encoded, err := fx.codec.Encode("user-1")
	require.NoError(t, err)

	stored := &entity.User{ID: "user-1", Token: "session-token"}
	fx.userRepo.EXPECT().FindByID(mock.Anything, "user-1").Return(stored, nil)

	viewer := resolveRequest(t, fx, func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: service.SessionCookieName, Value: encoded})
		req.Header.Set(HeaderXCSRFToken, "session-token")
	})

	require.NotNil(t, viewer)
	assert.Equal(t, "user-1", viewer.ID)
}

func TestAuthMiddleware_NoCookie(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	viewer := resolveRequest(t, fx, nil)

	assert.Nil(t, viewer)
}

func TestAuthMiddleware_TokenMismatch(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	encoded, err := fx.codec.Encode("user-1")
	require.NoError(t, err)

	stored := &entity.User{ID: "user-1", Token: "session-token"}
	fx.userRepo.EXPECT().FindByID(mock.Anything, "user-1").Return(stored, nil)

	viewer := resolveRequest(t, fx, func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: service.SessionCookieName, Value: encoded})
		req.Header.Set(HeaderXCSRFToken, "some-other-token")
	})

	assert.Nil(t, viewer)
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	encoded, err := fx.codec.Encode("user-1")
	require.NoError(t, err)

	stored := &entity.User{ID: "user-1", Token: "session-token"}
	fx.userRepo.EXPECT().FindByID(mock.Anything, "user-1").Return(stored, nil)

	viewer := resolveRequest(t, fx, func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: service.SessionCookieName, Value: encoded})
	})

	assert.Nil(t, viewer)
}

func TestAuthMiddleware_UnknownUser(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	encoded, err := fx.codec.Encode("ghost")
	require.NoError(t, err)

	fx.userRepo.EXPECT().FindByID(mock.Anything, "ghost").Return(nil, repository.ErrUserNotFound)

	viewer := resolveRequest(t, fx, func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: service.SessionCookieName, Value: encoded})
		req.Header.Set(HeaderXCSRFToken, "session-token")
	})

	assert.Nil(t, viewer)
}

func TestAuthMiddleware_ForgedCookie(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	viewer := resolveRequest(t, fx, func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: service.SessionCookieName, Value: "forged-value"})
	})

	assert.Nil(t, viewer)
}
