// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"

	deliverycontext "homestay/internal/delivery/context"
	"homestay/internal/domain/entity"
	domainerrors "homestay/internal/domain/errors"
	"homestay/internal/domain/repository"
	"homestay/internal/domain/service"
	"homestay/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Sign-in methods reported to the metrics recorder.
const (
	signInMethodCookie = "cookie"
	signInMethodOAuth  = "oauth"
)

// viewerService implements the ViewerUsecase interface.
type viewerService struct {
	userRepo repository.UserRepository
	oauth    service.OAuthService
	payments service.PaymentService
	metrics  service.MetricsRecorder
	logger   *slog.Logger
}

// ViewerServiceParams holds dependencies for viewerService, injected by Fx.
type ViewerServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	OAuth    service.OAuthService
	Payments service.PaymentService
	Metrics  service.MetricsRecorder
	Logger   *slog.Logger
}

// NewViewerService is the constructor for viewerService. It receives all dependencies as interfaces.
func NewViewerService(params ViewerServiceParams) usecase.ViewerUsecase {
	return &viewerService{
		userRepo: params.UserRepo,
		oauth:    params.OAuth,
		payments: params.Payments,
		metrics:  params.Metrics,
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *viewerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignIn performs either an OAuth login or a cookie-renewal login. The two
// paths are mutually exclusive: a present authorization code always selects
// OAuth, and a renewal never falls back to OAuth.
func (srv *viewerService) SignIn(ctx context.Context, input *usecase.SignInInput) (*usecase.SignInOutput, error) {
	if input.Code != "" {
		return srv.signInWithOAuth(ctx, input.Code)
	}

	return srv.renewSession(ctx, input.ViewerID)
}

// renewSession handles the cookie-based login path: it rotates the session
// token on the record the cookie points at. A missing record means the cookie
// is stale or forged; this is the only login outcome that clears the cookie.
func (srv *viewerService) renewSession(ctx context.Context, viewerID string) (*usecase.SignInOutput, error) {
	srv.log(ctx).Debug("Renewing session from cookie", slog.String("viewerID", viewerID))

	user, err := srv.userRepo.RotateToken(ctx, viewerID, newSessionToken())
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.log(ctx).Info("Session cookie matched no user, clearing it", slog.String("viewerID", viewerID))
		srv.metrics.RecordSignInFailure("stale_cookie")

		return &usecase.SignInOutput{ClearCookie: true}, nil
	}
	if err != nil {
		srv.log(ctx).Error("Failed to rotate session token", slog.String("viewerID", viewerID), slog.Any("error", err))
		srv.metrics.RecordSignInFailure("store")

		return nil, errors.Wrap(domainerrors.ErrAuthenticationFailed, "failed to renew session")
	}

	srv.metrics.RecordSignIn(signInMethodCookie)

	return &usecase.SignInOutput{User: user}, nil
}

// signInWithOAuth handles the OAuth login path: exchange the code, normalize
// the profile, upsert the user record, and ask the delivery layer to set the
// long-lived session cookie.
func (srv *viewerService) signInWithOAuth(ctx context.Context, code string) (*usecase.SignInOutput, error) {
	srv.log(ctx).Debug("Starting OAuth login")

	accessToken, err := srv.oauth.ExchangeCodeForToken(ctx, code)
	if err != nil {
		srv.log(ctx).Warn("OAuth code exchange failed", slog.Any("error", err))
		srv.metrics.RecordSignInFailure("exchange")

		return nil, errors.Wrap(domainerrors.ErrAuthenticationFailed, "failed to exchange authorization code")
	}

	person, err := srv.oauth.FetchPerson(ctx, accessToken)
	if err != nil || person == nil {
		srv.log(ctx).Warn("OAuth profile fetch failed", slog.Any("error", err))
		srv.metrics.RecordSignInFailure("profile")

		return nil, errors.Wrap(domainerrors.ErrAuthenticationFailed, "failed to fetch user profile")
	}

	profile, err := extractProfile(person)
	if err != nil {
		srv.log(ctx).Warn("OAuth profile incomplete", slog.Any("error", err))
		srv.metrics.RecordSignInFailure("profile")

		return nil, err
	}

	user, err := srv.upsertUser(ctx, profile, newSessionToken())
	if err != nil {
		srv.metrics.RecordSignInFailure("store")

		return nil, err
	}

	srv.log(ctx).Debug("OAuth login completed", slog.String("userID", user.ID))
	srv.metrics.RecordSignIn(signInMethodOAuth)

	return &usecase.SignInOutput{User: user, SetCookie: true}, nil
}

// upsertUser refreshes the profile fields on the record keyed by the
// provider identifier, inserting a defaulted record on first login. The
// insert path re-fetches by id so callers always see the canonical stored
// shape.
func (srv *viewerService) upsertUser(ctx context.Context, profile *viewerProfile, token string) (*entity.User, error) {
	user, err := srv.userRepo.UpdateProfile(ctx, profile.ID, repository.UserProfilePatch{
		Name:    profile.Name,
		Avatar:  profile.Avatar,
		Contact: profile.Contact,
		Token:   token,
	})
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		srv.log(ctx).Error("Failed to update user on login", slog.String("userID", profile.ID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrAuthenticationFailed, "failed to update user record")
	}

	srv.log(ctx).Info("First login, creating user", slog.String("userID", profile.ID))

	newUser := &entity.User{
		ID:       profile.ID,
		Token:    token,
		Name:     profile.Name,
		Avatar:   profile.Avatar,
		Contact:  profile.Contact,
		Income:   0,
		Bookings: []string{},
		Listings: []string{},
	}
	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		srv.log(ctx).Error("Failed to create user on first login", slog.String("userID", profile.ID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrAuthenticationFailed, "failed to create user record")
	}

	created, err := srv.userRepo.FindByID(ctx, profile.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to re-fetch created user", slog.String("userID", profile.ID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrAuthenticationFailed, "failed to load created user record")
	}

	return created, nil
}

// ConnectWallet links a payment account to the viewer's record. The
// authorization check runs before any external exchange.
func (srv *viewerService) ConnectWallet(ctx context.Context, input *usecase.ConnectWalletInput) (*usecase.WalletOutput, error) {
	if input.ViewerID == "" {
		return nil, errors.Wrap(domainerrors.ErrAuthorizationFailed, "viewer cannot be found")
	}

	srv.log(ctx).Debug("Connecting payment account", slog.String("viewerID", input.ViewerID))

	accountID, err := srv.payments.Connect(ctx, input.Code)
	if err != nil {
		srv.log(ctx).Warn("Payment code exchange failed", slog.String("viewerID", input.ViewerID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPaymentProcessorFailed, "failed to connect payment account")
	}

	user, err := srv.userRepo.SetWallet(ctx, input.ViewerID, &accountID)
	if err != nil {
		srv.log(ctx).Error("Failed to store wallet id", slog.String("viewerID", input.ViewerID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrStateConsistency, "viewer could not be updated")
	}

	srv.log(ctx).Info("Payment account connected", slog.String("viewerID", input.ViewerID))
	srv.metrics.RecordWalletLink()

	return &usecase.WalletOutput{User: user}, nil
}

// DisconnectWallet clears the payment account identifier on the viewer's
// record. No remote deauthorization is performed; the processor still
// considers the account connected on its side.
func (srv *viewerService) DisconnectWallet(ctx context.Context, input *usecase.DisconnectWalletInput) (*usecase.WalletOutput, error) {
	if input.ViewerID == "" {
		return nil, errors.Wrap(domainerrors.ErrAuthorizationFailed, "viewer cannot be found")
	}

	srv.log(ctx).Debug("Disconnecting payment account", slog.String("viewerID", input.ViewerID))

	user, err := srv.userRepo.SetWallet(ctx, input.ViewerID, nil)
	if err != nil {
		srv.log(ctx).Error("Failed to clear wallet id", slog.String("viewerID", input.ViewerID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrStateConsistency, "viewer could not be updated")
	}

	srv.log(ctx).Info("Payment account disconnected", slog.String("viewerID", input.ViewerID))
	srv.metrics.RecordWalletUnlink()

	return &usecase.WalletOutput{User: user}, nil
}

// newSessionToken generates a cryptographically random opaque session token.
func newSessionToken() string {
	bytes := make([]byte, 32)
	rand.Read(bytes)

	return hex.EncodeToString(bytes)
}
