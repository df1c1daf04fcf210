package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	domainerrors "homestay/internal/domain/errors"
	"homestay/internal/domain/repository"
	"homestay/internal/domain/service"
	mockRepo "homestay/internal/mocks/repository"
	mockSvc "homestay/internal/mocks/service"
	"homestay/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"homestay/internal/domain/entity"
)

// viewerServiceFixtures holds all test dependencies for viewer service tests.
type viewerServiceFixtures struct {
	service  usecase.ViewerUsecase
	userRepo *mockRepo.MockUserRepository
	oauth    *mockSvc.MockOAuthService
	payments *mockSvc.MockPaymentService
	metrics  *mockSvc.MockMetricsRecorder
}

func createTestViewerService(t *testing.T) viewerServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	oauth := mockSvc.NewMockOAuthService(t)
	payments := mockSvc.NewMockPaymentService(t)
	metrics := mockSvc.NewMockMetricsRecorder(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewViewerService(ViewerServiceParams{
		UserRepo: userRepo,
		OAuth:    oauth,
		Payments: payments,
		Metrics:  metrics,
		Logger:   logger,
	})

	return viewerServiceFixtures{
		service:  service,
		userRepo: userRepo,
		oauth:    oauth,
		payments: payments,
		metrics:  metrics,
	}
}

func fullPerson() *service.Person {
	return &service.Person{
		Names: []service.PersonName{{
			DisplayName: "Test User",
			Metadata:    &service.FieldMetadata{Source: &service.FieldSource{ID: "provider-id-1"}},
		}},
		Locations:      []service.PersonLocation{{Value: "Toronto"}},
		Photos:         []service.PersonPhoto{{URL: "https://example.com/avatar.png"}},
		EmailAddresses: []service.PersonEmail{{Value: "test@example.com"}},
	}
}

func TestViewerService_SignIn_CookieRenewal_Success(t *testing.T) {
	fx := createTestViewerService(t)
	ctx := context.Background()

	stored := &entity.User{ID: "user-1", Token: "rotated"}
	fx.userRepo.EXPECT().
		RotateToken(ctx, "user-1", mock.AnythingOfType("string")).
		Return(stored, nil)
	fx.metrics.EXPECT().RecordSignIn("cookie").Return()

	output, err := fx.service.SignIn(ctx, &usecase.SignInInput{ViewerID: "user-1"})

	require.NoError(t, err)
	require.NotNil(t, output.User)
	assert.Equal(t, "user-1", output.User.ID)
	assert.False(t, output.SetCookie)
	assert.False(t, output.ClearCookie)
}

func TestViewerService_SignIn_CookieRenewal_StaleCookie(t *testing.T) {
	fx := createTestViewerService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().
		RotateToken(ctx, "ghost", mock.AnythingOfType("string")).
		Return(nil, repository.ErrUserNotFound)
	fx.metrics.EXPECT().RecordSignInFailure("stale_cookie").Return()

	output, err := fx.service.SignIn(ctx, &usecase.SignInInput{ViewerID: "ghost"})

	// A stale cookie is not an error: the login resolves to no viewer, the
	// cookie is cleared and no new one is set.
	require.NoError(t, err)
	assert.Nil(t, output.User)
	assert.True(t, output.ClearCookie)
	assert.False(t, output.SetCookie)
}

func TestViewerService_SignIn_OAuth_MissingEmail(t *testing.T) {
	fx := createTestViewerService(t)
	ctx := context.Background()

	person := fullPerson()
	person.EmailAddresses = nil

	fx.oauth.EXPECT().ExchangeCodeForToken(ctx, "auth-code").Return("access-token", nil)
	fx.oauth.EXPECT().FetchPerson(ctx, "access-token").Return(person, nil)
	fx.metrics.EXPECT().RecordSignInFailure("profile").Return()

	output, err := fx.service.SignIn(ctx, &usecase.SignInInput{Code: "auth-code"})

	// No store write may happen: the user repository mock would fail the test
	// on any unexpected call.
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAuthenticationFailed))
	assert.Nil(t, output)
}

func TestViewerService_SignIn_OAuth_FirstLogin(t *testing.T) {
	fx := createTestViewerService(t)
	ctx := context.Background()

	stored := &entity.User{
		ID:       "provider-id-1",
		Token:    "fresh",
		Name:     "Test User",
		Avatar:   "https://example.com/avatar.png",
		Contact:  "test@example.com",
		Income:   0,
		Bookings: []string{},
		Listings: []string{},
	}

	fx.oauth.EXPECT().ExchangeCodeForToken(ctx, "auth-code").Return("access-token", nil)
	fx.oauth.EXPECT().FetchPerson(ctx, "access-token").Return(fullPerson(), nil)

	fx.userRepo.EXPECT().
		UpdateProfile(ctx, "provider-id-1", mock.AnythingOfType("repository.UserProfilePatch")).
		Return(nil, repository.ErrUserNotFound)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			assert.Equal(t, "provider-id-1", user.ID)
			assert.Equal(t, "Test User", user.Name)
			assert.Equal(t, "https://example.com/avatar.png", user.Avatar)
			assert.Equal(t, "test@example.com", user.Contact)
			assert.Zero(t, user.Income)
			assert.Empty(t, user.Bookings)
			assert.Empty(t, user.Listings)
			assert.NotEmpty(t, user.Token)
		}).
		Return(nil)
	fx.userRepo.EXPECT().FindByID(ctx, "provider-id-1").Return(stored, nil)
	fx.metrics.EXPECT().RecordSignIn("oauth").Return()

	output, err := fx.service.SignIn(ctx, &usecase.SignInInput{Code: "auth-code"})

	require.NoError(t, err)
	require.NotNil(t, output.User)
	assert.Equal(t, "provider-id-1", output.User.ID)
	assert.True(t, output.SetCookie)
	assert.False(t, output.ClearCookie)
}

func TestViewerService_SignIn_OAuth_ExistingUser(t *testing.T) {
	fx := createTestViewerService(t)
	ctx := context.Background()

	stored := &entity.User{
		ID:       "provider-id-1",
		Name:     "Test User",
		Income:   4200,
		Bookings: []string{"booking-1"},
		Listings: []string{"listing-1"},
	}

	fx.oauth.EXPECT().ExchangeCodeForToken(ctx, "auth-code").Return("access-token", nil)
	fx.oauth.EXPECT().FetchPerson(ctx, "access-token").Return(fullPerson(), nil)
	fx.userRepo.EXPECT().
		UpdateProfile(ctx, "provider-id-1", mock.AnythingOfType("repository.UserProfilePatch")).
		Run(func(ctx context.Context, id string, patch repository.UserProfilePatch) {
			// Only profile fields are refreshed on a repeat login.
			assert.Equal(t, "Test User", patch.Name)
			assert.Equal(t, "https://example.com/avatar.png", patch.Avatar)
			assert.Equal(t, "test@example.com", patch.Contact)
			assert.NotEmpty(t, patch.Token)
		}).
		Return(stored, nil)
	fx.metrics.EXPECT().RecordSignIn("oauth").Return()

	output, err := fx.service.SignIn(ctx, &usecase.SignInInput{Code: "auth-code"})

	require.NoError(t, err)
	assert.Equal(t, int64(4200), output.User.Income)
	assert.Equal(t, []string{"booking-1"}, output.User.Bookings)
	assert.True(t, output.SetCookie)
}

func TestViewerService_SignIn_OAuth_ExchangeFails(t *testing.T) {
	fx := createTestViewerService(t)
	ctx := context.Background()

	fx.oauth.EXPECT().
		ExchangeCodeForToken(ctx, "bad-code").
		Return("", errors.New("exchange refused"))
	fx.metrics.EXPECT().RecordSignInFailure("exchange").Return()

	output, err := fx.service.SignIn(ctx, &usecase.SignInInput{Code: "bad-code"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAuthenticationFailed))
	assert.Nil(t, output)
}

func TestViewerService_ConnectWallet_NoViewer(t *testing.T) {
	fx := createTestViewerService(t)
	ctx := context.Background()

	output, err := fx.service.ConnectWallet(ctx, &usecase.ConnectWalletInput{Code: "stripe-code"})

	// The authorization check precedes any external exchange: the payment
	// service mock would fail the test on any call.
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAuthorizationFailed))
	assert.Nil(t, output)
}

func TestViewerService_ConnectWallet_Success(t *testing.T) {
	fx := createTestViewerService(t)
	ctx := context.Background()

	accountID := "acct_1"
	stored := &entity.User{ID: "user-1", WalletID: &accountID}

	fx.payments.EXPECT().Connect(ctx, "stripe-code").Return(accountID, nil)
	fx.userRepo.EXPECT().
		SetWallet(ctx, "user-1", mock.AnythingOfType("*string")).
		Run(func(ctx context.Context, id string, walletID *string) {
			require.NotNil(t, walletID)
			assert.Equal(t, accountID, *walletID)
		}).
		Return(stored, nil)
	fx.metrics.EXPECT().RecordWalletLink().Return()

	output, err := fx.service.ConnectWallet(ctx, &usecase.ConnectWalletInput{
		Code:     "stripe-code",
		ViewerID: "user-1",
	})

	require.NoError(t, err)
	require.NotNil(t, output.User.WalletID)
	assert.Equal(t, accountID, *output.User.WalletID)
}

func TestViewerService_ConnectWallet_ExchangeFails(t *testing.T) {
	fx := createTestViewerService(t)
	ctx := context.Background()

	fx.payments.EXPECT().
		Connect(ctx, "stripe-code").
		Return("", errors.New("stripe said no"))

	output, err := fx.service.ConnectWallet(ctx, &usecase.ConnectWalletInput{
		Code:     "stripe-code",
		ViewerID: "user-1",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPaymentProcessorFailed))
	assert.Nil(t, output)
}

func TestViewerService_ConnectWallet_UpdateMatchesNothing(t *testing.T) {
	fx := createTestViewerService(t)
	ctx := context.Background()

	fx.payments.EXPECT().Connect(ctx, "stripe-code").Return("acct_1", nil)
	fx.userRepo.EXPECT().
		SetWallet(ctx, "user-1", mock.AnythingOfType("*string")).
		Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.ConnectWallet(ctx, &usecase.ConnectWalletInput{
		Code:     "stripe-code",
		ViewerID: "user-1",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrStateConsistency))
	assert.Nil(t, output)
}

func TestViewerService_DisconnectWallet_NoViewer(t *testing.T) {
	fx := createTestViewerService(t)
	ctx := context.Background()

	output, err := fx.service.DisconnectWallet(ctx, &usecase.DisconnectWalletInput{})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAuthorizationFailed))
	assert.Nil(t, output)
}

func TestViewerService_DisconnectWallet_AlreadyUnlinked(t *testing.T) {
	fx := createTestViewerService(t)
	ctx := context.Background()

	stored := &entity.User{ID: "user-1", WalletID: nil}

	fx.userRepo.EXPECT().SetWallet(ctx, "user-1", (*string)(nil)).Return(stored, nil)
	fx.metrics.EXPECT().RecordWalletUnlink().Return()

	output, err := fx.service.DisconnectWallet(ctx, &usecase.DisconnectWalletInput{ViewerID: "user-1"})

	// Unlinking with nothing linked still succeeds and leaves the field null.
	require.NoError(t, err)
	assert.Nil(t, output.User.WalletID)
}
