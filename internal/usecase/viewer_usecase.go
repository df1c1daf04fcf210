// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"homestay/internal/domain/entity"
)

// --- Input DTOs ---

// SignInInput defines the data required to log a viewer in. Code carries the
// OAuth authorization code when present; ViewerID carries the identifier
// decoded from the incoming signed session cookie (empty when the request
// has no valid cookie). The two select mutually exclusive login paths.
type SignInInput struct {
	Code     string `json:"code"`
	State    string `json:"state"`
	ViewerID string `json:"-"`
}

// ConnectWalletInput defines the data required to link a payment account.
type ConnectWalletInput struct {
	Code     string `json:"code" validate:"required"`
	ViewerID string `json:"-"`
}

// DisconnectWalletInput defines the data required to unlink a payment account.
type DisconnectWalletInput struct {
	ViewerID string `json:"-"`
}

// --- Output DTOs ---

// SignInOutput returns the logged-in user, or a nil user when a cookie
// renewal found no matching record. ClearCookie tells the delivery layer to
// remove the stale session cookie; SetCookie tells it to issue a fresh one.
type SignInOutput struct {
	User        *entity.User
	SetCookie   bool
	ClearCookie bool
}

// WalletOutput returns the user after a wallet link or unlink.
type WalletOutput struct {
	User *entity.User
}

// ViewerUsecase defines the interface for viewer-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type ViewerUsecase interface {
	// SignIn performs either an OAuth login (code present) or a cookie-renewal
	// login (code absent). There is no fallback between the two paths.
	SignIn(ctx context.Context, input *SignInInput) (*SignInOutput, error)

	// ConnectWallet links a payment account identifier to the viewer's record.
	ConnectWallet(ctx context.Context, input *ConnectWalletInput) (*WalletOutput, error)

	// DisconnectWallet clears the payment account identifier on the viewer's
	// record. Idempotent: succeeds when no account was linked.
	DisconnectWallet(ctx context.Context, input *DisconnectWalletInput) (*WalletOutput, error)
}
