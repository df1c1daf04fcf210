// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"homestay/internal/domain/entity"
	domainerrors "homestay/internal/domain/errors"
)

// ErrUserNotFound is the "no match" signal for the conditional update
// operations: the caller decides whether that means a stale cookie, a
// first-time login, or a consistency violation. It is the domain's
// not-found kind, so it maps to 404 if it ever escapes unhandled.
var ErrUserNotFound error = domainerrors.ErrUserNotFound

// UserProfilePatch carries the profile fields refreshed on every OAuth login.
type UserProfilePatch struct {
	Name    string
	Avatar  string
	Contact string
	Token   string
}

// UserRepository defines the standard operations for user persistence.
// Every mutating method must be a single atomic read-modify-write on the row
// keyed by id, returning the post-update record or ErrUserNotFound when the
// row does not exist. The application layer depends on this interface, not
// the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their stable identifier.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// Create persists a new user record with its defaults.
	Create(ctx context.Context, user *entity.User) error

	// RotateToken atomically sets a fresh session token on the user row and
	// returns the updated record.
	RotateToken(ctx context.Context, id string, token string) (*entity.User, error)

	// UpdateProfile atomically refreshes name/avatar/contact/token on the user
	// row and returns the updated record. Income, bookings and listings are
	// left untouched.
	UpdateProfile(ctx context.Context, id string, patch UserProfilePatch) (*entity.User, error)

	// SetWallet atomically sets (or clears, when walletID is nil) the payment
	// account identifier on the user row and returns the updated record.
	SetWallet(ctx context.Context, id string, walletID *string) (*entity.User, error)
}
