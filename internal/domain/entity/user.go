// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is the persisted account record of the rental platform. Its primary
// key is the provider-scoped stable identifier extracted from the OAuth
// profile and is immutable once the record exists.
type User struct {
	ID        string    // Provider-scoped stable identifier, assigned on first OAuth login.
	Token     string    // Opaque session token, rotated on every successful login. Rotation implicitly invalidates prior sessions.
	Name      string    // The user's display name taken from the OAuth profile.
	Avatar    string    // Avatar image URL taken from the OAuth profile.
	Contact   string    // Contact email taken from the OAuth profile.
	WalletID  *string   // Stripe connected-account identifier. Nil until the viewer links a payment account.
	Income    int64     // Accumulated income counter in the smallest currency unit.
	Bookings  []string  // References to bookings made by this user.
	Listings  []string  // References to listings hosted by this user.
	CreatedAt time.Time // Timestamp of when this user account was created.
	UpdatedAt time.Time // Timestamp of the last modification to this user's data.
}
