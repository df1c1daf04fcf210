package service

import "context"

// Person represents the raw profile payload returned by the OAuth provider's
// people endpoint. Every list is optional: an absent or empty list is normal
// and must be tolerated by callers.
type Person struct {
	Names          []PersonName     `json:"names,omitempty"`
	Locations      []PersonLocation `json:"locations,omitempty"`
	Photos         []PersonPhoto    `json:"photos,omitempty"`
	EmailAddresses []PersonEmail    `json:"emailAddresses,omitempty"`
}

// PersonName carries a display name plus the provider-scoped stable
// identifier nested under the entry's metadata.
type PersonName struct {
	DisplayName string         `json:"displayName,omitempty"`
	Metadata    *FieldMetadata `json:"metadata,omitempty"`
}

// FieldMetadata wraps the source descriptor of a profile field.
type FieldMetadata struct {
	Source *FieldSource `json:"source,omitempty"`
}

// FieldSource identifies where a profile field came from; ID is the
// provider's stable identifier for the profile owner.
type FieldSource struct {
	ID string `json:"id,omitempty"`
}

// PersonLocation is a location hint on the profile.
type PersonLocation struct {
	Value string `json:"value,omitempty"`
}

// PersonPhoto is a profile photo entry.
type PersonPhoto struct {
	URL string `json:"url,omitempty"`
}

// PersonEmail is a contact email entry.
type PersonEmail struct {
	Value string `json:"value,omitempty"`
}

// OAuthService defines the interface for the login provider's OAuth flow.
type OAuthService interface {
	// BuildAuthorizationURL constructs the provider's authorization URL with a
	// server-stored state parameter for CSRF protection.
	BuildAuthorizationURL() string

	// ValidateState validates and consumes a state parameter previously issued
	// by BuildAuthorizationURL.
	ValidateState(state string) bool

	// ExchangeCodeForToken exchanges an authorization code for an access token.
	ExchangeCodeForToken(ctx context.Context, code string) (string, error)

	// FetchPerson retrieves the profile of the access token's owner. A nil
	// person without an error never occurs; absence of the profile is an error.
	FetchPerson(ctx context.Context, accessToken string) (*Person, error)
}
