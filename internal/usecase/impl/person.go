package impl

import (
	domainerrors "homestay/internal/domain/errors"
	"homestay/internal/domain/service"
)

// viewerProfile is the normalized form of an OAuth person payload: exactly
// the fields the user record keeps, validated for presence.
type viewerProfile struct {
	ID       string
	Name     string
	Avatar   string
	Contact  string
	Location string
}

// The helpers below each probe one optional list of the person payload and
// report absence instead of failing, so a partially filled profile degrades
// to a single "missing" outcome in extractProfile.

func personID(p *service.Person) (string, bool) {
	if len(p.Names) == 0 {
		return "", false
	}
	meta := p.Names[0].Metadata
	if meta == nil || meta.Source == nil || meta.Source.ID == "" {
		return "", false
	}

	return meta.Source.ID, true
}

func personName(p *service.Person) (string, bool) {
	if len(p.Names) == 0 || p.Names[0].DisplayName == "" {
		return "", false
	}

	return p.Names[0].DisplayName, true
}

func personLocation(p *service.Person) (string, bool) {
	if len(p.Locations) == 0 || p.Locations[0].Value == "" {
		return "", false
	}

	return p.Locations[0].Value, true
}

func personAvatar(p *service.Person) (string, bool) {
	if len(p.Photos) == 0 || p.Photos[0].URL == "" {
		return "", false
	}

	return p.Photos[0].URL, true
}

func personEmail(p *service.Person) (string, bool) {
	if len(p.EmailAddresses) == 0 || p.EmailAddresses[0].Value == "" {
		return "", false
	}

	return p.EmailAddresses[0].Value, true
}

// extractProfile normalizes a person payload into a viewerProfile. The
// identifier, name, avatar and email are mandatory; the location hint is
// optional and carried through unvalidated.
func extractProfile(p *service.Person) (*viewerProfile, error) {
	id, ok := personID(p)
	if !ok {
		return nil, domainerrors.ErrAuthenticationFailed.WrapMessage("profile is missing a stable identifier")
	}

	name, ok := personName(p)
	if !ok {
		return nil, domainerrors.ErrAuthenticationFailed.WrapMessage("profile is missing a display name")
	}

	avatar, ok := personAvatar(p)
	if !ok {
		return nil, domainerrors.ErrAuthenticationFailed.WrapMessage("profile is missing an avatar")
	}

	contact, ok := personEmail(p)
	if !ok {
		return nil, domainerrors.ErrAuthenticationFailed.WrapMessage("profile is missing a contact email")
	}

	location, _ := personLocation(p)

	return &viewerProfile{
		ID:       id,
		Name:     name,
		Avatar:   avatar,
		Contact:  contact,
		Location: location,
	}, nil
}
