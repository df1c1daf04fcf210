// Package stripe provides the Stripe Connect implementation of the payment service.
package stripe

import (
	"context"

	"github.com/pkg/errors"
	stripe "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/oauth"

	"homestay/config"
	"homestay/internal/domain/service"
)

// paymentService exchanges Stripe Connect authorization codes through the
// Stripe OAuth endpoint.
type paymentService struct {
	clientID string
}

// NewPaymentService is the constructor for paymentService. It sets the
// package-level API key the Stripe client reads on every call.
func NewPaymentService(cfg *config.Config) (service.PaymentService, error) {
	if cfg.Stripe == nil || cfg.Stripe.SecretKey == "" {
		return nil, errors.New("stripe secret key must be provided")
	}

	stripe.Key = cfg.Stripe.SecretKey

	return &paymentService{clientID: cfg.Stripe.ClientID}, nil
}

// Connect exchanges an authorization code for the connected account id.
func (s *paymentService) Connect(ctx context.Context, code string) (string, error) {
	params := &stripe.OAuthTokenParams{
		ClientID:  stripe.String(s.clientID),
		Code:      stripe.String(code),
		GrantType: stripe.String("authorization_code"),
	}
	params.Context = ctx

	token, err := oauth.New(params)
	if err != nil {
		return "", errors.Wrap(err, "failed to exchange stripe authorization code")
	}
	if token.StripeUserID == "" {
		return "", errors.New("stripe token response carried no account id")
	}

	return token.StripeUserID, nil
}
