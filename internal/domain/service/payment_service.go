package service

import "context"

// PaymentService defines the interface for the payment processor's connected
// account flow. Only the code exchange is remote: disconnecting a wallet is a
// local state change and performs no remote deauthorization.
type PaymentService interface {
	// Connect exchanges an authorization code for a connected-account
	// identifier. An empty identifier without an error never occurs.
	Connect(ctx context.Context, code string) (string, error)
}
