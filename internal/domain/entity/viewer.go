package entity

// Viewer is the transient, per-response representation of the currently
// authenticated (or anonymous) user. It is recomputed for every response and
// never persisted.
type Viewer struct {
	ID         string  `json:"id,omitempty"`
	Token      string  `json:"token,omitempty"`
	Avatar     string  `json:"avatar,omitempty"`
	WalletID   *string `json:"walletId,omitempty"`
	DidRequest bool    `json:"didRequest"`

	// HasWallet is true when a payment account is linked and absent otherwise.
	// It is deliberately never false: clients distinguish "unlinked" by the
	// missing field, matching the historical API contract.
	HasWallet *bool `json:"hasWallet,omitempty"`
}

// NewViewer projects a stored user into its public response shape. A nil user
// yields an anonymous viewer carrying only the DidRequest acknowledgement.
func NewViewer(user *User) *Viewer {
	viewer := &Viewer{DidRequest: true}
	if user == nil {
		return viewer
	}

	viewer.ID = user.ID
	viewer.Token = user.Token
	viewer.Avatar = user.Avatar
	viewer.WalletID = user.WalletID
	if user.WalletID != nil {
		hasWallet := true
		viewer.HasWallet = &hasWallet
	}

	return viewer
}
