package service

// MetricsRecorder collects business-level counters from the use cases.
type MetricsRecorder interface {
	// RecordSignIn counts a successful login by method ("cookie" or "oauth").
	RecordSignIn(method string)

	// RecordSignInFailure counts a failed login by reason.
	RecordSignInFailure(reason string)

	// RecordWalletLink counts a successful payment account connection.
	RecordWalletLink()

	// RecordWalletUnlink counts a successful payment account disconnection.
	RecordWalletUnlink()
}
