package google

import (
	"net/url"
	"strings"
	"testing"

	"homestay/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.GoogleOAuth = &config.GoogleOAuthConfig{
		ClientID:     "test_client_id",
		ClientSecret: "test_secret",
		RedirectURI:  "http://localhost:8080/callback",
		Scopes:       "openid email profile",
	}

	return cfg
}

func TestOAuthService_BuildAuthorizationURL(t *testing.T) {
	service := NewOAuthService(testConfig())

	result := service.BuildAuthorizationURL()

	require.True(t, strings.HasPrefix(result, googleOAuthURL+"?"))

	parsed, err := url.Parse(result)
	require.NoError(t, err)

	query := parsed.Query()
	assert.Equal(t, "test_client_id", query.Get("client_id"))
	assert.Equal(t, "http://localhost:8080/callback", query.Get("redirect_uri"))
	assert.Equal(t, "openid email profile", query.Get("scope"))
	assert.Equal(t, "code", query.Get("response_type"))
	assert.NotEmpty(t, query.Get("state"))
}

func TestOAuthService_ValidateState(t *testing.T) {
	service := NewOAuthService(testConfig())

	result := service.BuildAuthorizationURL()
	parsed, err := url.Parse(result)
	require.NoError(t, err)
	state := parsed.Query().Get("state")

	assert.True(t, service.ValidateState(state))

	// A state is single use: the second validation must fail.
	assert.False(t, service.ValidateState(state))
}

func TestOAuthService_ValidateState_Unknown(t *testing.T) {
	service := NewOAuthService(testConfig())

	assert.False(t, service.ValidateState("never-issued"))
}
