package session

import (
	"net/http"
	"testing"
	"time"

	"homestay/config"
	"homestay/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCodec(t *testing.T, insecureDev bool) service.SessionCodec {
	cfg := &config.Config{}
	cfg.Session = &config.SessionConfig{
		Secret:      "test_session_secret_key_very_long_for_testing",
		InsecureDev: insecureDev,
	}

	codec, err := NewJWTCodec(cfg)
	require.NoError(t, err)

	return codec
}

func TestJWTCodec_EncodeDecode(t *testing.T) {
	codec := newTestCodec(t, false)

	value, err := codec.Encode("user-1")
	require.NoError(t, err)
	assert.NotEmpty(t, value)

	userID, err := codec.Decode(value)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestJWTCodec_DecodeInvalidValue(t *testing.T) {
	codec := newTestCodec(t, false)

	_, err := codec.Decode("clearly-not-a-signed-value")
	assert.Error(t, err)
}

func TestJWTCodec_DecodeForeignSignature(t *testing.T) {
	codec := newTestCodec(t, false)

	otherCfg := &config.Config{}
	otherCfg.Session = &config.SessionConfig{Secret: "a_completely_different_secret_key"}
	other, err := NewJWTCodec(otherCfg)
	require.NoError(t, err)

	value, err := other.Encode("user-1")
	require.NoError(t, err)

	_, err = codec.Decode(value)
	assert.Error(t, err)
}

func TestJWTCodec_EmptySecret(t *testing.T) {
	cfg := &config.Config{}
	cfg.Session = &config.SessionConfig{Secret: ""}

	codec, err := NewJWTCodec(cfg)
	assert.Error(t, err)
	assert.Nil(t, codec)
	assert.Contains(t, err.Error(), "session secret must be provided")
}

func TestJWTCodec_CookieAttributes(t *testing.T) {
	codec := newTestCodec(t, false)

	cookie := codec.Cookie("signed-value", SessionTTL)
	assert.Equal(t, service.SessionCookieName, cookie.Name)
	assert.Equal(t, "signed-value", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.Equal(t, int((365 * 24 * time.Hour).Seconds()), cookie.MaxAge)
}

func TestJWTCodec_CookieInsecureDev(t *testing.T) {
	codec := newTestCodec(t, true)

	cookie := codec.Cookie("signed-value", 0)
	assert.False(t, cookie.Secure)
	// A zero lifetime yields a session-scoped cookie.
	assert.Zero(t, cookie.MaxAge)
}

func TestJWTCodec_Clear(t *testing.T) {
	codec := newTestCodec(t, false)

	cookie := codec.Clear()
	assert.Equal(t, service.SessionCookieName, cookie.Name)
	assert.Empty(t, cookie.Value)
	assert.Equal(t, -1, cookie.MaxAge)
}
