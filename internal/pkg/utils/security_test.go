package utils

import (
	"testing"

	"openwindows-service/internal/pkg/dto/requests"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("gardenias-1947")
	require.NoError(t, err)
	assert.NotEqual(t, "gardenias-1947", hash)

	assert.True(t, CheckPasswordHash("gardenias-1947", hash))
	assert.False(t, CheckPasswordHash("wrong-password", hash))
	assert.False(t, CheckPasswordHash("gardenias-1947", "not-a-bcrypt-hash"))
}

func TestSessionJWTRoundTrip(t *testing.T) {
	const secret = "unit-test-secret"

	t.Run("generated token carries the session id", func(t *testing.T) {
		sessionID := GenerateSessionID()
		tokenString, err := GenerateSessionJWT(sessionID, secret, 1)
		require.NoError(t, err)

		parsed, err := ParseSessionJWT(tokenString, secret)
		require.NoError(t, err)
		assert.Equal(t, sessionID, parsed)
	})

	t.Run("wrong secret is rejected", func(t *testing.T) {
		tokenString, err := GenerateSessionJWT(GenerateSessionID(), secret, 1)
		require.NoError(t, err)

		_, err = ParseSessionJWT(tokenString, "another-secret")
		assert.Error(t, err)
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		tokenString, err := GenerateSessionJWT(GenerateSessionID(), secret, -1)
		require.NoError(t, err)

		_, err = ParseSessionJWT(tokenString, secret)
		assert.Error(t, err)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		_, err := ParseSessionJWT("not.a.token", secret)
		assert.Error(t, err)
	})
}

func TestSanitizeLoginRequest(t *testing.T) {
	request := &requests.Login{Email: "  Margaret.Chen@Example.COM ", Password: "secret"}

	SanitizeLoginRequest(request)

	assert.Equal(t, "margaret.chen@example.com", request.Email)
	assert.Equal(t, "secret", request.Password)
}

func TestSanitizeSendMessageRequest(t *testing.T) {
	request := &requests.SendMessage{Text: "  hello there \n"}

	SanitizeSendMessageRequest(request)

	assert.Equal(t, "hello there", request.Text)
}
