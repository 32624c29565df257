package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	token, err := CreateSessionToken("secret", time.Hour)
	require.NoError(t, err)

	claims, err := ParseSessionToken(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "volunteer", claims.Role)
	assert.Equal(t, "checkin", claims.Issuer)
}

func TestSessionTokenWrongSecret(t *testing.T) {
	token, err := CreateSessionToken("secret", time.Hour)
	require.NoError(t, err)

	_, err = ParseSessionToken(token, "other")
	assert.Error(t, err)
}

func TestSessionTokenExpired(t *testing.T) {
	token, err := CreateSessionToken("secret", -time.Minute)
	require.NoError(t, err)

	_, err = ParseSessionToken(token, "secret")
	assert.Error(t, err)
}
