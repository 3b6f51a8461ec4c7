package user

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	tm := NewTokenManager([]byte("secret"), time.Hour)

	token, claims, err := tm.Generate("u-1")
	require.NoError(t, err)

	parsed, err := tm.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", parsed.UserID)
	assert.Equal(t, "u-1", parsed.Subject)
	assert.Equal(t, claims.ID, parsed.ID)
}

func TestTokenManager_UniqueSessionIDs(t *testing.T) {
	tm := NewTokenManager([]byte("secret"), time.Hour)

	_, first, err := tm.Generate("u-1")
	require.NoError(t, err)
	_, second, err := tm.Generate("u-1")
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestTokenManager_RejectsOtherSecret(t *testing.T) {
	token, _, err := NewTokenManager([]byte("secret"), time.Hour).Generate("u-1")
	require.NoError(t, err)

	_, err = NewTokenManager([]byte("other"), time.Hour).Parse(token)
	assert.Error(t, err)
}

func TestTokenManager_RejectsExpired(t *testing.T) {
	tm := NewTokenManager([]byte("secret"), time.Minute)
	tm.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, _, err := tm.Generate("u-1")
	require.NoError(t, err)

	tm.now = time.Now
	_, err = tm.Parse(token)
	assert.Error(t, err)
}

func TestTokenManager_RejectsMissingClaims(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = NewTokenManager([]byte("secret"), time.Hour).Parse(signed)
	assert.Error(t, err)
}

func TestTokenManager_RejectsEmpty(t *testing.T) {
	_, err := NewTokenManager([]byte("secret"), time.Hour).Parse("")
	assert.Error(t, err)
}
