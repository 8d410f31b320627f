package authentication

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"
)

func TestTokenStorage(t *testing.T) {
	keyring.MockInit()

	_, err := GetTokens()
	assert.ErrorIs(t, err, ErrNotLoggedIn)

	creds := &StoredCredentials{
		AccessToken: "signed.jwt.token",
		Username:    "alice",
		APIURL:      "http://localhost:8080",
		ExpiresAt:   time.Now().Add(time.Hour).Unix(),
	}
	require.NoError(t, StoreTokens(creds))

	got, err := GetTokens()
	require.NoError(t, err)
	assert.Equal(t, creds, got)

	require.NoError(t, DeleteTokens())
	require.NoError(t, DeleteTokens())

	_, err = GetTokens()
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestStoredCredentials_Expired(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	assert.False(t, (&StoredCredentials{}).Expired(now))
	assert.False(t, (&StoredCredentials{ExpiresAt: now.Add(time.Minute).Unix()}).Expired(now))
	assert.True(t, (&StoredCredentials{ExpiresAt: now.Unix()}).Expired(now))
}
