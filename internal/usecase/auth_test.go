package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticAuthenticator(t *testing.T) {
	auth := NewStaticAuthenticator("admin", "s3cret")
	ctx := context.Background()

	token, err := auth.Authenticate(ctx, Credentials{Username: "admin", Password: "s3cret"})
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	other, err := auth.Authenticate(ctx, Credentials{Username: "admin", Password: "s3cret"})
	require.NoError(t, err)
	assert.NotEqual(t, token, other, "each login gets a fresh token")

	_, err = auth.Authenticate(ctx, Credentials{Username: "admin", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = auth.Authenticate(ctx, Credentials{Username: "root", Password: "s3cret"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestStaticAuthenticatorWithoutConfiguredCredentials(t *testing.T) {
	auth := NewStaticAuthenticator("", "")

	_, err := auth.Authenticate(context.Background(), Credentials{})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
