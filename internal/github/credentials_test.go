package github

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvToken(t *testing.T) {
	t.Setenv("RH_TEST_EMPTY", "")
	t.Setenv("RH_TEST_TOKEN", " secret \n")

	token, err := EnvToken{"RH_TEST_EMPTY", "RH_TEST_TOKEN"}.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "secret", token)

	_, err = EnvToken{"RH_TEST_EMPTY"}.Token(context.Background())
	assert.ErrorIs(t, err, ErrNoCredentials)
}

func TestStaticToken(t *testing.T) {
	token, err := StaticToken("abc").Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "abc", token)

	_, err = StaticToken("  ").Token(context.Background())
	assert.ErrorIs(t, err, ErrNoCredentials)
}

func TestGhCLIToken(t *testing.T) {
	// echo stands in for gh and prints its arguments
	token, err := GhCLIToken{Path: "echo"}.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "auth token", token)

	_, err = GhCLIToken{Path: "/nonexistent/gh"}.Token(context.Background())
	assert.ErrorIs(t, err, ErrNoCredentials)
}

type failingProvider struct{}

func (failingProvider) Token(context.Context) (string, error) {
	return "", errors.New("keychain locked")
}

func TestChain(t *testing.T) {
	ctx := context.Background()

	token, err := Chain{StaticToken(""), StaticToken("second")}.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "second", token)

	_, err = Chain{StaticToken("")}.Token(ctx)
	assert.ErrorIs(t, err, ErrNoCredentials)

	_, err = Chain{StaticToken(""), failingProvider{}, StaticToken("never")}.Token(ctx)
	assert.EqualError(t, err, "keychain locked")
}

func TestNewClient_ProviderFailure(t *testing.T) {
	_, err := NewClient(context.Background(), failingProvider{}, Options{Owner: "o", Repo: "r"})
	assert.EqualError(t, err, "loading GitHub token: keychain locked")
}
