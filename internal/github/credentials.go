package github

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"
)

// ErrNoCredentials means a provider has no token to offer
var ErrNoCredentials = errors.New("no GitHub token found")

// CredentialProvider yields a GitHub token
type CredentialProvider interface {
	Token(ctx context.Context) (string, error)
}

// EnvToken reads the first non-empty environment variable
type EnvToken []string

// DefaultEnvToken checks GITHUB_TOKEN then GH_TOKEN
var DefaultEnvToken = EnvToken{"GITHUB_TOKEN", "GH_TOKEN"}

func (e EnvToken) Token(context.Context) (string, error) {
	for _, name := range e {
		if v := strings.TrimSpace(os.Getenv(name)); v != "" {
			return v, nil
		}
	}
	return "", ErrNoCredentials
}

// StaticToken is a token stored in the config file
type StaticToken string

func (s StaticToken) Token(context.Context) (string, error) {
	if t := strings.TrimSpace(string(s)); t != "" {
		return t, nil
	}
	return "", ErrNoCredentials
}

// GhCLIToken asks the GitHub CLI for the token of the logged in user
type GhCLIToken struct {
	// Path of the gh binary, "gh" when empty
	Path string
}

func (g GhCLIToken) Token(ctx context.Context) (string, error) {
	path := g.Path
	if path == "" {
		path = "gh"
	}

	out, err := exec.CommandContext(ctx, path, "auth", "token").Output()
	if err != nil {
		// gh missing or not logged in
		return "", ErrNoCredentials
	}

	token := strings.TrimSpace(string(out))
	if token == "" {
		return "", ErrNoCredentials
	}
	return token, nil
}

// Chain returns the token of the first provider that has one
type Chain []CredentialProvider

func (c Chain) Token(ctx context.Context) (string, error) {
	for _, p := range c {
		token, err := p.Token(ctx)
		if errors.Is(err, ErrNoCredentials) {
			continue
		}
		if err != nil {
			return "", err
		}
		return token, nil
	}
	return "", ErrNoCredentials
}
