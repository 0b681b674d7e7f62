package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom_MissingFileWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "release-helper.toml")

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	again, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestLoadFrom_PartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "release-helper.toml")
	content := `
[defaults]
branch = "main"

[github]
token = "ghp_secret"
per_page = 50
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, "dotnet", cfg.Defaults.Owner)
	assert.Equal(t, "dotnet-docker", cfg.Defaults.Repo)
	assert.Equal(t, "main", cfg.Defaults.Branch)
	assert.Equal(t, 2, cfg.Defaults.LookbackMonths)
	assert.Equal(t, "ghp_secret", cfg.GitHub.Token)
	assert.Equal(t, 50, cfg.GitHub.PerPage)
	assert.Equal(t, "https://github.com", cfg.GitHub.WebURL)
}

func TestLoadFrom_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"bad toml", "[defaults\nowner=", "parsing"},
		{"empty owner", "[defaults]\nowner = \"\"", "defaults.owner must not be empty"},
		{"zero lookback", "[defaults]\nlookback_months = 0", "defaults.lookback_months must be at least 1, got 0"},
		{"page too large", "[github]\nper_page = 500", "github.per_page must be between 1 and 100, got 500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "release-helper.toml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0600))

			_, err := LoadFrom(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSince(t *testing.T) {
	now := time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC)
	cfg := DefaultConfig()

	assert.Equal(t, time.Date(2026, 8, 17, 9, 30, 0, 0, time.UTC), cfg.Since(now))
}
