package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

const fileName = "release-helper.toml"

type Config struct {
	Defaults DefaultsConfig `toml:"defaults"`
	GitHub   GitHubConfig   `toml:"github"`
}

type DefaultsConfig struct {
	Owner          string `toml:"owner"`
	Repo           string `toml:"repo"`
	Branch         string `toml:"branch"`
	LookbackMonths int    `toml:"lookback_months"`
}

type GitHubConfig struct {
	// Token is the locally stored secret used for API calls
	Token   string `toml:"token"`
	APIURL  string `toml:"api_url"`
	WebURL  string `toml:"web_url"`
	PerPage int    `toml:"per_page"`
}

func DefaultConfig() *Config {
	return &Config{
		Defaults: DefaultsConfig{
			Owner:          "dotnet",
			Repo:           "dotnet-docker",
			Branch:         "nightly",
			LookbackMonths: 2,
		},
		GitHub: GitHubConfig{
			WebURL:  "https://github.com",
			PerPage: 100,
		},
	}
}

// Path returns the default config file location
func Path() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, fileName), nil
}

// Load reads the config from the default location
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return DefaultConfig(), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads the config at path. A missing file yields the defaults,
// which are written back so there is something to edit.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := DefaultConfig()
			_ = cfg.SaveTo(path) // Best effort save
			return cfg, nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks values a config file may have broken
func (c *Config) Validate() error {
	switch {
	case c.Defaults.Owner == "":
		return errors.New("defaults.owner must not be empty")
	case c.Defaults.Repo == "":
		return errors.New("defaults.repo must not be empty")
	case c.Defaults.Branch == "":
		return errors.New("defaults.branch must not be empty")
	case c.Defaults.LookbackMonths < 1:
		return fmt.Errorf("defaults.lookback_months must be at least 1, got %d", c.Defaults.LookbackMonths)
	case c.GitHub.PerPage < 1 || c.GitHub.PerPage > 100:
		return fmt.Errorf("github.per_page must be between 1 and 100, got %d", c.GitHub.PerPage)
	}
	return nil
}

// SaveTo writes the config to path. The file may hold a token, so it is private.
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}

// Since returns the start of the lookback window relative to now
func (c *Config) Since(now time.Time) time.Time {
	return now.AddDate(0, -c.Defaults.LookbackMonths, 0)
}
