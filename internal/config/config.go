// Package config manages coauthor configuration.
//
// Configuration is optional. It lives at ~/.config/coauthor/config.yaml (or
// under $XDG_CONFIG_HOME) and may also be written as TOML when the file name
// ends in .toml. Command-line flags override file values.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config holds the coauthor configuration.
type Config struct {
	// APIURL is the GitHub API root.
	APIURL string `yaml:"api_url" toml:"api_url"`

	// Domain is the host used in users.noreply.<domain> addresses.
	Domain string `yaml:"domain" toml:"domain"`

	// UserAgent is sent with every request.
	UserAgent string `yaml:"user_agent" toml:"user_agent"`

	// TokenEnv lists the variables checked for a bearer token, in order.
	TokenEnv []string `yaml:"token_env" toml:"token_env"`

	// EnvFile is a dotenv file consulted when the environment has no token.
	EnvFile string `yaml:"env_file,omitempty" toml:"env_file,omitempty"`
}

// Overrides are values supplied on the command line. Empty fields are ignored.
type Overrides struct {
	APIURL  string
	Domain  string
	EnvFile string
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		APIURL:    "https://api.github.com",
		Domain:    "github.com",
		UserAgent: "coauthor-line-script",
		TokenEnv:  []string{"GITHUB_TOKEN", "GH_TOKEN"},
	}
}

// ConfigPath returns the path to the default config file.
// Falls back to the current directory if the home directory cannot be determined.
func ConfigPath() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "coauthor", "config.yaml")
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".config", "coauthor", "config.yaml")
	}
	return filepath.Join(homeDir, ".config", "coauthor", "config.yaml")
}

// Load reads the configuration at path, or at ConfigPath when path is empty.
// A missing file yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		path = ConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := DefaultConfig()
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		err = toml.Unmarshal(data, cfg)
	} else {
		err = yaml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg.fillDefaults()
	return cfg, nil
}

// fillDefaults restores defaults for fields a file explicitly emptied.
func (c *Config) fillDefaults() {
	def := DefaultConfig()
	if c.APIURL == "" {
		c.APIURL = def.APIURL
	}
	if c.Domain == "" {
		c.Domain = def.Domain
	}
	if c.UserAgent == "" {
		c.UserAgent = def.UserAgent
	}
	if len(c.TokenEnv) == 0 {
		c.TokenEnv = def.TokenEnv
	}
}

// Apply overlays command-line values on the configuration.
func (c *Config) Apply(o Overrides) {
	if o.APIURL != "" {
		c.APIURL = o.APIURL
	}
	if o.Domain != "" {
		c.Domain = o.Domain
	}
	if o.EnvFile != "" {
		c.EnvFile = o.EnvFile
	}
}

// LoadEnvFile reads EnvFile without touching the process environment.
// It returns nil when no file is configured.
func (c *Config) LoadEnvFile() (map[string]string, error) {
	if c.EnvFile == "" {
		return nil, nil
	}
	env, err := godotenv.Read(expandHome(c.EnvFile))
	if err != nil {
		return nil, fmt.Errorf("read env file: %w", err)
	}
	return env, nil
}

// expandHome replaces a leading ~/ with the user's home directory.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
