package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/serr"
	"gopkg.in/yaml.v3"

	"hackerstories/models"
)

// Environment variables that override the config file
const (
	EnvConfigPath    = "HACKERSTORIES_CONFIG"
	EnvAddress       = "HACKERSTORIES_ADDR"
	EnvLogLevel      = "HACKERSTORIES_LOG_LEVEL"
	EnvDefaultSearch = "HACKERSTORIES_DEFAULT_SEARCH"
	EnvSessionTTL    = "HACKERSTORIES_SESSION_TTL"
)

// DefaultPath is read when HACKERSTORIES_CONFIG is not set
const DefaultPath = "hackerstories.yaml"

// Config holds the application configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Logging LoggingConfig `yaml:"logging"`
	Search  SearchConfig  `yaml:"search"`
}

// ServerConfig holds web server settings.
type ServerConfig struct {
	Address string `yaml:"address"`
	Verbose bool   `yaml:"verbose"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// SearchConfig holds the initial search text of a fresh root container
// and how long an idle session keeps its search state.
type SearchConfig struct {
	Default    string        `yaml:"default"`
	SessionTTL time.Duration `yaml:"session_ttl"` // e.g. "30m"; negative disables eviction
}

// DefaultSessionTTL is how long an unused session state is kept
const DefaultSessionTTL = 30 * time.Minute

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Server:  ServerConfig{Address: ":8000"},
		Logging: LoggingConfig{Level: "info"},
		Search:  SearchConfig{Default: models.DefaultSearchTerm, SessionTTL: DefaultSessionTTL},
	}
}

// Load reads the YAML file at path (a missing file is fine), then applies
// environment overrides. An empty path means HACKERSTORIES_CONFIG or DefaultPath.
func Load(path string) (Config, error) {
	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path == "" {
		path = DefaultPath
	}

	cfg := Default()

	data, err := os.ReadFile(filepath.Clean(path))
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// defaults only
	case err != nil:
		return cfg, serr.Wrap(err, "failed to read config file "+path)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, serr.Wrap(err, "failed to parse config file "+path)
		}
	}

	cfg.applyEnv()
	cfg.fillDefaults()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvAddress); v != "" {
		c.Server.Address = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvDefaultSearch); v != "" {
		c.Search.Default = v
	}
	if v := os.Getenv(EnvSessionTTL); v != "" {
		if ttl, err := time.ParseDuration(v); err == nil {
			c.Search.SessionTTL = ttl
		} else {
			logger.LogErr(serr.Wrap(err, "ignoring "+EnvSessionTTL), "invalid session ttl")
		}
	}
}

// fillDefaults restores defaults for values a file blanked out.
// The default search text must never be empty.
func (c *Config) fillDefaults() {
	def := Default()
	if c.Server.Address == "" {
		c.Server.Address = def.Server.Address
	}
	if c.Logging.Level == "" {
		c.Logging.Level = def.Logging.Level
	}
	if c.Search.Default == "" {
		c.Search.Default = def.Search.Default
	}
	if c.Search.SessionTTL == 0 {
		c.Search.SessionTTL = def.Search.SessionTTL
	}
}
