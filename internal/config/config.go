package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/altinukshini/shop-tui/internal/search"
)

const appName = "shop-tui"

type Config struct {
	BaseURL        string
	Timeout        time.Duration
	UserAgent      string
	LogFile        string
	Debug          bool
	SearchDebounce time.Duration
}

// fileConfig is the on-disk shape. Durations are strings like "10s";
// pointers distinguish unset keys from zero values.
type fileConfig struct {
	BaseURL        *string `toml:"base_url"`
	Timeout        *string `toml:"timeout"`
	UserAgent      *string `toml:"user_agent"`
	LogFile        *string `toml:"log_file"`
	Debug          *bool   `toml:"debug"`
	SearchDebounce *string `toml:"search_debounce"`
}

func Default() Config {
	return Config{
		BaseURL:        "http://localhost:8000",
		Timeout:        10 * time.Second,
		UserAgent:      appName,
		LogFile:        filepath.Join(stateDir(), appName+".log"),
		SearchDebounce: search.DebounceInterval,
	}
}

// DefaultPath is config.toml under the user config directory.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, appName, "config.toml")
}

// Load reads a TOML file on top of the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := fc.apply(&cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func (fc fileConfig) apply(cfg *Config) error {
	if fc.BaseURL != nil {
		cfg.BaseURL = *fc.BaseURL
	}
	if fc.UserAgent != nil {
		cfg.UserAgent = *fc.UserAgent
	}
	if fc.LogFile != nil {
		cfg.LogFile = *fc.LogFile
	}
	if fc.Debug != nil {
		cfg.Debug = *fc.Debug
	}
	if fc.Timeout != nil {
		d, err := time.ParseDuration(*fc.Timeout)
		if err != nil {
			return fmt.Errorf("timeout: %w", err)
		}
		cfg.Timeout = d
	}
	if fc.SearchDebounce != nil {
		d, err := time.ParseDuration(*fc.SearchDebounce)
		if err != nil {
			return fmt.Errorf("search_debounce: %w", err)
		}
		cfg.SearchDebounce = d
	}
	return nil
}

func (c Config) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base url %q: %w", c.BaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("base url must be http or https, got %q", c.BaseURL)
	}
	if u.Host == "" {
		return fmt.Errorf("base url %q has no host", c.BaseURL)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	if c.SearchDebounce <= 0 {
		return fmt.Errorf("search debounce must be positive")
	}
	return nil
}

// Host is shown in the header.
func (c Config) Host() string {
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Host == "" {
		return c.BaseURL
	}
	return u.Host
}

func stateDir() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return os.TempDir()
	}
	return filepath.Join(dir, appName)
}
