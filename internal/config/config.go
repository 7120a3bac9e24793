// Package config loads pteroctl settings from the environment and an
// optional config file.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment variables, e.g.
// PTEROCTL_PANEL_URL.
const EnvPrefix = "PTEROCTL"

// Config holds the resolved application configuration.
type Config struct {
	// PanelURL is the base URL of the panel, without trailing slash.
	PanelURL string `mapstructure:"panel_url"`
	// APIKey is the Application API key used for all administrative
	// operations.
	APIKey string `mapstructure:"api_key"`
	// ClientKey is an optional per-account Client API key. When set,
	// runtime control defaults to owner mode with this key.
	ClientKey string `mapstructure:"client_key"`
	// ControlMode selects how runtime control authenticates:
	// "owner" or "admin". Empty means derive from ClientKey.
	ControlMode string `mapstructure:"control_mode"`

	Debug     bool   `mapstructure:"debug"`
	LogFormat string `mapstructure:"log_format"`

	// SessionTimeout bounds how long an interactive wizard session may
	// run before it is discarded.
	SessionTimeout time.Duration `mapstructure:"session_timeout"`
}

var (
	ErrPanelURLRequired = errors.New("panel_url is required (set PTEROCTL_PANEL_URL)")
	ErrAPIKeyRequired   = errors.New("api_key is required (set PTEROCTL_API_KEY)")
	ErrClientKeyMissing = errors.New("control_mode is owner but no client_key is set")
)

// Load reads configuration from pteroctl.yaml (current directory, then
// $HOME/.config/pteroctl/), overridden by PTEROCTL_* environment
// variables, and validates it.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("pteroctl")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/pteroctl")

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("log_format", "human")
	v.SetDefault("session_timeout", 3*time.Minute)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	// AutomaticEnv alone does not surface env-only keys through
	// Unmarshal, so bind the known keys explicitly.
	for _, key := range []string{"panel_url", "api_key", "client_key", "control_mode", "debug", "log_format", "session_timeout"} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.PanelURL = strings.TrimRight(cfg.PanelURL, "/")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks required fields and the control-mode/key pairing.
func (c *Config) Validate() error {
	if c.PanelURL == "" {
		return ErrPanelURLRequired
	}
	if c.APIKey == "" {
		return ErrAPIKeyRequired
	}
	switch c.ControlMode {
	case "", "owner", "admin":
	default:
		return fmt.Errorf("control_mode must be \"owner\" or \"admin\", got %q", c.ControlMode)
	}
	if c.ControlMode == "owner" && c.ClientKey == "" {
		return ErrClientKeyMissing
	}
	return nil
}

// ResolvedControlMode returns the effective control mode: an explicit
// setting wins, otherwise owner mode iff a client key is configured.
func (c *Config) ResolvedControlMode() string {
	if c.ControlMode != "" {
		return c.ControlMode
	}
	if c.ClientKey != "" {
		return "owner"
	}
	return "admin"
}

// ControlKey returns the credential matching the resolved control mode.
func (c *Config) ControlKey() string {
	if c.ResolvedControlMode() == "owner" {
		return c.ClientKey
	}
	return c.APIKey
}
