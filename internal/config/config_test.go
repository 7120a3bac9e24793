package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PTEROCTL_PANEL_URL", "https://panel.example.com/")
	t.Setenv("PTEROCTL_API_KEY", "app-key")
	t.Setenv("PTEROCTL_CLIENT_KEY", "client-key")
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	// Trailing slash is stripped.
	assert.Equal(t, "https://panel.example.com", cfg.PanelURL)
	assert.Equal(t, "app-key", cfg.APIKey)
	assert.Equal(t, "human", cfg.LogFormat)
	assert.Equal(t, 3*time.Minute, cfg.SessionTimeout)
}

func TestLoadMissingRequiredKeys(t *testing.T) {
	t.Chdir(t.TempDir())

	t.Run("panel url", func(t *testing.T) {
		t.Setenv("PTEROCTL_PANEL_URL", "")
		t.Setenv("PTEROCTL_API_KEY", "app-key")
		_, err := Load()
		assert.ErrorIs(t, err, ErrPanelURLRequired)
	})

	t.Run("api key", func(t *testing.T) {
		t.Setenv("PTEROCTL_PANEL_URL", "https://panel.example.com")
		t.Setenv("PTEROCTL_API_KEY", "")
		_, err := Load()
		assert.ErrorIs(t, err, ErrAPIKeyRequired)
	})
}

func TestValidateControlMode(t *testing.T) {
	base := Config{PanelURL: "https://p", APIKey: "k"}

	t.Run("owner without client key rejected", func(t *testing.T) {
		cfg := base
		cfg.ControlMode = "owner"
		assert.ErrorIs(t, cfg.Validate(), ErrClientKeyMissing)
	})

	t.Run("unknown mode rejected", func(t *testing.T) {
		cfg := base
		cfg.ControlMode = "root"
		assert.Error(t, cfg.Validate())
	})

	t.Run("admin without client key fine", func(t *testing.T) {
		cfg := base
		cfg.ControlMode = "admin"
		assert.NoError(t, cfg.Validate())
	})
}

func TestResolvedControlMode(t *testing.T) {
	tests := []struct {
		name     string
		cfg      Config
		wantMode string
		wantKey  string
	}{
		{
			name:     "explicit admin wins over client key",
			cfg:      Config{APIKey: "app", ClientKey: "cli", ControlMode: "admin"},
			wantMode: "admin",
			wantKey:  "app",
		},
		{
			name:     "client key implies owner",
			cfg:      Config{APIKey: "app", ClientKey: "cli"},
			wantMode: "owner",
			wantKey:  "cli",
		},
		{
			name:     "no client key implies admin",
			cfg:      Config{APIKey: "app"},
			wantMode: "admin",
			wantKey:  "app",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantMode, tt.cfg.ResolvedControlMode())
			assert.Equal(t, tt.wantKey, tt.cfg.ControlKey())
		})
	}
}
