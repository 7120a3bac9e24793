// Package handlers implements the execution logic behind the CLI
// commands. Commands parse flags and arguments; handlers load the
// configuration, talk to the panel and render results.
package handlers

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"

	"github.com/zerioak/pteroctl/internal/config"
	"github.com/zerioak/pteroctl/internal/logger"
	"github.com/zerioak/pteroctl/internal/ptero"
	"github.com/zerioak/pteroctl/internal/ui"
)

// newPanelClient loads the configuration and builds the Application
// API client. The caller owns the returned client and should Close it.
func newPanelClient() (*ptero.Client, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.Init(cfg.Debug, cfg.LogFormat); err != nil {
		return nil, nil, err
	}
	logger.L().Debugw("panel client ready", "panel", cfg.PanelURL)
	return ptero.NewClient(cfg.PanelURL, cfg.APIKey), cfg, nil
}

// newControlClient builds a Client API control client. An explicit
// modeOverride of "owner" or "admin" wins over the configured mode.
func newControlClient(cfg *config.Config, modeOverride string) (*ptero.ControlClient, error) {
	mode := cfg.ResolvedControlMode()
	if modeOverride != "" {
		mode = modeOverride
	}

	switch mode {
	case "owner":
		if cfg.ClientKey == "" {
			return nil, config.ErrClientKeyMissing
		}
		return ptero.NewControlClient(cfg.PanelURL, ptero.ModeOwner, cfg.ClientKey), nil
	case "admin":
		return ptero.NewControlClient(cfg.PanelURL, ptero.ModeAdmin, cfg.APIKey), nil
	default:
		return nil, fmt.Errorf("unknown control mode %q: expected owner or admin", mode)
	}
}

// sessionContext bounds an interactive session by the configured
// timeout. A zero timeout means no bound beyond the parent context.
func sessionContext(ctx context.Context, cfg *config.Config) (context.Context, context.CancelFunc) {
	if cfg.SessionTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, cfg.SessionTimeout)
}

// confirmDestructive asks before an irreversible action. Sessions
// without a terminal skip the prompt so scripted use keeps working.
func confirmDestructive(ctx context.Context, title string) (bool, error) {
	if !ui.Interactive() {
		return true, nil
	}

	confirmed := false
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(&confirmed),
		),
	).RunWithContext(ctx)
	if err != nil {
		return false, err
	}
	return confirmed, nil
}

func itoa(n int64) string {
	return strconv.FormatInt(n, 10)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
