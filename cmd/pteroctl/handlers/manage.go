package handlers

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zerioak/pteroctl/internal/ptero"
	"github.com/zerioak/pteroctl/internal/ui"
	"github.com/zerioak/pteroctl/internal/ui/panel"
)

// Manage opens the live management panel for one server. In a
// non-interactive session it degrades to a single stats snapshot.
func Manage(ctx context.Context, id int64, modeOverride string) error {
	client, cfg, err := newPanelClient()
	if err != nil {
		return err
	}
	defer client.Close()

	server, err := client.GetServer(ctx, id)
	if err != nil {
		return err
	}
	identifier := ptero.Identifier(server)

	control, err := newControlClient(cfg, modeOverride)
	if err != nil {
		return err
	}

	if !ui.Interactive() {
		return printStats(ctx, control, server.AttrStr("name"), identifier)
	}

	ctx, cancel := sessionContext(ctx, cfg)
	defer cancel()

	model := panel.New(ctx, control, server.AttrStr("name"), identifier, control.Mode().String())
	final, err := tea.NewProgram(model, tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}
	if m, ok := final.(panel.Model); ok && m.Err != nil {
		return m.Err
	}
	return nil
}

// ManageAction sends one control action without opening the panel.
func ManageAction(ctx context.Context, id int64, modeOverride, action string) error {
	client, cfg, err := newPanelClient()
	if err != nil {
		return err
	}
	defer client.Close()

	server, err := client.GetServer(ctx, id)
	if err != nil {
		return err
	}
	identifier := ptero.Identifier(server)

	control, err := newControlClient(cfg, modeOverride)
	if err != nil {
		return err
	}

	switch action {
	case "stats":
		return printStats(ctx, control, server.AttrStr("name"), identifier)
	case "start", "stop", "restart", "kill":
		if err := control.Power(ctx, identifier, ptero.PowerSignal(action)); err != nil {
			return err
		}
		fmt.Printf("%s sent %s to %s\n", ui.ReadyStyle.Render(ui.CheckMark), action, identifier)
		return nil
	case "reinstall":
		ok, err := confirmDestructive(ctx, fmt.Sprintf("Reinstall %s? This wipes ALL server files and reruns the install script.", identifier))
		if err != nil || !ok {
			return err
		}
		if err := control.Reinstall(ctx, identifier); err != nil {
			return err
		}
		fmt.Printf("%s reinstall queued for %s\n", ui.ReadyStyle.Render(ui.CheckMark), identifier)
		return nil
	default:
		return fmt.Errorf("unknown action %q: expected start, stop, restart, kill, reinstall or stats", action)
	}
}

func printStats(ctx context.Context, control *ptero.ControlClient, name, identifier string) error {
	doc, err := control.Resources(ctx, identifier)
	if err != nil {
		return err
	}
	stats := panel.ParseStats(doc)

	fmt.Println(ui.TitleStyle.Render(name) + ui.DimStyle.Render(" ("+identifier+")"))
	pairs := [][2]string{
		{"State", ui.StateBadge(stats.State)},
		{"CPU", fmt.Sprintf("%.1f%%", stats.CPUPercent)},
		{"Memory", ui.FormatBytes(stats.MemoryBytes)},
		{"Disk", ui.FormatBytes(stats.DiskBytes)},
		{"Network RX", ui.FormatBytes(stats.NetworkRx)},
		{"Network TX", ui.FormatBytes(stats.NetworkTx)},
		{"Suspended", yesNo(stats.Suspended)},
	}
	fmt.Print(ui.KeyValues(pairs))
	return nil
}
