package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/zerioak/pteroctl/internal/ptero"
	"github.com/zerioak/pteroctl/internal/ui"
)

// ServerDetailsOptions carries the edit-details flags. Empty or zero
// fields keep the server's current value.
type ServerDetailsOptions struct {
	Name        string
	Description string
	ExternalID  string
	OwnerID     int64
}

// ServerBuildOptions carries the edit-build flags. Negative sentinel
// values keep the server's current limit (-2 for swap, whose -1 means
// unlimited on the panel).
type ServerBuildOptions struct {
	Memory int64
	Disk   int64
	CPU    int64
	Swap   int64
	IO     int64
}

// ServerStartupOptions carries the edit-startup flags.
type ServerStartupOptions struct {
	Startup string
	Image   string
	Env     []string
}

// ListServers prints every server on the panel.
func ListServers(ctx context.Context) error {
	client, _, err := newPanelClient()
	if err != nil {
		return err
	}
	defer client.Close()
	return listServers(ctx, client)
}

func listServers(ctx context.Context, client *ptero.Client) error {
	servers, err := client.ListServers(ctx)
	if err != nil {
		return err
	}

	fmt.Println(ui.TitleStyle.Render(fmt.Sprintf("Servers (%d)", len(servers))))
	rows := make([][]string, 0, len(servers))
	for _, s := range servers {
		rows = append(rows, []string{
			itoa(s.AttrInt("id")),
			s.AttrStr("name"),
			ptero.Identifier(s),
			itoa(s.Int("attributes.node")),
			itoa(s.Int("attributes.user")),
			ui.FormatMB(s.Int("attributes.limits.memory")),
			yesNo(s.Bool("attributes.suspended")),
		})
	}
	fmt.Print(ui.Table([]string{"ID", "Name", "Identifier", "Node", "Owner", "Memory", "Suspended"}, rows))
	return nil
}

// ShowServer prints one server with its limits and relationships.
func ShowServer(ctx context.Context, id int64) error {
	client, _, err := newPanelClient()
	if err != nil {
		return err
	}
	defer client.Close()
	return showServer(ctx, client, id)
}

func showServer(ctx context.Context, client *ptero.Client, id int64) error {
	s, err := client.GetServer(ctx, id)
	if err != nil {
		return err
	}

	fmt.Println(ui.TitleStyle.Render(s.AttrStr("name")))
	pairs := [][2]string{
		{"ID", itoa(s.AttrInt("id"))},
		{"Identifier", ptero.Identifier(s)},
		{"UUID", s.AttrStr("uuid")},
		{"External ID", orDash(s.AttrStr("external_id"))},
		{"Description", orDash(s.AttrStr("description"))},
		{"Owner", itoa(s.Int("attributes.user"))},
		{"Node", itoa(s.Int("attributes.node"))},
		{"Egg", itoa(s.Int("attributes.egg"))},
		{"Image", s.Str("attributes.container.image")},
		{"Suspended", yesNo(s.Bool("attributes.suspended"))},
		{"Memory", ui.FormatMB(s.Int("attributes.limits.memory"))},
		{"Disk", ui.FormatMB(s.Int("attributes.limits.disk"))},
		{"CPU", fmt.Sprintf("%d%%", s.Int("attributes.limits.cpu"))},
		{"Swap", fmt.Sprintf("%d MB", s.Int("attributes.limits.swap"))},
		{"IO weight", itoa(s.Int("attributes.limits.io"))},
		{"Databases", itoa(s.Int("attributes.feature_limits.databases"))},
		{"Backups", itoa(s.Int("attributes.feature_limits.backups"))},
		{"Allocations", itoa(s.Int("attributes.feature_limits.allocations"))},
	}
	fmt.Print(ui.KeyValues(pairs))
	return nil
}

// SuspendServer suspends a server.
func SuspendServer(ctx context.Context, id int64) error {
	client, _, err := newPanelClient()
	if err != nil {
		return err
	}
	defer client.Close()

	ok, err := confirmDestructive(ctx, fmt.Sprintf("Suspend server %d? Its processes are stopped and access is cut.", id))
	if err != nil || !ok {
		return err
	}

	if err := client.SuspendServer(ctx, id); err != nil {
		return err
	}
	fmt.Printf("%s server %d suspended\n", ui.ReadyStyle.Render(ui.CheckMark), id)
	return nil
}

// UnsuspendServer lifts a server suspension.
func UnsuspendServer(ctx context.Context, id int64) error {
	client, _, err := newPanelClient()
	if err != nil {
		return err
	}
	defer client.Close()

	if err := client.UnsuspendServer(ctx, id); err != nil {
		return err
	}
	fmt.Printf("%s server %d unsuspended\n", ui.ReadyStyle.Render(ui.CheckMark), id)
	return nil
}

// DeleteServer deletes a server, optionally through the force route.
func DeleteServer(ctx context.Context, id int64, force bool) error {
	client, _, err := newPanelClient()
	if err != nil {
		return err
	}
	defer client.Close()

	ok, err := confirmDestructive(ctx, fmt.Sprintf("Delete server %d? This destroys the server and its files.", id))
	if err != nil || !ok {
		return err
	}

	if err := client.DeleteServer(ctx, id, force); err != nil {
		return err
	}
	mode := "deleted"
	if force {
		mode = "force deleted"
	}
	fmt.Printf("%s server %d %s\n", ui.ReadyStyle.Render(ui.CheckMark), id, mode)
	return nil
}

// ServerDatabases lists a server's databases.
func ServerDatabases(ctx context.Context, id int64) error {
	client, _, err := newPanelClient()
	if err != nil {
		return err
	}
	defer client.Close()
	return serverDatabases(ctx, client, id)
}

func serverDatabases(ctx context.Context, client *ptero.Client, id int64) error {
	dbs, err := client.ListServerDatabases(ctx, id)
	if err != nil {
		return err
	}

	fmt.Println(ui.TitleStyle.Render(fmt.Sprintf("Databases of server %d (%d)", id, len(dbs))))
	rows := make([][]string, 0, len(dbs))
	for _, db := range dbs {
		rows = append(rows, []string{
			itoa(db.AttrInt("id")),
			db.AttrStr("database"),
			db.AttrStr("username"),
			db.AttrStr("remote"),
			itoa(db.Int("attributes.host")),
		})
	}
	fmt.Print(ui.Table([]string{"ID", "Database", "Username", "Remote", "Host"}, rows))
	return nil
}

// EditServerDetails updates a server's name, owner, external ID or
// description. Unset flags keep the current values; the panel expects
// a full details payload, so the handler reads the server first.
func EditServerDetails(ctx context.Context, id int64, opts ServerDetailsOptions) error {
	client, _, err := newPanelClient()
	if err != nil {
		return err
	}
	defer client.Close()
	return editServerDetails(ctx, client, id, opts)
}

func editServerDetails(ctx context.Context, client *ptero.Client, id int64, opts ServerDetailsOptions) error {
	s, err := client.GetServer(ctx, id)
	if err != nil {
		return err
	}

	payload := map[string]any{
		"name": s.AttrStr("name"),
		"user": s.Int("attributes.user"),
	}
	if desc := s.AttrStr("description"); desc != "" {
		payload["description"] = desc
	}
	if ext := s.AttrStr("external_id"); ext != "" {
		payload["external_id"] = ext
	}

	if opts.Name != "" {
		payload["name"] = opts.Name
	}
	if opts.Description != "" {
		payload["description"] = opts.Description
	}
	if opts.ExternalID != "" {
		payload["external_id"] = opts.ExternalID
	}
	if opts.OwnerID > 0 {
		payload["user"] = opts.OwnerID
	}

	updated, err := client.UpdateServerDetails(ctx, id, payload)
	if err != nil {
		return err
	}
	fmt.Printf("%s server %d details updated: %s\n",
		ui.ReadyStyle.Render(ui.CheckMark), id, updated.AttrStr("name"))
	return nil
}

// EditServerBuild updates a server's resource limits. Sentinel flag
// values keep the current limits; allocation and feature limits are
// carried over unchanged.
func EditServerBuild(ctx context.Context, id int64, opts ServerBuildOptions) error {
	client, _, err := newPanelClient()
	if err != nil {
		return err
	}
	defer client.Close()
	return editServerBuild(ctx, client, id, opts)
}

func editServerBuild(ctx context.Context, client *ptero.Client, id int64, opts ServerBuildOptions) error {
	s, err := client.GetServer(ctx, id)
	if err != nil {
		return err
	}

	pick := func(flag, current int64) int64 {
		if flag >= 0 {
			return flag
		}
		return current
	}

	swap := s.Int("attributes.limits.swap")
	if opts.Swap >= -1 {
		swap = opts.Swap
	}

	payload := map[string]any{
		"allocation": s.Int("attributes.allocation"),
		"limits": map[string]any{
			"memory": pick(opts.Memory, s.Int("attributes.limits.memory")),
			"disk":   pick(opts.Disk, s.Int("attributes.limits.disk")),
			"cpu":    pick(opts.CPU, s.Int("attributes.limits.cpu")),
			"swap":   swap,
			"io":     pick(opts.IO, s.Int("attributes.limits.io")),
		},
		"feature_limits": map[string]any{
			"databases":   s.Int("attributes.feature_limits.databases"),
			"backups":     s.Int("attributes.feature_limits.backups"),
			"allocations": s.Int("attributes.feature_limits.allocations"),
		},
	}

	updated, err := client.UpdateServerBuild(ctx, id, payload)
	if err != nil {
		return err
	}
	fmt.Printf("%s server %d build updated: %s memory, %s disk\n",
		ui.ReadyStyle.Render(ui.CheckMark), id,
		ui.FormatMB(updated.Int("attributes.limits.memory")),
		ui.FormatMB(updated.Int("attributes.limits.disk")))
	return nil
}

// EditServerStartup updates a server's startup command, image or
// environment. --env overrides merge into the current environment.
func EditServerStartup(ctx context.Context, id int64, opts ServerStartupOptions) error {
	client, _, err := newPanelClient()
	if err != nil {
		return err
	}
	defer client.Close()
	return editServerStartup(ctx, client, id, opts)
}

func editServerStartup(ctx context.Context, client *ptero.Client, id int64, opts ServerStartupOptions) error {
	s, err := client.GetServer(ctx, id)
	if err != nil {
		return err
	}

	env := s.StrMap("attributes.container.environment")
	for _, pair := range opts.Env {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return fmt.Errorf("invalid environment override %q: expected KEY=VALUE", pair)
		}
		env[key] = value
	}

	startup := s.Str("attributes.container.startup_command")
	if opts.Startup != "" {
		startup = opts.Startup
	}
	image := s.Str("attributes.container.image")
	if opts.Image != "" {
		image = opts.Image
	}

	payload := map[string]any{
		"startup":      startup,
		"image":        image,
		"environment":  env,
		"egg":          s.Int("attributes.egg"),
		"skip_scripts": false,
	}

	if _, err := client.UpdateServerStartup(ctx, id, payload); err != nil {
		return err
	}
	fmt.Printf("%s server %d startup updated\n", ui.ReadyStyle.Render(ui.CheckMark), id)
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
