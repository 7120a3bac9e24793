package handlers

import (
	"context"
	"fmt"

	"github.com/zerioak/pteroctl/internal/ptero"
	"github.com/zerioak/pteroctl/internal/ui"
)

// DatabaseHostOptions carries database host create and update flags.
type DatabaseHostOptions struct {
	Host     string
	Port     int64
	Username string
	Password string
	NodeID   int64
}

// ListDatabaseHosts prints every registered database host.
func ListDatabaseHosts(ctx context.Context) error {
	client, _, err := newPanelClient()
	if err != nil {
		return err
	}
	defer client.Close()
	return listDatabaseHosts(ctx, client)
}

func listDatabaseHosts(ctx context.Context, client *ptero.Client) error {
	hosts, err := client.ListDatabaseHosts(ctx)
	if err != nil {
		return err
	}

	fmt.Println(ui.TitleStyle.Render(fmt.Sprintf("Database hosts (%d)", len(hosts))))
	rows := make([][]string, 0, len(hosts))
	for _, h := range hosts {
		rows = append(rows, []string{
			itoa(h.AttrInt("id")),
			h.AttrStr("name"),
			fmt.Sprintf("%s:%d", h.AttrStr("host"), h.Int("attributes.port")),
			h.AttrStr("username"),
			itoa(h.Int("attributes.node")),
		})
	}
	fmt.Print(ui.Table([]string{"ID", "Name", "Address", "Username", "Node"}, rows))
	return nil
}

// CreateDatabaseHost registers a database host.
func CreateDatabaseHost(ctx context.Context, name string, opts DatabaseHostOptions) error {
	client, _, err := newPanelClient()
	if err != nil {
		return err
	}
	defer client.Close()
	return createDatabaseHost(ctx, client, name, opts)
}

func createDatabaseHost(ctx context.Context, client *ptero.Client, name string, opts DatabaseHostOptions) error {
	payload := map[string]any{
		"name":     name,
		"host":     opts.Host,
		"port":     opts.Port,
		"username": opts.Username,
		"password": opts.Password,
	}
	if opts.NodeID > 0 {
		payload["node"] = opts.NodeID
	}

	h, err := client.CreateDatabaseHost(ctx, payload)
	if err != nil {
		return err
	}
	fmt.Printf("%s database host %s registered with id %d\n",
		ui.ReadyStyle.Render(ui.CheckMark), h.AttrStr("name"), h.AttrInt("id"))
	return nil
}

// UpdateDatabaseHost updates a database host, keeping unset fields.
// The password is never read back from the panel, so it is sent only
// when a new one is given.
func UpdateDatabaseHost(ctx context.Context, id int64, name string, opts DatabaseHostOptions) error {
	client, _, err := newPanelClient()
	if err != nil {
		return err
	}
	defer client.Close()
	return updateDatabaseHost(ctx, client, id, name, opts)
}

func updateDatabaseHost(ctx context.Context, client *ptero.Client, id int64, name string, opts DatabaseHostOptions) error {
	h, err := client.GetDatabaseHost(ctx, id)
	if err != nil {
		return err
	}

	pick := func(flag, current string) string {
		if flag != "" {
			return flag
		}
		return current
	}

	payload := map[string]any{
		"name":     pick(name, h.AttrStr("name")),
		"host":     pick(opts.Host, h.AttrStr("host")),
		"port":     h.Int("attributes.port"),
		"username": pick(opts.Username, h.AttrStr("username")),
	}
	if opts.Port > 0 {
		payload["port"] = opts.Port
	}
	if opts.Password != "" {
		payload["password"] = opts.Password
	}
	if opts.NodeID > 0 {
		payload["node"] = opts.NodeID
	}

	if _, err := client.UpdateDatabaseHost(ctx, id, payload); err != nil {
		return err
	}
	fmt.Printf("%s database host %d updated\n", ui.ReadyStyle.Render(ui.CheckMark), id)
	return nil
}

// DeleteDatabaseHost removes a database host registration.
func DeleteDatabaseHost(ctx context.Context, id int64) error {
	client, _, err := newPanelClient()
	if err != nil {
		return err
	}
	defer client.Close()

	ok, err := confirmDestructive(ctx, fmt.Sprintf("Delete database host %d?", id))
	if err != nil || !ok {
		return err
	}

	if err := client.DeleteDatabaseHost(ctx, id); err != nil {
		return err
	}
	fmt.Printf("%s database host %d deleted\n", ui.ReadyStyle.Render(ui.CheckMark), id)
	return nil
}
