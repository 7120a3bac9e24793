package handlers

import (
	"context"
	"fmt"

	"github.com/zerioak/pteroctl/internal/ptero"
	"github.com/zerioak/pteroctl/internal/ui"
)

// MountOptions carries mount create and update flags.
type MountOptions struct {
	Source        string
	Target        string
	ReadOnly      bool
	UserMountable bool
}

// ListMounts prints every mount.
func ListMounts(ctx context.Context) error {
	client, _, err := newPanelClient()
	if err != nil {
		return err
	}
	defer client.Close()
	return listMounts(ctx, client)
}

func listMounts(ctx context.Context, client *ptero.Client) error {
	mounts, err := client.ListMounts(ctx)
	if err != nil {
		return err
	}

	fmt.Println(ui.TitleStyle.Render(fmt.Sprintf("Mounts (%d)", len(mounts))))
	rows := make([][]string, 0, len(mounts))
	for _, m := range mounts {
		rows = append(rows, []string{
			itoa(m.AttrInt("id")),
			m.AttrStr("name"),
			m.AttrStr("source"),
			m.AttrStr("target"),
			yesNo(m.Bool("attributes.read_only")),
		})
	}
	fmt.Print(ui.Table([]string{"ID", "Name", "Source", "Target", "Read-only"}, rows))
	return nil
}

// ShowMount prints one mount.
func ShowMount(ctx context.Context, id int64) error {
	client, _, err := newPanelClient()
	if err != nil {
		return err
	}
	defer client.Close()
	return showMount(ctx, client, id)
}

func showMount(ctx context.Context, client *ptero.Client, id int64) error {
	m, err := client.GetMount(ctx, id)
	if err != nil {
		return err
	}

	fmt.Println(ui.TitleStyle.Render(m.AttrStr("name")))
	pairs := [][2]string{
		{"ID", itoa(m.AttrInt("id"))},
		{"UUID", m.AttrStr("uuid")},
		{"Source", m.AttrStr("source")},
		{"Target", m.AttrStr("target")},
		{"Read-only", yesNo(m.Bool("attributes.read_only"))},
		{"User mountable", yesNo(m.Bool("attributes.user_mountable"))},
	}
	fmt.Print(ui.KeyValues(pairs))
	return nil
}

// CreateMount creates a mount.
func CreateMount(ctx context.Context, name string, opts MountOptions) error {
	client, _, err := newPanelClient()
	if err != nil {
		return err
	}
	defer client.Close()
	return createMount(ctx, client, name, opts)
}

func createMount(ctx context.Context, client *ptero.Client, name string, opts MountOptions) error {
	payload := map[string]any{
		"name":           name,
		"source":         opts.Source,
		"target":         opts.Target,
		"read_only":      opts.ReadOnly,
		"user_mountable": opts.UserMountable,
	}

	m, err := client.CreateMount(ctx, payload)
	if err != nil {
		return err
	}
	fmt.Printf("%s mount %s created with id %d\n",
		ui.ReadyStyle.Render(ui.CheckMark), m.AttrStr("name"), m.AttrInt("id"))
	return nil
}

// UpdateMount updates a mount, keeping unset fields.
func UpdateMount(ctx context.Context, id int64, name string, opts MountOptions) error {
	client, _, err := newPanelClient()
	if err != nil {
		return err
	}
	defer client.Close()
	return updateMount(ctx, client, id, name, opts)
}

func updateMount(ctx context.Context, client *ptero.Client, id int64, name string, opts MountOptions) error {
	m, err := client.GetMount(ctx, id)
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
		"name":           pick(name, m.AttrStr("name")),
		"source":         pick(opts.Source, m.AttrStr("source")),
		"target":         pick(opts.Target, m.AttrStr("target")),
		"read_only":      opts.ReadOnly || m.Bool("attributes.read_only"),
		"user_mountable": opts.UserMountable || m.Bool("attributes.user_mountable"),
	}

	if _, err := client.UpdateMount(ctx, id, payload); err != nil {
		return err
	}
	fmt.Printf("%s mount %d updated\n", ui.ReadyStyle.Render(ui.CheckMark), id)
	return nil
}

// DeleteMount deletes a mount.
func DeleteMount(ctx context.Context, id int64) error {
	client, _, err := newPanelClient()
	if err != nil {
		return err
	}
	defer client.Close()

	ok, err := confirmDestructive(ctx, fmt.Sprintf("Delete mount %d?", id))
	if err != nil || !ok {
		return err
	}

	if err := client.DeleteMount(ctx, id); err != nil {
		return err
	}
	fmt.Printf("%s mount %d deleted\n", ui.ReadyStyle.Render(ui.CheckMark), id)
	return nil
}
