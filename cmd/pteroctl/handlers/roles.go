package handlers

import (
	"context"
	"fmt"

	"github.com/zerioak/pteroctl/internal/ptero"
	"github.com/zerioak/pteroctl/internal/ui"
)

// ListRoles prints every admin role.
func ListRoles(ctx context.Context) error {
	client, _, err := newPanelClient()
	if err != nil {
		return err
	}
	defer client.Close()
	return listRoles(ctx, client)
}

func listRoles(ctx context.Context, client *ptero.Client) error {
	roles, err := client.ListRoles(ctx)
	if err != nil {
		return err
	}

	fmt.Println(ui.TitleStyle.Render(fmt.Sprintf("Roles (%d)", len(roles))))
	rows := make([][]string, 0, len(roles))
	for _, r := range roles {
		rows = append(rows, []string{
			itoa(r.AttrInt("id")),
			r.AttrStr("name"),
			orDash(r.AttrStr("description")),
		})
	}
	fmt.Print(ui.Table([]string{"ID", "Name", "Description"}, rows))
	return nil
}

// CreateRole creates an admin role.
func CreateRole(ctx context.Context, name, description string) error {
	client, _, err := newPanelClient()
	if err != nil {
		return err
	}
	defer client.Close()
	return createRole(ctx, client, name, description)
}

func createRole(ctx context.Context, client *ptero.Client, name, description string) error {
	payload := map[string]any{"name": name}
	if description != "" {
		payload["description"] = description
	}

	r, err := client.CreateRole(ctx, payload)
	if err != nil {
		return err
	}
	fmt.Printf("%s role %s created with id %d\n",
		ui.ReadyStyle.Render(ui.CheckMark), r.AttrStr("name"), r.AttrInt("id"))
	return nil
}

// RenameRole renames an admin role.
func RenameRole(ctx context.Context, id int64, name string) error {
	client, _, err := newPanelClient()
	if err != nil {
		return err
	}
	defer client.Close()

	if _, err := client.UpdateRole(ctx, id, map[string]any{"name": name}); err != nil {
		return err
	}
	fmt.Printf("%s role %d renamed to %s\n", ui.ReadyStyle.Render(ui.CheckMark), id, name)
	return nil
}

// DeleteRole deletes an admin role.
func DeleteRole(ctx context.Context, id int64) error {
	client, _, err := newPanelClient()
	if err != nil {
		return err
	}
	defer client.Close()

	ok, err := confirmDestructive(ctx, fmt.Sprintf("Delete role %d?", id))
	if err != nil || !ok {
		return err
	}

	if err := client.DeleteRole(ctx, id); err != nil {
		return err
	}
	fmt.Printf("%s role %d deleted\n", ui.ReadyStyle.Render(ui.CheckMark), id)
	return nil
}
