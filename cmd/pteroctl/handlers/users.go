package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/zerioak/pteroctl/internal/ptero"
	"github.com/zerioak/pteroctl/internal/ui"
)

// UserOptions carries the user create and update flags. On update,
// empty fields keep the account's current values.
type UserOptions struct {
	Email     string
	Username  string
	FirstName string
	LastName  string
}

// ListUsers prints every user account.
func ListUsers(ctx context.Context) error {
	client, _, err := newPanelClient()
	if err != nil {
		return err
	}
	defer client.Close()
	return listUsers(ctx, client)
}

func listUsers(ctx context.Context, client *ptero.Client) error {
	users, err := client.ListUsers(ctx)
	if err != nil {
		return err
	}

	fmt.Println(ui.TitleStyle.Render(fmt.Sprintf("Users (%d)", len(users))))
	rows := make([][]string, 0, len(users))
	for _, u := range users {
		rows = append(rows, []string{
			itoa(u.AttrInt("id")),
			u.AttrStr("username"),
			u.AttrStr("email"),
			displayName(u),
			yesNo(u.Bool("attributes.root_admin")),
		})
	}
	fmt.Print(ui.Table([]string{"ID", "Username", "Email", "Name", "Admin"}, rows))
	return nil
}

// ShowUser prints one user account.
func ShowUser(ctx context.Context, id int64) error {
	client, _, err := newPanelClient()
	if err != nil {
		return err
	}
	defer client.Close()
	return showUser(ctx, client, id)
}

func showUser(ctx context.Context, client *ptero.Client, id int64) error {
	u, err := client.GetUser(ctx, id)
	if err != nil {
		return err
	}

	fmt.Println(ui.TitleStyle.Render(u.AttrStr("username")))
	pairs := [][2]string{
		{"ID", itoa(u.AttrInt("id"))},
		{"UUID", u.AttrStr("uuid")},
		{"Email", u.AttrStr("email")},
		{"Name", orDash(displayName(u))},
		{"External ID", orDash(u.AttrStr("external_id"))},
		{"Admin", yesNo(u.Bool("attributes.root_admin"))},
		{"2FA", yesNo(u.Bool("attributes.2fa"))},
		{"Created", u.AttrStr("created_at")},
	}
	fmt.Print(ui.KeyValues(pairs))
	return nil
}

// CreateUser creates a user account. The panel emails the account a
// password setup link, so none is collected here.
func CreateUser(ctx context.Context, opts UserOptions) error {
	client, _, err := newPanelClient()
	if err != nil {
		return err
	}
	defer client.Close()
	return createUser(ctx, client, opts)
}

func createUser(ctx context.Context, client *ptero.Client, opts UserOptions) error {
	payload := map[string]any{
		"email":      opts.Email,
		"username":   opts.Username,
		"first_name": opts.FirstName,
		"last_name":  opts.LastName,
	}
	if opts.FirstName == "" {
		payload["first_name"] = opts.Username
	}
	if opts.LastName == "" {
		payload["last_name"] = opts.Username
	}

	u, err := client.CreateUser(ctx, payload)
	if err != nil {
		return err
	}
	fmt.Printf("%s user %s created with id %d\n",
		ui.ReadyStyle.Render(ui.CheckMark), u.AttrStr("username"), u.AttrInt("id"))
	return nil
}

// UpdateUser updates a user account, keeping unset fields.
func UpdateUser(ctx context.Context, id int64, opts UserOptions) error {
	client, _, err := newPanelClient()
	if err != nil {
		return err
	}
	defer client.Close()
	return updateUser(ctx, client, id, opts)
}

func updateUser(ctx context.Context, client *ptero.Client, id int64, opts UserOptions) error {
	u, err := client.GetUser(ctx, id)
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
		"email":      pick(opts.Email, u.AttrStr("email")),
		"username":   pick(opts.Username, u.AttrStr("username")),
		"first_name": pick(opts.FirstName, u.AttrStr("first_name")),
		"last_name":  pick(opts.LastName, u.AttrStr("last_name")),
	}

	if _, err := client.UpdateUser(ctx, id, payload); err != nil {
		return err
	}
	fmt.Printf("%s user %d updated\n", ui.ReadyStyle.Render(ui.CheckMark), id)
	return nil
}

// DeleteUser deletes a user account.
func DeleteUser(ctx context.Context, id int64) error {
	client, _, err := newPanelClient()
	if err != nil {
		return err
	}
	defer client.Close()

	ok, err := confirmDestructive(ctx, fmt.Sprintf("Delete user %d?", id))
	if err != nil || !ok {
		return err
	}

	if err := client.DeleteUser(ctx, id); err != nil {
		return err
	}
	fmt.Printf("%s user %d deleted\n", ui.ReadyStyle.Render(ui.CheckMark), id)
	return nil
}

func displayName(u ptero.Document) string {
	return strings.TrimSpace(u.AttrStr("first_name") + " " + u.AttrStr("last_name"))
}
