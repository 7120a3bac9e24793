package handlers

import (
	"context"
	"fmt"
	"sort"

	"github.com/zerioak/pteroctl/internal/ptero"
	"github.com/zerioak/pteroctl/internal/ui"
)

// ListNests prints every nest.
func ListNests(ctx context.Context) error {
	client, _, err := newPanelClient()
	if err != nil {
		return err
	}
	defer client.Close()
	return listNests(ctx, client)
}

func listNests(ctx context.Context, client *ptero.Client) error {
	nests, err := client.ListNests(ctx)
	if err != nil {
		return err
	}

	fmt.Println(ui.TitleStyle.Render(fmt.Sprintf("Nests (%d)", len(nests))))
	rows := make([][]string, 0, len(nests))
	for _, n := range nests {
		rows = append(rows, []string{
			itoa(n.AttrInt("id")),
			n.AttrStr("name"),
			n.AttrStr("author"),
			orDash(n.AttrStr("description")),
		})
	}
	fmt.Print(ui.Table([]string{"ID", "Name", "Author", "Description"}, rows))
	return nil
}

// ListEggs prints the eggs of one nest.
func ListEggs(ctx context.Context, nestID int64) error {
	client, _, err := newPanelClient()
	if err != nil {
		return err
	}
	defer client.Close()
	return listEggs(ctx, client, nestID)
}

func listEggs(ctx context.Context, client *ptero.Client, nestID int64) error {
	eggs, err := client.ListEggs(ctx, nestID)
	if err != nil {
		return err
	}
	fmt.Println(ui.TitleStyle.Render(fmt.Sprintf("Eggs of nest %d (%d)", nestID, len(eggs))))
	fmt.Print(ui.Table([]string{"ID", "Name", "Author"}, eggRows(eggs)))
	return nil
}

// ListAllEggs prints every egg across every nest.
func ListAllEggs(ctx context.Context) error {
	client, _, err := newPanelClient()
	if err != nil {
		return err
	}
	defer client.Close()
	return listAllEggs(ctx, client)
}

func listAllEggs(ctx context.Context, client *ptero.Client) error {
	eggs, err := client.ListAllEggs(ctx)
	if err != nil {
		return err
	}
	fmt.Println(ui.TitleStyle.Render(fmt.Sprintf("Eggs (%d)", len(eggs))))
	fmt.Print(ui.Table([]string{"ID", "Name", "Author"}, eggRows(eggs)))
	return nil
}

// ShowEgg prints one egg with its images and variables.
func ShowEgg(ctx context.Context, nestID, eggID int64) error {
	client, _, err := newPanelClient()
	if err != nil {
		return err
	}
	defer client.Close()
	return showEgg(ctx, client, nestID, eggID)
}

func showEgg(ctx context.Context, client *ptero.Client, nestID, eggID int64) error {
	egg, err := client.GetEgg(ctx, nestID, eggID)
	if err != nil {
		return err
	}

	fmt.Println(ui.TitleStyle.Render(egg.AttrStr("name")))
	pairs := [][2]string{
		{"ID", itoa(egg.AttrInt("id"))},
		{"Nest", itoa(egg.Int("attributes.nest"))},
		{"Author", egg.AttrStr("author")},
		{"Description", orDash(egg.AttrStr("description"))},
		{"Startup", egg.AttrStr("startup")},
	}
	fmt.Print(ui.KeyValues(pairs))

	images := egg.StrMap("attributes.docker_images")
	if len(images) > 0 {
		labels := make([]string, 0, len(images))
		for label := range images {
			labels = append(labels, label)
		}
		sort.Strings(labels)

		fmt.Println(ui.SectionStyle.Render("  Images"))
		rows := make([][]string, 0, len(labels))
		for _, label := range labels {
			rows = append(rows, []string{label, images[label]})
		}
		fmt.Print(ui.Table([]string{"Label", "Image"}, rows))
	}

	variables := egg.Array("attributes.relationships.variables.data")
	if len(variables) > 0 {
		fmt.Println(ui.SectionStyle.Render("  Variables"))
		rows := make([][]string, 0, len(variables))
		for _, v := range variables {
			rows = append(rows, []string{
				v.AttrStr("env_variable"),
				orDash(v.AttrStr("default_value")),
				v.AttrStr("name"),
			})
		}
		fmt.Print(ui.Table([]string{"Variable", "Default", "Name"}, rows))
	}

	return nil
}

func eggRows(eggs []ptero.Document) [][]string {
	rows := make([][]string, 0, len(eggs))
	for _, e := range eggs {
		rows = append(rows, []string{
			itoa(e.AttrInt("id")),
			e.AttrStr("name"),
			e.AttrStr("author"),
		})
	}
	return rows
}
