package handlers

import (
	"context"
	"fmt"

	"github.com/zerioak/pteroctl/internal/ptero"
	"github.com/zerioak/pteroctl/internal/ui"
)

// NodeOptions carries the node create and update flags. On update,
// zero-valued fields keep the node's current values.
type NodeOptions struct {
	Name       string
	LocationID int64
	FQDN       string
	Scheme     string
	Memory     int64
	Disk       int64
	SftpPort   int64
	DaemonPort int64
}

// ListNodes prints every daemon node.
func ListNodes(ctx context.Context) error {
	client, _, err := newPanelClient()
	if err != nil {
		return err
	}
	defer client.Close()
	return listNodes(ctx, client)
}

func listNodes(ctx context.Context, client *ptero.Client) error {
	nodes, err := client.ListNodes(ctx)
	if err != nil {
		return err
	}

	fmt.Println(ui.TitleStyle.Render(fmt.Sprintf("Nodes (%d)", len(nodes))))
	rows := make([][]string, 0, len(nodes))
	for _, n := range nodes {
		rows = append(rows, []string{
			itoa(n.AttrInt("id")),
			n.AttrStr("name"),
			n.AttrStr("fqdn"),
			ui.FormatMB(n.Int("attributes.memory")),
			ui.FormatMB(n.Int("attributes.disk")),
			yesNo(n.Bool("attributes.maintenance_mode")),
		})
	}
	fmt.Print(ui.Table([]string{"ID", "Name", "FQDN", "Memory", "Disk", "Maintenance"}, rows))
	return nil
}

// ShowNode prints one node.
func ShowNode(ctx context.Context, id int64) error {
	client, _, err := newPanelClient()
	if err != nil {
		return err
	}
	defer client.Close()
	return showNode(ctx, client, id)
}

func showNode(ctx context.Context, client *ptero.Client, id int64) error {
	n, err := client.GetNode(ctx, id)
	if err != nil {
		return err
	}

	fmt.Println(ui.TitleStyle.Render(n.AttrStr("name")))
	pairs := [][2]string{
		{"ID", itoa(n.AttrInt("id"))},
		{"FQDN", n.AttrStr("fqdn")},
		{"Scheme", n.AttrStr("scheme")},
		{"Location", itoa(n.Int("attributes.location_id"))},
		{"Memory", ui.FormatMB(n.Int("attributes.memory"))},
		{"Disk", ui.FormatMB(n.Int("attributes.disk"))},
		{"Daemon port", itoa(n.Int("attributes.daemon_listen"))},
		{"SFTP port", itoa(n.Int("attributes.daemon_sftp"))},
		{"Maintenance", yesNo(n.Bool("attributes.maintenance_mode"))},
		{"Public", yesNo(n.Bool("attributes.public"))},
	}
	fmt.Print(ui.KeyValues(pairs))
	return nil
}

// CreateNode registers a new daemon node under a location.
func CreateNode(ctx context.Context, name string, opts NodeOptions) error {
	client, _, err := newPanelClient()
	if err != nil {
		return err
	}
	defer client.Close()
	return createNode(ctx, client, name, opts)
}

func createNode(ctx context.Context, client *ptero.Client, name string, opts NodeOptions) error {
	payload := map[string]any{
		"name":                name,
		"location_id":         opts.LocationID,
		"fqdn":                opts.FQDN,
		"scheme":              opts.Scheme,
		"memory":              opts.Memory,
		"memory_overallocate": 0,
		"disk":                opts.Disk,
		"disk_overallocate":   0,
		"daemonSftp":          opts.SftpPort,
		"daemonListen":        opts.DaemonPort,
	}

	n, err := client.CreateNode(ctx, payload)
	if err != nil {
		return err
	}
	fmt.Printf("%s node %s created with id %d\n",
		ui.ReadyStyle.Render(ui.CheckMark), n.AttrStr("name"), n.AttrInt("id"))
	return nil
}

// UpdateNode updates a daemon node, keeping unset fields.
func UpdateNode(ctx context.Context, id int64, opts NodeOptions) error {
	client, _, err := newPanelClient()
	if err != nil {
		return err
	}
	defer client.Close()
	return updateNode(ctx, client, id, opts)
}

func updateNode(ctx context.Context, client *ptero.Client, id int64, opts NodeOptions) error {
	n, err := client.GetNode(ctx, id)
	if err != nil {
		return err
	}

	pickStr := func(flag, current string) string {
		if flag != "" {
			return flag
		}
		return current
	}
	pickInt := func(flag, current int64) int64 {
		if flag > 0 {
			return flag
		}
		return current
	}

	payload := map[string]any{
		"name":                pickStr(opts.Name, n.AttrStr("name")),
		"location_id":         n.Int("attributes.location_id"),
		"fqdn":                pickStr(opts.FQDN, n.AttrStr("fqdn")),
		"scheme":              pickStr(opts.Scheme, n.AttrStr("scheme")),
		"memory":              pickInt(opts.Memory, n.Int("attributes.memory")),
		"memory_overallocate": n.Int("attributes.memory_overallocate"),
		"disk":                pickInt(opts.Disk, n.Int("attributes.disk")),
		"disk_overallocate":   n.Int("attributes.disk_overallocate"),
		"daemonSftp":          n.Int("attributes.daemon_sftp"),
		"daemonListen":        n.Int("attributes.daemon_listen"),
	}

	if _, err := client.UpdateNode(ctx, id, payload); err != nil {
		return err
	}
	fmt.Printf("%s node %d updated\n", ui.ReadyStyle.Render(ui.CheckMark), id)
	return nil
}

// DeleteNode removes a node. The panel rejects the call while servers
// still live on it, so no extra guard is needed here beyond the prompt.
func DeleteNode(ctx context.Context, id int64) error {
	client, _, err := newPanelClient()
	if err != nil {
		return err
	}
	defer client.Close()

	ok, err := confirmDestructive(ctx, fmt.Sprintf("Delete node %d?", id))
	if err != nil || !ok {
		return err
	}

	if err := client.DeleteNode(ctx, id); err != nil {
		return err
	}
	fmt.Printf("%s node %d deleted\n", ui.ReadyStyle.Render(ui.CheckMark), id)
	return nil
}

// NodeAllocations lists a node's port allocations, optionally only
// the unassigned ones.
func NodeAllocations(ctx context.Context, nodeID int64, freeOnly bool) error {
	client, _, err := newPanelClient()
	if err != nil {
		return err
	}
	defer client.Close()
	return nodeAllocations(ctx, client, nodeID, freeOnly)
}

func nodeAllocations(ctx context.Context, client *ptero.Client, nodeID int64, freeOnly bool) error {
	allocs, err := client.ListAllocations(ctx, nodeID)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(allocs))
	for _, a := range allocs {
		assigned := a.Bool("attributes.assigned")
		if freeOnly && assigned {
			continue
		}
		rows = append(rows, []string{
			itoa(a.AttrInt("id")),
			a.AttrStr("ip"),
			itoa(a.Int("attributes.port")),
			orDash(a.AttrStr("alias")),
			yesNo(assigned),
		})
	}

	fmt.Println(ui.TitleStyle.Render(fmt.Sprintf("Allocations of node %d (%d)", nodeID, len(rows))))
	fmt.Print(ui.Table([]string{"ID", "IP", "Port", "Alias", "Assigned"}, rows))
	return nil
}

// AddAllocations creates port allocations on a node.
func AddAllocations(ctx context.Context, nodeID int64, ip string, ports []string) error {
	client, _, err := newPanelClient()
	if err != nil {
		return err
	}
	defer client.Close()

	if err := client.CreateAllocations(ctx, nodeID, ip, ports); err != nil {
		return err
	}
	fmt.Printf("%s added %d port spec(s) on %s to node %d\n",
		ui.ReadyStyle.Render(ui.CheckMark), len(ports), ip, nodeID)
	return nil
}

// DeleteAllocation removes an unassigned allocation from a node.
func DeleteAllocation(ctx context.Context, nodeID, allocationID int64) error {
	client, _, err := newPanelClient()
	if err != nil {
		return err
	}
	defer client.Close()

	ok, err := confirmDestructive(ctx, fmt.Sprintf("Delete allocation %d from node %d?", allocationID, nodeID))
	if err != nil || !ok {
		return err
	}

	if err := client.DeleteAllocation(ctx, nodeID, allocationID); err != nil {
		return err
	}
	fmt.Printf("%s allocation %d removed from node %d\n",
		ui.ReadyStyle.Render(ui.CheckMark), allocationID, nodeID)
	return nil
}
