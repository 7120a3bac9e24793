// Package panel provides a Bubble Tea terminal panel for live server
// management: usage stats, power signals and reinstalls.
package panel

import "github.com/zerioak/pteroctl/internal/ptero"

// StatsMsg carries a fresh resource snapshot from the control API.
type StatsMsg struct {
	Stats Stats
	Err   error
}

// ActionMsg reports the outcome of a power or reinstall action.
type ActionMsg struct {
	Action string
	Err    error
}

// TickMsg advances the spinner and schedules the next poll.
type TickMsg struct{}

// Stats is the parsed resource snapshot of one server.
type Stats struct {
	State        string
	MemoryBytes  int64
	MemoryLimit  int64
	CPUPercent   float64
	DiskBytes    int64
	NetworkRx    int64
	NetworkTx    int64
	UptimeMillis int64
	Suspended    bool
}

// ParseStats extracts a usage snapshot from a control API resources
// response. Absent counters read as zero.
func ParseStats(doc ptero.Document) Stats {
	return Stats{
		State:        doc.AttrStr("current_state"),
		MemoryBytes:  doc.Int("attributes.resources.memory_bytes"),
		MemoryLimit:  doc.Int("attributes.resources.memory_limit_bytes"),
		CPUPercent:   doc.Float("attributes.resources.cpu_absolute"),
		DiskBytes:    doc.Int("attributes.resources.disk_bytes"),
		NetworkRx:    doc.Int("attributes.resources.network_rx_bytes"),
		NetworkTx:    doc.Int("attributes.resources.network_tx_bytes"),
		UptimeMillis: doc.Int("attributes.resources.uptime"),
		Suspended:    doc.Bool("attributes.is_suspended"),
	}
}
