package panel

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zerioak/pteroctl/internal/ptero"
)

type fakeController struct {
	stats     string
	statsErr  error
	powers    []ptero.PowerSignal
	powerErr  error
	reinstall int
}

func (f *fakeController) Resources(_ context.Context, _ string) (ptero.Document, error) {
	if f.statsErr != nil {
		return ptero.Document{}, f.statsErr
	}
	return ptero.ParseDocument([]byte(f.stats)), nil
}

func (f *fakeController) Power(_ context.Context, _ string, signal ptero.PowerSignal) error {
	f.powers = append(f.powers, signal)
	return f.powerErr
}

func (f *fakeController) Reinstall(_ context.Context, _ string) error {
	f.reinstall++
	return nil
}

const statsBody = `{
	"object": "stats",
	"attributes": {
		"current_state": "running",
		"is_suspended": false,
		"resources": {
			"memory_bytes": 536870912,
			"memory_limit_bytes": 1073741824,
			"cpu_absolute": 42.5,
			"disk_bytes": 2147483648,
			"network_rx_bytes": 1024,
			"network_tx_bytes": 4096,
			"uptime": 3661000
		}
	}
}`

func TestParseStats(t *testing.T) {
	s := ParseStats(ptero.ParseDocument([]byte(statsBody)))

	if s.State != "running" {
		t.Errorf("state = %q, want running", s.State)
	}
	if s.MemoryBytes != 536870912 {
		t.Errorf("memory = %d", s.MemoryBytes)
	}
	if s.CPUPercent != 42.5 {
		t.Errorf("cpu = %v", s.CPUPercent)
	}
	if s.Suspended {
		t.Error("expected not suspended")
	}
}

func TestParseStats_Empty(t *testing.T) {
	s := ParseStats(ptero.ParseDocument([]byte(`{}`)))
	if s.State != "" || s.MemoryBytes != 0 || s.CPUPercent != 0 {
		t.Errorf("expected zero stats, got %+v", s)
	}
}

func TestUpdate_Quit(t *testing.T) {
	m := New(context.Background(), &fakeController{stats: statsBody}, "mc", "d3aac109", "owner")

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if !updated.(Model).Done {
		t.Error("expected Done after q")
	}
	if cmd == nil {
		t.Error("expected quit command")
	}
}

func TestUpdate_PowerKeys(t *testing.T) {
	fake := &fakeController{stats: statsBody}
	m := New(context.Background(), fake, "mc", "d3aac109", "owner")

	keys := map[rune]ptero.PowerSignal{
		's': ptero.PowerStart,
		'x': ptero.PowerStop,
		'r': ptero.PowerRestart,
		'k': ptero.PowerKill,
	}
	for key, want := range keys {
		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{key}})
		if cmd == nil {
			t.Fatalf("key %q produced no command", key)
		}
		msg := cmd()
		action, ok := msg.(ActionMsg)
		if !ok {
			t.Fatalf("key %q produced %T, want ActionMsg", key, msg)
		}
		if action.Action != string(want) {
			t.Errorf("key %q sent %q, want %q", key, action.Action, want)
		}
	}

	if len(fake.powers) != 4 {
		t.Errorf("expected 4 power calls, got %d", len(fake.powers))
	}
}

func TestUpdate_ReinstallNeedsConfirmation(t *testing.T) {
	fake := &fakeController{stats: statsBody}
	m := New(context.Background(), fake, "mc", "d3aac109", "owner")

	// First press only arms the confirmation.
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'i'}})
	got := updated.(Model)
	if !got.ConfirmingReinstall {
		t.Fatal("expected pending confirmation after i")
	}
	if cmd != nil {
		t.Fatal("expected no command before confirmation")
	}
	if fake.reinstall != 0 {
		t.Fatalf("reinstall fired without confirmation, count %d", fake.reinstall)
	}

	updated, cmd = got.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}})
	got = updated.(Model)
	if got.ConfirmingReinstall {
		t.Error("confirmation should clear after y")
	}
	if cmd == nil {
		t.Fatal("expected reinstall command after y")
	}
	msg := cmd()
	action, ok := msg.(ActionMsg)
	if !ok || action.Action != "reinstall" {
		t.Fatalf("got %v, want reinstall ActionMsg", msg)
	}
	if fake.reinstall != 1 {
		t.Errorf("reinstall count = %d, want 1", fake.reinstall)
	}
}

func TestUpdate_ReinstallCancelled(t *testing.T) {
	fake := &fakeController{stats: statsBody}
	m := New(context.Background(), fake, "mc", "d3aac109", "owner")

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'i'}})
	updated, cmd := updated.(Model).Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	got := updated.(Model)

	if got.ConfirmingReinstall {
		t.Error("confirmation should clear on any other key")
	}
	if cmd != nil {
		t.Error("cancelling must not fire a command")
	}
	if fake.reinstall != 0 {
		t.Errorf("reinstall count = %d, want 0", fake.reinstall)
	}
}

func TestView_ReinstallConfirmation(t *testing.T) {
	m := New(context.Background(), &fakeController{}, "mc", "d3aac109", "owner")
	m.HaveData = true
	m.ConfirmingReinstall = true

	out := m.View()
	if !strings.Contains(out, "wipes ALL server files") {
		t.Error("view missing reinstall warning")
	}
}

func TestUpdate_StatsMsg(t *testing.T) {
	m := New(context.Background(), &fakeController{}, "mc", "d3aac109", "owner")

	updated, _ := m.Update(StatsMsg{Stats: Stats{State: "running", CPUPercent: 10}})
	got := updated.(Model)
	if !got.HaveData {
		t.Error("expected HaveData after stats")
	}
	if got.Stats.State != "running" {
		t.Errorf("state = %q", got.Stats.State)
	}
}

func TestUpdate_APIErrorQuits(t *testing.T) {
	m := New(context.Background(), &fakeController{}, "mc", "d3aac109", "owner")

	updated, cmd := m.Update(StatsMsg{Err: &ptero.APIError{Status: 404, Message: "not found"}})
	got := updated.(Model)
	if got.Err == nil {
		t.Error("expected terminal error")
	}
	if cmd == nil {
		t.Error("expected quit command")
	}
}

func TestUpdate_TransportErrorKeepsRunning(t *testing.T) {
	m := New(context.Background(), &fakeController{}, "mc", "d3aac109", "owner")

	updated, cmd := m.Update(StatsMsg{Err: &ptero.TransportError{Err: errors.New("timeout")}})
	got := updated.(Model)
	if got.Err != nil {
		t.Error("transport error should not be terminal")
	}
	if cmd != nil {
		t.Error("expected no command")
	}
}

func TestView_ContainsStats(t *testing.T) {
	m := New(context.Background(), &fakeController{}, "mc", "d3aac109", "admin")
	m.HaveData = true
	m.Stats = Stats{
		State:        "running",
		MemoryBytes:  536870912,
		MemoryLimit:  1073741824,
		CPUPercent:   42.5,
		DiskBytes:    2147483648,
		UptimeMillis: 3661000,
	}

	out := m.View()
	for _, want := range []string{"mc", "d3aac109", "admin", "42.5%", "512.0 MiB", "1.0 GiB", "1h1m", "q: quit"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestView_Fetching(t *testing.T) {
	m := New(context.Background(), &fakeController{}, "mc", "d3aac109", "owner")
	out := m.View()
	if !strings.Contains(out, "fetching stats") {
		t.Error("expected fetching placeholder before first snapshot")
	}
}

func TestFormatUptime(t *testing.T) {
	tests := []struct {
		millis int64
		want   string
	}{
		{30000, "30s"},
		{90000, "1m30s"},
		{3661000, "1h1m"},
	}
	for _, tt := range tests {
		if got := formatUptime(tt.millis); got != tt.want {
			t.Errorf("formatUptime(%d) = %q, want %q", tt.millis, got, tt.want)
		}
	}
}

func TestFetchCmd(t *testing.T) {
	fake := &fakeController{stats: statsBody}
	m := New(context.Background(), fake, "mc", "d3aac109", "owner")

	msg := m.fetchCmd()()
	stats, ok := msg.(StatsMsg)
	if !ok {
		t.Fatalf("got %T, want StatsMsg", msg)
	}
	if stats.Err != nil {
		t.Fatalf("unexpected error: %v", stats.Err)
	}
	if stats.Stats.State != "running" {
		t.Errorf("state = %q", stats.Stats.State)
	}
}

func TestTickSchedulesPoll(t *testing.T) {
	m := New(context.Background(), &fakeController{stats: statsBody}, "mc", "d3aac109", "owner")
	m.SpinnerFrame = int(pollInterval/time.Second) - 1

	_, cmd := m.Update(TickMsg{})
	if cmd == nil {
		t.Fatal("expected batched commands on tick")
	}
}
