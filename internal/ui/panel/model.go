package panel

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zerioak/pteroctl/internal/ptero"
)

const pollInterval = 5 * time.Second

// Controller is the slice of the control API the panel drives.
// *ptero.ControlClient satisfies it.
type Controller interface {
	Resources(ctx context.Context, identifier string) (ptero.Document, error)
	Power(ctx context.Context, identifier string, signal ptero.PowerSignal) error
	Reinstall(ctx context.Context, identifier string) error
}

// Model is the Bubble Tea model for the live management panel.
type Model struct {
	// Server identity
	Name       string
	Identifier string
	Mode       string

	// Latest snapshot
	Stats    Stats
	HaveData bool

	// Last action feedback
	LastAction string
	ActionErr  error

	// Reinstall wipes the server's files, so it takes a second key.
	ConfirmingReinstall bool

	// Animation
	SpinnerFrame int

	// UI state
	Width  int
	Height int
	Err    error
	Done   bool

	control Controller
	ctx     context.Context
}

// New creates a panel model for one server. The context bounds every
// control API call the panel issues.
func New(ctx context.Context, control Controller, name, identifier, mode string) Model {
	return Model{
		Name:       name,
		Identifier: identifier,
		Mode:       mode,
		control:    control,
		ctx:        ctx,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.fetchCmd(), tickCmd())
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.ConfirmingReinstall {
			m.ConfirmingReinstall = false
			switch msg.String() {
			case "y":
				return m, m.reinstallCmd()
			case "q", "ctrl+c":
				m.Done = true
				return m, tea.Quit
			}
			return m, nil
		}

		switch msg.String() {
		case "q", "ctrl+c":
			m.Done = true
			return m, tea.Quit
		case "s":
			return m, m.powerCmd(ptero.PowerStart)
		case "x":
			return m, m.powerCmd(ptero.PowerStop)
		case "r":
			return m, m.powerCmd(ptero.PowerRestart)
		case "k":
			return m, m.powerCmd(ptero.PowerKill)
		case "i":
			m.ConfirmingReinstall = true
			return m, nil
		case "f":
			return m, m.fetchCmd()
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

	case StatsMsg:
		if msg.Err != nil {
			if _, ok := ptero.IsAPIError(msg.Err); ok {
				m.Err = msg.Err
				return m, tea.Quit
			}
			// Transient transport failures keep the panel alive.
			m.ActionErr = msg.Err
			return m, nil
		}
		m.Stats = msg.Stats
		m.HaveData = true
		m.ActionErr = nil

	case ActionMsg:
		m.LastAction = msg.Action
		m.ActionErr = msg.Err
		if msg.Err == nil {
			return m, m.fetchCmd()
		}

	case TickMsg:
		m.SpinnerFrame++
		cmds := []tea.Cmd{tickCmd()}
		if m.SpinnerFrame%int(pollInterval/time.Second) == 0 {
			cmds = append(cmds, m.fetchCmd())
		}
		return m, tea.Batch(cmds...)
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	return renderView(m)
}

func (m Model) fetchCmd() tea.Cmd {
	return func() tea.Msg {
		doc, err := m.control.Resources(m.ctx, m.Identifier)
		if err != nil {
			return StatsMsg{Err: err}
		}
		return StatsMsg{Stats: ParseStats(doc)}
	}
}

func (m Model) powerCmd(signal ptero.PowerSignal) tea.Cmd {
	return func() tea.Msg {
		return ActionMsg{Action: string(signal), Err: m.control.Power(m.ctx, m.Identifier, signal)}
	}
}

func (m Model) reinstallCmd() tea.Cmd {
	return func() tea.Msg {
		return ActionMsg{Action: "reinstall", Err: m.control.Reinstall(m.ctx, m.Identifier)}
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}
