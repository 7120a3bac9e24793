// Package ui provides shared terminal rendering helpers for the CLI.
package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var (
	// Colors
	colorGreen  = lipgloss.Color("#22c55e")
	colorRed    = lipgloss.Color("#ef4444")
	colorYellow = lipgloss.Color("#eab308")
	colorBlue   = lipgloss.Color("#3b82f6")
	colorDim    = lipgloss.Color("#6b7280")
	colorWhite  = lipgloss.Color("#f9fafb")

	// Styles
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite)

	SectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorBlue)

	ReadyStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	FailedStyle = lipgloss.NewStyle().
			Foreground(colorRed)

	WarningStyle = lipgloss.NewStyle().
			Foreground(colorYellow)

	DimStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	ActiveStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Bold(true)
)

const (
	CheckMark = "[OK]"
	CrossMark = "[!!]"
	WarnMark  = "[??]"
)

// Interactive reports whether stdout is attached to a terminal.
// Wizard forms and the live panel require an interactive session.
func Interactive() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}
