package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Colors
	colorPrimary = lipgloss.Color("#7C3AED")
	colorSuccess = lipgloss.Color("#22C55E")
	colorWarning = lipgloss.Color("#F59E0B")
	colorDanger  = lipgloss.Color("#EF4444")
	colorMuted   = lipgloss.Color("#6B7280")
	colorBorder  = lipgloss.Color("#374151")

	styleHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(colorPrimary).
			Padding(0, 1)

	styleHelp = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(0, 1)

	styleStatus = lipgloss.NewStyle().
			Foreground(colorWarning).
			Padding(0, 1)

	styleError = lipgloss.NewStyle().
			Foreground(colorDanger).
			Bold(true)

	styleReady = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Bold(true)

	styleBlocked = lipgloss.NewStyle().
			Foreground(colorWarning).
			Bold(true)

	styleTableHeader = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#FFFFFF")).
				Background(colorPrimary).
				Padding(0, 1)

	styleTableRow = lipgloss.NewStyle().
			Padding(0, 1)

	styleTableRowSelected = lipgloss.NewStyle().
				Background(lipgloss.Color("#1F2937")).
				Foreground(lipgloss.Color("#FFFFFF")).
				Padding(0, 1)

	styleDetailBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	styleLabel = lipgloss.NewStyle().
			Foreground(colorMuted).
			Width(26)

	styleValue = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	styleStepDone = lipgloss.NewStyle().
			Foreground(colorSuccess)

	styleStepCurrent = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FFFFFF")).
				Background(colorPrimary).
				Bold(true)

	styleStepPending = lipgloss.NewStyle().
				Foreground(colorMuted)

	styleProgressFilled = lipgloss.NewStyle().
				Foreground(colorSuccess)

	styleProgressEmpty = lipgloss.NewStyle().
				Foreground(colorMuted)
)

func styleMuted() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorMuted)
}

// GateIcon marks whether an order may advance.
func GateIcon(canAdvance bool) string {
	if canAdvance {
		return styleReady.Render("●")
	}
	return styleBlocked.Render("◐")
}

// ProgressBar renders a compact progress bar for table rows.
func ProgressBar(percent, width int) string {
	percent = min(max(percent, 0), 100)

	filled := width * percent / 100
	return styleProgressFilled.Render(strings.Repeat("█", filled)) +
		styleProgressEmpty.Render(strings.Repeat("░", width-filled))
}
