// Package style provides consistent terminal styling for mlr output
// using Lipgloss.
package style

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	// Header style for section headings (user / group names)
	Header = lipgloss.NewStyle().
		Foreground(lipgloss.Color("14")). // Cyan
		Bold(true)

	// Success style for completed operations
	Success = lipgloss.NewStyle().
		Foreground(lipgloss.Color("10")). // Green
		Bold(true)

	// Warning style for notices about degraded group metadata
	Warning = lipgloss.NewStyle().
		Foreground(lipgloss.Color("11")). // Yellow
		Bold(true)

	// Error style for failures
	Error = lipgloss.NewStyle().
		Foreground(lipgloss.Color("9")). // Red
		Bold(true)

	// Dim style for secondary detail (paths, sources)
	Dim = lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")) // Gray

	// Bold style for emphasis
	Bold = lipgloss.NewStyle().
		Bold(true)
)

// SetMode sets the color mode: "never" forces plain output, "always"
// forces color, "auto" leaves terminal detection alone. Must run
// before anything is rendered; lipgloss caches the detected profile
// on first render.
func SetMode(mode string) {
	switch mode {
	case "never":
		lipgloss.SetColorProfile(termenv.Ascii)
	case "always":
		lipgloss.SetColorProfile(termenv.ANSI256)
	}
}

// SuccessPrefix is the checkmark prefix for success messages.
func SuccessPrefix() string { return Success.Render("✓") }

// WarningPrefix is the warning prefix.
func WarningPrefix() string { return Warning.Render("⚠") }

// ErrorPrefix is the error prefix.
func ErrorPrefix() string { return Error.Render("✗") }
