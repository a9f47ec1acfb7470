// ABOUTME: Shared lipgloss styles for terminal output.
// ABOUTME: Styles collapse to plain text when color is disabled.
package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	ColorPrimary = lipgloss.Color("#64b5f6")
	ColorUp      = lipgloss.Color("#ffb74d")
	ColorDown    = lipgloss.Color("#4dd0e1")
	ColorMuted   = lipgloss.Color("#888888")
)

var (
	StyleHeader = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	StyleUp     = lipgloss.NewStyle().Foreground(ColorUp)
	StyleDown   = lipgloss.NewStyle().Foreground(ColorDown)
	StyleMuted  = lipgloss.NewStyle().Foreground(ColorMuted)
	StyleLabel  = lipgloss.NewStyle().Width(18)
	StyleValue  = lipgloss.NewStyle().Bold(true)
)

// SetNoColor replaces every style with an unstyled renderer.
func SetNoColor(disabled bool) {
	if !disabled {
		return
	}
	plain := lipgloss.NewStyle()
	StyleHeader = plain
	StyleUp = plain
	StyleDown = plain
	StyleMuted = plain
	StyleLabel = plain.Width(18)
	StyleValue = plain
}

// Section renders a header with a rule under it.
func Section(title string) string {
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(title), StyleMuted.Render(strings.Repeat("─", 40)))
}

// Metric renders a label/value line.
func Metric(label, value string) string {
	return StyleLabel.Render(label) + StyleValue.Render(value)
}

// Change renders a signed weight delta with a direction arrow.
// Weight change is neither good nor bad, so up and down only differ in hue.
func Change(delta float64) string {
	switch {
	case delta > 0:
		return StyleUp.Render(fmt.Sprintf("▲ +%.1f", delta))
	case delta < 0:
		return StyleDown.Render(fmt.Sprintf("▼ %.1f", delta))
	default:
		return StyleMuted.Render("─ 0.0")
	}
}
