package tui

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

var (
	orange = lipgloss.AdaptiveColor{Light: "#D9480F", Dark: "#FF8C42"}
	blue   = lipgloss.AdaptiveColor{Light: "#1C7ED6", Dark: "#4DABF7"}
)

// NewHuhTheme returns the orange/blue form theme used by interactive
// commands.
func NewHuhTheme() *huh.Theme {
	t := huh.ThemeCharm()

	t.Focused.Base = t.Focused.Base.BorderForeground(orange)
	t.Focused.Title = t.Focused.Title.Foreground(orange).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(lipgloss.Color("#888888"))
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(blue)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(blue)

	t.Blurred.Title = t.Blurred.Title.Foreground(lipgloss.Color("#888888"))

	return t
}
