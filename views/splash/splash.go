package splash

import (
	"github.com/charmbracelet/lipgloss"

	"kryptoart-tui/helpers"
	"kryptoart-tui/styles"
)

// Render draws the centered splash logo while the boot timer runs.
func Render(w, h int, spin string) string {
	logo := lipgloss.NewStyle().Bold(true).Render(
		helpers.FadeString("K R Y P T O A R T", "#22D3EE", "#C084FC"),
	)
	tagline := lipgloss.NewStyle().
		Foreground(styles.CMuted).
		Render("Create · Collect · Contribute")
	loading := lipgloss.NewStyle().
		Foreground(styles.CAccent).
		Render(spin + " loading")

	content := lipgloss.JoinVertical(lipgloss.Center, logo, "", tagline, "", loading)
	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, content)
}
