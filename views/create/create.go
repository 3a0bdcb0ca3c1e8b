package create

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"kryptoart-tui/styles"
)

// Render wraps the creation form. The huh form is owned by the root model;
// this view only frames it.
func Render(formView string, uploading bool, spin string) string {
	title := styles.TitleStyle.Render("Create New NFT")
	subtitle := lipgloss.NewStyle().
		Foreground(styles.CMuted).
		Render("Describe your artwork; you will confirm before minting")

	content := title + "\n" + subtitle + "\n\n" + formView
	if uploading {
		content += "\n" + lipgloss.NewStyle().Foreground(styles.CAccent).Render(spin+" pinning asset…")
	}
	return content
}

// Nav returns the navigation bar for the create view
func Nav(width int) string {
	left := strings.Join([]string{
		styles.Key("Enter") + " next field",
		styles.Key("Esc") + " back home",
		styles.Key("Ctrl+c") + " quit",
	}, "   ")
	return styles.NavStyle.Width(width).Render(left)
}
