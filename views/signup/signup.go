package signup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"kryptoart-tui/styles"
)

// Render wraps the sign-up form with the screen's framing.
func Render(w int, formView, errMsg string) string {
	title := styles.TitleStyle.Render("Create Account")
	subtitle := lipgloss.NewStyle().
		Foreground(styles.CMuted).
		Render("Join the marketplace in seconds")

	content := title + "\n" + subtitle + "\n\n" + formView
	if errMsg != "" {
		content += "\n" + lipgloss.NewStyle().Foreground(styles.CWarn).Bold(true).Render(errMsg)
	}
	return content
}

// Nav returns the navigation bar for the sign-up view
func Nav(width int) string {
	left := strings.Join([]string{
		styles.Key("Enter") + " create account",
		styles.Key("Esc") + " back to sign in",
		styles.Key("Ctrl+c") + " quit",
	}, "   ")
	return styles.NavStyle.Width(width).Render(left)
}
