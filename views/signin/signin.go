package signin

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"kryptoart-tui/styles"
)

// Render wraps the sign-in form with the screen's framing. The form itself is
// owned by the root model.
func Render(w int, formView, errMsg string) string {
	title := styles.TitleStyle.Render("Welcome Back")
	subtitle := lipgloss.NewStyle().
		Foreground(styles.CMuted).
		Render("Sign in to continue your journey")

	content := title + "\n" + subtitle + "\n\n" + formView
	if errMsg != "" {
		content += "\n" + lipgloss.NewStyle().Foreground(styles.CWarn).Bold(true).Render(errMsg)
	}
	social := lipgloss.NewStyle().Foreground(styles.CMuted).
		Render("─ or continue with Google · Apple (not available here)")
	return content + "\n\n" + social
}

// Nav returns the navigation bar for the sign-in view
func Nav(width int) string {
	left := strings.Join([]string{
		styles.Key("Enter") + " sign in",
		styles.Key("Ctrl+u") + " create account",
		styles.Key("Ctrl+c") + " quit",
	}, "   ")
	return styles.NavStyle.Width(width).Render(left)
}
