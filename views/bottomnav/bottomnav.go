// Package bottomnav renders the persistent chrome shown on the main app
// screens. Visibility is decided by the controller, never here.
package bottomnav

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"kryptoart-tui/session"
	"kryptoart-tui/styles"
)

type entry struct {
	screen session.Screen
	key    string
	label  string
}

var entries = []entry{
	{session.ScreenHome, "1", "Home"},
	{session.ScreenMarketplace, "2", "Market"},
	{session.ScreenWallet, "3", "Wallet"},
	{session.ScreenProjects, "4", "Projects"},
	{session.ScreenProfile, "5", "Profile"},
}

// Render draws the bottom navigation bar with the active screen highlighted.
func Render(width int, active session.Screen) string {
	var cells []string
	for _, e := range entries {
		label := styles.Key(e.key) + " " + e.label
		if e.screen == active {
			label = lipgloss.NewStyle().
				Foreground(styles.CAccent2).
				Bold(true).
				Underline(true).
				Render(e.key + " " + e.label)
		}
		cells = append(cells, label)
	}
	return styles.NavStyle.Width(width).Render(strings.Join(cells, "   "))
}

// Target maps a chrome hotkey to its screen.
func Target(key string) (session.Screen, bool) {
	for _, e := range entries {
		if e.key == key {
			return e.screen, true
		}
	}
	return 0, false
}
