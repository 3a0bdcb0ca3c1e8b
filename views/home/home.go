package home

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"kryptoart-tui/helpers"
	"kryptoart-tui/market"
	"kryptoart-tui/styles"
)

// Render draws the home screen: greeting, balance card and featured items.
func Render(userName string, balance float64, ownedCount int, featured []market.Item, selectedIdx int) string {
	greeting := styles.TitleStyle.Render("Welcome back, " + userName)
	subtitle := lipgloss.NewStyle().
		Foreground(styles.CMuted).
		Render("Discover, create and collect digital art")

	balanceCard := lipgloss.NewStyle().
		Foreground(styles.CAccent).
		Bold(true).
		Render(helpers.FormatAmount(balance)) +
		lipgloss.NewStyle().Foreground(styles.CMuted).Render("  ·  ") +
		lipgloss.NewStyle().Foreground(styles.CText).Render(fmt.Sprintf("%d NFTs owned", ownedCount))

	header := greeting + "\n" + subtitle + "\n\n" + balanceCard

	section := lipgloss.NewStyle().Foreground(styles.CText).Bold(true).Render("Featured")
	var rows []string
	for i, it := range featured {
		marker := "  "
		style := lipgloss.NewStyle().Foreground(styles.CText)
		if i == selectedIdx {
			marker = lipgloss.NewStyle().Foreground(styles.CAccent2).Bold(true).Render("▶ ")
			style = lipgloss.NewStyle().Foreground(styles.CAccent2).Bold(true)
		}
		line := marker + style.Render(helpers.Truncate(it.Title, 28)) +
			lipgloss.NewStyle().Foreground(styles.CMuted).Render(
				fmt.Sprintf("  by %s · %s ETH", it.Creator, it.Price))
		rows = append(rows, line)
	}
	if len(rows) == 0 {
		rows = append(rows, lipgloss.NewStyle().Foreground(styles.CMuted).Render("Nothing featured right now."))
	}

	return header + "\n\n" + section + "\n\n" + strings.Join(rows, "\n")
}

// Nav returns the navigation bar for the home view
func Nav(width int) string {
	left := strings.Join([]string{
		styles.Key("↑/↓") + " move",
		styles.Key("Enter") + " open",
		styles.Key("c") + " create NFT",
		styles.Key("L") + " like",
		styles.Key("1-5") + " tabs",
		styles.Key("g") + " debug log",
		styles.Key("Ctrl+c") + " quit",
	}, "   ")
	return styles.NavStyle.Width(width).Render(left)
}
