package profile

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"kryptoart-tui/helpers"
	"kryptoart-tui/indexer"
	"kryptoart-tui/market"
	"kryptoart-tui/styles"
)

// Render draws the profile screen: identity, collection stats, the NFTs the
// user owns in this session, and any on-chain tokens the indexer found.
func Render(name string, balance float64, owned []market.Item, likedCount int, tokens []indexer.Token, indexing bool, spin string, indexerOn bool) string {
	title := styles.TitleStyle.Render("Profile")

	avatar := lipgloss.NewStyle().Foreground(styles.CAccent2).Bold(true).Render("◉ ") +
		lipgloss.NewStyle().Foreground(styles.CText).Bold(true).Render(name)

	stats := lipgloss.JoinHorizontal(lipgloss.Top,
		statBox(fmt.Sprintf("%d", len(owned)), "Owned"),
		statBox(fmt.Sprintf("%d", likedCount), "Liked"),
		statBox(helpers.FormatAmount(balance), "Balance"),
	)

	var rows []string
	rows = append(rows, lipgloss.NewStyle().Foreground(styles.CText).Bold(true).Render("My Collection"))
	if len(owned) == 0 {
		rows = append(rows, lipgloss.NewStyle().Foreground(styles.CMuted).Render("Nothing here yet. Mint or buy your first NFT."))
	}
	for _, it := range owned {
		rows = append(rows, "  "+lipgloss.NewStyle().Foreground(styles.CText).Render(helpers.Truncate(it.Title, 30))+
			lipgloss.NewStyle().Foreground(styles.CMuted).Render("  "+it.Price+" ETH"))
	}

	rows = append(rows, "", lipgloss.NewStyle().Foreground(styles.CText).Bold(true).Render("On-chain"))
	switch {
	case !indexerOn:
		rows = append(rows, lipgloss.NewStyle().Foreground(styles.CMuted).
			Render("Set ALCHEMY_API_KEY to index NFTs owned by your wallet address."))
	case indexing:
		rows = append(rows, spin+" indexing wallet…")
	case len(tokens) == 0:
		rows = append(rows, lipgloss.NewStyle().Foreground(styles.CMuted).Render("No on-chain NFTs found."))
	default:
		for _, t := range tokens {
			rows = append(rows, "  "+lipgloss.NewStyle().Foreground(styles.CText).Render(helpers.Truncate(t.Name, 30))+
				lipgloss.NewStyle().Foreground(styles.CMuted).Render("  "+helpers.ShortenAddr(t.ContractAddress)))
		}
	}

	return title + "\n\n" + avatar + "\n\n" + stats + "\n\n" + strings.Join(rows, "\n")
}

func statBox(value, label string) string {
	return lipgloss.NewStyle().Padding(0, 2).Render(
		lipgloss.NewStyle().Foreground(styles.CAccent).Bold(true).Render(value) + "\n" +
			lipgloss.NewStyle().Foreground(styles.CMuted).Render(label),
	)
}

// Nav returns the navigation bar for the profile view
func Nav(width int) string {
	left := strings.Join([]string{
		styles.Key("i") + " re-index wallet",
		styles.Key("o") + " sign out",
		styles.Key("1-5") + " tabs",
		styles.Key("Ctrl+c") + " quit",
	}, "   ")
	return styles.NavStyle.Width(width).Render(left)
}
