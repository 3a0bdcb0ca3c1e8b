package marketplace

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"kryptoart-tui/helpers"
	"kryptoart-tui/market"
	"kryptoart-tui/styles"
)

// Tab selects which listing the marketplace shows.
type Tab int

const (
	TabTrending Tab = iota
	TabNew
	TabMyNFTs
)

func (t Tab) String() string {
	switch t {
	case TabNew:
		return "New"
	case TabMyNFTs:
		return "My NFTs"
	default:
		return "Trending"
	}
}

// Render draws the marketplace: tabs, search, price filter and the listing.
func Render(items []market.Item, tab Tab, query string, band market.PriceBand, selectedIdx int, liked func(string) bool, searching bool) string {
	title := styles.TitleStyle.Render("Marketplace")

	var tabs []string
	for _, t := range []Tab{TabTrending, TabNew, TabMyNFTs} {
		if t == tab {
			tabs = append(tabs, lipgloss.NewStyle().Foreground(styles.CAccent2).Bold(true).Underline(true).Render(t.String()))
		} else {
			tabs = append(tabs, lipgloss.NewStyle().Foreground(styles.CMuted).Render(t.String()))
		}
	}
	tabBar := strings.Join(tabs, "   ")

	searchLabel := lipgloss.NewStyle().Foreground(styles.CMuted).Render("Search: ")
	searchBox := lipgloss.NewStyle().Foreground(styles.CText).Render(query)
	if searching {
		searchBox += lipgloss.NewStyle().Foreground(styles.CAccent).Render("▌")
	} else if query == "" {
		searchBox = lipgloss.NewStyle().Foreground(styles.CMuted).Render("press / to search")
	}
	filterLabel := lipgloss.NewStyle().Foreground(styles.CMuted).Render("   Price: ") +
		lipgloss.NewStyle().Foreground(styles.CAccent).Render(band.String())

	var rows []string
	for i, it := range items {
		marker := "  "
		style := lipgloss.NewStyle().Foreground(styles.CText)
		if i == selectedIdx {
			marker = lipgloss.NewStyle().Foreground(styles.CAccent2).Bold(true).Render("▶ ")
			style = lipgloss.NewStyle().Foreground(styles.CAccent2).Bold(true)
		}
		heart := lipgloss.NewStyle().Foreground(styles.CMuted).Render("♡")
		if liked != nil && liked(it.ID) {
			heart = lipgloss.NewStyle().Foreground(styles.CWarn).Render("♥")
		}
		line := marker + style.Render(helpers.Truncate(it.Title, 30)) +
			lipgloss.NewStyle().Foreground(styles.CMuted).Render(
				fmt.Sprintf("  %s · %s ETH · ", it.Creator, it.Price)) + heart
		rows = append(rows, line)
	}
	if len(rows) == 0 {
		empty := "No items match your search."
		if tab == TabMyNFTs {
			empty = "You don't own any NFTs yet. Mint or buy one!"
		}
		rows = append(rows, lipgloss.NewStyle().Foreground(styles.CMuted).Render(empty))
	}

	statusBar := lipgloss.NewStyle().Foreground(styles.CMuted).Render(
		fmt.Sprintf("%d items", len(items)),
	)

	return title + "\n\n" + tabBar + "\n" + searchLabel + searchBox + filterLabel +
		"\n\n" + strings.Join(rows, "\n") + "\n\n" + statusBar
}

// Nav returns the navigation bar for the marketplace view
func Nav(width int, searching bool) string {
	if searching {
		return styles.NavStyle.Width(width).Render(
			styles.Key("Enter") + " apply   " + styles.Key("Esc") + " clear",
		)
	}
	left := strings.Join([]string{
		styles.Key("↑/↓") + " move",
		styles.Key("Enter") + " open",
		styles.Key("Tab") + " listing",
		styles.Key("/") + " search",
		styles.Key("f") + " price filter",
		styles.Key("L") + " like",
		styles.Key("1-5") + " tabs",
	}, "   ")
	return styles.NavStyle.Width(width).Render(left)
}
