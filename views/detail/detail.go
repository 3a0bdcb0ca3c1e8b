package detail

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"kryptoart-tui/market"
	"kryptoart-tui/styles"
)

// Render draws the item detail screen. The controller guarantees the item is
// present.
func Render(it market.Item, liked, owned bool) string {
	title := styles.TitleStyle.Render(it.Title)

	heart := lipgloss.NewStyle().Foreground(styles.CMuted).Render("♡ like")
	if liked {
		heart = lipgloss.NewStyle().Foreground(styles.CWarn).Render("♥ liked")
	}
	byline := lipgloss.NewStyle().Foreground(styles.CMuted).Render("by ") +
		lipgloss.NewStyle().Foreground(styles.CAccent).Render(it.Creator) +
		lipgloss.NewStyle().Foreground(styles.CMuted).Render("  ·  ") + heart

	label := lipgloss.NewStyle().Foreground(styles.CMuted).Width(12)
	value := lipgloss.NewStyle().Foreground(styles.CText)

	rows := []string{
		label.Render("Price") + lipgloss.NewStyle().Foreground(styles.CAccent).Bold(true).Render(it.Price+" ETH"),
		label.Render("Collection") + value.Render(orDash(it.Collection)),
		label.Render("Blockchain") + value.Render(orDash(it.Blockchain)),
	}
	if it.Likes > 0 {
		rows = append(rows, label.Render("Likes")+value.Render(fmt.Sprintf("%d", it.Likes)))
	}
	if it.ContentURI != "" {
		rows = append(rows, label.Render("Content")+lipgloss.NewStyle().Foreground(styles.CAccent).Render(it.ContentURI))
	}

	if len(it.Attributes) > 0 {
		rows = append(rows, "", lipgloss.NewStyle().Foreground(styles.CText).Bold(true).Render("Attributes"))
		for _, a := range it.Attributes {
			rows = append(rows, "  "+lipgloss.NewStyle().Foreground(styles.CAccent2).Render(a.TraitType)+
				lipgloss.NewStyle().Foreground(styles.CMuted).Render(" · ")+value.Render(a.Value))
		}
	}

	footer := ""
	if owned {
		footer = "\n\n" + lipgloss.NewStyle().Foreground(styles.CGood).Render("✓ You own this NFT")
	}

	return title + "\n" + byline + "\n\n" + strings.Join(rows, "\n") + footer
}

// Nav returns the navigation bar for the detail view
func Nav(width int, owned bool) string {
	keys := []string{styles.Key("L") + " like"}
	if !owned {
		keys = append([]string{styles.Key("b") + " buy now"}, keys...)
	}
	keys = append(keys,
		styles.Key("Esc")+" back to marketplace",
		styles.Key("Ctrl+c")+" quit",
	)
	return styles.NavStyle.Width(width).Render(strings.Join(keys, "   "))
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
