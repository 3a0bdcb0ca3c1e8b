package mint

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"kryptoart-tui/market"
	"kryptoart-tui/styles"
)

// Render draws the mint confirmation: the draft summary the user is about to
// commit. The controller guarantees the draft is present.
func Render(d market.Draft, pinning bool, spin string) string {
	title := styles.TitleStyle.Render("Confirm Mint")
	subtitle := lipgloss.NewStyle().
		Foreground(styles.CMuted).
		Render("Review your NFT before it goes on the blockchain")

	label := lipgloss.NewStyle().Foreground(styles.CMuted).Width(12)
	value := lipgloss.NewStyle().Foreground(styles.CText)

	rows := []string{
		label.Render("Name") + value.Render(d.Title),
		label.Render("Collection") + value.Render(orDash(d.Collection)),
		label.Render("Price") + value.Render(d.Price+" ETH"),
		label.Render("Blockchain") + value.Render(d.Blockchain),
		label.Render("Artwork") + value.Render(orDash(d.ImagePath)),
	}
	if d.Description != "" {
		rows = append(rows, label.Render("About")+value.Render(d.Description))
	}
	if d.ImageURI != "" {
		rows = append(rows, label.Render("Content")+lipgloss.NewStyle().Foreground(styles.CAccent).Render(d.ImageURI))
	}

	if len(d.Attributes) > 0 {
		rows = append(rows, "", lipgloss.NewStyle().Foreground(styles.CText).Bold(true).Render("Attributes"))
		for _, a := range d.Attributes {
			rows = append(rows, "  "+lipgloss.NewStyle().Foreground(styles.CAccent2).Render(a.TraitType)+
				lipgloss.NewStyle().Foreground(styles.CMuted).Render(" · ")+value.Render(a.Value))
		}
	}

	content := title + "\n" + subtitle + "\n\n" + strings.Join(rows, "\n")
	if pinning {
		content += "\n\n" + lipgloss.NewStyle().Foreground(styles.CAccent).Render(spin+" pinning metadata…")
	}
	return content
}

// Nav returns the navigation bar for the mint confirmation view
func Nav(width int, pinning bool) string {
	if pinning {
		return styles.NavStyle.Width(width).Render(styles.Key("Esc") + " cancel")
	}
	left := strings.Join([]string{
		styles.Key("Enter") + " mint now",
		styles.Key("Esc") + " back home",
		styles.Key("Ctrl+c") + " quit",
	}, "   ")
	return styles.NavStyle.Width(width).Render(left)
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
