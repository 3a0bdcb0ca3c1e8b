package projects

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"kryptoart-tui/market"
	"kryptoart-tui/styles"
)

// Render draws the community projects screen: headline stats, the project
// list with funding progress, and the contribute form when one is open.
func Render(projects []market.Project, selectedIdx int, contributed func(string) bool, formView string) string {
	title := styles.TitleStyle.Render("Community Projects")
	subtitle := lipgloss.NewStyle().
		Foreground(styles.CMuted).
		Render("Back creative projects and help them reach their goal")

	stats := lipgloss.JoinHorizontal(lipgloss.Top,
		statBox("156", "Projects"),
		statBox("12.3K", "Backers"),
		statBox("2.4M", "ETH Raised"),
	)

	if formView != "" {
		return title + "\n" + subtitle + "\n\n" + formView
	}

	var rows []string
	for i, p := range projects {
		marker := "  "
		titleStyle := lipgloss.NewStyle().Foreground(styles.CText)
		if i == selectedIdx {
			marker = lipgloss.NewStyle().Foreground(styles.CAccent2).Bold(true).Render("▶ ")
			titleStyle = lipgloss.NewStyle().Foreground(styles.CAccent2).Bold(true)
		}
		backed := ""
		if contributed != nil && contributed(p.ID) {
			backed = lipgloss.NewStyle().Foreground(styles.CGood).Render("  ✓ backed")
		}
		head := marker + titleStyle.Render(p.Title) +
			lipgloss.NewStyle().Foreground(styles.CMuted).Render("  by "+p.Creator) + backed
		meta := "  " + lipgloss.NewStyle().Foreground(styles.CMuted).Render(
			fmt.Sprintf("%s · %d backers · %.1f / %.1f ETH", p.Category, p.Backers, p.Raised, p.Goal))
		rows = append(rows, head, meta, "  "+progressBar(p.Progress(), 32), "")
	}

	return title + "\n" + subtitle + "\n\n" + stats + "\n\n" + strings.Join(rows, "\n")
}

func statBox(value, label string) string {
	return lipgloss.NewStyle().Padding(0, 2).Render(
		lipgloss.NewStyle().Foreground(styles.CAccent).Bold(true).Render(value) + "\n" +
			lipgloss.NewStyle().Foreground(styles.CMuted).Render(label),
	)
}

func progressBar(ratio float64, width int) string {
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	filled := int(ratio * float64(width))
	bar := lipgloss.NewStyle().Foreground(styles.CAccent).Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Foreground(styles.CBorder).Render(strings.Repeat("░", width-filled))
	return bar + lipgloss.NewStyle().Foreground(styles.CMuted).Render(fmt.Sprintf(" %d%%", int(ratio*100)))
}

// Nav returns the navigation bar for the projects view
func Nav(width int, formActive bool) string {
	if formActive {
		return styles.NavStyle.Width(width).Render(
			styles.Key("Enter") + " contribute   " + styles.Key("Esc") + " cancel",
		)
	}
	left := strings.Join([]string{
		styles.Key("↑/↓") + " move",
		styles.Key("Enter") + " contribute",
		styles.Key("1-5") + " tabs",
		styles.Key("Ctrl+c") + " quit",
	}, "   ")
	return styles.NavStyle.Width(width).Render(left)
}
