package onboarding

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"kryptoart-tui/styles"
)

// Slide is one onboarding page.
type Slide struct {
	Title       string
	Description string
}

// Slides are shown in order; the last one ends onboarding.
var Slides = []Slide{
	{
		Title:       "Create or Import NFTs Easily",
		Description: "Upload your artwork or generate AI-powered NFTs with just a few taps. Express your creativity in the digital realm.",
	},
	{
		Title:       "Connect Wallets Securely",
		Description: "Seamlessly connect with MetaMask, Coinbase Wallet, and more. Your assets are protected with industry-leading security.",
	},
	{
		Title:       "Trade, Earn & Contribute",
		Description: "Buy and sell NFTs, support creative projects, and be part of a thriving digital ecosystem.",
	},
}

// Render draws the slide at idx with progress dots.
func Render(w, h, idx int) string {
	if idx < 0 || idx >= len(Slides) {
		idx = 0
	}
	s := Slides[idx]

	title := styles.TitleStyle.Width(48).Align(lipgloss.Center).Render(s.Title)
	desc := lipgloss.NewStyle().
		Foreground(styles.CMuted).
		Width(48).
		Align(lipgloss.Center).
		Render(s.Description)

	var dots []string
	for i := range Slides {
		if i == idx {
			dots = append(dots, lipgloss.NewStyle().Foreground(styles.CAccent).Render("●"))
		} else {
			dots = append(dots, lipgloss.NewStyle().Foreground(styles.CMuted).Render("○"))
		}
	}

	content := lipgloss.JoinVertical(lipgloss.Center, title, "", desc, "", strings.Join(dots, " "))
	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, content)
}

// Nav returns the navigation bar for the onboarding view
func Nav(width, idx int) string {
	next := "next"
	if idx >= len(Slides)-1 {
		next = "get started"
	}
	left := strings.Join([]string{
		styles.Key("Enter") + " " + next,
		styles.Key("s") + " skip",
		styles.Key("Ctrl+c") + " quit",
	}, "   ")
	return styles.NavStyle.Width(width).Render(left)
}
