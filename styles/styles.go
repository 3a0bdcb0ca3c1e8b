package styles

import "github.com/charmbracelet/lipgloss"

// Theme colors
var (
	CBg      = lipgloss.Color("#0A0A0F") // near-black
	CPanel   = lipgloss.Color("#14101F") // slightly lighter, purple tinted
	CBorder  = lipgloss.Color("#8A2BE2")
	CMuted   = lipgloss.Color("#8C87A6")
	CText    = lipgloss.Color("#E6E1F5")
	CAccent  = lipgloss.Color("#22D3EE") // cyan
	CAccent2 = lipgloss.Color("#C084FC") // purple
	CWarn    = lipgloss.Color("#FB7185") // magenta-red
	CGood    = lipgloss.Color("#7EE787") // green
)

// Shared styles
var (
	AppStyle = lipgloss.NewStyle().
			Background(CBg).
			Foreground(CText)

	TitleStyle = lipgloss.NewStyle().
			Foreground(CAccent2).
			Bold(true)

	PanelStyle = lipgloss.NewStyle().
			Background(CPanel).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(CBorder).
			Padding(1, 2)

	NavStyle = lipgloss.NewStyle().
			Background(CPanel).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(CBorder).
			Padding(0, 1)

	HotkeyStyle = lipgloss.NewStyle().
			Foreground(CMuted)

	HotkeyKeyStyle = lipgloss.NewStyle().
			Foreground(CAccent).
			Bold(true)

	HelpRightStyle = lipgloss.NewStyle().
			Foreground(CMuted)
)

// Key renders a key with accent styling
func Key(s string) string {
	return HotkeyKeyStyle.Render(s)
}
