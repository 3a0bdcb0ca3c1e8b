package wallet

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"kryptoart-tui/helpers"
	"kryptoart-tui/rpc"
	"kryptoart-tui/styles"
)

// Tab selects the wallet sub-view.
type Tab int

const (
	TabAssets Tab = iota
	TabTransactions
	TabConvert
)

func (t Tab) String() string {
	switch t {
	case TabTransactions:
		return "Transactions"
	case TabConvert:
		return "Convert"
	default:
		return "Assets"
	}
}

// Tx is one entry in the simulated transaction history.
type Tx struct {
	When   time.Time
	Label  string
	Amount float64 // negative for outgoing
}

// ConvertRates are the fixed display rates for the simulated conversion.
var ConvertRates = map[string]float64{
	"ETH":   4200.0, // USD per unit
	"USDC":  1.0,
	"MATIC": 0.55,
}

// Currencies lists the convertible symbols in menu order.
var Currencies = []string{"ETH", "USDC", "MATIC"}

// Rate returns how many units of `to` one unit of `from` buys.
func Rate(from, to string) float64 {
	f, t := ConvertRates[from], ConvertRates[to]
	if f == 0 || t == 0 {
		return 0
	}
	return f / t
}

// Render draws the wallet screen: simulated balance, the live session when an
// RPC endpoint is connected, and the active tab's content.
func Render(balance float64, session rpc.Session, connected, loading bool, spin string, tab Tab, txs []Tx, formView, qr string) string {
	title := styles.TitleStyle.Render("Wallet")

	balanceLine := lipgloss.NewStyle().Foreground(styles.CAccent).Bold(true).Render(helpers.FormatAmount(balance)) +
		lipgloss.NewStyle().Foreground(styles.CMuted).Render("  available")

	var tabs []string
	for _, t := range []Tab{TabAssets, TabTransactions, TabConvert} {
		if t == tab {
			tabs = append(tabs, lipgloss.NewStyle().Foreground(styles.CAccent2).Bold(true).Underline(true).Render(t.String()))
		} else {
			tabs = append(tabs, lipgloss.NewStyle().Foreground(styles.CMuted).Render(t.String()))
		}
	}
	tabBar := strings.Join(tabs, "   ")

	body := ""
	switch tab {
	case TabAssets:
		body = renderAssets(session, connected, loading, spin)
	case TabTransactions:
		body = renderTxs(txs)
	case TabConvert:
		body = renderConvert(formView)
	}

	content := title + "\n\n" + balanceLine + "\n\n" + tabBar + "\n\n" + body
	if formView != "" && tab != TabConvert {
		content = title + "\n\n" + balanceLine + "\n\n" + formView
	}
	if qr != "" {
		content += "\n\n" + lipgloss.NewStyle().Foreground(styles.CText).Render("Receive address") + "\n" + qr
	}
	return content
}

func renderAssets(s rpc.Session, connected, loading bool, spin string) string {
	if !connected {
		return lipgloss.NewStyle().Foreground(styles.CMuted).
			Render("No live wallet session. Set ETH_RPC_URL to watch an on-chain address.")
	}
	if loading {
		return spin + " loading session…"
	}
	if s.ErrMessage != "" {
		return lipgloss.NewStyle().Foreground(styles.CWarn).Render(s.ErrMessage)
	}
	if s.Address == "" {
		return lipgloss.NewStyle().Foreground(styles.CMuted).
			Render("Connected. Press " + styles.Key("w") + " to load the watched session.")
	}

	label := lipgloss.NewStyle().Foreground(styles.CMuted).Width(10)
	rows := []string{
		label.Render("Address") + lipgloss.NewStyle().Foreground(styles.CAccent).Render(helpers.ShortenAddr(s.Address)),
		label.Render("Chain") + lipgloss.NewStyle().Foreground(styles.CText).Render(helpers.ChainName(s.ChainID)),
		label.Render("Balance") + lipgloss.NewStyle().Foreground(styles.CText).Render(helpers.FormatETH(s.EthWei)),
		label.Render("Updated") + lipgloss.NewStyle().Foreground(styles.CMuted).Render(helpers.LoadedAt(s.LoadedAt, false)),
	}
	for _, t := range s.Tokens {
		rows = append(rows, label.Render("")+lipgloss.NewStyle().Foreground(styles.CText).
			Render(helpers.FormatToken(t.Balance, t.Decimals, t.Symbol)))
	}
	return strings.Join(rows, "\n")
}

func renderTxs(txs []Tx) string {
	if len(txs) == 0 {
		return lipgloss.NewStyle().Foreground(styles.CMuted).Render("No transactions yet.")
	}
	var rows []string
	// newest first
	for i := len(txs) - 1; i >= 0; i-- {
		tx := txs[i]
		amt := lipgloss.NewStyle().Foreground(styles.CWarn).Render(fmt.Sprintf("%+.4f ETH", tx.Amount))
		if tx.Amount > 0 {
			amt = lipgloss.NewStyle().Foreground(styles.CGood).Render(fmt.Sprintf("%+.4f ETH", tx.Amount))
		}
		rows = append(rows, lipgloss.NewStyle().Foreground(styles.CMuted).Render(tx.When.Format("15:04:05 "))+
			lipgloss.NewStyle().Foreground(styles.CText).Render(helpers.Truncate(tx.Label, 36))+"  "+amt)
	}
	return strings.Join(rows, "\n")
}

func renderConvert(formView string) string {
	if formView != "" {
		return formView
	}
	var rows []string
	for _, c := range Currencies {
		rows = append(rows, lipgloss.NewStyle().Foreground(styles.CText).
			Render(fmt.Sprintf("%-6s $%.2f", c, ConvertRates[c])))
	}
	hint := lipgloss.NewStyle().Foreground(styles.CMuted).Render("Press " + styles.Key("v") + " to convert between currencies.")
	return strings.Join(rows, "\n") + "\n\n" + hint
}

// Nav returns the navigation bar for the wallet view
func Nav(width int, formActive bool) string {
	if formActive {
		return styles.NavStyle.Width(width).Render(
			styles.Key("Enter") + " confirm   " + styles.Key("Esc") + " cancel",
		)
	}
	left := strings.Join([]string{
		styles.Key("Tab") + " sub-view",
		styles.Key("s") + " send",
		styles.Key("r") + " receive",
		styles.Key("v") + " convert",
		styles.Key("w") + " connect session",
		styles.Key("x") + " disconnect",
		styles.Key("1-5") + " tabs",
	}, "   ")
	return styles.NavStyle.Width(width).Render(left)
}
