package main

import (
	"context"
	"time"

	"kryptoart-tui/indexer"
	"kryptoart-tui/market"
	"kryptoart-tui/pinner"
	"kryptoart-tui/rpc"
	"kryptoart-tui/session"
	"kryptoart-tui/views/marketplace"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ethereum/go-ethereum/common"
)

// -------------------- COMMAND FUNCTIONS --------------------
// Functions that return tea.Cmd for async operations

// splashTimer holds the splash screen for its minimum display time
func splashTimer() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return splashDoneMsg{}
	})
}

// initLogViewport initializes the log viewport
func initLogViewport() tea.Cmd {
	return func() tea.Msg {
		return logInitMsg{}
	}
}

// connectRPC establishes an RPC connection to the Ethereum node
func connectRPC(url string) tea.Cmd {
	return func() tea.Msg {
		result := rpc.Connect(url)
		return rpcConnectedMsg{client: result.Client, err: result.Error}
	}
}

// loadWalletSession fetches the on-chain session for the watched address
func loadWalletSession(client *rpc.Client, addr string, watch []rpc.WatchedToken) tea.Cmd {
	return func() tea.Msg {
		s := rpc.LoadSession(client, common.HexToAddress(addr), watch)
		return walletSessionMsg{s: s}
	}
}

// loadOwnedTokens asks the indexer for NFTs owned by the watched address
func loadOwnedTokens(svc *indexer.Service, owner string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
		defer cancel()
		tokens, err := svc.OwnedTokens(ctx, owner)
		return ownedTokensMsg{owner: owner, tokens: tokens, err: err}
	}
}

// pinAsset uploads the draft artwork to the pinning service
func pinAsset(svc *pinner.Service, path string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()
		uri, err := svc.PinFile(ctx, path)
		return assetPinnedMsg{uri: uri, err: err}
	}
}

// pinMetadata pins the token metadata document for the draft
func pinMetadata(svc *pinner.Service, d market.Draft, imageURL string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		uri, err := svc.PinMetadata(ctx, d, d.Description, imageURL)
		return metadataPinnedMsg{uri: uri, err: err}
	}
}

// copyToClipboard copies text to clipboard
func copyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		err := clipboard.WriteAll(text)
		if err == nil {
			return clipboardCopiedMsg{}
		}
		return nil
	}
}

// clearNoticeLater expires the toast after a short delay
func clearNoticeLater() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return clearNoticeMsg{}
	})
}

// -------------------- MODEL HELPER METHODS --------------------
// These methods help with state management and command generation

// addLog adds a log entry with timestamp and type
func (m *model) addLog(logType, message string) {
	if !m.logEnabled || !m.logReady || m.logger == nil {
		return
	}

	switch logType {
	case "info":
		m.logger.Info(message)
	case "success":
		m.logger.Info("✓", "msg", message)
	case "error":
		m.logger.Error(message)
	case "warning":
		m.logger.Warn(message)
	case "debug":
		m.logger.Debug(message)
	default:
		m.logger.Print(message)
	}

	m.updateLogViewport()
}

// updateLogViewport refreshes the viewport content with log output
func (m *model) updateLogViewport() {
	if !m.logReady || m.logBuffer == nil {
		return
	}

	m.logViewport.SetContent(m.logBuffer.String())
	m.logViewport.GotoBottom()
}

// showNotice installs a toast and schedules its expiry
func (m *model) showNotice(n session.Notice) tea.Cmd {
	if n.IsZero() {
		return nil
	}
	m.notice = n
	m.noticeAt = time.Now()
	switch n.Level {
	case session.NoticeError:
		m.addLog("error", n.Title)
	default:
		m.addLog("success", n.Title)
	}
	return clearNoticeLater()
}

// featured returns the items shown on the home screen
func (m *model) featured() []market.Item {
	cat := m.catalog
	if len(cat) > 3 {
		cat = cat[:3]
	}
	return cat
}

// visibleItems returns the marketplace listing for the active tab with the
// search query and price filter applied
func (m *model) visibleItems() []market.Item {
	var src []market.Item
	switch m.marketTab {
	case marketplace.TabMyNFTs:
		src = m.sess.Owned()
	case marketplace.TabNew:
		// newest listings first
		for i := len(m.catalog) - 1; i >= 0; i-- {
			src = append(src, m.catalog[i])
		}
	default:
		src = m.catalog
	}
	return market.Filter(src, m.query, m.band)
}

// clampCursor keeps a listing cursor inside its slice
func clampCursor(idx, n int) int {
	if idx >= n {
		idx = n - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}

// textInputActive returns true if any text input is currently active
func (m *model) textInputActive() bool {
	if m.searching {
		return true
	}
	if m.authForm != nil || m.createForm != nil || m.sendForm != nil ||
		m.convertForm != nil || m.contributeForm != nil {
		return true
	}
	return false
}
