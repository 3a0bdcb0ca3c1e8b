package main

import (
	"kryptoart-tui/helpers"
	"kryptoart-tui/rpc"
	"kryptoart-tui/session"
	"kryptoart-tui/views/bottomnav"
	"kryptoart-tui/views/create"
	"kryptoart-tui/views/detail"
	"kryptoart-tui/views/home"
	"kryptoart-tui/views/logview"
	"kryptoart-tui/views/marketplace"
	"kryptoart-tui/views/mint"
	"kryptoart-tui/views/onboarding"
	"kryptoart-tui/views/profile"
	"kryptoart-tui/views/projects"
	"kryptoart-tui/views/signin"
	"kryptoart-tui/views/signup"
	"kryptoart-tui/views/splash"
	"kryptoart-tui/views/wallet"

	"github.com/charmbracelet/lipgloss"
)

// -------------------- VIEW --------------------

// globalHeader renders the one-line banner shown above every main screen
func (m *model) globalHeader() string {
	brand := lipgloss.NewStyle().Bold(true).Render(
		helpers.FadeString("KryptoArt", "#22D3EE", "#C084FC"),
	)

	right := hotkeyStyle.Render("guest")
	if m.sess.SignedIn() {
		right = lipgloss.NewStyle().Foreground(cText).Render(m.sess.Identity()) +
			hotkeyStyle.Render("  ·  ") +
			lipgloss.NewStyle().Foreground(cAccent).Render(helpers.FormatAmount(m.sess.Balance()))
	}
	right += hotkeyStyle.Render("  ·  rpc " + rpcStatus(m.rpcURL, m.ethClient))

	gap := helpers.Max(1, m.w-6-lipgloss.Width(brand)-lipgloss.Width(right))
	return brand + lipgloss.NewStyle().Width(gap).Render("") + right
}

// renderNotice renders the transient toast line, empty when nothing to show
func (m *model) renderNotice() string {
	if m.notice.IsZero() {
		return ""
	}
	var style lipgloss.Style
	switch m.notice.Level {
	case session.NoticeError:
		style = lipgloss.NewStyle().Foreground(cWarn).Bold(true)
	case session.NoticeInfo:
		style = lipgloss.NewStyle().Foreground(cAccent).Bold(true)
	default:
		style = lipgloss.NewStyle().Foreground(cGood).Bold(true)
	}
	line := style.Render(m.notice.Title)
	if m.notice.Detail != "" {
		line += hotkeyStyle.Render("  " + m.notice.Detail)
	}
	return line
}

func (m *model) View() string {
	// Full-bleed screens render without the header chrome
	switch m.sess.Screen() {
	case session.ScreenSplash:
		return appStyle.Render(splash.Render(m.w, m.h, m.spin.View()))
	case session.ScreenOnboarding:
		content := onboarding.Render(m.w, m.h-2, m.slideIdx)
		nav := onboarding.Nav(m.w-2, m.slideIdx)
		return appStyle.Render(lipgloss.JoinVertical(lipgloss.Left, content, nav))
	}

	headerPanel := panelStyle.Width(helpers.Max(0, m.w-2)).Render(m.globalHeader())

	var pageContent string
	var nav string

	switch m.sess.Screen() {

	case session.ScreenSignIn:
		formView := ""
		if m.authForm != nil {
			formView = m.authForm.View()
		}
		pageContent = panelStyle.Width(helpers.Max(0, m.w-2)).Render(
			signin.Render(m.w-2, formView, m.authError))
		nav = signin.Nav(m.w - 2)

	case session.ScreenSignUp:
		formView := ""
		if m.authForm != nil {
			formView = m.authForm.View()
		}
		pageContent = panelStyle.Width(helpers.Max(0, m.w-2)).Render(
			signup.Render(m.w-2, formView, m.authError))
		nav = signup.Nav(m.w - 2)

	case session.ScreenHome:
		pageContent = panelStyle.Width(helpers.Max(0, m.w-2)).Render(
			home.Render(m.sess.Identity(), m.sess.Balance(), m.sess.OwnedCount(), m.featured(), m.homeIdx))
		nav = home.Nav(m.w - 2)

	case session.ScreenCreate:
		formView := ""
		if m.createForm != nil {
			formView = m.createForm.View()
		}
		pageContent = panelStyle.Width(helpers.Max(0, m.w-2)).Render(
			create.Render(formView, m.uploading, m.spin.View()))
		nav = create.Nav(m.w - 2)

	case session.ScreenMint:
		d := m.sess.Draft()
		if d == nil {
			// Navigate guards against this; render nothing rather than panic
			pageContent = panelStyle.Width(helpers.Max(0, m.w-2)).Render("")
			break
		}
		pageContent = panelStyle.Width(helpers.Max(0, m.w-2)).Render(
			mint.Render(*d, m.pinning || m.uploading, m.spin.View()))
		nav = mint.Nav(m.w-2, m.pinning || m.uploading)

	case session.ScreenMarketplace:
		query := m.query
		if m.searching {
			query = m.searchInput.Value()
		}
		pageContent = panelStyle.Width(helpers.Max(0, m.w-2)).Render(
			marketplace.Render(m.visibleItems(), m.marketTab, query, m.band, m.marketIdx, m.sess.Liked, m.searching))
		nav = marketplace.Nav(m.w-2, m.searching)

	case session.ScreenDetail:
		sel := m.sess.Selected()
		if sel == nil {
			pageContent = panelStyle.Width(helpers.Max(0, m.w-2)).Render("")
			break
		}
		owned := m.ownsItem(sel.ID)
		pageContent = panelStyle.Width(helpers.Max(0, m.w-2)).Render(
			detail.Render(*sel, m.sess.Liked(sel.ID), owned))
		nav = detail.Nav(m.w-2, owned)

	case session.ScreenWallet:
		formView := ""
		if m.sendForm != nil {
			formView = m.sendForm.View()
		} else if m.convertForm != nil {
			formView = m.convertForm.View()
		}
		pageContent = panelStyle.Width(helpers.Max(0, m.w-2)).Render(
			wallet.Render(m.sess.Balance(), m.chainSession, m.rpcConnected, m.sessionBusy,
				m.spin.View(), m.walletTab, m.txs, formView, m.receiveQR))
		nav = wallet.Nav(m.w-2, m.sendForm != nil || m.convertForm != nil)

	case session.ScreenProjects:
		formView := ""
		if m.contributeForm != nil {
			formView = m.contributeForm.View()
		}
		pageContent = panelStyle.Width(helpers.Max(0, m.w-2)).Render(
			projects.Render(m.projects, m.projectIdx, m.sess.Contributed, formView))
		nav = projects.Nav(m.w-2, m.contributeForm != nil)

	case session.ScreenProfile:
		pageContent = panelStyle.Width(helpers.Max(0, m.w-2)).Render(
			profile.Render(m.sess.Identity(), m.sess.Balance(), m.sess.Owned(), m.sess.LikedCount(),
				m.onchain, m.indexing, m.spin.View(), m.idx.Configured()))
		nav = profile.Nav(m.w - 2)
	}

	sections := []string{headerPanel, pageContent}
	if toast := m.renderNotice(); toast != "" {
		sections = append(sections, toast)
	}
	if nav != "" {
		sections = append(sections, nav)
	}
	if m.sess.ChromeVisible() {
		sections = append(sections, bottomnav.Render(m.w-2, m.sess.Screen()))
	}

	if m.logEnabled {
		reservedHeight := 10
		availableHeight := helpers.Max(5, m.h-reservedHeight)
		maxLogHeight := helpers.Min(m.h/3, 15)
		m.logViewport.Height = helpers.Min(availableHeight, maxLogHeight)

		sections = append(sections, logview.Render(m.w, m.h, m.logReady, m.logSpinner.View(), m.logViewport))
	}

	return appStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func rpcStatus(url string, c *rpc.Client) string {
	if url == "" {
		return "not set"
	}
	if c == nil {
		return "connecting/failed"
	}
	return "connected"
}
