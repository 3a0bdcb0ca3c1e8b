package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"kryptoart-tui/auth"
	"kryptoart-tui/config"
	"kryptoart-tui/helpers"
	"kryptoart-tui/market"
	"kryptoart-tui/rpc"
	"kryptoart-tui/session"
	"kryptoart-tui/views/bottomnav"
	"kryptoart-tui/views/onboarding"
	"kryptoart-tui/views/wallet"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// -------------------- TEMP FORM STORAGE --------------------
// Temporary form field storage (package-level to avoid pointer-to-copy issues)
var (
	tempAuthEmail    string
	tempAuthPassword string
	tempAuthConfirm  string

	tempCreateTitle      string
	tempCreateDesc       string
	tempCreateCollection string
	tempCreatePrice      string
	tempCreateChain      string
	tempCreateImagePath  string
	tempCreateAttrs      string

	tempSendToAddr string
	tempSendAmount string

	tempConvertAmount string
	tempConvertFrom   string
	tempConvertTo     string

	tempContributeAmount string
)

func (m *model) createSignInForm() {
	tempAuthEmail = ""
	tempAuthPassword = ""

	m.authForm = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Email").
				Value(&tempAuthEmail).
				Placeholder("you@example.com").
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("email is required")
					}
					return nil
				}),

			huh.NewInput().
				Title("Password").
				Value(&tempAuthPassword).
				EchoMode(huh.EchoModePassword).
				Placeholder("••••••"),
		),
	).WithTheme(huh.ThemeCatppuccin())

	m.authForm.Init()
}

func (m *model) createSignUpForm() {
	tempAuthEmail = ""
	tempAuthPassword = ""
	tempAuthConfirm = ""

	m.authForm = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Email").
				Value(&tempAuthEmail).
				Placeholder("you@example.com").
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("email is required")
					}
					return nil
				}),

			huh.NewInput().
				Title("Password").
				Description("At least 6 characters").
				Value(&tempAuthPassword).
				EchoMode(huh.EchoModePassword),

			huh.NewInput().
				Title("Confirm Password").
				Value(&tempAuthConfirm).
				EchoMode(huh.EchoModePassword).
				Validate(func(s string) error {
					if s != tempAuthPassword {
						return fmt.Errorf("passwords do not match")
					}
					return nil
				}),
		),
	).WithTheme(huh.ThemeCatppuccin())

	m.authForm.Init()
}

func (m *model) createCreateForm() {
	tempCreateTitle = ""
	tempCreateDesc = ""
	tempCreateCollection = ""
	tempCreatePrice = ""
	tempCreateChain = market.Blockchains[0]
	tempCreateImagePath = ""
	tempCreateAttrs = ""

	chainOptions := []huh.Option[string]{}
	for _, b := range market.Blockchains {
		chainOptions = append(chainOptions, huh.NewOption(b, b))
	}

	m.createForm = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&tempCreateTitle).
				Placeholder("Cosmic Dreams #002").
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name is required")
					}
					return nil
				}),

			huh.NewInput().
				Title("Description").
				Value(&tempCreateDesc).
				Placeholder("A journey through the cosmos"),

			huh.NewInput().
				Title("Collection").
				Value(&tempCreateCollection).
				Placeholder("Optional"),

			huh.NewInput().
				Title("Price (ETH)").
				Value(&tempCreatePrice).
				Placeholder("2.5").
				Validate(func(s string) error {
					v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
					if err != nil {
						return fmt.Errorf("invalid price")
					}
					if v <= 0 {
						return fmt.Errorf("price must be greater than 0")
					}
					return nil
				}),

			huh.NewSelect[string]().
				Options(chainOptions...).
				Title("Blockchain").
				Value(&tempCreateChain),

			huh.NewInput().
				Title("Artwork File").
				Description("Path to the image to pin (optional)").
				Value(&tempCreateImagePath).
				Placeholder("~/art/cosmic.png"),

			huh.NewInput().
				Title("Attributes").
				Description("trait:value pairs separated by commas").
				Value(&tempCreateAttrs).
				Placeholder("Background:Nebula, Rarity:Epic"),
		),
	).WithTheme(huh.ThemeCatppuccin())

	m.createForm.Init()
}

func (m *model) createSendForm() {
	tempSendToAddr = ""
	tempSendAmount = ""

	m.sendForm = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Send To").
				Description("Enter a valid Ethereum address").
				Value(&tempSendToAddr).
				Placeholder("0x...").
				Validate(func(s string) error {
					if !helpers.IsValidEthAddress(s) {
						return fmt.Errorf("invalid ethereum address")
					}
					return nil
				}),

			huh.NewInput().
				Title("Amount (ETH)").
				Description(fmt.Sprintf("Available: %s", helpers.FormatAmount(m.sess.Balance()))).
				Value(&tempSendAmount).
				Placeholder("0.0").
				Validate(func(s string) error {
					v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
					if err != nil {
						return fmt.Errorf("invalid amount")
					}
					if v <= 0 {
						return fmt.Errorf("amount must be greater than 0")
					}
					if v > m.sess.Balance() {
						return fmt.Errorf("amount exceeds balance")
					}
					return nil
				}),
		),
	).WithTheme(huh.ThemeCatppuccin())

	m.sendForm.Init()
}

func (m *model) createConvertForm() {
	tempConvertAmount = ""
	tempConvertFrom = wallet.Currencies[0]
	tempConvertTo = wallet.Currencies[1]

	currencyOptions := []huh.Option[string]{}
	for _, c := range wallet.Currencies {
		currencyOptions = append(currencyOptions, huh.NewOption(c, c))
	}

	m.convertForm = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Amount").
				Value(&tempConvertAmount).
				Placeholder("1.0").
				Validate(func(s string) error {
					v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
					if err != nil || v <= 0 {
						return fmt.Errorf("enter a valid amount")
					}
					return nil
				}),

			huh.NewSelect[string]().
				Options(currencyOptions...).
				Title("From").
				Value(&tempConvertFrom),

			huh.NewSelect[string]().
				Options(currencyOptions...).
				Title("To").
				Value(&tempConvertTo),
		),
	).WithTheme(huh.ThemeCatppuccin())

	m.convertForm.Init()
}

func (m *model) createContributeForm(p market.Project) {
	tempContributeAmount = ""

	m.contributeForm = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Contribute to "+p.Title).
				Description(fmt.Sprintf("Raised %.1f of %.1f ETH · Available: %s",
					p.Raised, p.Goal, helpers.FormatAmount(m.sess.Balance()))).
				Value(&tempContributeAmount).
				Placeholder("0.5").
				Validate(func(s string) error {
					v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
					if err != nil || v <= 0 {
						return fmt.Errorf("enter a valid amount")
					}
					if v > m.sess.Balance() {
						return fmt.Errorf("amount exceeds balance")
					}
					return nil
				}),
		),
	).WithTheme(huh.ThemeCatppuccin())

	m.contributeForm.Init()
}

// parseAttributes turns "trait:value, trait:value" into attribute pairs.
func parseAttributes(s string) []market.Attribute {
	var attrs []market.Attribute
	for _, pair := range strings.Split(s, ",") {
		trait, value, ok := strings.Cut(pair, ":")
		if !ok {
			continue
		}
		trait = strings.TrimSpace(trait)
		value = strings.TrimSpace(value)
		if trait == "" || value == "" {
			continue
		}
		attrs = append(attrs, market.Attribute{TraitType: trait, Value: value})
	}
	return attrs
}

// -------------------- UPDATE --------------------

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Async results and window events are handled before any form so a form in
	// focus cannot swallow them
	switch msg := msg.(type) {

	case logInitMsg:
		if !m.logEnabled {
			return m, nil
		}
		// Create logger that writes to our buffer
		m.logger = log.NewWithOptions(m.logBuffer, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05",
			Prefix:          "",
		})
		m.logger.SetLevel(log.DebugLevel)
		m.logger.SetStyles(&log.Styles{
			Timestamp: lipgloss.NewStyle().Foreground(cMuted),
			Caller:    lipgloss.NewStyle().Faint(true),
			Prefix:    lipgloss.NewStyle().Bold(true).Foreground(cAccent2),
			Message:   lipgloss.NewStyle().Foreground(cText),
			Key:       lipgloss.NewStyle().Foreground(cAccent),
			Value:     lipgloss.NewStyle().Foreground(cText),
			Separator: lipgloss.NewStyle().Faint(true),
			Levels: map[log.Level]lipgloss.Style{
				log.DebugLevel: lipgloss.NewStyle().Foreground(cMuted).SetString("DEBUG"),
				log.InfoLevel:  lipgloss.NewStyle().Foreground(cAccent2).SetString("INFO"),
				log.WarnLevel:  lipgloss.NewStyle().Foreground(cWarn).SetString("WARN"),
				log.ErrorLevel: lipgloss.NewStyle().Foreground(cWarn).SetString("ERROR"),
			},
		})
		m.logReady = true
		m.addLog("info", "Logger enabled")
		return m, nil

	case splashDoneMsg:
		m.sess.FinishSplash()
		return m, nil

	case rpcConnectedMsg:
		m.rpcConnecting = false
		if msg.err != nil {
			m.ethClient = nil
			m.rpcConnected = false
			m.addLog("error", fmt.Sprintf("RPC connection failed: `%s`", msg.err.Error()))
		} else {
			m.ethClient = msg.client
			m.rpcConnected = true
			m.addLog("success", fmt.Sprintf("RPC connected to `%s`", msg.client.URL))
		}
		return m, nil

	case walletSessionMsg:
		m.sessionBusy = false
		m.sessionLoaded = true
		m.chainSession = msg.s
		if msg.s.ErrMessage != "" {
			m.addLog("error", fmt.Sprintf("Wallet `%s`: %s", helpers.ShortenAddr(msg.s.Address), msg.s.ErrMessage))
		} else {
			m.addLog("success", fmt.Sprintf("Loaded session for `%s` - ETH: %s",
				helpers.ShortenAddr(msg.s.Address), helpers.FormatETH(msg.s.EthWei)))
		}
		return m, nil

	case ownedTokensMsg:
		m.indexing = false
		if msg.err != nil {
			m.addLog("error", "Indexing failed: "+msg.err.Error())
			return m, m.showNotice(session.Notice{Level: session.NoticeError, Title: "Could not index wallet"})
		}
		m.onchain = msg.tokens
		m.addLog("success", fmt.Sprintf("Indexed %d NFTs for `%s`", len(msg.tokens), helpers.ShortenAddr(msg.owner)))
		return m, nil

	case assetPinnedMsg:
		if !m.uploading {
			// result of a cancelled upload; ignore
			return m, nil
		}
		m.uploading = false
		d := m.sess.Draft()
		if d == nil {
			return m, nil
		}
		if msg.err != nil {
			m.addLog("error", "Asset pinning failed: "+msg.err.Error())
			return m, m.showNotice(session.Notice{
				Level:  session.NoticeError,
				Title:  "Failed to upload image to IPFS",
				Detail: "Press Enter to retry",
			})
		}
		m.addLog("success", "Artwork pinned: "+msg.uri)
		m.pinning = true
		return m, pinMetadata(m.pin, *d, msg.uri)

	case metadataPinnedMsg:
		if !m.pinning {
			return m, nil
		}
		m.pinning = false
		d := m.sess.Draft()
		if d == nil {
			return m, nil
		}
		if msg.err != nil {
			m.addLog("error", "Metadata pinning failed: "+msg.err.Error())
			return m, m.showNotice(session.Notice{
				Level:  session.NoticeError,
				Title:  "Failed to pin metadata",
				Detail: "Press Enter to retry",
			})
		}
		d.ImageURI = msg.uri
		m.addLog("success", "Metadata pinned: "+msg.uri)
		return m, m.showNotice(m.sess.ConfirmMint())

	case clipboardCopiedMsg:
		return m, m.showNotice(session.Notice{Level: session.NoticeInfo, Title: "Address copied to clipboard"})

	case clearNoticeMsg:
		if time.Since(m.noticeAt) >= 3*time.Second {
			m.notice = session.Notice{}
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.w, m.h = msg.Width, msg.Height
		if m.logEnabled {
			m.logViewport.Width = helpers.Max(0, msg.Width-6)
			if m.logReady {
				m.updateLogViewport()
			}
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		var cmds []tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		cmds = append(cmds, cmd)
		if m.logEnabled && !m.logReady {
			m.logSpinner, cmd = m.logSpinner.Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)
	}

	// Handle auth form on the sign-in screen
	if m.sess.Screen() == session.ScreenSignIn && m.authForm != nil {
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch keyMsg.String() {
			case "ctrl+c":
				return m, tea.Quit
			case "ctrl+u":
				m.authError = ""
				m.sess.Navigate(session.ScreenSignUp)
				m.createSignUpForm()
				return m, nil
			}
		}

		form, cmd := m.authForm.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.authForm = f

			if m.authForm.State == huh.StateCompleted {
				id, err := m.acct.SignIn(tempAuthEmail, tempAuthPassword)
				if err != nil {
					m.authError = "Invalid email or password"
					m.createSignInForm()
					return m, nil
				}
				m.authError = ""
				m.authForm = nil
				m.sess.SignIn(id.DisplayName)
				m.addLog("success", fmt.Sprintf("Signed in as `%s`", id.Email))
				return m, nil
			}

			if m.authForm.State == huh.StateAborted {
				m.createSignInForm()
				return m, nil
			}
		}
		return m, cmd
	}

	// Handle auth form on the sign-up screen
	if m.sess.Screen() == session.ScreenSignUp && m.authForm != nil {
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch keyMsg.String() {
			case "ctrl+c":
				return m, tea.Quit
			case "esc":
				m.authError = ""
				m.sess.Navigate(session.ScreenSignIn)
				m.createSignInForm()
				return m, nil
			}
		}

		form, cmd := m.authForm.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.authForm = f

			if m.authForm.State == huh.StateCompleted {
				id, err := m.acct.SignUp(tempAuthEmail, tempAuthPassword)
				if err != nil {
					switch err {
					case auth.ErrWeakPassword:
						m.authError = "Password must be at least 6 characters"
					case auth.ErrEmptyEmail:
						m.authError = "Email is required"
					default:
						m.authError = "Could not create account"
					}
					m.createSignUpForm()
					return m, nil
				}
				m.authError = ""
				m.authForm = nil
				m.sess.SignIn(id.DisplayName)
				m.addLog("success", fmt.Sprintf("Created account `%s`", id.Email))
				return m, nil
			}

			if m.authForm.State == huh.StateAborted {
				m.sess.Navigate(session.ScreenSignIn)
				m.createSignInForm()
				return m, nil
			}
		}
		return m, cmd
	}

	// Handle the creation form
	if m.sess.Screen() == session.ScreenCreate && m.createForm != nil {
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch keyMsg.String() {
			case "ctrl+c":
				return m, tea.Quit
			case "esc":
				m.createForm = nil
				m.sess.Navigate(session.ScreenHome)
				return m, nil
			}
		}

		form, cmd := m.createForm.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.createForm = f

			if m.createForm.State == huh.StateCompleted {
				d := market.Draft{
					Title:       strings.TrimSpace(tempCreateTitle),
					Description: strings.TrimSpace(tempCreateDesc),
					Collection:  strings.TrimSpace(tempCreateCollection),
					Price:       strings.TrimSpace(tempCreatePrice),
					Blockchain:  tempCreateChain,
					ImagePath:   strings.TrimSpace(tempCreateImagePath),
					Attributes:  parseAttributes(tempCreateAttrs),
				}
				m.createForm = nil
				m.sess.OpenDraft(d)
				m.addLog("info", fmt.Sprintf("Draft ready: `%s` at %s ETH", d.Title, d.Price))
				return m, nil
			}

			if m.createForm.State == huh.StateAborted {
				m.createForm = nil
				m.sess.Navigate(session.ScreenHome)
				return m, nil
			}
		}
		return m, cmd
	}

	// Handle the send form on the wallet screen
	if m.sess.Screen() == session.ScreenWallet && m.sendForm != nil {
		if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
			m.sendForm = nil
			return m, nil
		}

		form, cmd := m.sendForm.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.sendForm = f

			if m.sendForm.State == huh.StateCompleted {
				amount, _ := strconv.ParseFloat(strings.TrimSpace(tempSendAmount), 64)
				m.sendForm = nil
				n := m.sess.Send(amount)
				if n.Level == session.NoticeSuccess {
					m.txs = append(m.txs, wallet.Tx{
						When:   time.Now(),
						Label:  "Sent to " + helpers.ShortenAddr(tempSendToAddr),
						Amount: -amount,
					})
				}
				return m, m.showNotice(n)
			}

			if m.sendForm.State == huh.StateAborted {
				m.sendForm = nil
				return m, nil
			}
		}
		return m, cmd
	}

	// Handle the convert form on the wallet screen
	if m.sess.Screen() == session.ScreenWallet && m.convertForm != nil {
		if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
			m.convertForm = nil
			return m, nil
		}

		form, cmd := m.convertForm.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.convertForm = f

			if m.convertForm.State == huh.StateCompleted {
				amount, _ := strconv.ParseFloat(strings.TrimSpace(tempConvertAmount), 64)
				m.convertForm = nil
				n := m.sess.Convert(amount, tempConvertFrom, tempConvertTo)
				if n.Level == session.NoticeSuccess {
					rate := wallet.Rate(tempConvertFrom, tempConvertTo)
					m.addLog("info", fmt.Sprintf("Rate: 1 %s = %.4f %s", tempConvertFrom, rate, tempConvertTo))
				}
				return m, m.showNotice(n)
			}

			if m.convertForm.State == huh.StateAborted {
				m.convertForm = nil
				return m, nil
			}
		}
		return m, cmd
	}

	// Handle the contribute form on the projects screen
	if m.sess.Screen() == session.ScreenProjects && m.contributeForm != nil {
		if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
			m.contributeForm = nil
			return m, nil
		}

		form, cmd := m.contributeForm.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.contributeForm = f

			if m.contributeForm.State == huh.StateCompleted {
				amount, _ := strconv.ParseFloat(strings.TrimSpace(tempContributeAmount), 64)
				m.contributeForm = nil
				if m.projectIdx < 0 || m.projectIdx >= len(m.projects) {
					return m, nil
				}
				p := &m.projects[m.projectIdx]
				alreadyBacked := m.sess.Contributed(p.ID)
				n := m.sess.Contribute(p.ID, amount)
				if n.Level == session.NoticeSuccess {
					p.Raised += amount
					if !alreadyBacked {
						p.Backers++
					}
					m.txs = append(m.txs, wallet.Tx{
						When:   time.Now(),
						Label:  "Backed " + p.Title,
						Amount: -amount,
					})
				}
				return m, m.showNotice(n)
			}

			if m.contributeForm.State == huh.StateAborted {
				m.contributeForm = nil
				return m, nil
			}
		}
		return m, cmd
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKey(keyMsg)
	}

	return m, nil
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Marketplace search input swallows keys while active
	if m.sess.Screen() == session.ScreenMarketplace && m.searching {
		switch msg.String() {
		case "enter":
			m.searching = false
			m.query = strings.TrimSpace(m.searchInput.Value())
			m.searchInput.Blur()
			m.marketIdx = 0
			return m, nil
		case "esc":
			m.searching = false
			m.query = ""
			m.searchInput.SetValue("")
			m.searchInput.Blur()
			m.marketIdx = 0
			return m, nil
		}
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		return m, cmd
	}

	allowMenuHotkeys := !m.textInputActive()
	if allowMenuHotkeys {
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "g":
			// Toggle debug log panel
			m.logEnabled = !m.logEnabled
			if m.logEnabled {
				if m.w > 0 {
					m.logViewport.Width = m.w - 6
				}
				m.logReady = false
				m.saveConfig()
				return m, tea.Batch(initLogViewport(), m.logSpinner.Tick)
			}
			if m.logBuffer != nil {
				m.logBuffer.Reset()
			}
			m.logger = nil
			m.logReady = false
			m.saveConfig()
			return m, nil

		case "pageup", "pagedown":
			if m.logEnabled && m.logReady {
				var cmd tea.Cmd
				m.logViewport, cmd = m.logViewport.Update(msg)
				return m, cmd
			}
		}

		// Bottom navigation hotkeys, only while the chrome is visible
		if m.sess.ChromeVisible() {
			if target, ok := bottomnav.Target(msg.String()); ok {
				m.sess.Navigate(target)
				m.receiveQR = ""
				return m, nil
			}
		}
	}

	switch m.sess.Screen() {

	case session.ScreenSplash:
		// Boot timer drives this screen
		return m, nil

	case session.ScreenOnboarding:
		switch msg.String() {
		case "enter":
			if m.slideIdx < len(onboarding.Slides)-1 {
				m.slideIdx++
				return m, nil
			}
			m.sess.FinishOnboarding()
			m.createSignInForm()
			return m, nil
		case "s":
			m.sess.FinishOnboarding()
			m.createSignInForm()
			return m, nil
		}
		return m, nil

	case session.ScreenHome:
		featured := m.featured()
		switch msg.String() {
		case "up", "k":
			m.homeIdx = clampCursor(m.homeIdx-1, len(featured))
		case "down", "j":
			m.homeIdx = clampCursor(m.homeIdx+1, len(featured))
		case "enter":
			if m.homeIdx >= 0 && m.homeIdx < len(featured) {
				m.sess.OpenItem(featured[m.homeIdx])
			}
		case "c":
			m.sess.Navigate(session.ScreenCreate)
			m.createCreateForm()
		case "L":
			if m.homeIdx >= 0 && m.homeIdx < len(featured) {
				return m, m.showNotice(m.sess.ToggleLike(featured[m.homeIdx].ID))
			}
		}
		return m, nil

	case session.ScreenMint:
		switch msg.String() {
		case "enter":
			if m.pinning || m.uploading {
				return m, nil
			}
			d := m.sess.Draft()
			if d != nil && m.pin.Configured() && d.ImageURI == "" {
				if d.ImagePath != "" {
					m.uploading = true
					m.addLog("info", "Pinning artwork "+d.ImagePath)
					return m, pinAsset(m.pin, d.ImagePath)
				}
				m.pinning = true
				return m, pinMetadata(m.pin, *d, "")
			}
			return m, m.showNotice(m.sess.ConfirmMint())
		case "esc":
			if m.uploading || m.pinning {
				m.uploading = false
				m.pinning = false
			}
			m.sess.Navigate(session.ScreenHome)
		}
		return m, nil

	case session.ScreenMarketplace:
		items := m.visibleItems()
		switch msg.String() {
		case "up", "k":
			m.marketIdx = clampCursor(m.marketIdx-1, len(items))
		case "down", "j":
			m.marketIdx = clampCursor(m.marketIdx+1, len(items))
		case "tab":
			m.marketTab = (m.marketTab + 1) % 3
			m.marketIdx = 0
		case "/":
			m.searching = true
			m.searchInput.SetValue(m.query)
			m.searchInput.Focus()
			return m, nil
		case "f":
			m.band = (m.band + 1) % 4
			m.marketIdx = 0
		case "enter":
			if m.marketIdx >= 0 && m.marketIdx < len(items) {
				m.sess.OpenItem(items[m.marketIdx])
			}
		case "L":
			if m.marketIdx >= 0 && m.marketIdx < len(items) {
				return m, m.showNotice(m.sess.ToggleLike(items[m.marketIdx].ID))
			}
		}
		return m, nil

	case session.ScreenDetail:
		sel := m.sess.Selected()
		switch msg.String() {
		case "b":
			if sel != nil && !m.ownsItem(sel.ID) {
				it := *sel
				n := m.sess.Purchase(it)
				if n.Level == session.NoticeSuccess {
					if price, ok := market.ParsePrice(it.Price); ok {
						m.txs = append(m.txs, wallet.Tx{
							When:   time.Now(),
							Label:  "Bought " + it.Title,
							Amount: -price,
						})
					}
				}
				return m, m.showNotice(n)
			}
		case "L":
			if sel != nil {
				return m, m.showNotice(m.sess.ToggleLike(sel.ID))
			}
		case "esc":
			m.sess.Navigate(session.ScreenMarketplace)
		}
		return m, nil

	case session.ScreenWallet:
		switch msg.String() {
		case "tab":
			m.walletTab = (m.walletTab + 1) % 3
			m.receiveQR = ""
		case "s":
			m.createSendForm()
		case "r":
			m.receiveQR = rpc.GenerateQRCode(m.watchAddr)
			m.addLog("info", "Receive address "+helpers.ShortenAddr(m.watchAddr))
			return m, copyToClipboard(m.watchAddr)
		case "v":
			m.walletTab = wallet.TabConvert
			m.createConvertForm()
		case "w":
			if !m.rpcConnected {
				if m.rpcConnecting || m.rpcURL == "" {
					return m, nil
				}
				m.rpcConnecting = true
				m.addLog("info", "Connecting to "+m.rpcURL)
				return m, connectRPC(m.rpcURL)
			}
			if !m.sessionBusy {
				m.sessionBusy = true
				m.addLog("info", "Loading session for "+helpers.ShortenAddr(m.watchAddr))
				return m, loadWalletSession(m.ethClient, m.watchAddr, m.tokenWatch)
			}
		case "x":
			if m.rpcConnected {
				m.ethClient.Disconnect()
				m.ethClient = nil
				m.rpcConnected = false
				m.sessionLoaded = false
				m.chainSession = rpc.Session{}
				m.addLog("info", "Disconnected wallet session")
			}
		case "esc":
			m.receiveQR = ""
		}
		return m, nil

	case session.ScreenProjects:
		switch msg.String() {
		case "up", "k":
			m.projectIdx = clampCursor(m.projectIdx-1, len(m.projects))
		case "down", "j":
			m.projectIdx = clampCursor(m.projectIdx+1, len(m.projects))
		case "enter":
			if m.projectIdx >= 0 && m.projectIdx < len(m.projects) {
				m.createContributeForm(m.projects[m.projectIdx])
			}
		}
		return m, nil

	case session.ScreenProfile:
		switch msg.String() {
		case "i":
			if !m.idx.Configured() {
				return m, m.showNotice(session.Notice{
					Level: session.NoticeInfo,
					Title: "Indexer not configured",
				})
			}
			if !m.indexing {
				m.indexing = true
				m.addLog("info", "Indexing wallet "+helpers.ShortenAddr(m.watchAddr))
				return m, loadOwnedTokens(m.idx, m.watchAddr)
			}
		case "o":
			n := m.sess.SignOut()
			m.homeIdx, m.marketIdx, m.projectIdx = 0, 0, 0
			m.slideIdx = 0
			m.query = ""
			m.searchInput.SetValue("")
			m.receiveQR = ""
			// tear down the live wallet session with the identity
			m.ethClient.Disconnect()
			m.ethClient = nil
			m.rpcConnected = false
			m.sessionLoaded = false
			m.sessionBusy = false
			m.chainSession = rpc.Session{}
			m.txs = nil
			m.onchain = nil
			m.acct.SignOut()
			m.createSignInForm()
			return m, m.showNotice(n)
		}
		return m, nil
	}

	return m, nil
}

// ownsItem reports whether the signed-in user holds the item
func (m *model) ownsItem(id string) bool {
	for _, it := range m.sess.Owned() {
		if it.ID == id {
			return true
		}
	}
	return false
}

// saveConfig persists the current settings to disk
func (m *model) saveConfig() {
	m.cfg.Logger = m.logEnabled
	config.Save(m.configPath, m.cfg)
}
