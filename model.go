package main

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"kryptoart-tui/auth"
	"kryptoart-tui/config"
	"kryptoart-tui/indexer"
	"kryptoart-tui/market"
	"kryptoart-tui/pinner"
	"kryptoart-tui/rpc"
	"kryptoart-tui/session"
	"kryptoart-tui/styles"
	"kryptoart-tui/views/marketplace"
	"kryptoart-tui/views/wallet"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// defaultWatchAddress is shown on the receive screen and indexed on the
// profile when no WALLET_ADDRESS is configured.
const defaultWatchAddress = "0x742d35Cc6634C0532925a3b844Bc454e4438f44e"

// -------------------- MODEL --------------------

// model represents the application state following The Elm Architecture
type model struct {
	w, h int

	// screen router and simulated economy
	sess *session.Controller
	acct *auth.Provider

	// seeded content
	catalog  []market.Item
	projects []market.Project

	// listing cursors
	homeIdx    int
	marketIdx  int
	projectIdx int

	// onboarding slide position
	slideIdx int

	// marketplace state
	marketTab   marketplace.Tab
	searching   bool
	searchInput textinput.Model
	query       string
	band        market.PriceBand

	// wallet state
	walletTab     wallet.Tab
	txs           []wallet.Tx
	receiveQR     string
	watchAddr     string
	rpcURL        string
	ethClient     *rpc.Client
	rpcConnected  bool
	rpcConnecting bool
	tokenWatch    []rpc.WatchedToken
	chainSession  rpc.Session
	sessionLoaded bool
	sessionBusy   bool

	// external collaborators
	idx *indexer.Service
	pin *pinner.Service

	// profile on-chain listing
	onchain  []indexer.Token
	indexing bool

	// mint pipeline
	uploading bool
	pinning   bool

	// forms (huh), one active at a time per screen
	authForm       *huh.Form
	createForm     *huh.Form
	sendForm       *huh.Form
	convertForm    *huh.Form
	contributeForm *huh.Form
	authError      string

	// toast
	notice   session.Notice
	noticeAt time.Time

	spin spinner.Model

	// config
	cfg        config.Config
	configPath string

	// logger panel
	logEnabled  bool
	logger      *log.Logger
	logBuffer   *strings.Builder
	logViewport viewport.Model
	logReady    bool
	logSpinner  spinner.Model
}

// -------------------- INIT --------------------

// newModel creates and initializes a new model with configuration from disk
func newModel() model {
	// config path
	homeDir, _ := os.UserHomeDir()
	configPath := filepath.Join(homeDir, ".kryptoart-config.json")

	// load config, environment wins over file
	cfg := config.ApplyEnv(config.LoadOrCreate(configPath))

	watchAddr := strings.TrimSpace(os.Getenv("WALLET_ADDRESS"))
	if watchAddr == "" {
		watchAddr = defaultWatchAddress
	}

	// search input for the marketplace
	in := textinput.New()
	in.Placeholder = "Search items, collections…"
	in.Prompt = "/ "
	in.PromptStyle = lipgloss.NewStyle().Foreground(styles.CAccent)
	in.TextStyle = lipgloss.NewStyle().Foreground(styles.CText)
	in.Cursor.Style = lipgloss.NewStyle().Foreground(styles.CAccent2)
	in.CharLimit = 40
	in.Width = 32

	// spinner
	sp := spinner.New()
	sp.Spinner = spinner.Line
	sp.Style = lipgloss.NewStyle().Foreground(styles.CAccent2)

	// log viewport, resized on first WindowSizeMsg
	vp := viewport.New(0, 20)
	vp.Style = lipgloss.NewStyle().
		Foreground(styles.CText).
		Background(styles.CPanel)

	logSpin := spinner.New()
	logSpin.Spinner = spinner.Dot
	logSpin.Style = lipgloss.NewStyle().Foreground(styles.CAccent2)

	m := model{
		sess:        session.New(),
		acct:        auth.NewProvider(),
		catalog:     market.Catalog(),
		projects:    market.Projects(),
		searchInput: in,
		spin:        sp,
		watchAddr:   watchAddr,
		rpcURL:      cfg.ActiveRPC(),
		tokenWatch:  rpc.DefaultWatchlist(),
		idx:         indexer.New(cfg.Credentials.IndexerAPIKey),
		pin:         pinner.New(cfg.Credentials.PinningToken),
		cfg:         cfg,
		configPath:  configPath,
		logEnabled:  cfg.Logger,
		logBuffer:   &strings.Builder{},
		logViewport: vp,
		logSpinner:  logSpin,
	}

	return m
}

// Init implements tea.Model interface and returns initial commands
func (m *model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spin.Tick, splashTimer()}
	if m.logEnabled {
		cmds = append(cmds, initLogViewport(), m.logSpinner.Tick)
	}
	// connect if rpc is set
	if m.rpcURL != "" {
		m.rpcConnecting = true
		cmds = append(cmds, connectRPC(m.rpcURL))
	}
	return tea.Batch(cmds...)
}
