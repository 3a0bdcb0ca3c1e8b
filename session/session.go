// Package session holds the application state behind the screen router: the
// active screen, cross-screen payloads, the owned/liked/contributed
// collections and the simulated wallet balance. All mutation goes through
// named methods so the state machine can be exercised without a terminal.
package session

import (
	"fmt"
	"time"

	uuid "github.com/nu7hatch/gouuid"

	"kryptoart-tui/market"
)

// Screen identifies the active full-page view. Exactly one is active.
type Screen int

const (
	ScreenSplash Screen = iota
	ScreenOnboarding
	ScreenSignIn
	ScreenSignUp
	ScreenHome
	ScreenCreate
	ScreenMint
	ScreenMarketplace
	ScreenDetail
	ScreenWallet
	ScreenProjects
	ScreenProfile
)

func (s Screen) String() string {
	switch s {
	case ScreenSplash:
		return "splash"
	case ScreenOnboarding:
		return "onboarding"
	case ScreenSignIn:
		return "sign-in"
	case ScreenSignUp:
		return "sign-up"
	case ScreenHome:
		return "home"
	case ScreenCreate:
		return "create-item"
	case ScreenMint:
		return "mint-confirm"
	case ScreenMarketplace:
		return "marketplace"
	case ScreenDetail:
		return "item-detail"
	case ScreenWallet:
		return "wallet"
	case ScreenProjects:
		return "projects"
	case ScreenProfile:
		return "profile"
	}
	return "unknown"
}

// NoticeLevel classifies a transient notification.
type NoticeLevel int

const (
	NoticeSuccess NoticeLevel = iota
	NoticeInfo
	NoticeError
)

// Notice is a fire-and-forget notification produced by a handler. It never
// blocks a transition; the zero value means nothing to show.
type Notice struct {
	Level  NoticeLevel
	Title  string
	Detail string
}

// IsZero reports whether there is nothing to display.
func (n Notice) IsZero() bool { return n.Title == "" && n.Detail == "" }

// StartingBalance is the seeded simulated wallet balance in ETH.
const StartingBalance = 12.5

// Controller owns all session state. It is deliberately unaware of rendering;
// the Bubble Tea update loop drives it and displays the notices it returns.
type Controller struct {
	screen      Screen
	identity    string
	draft       *market.Draft
	selected    *market.Item
	owned       []market.Item
	liked       map[string]bool
	contributed map[string]bool
	balance     float64
}

// New returns a controller at the splash screen with the seeded balance.
func New() *Controller {
	return &Controller{
		screen:      ScreenSplash,
		liked:       make(map[string]bool),
		contributed: make(map[string]bool),
		balance:     StartingBalance,
	}
}

func (c *Controller) Screen() Screen      { return c.screen }
func (c *Controller) Identity() string    { return c.identity }
func (c *Controller) SignedIn() bool      { return c.identity != "" }
func (c *Controller) Balance() float64    { return c.balance }
func (c *Controller) Owned() []market.Item { return c.owned }
func (c *Controller) OwnedCount() int     { return len(c.owned) }
func (c *Controller) Draft() *market.Draft { return c.draft }
func (c *Controller) Selected() *market.Item { return c.selected }

// Liked reports membership in the liked set.
func (c *Controller) Liked(id string) bool { return c.liked[id] }

// LikedCount returns the size of the liked set.
func (c *Controller) LikedCount() int { return len(c.liked) }

// Contributed reports whether the user has contributed to the project at
// least once.
func (c *Controller) Contributed(projectID string) bool { return c.contributed[projectID] }

// ChromeVisible derives bottom-navigation visibility from the active screen.
func (c *Controller) ChromeVisible() bool {
	switch c.screen {
	case ScreenHome, ScreenMarketplace, ScreenWallet, ScreenProjects, ScreenProfile:
		return true
	}
	return false
}

// FinishSplash advances past the splash screen once its timer elapses.
func (c *Controller) FinishSplash() {
	if c.screen == ScreenSplash {
		c.screen = ScreenOnboarding
	}
}

// FinishOnboarding moves to sign-in, whether completed or skipped.
func (c *Controller) FinishOnboarding() {
	if c.screen == ScreenOnboarding {
		c.screen = ScreenSignIn
	}
}

// SignIn records the session identity and lands on home.
func (c *Controller) SignIn(name string) {
	c.identity = name
	c.screen = ScreenHome
}

// SignOut clears the session identity and returns to sign-in. Valid from any
// screen; pending draft and selection do not survive the session.
func (c *Controller) SignOut() Notice {
	c.identity = ""
	c.draft = nil
	c.selected = nil
	c.screen = ScreenSignIn
	return Notice{Level: NoticeSuccess, Title: "Logged out successfully"}
}

// Navigate switches to a screen that carries no payload. Requesting a
// payload-bearing screen without its payload resolves to the documented
// fallback instead of a null-data render. Leaving the mint confirmation
// discards the pending draft.
func (c *Controller) Navigate(s Screen) {
	if c.screen == ScreenMint && s != ScreenMint {
		c.draft = nil
	}
	switch s {
	case ScreenMint:
		if c.draft == nil {
			c.screen = ScreenHome
			return
		}
	case ScreenDetail:
		if c.selected == nil {
			c.screen = ScreenMarketplace
			return
		}
	}
	c.screen = s
}

// OpenDraft stores a well-formed creation payload and moves to the mint
// confirmation screen.
func (c *Controller) OpenDraft(d market.Draft) {
	c.draft = &d
	c.screen = ScreenMint
}

// ConfirmMint converts the pending draft into an owned item, clears the
// draft and lands on the marketplace.
func (c *Controller) ConfirmMint() Notice {
	if c.draft == nil {
		c.screen = ScreenHome
		return Notice{}
	}
	d := *c.draft
	item := market.Item{
		ID:         newItemID(),
		Title:      d.Title,
		Creator:    c.identity,
		Price:      d.Price,
		Collection: d.Collection,
		Blockchain: d.Blockchain,
		Image:      d.ImagePath,
		ContentURI: d.ImageURI,
		Attributes: d.Attributes,
	}
	c.owned = append(c.owned, item)
	c.draft = nil
	c.screen = ScreenMarketplace
	return Notice{
		Level:  NoticeSuccess,
		Title:  "NFT minted successfully!",
		Detail: fmt.Sprintf("%s is now on the blockchain", item.Title),
	}
}

// OpenItem stores the tapped item and moves to the detail screen. A later
// selection supersedes the previous one.
func (c *Controller) OpenItem(it market.Item) {
	c.selected = &it
	c.screen = ScreenDetail
}

// ToggleLike flips membership in the liked set.
func (c *Controller) ToggleLike(id string) Notice {
	if id == "" {
		return Notice{}
	}
	if c.liked[id] {
		delete(c.liked, id)
		return Notice{Level: NoticeInfo, Title: "Removed from favorites"}
	}
	c.liked[id] = true
	return Notice{Level: NoticeSuccess, Title: "Added to favorites"}
}

// Purchase debits the simulated balance and appends the item to the owned
// collection, returning to the marketplace. Insufficient funds leaves every
// piece of state untouched.
func (c *Controller) Purchase(it market.Item) Notice {
	price, ok := market.ParsePrice(it.Price)
	if !ok {
		return Notice{Level: NoticeError, Title: "Invalid price", Detail: it.Price}
	}
	if price > c.balance {
		return Notice{
			Level:  NoticeError,
			Title:  "Insufficient funds",
			Detail: "Please add more ETH to your wallet",
		}
	}
	c.balance -= price
	c.owned = append(c.owned, it)
	c.screen = ScreenMarketplace
	return Notice{
		Level:  NoticeSuccess,
		Title:  fmt.Sprintf("Successfully purchased %s!", it.Title),
		Detail: fmt.Sprintf("You now own this NFT for %s ETH", it.Price),
	}
}

// Contribute debits the balance and records one-shot membership in the
// contributed set. Membership is idempotent; the debit is cumulative.
func (c *Controller) Contribute(projectID string, amount float64) Notice {
	if amount <= 0 {
		return Notice{Level: NoticeError, Title: "Please enter a valid contribution amount"}
	}
	if amount > c.balance {
		return Notice{
			Level:  NoticeError,
			Title:  "Insufficient funds",
			Detail: "Please add more ETH to your wallet",
		}
	}
	c.balance -= amount
	c.contributed[projectID] = true
	return Notice{
		Level:  NoticeSuccess,
		Title:  "Contribution successful!",
		Detail: fmt.Sprintf("You contributed %.2f ETH to the project", amount),
	}
}

// Send debits the balance for an outbound transfer.
func (c *Controller) Send(amount float64) Notice {
	if amount <= 0 {
		return Notice{Level: NoticeError, Title: "Please enter a valid amount"}
	}
	if amount > c.balance {
		return Notice{
			Level:  NoticeError,
			Title:  "Insufficient funds",
			Detail: "Please add more ETH to your wallet",
		}
	}
	c.balance -= amount
	return Notice{
		Level:  NoticeSuccess,
		Title:  "Transaction sent!",
		Detail: fmt.Sprintf("%.4f ETH sent successfully", amount),
	}
}

// Convert reports a simulated currency conversion. Balances are not touched;
// the conversion is display-only in this variant.
func (c *Controller) Convert(amount float64, from, to string) Notice {
	if amount <= 0 {
		return Notice{Level: NoticeError, Title: "Please enter a valid amount"}
	}
	if from == to {
		return Notice{Level: NoticeError, Title: "Choose two different currencies"}
	}
	return Notice{
		Level:  NoticeSuccess,
		Title:  "Conversion successful!",
		Detail: fmt.Sprintf("Converted %.4f %s to %s", amount, from, to),
	}
}

func newItemID() string {
	id, err := uuid.NewV4()
	if err != nil {
		return fmt.Sprintf("itm-%d", time.Now().UnixNano())
	}
	return id.String()
}
