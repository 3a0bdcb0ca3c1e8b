// Package auth provides the identity boundary for the app. This variant is an
// in-memory provider: accounts live for the process lifetime and the display
// name is derived from the email address. The interface mirrors what a hosted
// provider would expose so one can be substituted later.
package auth

import (
	"errors"
	"strings"
	"sync"
)

var (
	ErrInvalidCredentials = errors.New("auth: invalid email or password")
	ErrAccountExists      = errors.New("auth: account already exists")
	ErrEmptyEmail         = errors.New("auth: email is required")
	ErrWeakPassword       = errors.New("auth: password must be at least 6 characters")
)

// Identity is the signed-in user snapshot. The zero value means signed out.
type Identity struct {
	Email       string
	DisplayName string
}

// Provider manages sign-in state.
type Provider struct {
	mu       sync.Mutex
	accounts map[string]string // email -> password
	current  Identity
}

// NewProvider returns an empty provider with no accounts.
func NewProvider() *Provider {
	return &Provider{accounts: make(map[string]string)}
}

// SignUp registers a new account and signs it in. A duplicate email is
// resolved by falling back to sign-in with the given credentials rather than
// surfacing a hard error.
func (p *Provider) SignUp(email, password string) (Identity, error) {
	email = normalize(email)
	if email == "" {
		return Identity{}, ErrEmptyEmail
	}
	if len(password) < 6 {
		return Identity{}, ErrWeakPassword
	}

	p.mu.Lock()
	_, exists := p.accounts[email]
	if !exists {
		p.accounts[email] = password
	}
	p.mu.Unlock()

	if exists {
		return p.SignIn(email, password)
	}
	return p.establish(email), nil
}

// SignIn authenticates an existing account. Unknown emails are accepted and
// registered on the fly, matching the simulated-economy variant where any
// credentials open a fresh session.
func (p *Provider) SignIn(email, password string) (Identity, error) {
	email = normalize(email)
	if email == "" {
		return Identity{}, ErrEmptyEmail
	}
	if password == "" {
		return Identity{}, ErrInvalidCredentials
	}

	p.mu.Lock()
	stored, exists := p.accounts[email]
	if !exists {
		p.accounts[email] = password
	}
	p.mu.Unlock()

	if exists && stored != password {
		return Identity{}, ErrInvalidCredentials
	}
	return p.establish(email), nil
}

// SignOut clears the current identity.
func (p *Provider) SignOut() {
	p.mu.Lock()
	p.current = Identity{}
	p.mu.Unlock()
}

// Current returns the signed-in identity snapshot, zero when signed out.
func (p *Provider) Current() Identity {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

func (p *Provider) establish(email string) Identity {
	id := Identity{Email: email, DisplayName: DisplayName(email)}
	p.mu.Lock()
	p.current = id
	p.mu.Unlock()
	return id
}

// DisplayName derives a display name from an email address: the local part,
// lowercased. "alice@x.com" becomes "alice".
func DisplayName(email string) string {
	email = normalize(email)
	if at := strings.IndexByte(email, '@'); at > 0 {
		return email[:at]
	}
	return email
}

func normalize(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
