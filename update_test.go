package main

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kryptoart-tui/auth"
	"kryptoart-tui/indexer"
	"kryptoart-tui/market"
	"kryptoart-tui/pinner"
	"kryptoart-tui/rpc"
	"kryptoart-tui/session"
	"kryptoart-tui/views/wallet"
)

func signedInModel() *model {
	m := &model{
		sess:     session.New(),
		acct:     auth.NewProvider(),
		catalog:  market.Catalog(),
		projects: market.Projects(),
		idx:      indexer.New(""),
		pin:      pinner.New("test-token"),
	}
	m.sess.FinishSplash()
	m.sess.FinishOnboarding()
	m.sess.SignIn("alice")
	return m
}

func TestAssetPinFailureKeepsMintPending(t *testing.T) {
	m := signedInModel()
	m.sess.OpenDraft(market.Draft{Title: "Nova", Price: "1.2", Blockchain: "Ethereum", ImagePath: "art.png"})
	m.uploading = true

	_, _ = m.Update(assetPinnedMsg{err: errors.New("pinata: 500")})

	assert.Equal(t, session.ScreenMint, m.sess.Screen())
	assert.Equal(t, 0, m.sess.OwnedCount())
	require.NotNil(t, m.sess.Draft())
	assert.False(t, m.uploading)
	assert.Equal(t, session.NoticeError, m.notice.Level)
	assert.Equal(t, "Failed to upload image to IPFS", m.notice.Title)
}

func TestMetadataPinFailureKeepsMintPending(t *testing.T) {
	m := signedInModel()
	m.sess.OpenDraft(market.Draft{Title: "Nova", Price: "1.2"})
	m.pinning = true

	_, _ = m.Update(metadataPinnedMsg{err: errors.New("pinata: timeout")})

	assert.Equal(t, session.ScreenMint, m.sess.Screen())
	assert.Equal(t, 0, m.sess.OwnedCount())
	require.NotNil(t, m.sess.Draft())
	assert.Equal(t, session.NoticeError, m.notice.Level)
}

func TestStalePinResultsIgnored(t *testing.T) {
	m := signedInModel()
	m.sess.Navigate(session.ScreenWallet)

	// no upload in flight, so late resolutions must be dropped
	_, _ = m.Update(assetPinnedMsg{uri: "https://gateway.pinata.cloud/ipfs/QmAsset"})
	assert.Equal(t, session.ScreenWallet, m.sess.Screen())
	assert.Equal(t, 0, m.sess.OwnedCount())

	_, _ = m.Update(metadataPinnedMsg{uri: "https://gateway.pinata.cloud/ipfs/QmMeta"})
	assert.Equal(t, session.ScreenWallet, m.sess.Screen())
	assert.Equal(t, 0, m.sess.OwnedCount())
	assert.True(t, m.notice.IsZero())
}

func TestSignOutClearsWalletSession(t *testing.T) {
	m := signedInModel()
	m.sess.Navigate(session.ScreenProfile)
	m.ethClient = &rpc.Client{URL: "https://rpc.example.invalid"}
	m.rpcConnected = true
	m.sessionLoaded = true
	m.chainSession = rpc.Session{Address: "0x742d35Cc6634C0532925a3b844Bc454e4438f44e"}
	m.txs = []wallet.Tx{{Label: "Purchased Nova", Amount: -1.2}}
	m.onchain = []indexer.Token{{TokenID: "1", Name: "Drift"}}

	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("o")})

	assert.Equal(t, session.ScreenSignIn, m.sess.Screen())
	assert.Nil(t, m.ethClient)
	assert.False(t, m.rpcConnected)
	assert.False(t, m.sessionLoaded)
	assert.Empty(t, m.chainSession.Address)
	assert.Nil(t, m.txs)
	assert.Nil(t, m.onchain)
}
