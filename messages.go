package main

import (
	"kryptoart-tui/indexer"
	"kryptoart-tui/rpc"
)

// -------------------- TEA MESSAGES --------------------
// All custom message types for The Elm Architecture

// splashDoneMsg fires when the boot timer elapses
type splashDoneMsg struct{}

// logInitMsg signals that log viewport should be initialized
type logInitMsg struct{}

// rpcConnectedMsg contains result of RPC connection attempt
type rpcConnectedMsg struct {
	client *rpc.Client
	err    error
}

// walletSessionMsg contains the on-chain wallet session after loading
type walletSessionMsg struct {
	s rpc.Session
}

// ownedTokensMsg contains the indexer result for the profile screen
type ownedTokensMsg struct {
	owner  string
	tokens []indexer.Token
	err    error
}

// assetPinnedMsg contains the gateway URL of a pinned artwork file
type assetPinnedMsg struct {
	uri string
	err error
}

// metadataPinnedMsg contains the gateway URL of the pinned token metadata
type metadataPinnedMsg struct {
	uri string
	err error
}

// clipboardCopiedMsg indicates clipboard copy completed
type clipboardCopiedMsg struct{}

// clearNoticeMsg expires the current toast
type clearNoticeMsg struct{}
