package rpc

import (
	"bytes"
	"context"
	"math/big"
	"sort"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/mdp/qrterminal/v3"
)

// Client wraps an Ethereum RPC client
type Client struct {
	*ethclient.Client
	URL string
}

// ConnectResult holds the result of an RPC connection attempt
type ConnectResult struct {
	Client *Client
	Error  error
}

// Connect attempts to connect to an Ethereum RPC endpoint
func Connect(url string) ConnectResult {
	return ConnectWithTimeout(url, 8*time.Second)
}

// ConnectWithTimeout attempts to connect with a custom timeout
func ConnectWithTimeout(url string, timeout time.Duration) ConnectResult {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	client, err := ethclient.DialContext(ctx, url)
	if err != nil {
		return ConnectResult{Client: nil, Error: err}
	}

	return ConnectResult{
		Client: &Client{
			Client: client,
			URL:    url,
		},
		Error: nil,
	}
}

// Disconnect closes the underlying connection. Safe on a nil client.
func (c *Client) Disconnect() {
	if c == nil || c.Client == nil {
		return
	}
	c.Close()
}

// TokenBalance represents an ERC20 token balance
type TokenBalance struct {
	Symbol   string
	Decimals uint8
	Balance  *big.Int
}

// WatchedToken represents a token to query
type WatchedToken struct {
	Symbol   string
	Decimals uint8
	Address  common.Address
}

// DefaultWatchlist is the starter token set queried for a session (Mainnet).
func DefaultWatchlist() []WatchedToken {
	return []WatchedToken{
		{Symbol: "WETH", Decimals: 18, Address: common.HexToAddress("0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2")},
		{Symbol: "USDC", Decimals: 6, Address: common.HexToAddress("0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48")},
		{Symbol: "USDT", Decimals: 6, Address: common.HexToAddress("0xdAC17F958D2ee523a2206206994597C13D831ec7")},
		{Symbol: "DAI", Decimals: 18, Address: common.HexToAddress("0x6B175474E89094C44Da98b954EedeAC495271d0F")},
	}
}

// Session is the live wallet-session snapshot: address, chain, native balance
// and watched token balances.
type Session struct {
	Address    string
	ChainID    *big.Int
	EthWei     *big.Int
	Tokens     []TokenBalance
	LoadedAt   time.Time
	ErrMessage string
}

// LoadSession fetches the chain id plus ETH and token balances for an address
func LoadSession(client *Client, addr common.Address, watch []WatchedToken) Session {
	return LoadSessionWithTimeout(client, addr, watch, 12*time.Second)
}

// LoadSessionWithTimeout fetches the session snapshot with a custom timeout
func LoadSessionWithTimeout(client *Client, addr common.Address, watch []WatchedToken, timeout time.Duration) Session {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	s := Session{
		Address:  addr.Hex(),
		EthWei:   big.NewInt(0),
		LoadedAt: time.Now(),
	}

	if client == nil || client.Client == nil {
		s.ErrMessage = "No RPC client (set ETH_RPC_URL)."
		return s
	}

	chainID, err := client.ChainID(ctx)
	if err != nil {
		s.ErrMessage = "Failed to query chain id."
		return s
	}
	s.ChainID = chainID

	// ETH balance
	wei, err := client.BalanceAt(ctx, addr, nil)
	if err != nil {
		s.ErrMessage = "Failed to load ETH balance."
		return s
	}
	s.EthWei = wei

	// ERC20 balances (simple sequential calls)
	var toks []TokenBalance
	for _, t := range watch {
		bal, err := erc20BalanceOf(ctx, client.Client, t.Address, addr)
		if err != nil {
			// skip token silently; the session stays partially populated
			continue
		}
		if bal.Sign() > 0 {
			toks = append(toks, TokenBalance{
				Symbol:   t.Symbol,
				Decimals: t.Decimals,
				Balance:  bal,
			})
		}
	}

	sort.Slice(toks, func(i, j int) bool {
		return strings.ToLower(toks[i].Symbol) < strings.ToLower(toks[j].Symbol)
	})
	s.Tokens = toks

	return s
}

// Minimal ERC20 balanceOf via eth_call.
var (
	// balanceOf(address) methodID = keccak256("balanceOf(address)")[:4]
	balanceOfSelector = []byte{0x70, 0xa0, 0x82, 0x31}
)

func erc20BalanceOf(ctx context.Context, client *ethclient.Client, token common.Address, owner common.Address) (*big.Int, error) {
	// calldata = selector + 32-byte left-padded address
	padded := common.LeftPadBytes(owner.Bytes(), 32)
	data := append(balanceOfSelector, padded...)

	msg := ethereum.CallMsg{
		To:   &token,
		Data: data,
	}
	out, err := client.CallContract(ctx, msg, nil)
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return big.NewInt(0), nil
	}
	return new(big.Int).SetBytes(out), nil
}

// GenerateQRCode renders data (typically a receive address) as a terminal QR
// code string.
func GenerateQRCode(data string) string {
	var buf bytes.Buffer
	qrterminal.GenerateWithConfig(data, qrterminal.Config{
		Level:     qrterminal.L,
		Writer:    &buf,
		BlackChar: qrterminal.BLACK,
		WhiteChar: qrterminal.WHITE,
		QuietZone: 1,
	})
	return buf.String()
}
