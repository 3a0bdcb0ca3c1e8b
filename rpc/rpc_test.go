package rpc

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

func TestConnect(t *testing.T) {
	// Get RPC URL from environment
	rpcURL := os.Getenv("ETH_RPC_URL")
	if rpcURL == "" {
		t.Skip("ETH_RPC_URL not set, skipping connection test")
	}

	t.Run("successful connection", func(t *testing.T) {
		result := Connect(rpcURL)

		if result.Error != nil {
			t.Fatalf("Failed to connect to RPC: %v", result.Error)
		}

		if result.Client == nil {
			t.Fatal("Client is nil despite no error")
		}

		if result.Client.URL != rpcURL {
			t.Errorf("Expected URL %s, got %s", rpcURL, result.Client.URL)
		}
	})

	t.Run("invalid URL fails fast", func(t *testing.T) {
		result := ConnectWithTimeout("http://127.0.0.1:1", 2*time.Second)
		if result.Error == nil && result.Client != nil {
			// Dial on http is lazy; a session load must then surface the error
			s := LoadSessionWithTimeout(result.Client, common.Address{}, nil, 2*time.Second)
			if s.ErrMessage == "" {
				t.Error("expected an error message from an unreachable endpoint")
			}
		}
	})
}

func TestLoadSessionWithoutClient(t *testing.T) {
	addr := common.HexToAddress("0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045")

	s := LoadSession(nil, addr, DefaultWatchlist())

	if s.ErrMessage == "" {
		t.Error("expected an error message when no client is configured")
	}
	if s.Address != addr.Hex() {
		t.Errorf("expected address %s, got %s", addr.Hex(), s.Address)
	}
	if s.EthWei == nil || s.EthWei.Sign() != 0 {
		t.Errorf("expected zero balance placeholder, got %v", s.EthWei)
	}
}

func TestLoadSessionIntegration(t *testing.T) {
	rpcURL := os.Getenv("ETH_RPC_URL")
	if rpcURL == "" {
		t.Skip("ETH_RPC_URL not set, skipping integration test")
	}

	result := Connect(rpcURL)
	if result.Error != nil {
		t.Fatalf("Failed to connect: %v", result.Error)
	}

	addr := common.HexToAddress("0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045")
	s := LoadSession(result.Client, addr, DefaultWatchlist())

	if s.ErrMessage != "" {
		t.Fatalf("session load failed: %s", s.ErrMessage)
	}
	if s.ChainID == nil {
		t.Error("expected a chain id")
	}
	if s.EthWei == nil {
		t.Error("expected a balance")
	}
	t.Logf("chain %s, balance %s wei, %d tokens", s.ChainID, s.EthWei, len(s.Tokens))
}

func TestGenerateQRCode(t *testing.T) {
	qr := GenerateQRCode("0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045")
	if qr == "" {
		t.Fatal("expected non-empty QR output")
	}
	if len(strings.Split(strings.TrimSpace(qr), "\n")) < 10 {
		t.Error("expected a multi-line QR grid")
	}
}
