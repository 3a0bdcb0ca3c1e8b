package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOrCreateRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg := LoadOrCreate(path)
	assert.Equal(t, DefaultConfig(), cfg)

	cfg.Logger = true
	cfg.Credentials.IndexerAPIKey = "key-from-file"
	Save(path, cfg)

	again := LoadOrCreate(path)
	assert.True(t, again.Logger)
	assert.Equal(t, "key-from-file", again.Credentials.IndexerAPIKey)
}

func TestLoadMissingFile(t *testing.T) {
	cfg := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Equal(t, Config{}, cfg)
}

func TestApplyEnvOverridesFile(t *testing.T) {
	t.Setenv("ALCHEMY_API_KEY", "env-key")
	t.Setenv("PINATA_JWT", "env-jwt")
	t.Setenv("ETH_RPC_URL", "https://rpc.example")
	t.Setenv("WALLETCONNECT_PROJECT_ID", "env-project")

	cfg := DefaultConfig()
	cfg.Credentials.IndexerAPIKey = "file-key"

	cfg = ApplyEnv(cfg)

	assert.Equal(t, "env-key", cfg.Credentials.IndexerAPIKey)
	assert.Equal(t, "env-jwt", cfg.Credentials.PinningToken)
	assert.Equal(t, "env-project", cfg.Credentials.WalletConnectProjectID)
	assert.Equal(t, "https://rpc.example", cfg.ActiveRPC())

	// the file endpoint survives but is no longer active
	require.Len(t, cfg.RPCURLs, 2)
	assert.False(t, cfg.RPCURLs[1].Active)
}

func TestActiveRPCEmpty(t *testing.T) {
	assert.Equal(t, "", Config{}.ActiveRPC())
}
