package helpers

import (
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestShortenAddr(t *testing.T) {
	assert.Equal(t, "0xd8dA…6045", ShortenAddr("0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045"))
	assert.Equal(t, "0xabc", ShortenAddr("0xabc"))
}

func TestIsValidEthAddress(t *testing.T) {
	assert.True(t, IsValidEthAddress("0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045"))
	assert.False(t, IsValidEthAddress("d8dA6BF26964aF9D7eEd9e03E53415D37aA96045"))
	assert.False(t, IsValidEthAddress("0x123"))
	assert.False(t, IsValidEthAddress(""))
}

func TestFormatETH(t *testing.T) {
	assert.Equal(t, "0 ETH", FormatETH(nil))
	assert.Equal(t, "1.500000 ETH", FormatETH(big.NewInt(1_500_000_000_000_000_000)))
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "12.5 ETH", FormatAmount(12.5))
	assert.Equal(t, "3 ETH", FormatAmount(3))
	assert.Equal(t, "0.0001 ETH", FormatAmount(0.0001))
}

func TestFormatToken(t *testing.T) {
	assert.Equal(t, "0 USDC", FormatToken(nil, 6, "USDC"))
	assert.Equal(t, "25.0000 USDC", FormatToken(big.NewInt(25_000_000), 6, "USDC"))
}

func TestLoadedAt(t *testing.T) {
	assert.Equal(t, "loading…", LoadedAt(time.Time{}, true))
	assert.Equal(t, "never", LoadedAt(time.Time{}, false))
	assert.Equal(t, "13:14:15", LoadedAt(time.Date(2026, 1, 2, 13, 14, 15, 0, time.UTC), false))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "hello", Truncate("hello", 10))
	assert.Equal(t, "hell…", Truncate("hello world", 5))
}

func TestChainName(t *testing.T) {
	assert.Equal(t, "unknown", ChainName(nil))
	assert.Equal(t, "Ethereum Mainnet", ChainName(big.NewInt(1)))
	assert.Equal(t, "Sepolia", ChainName(big.NewInt(11155111)))
	assert.Equal(t, "chain 42", ChainName(big.NewInt(42)))
}
