package indexer

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetadataURLs(t *testing.T) {
	t.Run("ipfs scheme fans out across gateways", func(t *testing.T) {
		urls := MetadataURLs("ipfs://QmHash123")
		require.Len(t, urls, len(Gateways))
		assert.Equal(t, "https://ipfs.io/ipfs/QmHash123", urls[0])
		assert.Equal(t, "https://gateway.pinata.cloud/ipfs/QmHash123", urls[1])
	})

	t.Run("gateway URL is re-fanned from its hash", func(t *testing.T) {
		urls := MetadataURLs("https://dweb.link/ipfs/QmHash123")
		require.Len(t, urls, len(Gateways))
		assert.Equal(t, "https://ipfs.io/ipfs/QmHash123", urls[0])
	})

	t.Run("plain http URL passes through", func(t *testing.T) {
		urls := MetadataURLs("https://example.com/meta.json")
		assert.Equal(t, []string{"https://example.com/meta.json"}, urls)
	})

	t.Run("empty URI yields nothing", func(t *testing.T) {
		assert.Nil(t, MetadataURLs(""))
	})
}

func TestNormalizeContentURL(t *testing.T) {
	assert.Equal(t, "https://ipfs.io/ipfs/QmX", NormalizeContentURL("ipfs://QmX"))
	assert.Equal(t, "https://ipfs.io/ipfs/QmX", NormalizeContentURL("https://nftstorage.link/ipfs/QmX"))
	assert.Equal(t, "https://example.com/a.png", NormalizeContentURL("https://example.com/a.png"))
	assert.Equal(t, "", NormalizeContentURL(""))
}

func TestOwnedTokensResolvesMetadata(t *testing.T) {
	var metaServer *httptest.Server
	metaServer = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"name":"Nova","description":"first mint","image":"ipfs://QmImg"}`)
	}))
	defer metaServer.Close()

	apiServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "/test-key/getNFTsForOwner")
		assert.Equal(t, "0xabc", r.URL.Query().Get("owner"))
		fmt.Fprintf(w, `{"ownedNfts":[{"tokenId":"7","tokenUri":%q,"contract":{"address":"0xc0ffee","name":"KryptoArt"}}]}`, metaServer.URL)
	}))
	defer apiServer.Close()

	svc := NewWithBaseURL("test-key", apiServer.URL)

	tokens, err := svc.OwnedTokens(context.Background(), "0xabc")
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	assert.Equal(t, "Nova", tokens[0].Name)
	assert.Equal(t, "first mint", tokens[0].Description)
	assert.Equal(t, "https://ipfs.io/ipfs/QmImg", tokens[0].Image)
	assert.Equal(t, "KryptoArt", tokens[0].ContractName)
}

func TestOwnedTokensPlaceholderOnBrokenMetadata(t *testing.T) {
	apiServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"ownedNfts":[{"tokenId":"9","tokenUri":"","contract":{"address":"0xc0ffee","name":""}}]}`)
	}))
	defer apiServer.Close()

	svc := NewWithBaseURL("test-key", apiServer.URL)

	tokens, err := svc.OwnedTokens(context.Background(), "0xdef")
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	assert.Equal(t, "Unnamed NFT #9", tokens[0].Name)
	assert.Equal(t, "Unknown Contract", tokens[0].ContractName)
}

func TestOwnedTokensGatewayFallback(t *testing.T) {
	good := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"name":"Recovered"}`)
	}))
	defer good.Close()
	dead := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer dead.Close()

	orig := Gateways
	Gateways = []string{dead.URL + "/ipfs/", good.URL + "/ipfs/"}
	defer func() { Gateways = orig }()

	apiServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"ownedNfts":[{"tokenId":"3","tokenUri":"ipfs://QmMeta","contract":{"address":"0x1","name":"Art"}}]}`)
	}))
	defer apiServer.Close()

	svc := NewWithBaseURL("test-key", apiServer.URL)

	tokens, err := svc.OwnedTokens(context.Background(), "0xaaa")
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	assert.Equal(t, "Recovered", tokens[0].Name)
}

func TestOwnedTokensCaches(t *testing.T) {
	calls := 0
	apiServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		fmt.Fprint(w, `{"ownedNfts":[]}`)
	}))
	defer apiServer.Close()

	svc := NewWithBaseURL("test-key", apiServer.URL)

	_, err := svc.OwnedTokens(context.Background(), "0xabc")
	require.NoError(t, err)
	_, err = svc.OwnedTokens(context.Background(), "0xABC")
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestOwnedTokensRequiresKey(t *testing.T) {
	svc := New("")
	assert.False(t, svc.Configured())
	_, err := svc.OwnedTokens(context.Background(), "0xabc")
	assert.Error(t, err)
}
