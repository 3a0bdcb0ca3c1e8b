package pinner

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kryptoart-tui/market"
)

func TestPinFile(t *testing.T) {
	dir := t.TempDir()
	asset := filepath.Join(dir, "nova.png")
	require.NoError(t, os.WriteFile(asset, []byte("not really a png"), 0o644))

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/pinning/pinFileToIPFS", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		require.NoError(t, r.ParseMultipartForm(1<<20))
		_, hdr, err := r.FormFile("file")
		require.NoError(t, err)
		assert.Equal(t, "nova.png", hdr.Filename)
		fmt.Fprint(w, `{"IpfsHash":"QmAsset"}`)
	}))
	defer server.Close()

	svc := NewWithBaseURL("tok", server.URL)

	uri, err := svc.PinFile(context.Background(), asset)
	require.NoError(t, err)
	assert.Equal(t, GatewayPrefix+"QmAsset", uri)
}

func TestPinMetadata(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/pinning/pinJSONToIPFS", r.URL.Path)

		var payload struct {
			Content  Metadata          `json:"pinataContent"`
			Metadata map[string]string `json:"pinataMetadata"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "Nova Dawn", payload.Content.Name)
		assert.Equal(t, "nova-dawn", payload.Metadata["name"])
		assert.Equal(t, GatewayPrefix+"QmAsset", payload.Content.Image)

		fmt.Fprint(w, `{"IpfsHash":"QmMeta"}`)
	}))
	defer server.Close()

	svc := NewWithBaseURL("tok", server.URL)
	draft := market.Draft{
		Title:      "Nova Dawn",
		Attributes: []market.Attribute{{TraitType: "Palette", Value: "Neon"}},
	}

	uri, err := svc.PinMetadata(context.Background(), draft, "first light", GatewayPrefix+"QmAsset")
	require.NoError(t, err)
	assert.Equal(t, GatewayPrefix+"QmMeta", uri)
}

func TestPinFailureIsReported(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}))
	defer server.Close()

	svc := NewWithBaseURL("bad-token", server.URL)

	_, err := svc.PinJSON(context.Background(), "x", map[string]string{"a": "b"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestUnconfigured(t *testing.T) {
	svc := New("")
	assert.False(t, svc.Configured())

	_, err := svc.PinJSON(context.Background(), "x", nil)
	assert.Error(t, err)

	_, err = svc.PinFile(context.Background(), "nope.png")
	assert.Error(t, err)
}
