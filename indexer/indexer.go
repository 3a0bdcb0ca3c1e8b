// Package indexer fetches the on-chain tokens owned by an address and
// resolves their display metadata. Metadata lives behind content-addressed
// URIs; resolution walks an ordered list of public gateways before giving up,
// so a single dead gateway never blanks the gallery.
package indexer

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	gocache "github.com/patrickmn/go-cache"
)

// DefaultBaseURL is the Alchemy NFT API for Sepolia.
const DefaultBaseURL = "https://eth-sepolia.g.alchemy.com/nft/v3"

// Gateways is the ordered list of public IPFS gateways tried during metadata
// resolution.
var Gateways = []string{
	"https://ipfs.io/ipfs/",
	"https://gateway.pinata.cloud/ipfs/",
	"https://cloudflare-ipfs.com/ipfs/",
	"https://dweb.link/ipfs/",
	"https://ipfs.filebase.io/ipfs/",
	"https://nftstorage.link/ipfs/",
}

// Token is an owned on-chain token with resolved display metadata.
type Token struct {
	TokenID         string
	Name            string
	Description     string
	Image           string
	ContractName    string
	ContractAddress string
	TokenURI        string
}

// Service queries the indexing API. Retries and backoff are the HTTP
// client's; results are cached for five minutes.
type Service struct {
	client  *retryablehttp.Client
	cache   *gocache.Cache
	baseURL string
	apiKey  string
}

// New creates a service against the default endpoint.
func New(apiKey string) *Service {
	return NewWithBaseURL(apiKey, DefaultBaseURL)
}

// NewWithBaseURL creates a service against a custom endpoint (used in tests).
func NewWithBaseURL(apiKey, baseURL string) *Service {
	client := retryablehttp.NewClient()
	client.RetryMax = 3
	client.RetryWaitMax = 5 * time.Second
	client.Logger = nil
	return &Service{
		client:  client,
		cache:   gocache.New(5*time.Minute, 30*time.Minute),
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
	}
}

// Configured reports whether an API key is present.
func (s *Service) Configured() bool { return s.apiKey != "" }

type ownedResponse struct {
	OwnedNfts []struct {
		TokenID     string `json:"tokenId"`
		Name        string `json:"name"`
		Description string `json:"description"`
		TokenURI    string `json:"tokenUri"`
		Image       struct {
			CachedURL   string `json:"cachedUrl"`
			OriginalURL string `json:"originalUrl"`
		} `json:"image"`
		Contract struct {
			Address string `json:"address"`
			Name    string `json:"name"`
		} `json:"contract"`
	} `json:"ownedNfts"`
}

// OwnedTokens returns the tokens owned by addr with metadata resolved as far
// as the gateways allow. Partial resolution yields placeholder fields, not an
// error.
func (s *Service) OwnedTokens(ctx context.Context, owner string) ([]Token, error) {
	if s.apiKey == "" {
		return nil, fmt.Errorf("indexer: no API key configured")
	}

	cacheKey := "owned:" + strings.ToLower(owner)
	if cached, ok := s.cache.Get(cacheKey); ok {
		return cached.([]Token), nil
	}

	endpoint := fmt.Sprintf("%s/%s/getNFTsForOwner?owner=%s", s.baseURL, s.apiKey, url.QueryEscape(owner))
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("indexer: owned-token query failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("indexer: owned-token query returned %s", resp.Status)
	}

	var payload ownedResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("indexer: invalid response: %w", err)
	}

	tokens := make([]Token, 0, len(payload.OwnedNfts))
	for _, nft := range payload.OwnedNfts {
		tok := Token{
			TokenID:         nft.TokenID,
			Name:            nft.Name,
			Description:     nft.Description,
			Image:           NormalizeContentURL(firstNonEmpty(nft.Image.CachedURL, nft.Image.OriginalURL)),
			ContractName:    firstNonEmpty(nft.Contract.Name, "Unknown Contract"),
			ContractAddress: nft.Contract.Address,
			TokenURI:        nft.TokenURI,
		}
		s.resolveMetadata(ctx, &tok)
		if tok.Name == "" {
			if tok.ContractName != "Unknown Contract" {
				tok.Name = fmt.Sprintf("%s #%s", tok.ContractName, tok.TokenID)
			} else {
				tok.Name = fmt.Sprintf("Unnamed NFT #%s", tok.TokenID)
			}
		}
		tokens = append(tokens, tok)
	}

	s.cache.Set(cacheKey, tokens, gocache.DefaultExpiration)
	return tokens, nil
}

type tokenMetadata struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
	ImageURL    string `json:"image_url"`
}

// resolveMetadata walks the candidate metadata URLs in order, applying the
// first document that parses. Failure leaves the token's indexer-supplied
// fields as the fallback.
func (s *Service) resolveMetadata(ctx context.Context, tok *Token) {
	for _, candidate := range MetadataURLs(tok.TokenURI) {
		req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, candidate, nil)
		if err != nil {
			continue
		}
		resp, err := s.client.Do(req)
		if err != nil {
			continue
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			continue
		}
		var md tokenMetadata
		err = json.NewDecoder(resp.Body).Decode(&md)
		resp.Body.Close()
		if err != nil {
			continue
		}
		if md.Name != "" {
			tok.Name = md.Name
		}
		if md.Description != "" {
			tok.Description = md.Description
		}
		if img := firstNonEmpty(md.Image, md.ImageURL); img != "" {
			tok.Image = NormalizeContentURL(img)
		}
		return
	}
}

// MetadataURLs expands a token URI into the ordered list of URLs to try.
// Content-addressed URIs fan out across the gateway list; plain HTTP URIs are
// returned as-is.
func MetadataURLs(uri string) []string {
	if uri == "" {
		return nil
	}
	if hash, ok := contentHash(uri); ok {
		return GatewayURLs(hash)
	}
	return []string{uri}
}

// GatewayURLs returns the gateway URL for hash on every known gateway, in
// preference order.
func GatewayURLs(hash string) []string {
	urls := make([]string, len(Gateways))
	for i, gw := range Gateways {
		urls[i] = gw + hash
	}
	return urls
}

// NormalizeContentURL rewrites ipfs:// URLs to the primary gateway and leaves
// anything else untouched.
func NormalizeContentURL(u string) string {
	if hash, ok := contentHash(u); ok {
		return Gateways[0] + hash
	}
	return u
}

// contentHash extracts the content address from ipfs:// URIs and gateway URLs.
func contentHash(u string) (string, bool) {
	if strings.HasPrefix(u, "ipfs://") {
		return strings.TrimPrefix(u, "ipfs://"), true
	}
	if i := strings.Index(u, "/ipfs/"); i >= 0 {
		return u[i+len("/ipfs/"):], true
	}
	return "", false
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
