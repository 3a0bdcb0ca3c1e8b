// Package pinner uploads assets and JSON documents to a Pinata-style pinning
// service and returns their content addresses. Failures are reported to the
// caller; beyond the HTTP client's own retry policy nothing is retried here.
package pinner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gosimple/slug"
	"github.com/hashicorp/go-retryablehttp"

	"kryptoart-tui/market"
)

// DefaultBaseURL is the Pinata pinning API.
const DefaultBaseURL = "https://api.pinata.cloud"

// GatewayPrefix prefixes returned content addresses for direct retrieval.
const GatewayPrefix = "https://gateway.pinata.cloud/ipfs/"

// Service talks to the pinning API with a bearer token.
type Service struct {
	client  *retryablehttp.Client
	baseURL string
	token   string
}

// New creates a service against the default endpoint.
func New(token string) *Service {
	return NewWithBaseURL(token, DefaultBaseURL)
}

// NewWithBaseURL creates a service against a custom endpoint (used in tests).
func NewWithBaseURL(token, baseURL string) *Service {
	client := retryablehttp.NewClient()
	client.RetryMax = 2
	client.RetryWaitMax = 5 * time.Second
	client.Logger = nil
	return &Service{client: client, baseURL: baseURL, token: token}
}

// Configured reports whether a service token is present.
func (s *Service) Configured() bool { return s.token != "" }

type pinResponse struct {
	IpfsHash string `json:"IpfsHash"`
}

// PinFile uploads the file at path and returns its gateway URL.
func (s *Service) PinFile(ctx context.Context, path string) (string, error) {
	if s.token == "" {
		return "", fmt.Errorf("pinner: no service token configured")
	}

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("pinner: open asset: %w", err)
	}
	defer f.Close()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, f); err != nil {
		return "", fmt.Errorf("pinner: read asset: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/pinning/pinFileToIPFS", body.Bytes())
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+s.token)

	return s.do(req)
}

// PinJSON uploads an arbitrary document and returns its gateway URL. The pin
// is named after the document's slugified name field when present.
func (s *Service) PinJSON(ctx context.Context, name string, doc any) (string, error) {
	if s.token == "" {
		return "", fmt.Errorf("pinner: no service token configured")
	}

	payload := map[string]any{
		"pinataContent": doc,
	}
	if name != "" {
		payload["pinataMetadata"] = map[string]any{"name": slug.Make(name)}
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/pinning/pinJSONToIPFS", raw)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.token)

	return s.do(req)
}

// Metadata is the standard token-metadata document pinned alongside an asset.
type Metadata struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Image       string             `json:"image"`
	Attributes  []market.Attribute `json:"attributes"`
}

// PinMetadata builds and pins the metadata document for a draft whose asset
// was already pinned to imageURL.
func (s *Service) PinMetadata(ctx context.Context, d market.Draft, description, imageURL string) (string, error) {
	md := Metadata{
		Name:        d.Title,
		Description: description,
		Image:       imageURL,
		Attributes:  d.Attributes,
	}
	return s.PinJSON(ctx, d.Title, md)
}

func (s *Service) do(req *retryablehttp.Request) (string, error) {
	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("pinner: upload failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("pinner: upload returned %s", resp.Status)
	}

	var pr pinResponse
	if err := json.NewDecoder(resp.Body).Decode(&pr); err != nil {
		return "", fmt.Errorf("pinner: invalid response: %w", err)
	}
	if pr.IpfsHash == "" {
		return "", fmt.Errorf("pinner: response carried no content address")
	}
	return GatewayPrefix + pr.IpfsHash, nil
}
