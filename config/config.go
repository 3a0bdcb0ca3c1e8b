package config

import (
	"encoding/json"
	"os"
	"strings"
)

// Config represents the application configuration
type Config struct {
	RPCURLs     []RPCUrl    `json:"rpc_urls"`
	Credentials Credentials `json:"credentials"`
	Logger      bool        `json:"logger"`
}

// RPCUrl represents an RPC endpoint
type RPCUrl struct {
	Name   string `json:"name"`
	URL    string `json:"url"`
	Active bool   `json:"active"`
}

// Credentials configures the external collaborators. None of these are
// interpreted by the screen router itself.
type Credentials struct {
	IndexerAPIKey          string `json:"indexer_api_key,omitempty"`
	PinningToken           string `json:"pinning_token,omitempty"`
	WalletConnectProjectID string `json:"walletconnect_project_id,omitempty"`
}

// Load reads the config from the specified path
func Load(path string) Config {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}
	}

	return cfg
}

// Save writes the config to the specified path
func Save(path string, cfg Config) {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return
	}
	_ = os.WriteFile(path, data, 0644)
}

// DefaultConfig returns a new configuration with sensible defaults
func DefaultConfig() Config {
	return Config{
		RPCURLs: []RPCUrl{
			{
				Name:   "Public Mainnet",
				URL:    "https://ethereum-rpc.publicnode.com",
				Active: true,
			},
		},
		Logger: false,
	}
}

// LoadOrCreate loads config from path, or creates a default one if not found
func LoadOrCreate(path string) Config {
	data, err := os.ReadFile(path)
	if err != nil {
		cfg := DefaultConfig()
		Save(path, cfg)
		return cfg
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig()
	}

	return cfg
}

// ApplyEnv overlays environment variables onto the file config. Environment
// always wins so credentials never need to live on disk.
func ApplyEnv(cfg Config) Config {
	if v := strings.TrimSpace(os.Getenv("ALCHEMY_API_KEY")); v != "" {
		cfg.Credentials.IndexerAPIKey = v
	}
	if v := strings.TrimSpace(os.Getenv("PINATA_JWT")); v != "" {
		cfg.Credentials.PinningToken = v
	}
	if v := strings.TrimSpace(os.Getenv("WALLETCONNECT_PROJECT_ID")); v != "" {
		cfg.Credentials.WalletConnectProjectID = v
	}
	if v := strings.TrimSpace(os.Getenv("ETH_RPC_URL")); v != "" {
		cfg.RPCURLs = append([]RPCUrl{{Name: "Environment", URL: v, Active: true}}, deactivate(cfg.RPCURLs)...)
	}
	return cfg
}

// ActiveRPC returns the URL of the active endpoint, empty when none is set.
func (c Config) ActiveRPC() string {
	for _, r := range c.RPCURLs {
		if r.Active {
			return r.URL
		}
	}
	return ""
}

func deactivate(urls []RPCUrl) []RPCUrl {
	out := make([]RPCUrl, len(urls))
	for i, u := range urls {
		u.Active = false
		out[i] = u
	}
	return out
}
