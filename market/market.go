package market

import (
	"strconv"
	"strings"
)

// Attribute is a single trait on an item or draft.
type Attribute struct {
	TraitType string `json:"trait_type"`
	Value     string `json:"value"`
}

// Item is a marketplace or owned NFT entry. ID is assigned locally and is
// never the on-chain token id.
type Item struct {
	ID         string
	Title      string
	Creator    string
	Price      string // ETH, decimal string, e.g. "2.5"
	Collection string
	Blockchain string
	Image      string // path or content-address URL
	ContentURI string // pinned metadata URI, empty until minted with pinning
	Attributes []Attribute
	Likes      int
}

// Draft is the in-progress creation payload produced by the create screen and
// consumed by the mint confirmation screen.
type Draft struct {
	Title       string
	Description string
	Collection  string
	Price       string
	Blockchain  string
	ImagePath   string
	ImageURI    string // content address once the asset is pinned
	Attributes  []Attribute
}

// Project is a crowdfunding entry.
type Project struct {
	ID       string
	Title    string
	Creator  string
	Goal     float64 // ETH
	Raised   float64 // ETH
	Backers  int
	Category string
}

// Progress returns the funded fraction clamped to [0, 1].
func (p Project) Progress() float64 {
	if p.Goal <= 0 {
		return 0
	}
	f := p.Raised / p.Goal
	if f > 1 {
		return 1
	}
	return f
}

// ParsePrice parses a decimal ETH amount like "2.5" or "2.5 ETH".
// Returns 0 and false on malformed input.
func ParsePrice(s string) (float64, bool) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "ETH"))
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}

// PriceBand buckets for the marketplace filter.
type PriceBand int

const (
	BandAll PriceBand = iota
	BandLow           // < 2 ETH
	BandMid           // 2–4 ETH
	BandHigh          // >= 4 ETH
)

func (b PriceBand) String() string {
	switch b {
	case BandLow:
		return "< 2 ETH"
	case BandMid:
		return "2–4 ETH"
	case BandHigh:
		return "4+ ETH"
	default:
		return "All"
	}
}

// matches reports whether price falls in the band.
func (b PriceBand) matches(price float64) bool {
	switch b {
	case BandLow:
		return price < 2
	case BandMid:
		return price >= 2 && price < 4
	case BandHigh:
		return price >= 4
	default:
		return true
	}
}

// Filter returns the items whose title or creator contains query
// (case-insensitive) and whose price falls in the band. Unparseable prices
// only pass the All band.
func Filter(items []Item, query string, band PriceBand) []Item {
	q := strings.ToLower(strings.TrimSpace(query))
	var out []Item
	for _, it := range items {
		if q != "" &&
			!strings.Contains(strings.ToLower(it.Title), q) &&
			!strings.Contains(strings.ToLower(it.Creator), q) {
			continue
		}
		if band != BandAll {
			price, ok := ParsePrice(it.Price)
			if !ok || !band.matches(price) {
				continue
			}
		}
		out = append(out, it)
	}
	return out
}

// Blockchains selectable when creating an item.
var Blockchains = []string{"Ethereum", "Polygon", "BNB Chain", "Sepolia"}

// Catalog returns the seeded marketplace listing.
func Catalog() []Item {
	return []Item{
		{ID: "cat-1", Title: "Cosmic Dreams #001", Creator: "ArtistX", Price: "2.5", Collection: "Cosmic Dreams", Blockchain: "Ethereum", Likes: 234},
		{ID: "cat-2", Title: "Digital Realm #042", Creator: "CryptoArt", Price: "1.8", Collection: "Digital Realm", Blockchain: "Ethereum", Likes: 189},
		{ID: "cat-3", Title: "Neon Futures #123", Creator: "FutureWave", Price: "3.2", Collection: "Neon Futures", Blockchain: "Polygon", Likes: 412},
		{ID: "cat-4", Title: "Cyber Genesis #007", Creator: "PixelMaster", Price: "4.1", Collection: "Cyber Genesis", Blockchain: "Ethereum", Likes: 567},
		{ID: "cat-5", Title: "Abstract Void #256", Creator: "VoidCreator", Price: "0.9", Collection: "Abstract Void", Blockchain: "BNB Chain", Likes: 145},
		{ID: "cat-6", Title: "Digital Landscape #089", Creator: "LandscapeDAO", Price: "2.2", Collection: "Digital Landscape", Blockchain: "Ethereum", Likes: 298},
	}
}

// Projects returns the seeded crowdfunding listing.
func Projects() []Project {
	return []Project{
		{ID: "prj-1", Title: "Neon District Metaverse", Creator: "NeonLabs", Goal: 500, Raised: 342.8, Backers: 1284, Category: "Gaming"},
		{ID: "prj-2", Title: "Generative Art Residency", Creator: "ArtDAO", Goal: 120, Raised: 96.5, Backers: 603, Category: "Art"},
		{ID: "prj-3", Title: "Open Music Royalties", Creator: "ChainBeats", Goal: 300, Raised: 77.2, Backers: 451, Category: "Music"},
		{ID: "prj-4", Title: "Carbon-Neutral Minting", Creator: "GreenBlock", Goal: 200, Raised: 188.0, Backers: 920, Category: "Infrastructure"},
	}
}
