package market

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePrice(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"2.5", 2.5, true},
		{"2.5 ETH", 2.5, true},
		{" 0.9 ", 0.9, true},
		{"", 0, false},
		{"abc", 0, false},
		{"-1", 0, false},
	}
	for _, tc := range cases {
		got, ok := ParsePrice(tc.in)
		assert.Equalf(t, tc.ok, ok, "input %q", tc.in)
		if tc.ok {
			assert.InDeltaf(t, tc.want, got, 1e-9, "input %q", tc.in)
		}
	}
}

func TestFilterBySearch(t *testing.T) {
	items := Catalog()

	got := Filter(items, "cosmic", BandAll)
	assert.Len(t, got, 1)
	assert.Equal(t, "Cosmic Dreams #001", got[0].Title)

	// creator matches too
	got = Filter(items, "pixelmaster", BandAll)
	assert.Len(t, got, 1)
	assert.Equal(t, "Cyber Genesis #007", got[0].Title)

	got = Filter(items, "no such thing", BandAll)
	assert.Empty(t, got)
}

func TestFilterByPriceBand(t *testing.T) {
	items := Catalog()

	for _, it := range Filter(items, "", BandLow) {
		p, _ := ParsePrice(it.Price)
		assert.Less(t, p, 2.0)
	}
	for _, it := range Filter(items, "", BandMid) {
		p, _ := ParsePrice(it.Price)
		assert.GreaterOrEqual(t, p, 2.0)
		assert.Less(t, p, 4.0)
	}
	for _, it := range Filter(items, "", BandHigh) {
		p, _ := ParsePrice(it.Price)
		assert.GreaterOrEqual(t, p, 4.0)
	}

	// malformed prices only pass the All band
	odd := []Item{{Title: "Broken", Price: "n/a"}}
	assert.Len(t, Filter(odd, "", BandAll), 1)
	assert.Empty(t, Filter(odd, "", BandLow))
}

func TestProjectProgress(t *testing.T) {
	assert.InDelta(t, 0.5, Project{Goal: 100, Raised: 50}.Progress(), 1e-9)
	assert.Equal(t, 1.0, Project{Goal: 100, Raised: 150}.Progress())
	assert.Equal(t, 0.0, Project{Goal: 0, Raised: 10}.Progress())
}
