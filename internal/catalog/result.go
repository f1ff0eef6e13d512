// Package catalog defines the store items returned by a catalog search.
package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// Result is a single store item. It is a plain value: callers hand copies
// to detail views rather than pointers into a result list.
type Result struct {
	Name        string    `json:"name"`
	ArtistName  string    `json:"artist_name"`
	Kind        string    `json:"kind"`
	Genre       string    `json:"genre"`
	Price       float64   `json:"price"`
	Currency    string    `json:"currency"`
	ImageSmall  string    `json:"image_small"`
	ImageLarge  string    `json:"image_large"`
	StoreURL    string    `json:"store_url"`
	Description string    `json:"description,omitempty"`
	ReleaseDate time.Time `json:"release_date,omitzero"`
}

var kindNames = map[string]string{
	"album":         "Album",
	"audiobook":     "Audio Book",
	"book":          "Book",
	"ebook":         "E-Book",
	"feature-movie": "Movie",
	"music-video":   "Music Video",
	"podcast":       "Podcast",
	"software":      "App",
	"song":          "Song",
	"tv-episode":    "TV Episode",
}

// Type returns the human-readable name of the item kind.
func (r Result) Type() string {
	if name, ok := kindNames[r.Kind]; ok {
		return name
	}
	return r.Kind
}

// Artist returns the artist name, or "Unknown" when the store omitted it.
func (r Result) Artist() string {
	if strings.TrimSpace(r.ArtistName) == "" {
		return "Unknown"
	}
	return r.ArtistName
}

// Subtitle returns "Artist (Type)" as shown under the item name.
func (r Result) Subtitle() string {
	return fmt.Sprintf("%s (%s)", r.Artist(), r.Type())
}

// PriceText formats the price; zero prices are "Free".
func (r Result) PriceText() string {
	if r.Price == 0 {
		return "Free"
	}
	amount := humanize.FormatFloat("#,###.##", r.Price)
	if r.Currency == "" {
		return amount
	}
	return amount + " " + r.Currency
}

// ReleasedText returns the release date relative to now, or "" if unknown.
func (r Result) ReleasedText() string {
	if r.ReleaseDate.IsZero() {
		return ""
	}
	return fmt.Sprintf("%s (%s)", r.ReleaseDate.Format("Jan 2, 2006"), humanize.Time(r.ReleaseDate))
}
