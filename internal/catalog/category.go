package catalog

import "strings"

// Category filters a search to one kind of store content.
type Category int

const (
	CategoryAll Category = iota
	CategoryMusic
	CategorySoftware
	CategoryEBooks
)

// Categories lists every category in selector order.
var Categories = []Category{CategoryAll, CategoryMusic, CategorySoftware, CategoryEBooks}

// CategoryFromIndex maps a selector index to a category.
// Returns false for indices outside the selector.
func CategoryFromIndex(index int) (Category, bool) {
	if index < 0 || index >= len(Categories) {
		return CategoryAll, false
	}
	return Categories[index], true
}

// ParseCategory parses a category name as used in config files and query
// strings ("all", "music", "software", "ebooks"). Empty means All.
func ParseCategory(s string) (Category, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return CategoryAll, true
	case "music":
		return CategoryMusic, true
	case "software", "apps":
		return CategorySoftware, true
	case "ebooks", "e-books", "ebook":
		return CategoryEBooks, true
	}
	return CategoryAll, false
}

// Index returns the selector index of the category.
func (c Category) Index() int {
	return int(c)
}

// Entity returns the iTunes "entity" parameter for the category.
func (c Category) Entity() string {
	switch c {
	case CategoryMusic:
		return "musicTrack"
	case CategorySoftware:
		return "software"
	case CategoryEBooks:
		return "ebook"
	case CategoryAll:
		return ""
	}
	return ""
}

// String returns the selector label.
func (c Category) String() string {
	switch c {
	case CategoryAll:
		return "All"
	case CategoryMusic:
		return "Music"
	case CategorySoftware:
		return "Software"
	case CategoryEBooks:
		return "E-books"
	}
	return "Unknown"
}

// Key returns the lowercase identifier used in config and cache keys.
func (c Category) Key() string {
	switch c {
	case CategoryMusic:
		return "music"
	case CategorySoftware:
		return "software"
	case CategoryEBooks:
		return "ebooks"
	case CategoryAll:
		return "all"
	}
	return "all"
}
