package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the icon characters for the current style.
type Icons struct {
	Song    string
	Album   string
	App     string
	Book    string
	Movie   string
	Podcast string
	TV      string
	Generic string
	Search  string
	Grid    string
	List    string
}

var (
	nerdIcons = Icons{
		Song:    " ", // nf-fa-music
		Album:   "󰀥 ", // nf-md-album
		App:     " ", // nf-fa-apple
		Book:    " ", // nf-fa-book
		Movie:   " ", // nf-fa-film
		Podcast: " ", // nf-fa-podcast
		TV:      " ", // nf-fa-television
		Generic: " ", // nf-fa-shopping_cart
		Search:  " ", // nf-fa-search
		Grid:    "",  // nf-fa-th
		List:    "",  // nf-fa-list
	}

	unicodeIcons = Icons{
		Song:    "🎵 ",
		Album:   "💿 ",
		App:     "📱 ",
		Book:    "📖 ",
		Movie:   "🎬 ",
		Podcast: "🎙 ",
		TV:      "📺 ",
		Generic: "🛒 ",
		Search:  "🔍 ",
		Grid:    "▦",
		List:    "☰",
	}

	noneIcons = Icons{
		Search: "> ",
		Grid:   "[grid]",
		List:   "[list]",
	}

	// current holds the active icon set
	current = noneIcons
)

// Init initializes the icons based on the style.
// Call this once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	case StyleNone:
		current = noneIcons
	default:
		current = noneIcons
	}
}

// ForKind returns the icon for an iTunes kind ("song", "ebook", ...).
// Empty for the "none" style.
func ForKind(kind string) string {
	switch kind {
	case "song", "music-video":
		return current.Song
	case "album":
		return current.Album
	case "software":
		return current.App
	case "ebook", "book", "audiobook":
		return current.Book
	case "feature-movie":
		return current.Movie
	case "podcast":
		return current.Podcast
	case "tv-episode":
		return current.TV
	}
	return current.Generic
}

// FormatResult formats a result name with the icon for its kind.
func FormatResult(kind, name string) string {
	return ForKind(kind) + name
}

// Search returns the search prompt icon.
func Search() string {
	return current.Search
}

// Grid returns the grid mode indicator.
func Grid() string {
	return current.Grid
}

// List returns the list mode indicator.
func List() string {
	return current.List
}
