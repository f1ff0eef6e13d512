package itunes

// searchResponse is the top-level body of /search.
type searchResponse struct {
	ResultCount int         `json:"resultCount"`
	Results     []rawResult `json:"results"`
}

// rawResult mirrors the subset of iTunes result fields the app reads.
// Which fields are present depends on the wrapper type (track, collection,
// audiobook, software), so most are optional.
type rawResult struct {
	WrapperType string `json:"wrapperType"`
	Kind        string `json:"kind"`

	TrackName      string `json:"trackName"`
	CollectionName string `json:"collectionName"`
	ArtistName     string `json:"artistName"`

	TrackPrice      *float64 `json:"trackPrice"`
	CollectionPrice *float64 `json:"collectionPrice"`
	Price           *float64 `json:"price"`
	Currency        string   `json:"currency"`

	ArtworkURL60  string `json:"artworkUrl60"`
	ArtworkURL100 string `json:"artworkUrl100"`

	TrackViewURL      string `json:"trackViewUrl"`
	CollectionViewURL string `json:"collectionViewUrl"`

	PrimaryGenreName string   `json:"primaryGenreName"`
	Genres           []string `json:"genres"`

	Description     string `json:"description"`
	LongDescription string `json:"longDescription"`
	ReleaseDate     string `json:"releaseDate"`
}
