package itunes

import (
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/llehouerou/storesearch/internal/catalog"
)

// convertResults maps raw records to catalog results, dropping records
// without any usable name, and sorts them by name.
func convertResults(raw []rawResult) []catalog.Result {
	results := make([]catalog.Result, 0, len(raw))
	for i := range raw {
		r := convertResult(&raw[i])
		if r.Name == "" {
			continue
		}
		results = append(results, r)
	}
	catalog.SortByName(results)
	return results
}

func convertResult(raw *rawResult) catalog.Result {
	r := catalog.Result{
		Name:       firstNonEmpty(raw.TrackName, raw.CollectionName),
		ArtistName: raw.ArtistName,
		Kind:       firstNonEmpty(raw.Kind, raw.WrapperType),
		Currency:   raw.Currency,
		ImageSmall: raw.ArtworkURL60,
		ImageLarge: raw.ArtworkURL100,
		StoreURL:   firstNonEmpty(raw.TrackViewURL, raw.CollectionViewURL),
		Genre:      genre(raw),
	}

	switch {
	case raw.TrackPrice != nil:
		r.Price = *raw.TrackPrice
	case raw.CollectionPrice != nil:
		r.Price = *raw.CollectionPrice
	case raw.Price != nil:
		r.Price = *raw.Price
	}

	r.Description = htmlToText(firstNonEmpty(raw.LongDescription, raw.Description))

	if raw.ReleaseDate != "" {
		if t, err := time.Parse(time.RFC3339, raw.ReleaseDate); err == nil {
			r.ReleaseDate = t
		}
	}

	return r
}

// genre prefers the primary genre; e-books carry only the genres list.
func genre(raw *rawResult) string {
	if raw.PrimaryGenreName != "" {
		return raw.PrimaryGenreName
	}
	return strings.Join(raw.Genres, ", ")
}

// htmlToText flattens the HTML the store uses in descriptions (mostly <br>,
// <b> and <i>) into plain text lines.
func htmlToText(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return strings.TrimSpace(s)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return strings.TrimSpace(s)
	}
	doc.Find("br").ReplaceWithHtml("\n")
	doc.Find("p, li").Each(func(_ int, sel *goquery.Selection) {
		sel.AppendHtml("\n")
	})

	lines := strings.Split(doc.Text(), "\n")
	out := make([]string, 0, len(lines))
	blank := false
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			if !blank && len(out) > 0 {
				out = append(out, "")
			}
			blank = true
			continue
		}
		blank = false
		out = append(out, line)
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
