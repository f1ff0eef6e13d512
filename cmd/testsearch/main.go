// Test program searching the live iTunes Store and exercising the presenters
package main

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"github.com/llehouerou/storesearch/internal/artwork"
	"github.com/llehouerou/storesearch/internal/catalog"
	"github.com/llehouerou/storesearch/internal/itunes"
	"github.com/llehouerou/storesearch/internal/present"
	"github.com/llehouerou/storesearch/internal/search"
)

const defaultTerm = "jack johnson"

func main() {
	term := defaultTerm
	if len(os.Args) > 1 {
		term = strings.Join(os.Args[1:], " ")
	}
	log.Printf("Starting search test for %q", term)

	client := itunes.NewClient(itunes.Options{Country: "US"})
	log.Printf("Request URL: %s", client.SearchURL(term, catalog.CategoryAll))

	holder := search.NewHolder(client)
	req, ok := holder.Begin(term, catalog.CategoryAll)
	if !ok {
		log.Fatal("Empty search term")
	}
	log.Printf("Issued request %s (generation %d), state %s", req.ID, req.Generation, holder.State())

	start := time.Now()
	applied, success := holder.Complete(holder.Run(req))
	log.Printf("Completed in %s: applied=%v success=%v state=%s",
		time.Since(start).Round(time.Millisecond), applied, success, holder.State())
	if !success {
		log.Fatalf("Search failed: %v", holder.Err())
	}

	list := present.List(holder.State())
	log.Printf("List: %d rows", len(list.Rows))
	for i, row := range list.Rows {
		if i < 5 { // Show first 5
			log.Printf("  [%d] %s | %s", row.Index, row.Title, row.Subtitle)
		}
	}

	for _, p := range present.DeviceProfiles.Entries {
		view := present.GridWithProfile(holder.State(), p.MinWidth, p)
		log.Printf("Grid %-9s %dx%d: %d tiles on %d pages, content width %.0f",
			p.Name, p.Columns, p.Rows, len(view.Tiles), view.Pages, view.ContentWidth)
	}

	first, err := holder.Select(0)
	if err != nil {
		log.Fatalf("Select first item: %v", err)
	}
	log.Printf("First item: %s (%s) %s", first.Name, first.Type(), first.PriceText())

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	fetcher := artwork.NewFetcher(nil)
	data, err := fetcher.Fetch(ctx, first.ImageSmall)
	if err != nil {
		log.Fatalf("Fetch artwork %s: %v", first.ImageSmall, err)
	}
	img, err := artwork.Decode(data, 0, 0)
	if err != nil {
		log.Fatalf("Decode artwork: %v", err)
	}
	log.Printf("Artwork: %d bytes, %dx%d", len(data), img.Bounds().Dx(), img.Bounds().Dy())

	if _, err := holder.Select(len(list.Rows)); err != nil {
		log.Printf("Select past the end: %v (expected)", err)
	}

	log.Println("Search test completed successfully!")
}
