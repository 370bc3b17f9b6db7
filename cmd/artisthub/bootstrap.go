package main

import (
	"context"
	"fmt"

	"artisthub/internal/store"
)

type seedStore interface {
	Count(ctx context.Context) (int, error)
	SaveAll(ctx context.Context, artists []store.Artist) ([]store.Artist, error)
}

// bootstrapDemoData loads the demo catalogue into an empty store as a single
// batch, so a failed run leaves the store empty and the next start retries.
func bootstrapDemoData(ctx context.Context, s seedStore) (int, error) {
	count, err := s.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count artists: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	saved, err := s.SaveAll(ctx, demoArtists())
	if err != nil {
		return 0, fmt.Errorf("insert demo artists: %w", err)
	}
	return len(saved), nil
}

func demoArtists() []store.Artist {
	songs := func(titles ...string) []store.Song {
		out := make([]store.Song, 0, len(titles))
		for _, title := range titles {
			out = append(out, store.Song{Title: title})
		}
		return out
	}

	return []store.Artist{
		{
			Name:    "Boards of Canada",
			Genre:   "Electronic",
			Country: "UK",
			Songs:   songs("Turquoise Hexagon Sun", "Roygbiv", "Aquarius"),
		},
		{
			Name:    "Massive Attack",
			Genre:   "Trip Hop",
			Country: "UK",
			Songs:   songs("Angel", "Teardrop", "Inertia Creeps"),
		},
		{
			Name:    "Portishead",
			Genre:   "Trip Hop",
			Country: "UK",
			Songs:   songs("Mysterons", "Sour Times", "Glory Box"),
		},
		{
			Name:    "Nils Frahm",
			Genre:   "Modern Classical",
			Country: "DE",
			Songs:   songs("An Aborted Beginning", "Says", "Hammers"),
		},
		{
			Name:    "Thundercat",
			Genre:   "Funk",
			Country: "US",
			Songs:   songs("Uh Uh", "Them Changes", "Show You The Way"),
		},
	}
}
