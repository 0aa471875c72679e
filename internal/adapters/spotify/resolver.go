package spotify

import (
	"context"
	"fmt"

	"github.com/zmb3/spotify/v2"

	"github.com/champion-vibes/backend/internal/core/domain"
	"github.com/champion-vibes/backend/internal/core/ports"
)

// resolveLimit is how many catalog candidates a resolution considers.
const resolveLimit = 10

// Resolver matches a track title and artist against the Spotify catalog
// using the caller's user token.
type Resolver struct{}

var _ ports.TrackResolver = (*Resolver)(nil)

// NewResolver returns a catalog resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve searches the catalog and picks the highest-scoring candidate that
// clears the similarity thresholds. When nothing clears them it returns a
// ports.NoMatchError.
func (r *Resolver) Resolve(ctx context.Context, accessToken, title, artist string) (domain.Resolution, error) {
	api := userClient(ctx, accessToken)

	query := fmt.Sprintf("track:%s artist:%s", normalizeSearchInput(title), normalizeSearchInput(artist))
	result, err := api.Search(ctx, query, spotify.SearchTypeTrack, spotify.Limit(resolveLimit))
	if err != nil {
		return domain.Resolution{}, fmt.Errorf("spotify adapter: resolving %q: %w", title, err)
	}
	if result.Tracks == nil || len(result.Tracks.Tracks) == 0 {
		return domain.Resolution{}, &ports.NoMatchError{Title: title, Artist: artist}
	}

	var (
		best      spotify.FullTrack
		bestScore float64
		found     bool
	)
	for _, candidate := range result.Tracks.Tracks {
		score, ok := trackMatchScore(title, artist, candidate)
		if !ok {
			continue
		}
		if !found || score > bestScore {
			best = candidate
			bestScore = score
			found = true
		}
	}
	if !found {
		return domain.Resolution{}, &ports.NoMatchError{Title: title, Artist: artist}
	}

	thumbnail := ""
	if len(best.Album.Images) > 0 {
		thumbnail = best.Album.Images[0].URL
	}

	return domain.Resolution{
		ItemID:       string(best.ID),
		Title:        best.Name,
		Artist:       joinArtistNames(best),
		ThumbnailURL: thumbnail,
		URL:          best.ExternalURLs["spotify"],
		Strategy:     "metadata match",
	}, nil
}
