package services

import (
	"context"
	"log"
	"time"

	"github.com/champion-vibes/backend/internal/core/domain"
	"github.com/champion-vibes/backend/internal/core/ports"
)

// resolveBatchSize is how many results each strategy fetches; only the first
// one passing validation is considered.
const resolveBatchSize = 5

// VideoResolver resolves a track's title and artist to a concrete video by
// trying search strategies in order and validating what comes back.
type VideoResolver struct {
	videos ports.VideoSearcher

	// now is swappable for deterministic tests.
	now func() time.Time
}

var _ ports.TrackResolver = (*VideoResolver)(nil)

// NewVideoResolver builds a resolver over the given video search backend.
func NewVideoResolver(videos ports.VideoSearcher) *VideoResolver {
	return &VideoResolver{videos: videos, now: time.Now}
}

// Resolve tries each search strategy until one yields a validated video.
// High-confidence strategies return immediately; otherwise the first valid
// candidate across all strategies wins. A candidate-free run returns a
// ports.NoMatchError wrapping ports.ErrNoMatch.
func (r *VideoResolver) Resolve(ctx context.Context, accessToken, title, artist string) (domain.Resolution, error) {
	var (
		best  domain.Resolution
		found bool
	)

	for _, strategy := range SearchStrategies(title, artist, r.now()) {
		if err := ctx.Err(); err != nil {
			return domain.Resolution{}, err
		}

		results, err := r.videos.SearchVideos(ctx, accessToken, strategy.Query, strategy.Params, resolveBatchSize)
		if err != nil {
			log.Printf("WARN resolver: strategy %q failed for %q: %v", strategy.Name, title, err)
			continue
		}

		candidate, ok := firstValid(results)
		if !ok {
			continue
		}

		resolution := domain.Resolution{
			Title:        candidate.Title,
			Artist:       artist,
			ChannelTitle: candidate.ChannelTitle,
			ThumbnailURL: candidate.ThumbnailURL,
			URL:          "https://www.youtube.com/watch?v=" + candidate.ID,
			ItemID:       candidate.ID,
			Strategy:     strategy.Name,
		}

		// Relevance-ordered strategies are trusted enough to stop early.
		if strategy.Name == StrategyBestMatch || strategy.Name == StrategyTopic {
			return resolution, nil
		}
		if !found {
			best = resolution
			found = true
		}
	}

	if found {
		return best, nil
	}
	return domain.Resolution{}, &ports.NoMatchError{Title: title, Artist: artist}
}

func firstValid(results []ports.VideoResult) (ports.VideoResult, bool) {
	for _, v := range results {
		if IsValidMusicVideo(v) {
			return v, true
		}
	}
	return ports.VideoResult{}, false
}
