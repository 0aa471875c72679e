package ports

import (
	"context"
	"time"
)

// VideoSearchParams narrows a video search. Zero values mean "no restriction".
type VideoSearchParams struct {
	Order          string    // "viewCount", "relevance", "rating"
	Duration       string    // "medium", "any"
	PublishedAfter time.Time // zero time means all time ranges
}

// VideoResult is one raw hit from the video-search collaborator.
type VideoResult struct {
	ID           string
	Title        string
	ChannelTitle string
	Description  string
	ThumbnailURL string
}

// VideoSearcher queries the export platform's video index. Implementations
// restrict results to music content.
type VideoSearcher interface {
	SearchVideos(ctx context.Context, accessToken, query string, params VideoSearchParams, maxResults int) ([]VideoResult, error)
}
