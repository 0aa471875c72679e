// Package youtube adapts the YouTube Data API to the video search and
// playlist hosting ports. All calls run under the session's user token and
// share a rate limiter to stay inside the API quota.
package youtube

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/time/rate"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"

	"github.com/champion-vibes/backend/internal/core/ports"
)

// musicCategoryID is the YouTube video category for music.
const musicCategoryID = "10"

// Client issues YouTube Data API calls under per-session tokens.
type Client struct {
	limiter *rate.Limiter
}

var (
	_ ports.VideoSearcher = (*Client)(nil)
	_ ports.PlaylistHost  = (*Client)(nil)
)

// NewClient builds a client limited to requestsPerSecond outbound calls.
func NewClient(requestsPerSecond float64) *Client {
	if requestsPerSecond <= 0 {
		requestsPerSecond = 5
	}
	return &Client{
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
	}
}

// service builds an API client over the session's access token. The service
// is cheap to construct; sharing one across tokens is not possible.
func (c *Client) service(ctx context.Context, accessToken string) (*youtube.Service, error) {
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})
	svc, err := youtube.NewService(ctx, option.WithHTTPClient(oauth2.NewClient(ctx, src)))
	if err != nil {
		return nil, fmt.Errorf("youtube adapter: building service: %w", err)
	}
	return svc, nil
}

// SearchVideos runs a music-category video search with the given ordering
// and duration filters.
func (c *Client) SearchVideos(ctx context.Context, accessToken, query string, params ports.VideoSearchParams, maxResults int) ([]ports.VideoResult, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("youtube adapter: rate limit wait: %w", err)
	}

	svc, err := c.service(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	call := svc.Search.List([]string{"snippet"}).
		Q(query).
		Type("video").
		VideoCategoryId(musicCategoryID).
		MaxResults(int64(maxResults)).
		Context(ctx)
	if params.Order != "" {
		call = call.Order(params.Order)
	}
	if params.Duration != "" && params.Duration != "any" {
		call = call.VideoDuration(params.Duration)
	}
	if !params.PublishedAfter.IsZero() {
		call = call.PublishedAfter(params.PublishedAfter.UTC().Format(time.RFC3339))
	}

	resp, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("youtube adapter: search %q: %w", query, err)
	}

	results := make([]ports.VideoResult, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.Id == nil || item.Id.VideoId == "" || item.Snippet == nil {
			continue
		}
		thumbnail := ""
		if item.Snippet.Thumbnails != nil && item.Snippet.Thumbnails.Medium != nil {
			thumbnail = item.Snippet.Thumbnails.Medium.Url
		}
		results = append(results, ports.VideoResult{
			ID:           item.Id.VideoId,
			Title:        item.Snippet.Title,
			ChannelTitle: item.Snippet.ChannelTitle,
			Description:  item.Snippet.Description,
			ThumbnailURL: thumbnail,
		})
	}
	return results, nil
}

// CreatePlaylist creates a private playlist on the session user's channel.
func (c *Client) CreatePlaylist(ctx context.Context, accessToken, title, description string) (ports.RemotePlaylist, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return ports.RemotePlaylist{}, fmt.Errorf("youtube adapter: rate limit wait: %w", err)
	}

	svc, err := c.service(ctx, accessToken)
	if err != nil {
		return ports.RemotePlaylist{}, err
	}

	playlist := &youtube.Playlist{
		Snippet: &youtube.PlaylistSnippet{
			Title:       title,
			Description: description,
		},
		Status: &youtube.PlaylistStatus{
			PrivacyStatus: "private",
		},
	}
	created, err := svc.Playlists.Insert([]string{"snippet", "status"}, playlist).Context(ctx).Do()
	if err != nil {
		return ports.RemotePlaylist{}, fmt.Errorf("youtube adapter: creating playlist %q: %w", title, err)
	}

	return ports.RemotePlaylist{
		ID:  created.Id,
		URL: "https://www.youtube.com/playlist?list=" + created.Id,
	}, nil
}

// AddItem appends a video to the playlist.
func (c *Client) AddItem(ctx context.Context, accessToken, playlistID, itemID string) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("youtube adapter: rate limit wait: %w", err)
	}

	svc, err := c.service(ctx, accessToken)
	if err != nil {
		return err
	}

	item := &youtube.PlaylistItem{
		Snippet: &youtube.PlaylistItemSnippet{
			PlaylistId: playlistID,
			ResourceId: &youtube.ResourceId{
				Kind:    "youtube#video",
				VideoId: itemID,
			},
		},
	}
	if _, err := svc.PlaylistItems.Insert([]string{"snippet"}, item).Context(ctx).Do(); err != nil {
		return fmt.Errorf("youtube adapter: adding video %s: %w", itemID, err)
	}
	return nil
}
