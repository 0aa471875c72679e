// Package spotify adapts the Spotify Web API to the search, resolution and
// playlist hosting ports. Catalog search runs under app-level client
// credentials; resolution and playlist writes use per-session user tokens.
package spotify

import (
	"context"
	"fmt"
	"sync"

	"github.com/zmb3/spotify/v2"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/champion-vibes/backend/internal/core/domain"
	"github.com/champion-vibes/backend/internal/core/ports"
)

// Client searches the Spotify catalog with application credentials.
type Client struct {
	creds *clientcredentials.Config

	mu  sync.Mutex
	api *spotify.Client
}

var _ ports.MusicSearcher = (*Client)(nil)

// NewClient builds a catalog search client from app credentials.
func NewClient(clientID, clientSecret string) *Client {
	return &Client{
		creds: &clientcredentials.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			TokenURL:     spotifyauth.TokenURL,
		},
	}
}

// Search queries the track catalog and maps results into domain tracks,
// classifying genre, mood and energy from the track metadata.
func (c *Client) Search(ctx context.Context, query string, maxResults int) ([]domain.Track, error) {
	api, err := c.apiClient(ctx)
	if err != nil {
		return nil, err
	}

	result, err := api.Search(ctx, query, spotify.SearchTypeTrack, spotify.Limit(maxResults))
	if err != nil {
		return nil, fmt.Errorf("spotify adapter: search %q: %w", query, err)
	}
	if result.Tracks == nil {
		return nil, nil
	}

	tracks := make([]domain.Track, 0, len(result.Tracks.Tracks))
	for _, ft := range result.Tracks.Tracks {
		tracks = append(tracks, mapTrack(ft))
	}
	return tracks, nil
}

// apiClient lazily builds the underlying API client; the oauth2 transport
// refreshes the app token on its own.
func (c *Client) apiClient(ctx context.Context) (*spotify.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.api != nil {
		return c.api, nil
	}
	if c.creds.ClientID == "" || c.creds.ClientSecret == "" {
		return nil, fmt.Errorf("spotify adapter: missing client credentials: %w", domain.ErrInvalidInput)
	}
	c.api = spotify.New(c.creds.Client(ctx))
	return c.api, nil
}

func mapTrack(ft spotify.FullTrack) domain.Track {
	artist := ""
	if len(ft.Artists) > 0 {
		artist = ft.Artists[0].Name
	}
	thumbnail := ""
	if len(ft.Album.Images) > 0 {
		thumbnail = ft.Album.Images[0].URL
	}

	genre, mood, energy := classifyTrack(ft.Name, artist)

	return domain.Track{
		ID:           string(ft.ID),
		Title:        ft.Name,
		Artist:       artist,
		DurationMs:   int64(ft.Duration),
		Platform:     domain.PlatformSpotify,
		URL:          ft.ExternalURLs["spotify"],
		PreviewURL:   ft.PreviewURL,
		ThumbnailURL: thumbnail,
		Genre:        genre,
		Mood:         mood,
		Energy:       energy,
	}
}

// userClient builds an API client over a session access token.
func userClient(ctx context.Context, accessToken string) *spotify.Client {
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})
	return spotify.New(oauth2.NewClient(ctx, src))
}
