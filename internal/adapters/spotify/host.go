package spotify

import (
	"context"
	"fmt"

	"github.com/zmb3/spotify/v2"

	"github.com/champion-vibes/backend/internal/core/ports"
)

// Host creates playlists and adds tracks on behalf of the authenticated
// user.
type Host struct{}

var _ ports.PlaylistHost = (*Host)(nil)

// NewHost returns a playlist host.
func NewHost() *Host {
	return &Host{}
}

// CreatePlaylist creates a private playlist owned by the token's user.
func (h *Host) CreatePlaylist(ctx context.Context, accessToken, title, description string) (ports.RemotePlaylist, error) {
	api := userClient(ctx, accessToken)

	user, err := api.CurrentUser(ctx)
	if err != nil {
		return ports.RemotePlaylist{}, fmt.Errorf("spotify adapter: fetching current user: %w", err)
	}

	playlist, err := api.CreatePlaylistForUser(ctx, user.ID, title, description, false, false)
	if err != nil {
		return ports.RemotePlaylist{}, fmt.Errorf("spotify adapter: creating playlist %q: %w", title, err)
	}

	return ports.RemotePlaylist{
		ID:  string(playlist.ID),
		URL: playlist.ExternalURLs["spotify"],
	}, nil
}

// AddItem appends a single track to the playlist.
func (h *Host) AddItem(ctx context.Context, accessToken, playlistID, itemID string) error {
	api := userClient(ctx, accessToken)

	if _, err := api.AddTracksToPlaylist(ctx, spotify.ID(playlistID), spotify.ID(itemID)); err != nil {
		return fmt.Errorf("spotify adapter: adding track %s: %w", itemID, err)
	}
	return nil
}
