// Package memory provides an in-memory implementation of the playlist
// repository port, used as the default storage driver and in tests.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/champion-vibes/backend/internal/core/domain"
	"github.com/champion-vibes/backend/internal/core/ports"
)

// Repository stores playlists in process memory. It is safe for concurrent
// use.
type Repository struct {
	mu        sync.RWMutex
	playlists map[string]domain.Playlist
}

var _ ports.PlaylistRepository = (*Repository)(nil)

// NewRepository returns an empty repository.
func NewRepository() *Repository {
	return &Repository{
		playlists: make(map[string]domain.Playlist),
	}
}

func (r *Repository) GetByID(_ context.Context, id string) (domain.Playlist, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	playlist, ok := r.playlists[id]
	if !ok {
		return domain.Playlist{}, fmt.Errorf("memory repository: playlist %q: %w", id, domain.ErrNotFound)
	}
	return clonePlaylist(playlist), nil
}

func (r *Repository) Save(_ context.Context, p domain.Playlist) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.playlists[p.ID] = clonePlaylist(p)
	return nil
}

// UpdateTrackEnergy rewrites the energy tier of the track wherever it
// appears.
func (r *Repository) UpdateTrackEnergy(_ context.Context, trackID string, energy domain.EnergyTier) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, playlist := range r.playlists {
		for i := range playlist.Tracks {
			if playlist.Tracks[i].ID == trackID {
				playlist.Tracks[i].Energy = energy
			}
		}
		r.playlists[id] = playlist
	}
	return nil
}

// clonePlaylist copies the track slice so callers cannot mutate stored
// state.
func clonePlaylist(p domain.Playlist) domain.Playlist {
	tracks := make([]domain.Track, len(p.Tracks))
	copy(tracks, p.Tracks)
	p.Tracks = tracks
	return p
}
