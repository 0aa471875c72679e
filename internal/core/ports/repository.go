package ports

import (
	"context"

	"github.com/champion-vibes/backend/internal/core/domain"
)

type PlaylistRepository interface {
	GetByID(ctx context.Context, id string) (domain.Playlist, error)
	Save(ctx context.Context, p domain.Playlist) error
	// UpdateTrackEnergy re-tiers a track after background preview analysis.
	UpdateTrackEnergy(ctx context.Context, trackID string, energy domain.EnergyTier) error
}
