package ports

import (
	"context"

	"github.com/champion-vibes/backend/internal/core/domain"
)

// MusicSearcher finds candidate tracks for a free-form query. Implementations
// can fail (network, quota); callers must treat a failure as an empty result
// for that query rather than aborting the whole operation.
type MusicSearcher interface {
	Search(ctx context.Context, query string, maxResults int) ([]domain.Track, error)
}
