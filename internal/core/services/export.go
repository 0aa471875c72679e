package services

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/champion-vibes/backend/internal/core/domain"
	"github.com/champion-vibes/backend/internal/core/ports"
)

// resolveConcurrency bounds how many track resolutions run at once.
const resolveConcurrency = 4

// TrackRef names a track to resolve on an external platform.
type TrackRef struct {
	Title  string
	Artist string
}

// TokenSource hands out valid platform access tokens for a session,
// refreshing them as needed.
type TokenSource interface {
	EnsureValid(ctx context.Context, sessionID string, platform domain.Platform) (string, error)
}

// Exporter pushes a playlist onto an external platform: it resolves each
// track to a platform item concurrently, dedupes the results and adds them
// to a freshly created remote playlist.
type Exporter struct {
	resolvers map[domain.Platform]ports.TrackResolver
	hosts     map[domain.Platform]ports.PlaylistHost
	tokens    TokenSource
}

// NewExporter builds an Exporter with no platforms registered.
func NewExporter(tokens TokenSource) *Exporter {
	return &Exporter{
		resolvers: make(map[domain.Platform]ports.TrackResolver),
		hosts:     make(map[domain.Platform]ports.PlaylistHost),
		tokens:    tokens,
	}
}

// Register wires a platform's resolver and host into the exporter.
func (e *Exporter) Register(platform domain.Platform, resolver ports.TrackResolver, host ports.PlaylistHost) {
	e.resolvers[platform] = resolver
	e.hosts[platform] = host
}

// ExportRequest carries the inputs of a playlist export.
type ExportRequest struct {
	SessionID   string
	Platform    domain.Platform
	Title       string
	Description string
	Tracks      []TrackRef
}

// Export resolves the requested tracks on the platform and assembles them
// into a new remote playlist. Tracks that cannot be resolved are skipped;
// creating the remote playlist failing is fatal. It returns
// domain.ErrAuthRequired when no valid token exists for the session and
// domain.ErrNoResults when nothing resolves.
func (e *Exporter) Export(ctx context.Context, req ExportRequest) (domain.ExportResult, error) {
	resolver, ok := e.resolvers[req.Platform]
	if !ok {
		return domain.ExportResult{}, fmt.Errorf("exporter: unsupported platform %q: %w", req.Platform, domain.ErrInvalidInput)
	}
	host := e.hosts[req.Platform]

	token, err := e.tokens.EnsureValid(ctx, req.SessionID, req.Platform)
	if err != nil {
		return domain.ExportResult{}, fmt.Errorf("exporter: %s token: %w", req.Platform, err)
	}

	resolutions := e.resolveAll(ctx, resolver, token, req.Tracks)
	items := dedupeResolutions(resolutions)
	if len(items) == 0 {
		return domain.ExportResult{}, fmt.Errorf("exporter: no tracks resolved on %s: %w", req.Platform, domain.ErrNoResults)
	}

	remote, err := host.CreatePlaylist(ctx, token, req.Title, req.Description)
	if err != nil {
		return domain.ExportResult{}, &ports.PlatformError{Platform: req.Platform, Op: "create playlist", Err: err}
	}

	added := 0
	for _, item := range items {
		if err := host.AddItem(ctx, token, remote.ID, item.ItemID); err != nil {
			log.Printf("WARN exporter: adding %q to %s playlist: %v", item.Title, req.Platform, err)
			continue
		}
		added++
	}

	return domain.ExportResult{
		PlaylistID:  remote.ID,
		URL:         remote.URL,
		VideosFound: len(items),
		VideosAdded: added,
		Items:       items,
	}, nil
}

// resolveAll fans resolutions out across a bounded worker group, keeping
// results in request order. Tracks without a match are logged and dropped.
func (e *Exporter) resolveAll(ctx context.Context, resolver ports.TrackResolver, token string, tracks []TrackRef) []domain.Resolution {
	results := make([]*domain.Resolution, len(tracks))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(resolveConcurrency)
	for i, track := range tracks {
		g.Go(func() error {
			res, err := resolver.Resolve(gctx, token, track.Title, track.Artist)
			if err != nil {
				log.Printf("WARN exporter: resolving %q by %q: %v", track.Title, track.Artist, err)
				return nil
			}
			results[i] = &res
			return nil
		})
	}
	// Resolution errors never propagate through the group.
	_ = g.Wait()

	resolved := make([]domain.Resolution, 0, len(tracks))
	for _, res := range results {
		if res != nil {
			resolved = append(resolved, *res)
		}
	}
	return resolved
}

// dedupeResolutions drops repeat platform items, keeping first occurrences.
func dedupeResolutions(in []domain.Resolution) []domain.Resolution {
	seen := make(map[string]struct{}, len(in))
	out := make([]domain.Resolution, 0, len(in))
	for _, res := range in {
		if _, dup := seen[res.ItemID]; dup {
			log.Printf("WARN exporter: duplicate item %s for %q, skipping", res.ItemID, res.Title)
			continue
		}
		seen[res.ItemID] = struct{}{}
		out = append(out, res)
	}
	return out
}
