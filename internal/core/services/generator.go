package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/champion-vibes/backend/internal/core/domain"
	"github.com/champion-vibes/backend/internal/core/ports"
	"github.com/champion-vibes/backend/internal/core/profile"
)

const (
	// baseTargetMinutes is the floor of a generated playlist's duration.
	// A random variation on top keeps repeated generations from feeling
	// identical.
	baseTargetMinutes = 150
	maxExtraMinutes   = 60
)

// PreviewQueue accepts background analysis work for tracks that carry a
// preview clip. Submissions are best effort.
type PreviewQueue interface {
	Submit(trackID, previewURL string) bool
}

// Generator builds playlists from character identity. It derives a music
// profile, expands it into search queries, assembles tracks from the search
// backend, and orders them for listening flow.
type Generator struct {
	characters ports.CharacterSource
	searcher   ports.MusicSearcher
	repo       ports.PlaylistRepository
	previews   PreviewQueue

	// targetDuration is swappable for deterministic tests.
	targetDuration func() int64
}

// NewGenerator wires a Generator from its dependencies. previews may be nil
// when no background analysis is configured.
func NewGenerator(characters ports.CharacterSource, searcher ports.MusicSearcher, repo ports.PlaylistRepository, previews PreviewQueue) *Generator {
	return &Generator{
		characters: characters,
		searcher:   searcher,
		repo:       repo,
		previews:   previews,
		targetDuration: func() int64 {
			minutes := baseTargetMinutes + rand.IntN(maxExtraMinutes+1)
			return int64(minutes) * 60 * 1000
		},
	}
}

// GenerateRequest carries the inputs of a playlist generation.
type GenerateRequest struct {
	ChampionID string
	Role       string
	Playstyle  string
	UserTags   []string
}

// GeneratePlaylist produces and persists a playlist for the given champion,
// role and playstyle. An empty playstyle defaults to "balanced". It returns
// domain.ErrInvalidInput for missing required fields and domain.ErrNoResults
// when every search comes back empty.
func (g *Generator) GeneratePlaylist(ctx context.Context, req GenerateRequest) (domain.Playlist, error) {
	if strings.TrimSpace(req.ChampionID) == "" {
		return domain.Playlist{}, fmt.Errorf("generator: champion id is required: %w", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(req.Role) == "" {
		return domain.Playlist{}, fmt.Errorf("generator: role is required: %w", domain.ErrInvalidInput)
	}
	playstyle := req.Playstyle
	if strings.TrimSpace(playstyle) == "" {
		playstyle = "balanced"
	}

	base, name, err := g.baseProfile(ctx, req.ChampionID)
	if err != nil {
		return domain.Playlist{}, err
	}

	merged := profile.Combine(base, profile.Role(req.Role), profile.Playstyle(playstyle))
	merged.UserTags = req.UserTags

	queries := GenerateQueries(merged)
	tracks, err := g.assembleTracks(ctx, queries, g.targetDuration())
	if err != nil {
		return domain.Playlist{}, fmt.Errorf("generator: assembling tracks: %w", err)
	}
	if len(tracks) == 0 {
		return domain.Playlist{}, fmt.Errorf("generator: no tracks for %q: %w", req.ChampionID, domain.ErrNoResults)
	}

	tracks = OptimizeFlow(tracks, merged.Energy)

	playlist := domain.Playlist{
		ID:         uuid.NewString(),
		ChampionID: req.ChampionID,
		Role:       req.Role,
		Playstyle:  playstyle,
		Title:      fmt.Sprintf("%s %s %s Vibes", name, req.Role, playstyle),
		Description: fmt.Sprintf("A %s %s playlist tuned to %s's %s %s style.",
			merged.Mood, merged.Genre, name, req.Role, playstyle),
		Tracks:    tracks,
		Profile:   merged,
		Tags:      playlistTags(merged, req),
		CreatedAt: time.Now().UTC(),
	}

	if err := g.repo.Save(ctx, playlist); err != nil {
		return domain.Playlist{}, fmt.Errorf("generator: saving playlist: %w", err)
	}

	g.enqueuePreviews(playlist.Tracks)

	return playlist, nil
}

// baseProfile resolves the champion's base music profile, preferring the
// curated table and falling back to trait analysis of live character data.
func (g *Generator) baseProfile(ctx context.Context, championID string) (domain.MusicProfile, string, error) {
	if entry, ok := profile.Lookup(championID); ok {
		return entry.Base, entry.Name, nil
	}

	rec, err := g.characters.GetCharacter(ctx, championID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, context.Canceled) {
			return domain.MusicProfile{}, "", fmt.Errorf("generator: resolving champion %q: %w", championID, err)
		}
		// Upstream outage: fall back to a neutral profile rather than fail
		// the whole generation.
		log.Printf("WARN generator: character source unavailable for %q, using defaults: %v", championID, err)
		entry := profile.Default(championID)
		return entry.Base, entry.Name, nil
	}
	return profile.Analyze(rec), rec.Name, nil
}

// GetPlaylist returns a previously generated playlist.
func (g *Generator) GetPlaylist(ctx context.Context, id string) (domain.Playlist, error) {
	playlist, err := g.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Playlist{}, fmt.Errorf("generator: fetching playlist %q: %w", id, err)
	}
	return playlist, nil
}

// ListChampions returns the available champion roster.
func (g *Generator) ListChampions(ctx context.Context) ([]ports.CharacterSummary, error) {
	summaries, err := g.characters.ListCharacters(ctx)
	if err != nil {
		return nil, fmt.Errorf("generator: listing champions: %w", err)
	}
	return summaries, nil
}

// AnalyzeChampion returns the champion record together with the music
// profile derived from its traits.
func (g *Generator) AnalyzeChampion(ctx context.Context, id string) (ports.CharacterRecord, domain.MusicProfile, error) {
	rec, err := g.characters.GetCharacter(ctx, id)
	if err != nil {
		return ports.CharacterRecord{}, domain.MusicProfile{}, fmt.Errorf("generator: fetching champion %q: %w", id, err)
	}
	if entry, ok := profile.Lookup(id); ok {
		return rec, entry.Base, nil
	}
	return rec, profile.Analyze(rec), nil
}

func (g *Generator) enqueuePreviews(tracks []domain.Track) {
	if g.previews == nil {
		return
	}
	for _, t := range tracks {
		if t.PreviewURL == "" {
			continue
		}
		if !g.previews.Submit(t.ID, t.PreviewURL) {
			log.Printf("WARN generator: preview queue full, skipping track %s", t.ID)
			continue
		}
	}
}

func playlistTags(p domain.MusicProfile, req GenerateRequest) []string {
	tags := []string{req.ChampionID, req.Role, p.Genre, string(p.Energy)}
	tags = append(tags, p.UserTags...)
	return dedupeStrings(tags)
}
