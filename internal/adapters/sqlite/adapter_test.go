package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/champion-vibes/backend/internal/core/domain"
)

func TestAdapter_GetByID(t *testing.T) {
	tests := []struct {
		name       string
		setup      func(t *testing.T, a *Adapter) string
		wantErr    error
		wantID     string
		wantTitle  string
		wantTracks int
	}{
		{
			name: "not found",
			setup: func(t *testing.T, a *Adapter) string {
				return "missing"
			},
			wantErr: domain.ErrNotFound,
		},
		{
			name: "returns playlist with ordered tracks",
			setup: func(t *testing.T, a *Adapter) string {
				p := domain.Playlist{
					ID:         "pl-1",
					ChampionID: "jinx",
					Role:       "adc",
					Playstyle:  "aggressive",
					Title:      "Jinx adc aggressive Vibes",
					Profile: domain.MusicProfile{
						Theme:  "chaos",
						Mood:   "chaotic",
						Energy: domain.EnergyExtreme,
						Genre:  "electronic",
					},
					Tags:      []string{"jinx", "adc", "electronic"},
					CreatedAt: time.Now().UTC(),
					Tracks: []domain.Track{
						{
							ID:         "t1",
							Title:      "Song One",
							Artist:     "Artist A",
							DurationMs: 123000,
							Platform:   domain.PlatformSpotify,
							URL:        "https://open.spotify.com/track/t1",
							PreviewURL: "https://p.test/1.mp3",
							Genre:      "electronic",
							Mood:       "chaotic",
							Energy:     domain.EnergyHigh,
						},
						{
							ID:         "t2",
							Title:      "Song Two",
							Artist:     "Artist B",
							DurationMs: 201000,
							Platform:   domain.PlatformSpotify,
							URL:        "https://open.spotify.com/track/t2",
							Energy:     domain.EnergyMedium,
						},
					},
				}
				if err := a.Save(context.Background(), p); err != nil {
					t.Fatalf("save playlist: %v", err)
				}
				return p.ID
			},
			wantID:     "pl-1",
			wantTitle:  "Jinx adc aggressive Vibes",
			wantTracks: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := NewAdapter(":memory:")
			if err != nil {
				t.Fatalf("new adapter: %v", err)
			}
			defer a.Close()

			playlistID := tt.setup(t, a)
			got, err := a.GetByID(context.Background(), playlistID)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected error %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.ID != tt.wantID {
				t.Fatalf("id: got %q, want %q", got.ID, tt.wantID)
			}
			if got.Title != tt.wantTitle {
				t.Fatalf("title: got %q, want %q", got.Title, tt.wantTitle)
			}
			if len(got.Tracks) != tt.wantTracks {
				t.Fatalf("tracks: got %d, want %d", len(got.Tracks), tt.wantTracks)
			}
			if tt.wantTracks > 0 {
				if got.Tracks[0].ID != "t1" || got.Tracks[1].ID != "t2" {
					t.Fatalf("track order not preserved: %q, %q", got.Tracks[0].ID, got.Tracks[1].ID)
				}
				if got.Profile.Energy != domain.EnergyExtreme {
					t.Fatalf("profile not round-tripped: %+v", got.Profile)
				}
				if len(got.Tags) != 3 {
					t.Fatalf("tags not round-tripped: %v", got.Tags)
				}
			}
		})
	}
}

func TestAdapter_SaveReplacesTrackOrder(t *testing.T) {
	a, err := NewAdapter(":memory:")
	if err != nil {
		t.Fatalf("new adapter: %v", err)
	}
	defer a.Close()

	p := testPlaylist("pl-reorder",
		domain.Track{ID: "t1", Title: "One", Artist: "A", Platform: domain.PlatformSpotify},
		domain.Track{ID: "t2", Title: "Two", Artist: "B", Platform: domain.PlatformSpotify},
	)
	if err := a.Save(context.Background(), p); err != nil {
		t.Fatalf("save: %v", err)
	}

	p.Tracks = []domain.Track{p.Tracks[1], p.Tracks[0]}
	if err := a.Save(context.Background(), p); err != nil {
		t.Fatalf("re-save: %v", err)
	}

	got, err := a.GetByID(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Tracks[0].ID != "t2" || got.Tracks[1].ID != "t1" {
		t.Fatalf("expected reordered tracks, got %q, %q", got.Tracks[0].ID, got.Tracks[1].ID)
	}
}

func TestAdapter_UpdateTrackEnergy(t *testing.T) {
	a, err := NewAdapter(":memory:")
	if err != nil {
		t.Fatalf("new adapter: %v", err)
	}
	defer a.Close()

	p := testPlaylist("pl-energy",
		domain.Track{ID: "t1", Title: "One", Artist: "A", Platform: domain.PlatformSpotify, Energy: domain.EnergyMedium},
	)
	if err := a.Save(context.Background(), p); err != nil {
		t.Fatalf("save: %v", err)
	}

	if err := a.UpdateTrackEnergy(context.Background(), "t1", domain.EnergyExtreme); err != nil {
		t.Fatalf("update energy: %v", err)
	}

	got, err := a.GetByID(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Tracks[0].Energy != domain.EnergyExtreme {
		t.Fatalf("energy: got %q, want %q", got.Tracks[0].Energy, domain.EnergyExtreme)
	}
}

func testPlaylist(id string, tracks ...domain.Track) domain.Playlist {
	return domain.Playlist{
		ID:         id,
		ChampionID: "jinx",
		Role:       "adc",
		Playstyle:  "balanced",
		Title:      "Test Playlist",
		Profile:    domain.MusicProfile{Genre: "electronic", Energy: domain.EnergyMedium},
		Tags:       []string{"jinx"},
		CreatedAt:  time.Now().UTC(),
		Tracks:     tracks,
	}
}
