package spotify

import (
	"testing"

	"github.com/champion-vibes/backend/internal/core/domain"
)

func TestClassifyTrack(t *testing.T) {
	tests := []struct {
		name       string
		title      string
		artist     string
		wantGenre  string
		wantMood   string
		wantEnergy domain.EnergyTier
	}{
		{
			name:       "ncs upload",
			title:      "On & On [NCS Release]",
			artist:     "Cartoon",
			wantGenre:  "electronic",
			wantMood:   "neutral",
			wantEnergy: domain.EnergyMedium,
		},
		{
			name:       "battle metal",
			title:      "Rage of War",
			artist:     "Metal Brigade",
			wantGenre:  "metal",
			wantMood:   "aggressive",
			wantEnergy: domain.EnergyMedium,
		},
		{
			name:       "lofi chill",
			title:      "midnight lofi chill",
			artist:     "beatsmith",
			wantGenre:  "hip-hop",
			wantMood:   "dark",
			wantEnergy: domain.EnergyLow,
		},
		{
			name:       "hype edm",
			title:      "Adrenaline Pump",
			artist:     "EDM Factory",
			wantGenre:  "electronic",
			wantMood:   "neutral",
			wantEnergy: domain.EnergyHigh,
		},
		{
			name:       "plain title defaults",
			title:      "Some Song",
			artist:     "Somebody",
			wantGenre:  "electronic",
			wantMood:   "neutral",
			wantEnergy: domain.EnergyMedium,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			genre, mood, energy := classifyTrack(tc.title, tc.artist)
			if genre != tc.wantGenre {
				t.Errorf("genre = %q, want %q", genre, tc.wantGenre)
			}
			if mood != tc.wantMood {
				t.Errorf("mood = %q, want %q", mood, tc.wantMood)
			}
			if energy != tc.wantEnergy {
				t.Errorf("energy = %s, want %s", energy, tc.wantEnergy)
			}
		})
	}
}
