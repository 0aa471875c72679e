package profile

import (
	"testing"

	"github.com/champion-vibes/backend/internal/core/domain"
	"github.com/champion-vibes/backend/internal/core/ports"
)

func TestAnalyze(t *testing.T) {
	tests := []struct {
		name string
		rec  ports.CharacterRecord
		want domain.MusicProfile
	}{
		{
			name: "dark lore drives theme and instruments",
			rec: ports.CharacterRecord{
				Name: "Morgana",
				Lore: "A fallen angel bound to shadow and darkness.",
				Tags: []string{"Mage"},
			},
			want: domain.MusicProfile{
				Theme:       "dark",
				Mood:        "mystical",
				Energy:      domain.EnergyMedium,
				Genre:       "dark-ambient",
				Tempo:       "medium",
				Instruments: []string{"organ", "strings", "choir"},
				Cultural:    "gothic",
				Complexity:  "medium",
			},
		},
		{
			name: "assassin defaults run fast and high energy",
			rec: ports.CharacterRecord{
				Name:       "Talon",
				Lore:       "A blade for hire in the capital's underbelly.",
				Tags:       []string{"Assassin"},
				SpellCount: 4,
			},
			want: domain.MusicProfile{
				Theme:       "stealth",
				Mood:        "sinister",
				Energy:      domain.EnergyHigh,
				Genre:       "electronic",
				Tempo:       "fast",
				Instruments: []string{"synthesizer", "drums", "strings"},
				Cultural:    "modern",
				Complexity:  "high",
			},
		},
		{
			name: "ionian lore maps to japanese culture",
			rec: ports.CharacterRecord{
				Name: "Shen",
				Lore: "A guardian of the balance in Ionia.",
				Tags: []string{"Tank"},
			},
			want: domain.MusicProfile{
				Theme:       "fortress",
				Mood:        "protective",
				Energy:      domain.EnergyMedium,
				Genre:       "j-pop",
				Tempo:       "medium",
				Instruments: []string{"shamisen", "flute", "taiko"},
				Cultural:    "japanese",
				Complexity:  "low",
			},
		},
		{
			name: "empty record gets neutral defaults",
			rec:  ports.CharacterRecord{Name: "Nobody"},
			want: domain.MusicProfile{
				Theme:       "epic",
				Mood:        "neutral",
				Energy:      domain.EnergyMedium,
				Genre:       "electronic",
				Tempo:       "medium",
				Instruments: []string{"synthesizer", "drums", "strings"},
				Cultural:    "modern",
				Complexity:  "medium",
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Analyze(tc.rec)

			if got.Theme != tc.want.Theme {
				t.Errorf("theme = %q, want %q", got.Theme, tc.want.Theme)
			}
			if got.Mood != tc.want.Mood {
				t.Errorf("mood = %q, want %q", got.Mood, tc.want.Mood)
			}
			if got.Energy != tc.want.Energy {
				t.Errorf("energy = %s, want %s", got.Energy, tc.want.Energy)
			}
			if got.Genre != tc.want.Genre {
				t.Errorf("genre = %q, want %q", got.Genre, tc.want.Genre)
			}
			if got.Tempo != tc.want.Tempo {
				t.Errorf("tempo = %q, want %q", got.Tempo, tc.want.Tempo)
			}
			if got.Cultural != tc.want.Cultural {
				t.Errorf("cultural = %q, want %q", got.Cultural, tc.want.Cultural)
			}
			if got.Complexity != tc.want.Complexity {
				t.Errorf("complexity = %q, want %q", got.Complexity, tc.want.Complexity)
			}
			if len(got.Instruments) != len(tc.want.Instruments) {
				t.Fatalf("instruments = %v, want %v", got.Instruments, tc.want.Instruments)
			}
			for i := range got.Instruments {
				if got.Instruments[i] != tc.want.Instruments[i] {
					t.Errorf("instruments[%d] = %q, want %q", i, got.Instruments[i], tc.want.Instruments[i])
				}
			}
		})
	}
}

func TestAnalyze_MageAttackDamageBumpsEnergy(t *testing.T) {
	rec := ports.CharacterRecord{
		Name:         "Battlecaster",
		Tags:         []string{"Mage"},
		AttackDamage: 65,
	}
	if got := Analyze(rec); got.Energy != domain.EnergyHigh {
		t.Errorf("energy = %s, hard-hitting mages should run high", got.Energy)
	}
}

func TestAnalyze_IsDeterministic(t *testing.T) {
	rec := ports.CharacterRecord{
		Name: "Jhin",
		Lore: "An artist with a hidden, mysterious past full of rage.",
		Tags: []string{"Marksman"},
	}
	first := Analyze(rec)
	for i := 0; i < 5; i++ {
		if got := Analyze(rec); got.Theme != first.Theme || got.Mood != first.Mood || got.Genre != first.Genre {
			t.Fatalf("analysis varied between runs: %+v vs %+v", first, got)
		}
	}
}
