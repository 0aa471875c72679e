package profile

import "github.com/champion-vibes/backend/internal/core/domain"

var roleModifiers = map[string]domain.PartialProfile{
	"top": {
		Theme:       "isolation",
		Mood:        "focused",
		Energy:      domain.EnergyHigh,
		Instruments: []string{"guitar", "drums", "brass"},
		Keywords:    []string{"isolation", "dueling", "strength", "endurance", "solo", "duel"},
	},
	"jungle": {
		Theme:       "wild",
		Mood:        "hunter",
		Energy:      domain.EnergyExtreme,
		Instruments: []string{"drums", "synthesizer", "bass"},
		Keywords:    []string{"wild", "hunting", "stealth", "predator", "hunt", "jungle"},
	},
	"mid": {
		Theme:       "carry",
		Mood:        "confident",
		Energy:      domain.EnergyHigh,
		Instruments: []string{"synthesizer", "strings", "piano"},
		Keywords:    []string{"carry", "magic", "power", "dominance", "mid"},
	},
	"adc": {
		Theme:       "precision",
		Mood:        "calculated",
		Energy:      domain.EnergyMedium,
		Instruments: []string{"strings", "piano", "vocal"},
		Keywords:    []string{"precision", "ranged", "teamwork", "positioning", "marksman"},
	},
	"support": {
		Theme:       "teamwork",
		Mood:        "supportive",
		Energy:      domain.EnergyMedium,
		Instruments: []string{"strings", "choir", "piano"},
		Keywords:    []string{"teamwork", "protection", "healing", "utility", "support"},
	},
}

var playstyleModifiers = map[string]domain.PartialProfile{
	"aggressive": {
		Mood:     "aggressive",
		Energy:   domain.EnergyExtreme,
		Tempo:    "fast",
		Keywords: []string{"aggressive", "intense", "brutal", "dominating"},
	},
	"defensive": {
		Mood:     "protective",
		Energy:   domain.EnergyLow,
		Tempo:    "slow",
		Keywords: []string{"defensive", "patient", "strategic", "calculated"},
	},
	"balanced": {
		Mood:     "neutral",
		Energy:   domain.EnergyMedium,
		Tempo:    "medium",
		Keywords: []string{"balanced", "versatile", "adaptive", "flexible"},
	},
	"teamfight": {
		Mood:     "heroic",
		Energy:   domain.EnergyHigh,
		Tempo:    "fast",
		Keywords: []string{"teamfight", "coordination", "synergy", "unity"},
	},
	"splitpush": {
		Mood:     "focused",
		Energy:   domain.EnergyMedium,
		Tempo:    "medium",
		Keywords: []string{"splitpush", "pressure", "map control", "strategy"},
	},
}

// Role returns the role's modifier fragment. Unknown roles contribute nothing.
func Role(role string) domain.PartialProfile {
	return roleModifiers[role]
}

// Playstyle returns the playstyle's modifier fragment. Unknown playstyles
// contribute nothing.
func Playstyle(playstyle string) domain.PartialProfile {
	return playstyleModifiers[playstyle]
}
