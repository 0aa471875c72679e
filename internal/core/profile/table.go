// Package profile holds the static champion music-preference tables, the
// role/playstyle modifier tables, the character analyzer, and the combiner
// that merges all of them into one effective music profile.
package profile

import (
	"strings"

	"github.com/champion-vibes/backend/internal/core/domain"
)

// Entry pairs champion display metadata with a base music profile.
type Entry struct {
	Name  string
	Title string
	Base  domain.MusicProfile
}

// champions is declarative data, not control flow: adding a champion means
// adding a map entry, nothing else.
var champions = map[string]Entry{
	"yasuo": {
		Name:  "Yasuo",
		Title: "The Unforgiven",
		Base: domain.MusicProfile{
			Theme:       "samurai",
			Mood:        "melancholic",
			Energy:      domain.EnergyHigh,
			Genre:       "j-pop",
			Tempo:       "fast",
			Instruments: []string{"shamisen", "flute", "taiko"},
			Cultural:    "japanese",
			Complexity:  "high",
			Keywords:    []string{"honor", "redemption", "wind", "sword"},
		},
	},
	"jinx": {
		Name:  "Jinx",
		Title: "The Loose Cannon",
		Base: domain.MusicProfile{
			Theme:       "chaos",
			Mood:        "chaotic",
			Energy:      domain.EnergyExtreme,
			Genre:       "punk",
			Tempo:       "extreme",
			Instruments: []string{"electric guitar", "drums", "synthesizer"},
			Cultural:    "modern",
			Complexity:  "medium",
			Keywords:    []string{"chaos", "destruction", "anarchy", "explosions"},
		},
	},
	"thresh": {
		Name:  "Thresh",
		Title: "The Chain Warden",
		Base: domain.MusicProfile{
			Theme:       "dark",
			Mood:        "sinister",
			Energy:      domain.EnergyMedium,
			Genre:       "dark-ambient",
			Tempo:       "slow",
			Instruments: []string{"organ", "strings", "choir"},
			Cultural:    "gothic",
			Complexity:  "high",
			Keywords:    []string{"darkness", "souls", "chains", "torment"},
		},
	},
	"darius": {
		Name:  "Darius",
		Title: "The Hand of Noxus",
		Base: domain.MusicProfile{
			Theme:       "military",
			Mood:        "aggressive",
			Energy:      domain.EnergyHigh,
			Genre:       "metal",
			Tempo:       "fast",
			Instruments: []string{"guitar", "drums", "brass"},
			Cultural:    "military",
			Complexity:  "medium",
			Keywords:    []string{"war", "conquest", "strength", "honor"},
		},
	},
	"ahri": {
		Name:  "Ahri",
		Title: "The Nine-Tailed Fox",
		Base: domain.MusicProfile{
			Theme:       "mystical",
			Mood:        "seductive",
			Energy:      domain.EnergyMedium,
			Genre:       "k-pop",
			Tempo:       "medium",
			Instruments: []string{"synthesizer", "vocal", "strings"},
			Cultural:    "korean",
			Complexity:  "high",
			Keywords:    []string{"mysticism", "beauty", "magic", "fox"},
		},
	},
	"lux": {
		Name:  "Lux",
		Title: "The Lady of Luminosity",
		Base: domain.MusicProfile{
			Theme:       "light",
			Mood:        "uplifting",
			Energy:      domain.EnergyMedium,
			Genre:       "pop",
			Tempo:       "medium",
			Instruments: []string{"piano", "strings", "vocal"},
			Cultural:    "modern",
			Complexity:  "medium",
			Keywords:    []string{"light", "hope", "magic", "brightness"},
		},
	},
	"zed": {
		Name:  "Zed",
		Title: "The Master of Shadows",
		Base: domain.MusicProfile{
			Theme:       "ninja",
			Mood:        "mysterious",
			Energy:      domain.EnergyHigh,
			Genre:       "electronic",
			Tempo:       "fast",
			Instruments: []string{"synthesizer", "drums", "strings"},
			Cultural:    "japanese",
			Complexity:  "high",
			Keywords:    []string{"shadows", "stealth", "ninja", "darkness"},
		},
	},
	"vayne": {
		Name:  "Vayne",
		Title: "The Night Hunter",
		Base: domain.MusicProfile{
			Theme:       "hunter",
			Mood:        "focused",
			Energy:      domain.EnergyMedium,
			Genre:       "dark-ambient",
			Tempo:       "medium",
			Instruments: []string{"strings", "piano", "choir"},
			Cultural:    "gothic",
			Complexity:  "high",
			Keywords:    []string{"hunting", "vengeance", "darkness", "monsters"},
		},
	},
	"leona": {
		Name:  "Leona",
		Title: "The Radiant Dawn",
		Base: domain.MusicProfile{
			Theme:       "solar",
			Mood:        "heroic",
			Energy:      domain.EnergyHigh,
			Genre:       "orchestral",
			Tempo:       "fast",
			Instruments: []string{"brass", "strings", "choir"},
			Cultural:    "classical",
			Complexity:  "medium",
			Keywords:    []string{"sun", "light", "heroism", "dawn"},
		},
	},
	"garen": {
		Name:  "Garen",
		Title: "The Might of Demacia",
		Base: domain.MusicProfile{
			Theme:       "knight",
			Mood:        "noble",
			Energy:      domain.EnergyHigh,
			Genre:       "orchestral",
			Tempo:       "fast",
			Instruments: []string{"brass", "strings", "drums"},
			Cultural:    "medieval",
			Complexity:  "medium",
			Keywords:    []string{"honor", "justice", "knight", "demacia"},
		},
	},
	"khazix": {
		Name:  "Kha'Zix",
		Title: "The Voidreaver",
		Base: domain.MusicProfile{
			Theme:       "alien",
			Mood:        "predatory",
			Energy:      domain.EnergyHigh,
			Genre:       "electronic",
			Tempo:       "fast",
			Instruments: []string{"synthesizer", "drums", "bass"},
			Cultural:    "alien",
			Complexity:  "high",
			Keywords:    []string{"evolution", "void", "predator", "alien"},
		},
	},
}

// Lookup returns the static base entry for a champion id, matched
// case-insensitively.
func Lookup(championID string) (Entry, bool) {
	e, ok := champions[strings.ToLower(strings.TrimSpace(championID))]
	return e, ok
}

// Default returns the neutral fallback entry for champions the static table
// does not know.
func Default(name string) Entry {
	return Entry{
		Name:  name,
		Title: "The Unknown",
		Base: domain.MusicProfile{
			Theme:       "mysterious",
			Mood:        "neutral",
			Energy:      domain.EnergyMedium,
			Genre:       "electronic",
			Tempo:       "medium",
			Instruments: []string{"synthesizer", "drums"},
			Cultural:    "modern",
			Complexity:  "medium",
			Keywords:    []string{"mystery", "unknown", "adventure"},
		},
	}
}
