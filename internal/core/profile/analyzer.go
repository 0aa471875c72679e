package profile

import (
	"strings"

	"github.com/champion-vibes/backend/internal/core/domain"
	"github.com/champion-vibes/backend/internal/core/ports"
)

// The analyzer derives a music profile from an upstream character record when
// the static table has no entry. Each field has its own independent
// first-match-wins rule chain with a trailing default; the chains are data,
// so new rules are new entries, not new branches.

type loreRule struct {
	needles []string
	value   string
}

type tagRule struct {
	tag   string
	value string
}

var themeLoreRules = []loreRule{
	{[]string{"demon", "shadow", "dark"}, "dark"},
	{[]string{"angel", "light", "holy"}, "light"},
	{[]string{"dragon", "beast", "wild"}, "beast"},
	{[]string{"machine", "robot", "tech"}, "mechanical"},
	{[]string{"ice", "frost", "cold"}, "ice"},
	{[]string{"fire", "flame", "burn"}, "fire"},
}

var themeTagRules = []tagRule{
	{"Assassin", "stealth"},
	{"Tank", "fortress"},
	{"Mage", "mystical"},
	{"Marksman", "precision"},
	{"Support", "guardian"},
}

var moodLoreRules = []loreRule{
	{[]string{"sad", "tragic", "lonely"}, "melancholic"},
	{[]string{"angry", "rage", "fury"}, "aggressive"},
	{[]string{"happy", "joy", "cheerful"}, "uplifting"},
	{[]string{"mysterious", "secret", "hidden"}, "mysterious"},
	{[]string{"noble", "honor", "justice"}, "heroic"},
}

var moodTagRules = []tagRule{
	{"Assassin", "sinister"},
	{"Tank", "protective"},
	{"Mage", "mystical"},
}

// culturalRules consult the champion's name as a secondary signal when the
// lore is inconclusive.
var culturalRules = []struct {
	loreNeedles []string
	nameNeedles []string
	value       string
}{
	{[]string{"ionia", "japanese"}, []string{"yasuo", "ahri"}, "japanese"},
	{[]string{"korean"}, []string{"jinx", "vi"}, "korean"},
	{[]string{"noxus", "military"}, []string{"darius"}, "military"},
	{[]string{"demacia", "noble"}, []string{"garen"}, "medieval"},
	{[]string{"void", "alien"}, []string{"kha"}, "alien"},
	{[]string{"shadow", "dark"}, []string{"zed"}, "gothic"},
}

var genreByTheme = map[string]string{
	"dark":       "dark-ambient",
	"mechanical": "electronic",
	"fire":       "metal",
	"ice":        "ambient",
	"beast":      "tribal",
	"light":      "orchestral",
}

var instrumentsByCulture = map[string][]string{
	"japanese": {"shamisen", "flute", "taiko"},
	"korean":   {"synthesizer", "vocal", "strings"},
}

var instrumentsByTheme = map[string][]string{
	"dark":       {"organ", "strings", "choir"},
	"mechanical": {"synthesizer", "drums", "bass"},
	"fire":       {"guitar", "drums", "brass"},
	"ice":        {"piano", "strings", "bells"},
	"beast":      {"drums", "flute", "percussion"},
	"light":      {"piano", "strings", "choir"},
}

// Analyze infers a music profile from a character record using keyword and
// tag heuristics. Deterministic for the same input; no I/O.
func Analyze(rec ports.CharacterRecord) domain.MusicProfile {
	theme := analyzeTheme(rec)
	cultural := analyzeCultural(rec)
	energy := analyzeEnergy(rec)

	return domain.MusicProfile{
		Theme:       theme,
		Mood:        analyzeMood(rec),
		Energy:      energy,
		Genre:       analyzeGenre(theme, cultural),
		Tempo:       analyzeTempo(energy, rec.Tags),
		Instruments: analyzeInstruments(theme, cultural),
		Cultural:    cultural,
		Complexity:  analyzeComplexity(rec),
	}
}

func analyzeTheme(rec ports.CharacterRecord) string {
	lore := strings.ToLower(rec.Lore)
	for _, rule := range themeLoreRules {
		if containsAny(lore, rule.needles) {
			return rule.value
		}
	}
	for _, rule := range themeTagRules {
		if hasTag(rec.Tags, rule.tag) {
			return rule.value
		}
	}
	return "epic"
}

func analyzeMood(rec ports.CharacterRecord) string {
	lore := strings.ToLower(rec.Lore)
	for _, rule := range moodLoreRules {
		if containsAny(lore, rule.needles) {
			return rule.value
		}
	}
	for _, rule := range moodTagRules {
		if hasTag(rec.Tags, rule.tag) {
			return rule.value
		}
	}
	return "neutral"
}

func analyzeEnergy(rec ports.CharacterRecord) domain.EnergyTier {
	switch {
	case hasTag(rec.Tags, "Assassin"):
		return domain.EnergyHigh
	case hasTag(rec.Tags, "Tank"):
		return domain.EnergyMedium
	case hasTag(rec.Tags, "Mage"):
		if rec.AttackDamage > 60 {
			return domain.EnergyHigh
		}
		return domain.EnergyMedium
	case hasTag(rec.Tags, "Marksman"):
		return domain.EnergyMedium
	case hasTag(rec.Tags, "Support"):
		return domain.EnergyLow
	}
	return domain.EnergyMedium
}

func analyzeGenre(theme, cultural string) string {
	if cultural == "japanese" {
		return "j-pop"
	}
	if cultural == "korean" {
		return "k-pop"
	}
	if g, ok := genreByTheme[theme]; ok {
		return g
	}
	return "electronic"
}

func analyzeTempo(energy domain.EnergyTier, tags []string) string {
	if energy == domain.EnergyHigh || hasTag(tags, "Assassin") {
		return "fast"
	}
	if energy == domain.EnergyLow || hasTag(tags, "Support") {
		return "slow"
	}
	return "medium"
}

func analyzeInstruments(theme, cultural string) []string {
	if instruments, ok := instrumentsByCulture[cultural]; ok {
		return instruments
	}
	if instruments, ok := instrumentsByTheme[theme]; ok {
		return instruments
	}
	return []string{"synthesizer", "drums", "strings"}
}

func analyzeCultural(rec ports.CharacterRecord) string {
	lore := strings.ToLower(rec.Lore)
	name := strings.ToLower(rec.Name)
	for _, rule := range culturalRules {
		if containsAny(lore, rule.loreNeedles) || containsAny(name, rule.nameNeedles) {
			return rule.value
		}
	}
	return "modern"
}

func analyzeComplexity(rec ports.CharacterRecord) string {
	switch {
	case hasTag(rec.Tags, "Assassin") && rec.SpellCount > 3:
		return "high"
	case hasTag(rec.Tags, "Tank"):
		return "low"
	case hasTag(rec.Tags, "Mage") && rec.SpellCount > 3:
		return "high"
	case hasTag(rec.Tags, "Support"):
		return "medium"
	}
	return "medium"
}

func containsAny(haystack string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}

func hasTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}
