package spotify

import (
	"strings"

	"github.com/champion-vibes/backend/internal/core/domain"
)

// Keyword tables for inferring coarse genre, mood and energy from track
// metadata. Spotify's catalog search does not return audio features at this
// tier, so titles and artist names are the signal available. Tables are
// ordered: the first matching label wins.
type keywordRule struct {
	label string
	words []string
}

var genreRules = []keywordRule{
	{"metal", []string{"metal", "metalcore", "thrash"}},
	{"rock", []string{"rock", "punk", "grunge"}},
	{"hip-hop", []string{"rap", "hip hop", "hip-hop", "trap", "beats"}},
	{"orchestral", []string{"orchestra", "symphony", "cinematic", "epic score"}},
	{"ambient", []string{"ambient", "chill", "lofi", "lo-fi", "relax"}},
	{"j-pop", []string{"jpop", "j-pop", "anime"}},
	{"k-pop", []string{"kpop", "k-pop"}},
	{"electronic", []string{"edm", "electro", "techno", "house", "dubstep", "synth", "ncs"}},
}

var moodRules = []keywordRule{
	{"aggressive", []string{"rage", "fury", "war", "battle", "fight"}},
	{"dark", []string{"dark", "shadow", "night", "demon"}},
	{"uplifting", []string{"rise", "hope", "light", "hero"}},
	{"calm", []string{"calm", "peace", "quiet", "serene"}},
	{"chaotic", []string{"chaos", "mayhem", "wild", "crazy"}},
}

var energyRules = []struct {
	tier  domain.EnergyTier
	words []string
}{
	{domain.EnergyExtreme, []string{"extreme", "hardcore", "insane", "maximum"}},
	{domain.EnergyHigh, []string{"intense", "power", "pump", "hype", "adrenaline"}},
	{domain.EnergyLow, []string{"chill", "lofi", "lo-fi", "sleep", "ambient", "relax", "calm"}},
}

// classifyTrack infers genre, mood and energy from a track's title and
// artist. Unmatched fields fall back to neutral values.
func classifyTrack(title, artist string) (string, string, domain.EnergyTier) {
	haystack := strings.ToLower(title + " " + artist)

	genre := "electronic"
	for _, rule := range genreRules {
		if containsAnyKeyword(haystack, rule.words) {
			genre = rule.label
			break
		}
	}

	mood := "neutral"
	for _, rule := range moodRules {
		if containsAnyKeyword(haystack, rule.words) {
			mood = rule.label
			break
		}
	}

	energy := domain.EnergyMedium
	for _, rule := range energyRules {
		if containsAnyKeyword(haystack, rule.words) {
			energy = rule.tier
			break
		}
	}

	return genre, mood, energy
}

func containsAnyKeyword(haystack string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}
