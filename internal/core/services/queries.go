package services

import (
	"fmt"

	"github.com/champion-vibes/backend/internal/core/domain"
)

// maxQueries is a resource bound on outbound searches, not a quality
// judgment: when user tags alone exceed it, the earlier (higher priority)
// queries are the ones kept.
const maxQueries = 12

// genreChannels maps a profile genre to trusted channel hints that bias
// searches toward curated gaming music.
var genreChannels = map[string][]string{
	"electronic": {"NCS", "Monstercat", "Trap Nation", "electronic gaming"},
	"rock":       {"epic rock", "gaming rock", "rock gaming music"},
	"orchestral": {"epic music", "cinematic music", "orchestral gaming"},
	"hip-hop":    {"trap gaming", "hip hop gaming", "gaming beats"},
	"ambient":    {"ambient gaming", "chill gaming", "focus music"},
	"j-pop":      {"anime music", "japanese gaming", "jpop gaming"},
	"k-pop":      {"kpop gaming", "korean gaming music"},
	"metal":      {"metal gaming", "heavy gaming music", "gaming metal"},
}

var energyQueries = map[domain.EnergyTier][]string{
	domain.EnergyExtreme: {
		"extreme gaming music NCS",
		"intense battle music epic",
		"adrenaline gaming music",
		"hardcore gaming soundtrack Monstercat",
	},
	domain.EnergyHigh: {
		"energetic gaming music NCS",
		"upbeat gaming music",
		"powerful gaming soundtrack",
		"high energy EDM gaming",
	},
	domain.EnergyLow: {
		"chill gaming music NCS",
		"focus gaming music",
		"relaxing gaming soundtrack",
		"lofi gaming beats",
	},
	domain.EnergyMedium: {
		"balanced gaming music NCS",
		"gaming focus music Monstercat",
		"steady gaming music mix",
		"medium energy gaming playlist",
	},
}

// GenerateQueries derives an ordered, deduplicated list of search queries
// from an effective music profile. User-selected tags rank above everything
// the profile itself contributes. The result is capped at maxQueries.
func GenerateQueries(p domain.MusicProfile) []string {
	var queries []string

	// User tags first: they are the strongest stated preference.
	for _, tag := range p.UserTags {
		queries = append(queries,
			fmt.Sprintf("%s gaming music", tag),
			fmt.Sprintf("%s %s", tag, p.Mood),
			fmt.Sprintf("%s %s energy", tag, p.Energy),
			fmt.Sprintf("best %s music", tag),
		)
	}
	if len(p.UserTags) >= 2 {
		queries = append(queries, fmt.Sprintf("%s %s gaming music", p.UserTags[0], p.UserTags[1]))
	}

	channels := genreChannels[p.Genre]
	if len(channels) == 0 {
		channels = []string{"gaming music"}
	}
	for _, channel := range channels {
		queries = append(queries,
			fmt.Sprintf("%s %s", channel, p.Mood),
			fmt.Sprintf("%s %s energy", channel, p.Energy),
		)
	}

	queries = append(queries,
		fmt.Sprintf("%s %s gaming music NCS", p.Mood, p.Energy),
		fmt.Sprintf("%s %s no copyright", p.Genre, p.Mood),
		fmt.Sprintf("best %s gaming music", p.Genre),
	)

	queries = append(queries,
		fmt.Sprintf("League of Legends %s music", p.Genre),
		"LoL gaming music",
	)

	queries = append(queries, energyQueries[p.Energy]...)

	if p.Theme != "" && p.Theme != "balanced" {
		queries = append(queries, fmt.Sprintf("%s epic gaming music", p.Theme))
	}

	if len(p.Instruments) > 0 {
		queries = append(queries, fmt.Sprintf("%s %s gaming", p.Instruments[0], p.Genre))
	}

	return capQueries(dedupeStrings(queries), maxQueries)
}

// dedupeStrings removes exact duplicates keeping the first occurrence.
func dedupeStrings(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, q := range in {
		if _, dup := seen[q]; dup {
			continue
		}
		seen[q] = struct{}{}
		out = append(out, q)
	}
	return out
}

func capQueries(in []string, limit int) []string {
	if len(in) <= limit {
		return in
	}
	return in[:limit]
}
