package services

import (
	"strings"

	"github.com/champion-vibes/backend/internal/core/ports"
)

// excludeKeywords mark uploads that are not the song itself: shorts, fan
// content, modified edits, long loops, gaming clips, compilations. Exclusion
// wins over every other signal.
var excludeKeywords = []string{
	"#shorts",
	"short",
	"#short",
	"tutorial",
	"how to",
	"reaction",
	"react to",
	"review",
	"cover version",
	"acoustic cover",
	"piano cover",
	"guitar cover",
	"drum cover",
	"bass cover",
	"vocal cover",
	"nightcore",
	"karaoke",
	"lyrics video",
	"lyrics only",
	"lyric video",
	"speed up",
	"sped up",
	"slowed",
	"reverb",
	"8d audio",
	"bass boosted",
	"1 hour",
	"10 hours",
	"24 hours",
	"extended",
	"loop",
	"10h",
	"1h",
	"gameplay",
	"fortnite",
	"tiktok",
	"roblox",
	"minecraft",
	"compilation",
	"mashup",
	"megamix",
	"best of 2024",
}

// trustedChannels publish official or licensed uploads; a match here accepts
// the video without further checks.
var trustedChannels = []string{
	"vevo",
	"topic",
	"official",
	"records",
	"ncs",
	"nocopyrightsounds",
	"monstercat",
	"trap nation",
	"proximity",
	"magic music",
	"selected",
	"mrsuicidesheep",
}

// qualityIndicators accept an otherwise unknown upload when its title claims
// to be an official release.
var qualityIndicators = []string{
	"official audio",
	"official video",
	"official music video",
	"audio only",
	"full song",
	"hd audio",
	"music video",
}

// IsValidMusicVideo reports whether a search result looks like a genuine
// music upload. Checks run in strict order: exclusion keywords in the title
// reject first, then trusted channels accept, then quality indicators accept.
func IsValidMusicVideo(v ports.VideoResult) bool {
	title := strings.ToLower(v.Title)
	channel := strings.ToLower(v.ChannelTitle)

	for _, kw := range excludeKeywords {
		if strings.Contains(title, kw) {
			return false
		}
	}
	for _, name := range trustedChannels {
		if strings.Contains(channel, name) {
			return true
		}
	}
	for _, indicator := range qualityIndicators {
		if strings.Contains(title, indicator) {
			return true
		}
	}
	return false
}
