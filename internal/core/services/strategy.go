package services

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/champion-vibes/backend/internal/core/ports"
)

// Search strategy names, in the order they are attempted.
const (
	StrategyFreshHits  = "fresh hits"
	StrategyBestMatch  = "best match"
	StrategyHiddenGems = "hidden gems"
	StrategyTopic      = "topic"
)

// SearchStrategy pairs a named query with the video search parameters that
// bias its results toward a particular kind of upload.
type SearchStrategy struct {
	Name   string
	Query  string
	Params ports.VideoSearchParams
}

// cleanPattern strips punctuation that trips up search matching while
// keeping word characters, whitespace and hyphens.
var cleanPattern = regexp.MustCompile(`[^\w\s-]`)

// SearchStrategies builds the ordered set of strategies tried when resolving
// a track title and artist to a video. now anchors the recency cutoff of the
// fresh hits strategy.
func SearchStrategies(title, artist string, now time.Time) []SearchStrategy {
	base := fmt.Sprintf("%s %s music", cleanQueryTerm(title), cleanQueryTerm(artist))

	return []SearchStrategy{
		{
			Name:  StrategyFreshHits,
			Query: base + " official audio",
			Params: ports.VideoSearchParams{
				Order:          "viewCount",
				Duration:       "medium",
				PublishedAfter: now.AddDate(0, -6, 0),
			},
		},
		{
			Name:  StrategyBestMatch,
			Query: base + " official",
			Params: ports.VideoSearchParams{
				Order:    "relevance",
				Duration: "medium",
			},
		},
		{
			Name:  StrategyHiddenGems,
			Query: base + " audio",
			Params: ports.VideoSearchParams{
				Order:    "rating",
				Duration: "any",
			},
		},
		{
			Name:  StrategyTopic,
			Query: fmt.Sprintf("%s %s topic", cleanQueryTerm(title), cleanQueryTerm(artist)),
			Params: ports.VideoSearchParams{
				Order:    "relevance",
				Duration: "medium",
			},
		},
	}
}

// cleanQueryTerm removes characters outside the word, space and hyphen
// classes, collapsing the surrounding whitespace.
func cleanQueryTerm(s string) string {
	cleaned := cleanPattern.ReplaceAllString(s, "")
	return strings.Join(strings.Fields(cleaned), " ")
}
