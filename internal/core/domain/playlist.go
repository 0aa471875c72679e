package domain

import "time"

// Playlist is the final generated entity. The track order is semantically
// meaningful: it is the listening flow produced by the flow optimizer.
// Playlists are never mutated in place; edits produce a new playlist.
type Playlist struct {
	ID          string       `json:"id"`
	ChampionID  string       `json:"championId"`
	Role        string       `json:"role"`
	Playstyle   string       `json:"playstyle"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Tracks      []Track      `json:"tracks"`
	Profile     MusicProfile `json:"profile"`
	Tags        []string     `json:"tags"`
	CreatedAt   time.Time    `json:"createdAt"`
}

// TrackCount reports the number of tracks; always consistent with Tracks.
func (p Playlist) TrackCount() int {
	return len(p.Tracks)
}

// TotalDurationMs is the sum of the constituent track durations.
func (p Playlist) TotalDurationMs() int64 {
	var total int64
	for _, t := range p.Tracks {
		total += t.DurationMs
	}
	return total
}
