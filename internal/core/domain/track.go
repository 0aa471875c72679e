package domain

// Platform identifies the streaming service a track or export target lives on.
type Platform string

const (
	PlatformYouTube Platform = "youtube"
	PlatformSpotify Platform = "spotify"
)

// Track represents one musical track in the domain layer. Identity is ID;
// two tracks with the same ID are the same track for deduplication purposes.
type Track struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Artist       string     `json:"artist"`
	DurationMs   int64      `json:"durationMs"`
	Platform     Platform   `json:"platform"`
	URL          string     `json:"url"`
	PreviewURL   string     `json:"previewUrl,omitempty"`
	ThumbnailURL string     `json:"thumbnailUrl,omitempty"`
	Genre        string     `json:"genre,omitempty"`
	Mood         string     `json:"mood,omitempty"`
	Energy       EnergyTier `json:"energy"`
}
