package domain

// Resolution maps one requested (title, artist) pair to a concrete platform
// media identifier, tagged with the search strategy that produced it.
// Resolutions are transient; they live only for one export attempt.
type Resolution struct {
	ItemID       string `json:"itemId"`
	Title        string `json:"title"`
	Artist       string `json:"artist"`
	ChannelTitle string `json:"channelTitle,omitempty"`
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`
	URL          string `json:"url"`
	Strategy     string `json:"strategy"`
}

// ExportResult reports the outcome of one playlist export. VideosAdded may be
// lower than VideosFound: individual item-add failures are tolerated and the
// caller is expected to surface a partial-success message from the counts.
type ExportResult struct {
	PlaylistID  string       `json:"playlistId"`
	URL         string       `json:"url"`
	VideosFound int          `json:"videosFound"`
	VideosAdded int          `json:"videosAdded"`
	Items       []Resolution `json:"items"`
}
