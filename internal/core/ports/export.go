package ports

import (
	"context"
	"errors"
	"fmt"

	"github.com/champion-vibes/backend/internal/core/domain"
)

// ErrNoMatch indicates that resolution produced no acceptable candidate.
var ErrNoMatch = errors.New("no match")

// NoMatchError provides context for a failed track resolution.
type NoMatchError struct {
	Title  string
	Artist string
}

func (e NoMatchError) Error() string {
	if e.Title == "" && e.Artist == "" {
		return ErrNoMatch.Error()
	}
	return fmt.Sprintf("no match found for title %q artist %q", e.Title, e.Artist)
}

func (e NoMatchError) Is(target error) bool {
	return target == ErrNoMatch
}

// PlatformError carries detail from a remote platform failure that is fatal
// to the operation, such as the playlist-create call itself failing.
type PlatformError struct {
	Platform domain.Platform
	Op       string
	Err      error
}

func (e *PlatformError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Platform, e.Op, e.Err)
}

func (e *PlatformError) Unwrap() error {
	return e.Err
}

// RemotePlaylist identifies a playlist created on an external platform.
type RemotePlaylist struct {
	ID  string
	URL string
}

// PlaylistHost creates playlists and adds resolved items on a platform.
type PlaylistHost interface {
	CreatePlaylist(ctx context.Context, accessToken, title, description string) (RemotePlaylist, error)
	AddItem(ctx context.Context, accessToken, playlistID, itemID string) error
}

// TrackResolver maps one (title, artist) pair to a platform media identifier.
// Implementations return a NoMatchError when nothing acceptable was found.
type TrackResolver interface {
	Resolve(ctx context.Context, accessToken, title, artist string) (domain.Resolution, error)
}
