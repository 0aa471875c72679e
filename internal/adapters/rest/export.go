package rest

import (
	"net/http"

	"github.com/champion-vibes/backend/internal/core/domain"
	"github.com/champion-vibes/backend/internal/core/services"
)

// ExportPlaylist handles POST /playlists/{id}/export/{platform}
func (h *Handler) ExportPlaylist(w http.ResponseWriter, r *http.Request) {
	platform, ok := parsePlatform(r.PathValue("platform"))
	if !ok {
		http.Error(w, "Unknown platform", http.StatusBadRequest)
		return
	}

	playlist, err := h.generator.GetPlaylist(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}

	refs := make([]services.TrackRef, 0, len(playlist.Tracks))
	for _, t := range playlist.Tracks {
		refs = append(refs, services.TrackRef{Title: t.Title, Artist: t.Artist})
	}

	result, err := h.exporter.Export(r.Context(), services.ExportRequest{
		SessionID:   h.sessionID(w, r),
		Platform:    platform,
		Title:       playlist.Title,
		Description: playlist.Description,
		Tracks:      refs,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, result)
}

func parsePlatform(raw string) (domain.Platform, bool) {
	switch domain.Platform(raw) {
	case domain.PlatformYouTube, domain.PlatformSpotify:
		return domain.Platform(raw), true
	default:
		return "", false
	}
}
