package rest

import (
	"encoding/json"
	"net/http"

	"github.com/champion-vibes/backend/internal/core/services"
)

type generatePlaylistRequest struct {
	ChampionID string   `json:"championId"`
	Role       string   `json:"role"`
	Playstyle  string   `json:"playstyle"`
	Tags       []string `json:"tags"`
}

// GeneratePlaylist handles POST /playlists
func (h *Handler) GeneratePlaylist(w http.ResponseWriter, r *http.Request) {
	var req generatePlaylistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	playlist, err := h.generator.GeneratePlaylist(r.Context(), services.GenerateRequest{
		ChampionID: req.ChampionID,
		Role:       req.Role,
		Playstyle:  req.Playstyle,
		UserTags:   req.Tags,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, playlist)
}

// GetPlaylist handles GET /playlists/{id}
func (h *Handler) GetPlaylist(w http.ResponseWriter, r *http.Request) {
	playlist, err := h.generator.GetPlaylist(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, playlist)
}
