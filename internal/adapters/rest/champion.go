package rest

import "net/http"

// ListChampions handles GET /champions
func (h *Handler) ListChampions(w http.ResponseWriter, r *http.Request) {
	champions, err := h.generator.ListChampions(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, champions)
}

// GetChampion handles GET /champions/{id}. The response carries the raw
// champion record together with the music profile derived from it.
func (h *Handler) GetChampion(w http.ResponseWriter, r *http.Request) {
	record, musicProfile, err := h.generator.AnalyzeChampion(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"champion": record,
		"profile":  musicProfile,
	})
}
