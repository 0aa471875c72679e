// Package rest provides the HTTP interface of the service.
package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/champion-vibes/backend/internal/auth"
	"github.com/champion-vibes/backend/internal/core/domain"
	"github.com/champion-vibes/backend/internal/core/ports"
	"github.com/champion-vibes/backend/internal/core/services"
)

const sessionCookie = "session_id"

// Handler manages the HTTP interface for our application.
type Handler struct {
	generator *services.Generator
	exporter  *services.Exporter
	tokens    *auth.Manager
	router    *http.ServeMux
}

// NewHandler initializes the HTTP adapter and sets up routes.
func NewHandler(generator *services.Generator, exporter *services.Exporter, tokens *auth.Manager) *Handler {
	h := &Handler{
		generator: generator,
		exporter:  exporter,
		tokens:    tokens,
		router:    http.NewServeMux(),
	}

	h.routes()

	return h
}

// ServeHTTP satisfies the http.Handler interface.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

// routes defines the mapping between URLs and methods.
func (h *Handler) routes() {
	h.router.HandleFunc("GET /health", h.HealthCheck)

	h.router.HandleFunc("GET /champions", h.ListChampions)
	h.router.HandleFunc("GET /champions/{id}", h.GetChampion)

	h.router.HandleFunc("POST /playlists", h.GeneratePlaylist)
	h.router.HandleFunc("GET /playlists/{id}", h.GetPlaylist)
	h.router.HandleFunc("POST /playlists/{id}/export/{platform}", h.ExportPlaylist)

	h.router.HandleFunc("GET /auth/{platform}/login", h.Login)
	h.router.HandleFunc("GET /auth/{platform}/callback", h.Callback)
	h.router.HandleFunc("POST /auth/{platform}/logout", h.Logout)
	h.router.HandleFunc("GET /auth/status", h.Status)
}

// HealthCheck is a simple endpoint to verify the API is running.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// sessionID returns the request's session cookie, minting one when the
// browser has none yet.
func (h *Handler) sessionID(w http.ResponseWriter, r *http.Request) string {
	if cookie, err := r.Cookie(sessionCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

type errorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code,omitempty"`
	NeedsAuth bool   `json:"needsAuth,omitempty"`
}

// writeError maps domain errors onto HTTP status codes and a JSON body the
// frontend can branch on.
func writeError(w http.ResponseWriter, err error) {
	var platformErr *ports.PlatformError

	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrAuthRequired):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error(), NeedsAuth: true})
	case errors.Is(err, domain.ErrNoResults):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error(), Code: "NO_RESULTS"})
	case errors.As(err, &platformErr):
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: err.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
	}
}
