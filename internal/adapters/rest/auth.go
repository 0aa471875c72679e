package rest

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/champion-vibes/backend/internal/core/domain"
)

const stateCookie = "oauth_state"

// Login handles GET /auth/{platform}/login. It mints a state value, stores
// it in a short-lived cookie and redirects to the platform's consent page.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	platform, ok := parsePlatform(r.PathValue("platform"))
	if !ok {
		http.Error(w, "Unknown platform", http.StatusBadRequest)
		return
	}

	state := uuid.NewString()
	url, err := h.tokens.AuthURL(platform, state)
	if err != nil {
		writeError(w, err)
		return
	}

	h.sessionID(w, r)
	http.SetCookie(w, &http.Cookie{
		Name:     stateCookie,
		Value:    state,
		Path:     "/",
		MaxAge:   600,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, url, http.StatusTemporaryRedirect)
}

// Callback handles GET /auth/{platform}/callback. It verifies the state
// echo and trades the authorization code for session credentials.
func (h *Handler) Callback(w http.ResponseWriter, r *http.Request) {
	platform, ok := parsePlatform(r.PathValue("platform"))
	if !ok {
		http.Error(w, "Unknown platform", http.StatusBadRequest)
		return
	}

	stored, err := r.Cookie(stateCookie)
	if err != nil || stored.Value == "" || stored.Value != r.URL.Query().Get("state") {
		http.Error(w, "State mismatch", http.StatusBadRequest)
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		http.Error(w, "Missing authorization code", http.StatusBadRequest)
		return
	}

	if err := h.tokens.Exchange(r.Context(), h.sessionID(w, r), platform, code); err != nil {
		writeError(w, err)
		return
	}

	// Clear the state cookie now that the flow completed.
	http.SetCookie(w, &http.Cookie{Name: stateCookie, Value: "", Path: "/", MaxAge: -1})

	writeJSON(w, http.StatusOK, map[string]any{"connected": true, "platform": platform})
}

// Logout handles POST /auth/{platform}/logout
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	platform, ok := parsePlatform(r.PathValue("platform"))
	if !ok {
		http.Error(w, "Unknown platform", http.StatusBadRequest)
		return
	}

	h.tokens.Invalidate(h.sessionID(w, r), platform)
	writeJSON(w, http.StatusOK, map[string]any{"connected": false, "platform": platform})
}

// Status handles GET /auth/status, reporting which platforms the session is
// connected to.
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	session := h.sessionID(w, r)
	writeJSON(w, http.StatusOK, map[string]bool{
		string(domain.PlatformYouTube): h.tokens.Connected(session, domain.PlatformYouTube),
		string(domain.PlatformSpotify): h.tokens.Connected(session, domain.PlatformSpotify),
	})
}
