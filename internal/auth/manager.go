// Package auth manages per-session OAuth tokens for the external platforms
// playlists export to. A Manager holds credentials keyed by session and
// platform and refreshes them ahead of expiry through pluggable providers.
package auth

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/champion-vibes/backend/internal/core/domain"
)

// refreshLeeway is how long before expiry a token is considered stale and
// proactively refreshed.
const refreshLeeway = 5 * time.Minute

// Credentials is the token material held for one session on one platform.
type Credentials struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

// Provider exchanges and refreshes tokens against one platform's OAuth
// endpoints.
type Provider interface {
	Exchange(ctx context.Context, code string) (Credentials, error)
	Refresh(ctx context.Context, refreshToken string) (Credentials, error)
}

// URLProvider is implemented by providers that can build an authorization
// redirect URL.
type URLProvider interface {
	AuthURL(state string) string
}

type tokenKey struct {
	session  string
	platform domain.Platform
}

// Manager stores session credentials and keeps them fresh. It is safe for
// concurrent use.
type Manager struct {
	mu        sync.Mutex
	providers map[domain.Platform]Provider
	tokens    map[tokenKey]Credentials

	// refreshes collapses concurrent refreshes of the same session and
	// platform into one provider call.
	refreshes singleflight.Group

	// now is swappable for deterministic tests.
	now func() time.Time
}

// NewManager returns a Manager with no providers registered.
func NewManager() *Manager {
	return &Manager{
		providers: make(map[domain.Platform]Provider),
		tokens:    make(map[tokenKey]Credentials),
		now:       time.Now,
	}
}

// RegisterProvider wires a platform's OAuth provider into the manager.
func (m *Manager) RegisterProvider(platform domain.Platform, p Provider) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.providers[platform] = p
}

// AuthURL builds the authorization redirect URL for a platform, carrying the
// given state. It fails when the platform has no provider or the provider
// cannot build URLs.
func (m *Manager) AuthURL(platform domain.Platform, state string) (string, error) {
	m.mu.Lock()
	p, ok := m.providers[platform]
	m.mu.Unlock()
	if !ok {
		return "", fmt.Errorf("auth: no provider for platform %q: %w", platform, domain.ErrInvalidInput)
	}
	up, ok := p.(URLProvider)
	if !ok {
		return "", fmt.Errorf("auth: provider for %q cannot build auth urls: %w", platform, domain.ErrInvalidInput)
	}
	return up.AuthURL(state), nil
}

// Exchange trades an authorization code for credentials and stores them for
// the session.
func (m *Manager) Exchange(ctx context.Context, sessionID string, platform domain.Platform, code string) error {
	m.mu.Lock()
	p, ok := m.providers[platform]
	m.mu.Unlock()
	if !ok {
		return fmt.Errorf("auth: no provider for platform %q: %w", platform, domain.ErrInvalidInput)
	}

	creds, err := p.Exchange(ctx, code)
	if err != nil {
		return fmt.Errorf("auth: exchanging code for %s: %w", platform, err)
	}
	m.Set(sessionID, platform, creds)
	return nil
}

// Set stores credentials for a session and platform, replacing any previous
// ones.
func (m *Manager) Set(sessionID string, platform domain.Platform, creds Credentials) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tokens[tokenKey{sessionID, platform}] = creds
}

// EnsureValid returns an access token for the session that is good for at
// least the refresh leeway, refreshing through the platform's provider when
// the stored one is stale. Missing credentials and failed refreshes surface
// as domain.ErrAuthRequired.
func (m *Manager) EnsureValid(ctx context.Context, sessionID string, platform domain.Platform) (string, error) {
	key := tokenKey{sessionID, platform}

	m.mu.Lock()
	creds, ok := m.tokens[key]
	m.mu.Unlock()

	if !ok {
		return "", fmt.Errorf("auth: no %s credentials for session: %w", platform, domain.ErrAuthRequired)
	}
	if m.now().Before(creds.ExpiresAt.Add(-refreshLeeway)) {
		return creds.AccessToken, nil
	}

	// Providers rotate refresh tokens; two refreshes racing for the same
	// key would let the loser store an already-revoked token.
	token, err, _ := m.refreshes.Do(sessionID+"|"+string(platform), func() (interface{}, error) {
		return m.refresh(ctx, key)
	})
	if err != nil {
		return "", err
	}
	return token.(string), nil
}

func (m *Manager) refresh(ctx context.Context, key tokenKey) (string, error) {
	m.mu.Lock()
	creds, ok := m.tokens[key]
	p, hasProvider := m.providers[key.platform]
	m.mu.Unlock()

	if !ok {
		return "", fmt.Errorf("auth: no %s credentials for session: %w", key.platform, domain.ErrAuthRequired)
	}
	// A waiting caller may find the token already renewed.
	if m.now().Before(creds.ExpiresAt.Add(-refreshLeeway)) {
		return creds.AccessToken, nil
	}

	if !hasProvider || creds.RefreshToken == "" {
		m.Invalidate(key.session, key.platform)
		return "", fmt.Errorf("auth: %s token expired and cannot refresh: %w", key.platform, domain.ErrAuthRequired)
	}

	refreshed, err := p.Refresh(ctx, creds.RefreshToken)
	if err != nil {
		m.Invalidate(key.session, key.platform)
		return "", fmt.Errorf("auth: refreshing %s token: %v: %w", key.platform, err, domain.ErrAuthRequired)
	}
	if refreshed.RefreshToken == "" {
		refreshed.RefreshToken = creds.RefreshToken
	}
	m.Set(key.session, key.platform, refreshed)
	return refreshed.AccessToken, nil
}

// Invalidate drops the stored credentials for a session and platform.
func (m *Manager) Invalidate(sessionID string, platform domain.Platform) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.tokens, tokenKey{sessionID, platform})
}

// Connected reports whether the session holds credentials for the platform,
// expired or not.
func (m *Manager) Connected(sessionID string, platform domain.Platform) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.tokens[tokenKey{sessionID, platform}]
	return ok
}
