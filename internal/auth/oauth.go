package auth

import (
	"context"
	"fmt"

	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// OAuth2Provider adapts a standard oauth2.Config to the Provider interface.
// It backs the Google/YouTube flow.
type OAuth2Provider struct {
	config *oauth2.Config
}

var (
	_ Provider    = (*OAuth2Provider)(nil)
	_ URLProvider = (*OAuth2Provider)(nil)
)

// NewGoogleProvider builds a provider for the YouTube Data API scopes.
func NewGoogleProvider(clientID, clientSecret, redirectURL string) *OAuth2Provider {
	return &OAuth2Provider{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Endpoint:     google.Endpoint,
			Scopes:       []string{"https://www.googleapis.com/auth/youtube"},
		},
	}
}

// AuthURL builds the consent page URL, requesting offline access so a
// refresh token comes back with the first exchange.
func (p *OAuth2Provider) AuthURL(state string) string {
	return p.config.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

// Exchange trades an authorization code for credentials.
func (p *OAuth2Provider) Exchange(ctx context.Context, code string) (Credentials, error) {
	tok, err := p.config.Exchange(ctx, code)
	if err != nil {
		return Credentials{}, fmt.Errorf("oauth: exchanging code: %w", err)
	}
	return fromToken(tok), nil
}

// Refresh obtains a fresh access token from a refresh token.
func (p *OAuth2Provider) Refresh(ctx context.Context, refreshToken string) (Credentials, error) {
	src := p.config.TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken})
	tok, err := src.Token()
	if err != nil {
		return Credentials{}, fmt.Errorf("oauth: refreshing token: %w", err)
	}
	return fromToken(tok), nil
}

// SpotifyProvider adapts the Spotify authenticator to the Provider
// interface.
type SpotifyProvider struct {
	auth *spotifyauth.Authenticator
}

var (
	_ Provider    = (*SpotifyProvider)(nil)
	_ URLProvider = (*SpotifyProvider)(nil)
)

// NewSpotifyProvider builds a provider with the scopes playlist export
// needs.
func NewSpotifyProvider(clientID, clientSecret, redirectURL string) *SpotifyProvider {
	return &SpotifyProvider{
		auth: spotifyauth.New(
			spotifyauth.WithClientID(clientID),
			spotifyauth.WithClientSecret(clientSecret),
			spotifyauth.WithRedirectURL(redirectURL),
			spotifyauth.WithScopes(
				spotifyauth.ScopePlaylistModifyPrivate,
				spotifyauth.ScopePlaylistModifyPublic,
				spotifyauth.ScopeUserReadPrivate,
			),
		),
	}
}

func (p *SpotifyProvider) AuthURL(state string) string {
	return p.auth.AuthURL(state)
}

func (p *SpotifyProvider) Exchange(ctx context.Context, code string) (Credentials, error) {
	tok, err := p.auth.Exchange(ctx, code)
	if err != nil {
		return Credentials{}, fmt.Errorf("oauth: exchanging spotify code: %w", err)
	}
	return fromToken(tok), nil
}

func (p *SpotifyProvider) Refresh(ctx context.Context, refreshToken string) (Credentials, error) {
	tok, err := p.auth.RefreshToken(ctx, &oauth2.Token{RefreshToken: refreshToken})
	if err != nil {
		return Credentials{}, fmt.Errorf("oauth: refreshing spotify token: %w", err)
	}
	return fromToken(tok), nil
}

func fromToken(tok *oauth2.Token) Credentials {
	return Credentials{
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		ExpiresAt:    tok.Expiry,
	}
}
