// Package riot provides an adapter for Riot's Data Dragon static data
// service. It resolves champion rosters and per-champion detail used to
// derive music profiles.
package riot

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/champion-vibes/backend/internal/core/domain"
	"github.com/champion-vibes/backend/internal/core/ports"
)

const (
	defaultBaseURL  = "https://ddragon.leagueoflegends.com"
	defaultLocale   = "en_US"
	versionCacheTTL = time.Hour
)

// Client fetches champion data from Data Dragon. It is safe for concurrent
// use; the patch version is cached and refreshed hourly.
type Client struct {
	baseURL    string
	locale     string
	httpClient *http.Client

	maxRetries  int
	baseBackoff time.Duration

	mu          sync.Mutex
	version     string
	versionedAt time.Time
}

var _ ports.CharacterSource = (*Client)(nil)

// NewClient builds a Data Dragon client. An empty baseURL selects the public
// endpoint.
func NewClient(baseURL string) *Client {
	baseURL = strings.TrimRight(baseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	maxRetries, baseBackoff := getRetryConfig()
	return &Client{
		baseURL: baseURL,
		locale:  defaultLocale,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		maxRetries:  maxRetries,
		baseBackoff: baseBackoff,
	}
}

type championDetailResponse struct {
	Data map[string]championDetail `json:"data"`
}

type championDetail struct {
	ID    string   `json:"id"`
	Key   string   `json:"key"`
	Name  string   `json:"name"`
	Title string   `json:"title"`
	Tags  []string `json:"tags"`
	Lore  string   `json:"lore"`
	Stats struct {
		AttackDamage float64 `json:"attackdamage"`
	} `json:"stats"`
	Spells []json.RawMessage `json:"spells"`
}

type championListResponse struct {
	Data map[string]struct {
		ID    string   `json:"id"`
		Name  string   `json:"name"`
		Title string   `json:"title"`
		Tags  []string `json:"tags"`
	} `json:"data"`
}

// GetCharacter fetches full champion detail by Data Dragon id. Unknown ids
// surface as domain.ErrNotFound.
func (c *Client) GetCharacter(ctx context.Context, id string) (ports.CharacterRecord, error) {
	id = canonicalID(id)

	version, err := c.currentVersion(ctx)
	if err != nil {
		return ports.CharacterRecord{}, fmt.Errorf("riot adapter: resolving version: %w", err)
	}

	url := fmt.Sprintf("%s/cdn/%s/data/%s/champion/%s.json", c.baseURL, version, c.locale, id)
	var parsed championDetailResponse
	if err := c.getJSON(ctx, url, &parsed); err != nil {
		return ports.CharacterRecord{}, fmt.Errorf("riot adapter: fetching champion %q: %w", id, err)
	}

	detail, ok := parsed.Data[id]
	if !ok {
		return ports.CharacterRecord{}, fmt.Errorf("riot adapter: champion %q missing from payload: %w", id, domain.ErrNotFound)
	}

	return ports.CharacterRecord{
		ID:           detail.ID,
		Key:          detail.Key,
		Name:         detail.Name,
		Title:        detail.Title,
		Tags:         detail.Tags,
		Lore:         detail.Lore,
		AttackDamage: detail.Stats.AttackDamage,
		SpellCount:   len(detail.Spells),
		ImageURL:     fmt.Sprintf("%s/cdn/%s/img/champion/%s.png", c.baseURL, version, detail.ID),
		SplashURL:    fmt.Sprintf("%s/cdn/img/champion/splash/%s_0.jpg", c.baseURL, detail.ID),
	}, nil
}

// ListCharacters returns the roster sorted by name. When Data Dragon is
// unreachable it falls back to a small built-in roster so the UI stays
// usable offline.
func (c *Client) ListCharacters(ctx context.Context) ([]ports.CharacterSummary, error) {
	version, err := c.currentVersion(ctx)
	if err != nil {
		log.Printf("WARN riot adapter: version lookup failed, serving fallback roster: %v", err)
		return fallbackRoster(), nil
	}

	url := fmt.Sprintf("%s/cdn/%s/data/%s/champion.json", c.baseURL, version, c.locale)
	var parsed championListResponse
	if err := c.getJSON(ctx, url, &parsed); err != nil {
		log.Printf("WARN riot adapter: roster fetch failed, serving fallback roster: %v", err)
		return fallbackRoster(), nil
	}

	summaries := make([]ports.CharacterSummary, 0, len(parsed.Data))
	for _, champ := range parsed.Data {
		summaries = append(summaries, ports.CharacterSummary{
			ID:       champ.ID,
			Name:     champ.Name,
			Title:    champ.Title,
			Tags:     champ.Tags,
			ImageURL: fmt.Sprintf("%s/cdn/%s/img/champion/%s.png", c.baseURL, version, champ.ID),
		})
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].Name < summaries[j].Name })
	return summaries, nil
}

// currentVersion returns the latest Data Dragon patch version, cached for an
// hour.
func (c *Client) currentVersion(ctx context.Context) (string, error) {
	c.mu.Lock()
	if c.version != "" && time.Since(c.versionedAt) < versionCacheTTL {
		version := c.version
		c.mu.Unlock()
		return version, nil
	}
	c.mu.Unlock()

	var versions []string
	if err := c.getJSON(ctx, c.baseURL+"/api/versions.json", &versions); err != nil {
		return "", err
	}
	if len(versions) == 0 {
		return "", fmt.Errorf("riot adapter: empty version list")
	}

	c.mu.Lock()
	c.version = versions[0]
	c.versionedAt = time.Now()
	c.mu.Unlock()
	return versions[0], nil
}

func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("riot adapter: build request: %w", err)
	}

	resp, err := c.doRequestWithRetry(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("riot adapter: %s: %w", url, domain.ErrNotFound)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("riot adapter: unexpected status %d from %s", resp.StatusCode, url)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("riot adapter: decode response: %w", err)
	}
	return nil
}

// canonicalID maps a lowercase champion id to Data Dragon's casing, which
// capitalizes the first letter and is otherwise irregular only for a handful
// of champions.
func canonicalID(id string) string {
	id = strings.TrimSpace(id)
	if id == "" {
		return id
	}
	if fixed, ok := irregularIDs[strings.ToLower(id)]; ok {
		return fixed
	}
	return strings.ToUpper(id[:1]) + strings.ToLower(id[1:])
}

var irregularIDs = map[string]string{
	"khazix":       "Khazix",
	"chogath":      "Chogath",
	"kogmaw":       "KogMaw",
	"reksai":       "RekSai",
	"leesin":       "LeeSin",
	"missfortune":  "MissFortune",
	"masteryi":     "MasterYi",
	"drmundo":      "DrMundo",
	"jarvaniv":     "JarvanIV",
	"twistedfate":  "TwistedFate",
	"xinzhao":      "XinZhao",
	"aurelionsol":  "AurelionSol",
	"tahmkench":    "TahmKench",
	"monkeyking":   "MonkeyKing",
	"velkoz":       "Velkoz",
	"fiddlesticks": "Fiddlesticks",
}

func fallbackRoster() []ports.CharacterSummary {
	return []ports.CharacterSummary{
		{ID: "Jinx", Name: "Jinx", Title: "the Loose Cannon", Tags: []string{"Marksman"}},
		{ID: "Thresh", Name: "Thresh", Title: "the Chain Warden", Tags: []string{"Support", "Fighter"}},
		{ID: "Yasuo", Name: "Yasuo", Title: "the Unforgiven", Tags: []string{"Fighter", "Assassin"}},
	}
}
