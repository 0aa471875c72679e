package ports

import "context"

// CharacterRecord is the character-data source's detailed view of one champion.
type CharacterRecord struct {
	ID           string   `json:"id"`
	Key          string   `json:"key"`
	Name         string   `json:"name"`
	Title        string   `json:"title"`
	Tags         []string `json:"tags"`
	Lore         string   `json:"lore"`
	AttackDamage float64  `json:"attackDamage"`
	SpellCount   int      `json:"spellCount"`
	ImageURL     string   `json:"imageUrl"`
	SplashURL    string   `json:"splashUrl"`
}

// CharacterSummary is the listing view of a champion.
type CharacterSummary struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Title    string   `json:"title"`
	Tags     []string `json:"tags"`
	ImageURL string   `json:"imageUrl"`
}

// CharacterSource provides champion data from the upstream game-data service.
type CharacterSource interface {
	// GetCharacter returns domain.ErrNotFound (wrapped) for unknown ids.
	GetCharacter(ctx context.Context, id string) (CharacterRecord, error)
	ListCharacters(ctx context.Context) ([]CharacterSummary, error)
}
