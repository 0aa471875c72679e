package domain

// EnergyTier is the coarse energy classification used throughout profile
// derivation, search query generation and flow ordering.
type EnergyTier string

const (
	EnergyLow     EnergyTier = "low"
	EnergyMedium  EnergyTier = "medium"
	EnergyHigh    EnergyTier = "high"
	EnergyExtreme EnergyTier = "extreme"
)

var energyRanks = map[EnergyTier]int{
	EnergyLow:     0,
	EnergyMedium:  1,
	EnergyHigh:    2,
	EnergyExtreme: 3,
}

// Rank orders tiers from low to extreme. Unknown tiers rank as medium.
func (e EnergyTier) Rank() int {
	if rank, ok := energyRanks[e]; ok {
		return rank
	}
	return energyRanks[EnergyMedium]
}

// ParseEnergy maps a raw string onto a tier, defaulting to medium for
// anything unrecognized.
func ParseEnergy(s string) EnergyTier {
	tier := EnergyTier(s)
	if _, ok := energyRanks[tier]; ok {
		return tier
	}
	return EnergyMedium
}

// MusicProfile is the complete musical identity derived for a champion,
// after role and playstyle modifiers are applied. All fields are plain
// descriptive values; the profile carries no behavior.
type MusicProfile struct {
	Theme       string     `json:"theme"`
	Mood        string     `json:"mood"`
	Energy      EnergyTier `json:"energy"`
	Genre       string     `json:"genre"`
	Tempo       string     `json:"tempo"`
	Instruments []string   `json:"instruments"`
	Cultural    string     `json:"cultural"`
	Complexity  string     `json:"complexity"`
	Keywords    []string   `json:"keywords,omitempty"`
	UserTags    []string   `json:"userTags,omitempty"`
}

// PartialProfile is a sparse overlay contributed by a role or playstyle.
// Empty fields mean "no opinion" and leave the underlying value in place.
type PartialProfile struct {
	Theme       string
	Mood        string
	Energy      EnergyTier
	Tempo       string
	Instruments []string
	Keywords    []string
}
