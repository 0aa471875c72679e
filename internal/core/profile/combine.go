package profile

import "github.com/champion-vibes/backend/internal/core/domain"

// Combine merges a champion's base profile with role and playstyle modifiers
// into one effective music profile.
//
// Scalar fields follow first-present precedence: playstyle wins over role wins
// over base; a modifier that does not define a field leaves the
// lower-precedence value untouched. Instruments and keywords are unioned
// across all three sources, never overwritten. Pure function, no error paths.
func Combine(base domain.MusicProfile, role, playstyle domain.PartialProfile) domain.MusicProfile {
	return domain.MusicProfile{
		Theme:       firstNonEmpty(playstyle.Theme, role.Theme, base.Theme),
		Mood:        firstNonEmpty(playstyle.Mood, role.Mood, base.Mood),
		Energy:      firstEnergy(playstyle.Energy, role.Energy, base.Energy),
		Genre:       base.Genre,
		Tempo:       firstNonEmpty(playstyle.Tempo, role.Tempo, base.Tempo),
		Instruments: union(base.Instruments, role.Instruments, playstyle.Instruments),
		Cultural:    base.Cultural,
		Complexity:  base.Complexity,
		Keywords:    union(base.Keywords, role.Keywords, playstyle.Keywords),
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstEnergy(values ...domain.EnergyTier) domain.EnergyTier {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return domain.EnergyMedium
}

// union merges string collections preserving first-seen order.
func union(lists ...[]string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, list := range lists {
		for _, v := range list {
			if _, dup := seen[v]; dup {
				continue
			}
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	return out
}
