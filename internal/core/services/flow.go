package services

import "github.com/champion-vibes/backend/internal/core/domain"

// flowSlice is one step of an ordering pattern: take up to count tracks
// from the named tier.
type flowSlice struct {
	tier  domain.EnergyTier
	count int
}

// flowPatterns describe, per profile energy, the arc a playlist should
// follow: open strong, dip, rebuild. Counts are upper bounds; a bucket that
// runs dry just contributes fewer tracks to that slice.
var flowPatterns = map[domain.EnergyTier][]flowSlice{
	domain.EnergyExtreme: {
		{domain.EnergyExtreme, 5},
		{domain.EnergyHigh, 3},
		{domain.EnergyExtreme, 3},
		{domain.EnergyHigh, 3},
	},
	domain.EnergyHigh: {
		{domain.EnergyHigh, 4},
		{domain.EnergyMedium, 2},
		{domain.EnergyHigh, 3},
		{domain.EnergyMedium, 2},
	},
	domain.EnergyMedium: {
		{domain.EnergyMedium, 3},
		{domain.EnergyHigh, 2},
		{domain.EnergyMedium, 2},
		{domain.EnergyLow, 2},
	},
	domain.EnergyLow: {
		{domain.EnergyLow, 3},
		{domain.EnergyMedium, 2},
		{domain.EnergyLow, 3},
		{domain.EnergyMedium, 2},
	},
}

// drainOrder governs where leftover tracks land once the pattern is spent.
var drainOrder = []domain.EnergyTier{
	domain.EnergyExtreme,
	domain.EnergyHigh,
	domain.EnergyMedium,
	domain.EnergyLow,
}

// OptimizeFlow reorders tracks so their energy follows the pattern for the
// profile's overall energy tier. The output is always a permutation of the
// input: tracks the pattern does not consume are appended afterwards in
// descending tier order, preserving their relative order within each tier.
func OptimizeFlow(tracks []domain.Track, energy domain.EnergyTier) []domain.Track {
	if len(tracks) <= 1 {
		return tracks
	}

	buckets := make(map[domain.EnergyTier][]domain.Track, 4)
	for _, t := range tracks {
		tier := domain.ParseEnergy(string(t.Energy))
		buckets[tier] = append(buckets[tier], t)
	}

	pattern, ok := flowPatterns[energy]
	if !ok {
		pattern = flowPatterns[domain.EnergyMedium]
	}

	ordered := make([]domain.Track, 0, len(tracks))
	for _, slice := range pattern {
		taken := take(buckets, slice.tier, slice.count)
		ordered = append(ordered, taken...)
	}
	for _, tier := range drainOrder {
		ordered = append(ordered, buckets[tier]...)
		delete(buckets, tier)
	}
	return ordered
}

// take removes and returns up to n tracks from the front of the tier's bucket.
func take(buckets map[domain.EnergyTier][]domain.Track, tier domain.EnergyTier, n int) []domain.Track {
	bucket := buckets[tier]
	if n > len(bucket) {
		n = len(bucket)
	}
	taken := bucket[:n]
	buckets[tier] = bucket[n:]
	return taken
}
