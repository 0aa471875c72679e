package services

import (
	"context"
	"log"

	"github.com/champion-vibes/backend/internal/core/domain"
)

// tracksPerQuery bounds how many results each individual search contributes
// before the next query runs, so early queries cannot crowd out later ones.
const tracksPerQuery = 5

// assembleTracks runs each query in order against the searcher and collects
// unique tracks until the accumulated duration reaches targetMs. Individual
// search failures are logged and skipped; the assembly only fails outright
// when context is cancelled.
func (g *Generator) assembleTracks(ctx context.Context, queries []string, targetMs int64) ([]domain.Track, error) {
	var (
		tracks  []domain.Track
		totalMs int64
		seen    = make(map[string]struct{})
	)

	for _, query := range queries {
		if totalMs >= targetMs {
			break
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		results, err := g.searcher.Search(ctx, query, tracksPerQuery)
		if err != nil {
			log.Printf("WARN generator: search %q failed: %v", query, err)
			continue
		}

		for _, t := range results {
			if totalMs >= targetMs {
				break
			}
			if _, dup := seen[t.ID]; dup {
				continue
			}
			seen[t.ID] = struct{}{}
			tracks = append(tracks, t)
			totalMs += t.DurationMs
		}
	}

	return tracks, nil
}
