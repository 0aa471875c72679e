package services

import (
	"context"
	"errors"
	"testing"

	"github.com/champion-vibes/backend/internal/core/domain"
)

// seqSearcher returns a canned response per query, in call order.
type seqSearcher struct {
	responses []seqResponse
	calls     int
}

type seqResponse struct {
	tracks []domain.Track
	err    error
}

func (s *seqSearcher) Search(_ context.Context, _ string, _ int) ([]domain.Track, error) {
	if s.calls >= len(s.responses) {
		return nil, nil
	}
	resp := s.responses[s.calls]
	s.calls++
	return resp.tracks, resp.err
}

func track(id string, minutes int64) domain.Track {
	return domain.Track{ID: id, Title: "Track " + id, DurationMs: minutes * 60 * 1000}
}

func TestAssembleTracks(t *testing.T) {
	t.Run("deduplicates across queries", func(t *testing.T) {
		searcher := &seqSearcher{responses: []seqResponse{
			{tracks: []domain.Track{track("a", 4), track("b", 4)}},
			{tracks: []domain.Track{track("b", 4), track("c", 4)}},
		}}
		g := &Generator{searcher: searcher}

		got, err := g.assembleTracks(context.Background(), []string{"q1", "q2"}, 60*60*1000)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		ids := map[string]int{}
		for _, tr := range got {
			ids[tr.ID]++
		}
		for id, n := range ids {
			if n > 1 {
				t.Errorf("track %s appears %d times", id, n)
			}
		}
		if len(got) != 3 {
			t.Errorf("got %d tracks, want 3", len(got))
		}
	})

	t.Run("stops at the duration target", func(t *testing.T) {
		searcher := &seqSearcher{responses: []seqResponse{
			{tracks: []domain.Track{track("a", 5), track("b", 5), track("c", 5)}},
			{tracks: []domain.Track{track("d", 5)}},
		}}
		g := &Generator{searcher: searcher}

		got, err := g.assembleTracks(context.Background(), []string{"q1", "q2"}, 9*60*1000)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("got %d tracks, want 2 (target reached mid-query)", len(got))
		}
		if searcher.calls != 1 {
			t.Errorf("second query should not run once the target is met, got %d calls", searcher.calls)
		}
	})

	t.Run("skips failing queries", func(t *testing.T) {
		searcher := &seqSearcher{responses: []seqResponse{
			{err: errors.New("quota exceeded")},
			{tracks: []domain.Track{track("a", 4)}},
		}}
		g := &Generator{searcher: searcher}

		got, err := g.assembleTracks(context.Background(), []string{"q1", "q2"}, 60*60*1000)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].ID != "a" {
			t.Fatalf("expected the surviving query's track, got %v", got)
		}
	})

	t.Run("cancelled context aborts", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		g := &Generator{searcher: &seqSearcher{}}
		if _, err := g.assembleTracks(ctx, []string{"q1"}, 60*60*1000); err == nil {
			t.Fatal("expected a context error")
		}
	})
}
