package services

import (
	"context"
	"errors"
	"testing"

	"github.com/champion-vibes/backend/internal/core/ports"
)

// scriptedVideos returns canned results keyed by call order and records the
// parameters of every call.
type scriptedVideos struct {
	responses []videoResponse
	calls     []ports.VideoSearchParams
}

type videoResponse struct {
	results []ports.VideoResult
	err     error
}

func (s *scriptedVideos) SearchVideos(_ context.Context, _ string, _ string, params ports.VideoSearchParams, _ int) ([]ports.VideoResult, error) {
	idx := len(s.calls)
	s.calls = append(s.calls, params)
	if idx >= len(s.responses) {
		return nil, nil
	}
	return s.responses[idx].results, s.responses[idx].err
}

func validVideo(id string) ports.VideoResult {
	return ports.VideoResult{ID: id, Title: "Song (Official Video)", ChannelTitle: "ArtistVEVO"}
}

func invalidVideo(id string) ports.VideoResult {
	return ports.VideoResult{ID: id, Title: "Song reaction", ChannelTitle: "random"}
}

func TestVideoResolver_Resolve(t *testing.T) {
	t.Run("best match short-circuits", func(t *testing.T) {
		videos := &scriptedVideos{responses: []videoResponse{
			{results: []ports.VideoResult{invalidVideo("v1")}}, // fresh hits
			{results: []ports.VideoResult{validVideo("v2")}},   // best match
		}}
		r := NewVideoResolver(videos)

		res, err := r.Resolve(context.Background(), "tok", "Song", "Artist")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ItemID != "v2" || res.Strategy != StrategyBestMatch {
			t.Errorf("got %+v, want best match v2", res)
		}
		if len(videos.calls) != 2 {
			t.Errorf("expected 2 strategy calls, got %d", len(videos.calls))
		}
	})

	t.Run("fresh hits candidate wins when later strategies fail", func(t *testing.T) {
		videos := &scriptedVideos{responses: []videoResponse{
			{results: []ports.VideoResult{validVideo("fresh")}},
			{results: []ports.VideoResult{invalidVideo("x")}},
			{results: nil},
			{results: []ports.VideoResult{invalidVideo("y")}},
		}}
		r := NewVideoResolver(videos)

		res, err := r.Resolve(context.Background(), "tok", "Song", "Artist")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ItemID != "fresh" || res.Strategy != StrategyFreshHits {
			t.Errorf("got %+v, want the fresh hits candidate", res)
		}
		if len(videos.calls) != 4 {
			t.Errorf("all 4 strategies should run, got %d calls", len(videos.calls))
		}
	})

	t.Run("search errors skip to the next strategy", func(t *testing.T) {
		videos := &scriptedVideos{responses: []videoResponse{
			{err: errors.New("quota")},
			{results: []ports.VideoResult{validVideo("v1")}},
		}}
		r := NewVideoResolver(videos)

		res, err := r.Resolve(context.Background(), "tok", "Song", "Artist")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ItemID != "v1" {
			t.Errorf("got %+v, want v1 from the surviving strategy", res)
		}
	})

	t.Run("no valid candidate yields NoMatchError", func(t *testing.T) {
		videos := &scriptedVideos{responses: []videoResponse{
			{results: []ports.VideoResult{invalidVideo("a")}},
			{results: []ports.VideoResult{invalidVideo("b")}},
			{err: errors.New("down")},
			{results: nil},
		}}
		r := NewVideoResolver(videos)

		_, err := r.Resolve(context.Background(), "tok", "Song", "Artist")
		if !errors.Is(err, ports.ErrNoMatch) {
			t.Fatalf("expected ErrNoMatch, got %v", err)
		}
		var noMatch *ports.NoMatchError
		if !errors.As(err, &noMatch) {
			t.Fatalf("expected a NoMatchError, got %T", err)
		}
		if noMatch.Title != "Song" {
			t.Errorf("NoMatchError title = %q", noMatch.Title)
		}
	})

	t.Run("resolution carries a watch url", func(t *testing.T) {
		videos := &scriptedVideos{responses: []videoResponse{
			{results: []ports.VideoResult{validVideo("abc123")}},
		}}
		r := NewVideoResolver(videos)

		res, err := r.Resolve(context.Background(), "tok", "Song", "Artist")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.URL != "https://www.youtube.com/watch?v=abc123" {
			t.Errorf("url = %q", res.URL)
		}
	})
}
