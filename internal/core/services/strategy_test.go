package services

import (
	"testing"
	"time"
)

func TestSearchStrategies(t *testing.T) {
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
	strategies := SearchStrategies("Legends Never Die", "Against The Current", now)

	if len(strategies) != 4 {
		t.Fatalf("got %d strategies, want 4", len(strategies))
	}

	wantOrder := []string{StrategyFreshHits, StrategyBestMatch, StrategyHiddenGems, StrategyTopic}
	for i, want := range wantOrder {
		if strategies[i].Name != want {
			t.Errorf("strategy %d = %q, want %q", i, strategies[i].Name, want)
		}
	}

	wantQueries := []string{
		"Legends Never Die Against The Current music official audio",
		"Legends Never Die Against The Current music official",
		"Legends Never Die Against The Current music audio",
		"Legends Never Die Against The Current topic",
	}
	for i, want := range wantQueries {
		if strategies[i].Query != want {
			t.Errorf("strategy %q query = %q, want %q", strategies[i].Name, strategies[i].Query, want)
		}
	}

	fresh := strategies[0]
	if fresh.Params.Order != "viewCount" || fresh.Params.Duration != "medium" {
		t.Errorf("fresh hits params = %+v", fresh.Params)
	}
	wantCutoff := now.AddDate(0, -6, 0)
	if !fresh.Params.PublishedAfter.Equal(wantCutoff) {
		t.Errorf("fresh hits cutoff = %v, want %v", fresh.Params.PublishedAfter, wantCutoff)
	}
	for _, s := range strategies[1:] {
		if !s.Params.PublishedAfter.IsZero() {
			t.Errorf("strategy %q should not carry a recency cutoff", s.Name)
		}
	}

	if strategies[2].Params.Order != "rating" || strategies[2].Params.Duration != "any" {
		t.Errorf("hidden gems params = %+v", strategies[2].Params)
	}
}

func TestCleanQueryTerm(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Legends Never Die", "Legends Never Die"},
		{"P!nk & Co. (Live)", "Pnk Co Live"},
		{"lo-fi beats", "lo-fi beats"},
		{"  spaced   out  ", "spaced out"},
		{"", ""},
	}

	for _, tc := range tests {
		if got := cleanQueryTerm(tc.in); got != tc.want {
			t.Errorf("cleanQueryTerm(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
