package worker

import (
	"context"
	"sync"
	"testing"

	"github.com/champion-vibes/backend/internal/core/domain"
)

type trackingRepo struct {
	mu      sync.Mutex
	updates map[string]domain.EnergyTier
}

func (r *trackingRepo) GetByID(_ context.Context, _ string) (domain.Playlist, error) {
	return domain.Playlist{}, domain.ErrNotFound
}

func (r *trackingRepo) Save(_ context.Context, _ domain.Playlist) error { return nil }

func (r *trackingRepo) UpdateTrackEnergy(_ context.Context, trackID string, energy domain.EnergyTier) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.updates == nil {
		r.updates = map[string]domain.EnergyTier{}
	}
	r.updates[trackID] = energy
	return nil
}

func withStubAnalyzer(t *testing.T, fn func(string) (float64, error)) {
	t.Helper()
	orig := AnalyzePreviewFunc
	AnalyzePreviewFunc = fn
	t.Cleanup(func() { AnalyzePreviewFunc = orig })
}

func TestPool_ProcessesSubmittedJobs(t *testing.T) {
	withStubAnalyzer(t, func(string) (float64, error) { return 0.85, nil })

	repo := &trackingRepo{}
	pool := NewPool(repo, 10)
	pool.Start(2)

	if !pool.Submit("t1", "https://example.com/p1.mp3") {
		t.Fatal("submit rejected with room in the queue")
	}
	pool.Stop()

	if repo.updates["t1"] != domain.EnergyExtreme {
		t.Errorf("track t1 energy = %s, want extreme", repo.updates["t1"])
	}
}

func TestPool_SkipsJobsWithoutPreview(t *testing.T) {
	called := false
	withStubAnalyzer(t, func(string) (float64, error) { called = true; return 0.5, nil })

	repo := &trackingRepo{}
	pool := NewPool(repo, 10)
	pool.Start(1)
	pool.Submit("t1", "")
	pool.Stop()

	if called {
		t.Errorf("analyzer should not run without a preview url")
	}
	if len(repo.updates) != 0 {
		t.Errorf("no updates expected, got %v", repo.updates)
	}
}

func TestPool_SubmitDropsWhenFull(t *testing.T) {
	withStubAnalyzer(t, func(string) (float64, error) { return 0.5, nil })

	// Workers are not started, so the queue fills up.
	pool := NewPool(&trackingRepo{}, 1)
	if !pool.Submit("t1", "u1") {
		t.Fatal("first submit should be accepted")
	}
	if pool.Submit("t2", "u2") {
		t.Fatal("second submit should be dropped with a full queue")
	}
}

func TestClassifyEnergy(t *testing.T) {
	tests := []struct {
		energy float64
		want   domain.EnergyTier
	}{
		{0.95, domain.EnergyExtreme},
		{0.81, domain.EnergyExtreme},
		{0.8, domain.EnergyHigh},
		{0.61, domain.EnergyHigh},
		{0.6, domain.EnergyMedium},
		{0.41, domain.EnergyMedium},
		{0.4, domain.EnergyLow},
		{0.0, domain.EnergyLow},
	}

	for _, tc := range tests {
		if got := classifyEnergy(tc.energy); got != tc.want {
			t.Errorf("classifyEnergy(%v) = %s, want %s", tc.energy, got, tc.want)
		}
	}
}
