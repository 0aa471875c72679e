// Package worker provides background processing for track preview analysis.
// Generated playlists classify track energy from metadata; workers refine
// that tier by measuring the loudness of the track's preview clip.
package worker

import (
	"context"
	"log"
	"sync"

	"github.com/champion-vibes/backend/internal/core/domain"
	"github.com/champion-vibes/backend/internal/core/ports"
)

// Job names a track whose preview clip should be analyzed.
type Job struct {
	TrackID    string
	PreviewURL string
}

// Pool manages background workers for preview analysis jobs.
type Pool struct {
	repo ports.PlaylistRepository
	jobs chan Job
	wg   sync.WaitGroup
}

// NewPool creates a worker pool with the given queue size.
func NewPool(repo ports.PlaylistRepository, queueSize int) *Pool {
	if queueSize < 1 {
		queueSize = 1
	}
	return &Pool{repo: repo, jobs: make(chan Job, queueSize)}
}

// Start launches the worker goroutines.
func (p *Pool) Start(workers int) {
	if workers < 1 {
		workers = 1
	}
	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				p.processJob(job)
			}
		}()
	}
}

// Stop waits for workers to finish after closing the queue.
func (p *Pool) Stop() {
	close(p.jobs)
	p.wg.Wait()
}

// Submit queues a job without blocking. It reports whether the job was
// accepted; a full queue drops the job.
func (p *Pool) Submit(trackID, previewURL string) bool {
	select {
	case p.jobs <- Job{TrackID: trackID, PreviewURL: previewURL}:
		return true
	default:
		log.Printf("WARN worker: dropping job for %s", trackID)
		return false
	}
}

func (p *Pool) processJob(job Job) {
	if job.PreviewURL == "" {
		return
	}

	energy, err := AnalyzePreviewFunc(job.PreviewURL)
	if err != nil {
		log.Printf("WARN worker: preview analysis for %s failed: %v", job.TrackID, err)
		return
	}

	tier := classifyEnergy(energy)
	if err := p.repo.UpdateTrackEnergy(context.Background(), job.TrackID, tier); err != nil {
		log.Printf("WARN worker: failed to update track %s: %v", job.TrackID, err)
		return
	}
	log.Printf("worker: track %s reclassified as %s energy", job.TrackID, tier)
}

// classifyEnergy buckets a normalized loudness value into an energy tier.
func classifyEnergy(energy float64) domain.EnergyTier {
	switch {
	case energy > 0.8:
		return domain.EnergyExtreme
	case energy > 0.6:
		return domain.EnergyHigh
	case energy > 0.4:
		return domain.EnergyMedium
	default:
		return domain.EnergyLow
	}
}
