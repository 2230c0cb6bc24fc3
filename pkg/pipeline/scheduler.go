// Package pipeline runs the processing stages: each stage polls on its own
// interval and is woken immediately when the upstream stage produced work.
package pipeline

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Stage is one unit of pipeline work. Run drains the stage's work queue and
// reports how many items it processed; a non-zero count wakes the downstream
// stage without waiting for its poll tick.
type Stage struct {
	Name     string
	Interval time.Duration
	Run      func(ctx context.Context) (int, error)
}

// Scheduler owns the stage goroutines and the wake chain between them.
type Scheduler struct {
	stages []Stage
	logger *slog.Logger

	// wake[i] nudges stage i. Buffered at 1: a wake during a run coalesces
	// with any pending wake instead of queueing.
	wake []chan struct{}

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewScheduler creates a scheduler over the given stages, in pipeline order.
func NewScheduler(stages []Stage) *Scheduler {
	s := &Scheduler{
		stages: stages,
		logger: slog.Default(),
		stopCh: make(chan struct{}),
		wake:   make([]chan struct{}, len(stages)),
	}
	for i := range s.wake {
		s.wake[i] = make(chan struct{}, 1)
	}
	return s
}

// Start launches one goroutine per stage and kicks the first stage so a fresh
// deployment begins working immediately instead of waiting a full interval.
func (s *Scheduler) Start(ctx context.Context) {
	for i := range s.stages {
		s.wg.Add(1)
		go s.runStage(ctx, i)
	}
	s.Wake(0)
	s.logger.Info("Pipeline scheduler started", "stages", len(s.stages))
}

// Stop signals all stage goroutines and waits for in-flight runs to finish.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.stopCh) })
	s.wg.Wait()
	s.logger.Info("Pipeline scheduler stopped")
}

// Wake nudges stage i out of its poll wait. Safe to call from any goroutine;
// a wake while one is already pending is a no-op.
func (s *Scheduler) Wake(i int) {
	if i < 0 || i >= len(s.wake) {
		return
	}
	select {
	case s.wake[i] <- struct{}{}:
	default:
	}
}

func (s *Scheduler) runStage(ctx context.Context, i int) {
	defer s.wg.Done()

	stage := s.stages[i]
	log := s.logger.With("stage", stage.Name)
	ticker := time.NewTicker(stage.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopCh:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
		case <-s.wake[i]:
		}

		start := time.Now()
		n, err := stage.Run(ctx)
		if err != nil {
			// Stage errors are logged and absorbed; the next tick retries.
			log.Error("Stage run failed", "error", err, "duration", time.Since(start))
			continue
		}
		if n > 0 {
			log.Info("Stage run completed", "processed", n, "duration", time.Since(start))
			s.Wake(i + 1)
		} else {
			log.Debug("Stage run completed, no work", "duration", time.Since(start))
		}
	}
}
