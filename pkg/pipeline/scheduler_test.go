package pipeline

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingStage records run invocations and returns a scripted work count.
type countingStage struct {
	mu    sync.Mutex
	runs  int
	work  []int // work count per run; 0 after the script is exhausted
	ranCh chan struct{}
}

func newCountingStage(work ...int) *countingStage {
	return &countingStage{work: work, ranCh: make(chan struct{}, 16)}
}

func (c *countingStage) run(context.Context) (int, error) {
	c.mu.Lock()
	n := 0
	if c.runs < len(c.work) {
		n = c.work[c.runs]
	}
	c.runs++
	c.mu.Unlock()
	c.ranCh <- struct{}{}
	return n, nil
}

func (c *countingStage) runCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.runs
}

func waitForRun(t *testing.T, c *countingStage) {
	t.Helper()
	select {
	case <-c.ranCh:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for stage run")
	}
}

func TestSchedulerKicksFirstStageOnStart(t *testing.T) {
	first := newCountingStage()
	s := NewScheduler([]Stage{
		{Name: "first", Interval: time.Hour, Run: first.run},
	})
	s.Start(context.Background())
	defer s.Stop()

	waitForRun(t, first)
	assert.Equal(t, 1, first.runCount())
}

func TestSchedulerWakeChain(t *testing.T) {
	first := newCountingStage(3) // produces work on the startup kick
	second := newCountingStage()
	s := NewScheduler([]Stage{
		{Name: "first", Interval: time.Hour, Run: first.run},
		{Name: "second", Interval: time.Hour, Run: second.run},
	})
	s.Start(context.Background())
	defer s.Stop()

	waitForRun(t, first)
	// Second stage has an hour-long interval; only the wake can reach it.
	waitForRun(t, second)
	assert.Equal(t, 1, second.runCount())
}

func TestSchedulerNoWakeWithoutWork(t *testing.T) {
	first := newCountingStage(0)
	second := newCountingStage()
	s := NewScheduler([]Stage{
		{Name: "first", Interval: time.Hour, Run: first.run},
		{Name: "second", Interval: time.Hour, Run: second.run},
	})
	s.Start(context.Background())
	defer s.Stop()

	waitForRun(t, first)
	select {
	case <-second.ranCh:
		t.Fatal("second stage ran despite no upstream work")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestSchedulerPolls(t *testing.T) {
	first := newCountingStage()
	s := NewScheduler([]Stage{
		{Name: "first", Interval: 20 * time.Millisecond, Run: first.run},
	})
	s.Start(context.Background())
	defer s.Stop()

	// Startup kick plus at least two poll ticks.
	waitForRun(t, first)
	waitForRun(t, first)
	waitForRun(t, first)
	assert.GreaterOrEqual(t, first.runCount(), 3)
}

func TestSchedulerAbsorbsStageErrors(t *testing.T) {
	var mu sync.Mutex
	runs := 0
	ranCh := make(chan struct{}, 16)
	s := NewScheduler([]Stage{
		{Name: "flaky", Interval: 20 * time.Millisecond, Run: func(context.Context) (int, error) {
			mu.Lock()
			runs++
			mu.Unlock()
			ranCh <- struct{}{}
			return 0, assert.AnError
		}},
	})
	s.Start(context.Background())
	defer s.Stop()

	for i := 0; i < 3; i++ {
		select {
		case <-ranCh:
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for flaky stage run")
		}
	}
	mu.Lock()
	defer mu.Unlock()
	require.GreaterOrEqual(t, runs, 3)
}

func TestSchedulerStopIsIdempotent(t *testing.T) {
	first := newCountingStage()
	s := NewScheduler([]Stage{
		{Name: "first", Interval: time.Hour, Run: first.run},
	})
	s.Start(context.Background())
	waitForRun(t, first)
	s.Stop()
	s.Stop()
}

func TestSchedulerWakeCoalesces(t *testing.T) {
	s := NewScheduler([]Stage{
		{Name: "only", Interval: time.Hour, Run: func(context.Context) (int, error) { return 0, nil }},
	})
	// Not started: wakes must not block even when the buffer is full.
	s.Wake(0)
	s.Wake(0)
	s.Wake(0)
	s.Wake(99) // out of range is a no-op
}
