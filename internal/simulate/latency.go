// Package simulate provides the injectable latency layer that stands in
// for real network and compute cost. Every façade operation waits on a
// Delayer before producing its result, so tests can swap the real timer
// for an instant one and still assert on the requested durations.
package simulate

import (
	"context"
	"sync"
	"time"
)

// Latency classes shared by the service façades. The values mirror the
// response times of the production backend the mock stands in for.
const (
	LatencyGetUser       = 300 * time.Millisecond
	LatencyUpdateUser    = 500 * time.Millisecond
	LatencyUploadAvatar  = 1000 * time.Millisecond
	LatencyGetMeals      = 400 * time.Millisecond
	LatencyAddMeal       = 600 * time.Millisecond
	LatencyAnalyzePhoto  = 2000 * time.Millisecond
	LatencyDeleteMeal    = 300 * time.Millisecond
	LatencyGetWorkouts   = 350 * time.Millisecond
	LatencyAddWorkout    = 500 * time.Millisecond
	LatencyGetPlans      = 400 * time.Millisecond
	LatencyGeneratePlan  = 1500 * time.Millisecond
	LatencyGetMetrics    = 300 * time.Millisecond
	LatencyAddMetric     = 400 * time.Millisecond
	LatencyWearableSync  = 1200 * time.Millisecond
	LatencyGetRecs       = 400 * time.Millisecond
	LatencyMarkRead      = 200 * time.Millisecond
	LatencyMotivational  = 300 * time.Millisecond
	LatencyPersonalTip   = 800 * time.Millisecond
	LatencyChatMessage   = 1000 * time.Millisecond
	LatencyUpgradePlan   = 800 * time.Millisecond
	LatencyCancelPlan    = 600 * time.Millisecond
	LatencyListFeatures  = 300 * time.Millisecond
	LatencyReport        = 1500 * time.Millisecond
)

// Delayer suspends the caller for a simulated duration. Wait returns
// early with ctx.Err() when the context is cancelled, so a caller can
// abandon a pending operation without side effects.
type Delayer interface {
	Wait(ctx context.Context, d time.Duration) error
}

// Network is the production Delayer: a real timer scaled by a factor.
// Scale 0 or negative disables waiting entirely.
type Network struct {
	Scale float64
}

// Wait blocks for d*Scale or until ctx is done.
func (n Network) Wait(ctx context.Context, d time.Duration) error {
	if n.Scale <= 0 {
		return ctx.Err()
	}

	scaled := time.Duration(float64(d) * n.Scale)
	timer := time.NewTimer(scaled)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Manual is a test Delayer that never sleeps. It records every requested
// duration so tests can assert an operation waited for at least its
// latency class.
type Manual struct {
	mu    sync.Mutex
	waits []time.Duration
}

// Wait records d and returns immediately (or ctx.Err() when cancelled).
func (m *Manual) Wait(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	m.waits = append(m.waits, d)
	m.mu.Unlock()

	return nil
}

// Waits returns a copy of the recorded durations in request order.
func (m *Manual) Waits() []time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]time.Duration, len(m.waits))
	copy(out, m.waits)
	return out
}

// LastWait returns the most recently recorded duration, or zero.
func (m *Manual) LastWait() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.waits) == 0 {
		return 0
	}
	return m.waits[len(m.waits)-1]
}
