package presenter

import (
	"math"
	"sync"
	"time"
)

// DefaultFrameInterval is the spacing of animation frames (~25fps). The
// readout does not need to be buttery, just alive.
const DefaultFrameInterval = 40 * time.Millisecond

// EaseOutCubic is the readout easing curve: fast start, gentle landing.
func EaseOutCubic(p float64) float64 {
	inv := 1 - p
	return 1 - inv*inv*inv
}

// Animator runs a finite-duration timed-update task: given an end value, a
// duration and an easing curve, it emits a monotonically non-decreasing
// sequence of intermediate values ending exactly at the end value.
// Starting a new run cancels any run still in flight.
type Animator struct {
	interval time.Duration

	mu     sync.Mutex
	cancel chan struct{}
}

// NewAnimator creates an animator emitting frames every interval.
// Pass interval=0 to use DefaultFrameInterval.
func NewAnimator(interval time.Duration) *Animator {
	if interval == 0 {
		interval = DefaultFrameInterval
	}
	return &Animator{interval: interval}
}

// Start begins animating from 0 to end over the given duration. frame is
// called once per tick with the current value, and a final time with
// (end, true). The task is fire-and-forget: Start returns immediately.
func (a *Animator) Start(end int, duration time.Duration, easing func(float64) float64, frame func(value int, done bool)) {
	a.mu.Lock()
	if a.cancel != nil {
		close(a.cancel)
	}
	cancel := make(chan struct{})
	a.cancel = cancel
	a.mu.Unlock()

	go a.run(cancel, end, duration, easing, frame)
}

// Stop cancels the in-flight run, if any. No final frame is emitted.
func (a *Animator) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.cancel != nil {
		close(a.cancel)
		a.cancel = nil
	}
}

func (a *Animator) run(cancel <-chan struct{}, end int, duration time.Duration, easing func(float64) float64, frame func(value int, done bool)) {
	start := time.Now()
	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	last := 0
	frame(0, false)

	for {
		select {
		case <-cancel:
			return
		case now := <-ticker.C:
			p := float64(now.Sub(start)) / float64(duration)
			if p >= 1 {
				frame(end, true)
				return
			}
			value := int(math.Round(easing(p) * float64(end)))
			// The curve is monotone, but guard against clock hiccups.
			if value < last {
				value = last
			}
			last = value
			frame(value, false)
		}
	}
}
