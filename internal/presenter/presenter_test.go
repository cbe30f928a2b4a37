package presenter

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/securebank/frauddesk/internal/domain"
)

type captureSink struct {
	mu     sync.Mutex
	frames []Frame
}

func (s *captureSink) Broadcast(f Frame) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.frames = append(s.frames, f)
}

func (s *captureSink) all() []Frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Frame(nil), s.frames...)
}

func (s *captureSink) waitFor(t *testing.T, kind FrameType, timeout time.Duration) Frame {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		for _, f := range s.all() {
			if f.Type == kind {
				return f
			}
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("no %q frame arrived in time", kind)
	return Frame{}
}

func newTestPresenter() (*Presenter, *captureSink) {
	sink := &captureSink{}
	p := New(NewAnimator(5*time.Millisecond), sink, WithDuration(60*time.Millisecond))
	return p, sink
}

func assessment(score int) *domain.RiskAssessment {
	level, decision := domain.Classify(score)
	return &domain.RiskAssessment{
		RiskScore:   score,
		Probability: domain.ScoreProbability(score),
		RiskLevel:   level,
		Decision:    decision,
	}
}

func TestPresentAnimatesToScore(t *testing.T) {
	p, sink := newTestPresenter()

	p.Present(assessment(84))
	final := sink.waitFor(t, FrameResult, 2*time.Second)

	assert.Equal(t, 84, final.Display.Readout)
	assert.Equal(t, 84, final.Display.RiskScore)
	assert.Equal(t, domain.LevelHigh, final.Display.RiskLevel)
	assert.Equal(t, domain.DecisionBlock, final.Display.Decision)
	assert.Equal(t, "red", final.Display.LevelColor)
	assert.True(t, final.Display.ShowingResult)

	snap := p.Snapshot()
	assert.Equal(t, 84, snap.Readout)

	// Ticks never decrease and never overshoot.
	prev := 0
	for _, f := range sink.all() {
		if f.Type != FrameTick && f.Type != FrameResult {
			continue
		}
		assert.GreaterOrEqual(t, f.Display.Readout, prev)
		assert.LessOrEqual(t, f.Display.Readout, 84)
		prev = f.Display.Readout
	}
}

func TestPresentColorMapping(t *testing.T) {
	tests := []struct {
		score int
		color string
	}{
		{15, "green"},
		{55, "yellow"},
		{90, "red"},
	}

	for _, tt := range tests {
		p, sink := newTestPresenter()
		p.Present(assessment(tt.score))
		final := sink.waitFor(t, FrameResult, 2*time.Second)
		assert.Equal(t, tt.color, final.Display.LevelColor, "score %d", tt.score)
		assert.Equal(t, tt.color, final.Display.ProfileColor, "score %d", tt.score)
	}
}

func TestPresentSupersedesPriorPresentation(t *testing.T) {
	p, sink := newTestPresenter()

	p.Present(assessment(90))
	time.Sleep(15 * time.Millisecond) // let the first animation start
	p.Present(assessment(25))

	final := sink.waitFor(t, FrameResult, 2*time.Second)
	assert.Equal(t, 25, final.Display.RiskScore)

	// Wait out any straggler frames, then confirm no stale state remains.
	time.Sleep(100 * time.Millisecond)
	snap := p.Snapshot()
	assert.Equal(t, 25, snap.Readout)
	assert.Equal(t, 25, snap.RiskScore)
	assert.Equal(t, domain.LevelLow, snap.RiskLevel)
	assert.Equal(t, "green", snap.LevelColor)
}

func TestProfileRiskIsLastWriteWins(t *testing.T) {
	p, sink := newTestPresenter()

	p.Present(assessment(90))
	sink.waitFor(t, FrameResult, 2*time.Second)
	assert.Equal(t, domain.LevelHigh, p.Snapshot().ProfileRisk)

	p.Present(assessment(10))
	assert.Equal(t, domain.LevelLow, p.Snapshot().ProfileRisk,
		"profile indicator reflects the most recent assessment, not an aggregate")
}

func TestResetRestoresPristineDisplay(t *testing.T) {
	p, sink := newTestPresenter()

	p.Present(assessment(77))
	sink.waitFor(t, FrameResult, 2*time.Second)

	p.Reset()

	snap := p.Snapshot()
	assert.Equal(t, DisplayState{}, snap, "reset zeroes the whole display")

	// The reset frame was broadcast.
	frames := sink.all()
	require.NotEmpty(t, frames)
	assert.Equal(t, FrameReset, frames[len(frames)-1].Type)
}

func TestResetCancelsInFlightAnimation(t *testing.T) {
	sink := &captureSink{}
	p := New(NewAnimator(5*time.Millisecond), sink, WithDuration(5*time.Second))

	p.Present(assessment(99))
	time.Sleep(20 * time.Millisecond)
	p.Reset()

	time.Sleep(50 * time.Millisecond)
	snap := p.Snapshot()
	assert.Equal(t, 0, snap.Readout, "no frames land after reset")

	for _, f := range sink.all() {
		assert.NotEqual(t, FrameResult, f.Type, "cancelled animation must not complete")
	}
}

func TestLoadingKeepsDisplay(t *testing.T) {
	p, sink := newTestPresenter()

	p.Present(assessment(60))
	sink.waitFor(t, FrameResult, 2*time.Second)

	p.Loading()

	frames := sink.all()
	last := frames[len(frames)-1]
	assert.Equal(t, FrameLoading, last.Type)
	assert.Equal(t, 60, last.Display.RiskScore, "loading does not clear the previous result")
}
