package presenter

import (
	"sync"
	"time"

	"github.com/securebank/frauddesk/internal/domain"
)

// AnimationDuration is how long the readout takes to climb from 0 to the
// risk score.
const AnimationDuration = 1200 * time.Millisecond

// FrameType labels presentation events pushed to the sink.
type FrameType string

const (
	FrameLoading FrameType = "loading"
	FrameTick    FrameType = "tick"
	FrameResult  FrameType = "result"
	FrameReset   FrameType = "reset"
)

// Frame is one presentation update: either an animation tick or a state
// transition, with enough display state for a client to render it alone.
type Frame struct {
	Type    FrameType    `json:"type"`
	Display DisplayState `json:"display"`
}

// Sink receives presentation frames. The WebSocket hub is the production
// sink; tests use an in-memory capture.
type Sink interface {
	Broadcast(Frame)
}

// DisplayState is everything the dashboard shows about the current
// assessment. Readout is the animated value; the rest is set up front.
type DisplayState struct {
	Readout       int              `json:"readout"`
	RiskScore     int              `json:"risk_score"`
	Probability   float64          `json:"probability"`
	RiskLevel     domain.RiskLevel `json:"risk_level,omitempty"`
	Decision      domain.Decision  `json:"decision,omitempty"`
	LevelColor    string           `json:"level_color,omitempty"`
	ProfileRisk   domain.RiskLevel `json:"profile_risk,omitempty"`
	ProfileColor  string           `json:"profile_color,omitempty"`
	ShowingResult bool             `json:"showing_result"`
}

// Presenter drives the dashboard's visual state: the animated risk
// readout, the color-coded classification labels and the persistent
// profile-risk indicator.
type Presenter struct {
	animator *Animator
	sink     Sink
	duration time.Duration

	mu    sync.Mutex
	state DisplayState
	gen   uint64 // bumped on Present/Reset so stale frames are dropped
}

// Option customizes a Presenter.
type Option func(*Presenter)

// WithDuration overrides the readout animation duration.
func WithDuration(d time.Duration) Option {
	return func(p *Presenter) { p.duration = d }
}

// New creates a presenter. sink may be nil when nothing subscribes to
// frames (tests, headless runs).
func New(animator *Animator, sink Sink, opts ...Option) *Presenter {
	if animator == nil {
		animator = NewAnimator(0)
	}
	p := &Presenter{animator: animator, sink: sink, duration: AnimationDuration}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Loading announces that an assessment is in flight. The readout keeps its
// previous value until the result lands; only the view flag changes.
func (p *Presenter) Loading() {
	p.mu.Lock()
	state := p.state
	p.mu.Unlock()
	p.emit(Frame{Type: FrameLoading, Display: state})
}

// Present shows a completed assessment. Any prior presentation, including
// an in-flight animation, is fully superseded: labels and the profile
// indicator switch immediately, and the readout re-animates from 0 to the
// new score.
func (p *Presenter) Present(a *domain.RiskAssessment) {
	p.mu.Lock()
	p.gen++
	gen := p.gen
	p.state = DisplayState{
		Readout:       0,
		RiskScore:     a.RiskScore,
		Probability:   a.Probability,
		RiskLevel:     a.RiskLevel,
		Decision:      a.Decision,
		LevelColor:    domain.LevelColor(a.RiskLevel),
		ProfileRisk:   a.RiskLevel,
		ProfileColor:  domain.LevelColor(a.RiskLevel),
		ShowingResult: true,
	}
	p.mu.Unlock()

	p.animator.Start(a.RiskScore, p.duration, EaseOutCubic, func(value int, done bool) {
		p.mu.Lock()
		if p.gen != gen {
			// A newer Present or Reset took over; drop the stale frame.
			p.mu.Unlock()
			return
		}
		p.state.Readout = value
		state := p.state
		p.mu.Unlock()

		kind := FrameTick
		if done {
			kind = FrameResult
		}
		p.emit(Frame{Type: kind, Display: state})
	})
}

// Reset restores the pristine pre-analysis display and zeroes the readout.
// It cancels any in-flight animation. History is not its concern.
func (p *Presenter) Reset() {
	p.animator.Stop()

	p.mu.Lock()
	p.gen++
	p.state = DisplayState{}
	state := p.state
	p.mu.Unlock()

	p.emit(Frame{Type: FrameReset, Display: state})
}

// Snapshot returns the current display state.
func (p *Presenter) Snapshot() DisplayState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

func (p *Presenter) emit(f Frame) {
	if p.sink != nil {
		p.sink.Broadcast(f)
	}
}
