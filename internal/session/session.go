package session

import (
	"errors"
	"sync"
)

// View is the transient dashboard view state. It has exactly one owner,
// the Session; history survives view transitions.
type View string

const (
	ViewIdle          View = "idle"
	ViewLoading       View = "loading"
	ViewShowingResult View = "showing_result"
)

// ErrAnalysisInFlight is returned when a new analysis is requested while
// one is already loading. The UI enforces a single in-flight assessment by
// disabling the submit control; this guard is the server-side equivalent.
var ErrAnalysisInFlight = errors.New("an analysis is already in flight")

// Session holds the per-process dashboard state: the view flag and the
// history ledger. It starts Idle with an empty ledger.
type Session struct {
	mu     sync.Mutex
	view   View
	ledger *HistoryLedger
}

func New(ledger *HistoryLedger) *Session {
	return &Session{
		view:   ViewIdle,
		ledger: ledger,
	}
}

func (s *Session) Ledger() *HistoryLedger { return s.ledger }

func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}

// BeginAnalysis transitions to Loading, or fails if an analysis is
// already in flight.
func (s *Session) BeginAnalysis() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.view == ViewLoading {
		return ErrAnalysisInFlight
	}
	s.view = ViewLoading
	return nil
}

// FinishAnalysis transitions to ShowingResult.
func (s *Session) FinishAnalysis() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view = ViewShowingResult
}

// Reset returns the view to Idle. The ledger is deliberately untouched:
// reset restores the pristine display, not an empty session.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view = ViewIdle
}
