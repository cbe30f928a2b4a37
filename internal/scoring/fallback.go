package scoring

import (
	"context"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/securebank/frauddesk/internal/domain"
)

// DefaultFallbackDelay mimics real inference latency so a fallback result
// does not land jarringly faster than a remote one.
const DefaultFallbackDelay = time.Second

// FallbackScorer is the local risk estimator used when the remote service
// is unreachable. It is intentionally approximate: a liveness guarantee,
// not a substitute model.
type FallbackScorer struct {
	homeCity string
	delay    time.Duration
	rng      *rand.Rand
}

// FallbackOption customizes a FallbackScorer, mainly for tests.
type FallbackOption func(*FallbackScorer)

// WithDelay overrides the simulated inference latency.
func WithDelay(d time.Duration) FallbackOption {
	return func(s *FallbackScorer) { s.delay = d }
}

// WithRand injects a deterministic random source.
func WithRand(rng *rand.Rand) FallbackOption {
	return func(s *FallbackScorer) { s.rng = rng }
}

// NewFallbackScorer creates a fallback scorer. homeCity is the customer
// profile's home city; transactions in any other city score higher.
func NewFallbackScorer(homeCity string, opts ...FallbackOption) *FallbackScorer {
	s := &FallbackScorer{
		homeCity: homeCity,
		delay:    DefaultFallbackDelay,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Score estimates the transaction's risk locally. It never fails: the
// result is deterministically bounded to [1,99] and classified with the
// same thresholds as the remote service.
func (s *FallbackScorer) Score(ctx context.Context, input domain.TransactionInput) *domain.RiskAssessment {
	base := s.rng.Float64() * 40

	switch {
	case input.Amount > 5000:
		base += 35
	case input.Amount > 1000:
		base += 20
	}

	if input.City != s.homeCity {
		base += 15
	}

	score := clampScore(int(base))
	level, decision := domain.Classify(score)

	zap.L().Debug("fallback score computed",
		zap.Int("risk_score", score),
		zap.Float64("amount", input.Amount),
		zap.String("city", input.City),
	)

	// Simulated inference latency; cut short if the caller gives up.
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
		}
	}

	return &domain.RiskAssessment{
		RiskScore:   score,
		Probability: domain.ScoreProbability(score),
		RiskLevel:   level,
		Decision:    decision,
	}
}

func clampScore(score int) int {
	if score < 1 {
		return 1
	}
	if score > 99 {
		return 99
	}
	return score
}
