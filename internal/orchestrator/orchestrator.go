package orchestrator

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/securebank/frauddesk/internal/domain"
	"github.com/securebank/frauddesk/internal/metrics"
	"github.com/securebank/frauddesk/internal/presenter"
	"github.com/securebank/frauddesk/internal/scoring"
	"github.com/securebank/frauddesk/internal/session"
)

// ErrIncompleteInput marks a submission that was silently ignored because
// one or more fields were missing. This is a soft-validation policy, not a
// failure: the view stays Idle and nothing is assessed.
var ErrIncompleteInput = errors.New("transaction input is incomplete")

// Orchestrator runs the full analysis flow: validate, score remotely, fall
// back locally on any service failure, then record and present the result.
type Orchestrator struct {
	client   *scoring.Client
	fallback *scoring.FallbackScorer
	session  *session.Session
	pres     *presenter.Presenter
	logger   *zap.Logger
}

func New(
	client *scoring.Client,
	fallback *scoring.FallbackScorer,
	sess *session.Session,
	pres *presenter.Presenter,
	logger *zap.Logger,
) *Orchestrator {
	return &Orchestrator{
		client:   client,
		fallback: fallback,
		session:  sess,
		pres:     pres,
		logger:   logger,
	}
}

// Analyze assesses one transaction. The remote service gets exactly one
// attempt; any ServiceError is absorbed by the local fallback, logged but
// never surfaced to the user. Once soft validation passes, the flow always
// terminates in a shown result.
func (o *Orchestrator) Analyze(ctx context.Context, input domain.TransactionInput) (*domain.RiskAssessment, error) {
	if !input.Complete() {
		o.logger.Debug("ignoring incomplete submission",
			zap.Float64("amount", input.Amount),
			zap.String("merchant", input.Merchant),
		)
		return nil, ErrIncompleteInput
	}

	if err := o.session.BeginAnalysis(); err != nil {
		return nil, err
	}
	o.pres.Loading()

	start := time.Now()
	assessment, path := o.obtainAssessment(ctx, input)
	metrics.AnalysesTotal.WithLabelValues(path).Inc()
	metrics.AnalysisLatency.Observe(time.Since(start).Seconds())

	entry := domain.HistoryEntry{
		ID:        uuid.NewString(),
		Timestamp: time.Now(),
		Amount:    input.Amount,
		Merchant:  input.Merchant,
		RiskScore: assessment.RiskScore,
		Decision:  assessment.Decision,
	}
	if err := o.session.Ledger().Append(entry); err != nil {
		// The result is still shown; a ledger gap beats a dead end.
		o.logger.Error("append history entry", zap.Error(err))
	}

	o.session.FinishAnalysis()
	o.pres.Present(assessment)

	o.logger.Info("analysis complete",
		zap.String("path", path),
		zap.Int("risk_score", assessment.RiskScore),
		zap.String("decision", string(assessment.Decision)),
	)

	return assessment, nil
}

// obtainAssessment tries the remote service once and falls back locally on
// any failure. The fallback is unconditional and silent to the end user.
func (o *Orchestrator) obtainAssessment(ctx context.Context, input domain.TransactionInput) (*domain.RiskAssessment, string) {
	assessment, err := o.client.RequestScore(ctx, input)
	if err == nil {
		return assessment, "remote"
	}

	var svcErr *scoring.ServiceError
	if errors.As(err, &svcErr) {
		metrics.ScoringFailures.WithLabelValues(string(svcErr.Reason)).Inc()
	} else {
		metrics.ScoringFailures.WithLabelValues(string(scoring.FailureConnect)).Inc()
	}
	o.logger.Warn("remote scoring failed, using local fallback", zap.Error(err))

	return o.fallback.Score(ctx, input), "fallback"
}

// ResetView restores the pristine pre-analysis display. History survives.
func (o *Orchestrator) ResetView() {
	o.session.Reset()
	o.pres.Reset()
}
