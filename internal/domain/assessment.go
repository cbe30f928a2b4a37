package domain

type RiskLevel string

const (
	LevelLow    RiskLevel = "Low"
	LevelMedium RiskLevel = "Medium"
	LevelHigh   RiskLevel = "High"
)

type Decision string

const (
	DecisionApprove    Decision = "Approve"
	DecisionRequireOTP Decision = "Require OTP"
	DecisionBlock      Decision = "Block"
)

// RiskAssessment is the structured fraud verdict for one transaction,
// produced either by the remote scoring service or the local fallback.
type RiskAssessment struct {
	RiskScore   int       `json:"risk_score"`
	Probability float64   `json:"probability"`
	RiskLevel   RiskLevel `json:"risk_level"`
	Decision    Decision  `json:"decision"`
}

// Valid reports whether the assessment satisfies the scoring contract:
// score in [1,99] and a recognized level/decision pair.
func (a RiskAssessment) Valid() bool {
	if a.RiskScore < 1 || a.RiskScore > 99 {
		return false
	}
	switch a.RiskLevel {
	case LevelLow, LevelMedium, LevelHigh:
	default:
		return false
	}
	switch a.Decision {
	case DecisionApprove, DecisionRequireOTP, DecisionBlock:
	default:
		return false
	}
	return true
}

// ScoreProbability converts an integer risk score to its display
// probability. Dividing by 100 yields exactly 2 decimal places; no further
// rounding is needed.
func ScoreProbability(score int) float64 {
	return float64(score) / 100
}
