package domain

// Classify maps a risk score to its level and decision bucket. It is the
// single source of truth for the thresholds: both the remote service and
// the local fallback must agree on this mapping for identical scores.
//
//	>= 70  High    Block
//	40-69  Medium  Require OTP
//	<  40  Low     Approve
func Classify(score int) (RiskLevel, Decision) {
	switch {
	case score >= 70:
		return LevelHigh, DecisionBlock
	case score >= 40:
		return LevelMedium, DecisionRequireOTP
	default:
		return LevelLow, DecisionApprove
	}
}

// LevelColor returns the fixed 3-way color used for a risk level across
// the dashboard.
func LevelColor(level RiskLevel) string {
	switch level {
	case LevelHigh:
		return "red"
	case LevelMedium:
		return "yellow"
	default:
		return "green"
	}
}
