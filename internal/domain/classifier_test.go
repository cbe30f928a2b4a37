package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyBoundaries(t *testing.T) {
	tests := []struct {
		score    int
		level    RiskLevel
		decision Decision
	}{
		{1, LevelLow, DecisionApprove},
		{39, LevelLow, DecisionApprove},
		{40, LevelMedium, DecisionRequireOTP},
		{69, LevelMedium, DecisionRequireOTP},
		{70, LevelHigh, DecisionBlock},
		{99, LevelHigh, DecisionBlock},
	}

	for _, tt := range tests {
		level, decision := Classify(tt.score)
		assert.Equal(t, tt.level, level, "score %d", tt.score)
		assert.Equal(t, tt.decision, decision, "score %d", tt.score)
	}
}

func TestClassifyIsPure(t *testing.T) {
	for score := 1; score <= 99; score++ {
		l1, d1 := Classify(score)
		l2, d2 := Classify(score)
		assert.Equal(t, l1, l2, "score %d", score)
		assert.Equal(t, d1, d2, "score %d", score)

		// Every score lands in exactly one bucket.
		switch l1 {
		case LevelHigh:
			assert.GreaterOrEqual(t, score, 70)
			assert.Equal(t, DecisionBlock, d1)
		case LevelMedium:
			assert.GreaterOrEqual(t, score, 40)
			assert.Less(t, score, 70)
			assert.Equal(t, DecisionRequireOTP, d1)
		case LevelLow:
			assert.Less(t, score, 40)
			assert.Equal(t, DecisionApprove, d1)
		}
	}
}

func TestLevelColor(t *testing.T) {
	assert.Equal(t, "red", LevelColor(LevelHigh))
	assert.Equal(t, "yellow", LevelColor(LevelMedium))
	assert.Equal(t, "green", LevelColor(LevelLow))
}

func TestScoreProbability(t *testing.T) {
	assert.Equal(t, 0.42, ScoreProbability(42))
	assert.Equal(t, 0.01, ScoreProbability(1))
	assert.Equal(t, 0.99, ScoreProbability(99))

	// Every valid score maps exactly onto its 2-decimal literal.
	for score := 1; score <= 99; score++ {
		assert.Equal(t, float64(score)/100, ScoreProbability(score), "score %d", score)
	}
}
