package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransactionInputComplete(t *testing.T) {
	full := TransactionInput{
		Amount:   125.40,
		Merchant: "fraud_Kirlin and Sons",
		Category: "shopping_net",
		City:     "Aliso Viejo",
	}
	assert.True(t, full.Complete())

	tests := []struct {
		name  string
		input TransactionInput
	}{
		{"zero amount", TransactionInput{Merchant: "m", Category: "c", City: "x"}},
		{"negative amount", TransactionInput{Amount: -5, Merchant: "m", Category: "c", City: "x"}},
		{"empty merchant", TransactionInput{Amount: 10, Category: "c", City: "x"}},
		{"empty category", TransactionInput{Amount: 10, Merchant: "m", City: "x"}},
		{"empty city", TransactionInput{Amount: 10, Merchant: "m", Category: "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, tt.input.Complete())
		})
	}
}

func TestRiskAssessmentValid(t *testing.T) {
	good := RiskAssessment{RiskScore: 55, Probability: 0.55, RiskLevel: LevelMedium, Decision: DecisionRequireOTP}
	assert.True(t, good.Valid())

	assert.False(t, RiskAssessment{RiskScore: 0, RiskLevel: LevelLow, Decision: DecisionApprove}.Valid())
	assert.False(t, RiskAssessment{RiskScore: 100, RiskLevel: LevelHigh, Decision: DecisionBlock}.Valid())
	assert.False(t, RiskAssessment{RiskScore: 50, RiskLevel: "Extreme", Decision: DecisionBlock}.Valid())
	assert.False(t, RiskAssessment{RiskScore: 50, RiskLevel: LevelMedium, Decision: "Escalate"}.Valid())
}
