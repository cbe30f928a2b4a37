package scoring

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/securebank/frauddesk/internal/domain"
)

func newTestScorer(seed int64) *FallbackScorer {
	return NewFallbackScorer("Houston",
		WithDelay(0),
		WithRand(rand.New(rand.NewSource(seed))),
	)
}

func TestFallbackScoreBounds(t *testing.T) {
	scorer := newTestScorer(1)
	input := domain.TransactionInput{
		Amount:   6000,
		Merchant: "fraud_Kirlin and Sons",
		Category: "shopping_net",
		City:     "Aliso Viejo", // not the home city
	}

	for i := 0; i < 200; i++ {
		a := scorer.Score(context.Background(), input)
		require.True(t, a.Valid(), "iteration %d: %+v", i, a)
		assert.GreaterOrEqual(t, a.RiskScore, 1)
		assert.LessOrEqual(t, a.RiskScore, 99)
		assert.Equal(t, domain.ScoreProbability(a.RiskScore), a.Probability)

		level, decision := domain.Classify(a.RiskScore)
		assert.Equal(t, level, a.RiskLevel)
		assert.Equal(t, decision, a.Decision)

		// amount > 5000 and a foreign city add 50 on top of U[0,40).
		assert.GreaterOrEqual(t, a.RiskScore, 50)
		assert.LessOrEqual(t, a.RiskScore, 89)
	}
}

func TestFallbackAmountBuckets(t *testing.T) {
	base := domain.TransactionInput{Merchant: "m", Category: "c", City: "Houston"}

	tests := []struct {
		name   string
		amount float64
		min    int
		max    int
	}{
		{"small amount, home city", 500, 1, 39},
		{"mid amount, home city", 1500, 20, 59},
		{"large amount, home city", 9000, 35, 74},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scorer := newTestScorer(7)
			input := base
			input.Amount = tt.amount
			for i := 0; i < 100; i++ {
				a := scorer.Score(context.Background(), input)
				assert.GreaterOrEqual(t, a.RiskScore, tt.min)
				assert.LessOrEqual(t, a.RiskScore, tt.max)
			}
		})
	}
}

func TestFallbackCityMismatchBump(t *testing.T) {
	// Identical random sequences: the only difference is the city rule.
	// The mid-amount bump keeps both scores away from the clamp edges.
	home := newTestScorer(42).Score(context.Background(),
		domain.TransactionInput{Amount: 1500, Merchant: "m", Category: "c", City: "Houston"})
	away := newTestScorer(42).Score(context.Background(),
		domain.TransactionInput{Amount: 1500, Merchant: "m", Category: "c", City: "Portland"})

	assert.Equal(t, home.RiskScore+15, away.RiskScore)
}

func TestFallbackDeterministicWithSeed(t *testing.T) {
	input := domain.TransactionInput{Amount: 250, Merchant: "m", Category: "c", City: "Houston"}

	a1 := newTestScorer(99).Score(context.Background(), input)
	a2 := newTestScorer(99).Score(context.Background(), input)
	assert.Equal(t, a1, a2)
}

func TestFallbackHonorsContextCancellation(t *testing.T) {
	scorer := NewFallbackScorer("Houston",
		WithDelay(10*time.Second),
		WithRand(rand.New(rand.NewSource(1))),
	)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	a := scorer.Score(ctx, domain.TransactionInput{Amount: 10, Merchant: "m", Category: "c", City: "Houston"})
	require.NotNil(t, a)
	assert.Less(t, time.Since(start), time.Second, "cancelled context should cut the delay short")
}
