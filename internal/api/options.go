package api

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/securebank/frauddesk/internal/scoring"
)

// DefaultOptions is the built-in dropdown catalog, retained whenever the
// scoring service cannot be reached at startup.
func DefaultOptions() *scoring.Options {
	return &scoring.Options{
		Merchants: []string{
			"fraud_Cormier LLC",
			"fraud_Daugherty LLC",
			"fraud_Haley Group",
			"fraud_Johnston-Casper",
			"fraud_Kirlin and Sons",
			"fraud_Romaguera Ltd",
			"fraud_Sporer-Keebler",
		},
		Categories: []string{
			"entertainment",
			"food_dining",
			"gas_transport",
			"grocery_pos",
			"misc_net",
			"shopping_net",
			"shopping_pos",
			"travel",
		},
		Cities: []string{
			"Aliso Viejo",
			"Birmingham",
			"Columbia",
			"Houston",
			"Phoenix",
			"Portland",
			"Tulsa",
		},
	}
}

// LoadOptions fetches the dropdown catalog from the scoring service once.
// On any failure the defaults are kept; the dashboard stays usable.
func LoadOptions(ctx context.Context, client *scoring.Client, logger *zap.Logger) *scoring.Options {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	opts, err := client.FetchOptions(ctx)
	if err != nil {
		logger.Warn("options fetch failed, keeping built-in defaults", zap.Error(err))
		return DefaultOptions()
	}
	if len(opts.Merchants) == 0 || len(opts.Categories) == 0 || len(opts.Cities) == 0 {
		logger.Warn("options fetch returned empty lists, keeping built-in defaults")
		return DefaultOptions()
	}
	return opts
}
