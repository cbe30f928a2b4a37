package main

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/securebank/frauddesk/internal/api"
	"github.com/securebank/frauddesk/internal/config"
	"github.com/securebank/frauddesk/internal/orchestrator"
	"github.com/securebank/frauddesk/internal/presenter"
	"github.com/securebank/frauddesk/internal/scoring"
	"github.com/securebank/frauddesk/internal/session"
)

func main() {
	cfg := config.Load()

	logger, err := config.InitLogger(cfg)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// Session ledger. The default DSN is :memory:, nothing survives a
	// restart.
	db, err := session.InitDB(cfg.HistoryDSN)
	if err != nil {
		logger.Fatal("init history db", zap.Error(err))
	}
	defer db.Close()

	ledger := session.NewHistoryLedger(db)
	sess := session.New(ledger)

	// Scoring paths.
	client := scoring.NewClient(cfg.ScoringURL, cfg.ScoringTimeout)
	fallback := scoring.NewFallbackScorer(cfg.HomeCity, scoring.WithDelay(cfg.FallbackDelay))

	// Presentation.
	hub := presenter.NewHub(logger)
	pres := presenter.New(presenter.NewAnimator(0), hub)

	orch := orchestrator.New(client, fallback, sess, pres, logger)

	// Dropdown catalog, fetched once; failure keeps the defaults.
	options := api.LoadOptions(context.Background(), client, logger)

	router := api.NewRouter(orch, sess, pres, hub, options)

	logger.Info("SecureBank FraudDesk dashboard",
		zap.String("addr", "http://localhost:"+cfg.Port),
		zap.String("scoring_url", cfg.ScoringURL),
		zap.String("home_city", cfg.HomeCity),
	)
	logger.Info("endpoints",
		zap.Strings("routes", []string{
			"GET  /",
			"POST /api/v1/analyze",
			"GET  /api/v1/history",
			"GET  /api/v1/state",
			"POST /api/v1/reset",
			"GET  /api/v1/options",
			"GET  /ws",
			"GET  /healthz",
			"GET  /metrics",
		}),
	)

	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}
