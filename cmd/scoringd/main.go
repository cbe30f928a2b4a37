package main

import (
	"net/http"
	"os"

	"go.uber.org/zap"

	"github.com/securebank/frauddesk/internal/config"
	"github.com/securebank/frauddesk/internal/scoringsvc"
)

// scoringd is a stand-in for the production fraud-scoring service: same
// contract, heuristic model. Point the dashboard's SCORING_URL at it to run
// the whole system locally.
func main() {
	cfg := config.Load()

	logger, err := config.InitLogger(cfg)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	port := os.Getenv("SCORING_PORT")
	if port == "" {
		port = "8000"
	}

	predictor := scoringsvc.NewPredictor(nil)
	router := scoringsvc.NewRouter(predictor)

	logger.Info("scoring service (heuristic stand-in)",
		zap.String("addr", "http://localhost:"+port),
	)

	if err := http.ListenAndServe(":"+port, router); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}
