package scoringsvc

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/securebank/frauddesk/internal/domain"
)

// NewRouter mounts the scoring service routes: the same contract the
// original service exposed, so the dashboard cannot tell them apart.
func NewRouter(predictor *Predictor) http.Handler {
	h := &handlers{predictor: predictor}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))
	r.Use(middleware.SetHeader("Content-Type", "application/json"))

	r.Get("/health", h.Health)
	r.Get("/options", h.GetOptions)
	r.Post("/predict", h.Predict)

	return r
}

type handlers struct {
	predictor *Predictor
}

func (h *handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok", "model_loaded": true})
}

func (h *handlers) GetOptions(w http.ResponseWriter, r *http.Request) {
	merchants, categories, cities := h.predictor.Options()
	writeJSON(w, http.StatusOK, map[string]any{
		"merchants":  merchants,
		"categories": categories,
		"cities":     cities,
	})
}

func (h *handlers) Predict(w http.ResponseWriter, r *http.Request) {
	var input domain.TransactionInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if !input.Complete() {
		writeError(w, http.StatusUnprocessableEntity, "amount, merchant, category and city are required")
		return
	}

	assessment := h.predictor.Predict(input)
	zap.L().Info("prediction served",
		zap.Int("risk_score", assessment.RiskScore),
		zap.String("decision", string(assessment.Decision)),
	)
	writeJSON(w, http.StatusOK, assessment)
}

// --- helpers ---

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Warn("encode response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
