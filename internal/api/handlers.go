package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/securebank/frauddesk/internal/domain"
	"github.com/securebank/frauddesk/internal/orchestrator"
	"github.com/securebank/frauddesk/internal/presenter"
	"github.com/securebank/frauddesk/internal/scoring"
	"github.com/securebank/frauddesk/internal/session"
)

// Handlers groups all HTTP handler methods and their dependencies.
type Handlers struct {
	orch    *orchestrator.Orchestrator
	session *session.Session
	pres    *presenter.Presenter
	options *scoring.Options
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

// --- Analyze ---

func (h *Handlers) Analyze(w http.ResponseWriter, r *http.Request) {
	var input domain.TransactionInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	assessment, err := h.orch.Analyze(r.Context(), input)
	switch {
	case errors.Is(err, orchestrator.ErrIncompleteInput):
		// Soft validation: the submission is ignored, not failed.
		writeJSON(w, http.StatusOK, map[string]any{
			"status": "ignored",
			"view":   h.session.View(),
		})
		return
	case errors.Is(err, session.ErrAnalysisInFlight):
		writeError(w, http.StatusConflict, "an analysis is already in flight")
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":     "analyzed",
		"assessment": assessment,
		"view":       h.session.View(),
	})
}

// --- GetHistory ---

func (h *Handlers) GetHistory(w http.ResponseWriter, r *http.Request) {
	entries, err := h.session.Ledger().RenderAll()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	label, err := h.session.Ledger().CountLabel()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"entries":     entries,
		"count":       len(entries),
		"count_label": label,
		"empty":       len(entries) == 0,
	})
}

// --- GetState ---

func (h *Handlers) GetState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"view":    h.session.View(),
		"display": h.pres.Snapshot(),
	})
}

// --- Reset ---

func (h *Handlers) Reset(w http.ResponseWriter, r *http.Request) {
	h.orch.ResetView()
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "reset",
		"view":   h.session.View(),
	})
}

// --- GetOptions ---

func (h *Handlers) GetOptions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.options)
}

// --- Healthz ---

func (h *Handlers) Healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
