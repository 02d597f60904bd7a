// Package rest exposes the HTTP API of the lead scoring service: scoring,
// health/readiness probes and Prometheus metrics. It translates the core's
// failure kinds into transport status codes; the core itself emits none.
package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/asah-capstone-a25/leadscore/internal/application/dto"
	"github.com/asah-capstone-a25/leadscore/internal/application/usecase"
	"github.com/asah-capstone-a25/leadscore/internal/domain/service"
)

// Handler serves the lead scoring HTTP API.
type Handler struct {
	scoreLead *usecase.ScoreLead
	modelInfo *usecase.GetModelInfo
	metrics   http.Handler
	logger    *slog.Logger
}

// NewHandler creates the HTTP handler. metricsHandler may be nil to disable
// the /metrics endpoint.
func NewHandler(
	scoreLead *usecase.ScoreLead,
	modelInfo *usecase.GetModelInfo,
	metricsHandler http.Handler,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		scoreLead: scoreLead,
		modelInfo: modelInfo,
		metrics:   metricsHandler,
		logger:    logger,
	}
}

// Router builds the chi router with the service middleware stack.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/", h.handleRoot)
	r.Post("/score", h.handleScore)
	r.Get("/healthz", h.handleHealthz)
	r.Get("/readyz", h.handleReadyz)
	if h.metrics != nil {
		r.Handle("/metrics", h.metrics)
	}

	return r
}

// errorResponse is the JSON error body.
type errorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail"`
}

func (h *Handler) handleRoot(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Bank Lead Scoring API",
		"endpoints": map[string]string{
			"score":   "/score",
			"healthz": "/healthz",
			"readyz":  "/readyz",
			"metrics": "/metrics",
		},
	})
}

func (h *Handler) handleScore(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req dto.ScoreLeadRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		scoreRequestsTotal.WithLabelValues("invalid").Inc()
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid input", Detail: err.Error()})
		return
	}

	if err := req.Validate(); err != nil {
		h.logger.Warn("invalid scoring request", "error", err)
		scoreRequestsTotal.WithLabelValues("invalid").Inc()
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid input", Detail: err.Error()})
		return
	}

	resp, err := h.scoreLead.Execute(r.Context(), req)
	if err != nil {
		h.writeScoreError(w, err)
		return
	}

	scoreRequestsTotal.WithLabelValues("ok").Inc()
	scoreDuration.Observe(time.Since(start).Seconds())
	writeJSON(w, http.StatusOK, resp)
}

// writeScoreError maps core failure kinds onto HTTP status codes:
// not ready means try again later, an encoding failure means this input is
// unscoreable, anything else is an internal fault.
func (h *Handler) writeScoreError(w http.ResponseWriter, err error) {
	var encodingErr *service.EncodingError
	var attributionErr *service.AttributionError

	switch {
	case errors.Is(err, service.ErrNotReady):
		scoreRequestsTotal.WithLabelValues("not_ready").Inc()
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{
			Error:  "Service not ready",
			Detail: "model artifacts are not loaded yet",
		})
	case errors.As(err, &encodingErr):
		scoreRequestsTotal.WithLabelValues("encoding_failed").Inc()
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Error:  "Unscoreable input",
			Detail: encodingErr.Error(),
		})
	case errors.As(err, &attributionErr):
		h.logger.Error("attribution failed", "error", err)
		scoreRequestsTotal.WithLabelValues("attribution_failed").Inc()
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Error:  "Inference failed",
			Detail: "an error occurred during model inference",
		})
	default:
		h.logger.Error("inference failed", "error", err)
		scoreRequestsTotal.WithLabelValues("error").Inc()
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Error:  "Inference failed",
			Detail: "an error occurred during model inference",
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
