package rest

import "net/http"

// healthzResponse is the JSON response for liveness checks.
type healthzResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// readyzResponse is the JSON response for readiness checks.
type readyzResponse struct {
	Status       string `json:"status"`
	ModelLoaded  bool   `json:"model_loaded"`
	ModelVersion string `json:"model_version,omitempty"`
	FeatureCount int    `json:"feature_count"`
}

// handleHealthz reports process liveness; it is independent of model state.
func (h *Handler) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthzResponse{
		Status:  "ok",
		Service: "leadscore",
	})
}

// handleReadyz reports whether a usable artifact bundle is loaded. The
// service must never report ready without one.
func (h *Handler) handleReadyz(w http.ResponseWriter, _ *http.Request) {
	info := h.modelInfo.Execute()

	resp := readyzResponse{
		Status:       "ready",
		ModelLoaded:  info.ModelLoaded,
		ModelVersion: info.ModelVersion,
		FeatureCount: info.FeatureCount,
	}
	status := http.StatusOK
	if !info.ModelLoaded {
		resp.Status = "not ready"
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, resp)
}
