package rest_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asah-capstone-a25/leadscore/internal/application/usecase"
	"github.com/asah-capstone-a25/leadscore/internal/domain/model"
	"github.com/asah-capstone-a25/leadscore/internal/infrastructure/artifact"
	"github.com/asah-capstone-a25/leadscore/internal/presentation/rest"
	"github.com/asah-capstone-a25/leadscore/pkg/testutil"
)

func loadedBundle(t *testing.T) *model.Bundle {
	t.Helper()

	coefficients := []float64{
		0.012, 0.015, 0.083, 0.121, -0.164, 0.00003, -0.421, -0.301,
		-0.354, 0.006, -0.027, -0.098, 0.0015, 0.046, 0.273,
	}
	predictor, err := artifact.NewLogisticModel(coefficients, -1.73)
	require.NoError(t, err)

	background := []float64{
		40.94, 4.34, 1.17, 1.22, 0.018, 1362.27, 0.556, 0.16,
		0.64, 15.81, 6.17, 2.76, 40.2, 0.58, 2.56,
	}
	explainer, err := artifact.NewLinearExplainer(predictor, background)
	require.NoError(t, err)

	return testutil.NewBundle(t, predictor, explainer)
}

func newRouter(t *testing.T, bundle *model.Bundle) http.Handler {
	t.Helper()
	logger := slog.Default()
	handler := rest.NewHandler(
		usecase.NewScoreLead(bundle, logger),
		usecase.NewGetModelInfo(bundle),
		nil,
		logger,
	)
	return handler.Router()
}

const sampleBody = `{
	"age": 35,
	"job": "technician",
	"marital": "married",
	"education": "tertiary",
	"default": "no",
	"balance": 1500,
	"housing": "yes",
	"loan": "no",
	"contact": "cellular",
	"day": 15,
	"month": "may",
	"campaign": 2,
	"pdays": -1,
	"previous": 0,
	"poutcome": "unknown"
}`

func TestHandler_Score(t *testing.T) {
	router := newRouter(t, loadedBundle(t))

	t.Run("scores a valid lead", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/score", strings.NewReader(sampleBody))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

		var resp struct {
			Probability     float64 `json:"probability"`
			Prediction      int     `json:"prediction"`
			PredictionLabel string  `json:"prediction_label"`
			RiskLevel       string  `json:"risk_level"`
			ReasonCodes     []struct {
				Feature   string  `json:"feature"`
				Direction string  `json:"direction"`
				ShapValue float64 `json:"shap_value"`
			} `json:"reason_codes"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

		assert.GreaterOrEqual(t, resp.Probability, 0.0)
		assert.LessOrEqual(t, resp.Probability, 1.0)
		assert.Contains(t, []int{0, 1}, resp.Prediction)
		assert.Contains(t, []string{"yes", "no"}, resp.PredictionLabel)
		assert.Contains(t, []string{"Low", "Medium", "High"}, resp.RiskLevel)
		require.Len(t, resp.ReasonCodes, 5)
		for _, rc := range resp.ReasonCodes {
			assert.Contains(t, []string{"positive", "negative"}, rc.Direction)
			assert.NotEmpty(t, rc.Feature)
		}
	})

	t.Run("identical requests produce identical bodies", func(t *testing.T) {
		first := httptest.NewRecorder()
		router.ServeHTTP(first, httptest.NewRequest(http.MethodPost, "/score", strings.NewReader(sampleBody)))
		second := httptest.NewRecorder()
		router.ServeHTTP(second, httptest.NewRequest(http.MethodPost, "/score", strings.NewReader(sampleBody)))

		require.Equal(t, http.StatusOK, first.Code)
		require.Equal(t, http.StatusOK, second.Code)
		assert.Equal(t, first.Body.Bytes(), second.Body.Bytes())
	})

	t.Run("rejects an out-of-domain category", func(t *testing.T) {
		body := strings.Replace(sampleBody, `"technician"`, `"astronaut"`, 1)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/score", strings.NewReader(body)))

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid input")
		assert.Contains(t, rec.Body.String(), "astronaut")
	})

	t.Run("rejects an out-of-range age", func(t *testing.T) {
		body := strings.Replace(sampleBody, `"age": 35`, `"age": 17`, 1)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/score", strings.NewReader(body)))

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rejects unknown fields", func(t *testing.T) {
		body := strings.Replace(sampleBody, `"age": 35,`, `"age": 35, "duration": 120,`, 1)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/score", strings.NewReader(body)))

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/score", bytes.NewReader([]byte("{"))))

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("returns 503 before a bundle is loaded", func(t *testing.T) {
		notReady := newRouter(t, nil)

		rec := httptest.NewRecorder()
		notReady.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/score", strings.NewReader(sampleBody)))

		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), "not ready")
	})
}

func TestHandler_Health(t *testing.T) {
	t.Run("healthz is independent of model state", func(t *testing.T) {
		router := newRouter(t, nil)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("readyz reports a loaded bundle", func(t *testing.T) {
		router := newRouter(t, loadedBundle(t))

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Status       string `json:"status"`
			ModelLoaded  bool   `json:"model_loaded"`
			ModelVersion string `json:"model_version"`
			FeatureCount int    `json:"feature_count"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "ready", resp.Status)
		assert.True(t, resp.ModelLoaded)
		assert.Equal(t, 15, resp.FeatureCount)
	})

	t.Run("readyz fails before a bundle is loaded", func(t *testing.T) {
		router := newRouter(t, nil)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), `"model_loaded":false`)
	})

	t.Run("root lists endpoints", func(t *testing.T) {
		router := newRouter(t, loadedBundle(t))

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "/score")
	})
}
