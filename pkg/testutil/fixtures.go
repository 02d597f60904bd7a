// Package testutil provides shared fixtures for lead scoring tests: a
// realistic feature schema, encoding tables, and stub model implementations.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/asah-capstone-a25/leadscore/internal/domain/model"
	"github.com/asah-capstone-a25/leadscore/internal/domain/port"
	"github.com/asah-capstone-a25/leadscore/internal/domain/valueobject"
)

// FeatureNames returns the encoded feature order used by test bundles,
// matching the bank-marketing dataset column order.
func FeatureNames() []string {
	return []string{
		"age", "job", "marital", "education", "default", "balance",
		"housing", "loan", "contact", "day", "month", "campaign",
		"pdays", "previous", "poutcome",
	}
}

// Encoders returns label-encoding tables for every categorical feature,
// with codes assigned alphabetically the way the training pipeline does.
func Encoders() map[string]map[string]float64 {
	return map[string]map[string]float64{
		"job": {
			"admin.": 0, "blue-collar": 1, "entrepreneur": 2, "housemaid": 3,
			"management": 4, "retired": 5, "self-employed": 6, "services": 7,
			"student": 8, "technician": 9, "unemployed": 10, "unknown": 11,
		},
		"marital":   {"divorced": 0, "married": 1, "single": 2},
		"education": {"primary": 0, "secondary": 1, "tertiary": 2, "unknown": 3},
		"default":   {"no": 0, "yes": 1},
		"housing":   {"no": 0, "yes": 1},
		"loan":      {"no": 0, "yes": 1},
		"contact":   {"cellular": 0, "telephone": 1, "unknown": 2},
		"month": {
			"apr": 0, "aug": 1, "dec": 2, "feb": 3, "jan": 4, "jul": 5,
			"jun": 6, "mar": 7, "may": 8, "nov": 9, "oct": 10, "sep": 11,
		},
		"poutcome": {"failure": 0, "other": 1, "success": 2, "unknown": 3},
	}
}

// Policy returns the decision policy used by test bundles.
func Policy() model.Policy {
	return model.Policy{
		DecisionThreshold: 0.5,
		RiskBands:         valueobject.RiskBands{MediumMin: 0.35, HighMin: 0.65},
	}
}

// NewBundle assembles a valid 15-feature bundle around the given predictor
// and explainer, failing the test on any inconsistency.
func NewBundle(t *testing.T, predictor port.Predictor, explainer port.Explainer) *model.Bundle {
	t.Helper()
	bundle, err := model.NewBundle("test", FeatureNames(), Encoders(), predictor, explainer, Policy())
	require.NoError(t, err)
	return bundle
}

// StaticPredictor is a stub predictor returning a fixed probability.
type StaticPredictor struct {
	Features    int
	Probability float64
	Err         error
}

func (s StaticPredictor) Predict(_ []float64) (float64, error) {
	if s.Err != nil {
		return 0, s.Err
	}
	return s.Probability, nil
}

func (s StaticPredictor) NumFeatures() int { return s.Features }

// StaticExplainer is a stub explainer returning fixed contributions.
type StaticExplainer struct {
	Features      int
	Contributions []float64
	Err           error
}

func (s StaticExplainer) Attributions(_ []float64) ([]float64, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]float64, len(s.Contributions))
	copy(out, s.Contributions)
	return out, nil
}

func (s StaticExplainer) NumFeatures() int { return s.Features }
