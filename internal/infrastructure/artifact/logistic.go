package artifact

import (
	"fmt"
	"math"
)

// LogisticModel is a trained logistic-regression predictor: a weight per
// encoded feature plus an intercept, applied through the sigmoid.
type LogisticModel struct {
	coefficients []float64
	intercept    float64
}

// NewLogisticModel builds a predictor from trained parameters.
func NewLogisticModel(coefficients []float64, intercept float64) (*LogisticModel, error) {
	if len(coefficients) == 0 {
		return nil, fmt.Errorf("model has no coefficients")
	}
	coefs := make([]float64, len(coefficients))
	copy(coefs, coefficients)
	return &LogisticModel{coefficients: coefs, intercept: intercept}, nil
}

// Predict returns the positive-class probability for an encoded vector.
func (m *LogisticModel) Predict(vector []float64) (float64, error) {
	if len(vector) != len(m.coefficients) {
		return 0, fmt.Errorf("model expects %d features, got %d", len(m.coefficients), len(vector))
	}
	return sigmoid(m.Margin(vector)), nil
}

// Margin returns the raw log-odds score for an encoded vector. The caller
// must pass a vector of the expected width.
func (m *LogisticModel) Margin(vector []float64) float64 {
	z := m.intercept
	for i, w := range m.coefficients {
		z += w * vector[i]
	}
	return z
}

// NumFeatures returns the input width the model was trained on.
func (m *LogisticModel) NumFeatures() int {
	return len(m.coefficients)
}

// Coefficient returns the trained weight of one feature position.
func (m *LogisticModel) Coefficient(i int) float64 {
	return m.coefficients[i]
}

func sigmoid(z float64) float64 {
	return 1.0 / (1.0 + math.Exp(-z))
}
