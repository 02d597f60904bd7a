package valueobject

import "fmt"

// Prediction is the binary subscribe/no-subscribe decision derived from a
// probability and a fixed decision threshold.
type Prediction struct {
	value int
}

var (
	PredictionNo  = Prediction{value: 0}
	PredictionYes = Prediction{value: 1}
)

// PredictionFromProbability applies the decision threshold: probabilities at
// or above the threshold predict a subscription.
func PredictionFromProbability(p, threshold float64) Prediction {
	if p >= threshold {
		return PredictionYes
	}
	return PredictionNo
}

// PredictionFromInt reconstructs a Prediction from its numeric form.
func PredictionFromInt(v int) (Prediction, error) {
	switch v {
	case 0:
		return PredictionNo, nil
	case 1:
		return PredictionYes, nil
	default:
		return Prediction{}, fmt.Errorf("invalid prediction: %d", v)
	}
}

// Int returns the numeric form (0 or 1).
func (p Prediction) Int() int {
	return p.value
}

// Label returns the caller-facing label, "yes" or "no".
func (p Prediction) Label() string {
	if p.value == 1 {
		return "yes"
	}
	return "no"
}

// IsPositive reports whether the lead is predicted to subscribe.
func (p Prediction) IsPositive() bool {
	return p.value == 1
}

// Equal checks equality with another Prediction.
func (p Prediction) Equal(other Prediction) bool {
	return p.value == other.value
}
