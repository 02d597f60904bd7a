package service

import (
	"fmt"

	"github.com/asah-capstone-a25/leadscore/internal/domain/model"
	"github.com/asah-capstone-a25/leadscore/internal/domain/valueobject"
)

// ScoreOutput carries the probability together with the decisions derived
// from the bundle's policy constants.
type ScoreOutput struct {
	Probability float64
	Prediction  valueobject.Prediction
	RiskLevel   valueobject.RiskLevel
}

// Scorer applies the bundle's predictor to an encoded vector and derives the
// binary decision and risk tier from the bundle policy.
type Scorer struct{}

// NewScorer creates a new Scorer instance.
func NewScorer() *Scorer {
	return &Scorer{}
}

// Score is a pure function of the vector and bundle; it never mutates either.
func (s *Scorer) Score(vector []float64, bundle *model.Bundle) (ScoreOutput, error) {
	probability, err := bundle.Predictor().Predict(vector)
	if err != nil {
		return ScoreOutput{}, fmt.Errorf("predict: %w", err)
	}
	if probability < 0 || probability > 1 {
		return ScoreOutput{}, fmt.Errorf("predictor returned probability %v outside [0, 1]", probability)
	}

	policy := bundle.Policy()
	return ScoreOutput{
		Probability: probability,
		Prediction:  valueobject.PredictionFromProbability(probability, policy.DecisionThreshold),
		RiskLevel:   valueobject.RiskLevelFromProbability(probability, policy.RiskBands),
	}, nil
}
