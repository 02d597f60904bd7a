package model

import "github.com/asah-capstone-a25/leadscore/internal/domain/valueobject"

// ReasonCode is one ranked feature attribution: which feature, which way it
// pushed the prediction, and by how much.
type ReasonCode struct {
	Feature   string
	Direction valueobject.Direction
	Value     float64
}

// ScoreResult is the complete outcome of scoring one lead. It is built fresh
// per request and discarded once the caller has consumed it.
type ScoreResult struct {
	Probability float64
	Prediction  valueobject.Prediction
	RiskLevel   valueobject.RiskLevel
	ReasonCodes []ReasonCode
}
