package dto

import (
	"github.com/shopspring/decimal"

	"github.com/asah-capstone-a25/leadscore/internal/domain/model"
)

// ScoreLeadRequest is the input DTO for the ScoreLead use case. Field names
// and domains mirror the bank-marketing dataset the model was trained on.
type ScoreLeadRequest struct {
	Age       int             `json:"age"`
	Job       string          `json:"job"`
	Marital   string          `json:"marital"`
	Education string          `json:"education"`
	Default   string          `json:"default"`
	Balance   decimal.Decimal `json:"balance"`
	Housing   string          `json:"housing"`
	Loan      string          `json:"loan"`
	Contact   string          `json:"contact"`
	Day       int             `json:"day"`
	Month     string          `json:"month"`
	Campaign  int             `json:"campaign"`
	Pdays     int             `json:"pdays"`
	Previous  int             `json:"previous"`
	Poutcome  string          `json:"poutcome"`
}

// ToProfile converts the request into the domain lead profile.
func (r ScoreLeadRequest) ToProfile() model.LeadProfile {
	return model.LeadProfile{
		Age:       r.Age,
		Job:       r.Job,
		Marital:   r.Marital,
		Education: r.Education,
		Default:   r.Default,
		Balance:   r.Balance,
		Housing:   r.Housing,
		Loan:      r.Loan,
		Contact:   r.Contact,
		Day:       r.Day,
		Month:     r.Month,
		Campaign:  r.Campaign,
		Pdays:     r.Pdays,
		Previous:  r.Previous,
		Poutcome:  r.Poutcome,
	}
}

// Validate checks every field against the domains the boundary guarantees to
// the core.
func (r ScoreLeadRequest) Validate() error {
	return r.ToProfile().Validate()
}

// ReasonCodeDTO is one ranked feature attribution in a response.
type ReasonCodeDTO struct {
	Feature   string  `json:"feature"`
	Direction string  `json:"direction"`
	ShapValue float64 `json:"shap_value"`
}

// ScoreLeadResponse is the output DTO returned after scoring one lead.
// Identical requests against the same bundle produce identical responses,
// so no per-call state belongs here.
type ScoreLeadResponse struct {
	Probability     float64         `json:"probability"`
	Prediction      int             `json:"prediction"`
	PredictionLabel string          `json:"prediction_label"`
	RiskLevel       string          `json:"risk_level"`
	ReasonCodes     []ReasonCodeDTO `json:"reason_codes"`
}

// FromResult maps a domain score result to the response DTO.
func FromResult(result model.ScoreResult) ScoreLeadResponse {
	codes := make([]ReasonCodeDTO, 0, len(result.ReasonCodes))
	for _, rc := range result.ReasonCodes {
		codes = append(codes, ReasonCodeDTO{
			Feature:   rc.Feature,
			Direction: rc.Direction.String(),
			ShapValue: rc.Value,
		})
	}
	return ScoreLeadResponse{
		Probability:     result.Probability,
		Prediction:      result.Prediction.Int(),
		PredictionLabel: result.Prediction.Label(),
		RiskLevel:       result.RiskLevel.String(),
		ReasonCodes:     codes,
	}
}

// ModelInfoResponse reports whether a usable bundle is loaded and what it
// defines, for readiness checks.
type ModelInfoResponse struct {
	ModelLoaded  bool   `json:"model_loaded"`
	ModelVersion string `json:"model_version"`
	FeatureCount int    `json:"feature_count"`
}
