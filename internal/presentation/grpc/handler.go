package grpc

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/asah-capstone-a25/leadscore/internal/application/dto"
	"github.com/asah-capstone-a25/leadscore/internal/application/usecase"
	"github.com/asah-capstone-a25/leadscore/internal/domain/service"
)

// Compile-time assertion that LeadScoringHandler implements LeadScoringServer.
var _ LeadScoringServer = (*LeadScoringHandler)(nil)

// LeadScoringHandler implements the gRPC LeadScoringServer interface.
type LeadScoringHandler struct {
	UnimplementedLeadScoringServer
	scoreLead *usecase.ScoreLead
	modelInfo *usecase.GetModelInfo
	logger    *slog.Logger
}

// NewLeadScoringHandler creates a new gRPC handler.
func NewLeadScoringHandler(
	scoreLead *usecase.ScoreLead,
	modelInfo *usecase.GetModelInfo,
	logger *slog.Logger,
) *LeadScoringHandler {
	return &LeadScoringHandler{
		scoreLead: scoreLead,
		modelInfo: modelInfo,
		logger:    logger,
	}
}

// Proto-aligned request/response message types.

// ScoreLeadRequest represents the proto ScoreLeadRequest message.
type ScoreLeadRequest struct {
	Age       int32  `json:"age"`
	Job       string `json:"job"`
	Marital   string `json:"marital"`
	Education string `json:"education"`
	Default   string `json:"default"`
	Balance   int64  `json:"balance"`
	Housing   string `json:"housing"`
	Loan      string `json:"loan"`
	Contact   string `json:"contact"`
	Day       int32  `json:"day"`
	Month     string `json:"month"`
	Campaign  int32  `json:"campaign"`
	Pdays     int32  `json:"pdays"`
	Previous  int32  `json:"previous"`
	Poutcome  string `json:"poutcome"`
}

// ReasonCodeMsg represents the proto ReasonCode message.
type ReasonCodeMsg struct {
	Feature   string  `json:"feature"`
	Direction string  `json:"direction"`
	ShapValue float64 `json:"shap_value"`
}

// ScoreLeadResponse represents the proto ScoreLeadResponse message.
type ScoreLeadResponse struct {
	Probability     float64          `json:"probability"`
	Prediction      int32            `json:"prediction"`
	PredictionLabel string           `json:"prediction_label"`
	RiskLevel       string           `json:"risk_level"`
	ReasonCodes     []*ReasonCodeMsg `json:"reason_codes"`
}

// GetModelInfoRequest represents the proto GetModelInfoRequest message.
type GetModelInfoRequest struct{}

// GetModelInfoResponse represents the proto GetModelInfoResponse message.
type GetModelInfoResponse struct {
	ModelLoaded  bool   `json:"model_loaded"`
	ModelVersion string `json:"model_version"`
	FeatureCount int32  `json:"feature_count"`
}

// ScoreLead handles a lead scoring request.
func (h *LeadScoringHandler) ScoreLead(ctx context.Context, req *ScoreLeadRequest) (*ScoreLeadResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	scoreReq := dto.ScoreLeadRequest{
		Age:       int(req.Age),
		Job:       req.Job,
		Marital:   req.Marital,
		Education: req.Education,
		Default:   req.Default,
		Balance:   decimal.NewFromInt(req.Balance),
		Housing:   req.Housing,
		Loan:      req.Loan,
		Contact:   req.Contact,
		Day:       int(req.Day),
		Month:     req.Month,
		Campaign:  int(req.Campaign),
		Pdays:     int(req.Pdays),
		Previous:  int(req.Previous),
		Poutcome:  req.Poutcome,
	}

	if err := scoreReq.Validate(); err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid lead profile: %v", err)
	}

	result, err := h.scoreLead.Execute(ctx, scoreReq)
	if err != nil {
		return nil, h.mapError(err)
	}

	codesMsg := make([]*ReasonCodeMsg, 0, len(result.ReasonCodes))
	for _, rc := range result.ReasonCodes {
		codesMsg = append(codesMsg, &ReasonCodeMsg{
			Feature:   rc.Feature,
			Direction: rc.Direction,
			ShapValue: rc.ShapValue,
		})
	}

	return &ScoreLeadResponse{
		Probability:     result.Probability,
		Prediction:      int32(result.Prediction),
		PredictionLabel: result.PredictionLabel,
		RiskLevel:       result.RiskLevel,
		ReasonCodes:     codesMsg,
	}, nil
}

// GetModelInfo handles a model info / readiness request.
func (h *LeadScoringHandler) GetModelInfo(_ context.Context, _ *GetModelInfoRequest) (*GetModelInfoResponse, error) {
	info := h.modelInfo.Execute()
	return &GetModelInfoResponse{
		ModelLoaded:  info.ModelLoaded,
		ModelVersion: info.ModelVersion,
		FeatureCount: int32(info.FeatureCount),
	}, nil
}

// mapError translates core failure kinds into gRPC status codes.
func (h *LeadScoringHandler) mapError(err error) error {
	var encodingErr *service.EncodingError

	switch {
	case errors.Is(err, service.ErrNotReady):
		return status.Error(codes.Unavailable, "model artifacts not loaded")
	case errors.As(err, &encodingErr):
		return status.Errorf(codes.InvalidArgument, "%v", encodingErr)
	default:
		h.logger.Error("inference failed", slog.String("error", err.Error()))
		return status.Error(codes.Internal, "internal error")
	}
}
