package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/asah-capstone-a25/leadscore/internal/application/dto"
	"github.com/asah-capstone-a25/leadscore/internal/domain/model"
	"github.com/asah-capstone-a25/leadscore/internal/domain/service"
)

// ScoreLead is the single inference transaction the presentation layer
// calls: encode, score, explain, assemble. Any step's failure short-circuits
// the rest; no partial result is ever returned.
type ScoreLead struct {
	bundle     *model.Bundle
	encoder    *service.Encoder
	scorer     *service.Scorer
	attributor *service.Attributor
	logger     *slog.Logger
}

// NewScoreLead creates the ScoreLead use case. A nil bundle is allowed and
// makes every Execute fail with ErrNotReady until a loaded service is wired.
func NewScoreLead(bundle *model.Bundle, logger *slog.Logger) *ScoreLead {
	return &ScoreLead{
		bundle:     bundle,
		encoder:    service.NewEncoder(),
		scorer:     service.NewScorer(),
		attributor: service.NewAttributor(),
		logger:     logger,
	}
}

// Execute scores one validated lead profile. It holds no cross-call state
// and never mutates the shared bundle, so arbitrarily many calls may run
// concurrently.
func (uc *ScoreLead) Execute(ctx context.Context, req dto.ScoreLeadRequest) (dto.ScoreLeadResponse, error) {
	if uc.bundle == nil {
		return dto.ScoreLeadResponse{}, service.ErrNotReady
	}

	profile := req.ToProfile()

	vector, err := uc.encoder.Encode(profile, uc.bundle)
	if err != nil {
		return dto.ScoreLeadResponse{}, fmt.Errorf("encode lead profile: %w", err)
	}

	scored, err := uc.scorer.Score(vector, uc.bundle)
	if err != nil {
		return dto.ScoreLeadResponse{}, fmt.Errorf("score lead: %w", err)
	}

	codes, err := uc.attributor.Explain(vector, uc.bundle)
	if err != nil {
		return dto.ScoreLeadResponse{}, fmt.Errorf("explain lead score: %w", err)
	}

	result := model.ScoreResult{
		Probability: scored.Probability,
		Prediction:  scored.Prediction,
		RiskLevel:   scored.RiskLevel,
		ReasonCodes: codes,
	}

	// The trace ID ties the decision summary to transport logs; logging can
	// never fail the request.
	uc.logger.Info("lead scored",
		slog.String("trace_id", uuid.NewString()),
		slog.Int("age", profile.Age),
		slog.String("job", profile.Job),
		slog.Float64("probability", result.Probability),
		slog.String("prediction", result.Prediction.Label()),
		slog.String("risk_level", result.RiskLevel.String()),
	)

	return dto.FromResult(result), nil
}
