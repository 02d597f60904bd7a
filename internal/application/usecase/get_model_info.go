package usecase

import (
	"github.com/asah-capstone-a25/leadscore/internal/application/dto"
	"github.com/asah-capstone-a25/leadscore/internal/domain/model"
)

// GetModelInfo reports the readiness signal: whether an artifact bundle is
// loaded and how many features it defines.
type GetModelInfo struct {
	bundle *model.Bundle
}

// NewGetModelInfo creates the GetModelInfo use case.
func NewGetModelInfo(bundle *model.Bundle) *GetModelInfo {
	return &GetModelInfo{bundle: bundle}
}

// Execute never fails; an unloaded bundle simply reports not loaded.
func (uc *GetModelInfo) Execute() dto.ModelInfoResponse {
	if uc.bundle == nil {
		return dto.ModelInfoResponse{}
	}
	return dto.ModelInfoResponse{
		ModelLoaded:  true,
		ModelVersion: uc.bundle.Version(),
		FeatureCount: uc.bundle.FeatureCount(),
	}
}
