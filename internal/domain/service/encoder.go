package service

import (
	"fmt"

	"github.com/asah-capstone-a25/leadscore/internal/domain/model"
)

// Encoder reproduces the training-time feature encoding at serving time:
// numeric attributes pass through unchanged, categorical attributes are
// mapped through the bundle's encoding tables. The output vector is aligned
// positionally to the bundle's feature-name list.
type Encoder struct{}

// NewEncoder creates a new Encoder instance.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Encode maps a lead profile to the numeric vector the model expects. It is
// a pure function: the same profile and bundle always produce the same
// vector. An unmappable category yields an EncodingError.
func (e *Encoder) Encode(profile model.LeadProfile, bundle *model.Bundle) ([]float64, error) {
	vector := make([]float64, 0, bundle.FeatureCount())

	for _, name := range bundle.FeatureNames() {
		if table, ok := bundle.EncoderFor(name); ok {
			raw, known := profile.CategoricalValue(name)
			if !known {
				return nil, fmt.Errorf("bundle feature %q has no source attribute", name)
			}
			code, mapped := table[raw]
			if !mapped {
				return nil, &EncodingError{Feature: name, Value: raw}
			}
			vector = append(vector, code)
			continue
		}

		value, known := profile.NumericValue(name)
		if !known {
			return nil, fmt.Errorf("bundle feature %q has no source attribute", name)
		}
		vector = append(vector, value)
	}

	return vector, nil
}
