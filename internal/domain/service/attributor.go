package service

import (
	"fmt"
	"math"
	"sort"

	"github.com/asah-capstone-a25/leadscore/internal/domain/model"
	"github.com/asah-capstone-a25/leadscore/internal/domain/valueobject"
)

// Attributor computes per-feature contribution values for one encoded vector
// and selects the most influential features as reason codes.
type Attributor struct{}

// NewAttributor creates a new Attributor instance.
func NewAttributor() *Attributor {
	return &Attributor{}
}

// Explain returns exactly five reason codes ordered by descending absolute
// contribution. Ties break on the lower feature index, so identical vectors
// always yield identical reasons in identical order.
func (a *Attributor) Explain(vector []float64, bundle *model.Bundle) ([]model.ReasonCode, error) {
	contributions, err := bundle.Explainer().Attributions(vector)
	if err != nil {
		return nil, &AttributionError{Err: err}
	}
	if len(contributions) != bundle.FeatureCount() {
		return nil, &AttributionError{
			Err: fmt.Errorf("explainer returned %d contributions for %d features", len(contributions), bundle.FeatureCount()),
		}
	}

	order := make([]int, len(contributions))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		a, b := order[i], order[j]
		absA, absB := math.Abs(contributions[a]), math.Abs(contributions[b])
		if absA != absB {
			return absA > absB
		}
		return a < b
	})

	codes := make([]model.ReasonCode, 0, model.ReasonCodeCount())
	for _, idx := range order[:model.ReasonCodeCount()] {
		codes = append(codes, model.ReasonCode{
			Feature:   bundle.FeatureName(idx),
			Direction: valueobject.DirectionFromValue(contributions[idx]),
			Value:     contributions[idx],
		})
	}

	return codes, nil
}
