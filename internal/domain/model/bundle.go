package model

import (
	"fmt"

	"github.com/asah-capstone-a25/leadscore/internal/domain/port"
	"github.com/asah-capstone-a25/leadscore/internal/domain/valueobject"
)

// reasonCodeCount is the fixed number of reason codes every scoring result
// carries, so the bundle must define at least that many features.
const reasonCodeCount = 5

// ReasonCodeCount returns the fixed number of reason codes per result.
func ReasonCodeCount() int { return reasonCodeCount }

// Policy holds the fixed decision constants shipped with a trained bundle.
// They are versioned alongside the model, never configured per request.
type Policy struct {
	DecisionThreshold float64
	RiskBands         valueobject.RiskBands
}

// Validate checks the policy constants.
func (p Policy) Validate() error {
	if p.DecisionThreshold <= 0 || p.DecisionThreshold >= 1 {
		return fmt.Errorf("decision threshold must be in (0, 1), got %v", p.DecisionThreshold)
	}
	if err := p.RiskBands.Validate(); err != nil {
		return fmt.Errorf("risk bands: %w", err)
	}
	return nil
}

// Bundle is the immutable artifact bundle: the trained predictor, the
// explainer bound to it, the ordered encoded feature names, the categorical
// encoding tables, and the decision policy. It is constructed exactly once at
// startup and shared read-only by all concurrent scoring calls.
type Bundle struct {
	version      string
	featureNames []string
	featureIndex map[string]int
	encoders     map[string]map[string]float64
	predictor    port.Predictor
	explainer    port.Explainer
	policy       Policy
}

// NewBundle assembles and cross-validates a bundle. Any structural
// inconsistency between the parts is a fatal configuration error: no partial
// bundle is ever handed out.
func NewBundle(
	version string,
	featureNames []string,
	encoders map[string]map[string]float64,
	predictor port.Predictor,
	explainer port.Explainer,
	policy Policy,
) (*Bundle, error) {
	if version == "" {
		return nil, fmt.Errorf("bundle version is required")
	}
	if len(featureNames) < reasonCodeCount {
		return nil, fmt.Errorf("bundle must define at least %d features, got %d", reasonCodeCount, len(featureNames))
	}
	if predictor == nil {
		return nil, fmt.Errorf("predictor is required")
	}
	if explainer == nil {
		return nil, fmt.Errorf("explainer is required")
	}
	if err := policy.Validate(); err != nil {
		return nil, fmt.Errorf("policy: %w", err)
	}

	if got := predictor.NumFeatures(); got != len(featureNames) {
		return nil, fmt.Errorf("predictor expects %d features but the bundle names %d", got, len(featureNames))
	}
	if got := explainer.NumFeatures(); got != len(featureNames) {
		return nil, fmt.Errorf("explainer expects %d features but the bundle names %d", got, len(featureNames))
	}

	index := make(map[string]int, len(featureNames))
	for i, name := range featureNames {
		if _, dup := index[name]; dup {
			return nil, fmt.Errorf("duplicate feature name %q", name)
		}
		if !IsNumericFeature(name) && !IsCategoricalFeature(name) {
			return nil, fmt.Errorf("unknown feature name %q", name)
		}
		index[name] = i
	}

	for _, name := range featureNames {
		if !IsCategoricalFeature(name) {
			continue
		}
		table, ok := encoders[name]
		if !ok || len(table) == 0 {
			return nil, fmt.Errorf("categorical feature %q has no encoding table", name)
		}
	}
	for name := range encoders {
		if _, ok := index[name]; !ok {
			return nil, fmt.Errorf("encoding table references unknown feature %q", name)
		}
		if IsNumericFeature(name) {
			return nil, fmt.Errorf("numeric feature %q must not have an encoding table", name)
		}
	}

	names := make([]string, len(featureNames))
	copy(names, featureNames)

	return &Bundle{
		version:      version,
		featureNames: names,
		featureIndex: index,
		encoders:     encoders,
		predictor:    predictor,
		explainer:    explainer,
		policy:       policy,
	}, nil
}

// Version returns the bundle version string.
func (b *Bundle) Version() string { return b.version }

// FeatureCount returns the number of encoded features.
func (b *Bundle) FeatureCount() int { return len(b.featureNames) }

// FeatureNames returns a copy of the ordered feature name list.
func (b *Bundle) FeatureNames() []string {
	names := make([]string, len(b.featureNames))
	copy(names, b.featureNames)
	return names
}

// FeatureName returns the name at a vector position.
func (b *Bundle) FeatureName(i int) string { return b.featureNames[i] }

// EncoderFor returns the encoding table of a categorical feature. The second
// return is false for numeric (pass-through) features.
func (b *Bundle) EncoderFor(name string) (map[string]float64, bool) {
	table, ok := b.encoders[name]
	return table, ok
}

// Predictor returns the trained scoring model.
func (b *Bundle) Predictor() port.Predictor { return b.predictor }

// Explainer returns the attribution engine paired with the predictor.
func (b *Bundle) Explainer() port.Explainer { return b.explainer }

// Policy returns the bundle's decision policy constants.
func (b *Bundle) Policy() Policy { return b.policy }
