package artifact

import "fmt"

// LinearExplainer computes exact per-feature attributions for a logistic
// model in margin (log-odds) space: coefficient times the feature's
// deviation from the training-set background mean. For a linear model these
// are the exact Shapley values, with no sampling noise, and they are
// consistent with the paired predictor by construction because both share
// the same coefficients.
type LinearExplainer struct {
	model      *LogisticModel
	background []float64
}

// NewLinearExplainer pairs an explainer with the model it explains. The
// background vector holds the training-set mean of every encoded feature.
func NewLinearExplainer(model *LogisticModel, background []float64) (*LinearExplainer, error) {
	if model == nil {
		return nil, fmt.Errorf("explainer requires a model")
	}
	if len(background) != model.NumFeatures() {
		return nil, fmt.Errorf("explainer background has %d values for a %d-feature model", len(background), model.NumFeatures())
	}
	bg := make([]float64, len(background))
	copy(bg, background)
	return &LinearExplainer{model: model, background: bg}, nil
}

// Attributions returns one signed contribution per feature position. The
// contributions sum to the margin difference between the vector and the
// background, so they explain exactly the score the predictor emits.
func (e *LinearExplainer) Attributions(vector []float64) ([]float64, error) {
	if len(vector) != len(e.background) {
		return nil, fmt.Errorf("explainer expects %d features, got %d", len(e.background), len(vector))
	}
	contributions := make([]float64, len(vector))
	for i := range vector {
		contributions[i] = e.model.Coefficient(i) * (vector[i] - e.background[i])
	}
	return contributions, nil
}

// NumFeatures returns the input width the explainer expects.
func (e *LinearExplainer) NumFeatures() int {
	return len(e.background)
}
