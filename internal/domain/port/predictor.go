package port

// Predictor is the trained scoring model: it maps an encoded feature vector
// to the probability of the positive class (lead subscribes).
type Predictor interface {
	// Predict returns a probability in [0, 1] for the given encoded vector.
	// The vector length must equal NumFeatures.
	Predict(vector []float64) (float64, error)

	// NumFeatures returns the input width the model was trained on.
	NumFeatures() int
}

// Explainer computes local, instance-level attributions for the predictor it
// was trained alongside. Predictor and Explainer are always loaded together
// as one versioned artifact bundle so attributions stay consistent with the
// emitted probability.
type Explainer interface {
	// Attributions returns one signed contribution value per encoded feature
	// position for the given vector. Positive values push toward the
	// positive class.
	Attributions(vector []float64) ([]float64, error)

	// NumFeatures returns the input width the explainer expects.
	NumFeatures() int
}
