package valueobject

// Direction indicates whether a feature contribution pushed the prediction
// toward or away from a subscription.
type Direction struct {
	value string
}

var (
	DirectionPositive = Direction{value: "positive"}
	DirectionNegative = Direction{value: "negative"}
)

// DirectionFromValue classifies a signed contribution value. Zero counts as
// positive.
func DirectionFromValue(v float64) Direction {
	if v >= 0 {
		return DirectionPositive
	}
	return DirectionNegative
}

// String returns the string representation.
func (d Direction) String() string {
	return d.value
}

// Equal checks equality with another Direction.
func (d Direction) Equal(other Direction) bool {
	return d.value == other.value
}
