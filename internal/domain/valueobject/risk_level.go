package valueobject

import "fmt"

// RiskLevel is an immutable value object classifying a subscription
// probability into a coarse triage band.
type RiskLevel struct {
	value string
}

var (
	RiskLevelLow    = RiskLevel{value: "Low"}
	RiskLevelMedium = RiskLevel{value: "Medium"}
	RiskLevelHigh   = RiskLevel{value: "High"}
)

// RiskBands holds the lower bounds of the Medium and High bands. The three
// bands partition [0, 1] with a closed-open convention: a probability equal
// to a boundary belongs to the higher band.
type RiskBands struct {
	MediumMin float64
	HighMin   float64
}

// Validate checks that the bands form a proper partition of [0, 1].
func (b RiskBands) Validate() error {
	if b.MediumMin <= 0 || b.MediumMin >= 1 {
		return fmt.Errorf("medium band lower bound must be in (0, 1), got %v", b.MediumMin)
	}
	if b.HighMin <= b.MediumMin || b.HighMin >= 1 {
		return fmt.Errorf("high band lower bound must be in (%v, 1), got %v", b.MediumMin, b.HighMin)
	}
	return nil
}

// RiskLevelFromString reconstructs a RiskLevel from its string representation.
func RiskLevelFromString(s string) (RiskLevel, error) {
	switch s {
	case "Low":
		return RiskLevelLow, nil
	case "Medium":
		return RiskLevelMedium, nil
	case "High":
		return RiskLevelHigh, nil
	default:
		return RiskLevel{}, fmt.Errorf("invalid risk level: %s", s)
	}
}

// RiskLevelFromProbability buckets a probability into the band it falls in.
// Boundary values map to the higher band.
func RiskLevelFromProbability(p float64, bands RiskBands) RiskLevel {
	switch {
	case p >= bands.HighMin:
		return RiskLevelHigh
	case p >= bands.MediumMin:
		return RiskLevelMedium
	default:
		return RiskLevelLow
	}
}

// String returns the string representation.
func (r RiskLevel) String() string {
	return r.value
}

// IsZero returns true if the RiskLevel has not been set.
func (r RiskLevel) IsZero() bool {
	return r.value == ""
}

// Equal checks equality with another RiskLevel.
func (r RiskLevel) Equal(other RiskLevel) bool {
	return r.value == other.value
}
