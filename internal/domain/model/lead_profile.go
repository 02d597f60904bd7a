package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// LeadProfile is the fixed set of customer and contact attributes scored for
// one lead. Every categorical field has a closed domain; violations are
// rejected at the service boundary before scoring starts.
type LeadProfile struct {
	Age       int
	Job       string
	Marital   string
	Education string
	Default   string
	Balance   decimal.Decimal
	Housing   string
	Loan      string
	Contact   string
	Day       int
	Month     string
	Campaign  int
	Pdays     int
	Previous  int
	Poutcome  string
}

var jobLabels = map[string]struct{}{
	"admin.": {}, "blue-collar": {}, "entrepreneur": {}, "housemaid": {},
	"management": {}, "retired": {}, "self-employed": {}, "services": {},
	"student": {}, "technician": {}, "unemployed": {}, "unknown": {},
}

var maritalStatuses = map[string]struct{}{
	"divorced": {}, "married": {}, "single": {},
}

var educationLevels = map[string]struct{}{
	"primary": {}, "secondary": {}, "tertiary": {}, "unknown": {},
}

var yesNoLabels = map[string]struct{}{
	"no": {}, "yes": {},
}

var contactTypes = map[string]struct{}{
	"cellular": {}, "telephone": {}, "unknown": {},
}

var monthCodes = map[string]struct{}{
	"jan": {}, "feb": {}, "mar": {}, "apr": {}, "may": {}, "jun": {},
	"jul": {}, "aug": {}, "sep": {}, "oct": {}, "nov": {}, "dec": {},
}

var outcomeLabels = map[string]struct{}{
	"failure": {}, "other": {}, "success": {}, "unknown": {},
}

// Validate checks every field against its domain or numeric range.
func (p LeadProfile) Validate() error {
	if p.Age < 18 || p.Age > 100 {
		return fmt.Errorf("age must be between 18 and 100, got %d", p.Age)
	}
	if _, ok := jobLabels[p.Job]; !ok {
		return fmt.Errorf("job: unsupported value %q", p.Job)
	}
	if _, ok := maritalStatuses[p.Marital]; !ok {
		return fmt.Errorf("marital: unsupported value %q", p.Marital)
	}
	if _, ok := educationLevels[p.Education]; !ok {
		return fmt.Errorf("education: unsupported value %q", p.Education)
	}
	if _, ok := yesNoLabels[p.Default]; !ok {
		return fmt.Errorf("default: unsupported value %q", p.Default)
	}
	if _, ok := yesNoLabels[p.Housing]; !ok {
		return fmt.Errorf("housing: unsupported value %q", p.Housing)
	}
	if _, ok := yesNoLabels[p.Loan]; !ok {
		return fmt.Errorf("loan: unsupported value %q", p.Loan)
	}
	if _, ok := contactTypes[p.Contact]; !ok {
		return fmt.Errorf("contact: unsupported value %q", p.Contact)
	}
	if p.Day < 1 || p.Day > 31 {
		return fmt.Errorf("day must be between 1 and 31, got %d", p.Day)
	}
	if _, ok := monthCodes[p.Month]; !ok {
		return fmt.Errorf("month: unsupported value %q", p.Month)
	}
	if p.Campaign < 1 {
		return fmt.Errorf("campaign must be at least 1, got %d", p.Campaign)
	}
	// -1 is the "never previously contacted" sentinel, a valid value.
	if p.Pdays < -1 {
		return fmt.Errorf("pdays must be -1 or greater, got %d", p.Pdays)
	}
	if p.Previous < 0 {
		return fmt.Errorf("previous must be non-negative, got %d", p.Previous)
	}
	if _, ok := outcomeLabels[p.Poutcome]; !ok {
		return fmt.Errorf("poutcome: unsupported value %q", p.Poutcome)
	}
	return nil
}

// NumericValue returns the raw numeric value of a pass-through feature.
func (p LeadProfile) NumericValue(name string) (float64, bool) {
	switch name {
	case "age":
		return float64(p.Age), true
	case "balance":
		return p.Balance.InexactFloat64(), true
	case "day":
		return float64(p.Day), true
	case "campaign":
		return float64(p.Campaign), true
	case "pdays":
		return float64(p.Pdays), true
	case "previous":
		return float64(p.Previous), true
	default:
		return 0, false
	}
}

// CategoricalValue returns the raw label of a categorical feature.
func (p LeadProfile) CategoricalValue(name string) (string, bool) {
	switch name {
	case "job":
		return p.Job, true
	case "marital":
		return p.Marital, true
	case "education":
		return p.Education, true
	case "default":
		return p.Default, true
	case "housing":
		return p.Housing, true
	case "loan":
		return p.Loan, true
	case "contact":
		return p.Contact, true
	case "month":
		return p.Month, true
	case "poutcome":
		return p.Poutcome, true
	default:
		return "", false
	}
}

// IsNumericFeature reports whether name is a pass-through numeric feature.
func IsNumericFeature(name string) bool {
	switch name {
	case "age", "balance", "day", "campaign", "pdays", "previous":
		return true
	}
	return false
}

// IsCategoricalFeature reports whether name is a categorical feature that
// requires an encoding table.
func IsCategoricalFeature(name string) bool {
	switch name {
	case "job", "marital", "education", "default", "housing", "loan",
		"contact", "month", "poutcome":
		return true
	}
	return false
}
