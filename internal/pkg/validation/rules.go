package validation

import (
	"regexp"
)

// Validation rule patterns
var (
	// Email validation pattern
	EmailPattern = `^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,4}$`

	// University email pattern - students register with their snu.edu.in address
	UniversityEmailPattern = `^[a-zA-Z0-9._%+\-]+@([a-zA-Z0-9\-]+\.)*snu\.edu\.in$`

	// Contact number pattern - 10 digits
	ContactPattern = `^\d{10}$`

	// Food request identifier pattern - exactly 4 digits
	FoodCodePattern = `^\d{4}$`

	// Password min length
	PasswordMinLength = 6

	// Description max length for complaints
	DescriptionMaxLength = 300
)

// CompiledPatterns caches compiled regex patterns for better performance
var CompiledPatterns = struct {
	Email           *regexp.Regexp
	UniversityEmail *regexp.Regexp
	Contact         *regexp.Regexp
	FoodCode        *regexp.Regexp
}{
	Email:           regexp.MustCompile(EmailPattern),
	UniversityEmail: regexp.MustCompile(UniversityEmailPattern),
	Contact:         regexp.MustCompile(ContactPattern),
	FoodCode:        regexp.MustCompile(FoodCodePattern),
}

// String validation
type StringValidation struct {
	Value    string
	MinLen   int
	MaxLen   int
	Required bool
	Pattern  *regexp.Regexp
}

// NewStringValidation creates a new string validation
func NewStringValidation(value string) *StringValidation {
	return &StringValidation{
		Value:    value,
		Required: true,
	}
}

// WithMinLength sets minimum length
func (v *StringValidation) WithMinLength(min int) *StringValidation {
	v.MinLen = min
	return v
}

// WithMaxLength sets maximum length
func (v *StringValidation) WithMaxLength(max int) *StringValidation {
	v.MaxLen = max
	return v
}

// WithPattern sets regex pattern
func (v *StringValidation) WithPattern(pattern *regexp.Regexp) *StringValidation {
	v.Pattern = pattern
	return v
}

// WithRequired sets if field is required
func (v *StringValidation) WithRequired(required bool) *StringValidation {
	v.Required = required
	return v
}

// Validate performs validation
func (v *StringValidation) Validate() bool {
	if v.Required && v.Value == "" {
		return false
	}

	// Skip other validations for empty optional values
	if !v.Required && v.Value == "" {
		return true
	}

	if v.MinLen > 0 && len(v.Value) < v.MinLen {
		return false
	}

	if v.MaxLen > 0 && len(v.Value) > v.MaxLen {
		return false
	}

	if v.Pattern != nil && !v.Pattern.MatchString(v.Value) {
		return false
	}

	return true
}
