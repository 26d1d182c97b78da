package validation

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("digits_min", DigitsMin)
}

// DigitsMin validates that a string contains at least N digit characters
// after stripping everything else. Blank values pass; combine with required
// when the field is mandatory. Used for phone numbers, where "+1 (403) ..."
// formatting must not count against the digit minimum.
func DigitsMin(fl validator.FieldLevel) bool {
	val := strings.TrimSpace(fl.Field().String())
	if val == "" {
		return true
	}
	min, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	digits := 0
	for _, r := range val {
		if unicode.IsDigit(r) {
			digits++
		}
	}
	return digits >= min
}
