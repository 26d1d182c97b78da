package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to user-friendly labels
var FieldLabels = map[string]string{
	"FirstName":  "First name",
	"LastName":   "Last name",
	"Email":      "Email",
	"Company":    "Company",
	"Phone":      "Phone number",
	"Service":    "Service",
	"Message":    "Message",
	"ClientName": "Client name",
}

// FormatValidationErrors converts validator.ValidationErrors to user-friendly
// per-field messages
func FormatValidationErrors(err error) []string {
	var messages []string

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		// Not a validation error (e.g. malformed JSON), return as-is
		return []string{err.Error()}
	}

	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}

	return messages
}

// formatSingleError formats a single validation error to a user-friendly message
func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s: This field is required", label)

	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s: Must be at least %s characters", label, e.Param())
		}
		return fmt.Sprintf("%s: Must be at least %s", label, e.Param())

	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s: Must be at most %s characters", label, e.Param())
		}
		return fmt.Sprintf("%s: Must be at most %s", label, e.Param())

	case "email":
		return fmt.Sprintf("%s: Not a valid email address", label)

	case "digits_min":
		return fmt.Sprintf("%s: Phone number is too short", label)

	default:
		return fmt.Sprintf("%s: Validation failed (%s)", label, e.Tag())
	}
}

// getFieldLabel returns the user-friendly label for a field
func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return formatCamelCase(fieldName)
}

// formatCamelCase converts CamelCase to spaced words
func formatCamelCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune(' ')
		}
		result.WriteRune(r)
	}
	return result.String()
}
