package validation_test

import (
	"testing"

	"go-marketing-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

type phoneField struct {
	Phone string `validate:"omitempty,digits_min=7"`
}

func newValidator() *validator.Validate {
	v := validator.New()
	validation.RegisterValidators(v)
	return v
}

func TestDigitsMin(t *testing.T) {
	v := newValidator()

	cases := []struct {
		name  string
		phone string
		valid bool
	}{
		{"empty passes", "", true},
		{"blank after trim passes", "   ", true},
		{"bare seven digits", "1234567", true},
		{"formatted north american number", "+1 (403) 800-3135", true},
		{"six digits fails", "123456", false},
		{"short with formatting fails", "12-3", false},
		{"letters do not count as digits", "abc4567", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Struct(phoneField{Phone: tc.phone})
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestFormatValidationErrors(t *testing.T) {
	v := newValidator()

	type contactForm struct {
		FirstName string `validate:"required,min=1,max=100"`
		Email     string `validate:"required,email"`
		Phone     string `validate:"omitempty,digits_min=7"`
		Message   string `validate:"required,min=10,max=2000"`
	}

	err := v.Struct(contactForm{Email: "not-an-email", Phone: "123", Message: "short"})
	msgs := validation.FormatValidationErrors(err)

	assert.Contains(t, msgs, "First name: This field is required")
	assert.Contains(t, msgs, "Email: Not a valid email address")
	assert.Contains(t, msgs, "Phone number: Phone number is too short")
	assert.Contains(t, msgs, "Message: Must be at least 10 characters")
}
