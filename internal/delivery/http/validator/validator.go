// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	"regexp"

	domainerrors "roster/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
)

// fullNamePattern allows letters and whitespace only, matching the signup rule.
var fullNamePattern = regexp.MustCompile(`^[a-zA-Z\s]+$`)

// RequestValidator implements echo.Validator.
type RequestValidator struct {
	validate *playground.Validate
}

// New builds the request validator with the custom rules registered.
func New() *RequestValidator {
	v := playground.New(playground.WithRequiredStructEnabled())

	// Registration errors only occur for blank tags or nil functions.
	_ = v.RegisterValidation("fullname", func(fl playground.FieldLevel) bool {
		return fullNamePattern.MatchString(fl.Field().String())
	})

	return &RequestValidator{validate: v}
}

// Validate runs the struct tags and maps failures to the validation outcome.
func (rv *RequestValidator) Validate(i any) error {
	if err := rv.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
