// Package validator adapts go-playground/validator to Echo's Validator
// interface, reporting failures as field-level validation errors.
package validator

import (
	"reflect"
	"strings"

	domainerrors "usman/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

type echoValidator struct {
	validate *playground.Validate
}

// New builds the validator used for request DTOs. Field names in error
// messages follow the json tags, matching what the client actually sent.
func New() *echoValidator {
	validate := playground.New(playground.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}

		return name
	})

	return &echoValidator{validate: validate}
}

// Validate implements echo.Validator.
func (v *echoValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var validationErrs playground.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return errors.Wrap(err, "request validation failed")
	}

	fields := domainerrors.FieldErrors{}
	for _, fieldErr := range validationErrs {
		fields[fieldErr.Field()] = messageForTag(fieldErr)
	}

	return domainerrors.NewValidationError(fields)
}

func messageForTag(fieldErr playground.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return fieldErr.Field() + " is required"
	case "email":
		return fieldErr.Field() + " is not a valid email address"
	case "min":
		return fieldErr.Field() + " must be at least " + fieldErr.Param() + " characters"
	case "max":
		return fieldErr.Field() + " must be at most " + fieldErr.Param() + " characters"
	default:
		return fieldErr.Field() + " is invalid"
	}
}
