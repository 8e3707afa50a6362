// Package validator adapts go-playground/validator to echo.
package validator

import (
	"reflect"
	"strings"

	domainerrors "locust/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// RequestValidator implements echo.Validator.
type RequestValidator struct {
	validate *validator.Validate
}

// New returns a validator that reports fields by their JSON names.
func New() *RequestValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return &RequestValidator{validate: validate}
}

// Validate returns ErrInvalidPayload listing every failed field.
func (v *RequestValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "failed to validate request")
	}

	return domainerrors.ErrInvalidPayload.WithDetails(describe(fieldErrs))
}

func describe(fieldErrs validator.ValidationErrors) string {
	parts := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		field := strings.SplitN(fe.Namespace(), ".", 2)
		name := fe.Field()
		if len(field) == 2 {
			name = field[1]
		}

		switch fe.Tag() {
		case "required":
			parts = append(parts, name+" is required")
		case "min", "max", "gte", "lte":
			parts = append(parts, name+" must be "+fe.Tag()+" "+fe.Param())
		case "datetime":
			parts = append(parts, name+" must be an RFC 3339 timestamp")
		case "url":
			parts = append(parts, name+" must be a URL")
		default:
			parts = append(parts, name+" failed "+fe.Tag())
		}
	}

	return strings.Join(parts, "; ")
}
