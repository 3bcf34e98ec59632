package handlers

import (
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/hackflow/hackflow-api/pkg/errors"
)

// ValidationError represents a single validation error
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ParseValidationErrors converts validator errors to user-friendly format
func ParseValidationErrors(err error) []ValidationError {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return nil
	}

	out := make([]ValidationError, 0, len(validationErrs))
	for _, fe := range validationErrs {
		out = append(out, ValidationError{
			Field:   fe.Field(),
			Message: getErrorMessage(fe),
		})
	}
	return out
}

func getErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return "Invalid email format"
	case "url":
		return "Invalid URL format"
	case "min":
		return fe.Field() + " must be at least " + fe.Param() + unit(fe)
	case "max":
		return fe.Field() + " must not exceed " + fe.Param() + unit(fe)
	case "oneof":
		return fe.Field() + " must be one of: " + fe.Param()
	default:
		return fe.Field() + " is invalid"
	}
}

// unit names what a min/max bound counts for the field's kind
func unit(fe validator.FieldError) string {
	switch fe.Kind() {
	case reflect.String:
		return " characters"
	case reflect.Slice, reflect.Array, reflect.Map:
		return " items"
	default:
		return ""
	}
}
