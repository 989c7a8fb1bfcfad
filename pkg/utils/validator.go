package utils

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report json names so messages match what the client sent
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// ValidationError describes the first constraint a client payload violates.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError builds a message in the `"field" <reason>` form.
func NewValidationError(field, format string, args ...any) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: fmt.Sprintf("%q %s", field, fmt.Sprintf(format, args...)),
	}
}

// ValidateStruct returns one ValidationError per failing field, in struct
// declaration order. Nil means the struct is valid.
func ValidateStruct(data any) []*ValidationError {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []*ValidationError{{Field: "value", Message: err.Error()}}
	}

	result := make([]*ValidationError, 0, len(validationErrors))
	for _, fe := range validationErrors {
		result = append(result, NewValidationError(fe.Field(), "%s", getErrorMessage(fe)))
	}
	return result
}

// converts validator errors to human-readable messages
func getErrorMessage(fe validator.FieldError) string {
	isString := fe.Kind() == reflect.String

	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if isString && fe.Param() == "1" {
			return "is not allowed to be empty"
		}
		if isString {
			return fmt.Sprintf("length must be at least %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "max":
		if isString {
			return fmt.Sprintf("length must be less than or equal to %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be less than or equal to %s", fe.Param())
	case "oneof":
		options := strings.ReplaceAll(fe.Param(), " ", ", ")
		return fmt.Sprintf("must be one of [%s]", options)
	default:
		return "is invalid"
	}
}
