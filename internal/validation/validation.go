// Package validation schema-checks inbound request payloads and converts
// violations into a single aggregated, client-safe error.
package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Error carries every field violation from one payload. Handlers map it to a
// 400 response with the aggregated detail preserved for the client.
type Error struct {
	Violations []string
}

func (e *Error) Error() string {
	return "Validation failed: " + strings.Join(e.Violations, ", ")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their JSON name so violations read like the wire
	// payload, not like Go struct fields.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateStruct checks s against its struct tags. On failure it returns an
// *Error aggregating every violated field as "field: message".
func ValidateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	out := &Error{Violations: make([]string, 0, len(verrs))}
	for _, fe := range verrs {
		out.Violations = append(out.Violations, fmt.Sprintf("%s: %s", fe.Field(), messageFor(fe)))
	}
	return out
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must not exceed %s characters", fe.Param())
		}
		return fmt.Sprintf("must not exceed %s", fe.Param())
	case "email":
		return "must be a valid email address"
	case "uuid":
		return "must be a valid UUID"
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
