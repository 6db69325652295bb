package validators

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validate is a type alias for validator.Validate.
type Validate = validator.Validate

// ValidationErrors is a type alias for validator.ValidationErrors.
type ValidationErrors = validator.ValidationErrors

// FieldError is a type alias for validator.FieldError.
type FieldError = validator.FieldError

// New creates a new validator instance.
func New() *Validate {
	return validator.New()
}

// Describe renders validation errors as a comma-separated list of
// "<field path> (<rule>)" items, e.g. "server.port (max=65535)". Errors that
// are not validation errors are returned as is.
func Describe(err error) string {
	ve, ok := err.(ValidationErrors)
	if !ok {
		return err.Error()
	}
	descriptions := make([]string, 0, len(ve))
	for _, e := range ve {
		descriptions = append(descriptions, describeField(e))
	}
	return strings.Join(descriptions, ", ")
}

// describeField formats a single validation error into a readable string.
func describeField(e FieldError) string {
	field := e.Field()
	tag := e.Tag()

	// Build field path (e.g., "server.port")
	if e.StructNamespace() != "" {
		// Extract nested field path (e.g., "Config.Server.Port" -> "server.port")
		parts := strings.Split(e.StructNamespace(), ".")
		if len(parts) >= 2 {
			// Skip the root struct name, convert to lowercase with dots
			field = strings.ToLower(strings.Join(parts[1:], "."))
		}
	}

	switch tag {
	case "required":
		return fmt.Sprintf("%s (required)", field)
	case "min", "max", "oneof":
		return fmt.Sprintf("%s (%s=%s)", field, tag, e.Param())
	default:
		return fmt.Sprintf("%s (%s)", field, tag)
	}
}
