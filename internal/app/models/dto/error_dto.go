package dto

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse is the structured failure envelope. Errors is only present
// on validation failures.
type ErrorResponse struct {
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// FieldError describes a single failed validation rule.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// NewErrorResponse creates an error envelope with a message only.
func NewErrorResponse(message string) *ErrorResponse {
	return &ErrorResponse{Message: message}
}

// NewValidationErrorResponse converts a binding error into a 400 envelope
// with a per-field error list.
func NewValidationErrorResponse(err error) *ErrorResponse {
	resp := &ErrorResponse{Message: "Validation failed"}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		for _, fe := range validationErrs {
			resp.Errors = append(resp.Errors, FieldError{
				Field:   fe.Field(),
				Message: formatValidationError(fe),
			})
		}
		return resp
	}

	resp.Message = "Invalid request body"
	resp.Errors = append(resp.Errors, FieldError{Field: "body", Message: err.Error()})
	return resp
}

func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "email":
		return e.Field() + " must be a valid email address"
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
