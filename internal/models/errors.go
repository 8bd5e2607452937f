package models

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Error codes used across the application. The persistence codes mirror the
// four-way classification of database failures: duplicate key, foreign key,
// check/domain constraint, and everything else.
const (
	CodeNotFound     = "NOT_FOUND"
	CodeValidation   = "VALIDATION_ERROR"
	CodeDuplicate    = "DUPLICATE"
	CodeForeignKey   = "FOREIGN_KEY"
	CodeConstraint   = "CONSTRAINT"
	CodeMissingField = "MISSING_FIELD"
	CodeInternal     = "INTERNAL_ERROR"
)

// ErrorResponse represents a standardized API error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// AppError represents a custom application error
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// WithMessage returns a copy of the error carrying a tailored user-facing
// message while keeping the code and cause.
func (e *AppError) WithMessage(message string) *AppError {
	return &AppError{Code: e.Code, Message: message, Err: e.Err}
}

// Predefined error constructors
func NewNotFoundError(resource string, id interface{}) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s with ID %v not found", resource, id),
	}
}

func NewValidationError(message string) *AppError {
	return &AppError{
		Code:    CodeValidation,
		Message: message,
	}
}

// NewMissingFieldError reports an absent required field, which is distinct
// from a present-but-malformed value.
func NewMissingFieldError(field string) *AppError {
	return &AppError{
		Code:    CodeMissingField,
		Message: fmt.Sprintf("Missing required field: %s", field),
	}
}

func NewDuplicateError(message string, err error) *AppError {
	return &AppError{Code: CodeDuplicate, Message: message, Err: err}
}

func NewForeignKeyError(message string, err error) *AppError {
	return &AppError{Code: CodeForeignKey, Message: message, Err: err}
}

func NewConstraintError(message string, err error) *AppError {
	return &AppError{Code: CodeConstraint, Message: message, Err: err}
}

func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    CodeInternal,
		Message: "Internal server error",
		Err:     err,
	}
}

// RespondWithError creates a standardized error response
func RespondWithError(c *fiber.Ctx, status int, err error) error {
	var response ErrorResponse

	if appErr, ok := err.(*AppError); ok {
		response = ErrorResponse{
			Error: appErr.Message,
			Code:  appErr.Code,
		}
		if appErr.Err != nil {
			response.Details = appErr.Err.Error()
		}
	} else {
		response = ErrorResponse{
			Error: err.Error(),
		}
	}

	return c.Status(status).JSON(response)
}
