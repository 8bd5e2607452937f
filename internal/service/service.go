// Package service contains the application's business logic. Services parse
// and validate submitted form fields, orchestrate repository calls, and
// attach user-facing messages to classified persistence failures.
package service

import (
	"errors"

	"carelink/internal/models"
)

// tailorWriteError rewrites the message on classified persistence failures so
// handlers can surface text specific to the entity being written. Codes and
// causes are preserved; unclassified errors pass through untouched.
func tailorWriteError(err error, duplicateMsg, foreignKeyMsg string) error {
	var appErr *models.AppError
	if !errors.As(err, &appErr) {
		return err
	}
	switch appErr.Code {
	case models.CodeDuplicate:
		if duplicateMsg != "" {
			return appErr.WithMessage(duplicateMsg)
		}
	case models.CodeForeignKey:
		if foreignKeyMsg != "" {
			return appErr.WithMessage(foreignKeyMsg)
		}
	}
	return err
}
