package database

import (
	"errors"

	"carelink/internal/models"

	"github.com/jackc/pgx/v5/pgconn"
	sqlite3 "github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

// SQLSTATE class 23 (integrity constraint violation) codes.
const (
	pgNotNullViolation    = "23502"
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
	pgCheckViolation      = "23514"
)

// ClassifyError maps a persistence failure onto the application's four-way
// classification (duplicate, foreign key, check constraint, unclassified)
// using the driver's structured error codes rather than message text. The
// mapping is best-effort; unknown codes surface as internal errors.
func ClassifyError(err error) *models.AppError {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &models.AppError{Code: models.CodeNotFound, Message: "Record not found", Err: err}
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return models.NewDuplicateError("Duplicate record", err)
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return models.NewForeignKeyError("Referenced record does not exist", err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return models.NewDuplicateError("Duplicate record", err)
		case pgForeignKeyViolation:
			return models.NewForeignKeyError("Referenced record does not exist", err)
		case pgCheckViolation, pgNotNullViolation:
			return models.NewConstraintError("Invalid data: one or more fields violate database constraints", err)
		}
		return models.NewInternalError(err)
	}

	// The sqlite driver is used by the test database.
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return models.NewDuplicateError("Duplicate record", err)
		case sqlite3.ErrConstraintForeignKey:
			return models.NewForeignKeyError("Referenced record does not exist", err)
		case sqlite3.ErrConstraintCheck, sqlite3.ErrConstraintNotNull:
			return models.NewConstraintError("Invalid data: one or more fields violate database constraints", err)
		}
		if sqliteErr.Code == sqlite3.ErrConstraint {
			return models.NewConstraintError("Invalid data: one or more fields violate database constraints", err)
		}
		return models.NewInternalError(err)
	}

	return models.NewInternalError(err)
}
