package errs

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// SQLSTATE codes the store can report for client mistakes.
const (
	pgForeignKeyViolation  = "23503"
	pgNotNullViolation     = "23502"
	pgUniqueViolation      = "23505"
	pgInvalidTextRepr      = "22P02"
	pgNumericOutOfRange    = "22003"
	pgStringDataRightTrunc = "22001"
)

// NewDatabaseError classifies a store failure into the API taxonomy.
// Errors that already carry an ApiErr are returned untouched.
func NewDatabaseError(operation, entity string, cause error) error {
	if cause == nil {
		return nil
	}

	var apiErr *ApiErr
	if errors.As(cause, &apiErr) {
		return apiErr
	}

	details := fmt.Sprintf("failed to %s %s", operation, entity)

	switch {
	case errors.Is(cause, gorm.ErrRecordNotFound):
		e := NewNotFound(entity)
		e.Cause = cause
		return e
	case errors.Is(cause, gorm.ErrForeignKeyViolated):
		return foreignKeyError(entity, cause)
	case errors.Is(cause, gorm.ErrDuplicatedKey):
		return NewConflictError(fmt.Sprintf("%s already exists", entity), cause)
	}

	var pgErr *pgconn.PgError
	if errors.As(cause, &pgErr) {
		switch pgErr.Code {
		case pgForeignKeyViolation:
			return foreignKeyError(entity, cause)
		case pgUniqueViolation:
			return NewConflictError(fmt.Sprintf("%s already exists", entity), cause)
		case pgNotNullViolation, pgInvalidTextRepr, pgNumericOutOfRange, pgStringDataRightTrunc:
			return &ApiErr{
				StatusCode: 400,
				err:        ErrBadRequest,
				Msg:        MsgBadRequest,
				Details:    details,
				Field:      pgErr.ColumnName,
				Cause:      cause,
			}
		}
	}

	if errors.Is(cause, context.Canceled) || errors.Is(cause, context.DeadlineExceeded) {
		return NewInternalErrorWithCause(details+": request cancelled", cause)
	}

	return NewInternalErrorWithCause(details, cause)
}

// A missing parent row surfaces as a foreign key violation on insert.
func foreignKeyError(entity string, cause error) *ApiErr {
	e := NewNotFound("referenced parent of " + entity)
	e.Field = "foreign_key"
	e.Cause = cause
	return e
}
