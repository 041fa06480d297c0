package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Common error sentinel values
var (
	ErrBadRequest        = errors.New("malformed request")
	ErrInvalidQuery      = errors.New("invalid query")
	ErrInvalidPagination = errors.New("invalid pagination")
	ErrNotFound          = errors.New("not found")
	ErrRouteNotFound     = errors.New("route not found")
	ErrConflict          = errors.New("resource conflict")
	ErrInternal          = errors.New("internal server error")
)

// Public messages written to clients as {"msg": ...}.
const (
	MsgBadRequest        = "Bad request"
	MsgInvalidQuery      = "Invalid query"
	MsgInvalidPagination = "Invalid query - limit and p can only be numbers"
	MsgNotFound          = "Not Found"
	MsgRouteNotFound     = "Invalid Endpoint"
	MsgConflict          = "Conflict"
	MsgInternal          = "Internal Server Error"
)

type ApiErr struct {
	StatusCode int
	err        error
	Msg        string // Public message, the only text clients see
	Details    string // Additional details about the error
	Field      string // Field that caused the error (for validation errors)
	Cause      error  // The underlying cause of the error
}

func NewApiErr(statusCode int, sentinel error, msg string) *ApiErr {
	return &ApiErr{
		StatusCode: statusCode,
		err:        sentinel,
		Msg:        msg,
	}
}

// implements error interface. this allows us to pass an instance of ApiErr as an argument of type `error`
func (e *ApiErr) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.err.Error(), e.Details)
	}
	return e.err.Error()
}

// GetFullError returns a recursive error message including all causes
func (e *ApiErr) GetFullError() string {
	msg := e.Error()
	if e.Cause != nil {
		var apiErr *ApiErr
		if errors.As(e.Cause, &apiErr) {
			msg = fmt.Sprintf("%s -> %s", msg, apiErr.GetFullError())
		} else {
			msg = fmt.Sprintf("%s -> %s", msg, e.Cause.Error())
		}
	}
	return msg
}

// this function allows us to do the following:
// err := &ApiErr{StatusCode: ..., err: someSentinelError, Cause: someCause}
// errors.Is(err, someSentinelError) ==> evaluates to true
// errors.Is(err, someCause) ==> evaluates to true
func (e *ApiErr) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.err}
	}
	return []error{e.err, e.Cause}
}

func NewBadRequestError(details string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrBadRequest,
		Msg:        MsgBadRequest,
		Details:    details,
	}
}

func NewBadRequestErrorWithField(field, details string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrBadRequest,
		Msg:        MsgBadRequest,
		Field:      field,
		Details:    details,
	}
}

func NewInvalidQueryError(field, details string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrInvalidQuery,
		Msg:        MsgInvalidQuery,
		Field:      field,
		Details:    details,
	}
}

func NewInvalidPaginationError(field, details string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrInvalidPagination,
		Msg:        MsgInvalidPagination,
		Field:      field,
		Details:    details,
	}
}

func NewNotFound(entity string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusNotFound,
		err:        ErrNotFound,
		Msg:        MsgNotFound,
		Details:    entity + " does not exist",
	}
}

func NewRouteNotFoundError(method, path string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusNotFound,
		err:        ErrRouteNotFound,
		Msg:        MsgRouteNotFound,
		Details:    fmt.Sprintf("no route for %s %s", method, path),
	}
}

func NewConflictError(details string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusConflict,
		err:        ErrConflict,
		Msg:        MsgConflict,
		Details:    details,
		Cause:      cause,
	}
}

func NewInternalErrorWithCause(details string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrInternal,
		Msg:        MsgInternal,
		Details:    details,
		Cause:      cause,
	}
}

func IsBadRequest(err error) bool {
	return errors.Is(err, ErrBadRequest)
}

func IsInvalidQuery(err error) bool {
	return errors.Is(err, ErrInvalidQuery)
}

func IsInvalidPagination(err error) bool {
	return errors.Is(err, ErrInvalidPagination)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsRouteNotFound(err error) bool {
	return errors.Is(err, ErrRouteNotFound)
}

func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}

func IsInternal(err error) bool {
	return errors.Is(err, ErrInternal)
}
