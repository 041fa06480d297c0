package errs

import (
	"errors"
	"fmt"
)

// Request & Input-Validation Errors
var (
	ErrMalformedPayload     = errors.New("malformed payload")
	ErrMissingRequiredField = errors.New("missing required field")
	ErrInvalidField         = errors.New("invalid field")
	ErrInvalidIdentifier    = errors.New("invalid identifier")
)

// Each request error is a BadRequest on the wire; the finer sentinel
// stays reachable through Cause for logging and tests.

func NewMalformedPayloadError(payloadType string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: 400,
		err:        ErrBadRequest,
		Msg:        MsgBadRequest,
		Details:    fmt.Sprintf("malformed %s payload", payloadType),
		Field:      "payload",
		Cause:      errors.Join(ErrMalformedPayload, cause),
	}
}

func NewMissingRequiredFieldError(fieldName string) *ApiErr {
	return &ApiErr{
		StatusCode: 400,
		err:        ErrBadRequest,
		Msg:        MsgBadRequest,
		Details:    fmt.Sprintf("missing required field: %s", fieldName),
		Field:      fieldName,
		Cause:      ErrMissingRequiredField,
	}
}

func NewInvalidFieldError(fieldName string, reason string) *ApiErr {
	return &ApiErr{
		StatusCode: 400,
		err:        ErrBadRequest,
		Msg:        MsgBadRequest,
		Details:    fmt.Sprintf("invalid field %s: %s", fieldName, reason),
		Field:      fieldName,
		Cause:      ErrInvalidField,
	}
}

func NewInvalidIdentifierError(param, value string) *ApiErr {
	return &ApiErr{
		StatusCode: 400,
		err:        ErrBadRequest,
		Msg:        MsgBadRequest,
		Details:    fmt.Sprintf("%s %q is not a valid id", param, value),
		Field:      param,
		Cause:      ErrInvalidIdentifier,
	}
}

func IsMissingRequiredFieldError(err error) bool {
	return errors.Is(err, ErrMissingRequiredField)
}

func IsInvalidIdentifierError(err error) bool {
	return errors.Is(err, ErrInvalidIdentifier)
}
