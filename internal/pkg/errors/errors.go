package errors

import (
	"errors"
	"net/http"
)

// ErrorResp carries a human message plus an HTTP-like code. Usecase and
// repository errors are built from the constructors below and propagate to
// the handler boundary unchanged, where helpers.RespError maps them onto
// the response envelope.
type ErrorResp struct {
	Message string
	Code    int
}

func (e *ErrorResp) Error() string {
	return e.Message
}

func BadRequest(message string) error {
	return &ErrorResp{Message: message, Code: http.StatusBadRequest}
}

func UnauthorizedError(message string) error {
	return &ErrorResp{Message: message, Code: http.StatusUnauthorized}
}

func ForbiddenError(message string) error {
	return &ErrorResp{Message: message, Code: http.StatusForbidden}
}

func NotFound(message string) error {
	return &ErrorResp{Message: message, Code: http.StatusNotFound}
}

// Conflict covers seat contention and state-machine conflicts such as
// double-selected seats or cancellation of a non-cancellable booking.
func Conflict(message string) error {
	return &ErrorResp{Message: message, Code: http.StatusConflict}
}

// UnprocessableEntity is used for affordability failures (insufficient
// wallet balance, insufficient loyalty points).
func UnprocessableEntity(message string) error {
	return &ErrorResp{Message: message, Code: http.StatusUnprocessableEntity}
}

func InternalServerError(message string) error {
	return &ErrorResp{Message: message, Code: http.StatusInternalServerError}
}

// Code extracts the HTTP-like code from an error, defaulting to 500 for
// anything that is not an *ErrorResp.
func Code(err error) int {
	var e *ErrorResp
	if errors.As(err, &e) {
		return e.Code
	}
	return http.StatusInternalServerError
}
