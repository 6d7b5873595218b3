package response

import (
	"errors"
	"net/http"
)

// Error is an error with the HTTP status it maps to. Reason, when set, is a
// stable machine-readable code clients can switch on.
type Error struct {
	Code   int
	Reason string
	Err    error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	var t *Error
	ok := errors.As(target, &t)
	if !ok {
		return false
	}
	return e.Code == t.Code && e.Err.Error() == t.Err.Error()
}

func NewError(code int, err string) error {
	return &Error{Code: code, Err: errors.New(err)}
}

func NewErrorWithReason(code int, reason string, err string) error {
	return &Error{Code: code, Reason: reason, Err: errors.New(err)}
}

// StatusCode returns the HTTP status carried by err, or 500 when err is not a *Error.
func StatusCode(err error) int {
	var respErr *Error
	if errors.As(err, &respErr) {
		return respErr.Code
	}
	return http.StatusInternalServerError
}
