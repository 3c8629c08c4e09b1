// Package errs defines the error type returned by services for conditions the
// client caused (unknown user, duplicate email, wrong password). Controllers
// turn an *HTTPError into a response with its Status; any other error is a 500.
package errs

import (
	"errors"
	"net/http"
	"strings"
)

// HTTPError is a client-facing failure with a stable machine code.
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
}

func (e *HTTPError) Error() string {
	return e.Message
}

// Is matches any *HTTPError with the same Code, so errors.Is(err, errs.NotFound)
// works regardless of the message.
func (e *HTTPError) Is(target error) bool {
	t, ok := target.(*HTTPError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// Sentinels for errors.Is comparisons.
var (
	NotFound      = newError(http.StatusNotFound, "")
	Conflict      = newError(http.StatusConflict, "")
	Unauthorized  = newError(http.StatusUnauthorized, "")
	Unprocessable = newError(http.StatusUnprocessableEntity, "")
)

func NewNotFoundError(message string) *HTTPError {
	return newError(http.StatusNotFound, message)
}

func NewConflictError(message string) *HTTPError {
	return newError(http.StatusConflict, message)
}

func NewUnauthorizedError(message string) *HTTPError {
	return newError(http.StatusUnauthorized, message)
}

func NewUnprocessableError(message string) *HTTPError {
	return newError(http.StatusUnprocessableEntity, message)
}

// As unwraps err to an *HTTPError if it carries one.
func As(err error) (*HTTPError, bool) {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr, true
	}
	return nil, false
}

func newError(status int, message string) *HTTPError {
	return &HTTPError{
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(status)),
		Message: message,
		Status:  status,
	}
}

// MakeUpperCaseWithUnderscores turns "Not Found" into "NOT_FOUND".
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
