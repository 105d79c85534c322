package playlist

import (
	"errors"
	"net/http"
)

// Error kinds reported in the failure envelope. Every kind renders as a
// 400; the classification travels in the body, not the status code.
const (
	kindValidation = "ValidationError"
	kindNotFound   = "NotFoundError"
	kindOperation  = "OperationError"
)

type apiError struct {
	status int
	msg    string
	kind   string
}

func (e *apiError) Error() string {
	return e.msg
}

func errValidation(msg string) *apiError {
	return &apiError{status: http.StatusBadRequest, msg: msg, kind: kindValidation}
}

func errNotFound(msg string) *apiError {
	return &apiError{status: http.StatusBadRequest, msg: msg, kind: kindNotFound}
}

func errOperation(msg string) *apiError {
	return &apiError{status: http.StatusBadRequest, msg: msg, kind: kindOperation}
}

// IsKind reports whether err is a service error of the given kind.
// Exposed for tests and callers embedding the service directly.
func IsKind(err error, kind string) bool {
	var ae *apiError
	if errors.As(err, &ae) {
		return ae.kind == kind
	}
	return false
}

// Convenience for callers that only care about the classification.
func IsValidation(err error) bool { return IsKind(err, kindValidation) }
func IsNotFound(err error) bool   { return IsKind(err, kindNotFound) }
func IsOperation(err error) bool  { return IsKind(err, kindOperation) }
