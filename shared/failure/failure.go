package failure

import (
	"errors"
	"fmt"
	"net/http"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Error returns the error message.
func (e *Failure) Error() string {
	return e.Message
}

// NotFound returns a new Failure for a missing entity, e.g. "hotel not found: H42".
func NotFound(entityName, id string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: fmt.Sprintf("%s not found: %s", entityName, id),
	}
}

// Conflict returns a new Failure for operations that clash with current state:
// duplicate ids, insufficient inventory, invalid state transitions, blocked deletes.
func Conflict(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: message,
	}
}

// Validation returns a new Failure for malformed input on construction or merge.
func Validation(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		}
	}

	return nil
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// IsNotFound reports whether err is a missing-entity failure.
func IsNotFound(err error) bool {
	return GetCode(err) == http.StatusNotFound
}

// IsConflict reports whether err is a state-conflict failure.
func IsConflict(err error) bool {
	return GetCode(err) == http.StatusConflict
}

// IsValidation reports whether err is a malformed-input failure.
func IsValidation(err error) bool {
	return GetCode(err) == http.StatusBadRequest
}
