package util

import (
	"fmt"
	"net/http"
)

// HTTPError is an error carrying the status code to report and the
// description for the error envelope. Description is either a plain
// string or a structured value (a schema.FieldError for validation
// failures).
type HTTPError struct {
	Status      int
	Description any
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %v", e.Status, e.Description)
}

func BadRequest(description any) *HTTPError {
	return &HTTPError{Status: http.StatusBadRequest, Description: description}
}

func Unauthorized(description string) *HTTPError {
	return &HTTPError{Status: http.StatusUnauthorized, Description: description}
}

func Forbidden(description string) *HTTPError {
	return &HTTPError{Status: http.StatusForbidden, Description: description}
}

func NotFound(description string) *HTTPError {
	return &HTTPError{Status: http.StatusNotFound, Description: description}
}

func Conflict(description string) *HTTPError {
	return &HTTPError{Status: http.StatusConflict, Description: description}
}
