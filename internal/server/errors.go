package server

import (
	"fmt"
	"net/http"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ErrBadJSON indicates an unparseable request body
type ErrBadJSON struct {
	Cause error
}

func (e *ErrBadJSON) Error() string {
	return fmt.Sprintf("invalid JSON body: %v", e.Cause)
}

func (e *ErrBadJSON) Unwrap() error {
	return e.Cause
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrValidation, *ErrBadJSON:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
