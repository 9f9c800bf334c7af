package entity

import (
	"errors"
	"net/http"
)

// APIError is the single error currency of the service. Usecases
// classify failures at the point of detection; handlers only translate
// the carried status into the response envelope.
type APIError struct {
	Status  int
	Message string
	Details []string
}

func (e *APIError) Error() string {
	return e.Message
}

func NewAPIError(status int, message string, details ...string) *APIError {
	return &APIError{Status: status, Message: message, Details: details}
}

func ErrValidation(message string, details ...string) *APIError {
	return NewAPIError(http.StatusBadRequest, message, details...)
}

func ErrAuth(message string, details ...string) *APIError {
	return NewAPIError(http.StatusUnauthorized, message, details...)
}

func ErrNotFound(message string, details ...string) *APIError {
	return NewAPIError(http.StatusNotFound, message, details...)
}

func ErrConflict(message string, details ...string) *APIError {
	return NewAPIError(http.StatusConflict, message, details...)
}

// ErrUpstream reports a failure of the external media store.
func ErrUpstream(message string, details ...string) *APIError {
	return NewAPIError(http.StatusBadGateway, message, details...)
}

func ErrInternal(message string, details ...string) *APIError {
	return NewAPIError(http.StatusInternalServerError, message, details...)
}

// AsAPIError unwraps err into an APIError, falling back to a generic
// internal error so no raw failure ever reaches a client.
func AsAPIError(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return ErrInternal("internal server error")
}
