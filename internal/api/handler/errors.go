package handler

import (
	"fmt"
	"net/http"
)

// APIError is a handler-level failure rendered verbatim by the HTTP error
// handler as {"success": false, "error": Message, "code": Code}.
type APIError struct {
	Status  int
	Code    string
	Message string
	Details map[string]any
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newAPIError(status int, code, msg string) *APIError {
	return &APIError{Status: status, Code: code, Message: msg}
}

func errInvalidPayload() *APIError {
	return newAPIError(http.StatusBadRequest, "INVALID_PAYLOAD", "invalid payload")
}

func errInvalidParameter(name, reason string) *APIError {
	return newAPIError(http.StatusBadRequest, "INVALID_PARAMETER", fmt.Sprintf("query parameter %s %s", name, reason))
}
