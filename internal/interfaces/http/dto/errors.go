package dto

import "net/http"

// Error codes surfaced by the API. Domain errors carry these codes
// verbatim; the map below decides the HTTP status.
const (
	// ErrCodeValidationFailed is used when a submission fails validation
	ErrCodeValidationFailed = "VALIDATION_FAILED"
	// ErrCodeUnknownOrder is used when a referenced order does not exist
	ErrCodeUnknownOrder = "UNKNOWN_ORDER"
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "NOT_FOUND"
	// ErrCodeInvalidInput is used for malformed or unparseable input
	ErrCodeInvalidInput = "INVALID_INPUT"
	// ErrCodeStoreUnavailable is used when the row store cannot be reached
	ErrCodeStoreUnavailable = "STORE_UNAVAILABLE"
	// ErrCodeInternal is used for unexpected internal errors
	ErrCodeInternal = "INTERNAL_ERROR"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeValidationFailed: http.StatusBadRequest,
	ErrCodeInvalidInput:     http.StatusBadRequest,
	ErrCodeUnknownOrder:     http.StatusNotFound,
	ErrCodeNotFound:         http.StatusNotFound,
	ErrCodeStoreUnavailable: http.StatusServiceUnavailable,
	ErrCodeInternal:         http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Returns 500 Internal Server Error if the error code is not mapped.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
