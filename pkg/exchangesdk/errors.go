package exchangesdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Error codes returned in ErrorResponse.Error.
const (
	ErrorCodeInvalidRequest             = "invalid_request"
	ErrorCodeValidation                 = "validation_error"
	ErrorCodeNotFound                   = "not_found"
	ErrorCodeExchangeNotFound           = "exchange_not_found"
	ErrorCodeParticipantNotFound        = "participant_not_found"
	ErrorCodeAssignmentNotFound         = "assignment_not_found"
	ErrorCodeTitleTaken                 = "title_taken"
	ErrorCodeEmailTaken                 = "email_taken"
	ErrorCodeExchangeLocked             = "exchange_locked"
	ErrorCodeInsufficientParticipants   = "insufficient_participants"
	ErrorCodeAssignmentGenerationFailed = "assignment_generation_failed"
	ErrorCodeBrokenCycle                = "broken_cycle"
	ErrorCodeRateLimitExceeded          = "rate_limit_exceeded"
	ErrorCodeServerError                = "server_error"
)

// APIError is a non-2xx response from the service.
type APIError struct {
	// StatusCode is the HTTP status code of the response
	StatusCode int

	// Code is the machine readable error code (e.g., "exchange_locked")
	Code string

	// Description is a human-readable description of the error
	Description string

	// Fields carries per-field validation messages for validation_error
	Fields map[string]string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Description == "" {
		return fmt.Sprintf("%s (HTTP %d)", e.Code, e.StatusCode)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// IsCode reports whether err is an *APIError with the given code.
func IsCode(err error, code string) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Code == code
}

// parseErrorResponse turns a non-2xx response body into an *APIError.
func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return &APIError{
			StatusCode:  resp.StatusCode,
			Code:        errResp.Error,
			Description: errResp.ErrorDescription,
			Fields:      errResp.Fields,
		}
	}

	// Fallback: create generic error from status code
	return &APIError{
		StatusCode:  resp.StatusCode,
		Code:        ErrorCodeServerError,
		Description: fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
