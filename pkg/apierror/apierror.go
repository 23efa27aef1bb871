package apierror

import "fmt"

// APIError carries an error code, a user-facing message and the HTTP status
// the handler layer should respond with.
type APIError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Details    string `json:"details,omitempty"`
	HTTPStatus int    `json:"-"`
}

func (e *APIError) Error() string {
	if e == nil {
		return ""
	}

	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}

	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func New(code string, message string, details string, status int) *APIError {
	return &APIError{Code: code, Message: message, Details: details, HTTPStatus: status}
}

// Validation builds a 400 VALIDATION_ERROR. The details field names the
// offending request field.
func Validation(message string, field string) *APIError {
	return &APIError{Code: "VALIDATION_ERROR", Message: message, Details: field, HTTPStatus: 400}
}
