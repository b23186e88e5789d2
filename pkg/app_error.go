package pkg

import "net/http"

// AppError is the error shape returned by HTTP handlers.
//
// Code is a stable machine-readable identifier; Message is safe to expose.
// Err keeps the underlying cause for logging and is never rendered.
type AppError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error
	Details    map[string][]string
}

// HTTPError is the JSON body rendered for an AppError.
type HTTPError struct {
	Success bool                `json:"success"`
	Code    string              `json:"code"`
	Error   string              `json:"error"`
	Details map[string][]string `json:"details,omitempty"`
}

func NewDomainError(code, message string, err error, status int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: status}
}

func NewDomainErrorSimple(code, message string, status int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: status}
}

// WithDetails returns a copy of e carrying per-field messages.
func (e *AppError) WithDetails(details map[string][]string) *AppError {
	cp := *e
	cp.Details = details
	return &cp
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{
		Success: false,
		Code:    e.Code,
		Error:   e.Message,
		Details: e.Details,
	}
}

// IsServerError reports whether the error maps to a 5xx response.
func (e *AppError) IsServerError() bool {
	return e.HTTPStatus >= http.StatusInternalServerError
}
