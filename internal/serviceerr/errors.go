// Package serviceerr holds the error model shared by the dashboard core and
// its HTTP surface.
package serviceerr

import "net/http"

type Code string

const (
	CodeInvalidRequest Code = "invalid_request"
	CodeUnauthorized   Code = "unauthorized"
	CodeInvalidCSRF    Code = "invalid_csrf_token"
	CodeNotFound       Code = "not_found"
	CodeFetchFailed    Code = "fetch_failed"
	CodeUnknown        Code = "unknown"
)

type Error struct {
	Err         Code
	Description string
}

func (e *Error) Error() string {
	if e.Description == "" {
		return string(e.Err)
	}

	return string(e.Err) + ": " + e.Description
}

// HTTPStatus maps the error code onto the status the API responds with.
func (e *Error) HTTPStatus() int {
	switch e.Err {
	case CodeInvalidRequest:
		return http.StatusBadRequest
	case CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeInvalidCSRF:
		return http.StatusForbidden
	case CodeNotFound:
		return http.StatusNotFound
	case CodeFetchFailed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

var (
	ErrInvalidRequest = &Error{Err: CodeInvalidRequest}
	ErrUnauthorized   = &Error{Err: CodeUnauthorized, Description: "authentication required"}
	ErrInvalidCSRF    = &Error{Err: CodeInvalidCSRF, Description: "missing or invalid csrf token"}
	ErrNotFound       = &Error{Err: CodeNotFound, Description: "not found"}
	ErrFetchFailed    = &Error{Err: CodeFetchFailed, Description: "employee data unavailable"}
	ErrUnknown        = &Error{Err: CodeUnknown, Description: "unknown error"}
)
