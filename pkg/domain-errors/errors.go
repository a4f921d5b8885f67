// Package domainerrors defines the coded error type shared across the service.
//
// Every failure that crosses a package boundary carries a Code so the HTTP
// layer can map it to a status and an error envelope without inspecting
// message strings. Per-sub-requirement judge failures are deliberately NOT
// represented as errors at the service boundary; they are recorded as
// Error-status verdicts so one bad judgment never aborts a report.
package domainerrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code identifies a class of failure.
type Code string

const (
	// CodeBadRequest covers malformed inbound requests (missing upload field,
	// wrong content type).
	CodeBadRequest Code = "bad_request"

	// CodeValidation covers requests that decode but fail semantic checks.
	CodeValidation Code = "validation_error"

	// CodeExtraction covers documents that cannot be read as a PDF.
	// User-correctable, so it maps to 400.
	CodeExtraction Code = "extraction_error"

	// CodeConfiguration covers missing judge configuration. Fatal for the
	// whole request, surfaced before any document work begins.
	CodeConfiguration Code = "configuration_error"

	// CodeJudgeUnavailable covers failures of the external judge call itself.
	// These never surface over HTTP; they become Error-status verdicts.
	CodeJudgeUnavailable Code = "judge_unavailable"

	// CodeParse covers malformed judge completions. Same isolation contract
	// as CodeJudgeUnavailable.
	CodeParse Code = "parse_error"

	// CodeNotFound covers lookups of unknown resources.
	CodeNotFound Code = "not_found"

	// CodeInternal is the catch-all surfaced as a generic 500.
	CodeInternal Code = "internal_error"
)

// Error is the coded error type. Message is safe to log; whether it is safe
// to return to callers is decided by the HTTP layer per code.
type Error struct {
	Code    Code
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// New creates a coded error without a cause.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap attaches a code and message to an underlying cause.
func Wrap(err error, code Code, message string) *Error {
	return &Error{Code: code, Message: message, cause: err}
}

// CodeOf extracts the Code from an error chain, defaulting to CodeInternal.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}

// MessageOf extracts the coded message from an error chain. Unrecognized
// errors yield a generic message so raw internals never leak to clients.
func MessageOf(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Message
	}
	return "internal error"
}

// ToHTTPStatus maps a Code to the HTTP status the transport layer should use.
func ToHTTPStatus(code Code) int {
	switch code {
	case CodeBadRequest, CodeValidation, CodeExtraction:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeConfiguration, CodeJudgeUnavailable, CodeParse, CodeInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
