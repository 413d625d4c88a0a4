package client

import (
	"errors"
	"fmt"
)

// ErrorKind classifies an APIError.
type ErrorKind string

const (
	// KindStatus is a response status outside 200-399.
	KindStatus ErrorKind = "status"

	// KindMissingContentType is a successful response without Content-Type.
	KindMissingContentType ErrorKind = "missing_content_type"

	// KindUnsupportedContentType is a successful response whose Content-Type
	// is neither JSON nor a raw file type.
	KindUnsupportedContentType ErrorKind = "unsupported_content_type"

	// KindDecode is a body that is malformed for its declared content type.
	KindDecode ErrorKind = "decode"

	// KindNotModifiedWithoutCache is a 304 reply with no stored payload.
	KindNotModifiedWithoutCache ErrorKind = "not_modified_without_cache"

	// KindTransport is a failure to send the request or read the response.
	KindTransport ErrorKind = "transport"

	// KindInvalidTarget is a decode target that cannot hold the payload.
	KindInvalidTarget ErrorKind = "invalid_target"

	// KindInvalidArgument is a call rejected before any request was sent.
	KindInvalidArgument ErrorKind = "invalid_argument"
)

// Sentinels for errors.Is. An *APIError matches the sentinel of its kind.
var (
	ErrStatus                  = &APIError{Kind: KindStatus, Message: "unexpected response status"}
	ErrMissingContentType      = &APIError{Kind: KindMissingContentType, Message: "response has no Content-Type"}
	ErrUnsupportedContentType  = &APIError{Kind: KindUnsupportedContentType, Message: "unsupported content type"}
	ErrDecode                  = &APIError{Kind: KindDecode, Message: "decode response"}
	ErrNotModifiedWithoutCache = &APIError{Kind: KindNotModifiedWithoutCache, Message: "not modified but no cached response"}
	ErrTransport               = &APIError{Kind: KindTransport, Message: "transport failure"}
	ErrInvalidTarget           = &APIError{Kind: KindInvalidTarget, Message: "invalid decode target"}
	ErrInvalidArgument         = &APIError{Kind: KindInvalidArgument, Message: "invalid argument"}
)

// APIError is the single error type returned by Client operations.
type APIError struct {
	Kind ErrorKind

	// StatusCode and Body are set for KindStatus.
	StatusCode int
	Body       string

	Message string
	Err     error
}

// NewError returns an error carrying only a message.
func NewError(kind ErrorKind, message string) *APIError {
	return &APIError{Kind: kind, Message: message}
}

// NewStatusError returns the error for a failed response status.
func NewStatusError(statusCode int, body string) *APIError {
	return &APIError{Kind: KindStatus, StatusCode: statusCode, Body: body}
}

// WrapError returns an error with a message and an underlying cause.
func WrapError(kind ErrorKind, message string, err error) *APIError {
	return &APIError{Kind: kind, Message: message, Err: err}
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Kind == KindStatus && e.StatusCode != 0 {
		return fmt.Sprintf("Code [%d] : %s", e.StatusCode, e.Body)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *APIError) Unwrap() error {
	return e.Err
}

// Is matches sentinels by kind.
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// StatusCode returns the HTTP status of a status error, or 0.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Kind == KindStatus {
		return apiErr.StatusCode
	}
	return 0
}

func kindOf(err error) ErrorKind {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return KindTransport
}
