package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// Error carries a trace key for logs, an i18n message key for the
// client-facing text and the HTTP status the response layer should use.
type Error struct {
	trace      string
	messageKey string
	code       int
	cause      error
}

func New(trace, messageKey string, cause error) *Error {
	return &Error{
		trace:      trace,
		messageKey: messageKey,
		code:       http.StatusInternalServerError,
		cause:      cause,
	}
}

func (e *Error) Code(code int) *Error {
	e.code = code
	return e
}

func (e *Error) StatusCode() int {
	return e.code
}

func (e *Error) MessageKey() string {
	return e.messageKey
}

func (e *Error) Error() string {
	if e.cause == nil {
		return fmt.Sprintf("%s: %s", e.trace, e.messageKey)
	}
	return fmt.Sprintf("%s: %s: %s", e.trace, e.messageKey, e.cause.Error())
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Trace prepends a trace segment without touching the message key or code.
// Non *Error values pass through unchanged so sentinel comparisons survive.
func Trace(trace string, err error) error {
	if err == nil {
		return nil
	}

	var appErr *Error
	if stderrors.As(err, &appErr) {
		return &Error{
			trace:      trace + "." + appErr.trace,
			messageKey: appErr.messageKey,
			code:       appErr.code,
			cause:      appErr.cause,
		}
	}
	return err
}

// As is a convenience wrapper so callers don't need both packages imported.
func As(err error) (*Error, bool) {
	var appErr *Error
	ok := stderrors.As(err, &appErr)
	return appErr, ok
}
