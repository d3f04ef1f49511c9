// Package apperr carries the error taxonomy shared by services and handlers:
// bad input, missing entities, and everything else.
package apperr

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindBadRequest Kind = iota
	KindNotFound
	KindInternal
)

type Error struct {
	Kind    Kind
	Message string
	Details string
}

func (e *Error) Error() string {
	if e.Details != "" {
		return e.Message + ": " + e.Details
	}
	return e.Message
}

func BadRequest(msg string) *Error {
	return &Error{Kind: KindBadRequest, Message: msg}
}

func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func NotFoundf(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// Internal wraps persistence and other unexpected failures. The original
// cause goes into Details so the response body stays generic-but-debuggable.
func Internal(msg string, cause error) *Error {
	e := &Error{Kind: KindInternal, Message: msg}
	if cause != nil {
		e.Details = cause.Error()
	}
	return e
}

// KindOf classifies any error; non-apperr errors count as internal.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindInternal
}
