// Package apperr classifies pipeline failures so each boundary can decide how
// to report them.
package apperr

import (
	"errors"
	"net/http"

	"github.com/rotisserie/eris"
)

// Kind is the category of a pipeline failure.
type Kind string

const (
	KindUnknown           Kind = ""
	KindInvalidInput      Kind = "invalid_input"
	KindFetchFailed       Kind = "fetch_failed"
	KindParseFailed       Kind = "parse_failed"
	KindExternalAPIFailed Kind = "external_api_failed"
)

// Error attaches a Kind to an underlying error.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a classified error with an eris-wrapped message.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Err: eris.New(msg)}
}

// Wrap classifies err, adding msg as context. Returns nil if err is nil.
func Wrap(kind Kind, err error, msg string) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Err: eris.Wrap(err, msg)}
}

// InvalidInput reports a request the pipeline refuses before doing any work.
func InvalidInput(msg string) *Error { return New(KindInvalidInput, msg) }

// FetchFailed classifies a network or status failure.
func FetchFailed(err error, msg string) error { return Wrap(KindFetchFailed, err, msg) }

// ParseFailed classifies a markup failure that could not be degraded.
func ParseFailed(err error, msg string) error { return Wrap(KindParseFailed, err, msg) }

// ExternalAPIFailed classifies an LLM provider failure.
func ExternalAPIFailed(err error, msg string) error { return Wrap(KindExternalAPIFailed, err, msg) }

// KindOf returns the Kind of the first classified error in err's chain.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindUnknown
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// HTTPStatus maps a Kind to the status code the API reports it with.
// External API failures degrade into a normal answer, so they stay 200.
func HTTPStatus(kind Kind) int {
	switch kind {
	case KindInvalidInput, KindFetchFailed, KindParseFailed:
		return http.StatusBadRequest
	case KindExternalAPIFailed:
		return http.StatusOK
	default:
		return http.StatusInternalServerError
	}
}
