// Copyright (c) 2026 E10-Naganiom.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package apiclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrorKind collapses the backend's heterogeneous failure shapes into the
// console's single error taxonomy.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindNetwork
	KindUnauthenticated
	KindForbidden
	KindNotFound
	KindValidation
)

func (k ErrorKind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindUnauthenticated:
		return "unauthenticated"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindValidation:
		return "validation"
	default:
		return "unknown"
	}
}

// Error is the typed error every apiclient call returns on failure.
// Messages holds backend-provided validation text verbatim; it may be empty
// for transport failures.
type Error struct {
	Kind     ErrorKind
	Status   int // HTTP status, 0 for network errors
	Messages []string
	cause    error
}

func (e *Error) Error() string {
	if len(e.Messages) > 0 {
		return strings.Join(e.Messages, ", ")
	}
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.cause)
	}
	return fmt.Sprintf("%s (status %d)", e.Kind, e.Status)
}

func (e *Error) Unwrap() error { return e.cause }

// IsKind reports whether err is (or wraps) an apiclient Error of the given
// kind.
func IsKind(err error, kind ErrorKind) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == kind
}

// wireError matches the backend's error body. message may be a plain string
// or an array of validation messages.
type wireError struct {
	Error   string          `json:"error"`
	Message json.RawMessage `json:"message"`
}

// classify maps an HTTP status plus response body onto the taxonomy.
func classify(status int, body []byte) *Error {
	e := &Error{Status: status, Messages: decodeMessages(body)}

	switch status {
	case 401:
		e.Kind = KindUnauthenticated
	case 403:
		e.Kind = KindForbidden
	case 404:
		e.Kind = KindNotFound
	case 400, 409:
		e.Kind = KindValidation
	default:
		e.Kind = KindUnknown
	}

	return e
}

// decodeMessages extracts whatever the backend put in its message field.
func decodeMessages(body []byte) []string {
	var we wireError
	if err := json.Unmarshal(body, &we); err != nil {
		return nil
	}

	if len(we.Message) > 0 {
		var single string
		if err := json.Unmarshal(we.Message, &single); err == nil && single != "" {
			return []string{single}
		}
		var many []string
		if err := json.Unmarshal(we.Message, &many); err == nil && len(many) > 0 {
			return many
		}
	}

	if we.Error != "" {
		return []string{we.Error}
	}
	return nil
}

// networkError wraps a transport failure (no HTTP response at all).
func networkError(err error) *Error {
	return &Error{Kind: KindNetwork, cause: err}
}
