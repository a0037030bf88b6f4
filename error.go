// Package errpipeline normalizes heterogeneous failures into a single
// canonical error value, classifies them against a closed (but
// string-extensible) taxonomy, deduplicates user-facing notifications, and
// records every occurrence for offline diagnosis.
// It standardizes kind/message/domain/severity/recovery/retryable and
// includes mappers for storage, identity-provider, validation, transport,
// and server-envelope failure shapes.
package errpipeline

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is the canonical error value flowing through the whole pipeline.
//
// Everything downstream of the source mappers (journal, notifier, reporter,
// calling code) consumes this one type; nothing is ever thrown past it.
type Error struct {
	Kind        Kind           `json:"kind"`
	Message     string         `json:"message"`
	Status      int            `json:"status,omitempty"`
	Domain      Domain         `json:"domain"`
	Severity    Severity       `json:"severity"`
	Recovery    RecoveryAction `json:"recovery_action"`
	Retryable   *bool          `json:"retryable,omitempty"`
	Fingerprint string         `json:"fingerprint"`
	Details     string         `json:"details,omitempty"`
	RequestID   string         `json:"request_id,omitempty"`

	// Source mirrors Domain for older call sites; Complete keeps them in sync.
	Source Domain `json:"source"`

	// Not serialized:
	Cause error `json:"-"`
	salt  string
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// Generic fallbacks used when neither the partial nor the catalog supplies a
// field.
const genericMessage = "Unexpected error."

// Complete resolves a partial error into a canonical one. Per field the
// resolution order is: explicit value on the partial, catalog default for the
// kind, generic fallback. The fingerprint is computed from the final
// (kind, domain, status) unless the partial already carries one, so feeding a
// completed error back in is a no-op.
func Complete(partial Error) *Error {
	e := partial
	if e.Kind == "" {
		e.Kind = KindUnknown
	}
	entry, ok := Lookup(e.Kind)
	if e.Message == "" {
		if ok && entry.Message != "" {
			e.Message = entry.Message
		} else {
			e.Message = genericMessage
		}
	}
	if e.Domain == "" {
		if ok && entry.Domain != "" {
			e.Domain = entry.Domain
		} else {
			e.Domain = DomainUnknown
		}
	}
	if e.Severity == "" {
		if ok && entry.Severity != "" {
			e.Severity = entry.Severity
		} else {
			e.Severity = SeverityError
		}
	}
	if e.Recovery == "" {
		if ok && entry.Recovery != "" {
			e.Recovery = entry.Recovery
		} else {
			e.Recovery = RecoveryNone
		}
	}
	if e.Retryable == nil && ok {
		e.Retryable = entry.Retryable
	}
	if e.Fingerprint == "" {
		e.Fingerprint = FingerprintOf(e.Kind, e.Domain, e.Status, e.salt)
	}
	e.Source = e.Domain
	return &e
}

// New creates a canonical error with the given kind and message.
// An empty message takes the catalog default for the kind.
func New(kind Kind, msg string) *Error {
	return Complete(Error{Kind: kind, Message: msg})
}

// Wrap creates a canonical error that retains an underlying cause for
// journaling and debugging.
func Wrap(kind Kind, msg string, cause error) *Error {
	e := Complete(Error{Kind: kind, Message: msg, Cause: cause})
	return e
}

// WithStatus sets the originating status code and recomputes the fingerprint.
func (e *Error) WithStatus(status int) *Error {
	if status != 0 && status != e.Status {
		e.Status = status
		e.Fingerprint = FingerprintOf(e.Kind, e.Domain, e.Status, e.salt)
	}
	return e
}

// WithDetails attaches a raw provider message. Details are diagnostic only
// and never shown to end users directly.
func (e *Error) WithDetails(details string) *Error {
	e.Details = details
	return e
}

// WithRequestID attaches a correlation id for a trackable server request.
func (e *Error) WithRequestID(id string) *Error {
	e.RequestID = id
	return e
}

// WithRetryable sets the retryability hint. Absence means unknown, so this
// is the only way to make it definite.
func (e *Error) WithRetryable(v bool) *Error {
	e.Retryable = &v
	return e
}

// WithCause attaches the original thrown value.
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// WithSalt re-fingerprints the error with a caller-chosen salt, letting two
// otherwise-identical errors dedup independently per call context.
func (e *Error) WithSalt(salt string) *Error {
	e.salt = salt
	e.Fingerprint = FingerprintOf(e.Kind, e.Domain, e.Status, salt)
	return e
}

// As reports whether err is (or wraps) a canonical error. This nominal type
// check is the only supported way to detect "already normalized".
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// Is checks if an error carries the given kind.
func Is(err error, kind Kind) bool {
	if e, ok := As(err); ok {
		return e.Kind == kind
	}
	return false
}

// HTTPStatus returns the originating status when present, otherwise a
// domain-derived default, for integrations that write the error back out.
func (e *Error) HTTPStatus() int {
	if e.Status != 0 {
		return e.Status
	}
	switch e.Domain {
	case DomainAuth:
		return http.StatusUnauthorized
	case DomainValidation:
		return http.StatusUnprocessableEntity
	case DomainNetwork:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
