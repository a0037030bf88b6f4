package errpipeline

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestCompleteFillsCatalogDefaults(t *testing.T) {
	e := Complete(Error{Kind: KindConflict})

	if e.Message != "Update conflict. Reload and retry." {
		t.Errorf("expected catalog message, got %q", e.Message)
	}
	if e.Domain != DomainStorage {
		t.Errorf("expected domain %s, got %s", DomainStorage, e.Domain)
	}
	if e.Severity != SeverityWarning {
		t.Errorf("expected severity %s, got %s", SeverityWarning, e.Severity)
	}
	if e.Recovery != RecoveryReload {
		t.Errorf("expected recovery %s, got %s", RecoveryReload, e.Recovery)
	}
	if e.Retryable != nil {
		t.Error("conflict retryability should stay unknown")
	}
	if e.Fingerprint == "" {
		t.Error("fingerprint should be computed")
	}
	if e.Source != e.Domain {
		t.Errorf("source alias %s out of sync with domain %s", e.Source, e.Domain)
	}
}

func TestCompleteGenericFallback(t *testing.T) {
	e := Complete(Error{Kind: Kind("SOME_FUTURE_KIND")})

	if e.Message != "Unexpected error." {
		t.Errorf("expected generic message, got %q", e.Message)
	}
	if e.Domain != DomainUnknown {
		t.Errorf("expected domain %s, got %s", DomainUnknown, e.Domain)
	}
	if e.Severity != SeverityError {
		t.Errorf("expected severity %s, got %s", SeverityError, e.Severity)
	}
	if e.Recovery != RecoveryNone {
		t.Errorf("expected recovery %s, got %s", RecoveryNone, e.Recovery)
	}
	if e.Kind != Kind("SOME_FUTURE_KIND") {
		t.Errorf("unknown kind must round-trip, got %s", e.Kind)
	}
}

func TestCompleteEmptyKind(t *testing.T) {
	e := Complete(Error{})
	if e.Kind != KindUnknown {
		t.Errorf("expected kind %s, got %s", KindUnknown, e.Kind)
	}
}

func TestCompleteExplicitValuesWin(t *testing.T) {
	e := Complete(Error{
		Kind:     KindConflict,
		Message:  "custom message",
		Domain:   DomainClient,
		Severity: SeverityFatal,
		Recovery: RecoveryContactSupport,
	})

	if e.Message != "custom message" {
		t.Errorf("explicit message overwritten, got %q", e.Message)
	}
	if e.Domain != DomainClient {
		t.Errorf("explicit domain overwritten, got %s", e.Domain)
	}
	if e.Severity != SeverityFatal {
		t.Errorf("explicit severity overwritten, got %s", e.Severity)
	}
	if e.Recovery != RecoveryContactSupport {
		t.Errorf("explicit recovery overwritten, got %s", e.Recovery)
	}
}

func TestCompleteIdempotent(t *testing.T) {
	partials := []Error{
		{},
		{Kind: KindConflict},
		{Kind: KindNetworkError, Status: 502, Details: "gateway"},
		{Kind: Kind("CUSTOM"), Message: "m", Domain: DomainEdge, Retryable: Bool(true)},
	}
	for _, p := range partials {
		once := Complete(p)
		twice := Complete(*once)
		if *once != *twice {
			t.Errorf("Complete not idempotent for %+v: %+v vs %+v", p, once, twice)
		}
	}
}

func TestCompletePreservesFingerprint(t *testing.T) {
	e := Complete(Error{Kind: KindConflict, Fingerprint: "fp1:explicit"})
	if e.Fingerprint != "fp1:explicit" {
		t.Errorf("explicit fingerprint overwritten, got %q", e.Fingerprint)
	}
}

func TestNewUsesCatalogMessage(t *testing.T) {
	e := New(KindNotFound, "")
	if e.Message != "The requested item was not found." {
		t.Errorf("expected catalog message, got %q", e.Message)
	}
}

func TestWrapRetainsCause(t *testing.T) {
	cause := errors.New("duplicate key")
	e := Wrap(KindConflict, "", cause)

	if e.Cause != cause {
		t.Error("cause should be preserved")
	}
	if !errors.Is(e, cause) {
		t.Error("errors.Is should reach the cause")
	}
}

func TestErrorString(t *testing.T) {
	e := New(KindConflict, "boom")
	if e.Error() != "CONFLICT: boom" {
		t.Errorf("unexpected Error() output %q", e.Error())
	}

	wrapped := Wrap(KindConflict, "boom", errors.New("root"))
	if wrapped.Error() != "CONFLICT: boom (root)" {
		t.Errorf("unexpected Error() output %q", wrapped.Error())
	}

	var nilErr *Error
	if nilErr.Error() != "<nil>" {
		t.Errorf("nil receiver should render <nil>, got %q", nilErr.Error())
	}
}

func TestAsDetectsCanonical(t *testing.T) {
	e := New(KindNotFound, "")

	got, ok := As(e)
	if !ok || got != e {
		t.Error("As should detect a canonical error")
	}

	wrapped := fmt.Errorf("outer: %w", e)
	got, ok = As(wrapped)
	if !ok || got != e {
		t.Error("As should unwrap to the canonical error")
	}

	if _, ok := As(errors.New("plain")); ok {
		t.Error("As should reject a plain error")
	}
}

func TestIs(t *testing.T) {
	e := New(KindRateLimited, "")
	if !Is(e, KindRateLimited) {
		t.Error("Is should match the kind")
	}
	if Is(e, KindConflict) {
		t.Error("Is should not match a different kind")
	}
	if Is(errors.New("plain"), KindConflict) {
		t.Error("Is should reject non-canonical errors")
	}
}

func TestWithStatusRecomputesFingerprint(t *testing.T) {
	e := New(KindNetworkError, "")
	before := e.Fingerprint
	e.WithStatus(503)
	if e.Fingerprint == before {
		t.Error("fingerprint should change with status")
	}
	if e.Status != 503 {
		t.Errorf("expected status 503, got %d", e.Status)
	}
}

func TestWithSaltChangesFingerprint(t *testing.T) {
	a := New(KindAuthError, "")
	b := New(KindAuthError, "").WithSalt("login-form")
	if a.Fingerprint == b.Fingerprint {
		t.Error("salt should change the fingerprint")
	}
}

func TestWithRetryable(t *testing.T) {
	e := New(KindDBWriteFailed, "").WithRetryable(true)
	if e.Retryable == nil || !*e.Retryable {
		t.Error("retryable should be definite true")
	}
}

func TestHTTPStatus(t *testing.T) {
	if got := New(KindConflict, "").WithStatus(409).HTTPStatus(); got != 409 {
		t.Errorf("expected origin status 409, got %d", got)
	}
	if got := New(KindAuthRequired, "").HTTPStatus(); got != http.StatusUnauthorized {
		t.Errorf("expected 401 for auth domain, got %d", got)
	}
	if got := New(KindValidationError, "").HTTPStatus(); got != http.StatusUnprocessableEntity {
		t.Errorf("expected 422 for validation domain, got %d", got)
	}
	if got := New(KindUnknown, "").HTTPStatus(); got != http.StatusInternalServerError {
		t.Errorf("expected 500 default, got %d", got)
	}
}
