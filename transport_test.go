package errpipeline

import (
	"context"
	"errors"
	"testing"
)

func TestFromTransportCancellation(t *testing.T) {
	e := FromTransport(context.Canceled)
	if e.Kind != KindNetworkCancelled {
		t.Errorf("expected kind %s, got %s", KindNetworkCancelled, e.Kind)
	}
	if e.Message != "Request cancelled, please retry." {
		t.Errorf("unexpected message %q", e.Message)
	}
	if e.Domain != DomainNetwork {
		t.Errorf("expected domain %s, got %s", DomainNetwork, e.Domain)
	}
}

func TestFromTransportAbortByName(t *testing.T) {
	e := FromTransport(errors.New("AbortError: the operation was aborted"))
	if e.Kind != KindNetworkCancelled {
		t.Errorf("expected kind %s, got %s", KindNetworkCancelled, e.Kind)
	}
}

func TestFromTransportConnectivity(t *testing.T) {
	e := FromTransport(errors.New("dial tcp: connection refused"))
	if e.Kind != KindNetworkError {
		t.Errorf("expected kind %s, got %s", KindNetworkError, e.Kind)
	}
	if e.Retryable == nil || !*e.Retryable {
		t.Error("network errors should be retryable")
	}
	if e.Cause == nil {
		t.Error("cause should be preserved")
	}
}

type fakeNetError struct{}

func (fakeNetError) Error() string   { return "socket gone" }
func (fakeNetError) Timeout() bool   { return true }
func (fakeNetError) Temporary() bool { return true }

func TestIsTransportFailure(t *testing.T) {
	if !isTransportFailure(fakeNetError{}) {
		t.Error("net.Error values should classify as transport failures")
	}
	if !isTransportFailure(errors.New("no such host")) {
		t.Error("vocabulary match should classify as transport failure")
	}
	if isTransportFailure(errors.New("duplicate key value")) {
		t.Error("storage errors should not classify as transport failures")
	}
	if isTransportFailure(nil) {
		t.Error("nil is not a transport failure")
	}
}

func TestIsCancellationWrapped(t *testing.T) {
	wrapped := errors.Join(errors.New("outer"), context.Canceled)
	if !isCancellation(wrapped) {
		t.Error("wrapped context.Canceled should classify as cancellation")
	}
}
