package errpipeline

import (
	"context"
	"errors"
	"net"
	"strings"
)

// transportVocabulary is the substring heuristic that marks a generic
// runtime error as a connectivity failure.
var transportVocabulary = []string{
	"connection refused",
	"connection reset",
	"broken pipe",
	"no such host",
	"network is unreachable",
	"i/o timeout",
	"failed to fetch",
	"tls handshake",
	"eof",
}

// cancelVocabulary marks upstream cancellation signals by name.
var cancelVocabulary = []string{
	"context canceled",
	"operation was canceled",
	"abort",
}

// FromTransport classifies a raw network/transport failure. Cancellation is
// distinguished from generic connectivity loss and gets its own kind.
func FromTransport(err error) *Error {
	if err == nil {
		return Complete(Error{Kind: KindNetworkError})
	}
	if isCancellation(err) {
		return Complete(Error{Kind: KindNetworkCancelled, Details: err.Error(), Cause: err})
	}
	return Complete(Error{Kind: KindNetworkError, Details: err.Error(), Cause: err})
}

func isCancellation(err error) bool {
	if errors.Is(err, context.Canceled) {
		return true
	}
	msg := strings.ToLower(err.Error())
	for _, word := range cancelVocabulary {
		if strings.Contains(msg, word) {
			return true
		}
	}
	return false
}

// isTransportFailure reports whether err looks like a connectivity failure.
// Used by the normalizer to route generic runtime errors here.
func isTransportFailure(err error) bool {
	if err == nil {
		return false
	}
	var ne net.Error
	if errors.As(err, &ne) {
		return true
	}
	msg := strings.ToLower(err.Error())
	for _, word := range transportVocabulary {
		if strings.Contains(msg, word) {
			return true
		}
	}
	return false
}
