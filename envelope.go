package errpipeline

import "encoding/json"

// serverEnvelope is the fixed error shape networked calls return. It is an
// input contract only; this package never emits it.
type serverEnvelope struct {
	RequestID string          `json:"request_id"`
	OK        *bool           `json:"ok"`
	ErrorMsg  string          `json:"error"`
	Code      string          `json:"code"`
	Details   json.RawMessage `json:"details,omitempty"`
}

func (env *serverEnvelope) valid() bool {
	return env.OK != nil && !*env.OK && env.ErrorMsg != ""
}

// envelopeKinds is the status fallback table used when a valid envelope
// carries no code of its own.
var envelopeKinds = map[int]Kind{
	401: KindAuthRequired,
	403: KindAuthForbidden,
	404: KindNotFound,
	409: KindConflict,
	429: KindRateLimited,
}

// FromEnvelope translates an untyped JSON error payload from a remote call.
// The payload is validated against the envelope shape before any field is
// trusted. A valid envelope's own code wins when non-empty, even if outside
// the known taxonomy; kind only drives display and routing, never
// authorization, so forward compatibility is worth the looseness.
func FromEnvelope(payload []byte, status int) *Error {
	var env serverEnvelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return Complete(Error{Kind: KindInvalidJSON, Status: status, Details: err.Error()})
	}
	if !env.valid() {
		return Complete(Error{Kind: KindInvalidPayload, Status: status, Details: string(payload)})
	}

	if env.Code != "" {
		return Complete(Error{
			Kind:      Kind(env.Code),
			Message:   envelopeMessage(Kind(env.Code), env.ErrorMsg),
			Status:    status,
			Domain:    envelopeDomain(Kind(env.Code)),
			Details:   envelopeDetails(env.Details),
			RequestID: env.RequestID,
		})
	}
	if kind, ok := envelopeKinds[status]; ok {
		return Complete(Error{Kind: kind, Status: status, Details: env.ErrorMsg, RequestID: env.RequestID})
	}
	return Complete(Error{
		Kind:      KindEdgeFunctionError,
		Status:    status,
		Details:   env.ErrorMsg,
		RequestID: env.RequestID,
	})
}

// envelopeDetails renders the envelope's details field for diagnostics.
// Plain JSON strings are unquoted; objects and arrays keep their raw form.
func envelopeDetails(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if json.Unmarshal(raw, &s) == nil {
		return s
	}
	return string(raw)
}

// envelopeMessage keeps catalog messages for known kinds and falls back to
// the envelope's own error text for unknown ones, so foreign codes still
// surface something readable.
func envelopeMessage(kind Kind, errMsg string) string {
	if _, ok := Lookup(kind); ok {
		return ""
	}
	return errMsg
}

// envelopeDomain tags unknown codes as edge-originated; known kinds keep
// their catalog domain.
func envelopeDomain(kind Kind) Domain {
	if _, ok := Lookup(kind); ok {
		return ""
	}
	return DomainEdge
}
