package errpipeline

import "errors"

// Normalize classifies an arbitrary caught value into a canonical error.
// It is the last-resort catch-all: total, never panics. fallbackKind
// defaults to UNKNOWN_ERROR when omitted.
//
// Dispatch order: canonical errors pass through untouched; validation-issue
// exceptions go to the validation mapper; cancellations and transport
// failures get network kinds; everything else (errors, strings, nil, any)
// becomes the fallback kind with whatever detail is available.
func Normalize(thrown any, fallback string, fallbackKind ...Kind) *Error {
	fk := KindUnknown
	if len(fallbackKind) > 0 && fallbackKind[0] != "" {
		fk = fallbackKind[0]
	}

	switch v := thrown.(type) {
	case nil:
		return Complete(Error{Kind: fk, Message: fallback})
	case *Error:
		if v != nil {
			return v
		}
		return Complete(Error{Kind: fk, Message: fallback})
	case *ValidationError:
		if v != nil {
			return FromValidation(v.Issues)
		}
		return Complete(Error{Kind: fk, Message: fallback})
	case error:
		if e, ok := As(v); ok {
			return e
		}
		var ve *ValidationError
		if errors.As(v, &ve) {
			return FromValidation(ve.Issues)
		}
		if isCancellation(v) {
			return Complete(Error{Kind: KindNetworkCancelled, Details: v.Error(), Cause: v})
		}
		if isTransportFailure(v) {
			return Complete(Error{Kind: KindNetworkError, Details: v.Error(), Cause: v})
		}
		return Complete(Error{Kind: fk, Message: fallback, Details: v.Error(), Cause: v})
	case string:
		return Complete(Error{Kind: fk, Message: fallback, Details: v})
	default:
		return Complete(Error{Kind: fk, Message: fallback})
	}
}
