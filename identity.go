package errpipeline

// IdentityFailure is the raw failure shape of the identity provider: a string
// code (when known), an optional status, and a provider message.
type IdentityFailure struct {
	Code    string
	Status  int
	Message string
}

// identityKinds maps the handful of known provider codes to kinds.
var identityKinds = map[string]Kind{
	"invalid_credentials":     KindAuthInvalidCredentials,
	"invalid_grant":           KindAuthInvalidCredentials,
	"user_not_found":          KindAuthInvalidCredentials,
	"weak_password":           KindAuthWeakPassword,
	"same_password":           KindAuthSamePassword,
	"session_expired":         KindAuthSessionExpired,
	"session_not_found":       KindAuthSessionExpired,
	"refresh_token_not_found": KindAuthSessionExpired,
	"email_not_confirmed":     KindAuthEmailUnconfirmed,
	"signup_disabled":         KindAuthSignupDisabled,
}

// FromIdentity translates an identity-provider failure into a canonical
// error. Unmatched codes fall back to status-based classification and
// finally to the generic auth kind.
func FromIdentity(f IdentityFailure) *Error {
	if kind, ok := identityKinds[f.Code]; ok {
		return Complete(Error{Kind: kind, Status: f.Status, Details: f.Message})
	}
	if f.Status == 401 || f.Status == 403 {
		return Complete(Error{Kind: KindAuthForbidden, Status: f.Status, Details: f.Message})
	}
	return Complete(Error{Kind: KindAuthError, Status: f.Status, Details: f.Message})
}
