package errpipeline

// Entry holds the catalog defaults for one kind: the user-facing message and
// the semantic axes the factory fills in when a partial error leaves them
// unset. Retryable is nil when unknown.
type Entry struct {
	Message   string
	Domain    Domain
	Severity  Severity
	Recovery  RecoveryAction
	Retryable *bool
}

// Bool returns a pointer to v, for populating tri-state Retryable fields.
func Bool(v bool) *bool { return &v }

// catalog is defined once at init and never mutated afterwards.
// Removing a kind is a breaking change for persisted journal entries.
var catalog = map[Kind]Entry{
	// Authentication
	KindAuthRequired:           {Message: "Please sign in to continue.", Domain: DomainAuth, Severity: SeverityWarning, Recovery: RecoveryRelogin, Retryable: Bool(false)},
	KindAuthForbidden:          {Message: "You do not have permission to perform this action.", Domain: DomainAuth, Severity: SeverityWarning, Recovery: RecoveryNone, Retryable: Bool(false)},
	KindAuthSessionExpired:     {Message: "Your session has expired. Please sign in again.", Domain: DomainAuth, Severity: SeverityWarning, Recovery: RecoveryRelogin, Retryable: Bool(false)},
	KindAuthInvalidCredentials: {Message: "Invalid credentials or inactive account.", Domain: DomainAuth, Severity: SeverityWarning, Recovery: RecoveryNone, Retryable: Bool(false)},
	KindAuthWeakPassword:       {Message: "Password is too weak.", Domain: DomainAuth, Severity: SeverityWarning, Recovery: RecoveryNone, Retryable: Bool(false)},
	KindAuthSamePassword:       {Message: "New password must differ from the current one.", Domain: DomainAuth, Severity: SeverityWarning, Recovery: RecoveryNone, Retryable: Bool(false)},
	KindAuthEmailUnconfirmed:   {Message: "Please confirm your email address first.", Domain: DomainAuth, Severity: SeverityWarning, Recovery: RecoveryNone, Retryable: Bool(false)},
	KindAuthSignupDisabled:     {Message: "Sign-up is currently disabled.", Domain: DomainAuth, Severity: SeverityWarning, Recovery: RecoveryContactSupport, Retryable: Bool(false)},
	KindAuthError:              {Message: "Authentication failed.", Domain: DomainAuth, Severity: SeverityError, Recovery: RecoveryRetry},

	// Storage
	KindDBReadFailed:  {Message: "Unable to load the data.", Domain: DomainStorage, Severity: SeverityError, Recovery: RecoveryRetry},
	KindDBWriteFailed: {Message: "Unable to save the data.", Domain: DomainStorage, Severity: SeverityError, Recovery: RecoveryRetry},
	KindConflict:      {Message: "Update conflict. Reload and retry.", Domain: DomainStorage, Severity: SeverityWarning, Recovery: RecoveryReload},
	KindNotFound:      {Message: "The requested item was not found.", Domain: DomainStorage, Severity: SeverityWarning, Recovery: RecoveryReload, Retryable: Bool(false)},

	// Transport
	KindNetworkError:     {Message: "Network error. Check your connection and retry.", Domain: DomainNetwork, Severity: SeverityError, Recovery: RecoveryRetry, Retryable: Bool(true)},
	KindNetworkCancelled: {Message: "Request cancelled, please retry.", Domain: DomainNetwork, Severity: SeverityInfo, Recovery: RecoveryRetry, Retryable: Bool(true)},
	KindRateLimited:      {Message: "Too many requests. Please wait a moment.", Domain: DomainNetwork, Severity: SeverityWarning, Recovery: RecoveryRetry, Retryable: Bool(true)},

	// Server
	KindEdgeFunctionError: {Message: "The server could not process the request.", Domain: DomainEdge, Severity: SeverityError, Recovery: RecoveryRetry},
	KindRequestFailed:     {Message: "The request failed. Please retry.", Domain: DomainEdge, Severity: SeverityError, Recovery: RecoveryRetry},
	KindInvalidPayload:    {Message: "The server returned an unexpected response.", Domain: DomainEdge, Severity: SeverityError, Recovery: RecoveryContactSupport, Retryable: Bool(false)},
	KindInvalidJSON:       {Message: "The server returned an unreadable response.", Domain: DomainEdge, Severity: SeverityError, Recovery: RecoveryContactSupport, Retryable: Bool(false)},

	// Input
	KindValidationError: {Message: "Please check the highlighted fields.", Domain: DomainValidation, Severity: SeverityWarning, Recovery: RecoveryNone, Retryable: Bool(false)},
	KindConfigInvalid:   {Message: "The configuration is invalid.", Domain: DomainValidation, Severity: SeverityError, Recovery: RecoveryContactSupport, Retryable: Bool(false)},

	// Business actions
	KindAgencyCreateFailed:        {Message: "Unable to create the agency.", Domain: DomainStorage, Severity: SeverityError, Recovery: RecoveryRetry},
	KindAgencyUpdateFailed:        {Message: "Unable to update the agency.", Domain: DomainStorage, Severity: SeverityError, Recovery: RecoveryRetry},
	KindAgencyDeleteFailed:        {Message: "Unable to delete the agency.", Domain: DomainStorage, Severity: SeverityError, Recovery: RecoveryRetry},
	KindUserCreateFailed:          {Message: "Unable to create the user.", Domain: DomainStorage, Severity: SeverityError, Recovery: RecoveryRetry},
	KindUserUpdateFailed:          {Message: "Unable to update the user.", Domain: DomainStorage, Severity: SeverityError, Recovery: RecoveryRetry},
	KindUserDeleteFailed:          {Message: "Unable to delete the user.", Domain: DomainStorage, Severity: SeverityError, Recovery: RecoveryRetry},
	KindUserDeleteHasInteractions: {Message: "This user still has interactions and cannot be deleted.", Domain: DomainStorage, Severity: SeverityWarning, Recovery: RecoveryNone, Retryable: Bool(false)},
	KindDataCreateFailed:          {Message: "Unable to create the record.", Domain: DomainStorage, Severity: SeverityError, Recovery: RecoveryRetry},
	KindDataUpdateFailed:          {Message: "Unable to update the record.", Domain: DomainStorage, Severity: SeverityError, Recovery: RecoveryRetry},
	KindDataDeleteFailed:          {Message: "Unable to delete the record.", Domain: DomainStorage, Severity: SeverityError, Recovery: RecoveryRetry},
	KindSettingsSaveFailed:        {Message: "Unable to save the settings.", Domain: DomainStorage, Severity: SeverityError, Recovery: RecoveryRetry},

	// Catch-all
	KindUnknown: {Message: "Unexpected error.", Domain: DomainUnknown, Severity: SeverityError, Recovery: RecoveryNone},
}

// Lookup returns the catalog entry for kind. The second return is false for
// kinds outside the catalog; callers must then supply their own message or
// accept the factory's generic fallback.
func Lookup(kind Kind) (Entry, bool) {
	e, ok := catalog[kind]
	return e, ok
}

// Kinds returns the cataloged kinds in no particular order.
func Kinds() []Kind {
	out := make([]Kind, 0, len(catalog))
	for k := range catalog {
		out = append(out, k)
	}
	return out
}
