package errpipeline

// Kind is a stable, machine-readable error identifier.
//
// The well-known kinds below form a closed working set, but Kind is a plain
// string so codes introduced by newer server versions still round-trip
// through the journal without a hard failure.
type Kind string

const (
	// Authentication
	KindAuthRequired           Kind = "AUTH_REQUIRED"
	KindAuthForbidden          Kind = "AUTH_FORBIDDEN"
	KindAuthSessionExpired     Kind = "AUTH_SESSION_EXPIRED"
	KindAuthInvalidCredentials Kind = "AUTH_INVALID_CREDENTIALS"
	KindAuthWeakPassword       Kind = "AUTH_WEAK_PASSWORD"
	KindAuthSamePassword       Kind = "AUTH_SAME_PASSWORD"
	KindAuthEmailUnconfirmed   Kind = "AUTH_EMAIL_UNCONFIRMED"
	KindAuthSignupDisabled     Kind = "AUTH_SIGNUP_DISABLED"
	KindAuthError              Kind = "AUTH_ERROR"

	// Storage
	KindDBReadFailed  Kind = "DB_READ_FAILED"
	KindDBWriteFailed Kind = "DB_WRITE_FAILED"
	KindConflict      Kind = "CONFLICT"
	KindNotFound      Kind = "NOT_FOUND"

	// Transport
	KindNetworkError     Kind = "NETWORK_ERROR"
	KindNetworkCancelled Kind = "NETWORK_CANCELLED"
	KindRateLimited      Kind = "RATE_LIMITED"

	// Server
	KindEdgeFunctionError Kind = "EDGE_FUNCTION_ERROR"
	KindRequestFailed     Kind = "REQUEST_FAILED"
	KindInvalidPayload    Kind = "INVALID_PAYLOAD"
	KindInvalidJSON       Kind = "INVALID_JSON"

	// Input
	KindValidationError Kind = "VALIDATION_ERROR"
	KindConfigInvalid   Kind = "CONFIG_INVALID"

	// Business actions
	KindAgencyCreateFailed        Kind = "AGENCY_CREATE_FAILED"
	KindAgencyUpdateFailed        Kind = "AGENCY_UPDATE_FAILED"
	KindAgencyDeleteFailed        Kind = "AGENCY_DELETE_FAILED"
	KindUserCreateFailed          Kind = "USER_CREATE_FAILED"
	KindUserUpdateFailed          Kind = "USER_UPDATE_FAILED"
	KindUserDeleteFailed          Kind = "USER_DELETE_FAILED"
	KindUserDeleteHasInteractions Kind = "USER_DELETE_HAS_INTERACTIONS"
	KindDataCreateFailed          Kind = "DATA_CREATE_FAILED"
	KindDataUpdateFailed          Kind = "DATA_UPDATE_FAILED"
	KindDataDeleteFailed          Kind = "DATA_DELETE_FAILED"
	KindSettingsSaveFailed        Kind = "SETTINGS_SAVE_FAILED"

	// Catch-all
	KindUnknown Kind = "UNKNOWN_ERROR"
)

// Domain identifies the architectural layer that produced a failure.
type Domain string

const (
	DomainAuth       Domain = "auth"
	DomainStorage    Domain = "storage"
	DomainEdge       Domain = "edge"
	DomainNetwork    Domain = "network"
	DomainValidation Domain = "validation"
	DomainClient     Domain = "client"
	DomainUnknown    Domain = "unknown"
)

// Severity drives UI weight, not control flow.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
	SeverityFatal   Severity = "fatal"
)

// RecoveryAction is a hint consumed by the UI; this package never executes it.
type RecoveryAction string

const (
	RecoveryRetry          RecoveryAction = "retry"
	RecoveryReload         RecoveryAction = "reload"
	RecoveryRelogin        RecoveryAction = "relogin"
	RecoveryContactSupport RecoveryAction = "contact_support"
	RecoveryNone           RecoveryAction = "none"
)
