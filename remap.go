package errpipeline

// Remapper re-tags a normalized error with a business-action-specific kind,
// unless the kind is already specific enough to pass through unchanged. This
// lets one generic storage failure become "Unable to create the agency"
// without the storage mapper knowing about business actions, and without a
// 409 conflict ever being masked as "agency create failed".
type Remapper struct {
	allow   map[Kind]bool
	actions map[string]Kind
}

// NewRemapper builds a re-mapper from an allow-list of kinds that must pass
// through unchanged and a fixed action-to-kind table.
func NewRemapper(allow []Kind, actions map[string]Kind) *Remapper {
	m := &Remapper{
		allow:   make(map[Kind]bool, len(allow)),
		actions: actions,
	}
	for _, k := range allow {
		m.allow[k] = true
	}
	return m
}

// Remap normalizes thrown, then either returns it as-is (allow-listed kind)
// or rebuilds it with the action's kind and the caller's fallback message,
// preserving status, details, request id and cause.
func (m *Remapper) Remap(thrown any, action, fallback string) *Error {
	e := Normalize(thrown, fallback)
	if m.allow[e.Kind] {
		return e
	}
	kind, ok := m.actions[action]
	if !ok {
		kind = KindUnknown
	}
	return Complete(Error{
		Kind:      kind,
		Message:   fallback,
		Status:    e.Status,
		Retryable: e.Retryable,
		Details:   e.Details,
		RequestID: e.RequestID,
		Cause:     e.Cause,
	})
}

// passThroughKinds are already actionable regardless of the business action
// in flight: auth, conflict, rate-limit, network, not-found and payload
// kinds keep their precise classification.
var passThroughKinds = []Kind{
	KindAuthRequired,
	KindAuthForbidden,
	KindAuthSessionExpired,
	KindRateLimited,
	KindConflict,
	KindNotFound,
	KindNetworkError,
	KindNetworkCancelled,
	KindInvalidPayload,
	KindInvalidJSON,
}

func withKinds(base []Kind, extra ...Kind) []Kind {
	out := make([]Kind, 0, len(base)+len(extra))
	out = append(out, base...)
	out = append(out, extra...)
	return out
}

// AgencyRemapper re-tags agency admin action failures.
var AgencyRemapper = NewRemapper(
	withKinds(passThroughKinds, KindValidationError),
	map[string]Kind{
		"create_agency": KindAgencyCreateFailed,
		"update_agency": KindAgencyUpdateFailed,
		"delete_agency": KindAgencyDeleteFailed,
	},
)

// UserRemapper re-tags user admin action failures.
var UserRemapper = NewRemapper(
	withKinds(passThroughKinds, KindValidationError, KindUserDeleteHasInteractions),
	map[string]Kind{
		"create_user": KindUserCreateFailed,
		"update_user": KindUserUpdateFailed,
		"delete_user": KindUserDeleteFailed,
	},
)

// DataRemapper re-tags generic record mutation failures.
var DataRemapper = NewRemapper(
	withKinds(passThroughKinds, KindValidationError),
	map[string]Kind{
		"create_record": KindDataCreateFailed,
		"update_record": KindDataUpdateFailed,
		"delete_record": KindDataDeleteFailed,
	},
)

// SettingsRemapper re-tags settings action failures.
var SettingsRemapper = NewRemapper(
	withKinds(passThroughKinds, KindValidationError, KindConfigInvalid),
	map[string]Kind{
		"save_settings": KindSettingsSaveFailed,
	},
)
