package errpipeline

import "fmt"

// Operation is the data-access verb a storage call was performing when it
// failed. It selects the default message template for generic failures.
type Operation string

const (
	OpRead   Operation = "read"
	OpWrite  Operation = "write"
	OpDelete Operation = "delete"
	OpUpsert Operation = "upsert"
)

// StorageFailure is the raw failure shape of the remote-storage client:
// an HTTP-like status code plus a provider message.
type StorageFailure struct {
	Status  int
	Message string
}

// StorageContext is the caller-supplied context for a storage failure.
type StorageContext struct {
	Operation Operation
	Resource  string // human label, e.g. "the client"
	Status    int    // used when the failure itself carries none
}

// storageKinds is the fixed status classification table. Statuses absent here
// fall through to a generic read/write kind chosen by operation.
var storageKinds = map[int]Kind{
	401: KindAuthRequired,
	403: KindAuthForbidden,
	404: KindNotFound,
	409: KindConflict,
	429: KindRateLimited,
}

// FromStorage translates a remote-storage failure into a canonical error.
// 502/503 map to the operation's generic kind but are marked retryable; all
// other unlisted statuses map to the generic kind with retryability unknown.
func FromStorage(f StorageFailure, ctx StorageContext) *Error {
	status := f.Status
	if status == 0 {
		status = ctx.Status
	}

	if kind, ok := storageKinds[status]; ok {
		return Complete(Error{Kind: kind, Status: status, Details: f.Message})
	}

	kind := KindDBWriteFailed
	if ctx.Operation == OpRead {
		kind = KindDBReadFailed
	}
	e := Error{
		Kind:    kind,
		Message: storageMessage(ctx.Operation, ctx.Resource),
		Status:  status,
		Details: f.Message,
	}
	if status == 502 || status == 503 {
		e.Retryable = Bool(true)
	}
	return Complete(e)
}

func storageMessage(op Operation, resource string) string {
	if resource == "" {
		resource = "the data"
	}
	if op == OpRead {
		return fmt.Sprintf("Unable to load %s.", resource)
	}
	return fmt.Sprintf("Unable to save %s.", resource)
}
