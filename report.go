package errpipeline

import (
	"context"
	"fmt"
	"log/slog"
)

// Reporter forwards errors to an external monitoring system. Absent by
// default. Reporter failures are swallowed and never re-enter the pipeline.
type Reporter interface {
	Report(ctx context.Context, e *Error, note string)
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(ctx context.Context, e *Error, note string)

func (f ReporterFunc) Report(ctx context.Context, e *Error, note string) { f(ctx, e, note) }

// debugLine formats the one-line summary echoed to the debug log.
func debugLine(e *Error) string {
	return fmt.Sprintf("[%s] %s | domain=%s | status=%d | details=%s | request_id=%s",
		e.Kind, e.Message, e.Domain, e.Status, e.Details, e.RequestID)
}

// debugEcho writes the summary when a logger is configured.
func debugEcho(log *slog.Logger, e *Error) {
	if log == nil {
		return
	}
	log.Debug(debugLine(e),
		slog.String("kind", string(e.Kind)),
		slog.String("domain", string(e.Domain)),
		slog.Int("status", e.Status),
		slog.String("fingerprint", e.Fingerprint))
}
