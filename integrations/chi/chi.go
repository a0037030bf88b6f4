// Package chi provides thin adapters for using err-pipeline with chi router.
//
// Chi uses standard net/http handlers, so the pipeline works directly.
// This package adds a panic-funnelling recoverer and a diagnostics router
// over the journal.
package chi

import (
	"encoding/json"
	"net/http"

	errpipeline "github.com/blackwell-systems/err-pipeline"
	"github.com/blackwell-systems/err-pipeline/journal"
	chirouter "github.com/go-chi/chi/v5"
)

// Recoverer funnels handler panics through the pipeline and writes the
// canonical error back as JSON.
//
// Example:
//
//	r := chi.NewRouter()
//	r.Use(chipipe.Recoverer(pipeline))
func Recoverer(p *errpipeline.Pipeline) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					e := p.Handle(r.Context(), rec, "The request failed. Please retry.",
						r.Method+" "+r.URL.Path)
					writeError(w, e)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// Diagnostics returns a router exposing the journal for diagnostics tooling:
//
//	GET    /errors        — retained entries as JSON
//	GET    /errors/export — the journal's serialized export
//	DELETE /errors        — clear the journal
func Diagnostics(j *journal.Journal) http.Handler {
	r := chirouter.NewRouter()

	r.Get("/errors", func(w http.ResponseWriter, req *http.Request) {
		entries, err := j.List(req.Context())
		if err != nil {
			writeError(w, errpipeline.Wrap(errpipeline.KindDBReadFailed, "Unable to load the journal.", err))
			return
		}
		if entries == nil {
			entries = []journal.Entry{}
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(entries)
	})

	r.Get("/errors/export", func(w http.ResponseWriter, req *http.Request) {
		out, err := j.Export(req.Context())
		if err != nil {
			writeError(w, errpipeline.Wrap(errpipeline.KindDBReadFailed, "Unable to export the journal.", err))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(out))
	})

	r.Delete("/errors", func(w http.ResponseWriter, req *http.Request) {
		if err := j.Clear(req.Context()); err != nil {
			writeError(w, errpipeline.Wrap(errpipeline.KindDBWriteFailed, "Unable to clear the journal.", err))
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})

	return r
}

func writeError(w http.ResponseWriter, e *errpipeline.Error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.HTTPStatus())
	_ = json.NewEncoder(w).Encode(e)
}
