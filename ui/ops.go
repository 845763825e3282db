package ui

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"bikerental/internal/snapshot"
)

// NewOpsRouter builds the health/pprof sidecar served on a separate port so
// operational traffic never mixes with dashboard traffic.
func NewOpsRouter(snap *snapshot.Snapshot) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.Heartbeat("/ping"))

	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok: snapshot " + snap.ID().String()))
	})

	r.Mount("/debug", middleware.Profiler())
	return r
}
