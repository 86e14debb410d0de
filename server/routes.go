package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

const defaultEventInterval = 50 * time.Millisecond

func addRoutes(r chi.Router, src Source, eventInterval time.Duration) {
	r.Get("/healthz", handleHealth)
	r.Get("/state", handleState(src))
	r.Get("/stats", handleStats(src))
	r.Get("/events", handleEvents(src, eventInterval))
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func handleState(src Source) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, src.Snapshot())
	}
}

func handleStats(src Source) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, src.Stats())
	}
}
