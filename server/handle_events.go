package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"snake-arcade/game"
)

// handleEvents streams a state event whenever the board changes. The game is
// polled every interval; unchanged snapshots are not resent.
func handleEvents(src Source, interval time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flusher, ok := w.(http.Flusher)
		if !ok {
			writeError(w, http.StatusInternalServerError, "streaming not supported")
			return
		}

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.Header().Set("X-Accel-Buffering", "no")
		flusher.Flush()

		poll := time.NewTicker(interval)
		defer poll.Stop()
		ping := time.NewTicker(30 * time.Second)
		defer ping.Stop()

		var last game.Snapshot
		sent := false
		send := func() {
			snap := src.Snapshot()
			if sent && !changed(last, snap) {
				return
			}
			data, err := json.Marshal(snap)
			if err != nil {
				return
			}
			fmt.Fprintf(w, "event: state\ndata: %s\n\n", data)
			flusher.Flush()
			last, sent = snap, true
		}

		send()
		for {
			select {
			case <-r.Context().Done():
				return
			case <-poll.C:
				send()
			case <-ping.C:
				fmt.Fprintf(w, ": ping\n\n")
				flusher.Flush()
			}
		}
	}
}

// changed reports whether b differs from a in anything a spectator can see,
// the countdown excepted.
func changed(a, b game.Snapshot) bool {
	return a.RoundID != b.RoundID ||
		a.Ticks != b.Ticks ||
		a.State != b.State ||
		a.Score != b.Score ||
		a.FoodExists != b.FoodExists ||
		a.Food != b.Food
}
