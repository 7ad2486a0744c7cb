package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// keepAlive is how often an idle event stream gets a comment line.
var keepAlive = 25 * time.Second

// eventsHandler streams store events as server-sent events. Each event
// carries the command name and the snapshot version; clients refetch
// /api/state when they care about the new data.
func (s *Server) eventsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	flusher, ok := w.(http.Flusher)
	if !ok {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	events, cancel := s.Store.Subscribe()
	defer cancel()

	// send hello
	fmt.Fprintf(w, "event: status\n")
	fmt.Fprintf(w, "data: {\"state\":\"connected\",\"version\":%d}\n\n", s.Store.Snapshot().Version)
	flusher.Flush()

	tick := time.NewTicker(keepAlive)
	defer tick.Stop()
	notify := r.Context().Done()
	for {
		select {
		case <-notify:
			return
		case <-tick.C:
			fmt.Fprint(w, ": ping\n\n")
			flusher.Flush()
		case ev, ok := <-events:
			if !ok {
				return
			}
			payload, _ := json.Marshal(ev)
			fmt.Fprintf(w, "event: change\ndata: %s\n\n", payload)
			flusher.Flush()
		}
	}
}
