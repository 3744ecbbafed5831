// Package handler — stream.go implements GET /api/rsvps/stream.
// The dashboard's live subscription: a Server-Sent Events feed that re-sends
// the entire current record set on every change.
package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// StreamRsvps handles GET /api/rsvps/stream.
//
// Each feed delivery becomes one "snapshot" SSE event carrying the full
// record set; consumers re-derive counts and ordering from every event
// rather than patching state. The subscription is cancelled — and further
// delivery stops — as soon as the client disconnects or the feed is closed.
//
// A feed that cannot produce its initial snapshot reports a single "error"
// event with the raw error text. Permission problems never reach this
// handler — the route guard answers 401 first.
func (s *Server) StreamRsvps(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		s.writeJSON(w, http.StatusInternalServerError, errorResponse{
			Error: errorDetail{Code: "internal", Message: "streaming unsupported"},
		})
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	snapshots, cancel, err := s.feed.Subscribe(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "event: error\ndata: %s\n\n", err.Error())
		flusher.Flush()
		return
	}
	defer cancel()

	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case snap, open := <-snapshots:
			if !open {
				return
			}
			payload, err := json.Marshal(rsvpsToResponse(snap))
			if err != nil {
				s.log.Error("stream: marshal snapshot", "error", err)
				continue
			}
			fmt.Fprintf(w, "event: snapshot\ndata: %s\n\n", payload)
			flusher.Flush()
		}
	}
}
