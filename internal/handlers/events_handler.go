package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"kelaskata/internal/broker"
	"kelaskata/internal/service"
)

// heartbeatInterval keeps idle SSE connections from being reaped by proxies
const heartbeatInterval = 25 * time.Second

// EventsHandler streams session updates to observers over SSE. Each
// connected student gets the current snapshot first, then every ledger
// change in commit order until the connection drops or the session ends.
type EventsHandler struct {
	sessions *service.SessionService
	hub      *broker.Hub
}

// NewEventsHandler creates a new events handler
func NewEventsHandler(sessions *service.SessionService, hub *broker.Hub) *EventsHandler {
	return &EventsHandler{sessions: sessions, hub: hub}
}

// Stream serves the SSE feed for one session
func (h *EventsHandler) Stream(w http.ResponseWriter, r *http.Request) {
	session, err := h.sessions.GetSession(r.PathValue("code"))
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		respondWithError(w, http.StatusInternalServerError, "Streaming unsupported", "", nil)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	// Subscribe before the snapshot so no event between the two is lost.
	sub := h.hub.Subscribe(session.ID)
	defer h.hub.Unsubscribe(sub)

	snapshotType := broker.EventSessionUpdated
	if !session.Active {
		snapshotType = broker.EventSessionEnded
	}
	if err := writeEvent(w, broker.Event{Type: snapshotType, Session: session}); err != nil {
		return
	}
	flusher.Flush()
	if !session.Active {
		return
	}

	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-heartbeat.C:
			if _, err := fmt.Fprint(w, ": heartbeat\n\n"); err != nil {
				return
			}
			flusher.Flush()
		case ev, open := <-sub.C:
			if !open {
				return
			}
			if err := writeEvent(w, ev); err != nil {
				return
			}
			flusher.Flush()
			if ev.Type == broker.EventSessionEnded {
				return
			}
		}
	}
}

// writeEvent writes one SSE frame with the event type and JSON payload
func writeEvent(w http.ResponseWriter, ev broker.Event) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", ev.Type, data)
	return err
}
