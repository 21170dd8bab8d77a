// Package broker is the in-process pub-sub hub that fans session commits out
// to observers. Events for one session are published in commit order; there
// is no ordering across sessions and no replay beyond what a fresh snapshot
// provides.
package broker

import (
	"sync"

	"kelaskata/internal/models"
)

// EventType tags what a published event carries.
type EventType string

const (
	EventSessionUpdated EventType = "session-updated"
	EventSessionEnded   EventType = "session-ended"
	EventResultInserted EventType = "result-inserted"
)

// Event is one observer-visible session change.
type Event struct {
	Type    EventType                `json:"type"`
	Session *models.DrillSession     `json:"session,omitempty"`
	Result  *models.AssessmentResult `json:"result,omitempty"`
}

// subscriberBuffer bounds how far an observer may lag before it starts
// losing events; a lagging observer rejoins cleanly via a fresh snapshot.
const subscriberBuffer = 64

// Subscription is one observer's handle on a session's event stream.
type Subscription struct {
	C <-chan Event

	sessionID int64
	ch        chan Event
}

// SessionID returns the session this subscription observes.
func (s *Subscription) SessionID() int64 {
	return s.sessionID
}

// Hub tracks subscribers per session.
type Hub struct {
	mu   sync.Mutex
	subs map[int64]map[*Subscription]struct{}
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{subs: make(map[int64]map[*Subscription]struct{})}
}

// Subscribe registers an observer for one session's events.
func (h *Hub) Subscribe(sessionID int64) *Subscription {
	ch := make(chan Event, subscriberBuffer)
	sub := &Subscription{C: ch, sessionID: sessionID, ch: ch}

	h.mu.Lock()
	set, ok := h.subs[sessionID]
	if !ok {
		set = make(map[*Subscription]struct{})
		h.subs[sessionID] = set
	}
	set[sub] = struct{}{}
	h.mu.Unlock()

	return sub
}

// Unsubscribe releases a subscription and everything the hub holds for it.
// Safe to call more than once.
func (h *Hub) Unsubscribe(sub *Subscription) {
	if sub == nil {
		return
	}

	h.mu.Lock()
	set, ok := h.subs[sub.sessionID]
	if ok {
		if _, member := set[sub]; member {
			delete(set, sub)
			close(sub.ch)
		}
		if len(set) == 0 {
			delete(h.subs, sub.sessionID)
		}
	}
	h.mu.Unlock()
}

// Publish delivers an event to every subscriber of the session. Delivery is
// non-blocking: a subscriber whose buffer is full misses the event rather
// than stalling the writer.
func (h *Hub) Publish(sessionID int64, ev Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for sub := range h.subs[sessionID] {
		select {
		case sub.ch <- ev:
		default:
		}
	}
}

// Subscribers reports how many observers a session currently has.
func (h *Hub) Subscribers(sessionID int64) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs[sessionID])
}
