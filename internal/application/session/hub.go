// Package session tracks who is signed in and notifies observers of changes.
//
// Handlers run on a single dispatch goroutine owned by the Hub, always
// asynchronously relative to the call that caused the event, and in publish
// order. Subscribing schedules one Initial event carrying the current session.
package session

import (
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/toolbox/backend/internal/application/adapter"
	"github.com/toolbox/backend/internal/domain/entity"
)

// EventKind identifies what happened to a session.
type EventKind string

const (
	// EventInitial is delivered once per subscription with the current state.
	EventInitial   EventKind = "initial"
	EventSignedIn  EventKind = "signed_in"
	EventSignedOut EventKind = "signed_out"
)

// Event is delivered to handlers. User is nil when the user has no session.
type Event struct {
	Kind   EventKind
	UserID uuid.UUID
	User   *entity.User
}

// Handler observes session events for one user.
type Handler func(Event)

type subscription struct {
	id      uint64
	userID  uuid.UUID
	handler Handler
	active  atomic.Bool
}

type delivery struct {
	sub   *subscription
	event Event
}

// Hub is the session observer registry.
type Hub struct {
	mu      sync.Mutex
	current map[uuid.UUID]*entity.User
	subs    map[uuid.UUID]map[uint64]*subscription
	nextID  uint64
	pending []delivery

	wake      chan struct{}
	done      chan struct{}
	stopped   chan struct{}
	closeOnce sync.Once
}

// NewHub creates a Hub and starts its dispatch goroutine.
func NewHub() *Hub {
	h := &Hub{
		current: make(map[uuid.UUID]*entity.User),
		subs:    make(map[uuid.UUID]map[uint64]*subscription),
		wake:    make(chan struct{}, 1),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	go h.run()
	return h
}

// Subscribe registers handler for userID's session events and returns the
// function that cancels it. Unsubscribing is idempotent and drops deliveries
// that have not started yet.
func (h *Hub) Subscribe(userID uuid.UUID, handler Handler) (unsubscribe func()) {
	sub := &subscription{userID: userID, handler: handler}
	sub.active.Store(true)

	h.mu.Lock()
	h.nextID++
	sub.id = h.nextID
	if h.subs[userID] == nil {
		h.subs[userID] = make(map[uint64]*subscription)
	}
	h.subs[userID][sub.id] = sub
	h.pending = append(h.pending, delivery{
		sub:   sub,
		event: Event{Kind: EventInitial, UserID: userID, User: h.current[userID]},
	})
	h.mu.Unlock()
	h.signal()

	return func() {
		if !sub.active.CompareAndSwap(true, false) {
			return
		}
		h.mu.Lock()
		delete(h.subs[userID], sub.id)
		if len(h.subs[userID]) == 0 {
			delete(h.subs, userID)
		}
		h.mu.Unlock()
	}
}

// SignedIn records user as signed in and notifies its subscribers.
func (h *Hub) SignedIn(user *entity.User) {
	if user == nil {
		return
	}
	h.publish(user.ID, Event{Kind: EventSignedIn, UserID: user.ID, User: user}, user)
}

// SignedOut clears the user's session and notifies its subscribers.
func (h *Hub) SignedOut(userID uuid.UUID) {
	h.publish(userID, Event{Kind: EventSignedOut, UserID: userID}, nil)
}

// Current returns the signed-in user, or nil.
func (h *Hub) Current(userID uuid.UUID) *entity.User {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.current[userID]
}

// Close stops the dispatch goroutine. Undelivered events are discarded.
func (h *Hub) Close() {
	h.closeOnce.Do(func() {
		close(h.done)
	})
	<-h.stopped
}

func (h *Hub) publish(userID uuid.UUID, event Event, user *entity.User) {
	h.mu.Lock()
	if user != nil {
		h.current[userID] = user
	} else {
		delete(h.current, userID)
	}
	for _, sub := range h.subs[userID] {
		h.pending = append(h.pending, delivery{sub: sub, event: event})
	}
	h.mu.Unlock()
	h.signal()
}

func (h *Hub) signal() {
	select {
	case h.wake <- struct{}{}:
	default:
	}
}

func (h *Hub) run() {
	defer close(h.stopped)
	for {
		select {
		case <-h.done:
			return
		case <-h.wake:
		}

		for {
			h.mu.Lock()
			batch := h.pending
			h.pending = nil
			h.mu.Unlock()
			if len(batch) == 0 {
				break
			}
			for _, d := range batch {
				select {
				case <-h.done:
					return
				default:
				}
				if d.sub.active.Load() {
					h.deliver(d)
				}
			}
		}
	}
}

func (h *Hub) deliver(d delivery) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Session handler panicked",
				"user_id", d.event.UserID,
				"event", d.event.Kind,
				"panic", r,
			)
		}
	}()
	d.sub.handler(d.event)
}

var _ adapter.SessionNotifier = (*Hub)(nil)
