package events

import (
	"context"
	"sync"

	"htmx-tictactoe/models"

	"github.com/google/uuid"
)

const subscriberBuffer = 10

// Hub fans game events out to every open view of a session.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[string][]*models.GameSubscriber
}

func NewHub() *Hub {
	return &Hub{subscribers: make(map[string][]*models.GameSubscriber)}
}

// generateSubscriberID creates a unique subscriber identifier
func generateSubscriberID() string {
	return uuid.NewString()
}

// Subscribe creates and registers a new subscriber for a session
func (h *Hub) Subscribe(ctx context.Context, sessionID string) *models.GameSubscriber {
	subscriber := &models.GameSubscriber{
		ID:        generateSubscriberID(),
		SessionID: sessionID,
		Channel:   make(chan models.GameEvent, subscriberBuffer),
		Context:   ctx,
	}

	h.mu.Lock()
	h.subscribers[sessionID] = append(h.subscribers[sessionID], subscriber)
	h.mu.Unlock()

	return subscriber
}

// Unsubscribe removes a subscriber and closes its channel
func (h *Hub) Unsubscribe(subscriber *models.GameSubscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()

	subscribers, exists := h.subscribers[subscriber.SessionID]
	if !exists {
		return
	}

	for i, sub := range subscribers {
		if sub.ID == subscriber.ID {
			h.subscribers[subscriber.SessionID] = append(subscribers[:i:i], subscribers[i+1:]...)
			close(sub.Channel)
			break
		}
	}

	if len(h.subscribers[subscriber.SessionID]) == 0 {
		delete(h.subscribers, subscriber.SessionID)
	}
}

// CloseSession drops every subscriber of a session and closes their channels,
// which ends the event streams reading from them.
func (h *Hub) CloseSession(sessionID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()

	subscribers := h.subscribers[sessionID]
	for _, sub := range subscribers {
		close(sub.Channel)
	}
	delete(h.subscribers, sessionID)
	return len(subscribers)
}

// Broadcast sends an event to all subscribers of a session. Subscribers whose
// buffer is full miss the event.
func (h *Hub) Broadcast(sessionID string, event models.GameEvent) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	delivered := 0
	for _, subscriber := range h.subscribers[sessionID] {
		if subscriber.Context.Err() != nil {
			continue
		}
		select {
		case subscriber.Channel <- event:
			delivered++
		default:
			// Channel full, skip this subscriber
		}
	}
	return delivered
}

// Count returns the number of subscribers of a session.
func (h *Hub) Count(sessionID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers[sessionID])
}
