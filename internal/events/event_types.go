package events

import (
	"time"

	"github.com/google/uuid"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventProductCreated EventType = "product_created"
	EventProductUpdated EventType = "product_updated"
	EventProductDeleted EventType = "product_deleted"
)

// Event represents a catalog change emitted by services.
type Event struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	ProductID string    `json:"product_id"`
	ActorID   string    `json:"actor_id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	Payload   any       `json:"payload"`
}

// ProductChangedPayload names the categories touched by a product write.
// An update that moves a product lists both the old and the new category.
type ProductChangedPayload struct {
	Categories []string `json:"categories"`
}

// NewProductEvent builds an event for the product, deduplicating category names.
func NewProductEvent(eventType EventType, productID, actorID string, categories ...string) Event {
	seen := make(map[string]struct{}, len(categories))
	unique := make([]string, 0, len(categories))
	for _, c := range categories {
		if c == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		unique = append(unique, c)
	}
	return Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		ProductID: productID,
		ActorID:   actorID,
		Timestamp: time.Now().UTC(),
		Payload:   ProductChangedPayload{Categories: unique},
	}
}
