package transport

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/autofounder/deck-backend/internal/deck/domain"
)

// PublishResult records which channels accepted the deck and the viewer
// navigation target computed from them.
type PublishResult struct {
	Key       string `json:"key"`
	Stored    bool   `json:"stored"`
	Announced bool   `json:"announced"`
	ViewerURL string `json:"viewer_url"`
}

// Publisher is the generating side of the protocol.
type Publisher struct {
	store   Store
	bus     Bus
	baseURL string
}

func NewPublisher(store Store, bus Bus, baseURL string) *Publisher {
	return &Publisher{store: store, bus: bus, baseURL: baseURL}
}

// Publish writes the deck to the durable store, announces it on the bus
// and computes the viewer target. Channel failures degrade independently:
// a refused store write switches the target to the inline form, a failed
// announce is only logged.
//
// The store write runs before the announce on purpose. An announce sent
// before a resolver subscribes is lost; that race stays unfixed because
// the store is the source of truth whenever it is writable, and the
// announce is reliable only for resolvers already listening (the viewer
// context its opener created synchronously).
func (p *Publisher) Publish(ctx context.Context, deck *domain.Deck) (*PublishResult, error) {
	data, err := json.Marshal(deck)
	if err != nil {
		return nil, fmt.Errorf("publish %s: %w", deck.ID, err)
	}

	result := &PublishResult{Key: Key(deck.ID)}

	if err := p.store.Put(ctx, result.Key, data); err != nil {
		log.Printf("deck transport: store write failed for %s, falling back to inline target: %v", result.Key, err)
	} else {
		result.Stored = true
	}

	if p.bus != nil {
		if err := p.bus.Announce(ctx, result.Key, data); err != nil {
			log.Printf("deck transport: announce failed for %s: %v", result.Key, err)
		} else {
			result.Announced = true
		}
	}

	result.ViewerURL, err = ViewerURL(p.baseURL, deck, result.Stored)
	if err != nil {
		return nil, fmt.Errorf("publish %s: %w", deck.ID, err)
	}

	return result, nil
}
