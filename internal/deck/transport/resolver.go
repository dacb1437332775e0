package transport

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/autofounder/deck-backend/internal/deck/domain"
)

// defaultAwaitTimeout bounds the broadcast wait when no explicit timeout
// is configured.
const defaultAwaitTimeout = 1200 * time.Millisecond

// Resolver is the receiving side of the protocol, run by a freshly
// booted viewer context against a reference parsed from its own URL.
type Resolver struct {
	store   Store
	bus     Bus
	timeout time.Duration
}

func NewResolver(store Store, bus Bus, timeout time.Duration) *Resolver {
	if timeout <= 0 {
		timeout = defaultAwaitTimeout
	}
	return &Resolver{store: store, bus: bus, timeout: timeout}
}

// Resolve obtains the deck a Ref points at, in fixed precedence: the
// inline payload (zero wait), then the durable store, then a bounded
// broadcast wait. Each channel degrades independently; only when all are
// exhausted does it report ErrDeckUnavailable, an expected state (stale
// link) rather than a transport error.
func (r *Resolver) Resolve(ctx context.Context, ref Ref) (*domain.Deck, error) {
	if ref.Inline != nil {
		return ref.Inline, nil
	}
	if ref.Investors != nil {
		return ref.Investors, nil
	}
	if ref.ID == "" {
		return nil, domain.ErrDeckUnavailable
	}

	key := Key(ref.ID)

	data, err := r.store.Get(ctx, key)
	if err == nil {
		if deck, derr := decodeDeckJSON(data); derr == nil {
			return deck, nil
		} else {
			log.Printf("deck transport: stored payload for %s is corrupt: %v", key, derr)
		}
	} else if !errors.Is(err, domain.ErrDeckNotFound) {
		log.Printf("deck transport: store read failed for %s: %v", key, err)
	}

	if r.bus != nil {
		data, err := r.bus.Await(ctx, key, r.timeout)
		if err == nil {
			if deck, derr := decodeDeckJSON(data); derr == nil {
				return deck, nil
			} else {
				log.Printf("deck transport: broadcast payload for %s is corrupt: %v", key, derr)
			}
		} else if !errors.Is(err, domain.ErrDeckNotFound) && !errors.Is(err, context.Canceled) {
			log.Printf("deck transport: broadcast wait failed for %s: %v", key, err)
		}
	}

	return nil, domain.ErrDeckUnavailable
}

// ResolveID resolves by bare deck id (the #deck=<id> form).
func (r *Resolver) ResolveID(ctx context.Context, id string) (*domain.Deck, error) {
	return r.Resolve(ctx, Ref{ID: id})
}
