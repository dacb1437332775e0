package transport

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/autofounder/deck-backend/internal/deck/domain"
)

// Bus is the ephemeral broadcast backend. Announce is fire-and-forget:
// only subscribers active at the time of the call receive the payload;
// there is no queue and no replay. Await must always return by the
// timeout and tear its subscription down on every path.
type Bus interface {
	Announce(ctx context.Context, key string, data []byte) error
	Await(ctx context.Context, key string, timeout time.Duration) ([]byte, error)
}

// RedisBus broadcasts over a pub/sub channel named after the deck key.
type RedisBus struct {
	client *redis.Client
}

func NewRedisBus(client *redis.Client) *RedisBus {
	return &RedisBus{client: client}
}

func (b *RedisBus) Announce(ctx context.Context, key string, data []byte) error {
	if err := b.client.Publish(ctx, key, data).Err(); err != nil {
		return fmt.Errorf("bus announce %s: %w", key, err)
	}
	return nil
}

// Await subscribes to the deck's channel and waits for one message. A
// miss (timeout) reports ErrDeckNotFound so the caller can fall through
// to its next channel; it is not a transport error.
func (b *RedisBus) Await(ctx context.Context, key string, timeout time.Duration) ([]byte, error) {
	sub := b.client.Subscribe(ctx, key)
	defer sub.Close()

	// Confirm the subscription before arming the timer so a publish
	// racing this call is only lost when it truly happened first.
	if _, err := sub.Receive(ctx); err != nil {
		return nil, fmt.Errorf("bus subscribe %s: %w", key, err)
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case msg, ok := <-sub.Channel():
		if !ok {
			return nil, domain.ErrDeckNotFound
		}
		return []byte(msg.Payload), nil
	case <-timer.C:
		return nil, domain.ErrDeckNotFound
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
