// Package service orchestrates the deck lifecycle: build, publish,
// archive, resolve.
package service

import (
	"context"
	"log"

	"github.com/autofounder/deck-backend/internal/deck/builder"
	"github.com/autofounder/deck-backend/internal/deck/domain"
	"github.com/autofounder/deck-backend/internal/deck/repository"
	"github.com/autofounder/deck-backend/internal/deck/transport"
)

type DeckService struct {
	builder   *builder.Builder
	publisher *transport.Publisher
	resolver  *transport.Resolver
	archive   *repository.ArchiveRepo // nil disables listing/history
}

func NewDeckService(b *builder.Builder, pub *transport.Publisher, res *transport.Resolver, archive *repository.ArchiveRepo) *DeckService {
	return &DeckService{
		builder:   b,
		publisher: pub,
		resolver:  res,
		archive:   archive,
	}
}

// CreateRequest carries the raw questionnaire answers plus build options.
type CreateRequest struct {
	Answers    map[string]string
	Format     domain.SlideFormat
	SkipScript bool
}

// CreateResult is a freshly published deck plus its transport outcome.
type CreateResult struct {
	Deck    *domain.Deck             `json:"deck"`
	Publish *transport.PublishResult `json:"publish"`
}

// Create builds a deck from answers and publishes it exactly once. The
// archive insert is best-effort; the deck is already published and
// viewable whether or not the history row lands.
func (s *DeckService) Create(ctx context.Context, userID string, req CreateRequest) (*CreateResult, error) {
	deck, err := s.builder.Build(ctx, req.Answers, builder.Options{
		Format:     req.Format,
		SkipScript: req.SkipScript,
	})
	if err != nil {
		return nil, err
	}

	pub, err := s.publisher.Publish(ctx, deck)
	if err != nil {
		return nil, err
	}

	if s.archive != nil {
		if err := s.archive.Insert(ctx, userID, deck, pub.Stored); err != nil {
			log.Printf("deck service: archive insert for %s failed: %v", deck.ID, err)
		}
	}

	return &CreateResult{Deck: deck, Publish: pub}, nil
}

// Resolve obtains a deck through the transport precedence.
func (s *DeckService) Resolve(ctx context.Context, ref transport.Ref) (*domain.Deck, error) {
	return s.resolver.Resolve(ctx, ref)
}

// ResolveID resolves by bare id.
func (s *DeckService) ResolveID(ctx context.Context, id string) (*domain.Deck, error) {
	return s.resolver.ResolveID(ctx, id)
}

// List returns the user's archived decks, newest first. Empty when the
// archive is disabled.
func (s *DeckService) List(ctx context.Context, userID string, limit int) ([]repository.ArchiveEntry, error) {
	if s.archive == nil {
		return []repository.ArchiveEntry{}, nil
	}
	return s.archive.ListByUser(ctx, userID, limit)
}
