// Package transport moves a published Deck between independent contexts
// over three redundant channels: a durable key-value store, an ephemeral
// broadcast bus and a URL-embedded payload. The resolve precedence
// (inline, then store, then bounded broadcast wait) is the protocol.
package transport

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/autofounder/deck-backend/internal/deck/domain"
)

// keyPrefix scopes both the storage key and the broadcast channel name.
const keyPrefix = "deck:"

// Key returns the cross-context key for a deck id.
func Key(id string) string {
	return keyPrefix + id
}

// EncodeDeck serializes a deck for URL embedding: JSON, then URL-safe
// base64 with no padding.
func EncodeDeck(deck *domain.Deck) (string, error) {
	data, err := json.Marshal(deck)
	if err != nil {
		return "", fmt.Errorf("encode deck: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(data), nil
}

// DecodePayload reverses the URL embedding for any fragment payload. The
// decoder tolerates padded input and the standard base64 alphabet in
// addition to the URL-safe one.
func DecodePayload(encoded string) ([]byte, error) {
	b64 := strings.TrimRight(encoded, "=")
	b64 = strings.ReplaceAll(b64, "+", "-")
	b64 = strings.ReplaceAll(b64, "/", "_")

	data, err := base64.RawURLEncoding.DecodeString(b64)
	if err != nil {
		return nil, fmt.Errorf("decode fragment payload: %w", err)
	}
	return data, nil
}

// DecodeDeck reverses EncodeDeck and validates/defaults the deck once so
// downstream code can assume a well-formed value.
func DecodeDeck(encoded string) (*domain.Deck, error) {
	data, err := DecodePayload(encoded)
	if err != nil {
		return nil, err
	}
	return decodeDeckJSON(data)
}

// decodeDeckJSON is the single validation point of the transport
// boundary: whatever channel produced the bytes, the result is a typed,
// already-defaulted Deck.
func decodeDeckJSON(data []byte) (*domain.Deck, error) {
	var deck domain.Deck
	if err := json.Unmarshal(data, &deck); err != nil {
		return nil, fmt.Errorf("parse deck payload: %w", err)
	}
	if deck.ID == "" {
		return nil, fmt.Errorf("deck payload has no id")
	}

	// Tone fields, once set, must be light or dark; scrub anything else
	// so the fallback chain takes over.
	if !deck.Meta.TextTone.Valid() {
		deck.Meta.TextTone = ""
	}
	for i := range deck.Slides {
		if !deck.Slides[i].TextTone.Valid() {
			deck.Slides[i].TextTone = ""
		}
		deck.Slides[i].Heading = deck.Slides[i].DisplayHeading(i)
		if deck.Slides[i].Bullets == nil {
			deck.Slides[i].Bullets = []string{}
		}
	}

	if deck.Slug == "" {
		deck.Slug = domain.Slugify(deck.Title, deck.ID)
	}

	return &deck, nil
}
