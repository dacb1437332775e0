package transport

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/autofounder/deck-backend/internal/deck/domain"
)

// Fragment grammar shared with every viewer context:
//
//	#deck=<id>               resolve via store/broadcast using deck:<id>
//	#deckdata=<b64>          fully inline deck, no storage dependency
//	#investors=<b64>         inline deck feeding the investor-match flow
//	...&present=1            display-mode hint, ignored by transport
var (
	reDeckData  = regexp.MustCompile(`deckdata=([^&]+)`)
	reInvestors = regexp.MustCompile(`investors=([^&]+)`)
	reDeckID    = regexp.MustCompile(`(?i)deck=([a-z0-9\-]+)`)
	rePresent   = regexp.MustCompile(`present=1`)
)

// Ref is a parsed viewer-URL fragment: at most one of Inline, Investors
// or ID is set.
type Ref struct {
	ID        string
	Inline    *domain.Deck
	Investors *domain.Deck
	Present   bool
}

// Empty reports whether the fragment carried no deck reference at all.
func (r Ref) Empty() bool {
	return r.ID == "" && r.Inline == nil && r.Investors == nil
}

// ParseFragment parses a location fragment. Inline payloads win over key
// references; a malformed inline payload falls through to the key form
// rather than failing the whole parse.
func ParseFragment(fragment string) (Ref, error) {
	fragment = strings.TrimPrefix(fragment, "#")
	ref := Ref{Present: rePresent.MatchString(fragment)}

	if m := reDeckData.FindStringSubmatch(fragment); m != nil {
		deck, err := DecodeDeck(unescape(m[1]))
		if err == nil {
			ref.Inline = deck
			return ref, nil
		}
	}

	if m := reInvestors.FindStringSubmatch(fragment); m != nil {
		deck, err := DecodeDeck(unescape(m[1]))
		if err == nil {
			ref.Investors = deck
			return ref, nil
		}
	}

	if m := reDeckID.FindStringSubmatch(fragment); m != nil {
		ref.ID = m[1]
		return ref, nil
	}

	return ref, fmt.Errorf("fragment carries no deck reference")
}

// ViewerURL computes the navigation target for a published deck: compact
// key form when the store write succeeded, full inline payload otherwise.
func ViewerURL(baseURL string, deck *domain.Deck, stored bool) (string, error) {
	base := strings.TrimRight(baseURL, "/")
	if stored {
		return fmt.Sprintf("%s/#deck=%s", base, deck.ID), nil
	}
	encoded, err := EncodeDeck(deck)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/#deckdata=%s", base, encoded), nil
}

// unescape reverses percent-encoding only. PathUnescape leaves "+"
// intact, so payloads encoded with the standard base64 alphabet survive
// for DecodePayload to normalize.
func unescape(s string) string {
	if u, err := url.PathUnescape(s); err == nil {
		return u
	}
	return s
}
