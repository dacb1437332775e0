// Package investors is a thin pass-through from a pitch summary to
// suggested investor profiles. No matching logic lives here; the text
// capability does the work and a static list covers its absence.
package investors

import (
	"context"
	"encoding/json"
	"log"
	"sort"
	"strings"

	"github.com/autofounder/deck-backend/internal/deck/transport"
	"github.com/autofounder/deck-backend/internal/enhance"
)

// fallbackProfiles is returned whenever the enhancer is unavailable or
// declines to answer. Generic by intent.
var fallbackProfiles = []string{
	"Early-stage generalist funds investing at pre-seed and seed",
	"Angel syndicates focused on your sector",
	"Accelerator programs with demo-day exposure",
	"Strategic corporate investors adjacent to your market",
}

type Matcher struct {
	enhancer enhance.Enhancer
}

func NewMatcher(e enhance.Enhancer) *Matcher {
	if e == nil {
		e = enhance.Noop{}
	}
	return &Matcher{enhancer: e}
}

// Match turns a flat answers record into investor suggestions. Never
// fails: enhancer errors degrade to the static list.
func (m *Matcher) Match(ctx context.Context, answers map[string]string) []string {
	pitch := pitchSummary(answers)
	if pitch == "" {
		return fallbackProfiles
	}

	raw, err := m.enhancer.MatchInvestors(ctx, pitch)
	if err != nil {
		log.Printf("investors: match failed, using fallback: %v", err)
		return fallbackProfiles
	}

	lines := splitLines(raw)
	if len(lines) == 0 {
		return fallbackProfiles
	}
	return lines
}

// DecodeAnswers parses an #investors= fragment payload. The payload is
// either a flat answers record or a full inline deck; both shapes use
// the shared codec, and a deck is flattened back into answers.
func DecodeAnswers(encoded string) (map[string]string, error) {
	data, err := transport.DecodePayload(encoded)
	if err != nil {
		return nil, err
	}

	var answers map[string]string
	if err := json.Unmarshal(data, &answers); err == nil {
		return answers, nil
	}

	deck, err := transport.DecodeDeck(encoded)
	if err != nil {
		return nil, err
	}
	answers = map[string]string{"startupName": deck.Title}
	for _, s := range deck.Slides {
		answers[s.Heading] = strings.Join(s.Bullets, "\n")
	}
	return answers, nil
}

// pitchSummary flattens the record into "key: value" lines in a stable
// order so repeated calls produce the same prompt.
func pitchSummary(answers map[string]string) string {
	keys := make([]string, 0, len(answers))
	for k, v := range answers {
		if strings.TrimSpace(v) != "" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(strings.TrimSpace(answers[k]))
		b.WriteString("\n")
	}
	return strings.TrimSpace(b.String())
}

func splitLines(raw string) []string {
	var out []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "*-• \t")
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}
