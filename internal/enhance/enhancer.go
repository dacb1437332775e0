// Package enhance wraps the generative-text capability used to polish
// deck content. Every operation is best-effort: callers fall back to
// their own defaults on any error and never block deck creation on it.
package enhance

import "context"

// Enhancer is the opaque text-transform capability. Implementations must
// be treated as fallible and slow.
type Enhancer interface {
	// EnhanceContent rewrites the values of a flat answers record into
	// short bullet lines, generating missing sections where the inputs
	// allow it. The returned map has the same keys as the input.
	EnhanceContent(ctx context.Context, answers map[string]string) (map[string]string, error)

	// SuggestHeaders returns short slide headers keyed by section.
	SuggestHeaders(ctx context.Context, answers map[string]string) (map[string]string, error)

	// GenerateScript produces a spoken presentation script for the deck.
	GenerateScript(ctx context.Context, answers map[string]string) (string, error)

	// SuggestImageQuery returns a 2-4 word image search query for a slide.
	SuggestImageQuery(ctx context.Context, slideKind string, answers map[string]string) (string, error)

	// MatchInvestors rewrites a pitch summary into a list of suggested
	// investor profiles. A thin pass-through; no matching logic here.
	MatchInvestors(ctx context.Context, pitch string) (string, error)
}

// Noop passes content through untouched. Wired when no API key is
// configured; the service behaves identically, minus enhancement.
type Noop struct{}

func (Noop) EnhanceContent(_ context.Context, answers map[string]string) (map[string]string, error) {
	return answers, nil
}

func (Noop) SuggestHeaders(context.Context, map[string]string) (map[string]string, error) {
	return map[string]string{}, nil
}

func (Noop) GenerateScript(context.Context, map[string]string) (string, error) {
	return "", nil
}

func (Noop) SuggestImageQuery(context.Context, string, map[string]string) (string, error) {
	return "", nil
}

func (Noop) MatchInvestors(context.Context, string) (string, error) {
	return "", nil
}
