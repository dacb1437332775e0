package enhance

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

// Gemini implements Enhancer on top of the Google GenAI API.
type Gemini struct {
	client  *genai.Client
	model   string
	limiter *rate.Limiter
}

// NewGemini creates a Gemini-backed enhancer.
func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if model == "" {
		model = "gemini-1.5-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &Gemini{
		client: client,
		model:  model,
		// The free tier allows ~15 requests/minute; stay under it.
		limiter: rate.NewLimiter(rate.Limit(0.25), 2),
	}, nil
}

func (g *Gemini) generate(ctx context.Context, prompt string) (string, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		return "", err
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("gemini returned empty response")
	}
	return text, nil
}

const bulletStyle = "3-4 diverse bullet points (max 8 words each). " +
	"Do NOT include asterisks (*) or bullet symbols. " +
	"Just return plain text, one point per line"

// EnhanceContent rewrites the provided sections into bullet lines and
// generates market/model sections when the inputs allow it. On error the
// caller keeps the original record; partially-enhanced output is fine.
func (g *Gemini) EnhanceContent(ctx context.Context, answers map[string]string) (map[string]string, error) {
	enhanced := make(map[string]string, len(answers))
	for k, v := range answers {
		enhanced[k] = v
	}

	rewrite := func(key, instruction string) error {
		text, err := g.generate(ctx, fmt.Sprintf("%s into %s:\n\n%s", instruction, bulletStyle, answers[key]))
		if err != nil {
			return err
		}
		enhanced[key] = text
		return nil
	}

	if answers["problem"] != "" {
		if err := rewrite("problem", "Make this problem statement. Each point should address a different aspect of the problem"); err != nil {
			return enhanced, err
		}
	}
	if answers["solution"] != "" {
		if err := rewrite("solution", "Make this solution. Each point should highlight a different benefit or feature"); err != nil {
			return enhanced, err
		}
	}
	if answers["market"] == "" && answers["problem"] != "" && answers["solution"] != "" {
		text, err := g.generate(ctx, fmt.Sprintf(
			"Generate %s about market opportunity for: %s. Cover size, growth, competition, opportunity.",
			bulletStyle, answers["startupName"]))
		if err != nil {
			return enhanced, err
		}
		enhanced["market"] = text
	}
	if answers["model"] == "" && answers["solution"] != "" {
		text, err := g.generate(ctx, fmt.Sprintf(
			"Generate %s about a revenue model. Cover different revenue streams or pricing strategies.", bulletStyle))
		if err != nil {
			return enhanced, err
		}
		enhanced["model"] = text
	}
	if t := answers["traction"]; t != "" && t != "n/a" {
		if err := rewrite("traction", "Make this traction summary. Each point should highlight different metrics or achievements"); err != nil {
			return enhanced, err
		}
	}

	return enhanced, nil
}

// SuggestHeaders asks for one compelling header per section and parses
// the "Key: Value" response lines. Unparseable lines are skipped.
func (g *Gemini) SuggestHeaders(ctx context.Context, answers map[string]string) (map[string]string, error) {
	prompt := fmt.Sprintf(`Startup: %s
Problem: %s
Solution: %s
Traction: %s
Ask: %s

Generate compelling slide headers for this startup's pitch deck. Return only the headers, one per line, in this exact format:
Problem: [header]
Solution: [header]
Market: [header]
Model: [header]
Traction: [header]
Team: [header]
Ask: [header]

Keep headers under 6 words each, specific to this startup, no repetition.`,
		orDefault(answers["startupName"]), orDefault(answers["problem"]),
		orDefault(answers["solution"]), orDefault(answers["traction"]), orDefault(answers["ask"]))

	resp, err := g.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	headers := make(map[string]string)
	for _, line := range strings.Split(resp, "\n") {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		key = strings.ReplaceAll(strings.ToLower(strings.TrimSpace(key)), " ", "_")
		value = strings.TrimSpace(value)
		if key != "" && value != "" {
			headers[key] = value
		}
	}
	return headers, nil
}

// GenerateScript produces a short spoken script covering each slide.
func (g *Gemini) GenerateScript(ctx context.Context, answers map[string]string) (string, error) {
	prompt := fmt.Sprintf(`Write a short spoken presentation script for a startup pitch.
Startup: %s
One-liner: %s
Problem: %s
Solution: %s
Ask: %s

One short paragraph per slide, conversational tone, no stage directions, under 400 words total.`,
		orDefault(answers["startupName"]), orDefault(answers["oneLiner"]),
		orDefault(answers["problem"]), orDefault(answers["solution"]), orDefault(answers["ask"]))

	return g.generate(ctx, prompt)
}

// SuggestImageQuery returns a short stock-photo search query for a slide.
func (g *Gemini) SuggestImageQuery(ctx context.Context, slideKind string, answers map[string]string) (string, error) {
	prompt := fmt.Sprintf(`Create a search query for finding relevant images for this pitch deck slide: %q.

Startup: %s
Problem: %s
Solution: %s

Return ONLY a simple, effective search query (2-4 words max). No quotes or explanations.`,
		slideKind, orDefault(answers["startupName"]),
		orDefault(answers["problem"]), orDefault(answers["solution"]))

	resp, err := g.generate(ctx, prompt)
	if err != nil {
		return "", err
	}
	return strings.Trim(strings.TrimSpace(resp), `'"`), nil
}

// MatchInvestors rewrites a pitch summary into suggested investor
// profiles. Pure pass-through to the text capability.
func (g *Gemini) MatchInvestors(ctx context.Context, pitch string) (string, error) {
	prompt := fmt.Sprintf(`Suggest 5 investor profiles (firm type, stage, sector focus) that fit this startup pitch. One per line, no numbering:

%s`, pitch)
	return g.generate(ctx, prompt)
}

func orDefault(s string) string {
	if strings.TrimSpace(s) == "" {
		return "Not specified"
	}
	return s
}
