// Package builder assembles a canonical Deck from raw questionnaire
// answers, optionally polished by the text-enhancement capability and
// decorated with classification metadata.
package builder

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/autofounder/deck-backend/internal/deck/classify"
	"github.com/autofounder/deck-backend/internal/deck/domain"
	"github.com/autofounder/deck-backend/internal/enhance"
)

// Options tune one build.
type Options struct {
	Format domain.SlideFormat
	// SkipScript suppresses presentation-script generation.
	SkipScript bool
}

// Builder turns raw answers into decks. Clock and id generation are
// injectable for tests; everything else is deterministic given inputs.
type Builder struct {
	enhancer enhance.Enhancer
	now      func() time.Time
	newID    func() string
}

func New(enhancer enhance.Enhancer) *Builder {
	if enhancer == nil {
		enhancer = enhance.Noop{}
	}
	return &Builder{
		enhancer: enhancer,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// WithClock overrides the timestamp source.
func (b *Builder) WithClock(now func() time.Time) *Builder {
	b.now = now
	return b
}

// WithIDFunc overrides the id generator.
func (b *Builder) WithIDFunc(newID func() string) *Builder {
	b.newID = newID
	return b
}

// Build runs the pipeline: enhance (best-effort) -> assemble slides in
// template order -> id/slug -> classify + theme -> script (best-effort).
// The only hard failure is an empty slide list.
func (b *Builder) Build(ctx context.Context, answers map[string]string, opts Options) (*domain.Deck, error) {
	flat := normalize(answers)

	// Enhancement must never block deck creation: on any failure, keep
	// whatever we have (the enhancer may return partial results).
	enhanced, err := b.enhancer.EnhanceContent(ctx, flat)
	if err != nil {
		log.Printf("deck builder: content enhancement unavailable: %v", err)
	}
	if enhanced == nil {
		enhanced = flat
	}

	headers, err := b.enhancer.SuggestHeaders(ctx, flat)
	if err != nil {
		log.Printf("deck builder: header suggestion unavailable: %v", err)
		headers = nil
	}

	title := firstNonEmpty(enhanced["startupName"], flat["startupName"])
	slides := assembleSlides(title, enhanced, headers)
	if len(slides) == 0 {
		return nil, domain.ErrNoSlides
	}

	id := b.newID()
	format := opts.Format
	if format == "" {
		format = domain.Format16x9
	}

	deck := &domain.Deck{
		ID:        id,
		Slug:      domain.Slugify(title, id),
		Title:     title,
		CreatedAt: b.now().UTC(),
		Slides:    slides,
		Meta: domain.DeckMeta{
			Version:     1,
			Source:      "autofounder",
			SlideFormat: format,
		},
	}

	category, conf := classify.Classify(classify.DeckText(deck.Title, deck.Slides))
	theme, assets := classify.ResolveTheme(category)
	deck.Meta.Category = category
	deck.Meta.Theme = theme
	deck.Meta.ThemeAssets = &assets
	deck.Meta.TextTone = assets.DefaultText
	deck.Meta.Confidence = conf

	if !opts.SkipScript {
		script, err := b.enhancer.GenerateScript(ctx, enhanced)
		if err != nil {
			log.Printf("deck builder: script generation unavailable: %v", err)
		} else if script != "" {
			deck.Meta.Script = script
		}
	}

	return deck, nil
}

// assembleSlides builds the cover plus one slide per answered section,
// dropping anything that ends up without bullets.
func assembleSlides(title string, answers, headers map[string]string) []domain.Slide {
	slides := make([]domain.Slide, 0, len(sectionOrder)+1)

	if bullets := splitBullets(answers["oneLiner"]); len(bullets) > 0 {
		slides = append(slides, domain.Slide{Heading: title, Bullets: bullets})
	}

	for _, sec := range sectionOrder {
		bullets := splitBullets(answers[sec.Key])
		if len(bullets) == 0 {
			continue
		}
		heading := sec.DefaultHeader
		if h := strings.TrimSpace(headers[sec.Key]); h != "" {
			heading = h
		}
		slides = append(slides, domain.Slide{Heading: heading, Bullets: bullets})
	}

	return slides
}

// splitBullets turns a multi-line answer into bullet strings, stripping
// any leading list glyphs the enhancer may have left in.
func splitBullets(text string) []string {
	var bullets []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "*•-+ \t")
		if line != "" {
			bullets = append(bullets, line)
		}
	}
	return bullets
}

func normalize(answers map[string]string) map[string]string {
	flat := make(map[string]string, len(answers))
	for _, key := range AnswerKeys() {
		flat[key] = strings.TrimSpace(answers[key])
	}
	return flat
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return "Untitled"
}
