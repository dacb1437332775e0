// Package export drives the presentation-file sink: it walks a resolved
// deck in order, emits a title, bullet block and optional image per
// slide, and produces one downloadable binary per call. Output is built
// fully in memory so a failed export never leaves a partial file.
package export

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/autofounder/deck-backend/internal/deck/domain"
	"github.com/autofounder/deck-backend/internal/export/pptx"
	"github.com/autofounder/deck-backend/internal/images"
)

// slideKinds maps heading fragments back to a section kind for image
// lookup. Headings are free text after enhancement, so this is fuzzy on
// purpose.
var slideKinds = []string{
	"problem", "solution", "customer", "traction", "ask",
	"model", "market", "competition", "team", "roadmap",
}

type Exporter struct {
	images *images.Client // nil disables image lookup
}

func NewExporter(imageClient *images.Client) *Exporter {
	return &Exporter{images: imageClient}
}

// Export renders the deck to PPTX bytes plus its deterministic download
// filename. Sink failures wrap ErrExportFailed; image problems only cost
// the image.
func (e *Exporter) Export(ctx context.Context, deck *domain.Deck) ([]byte, string, error) {
	if len(deck.Slides) == 0 {
		return nil, "", fmt.Errorf("%w: deck %s has no slides", domain.ErrExportFailed, deck.ID)
	}

	layout := pptx.Layout16x9
	if deck.Meta.SlideFormat == domain.Format4x3 {
		layout = pptx.Layout4x3
	}

	pres := pptx.New(layout)
	answers := answersFromDeck(deck)

	for i, slide := range deck.Slides {
		out := pptx.Slide{
			Title: slide.DisplayHeading(i),
			Light: deck.EffectiveTone(i) == domain.ToneLight,
		}

		if i == 0 {
			out.Cover = true
			if len(slide.Bullets) > 0 {
				out.Subtitle = slide.Bullets[0]
			}
		} else {
			out.Bullets = slide.Bullets
			out.Image = e.slideImage(ctx, slide, answers)
		}

		pres.AddSlide(out)
	}

	var buf bytes.Buffer
	if _, err := pres.WriteTo(&buf); err != nil {
		return nil, "", fmt.Errorf("%w: %v", domain.ErrExportFailed, err)
	}

	return buf.Bytes(), FileName(deck), nil
}

// slideImage finds image bytes for a slide: an explicit imageUrl first,
// then a themed lookup by section kind. Best-effort on both paths.
func (e *Exporter) slideImage(ctx context.Context, slide domain.Slide, answers map[string]string) []byte {
	if e.images == nil {
		return nil
	}

	if slide.ImageURL != "" {
		data, err := e.images.Fetch(ctx, slide.ImageURL)
		if err != nil {
			log.Printf("export: image fetch for %q failed: %v", slide.ImageURL, err)
		} else {
			return data
		}
	}

	kind := kindForHeading(slide.Heading)
	if kind == "" {
		return nil
	}

	img, err := e.images.FindForSlide(ctx, kind, answers)
	if err != nil || img == nil {
		if err != nil {
			log.Printf("export: image lookup for %q failed: %v", kind, err)
		}
		return nil
	}

	data, err := e.images.Fetch(ctx, img.WebformatURL)
	if err != nil {
		log.Printf("export: image fetch for %q failed: %v", kind, err)
		return nil
	}
	return data
}

func kindForHeading(heading string) string {
	h := strings.ToLower(heading)
	for _, kind := range slideKinds {
		if strings.Contains(h, kind) {
			return kind
		}
	}
	return ""
}

// answersFromDeck reconstructs a flat record for image query generation
// from an already-built deck.
func answersFromDeck(deck *domain.Deck) map[string]string {
	answers := map[string]string{"startupName": deck.Title}
	for _, s := range deck.Slides {
		if kind := kindForHeading(s.Heading); kind != "" && len(s.Bullets) > 0 {
			answers[kind] = strings.Join(s.Bullets, "\n")
		}
	}
	return answers
}

// FileName derives the deterministic download name: the human-readable
// part with non-alphanumerics replaced, plus an id prefix.
func FileName(deck *domain.Deck) string {
	base := deck.Title
	if strings.TrimSpace(base) == "" {
		base = deck.Slug
	}

	var b strings.Builder
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}

	safe := strings.Trim(b.String(), "_")
	if safe == "" {
		safe = "deck"
	}

	id := deck.ID
	if len(id) > 8 {
		id = id[:8]
	}

	return fmt.Sprintf("%s-%s.pptx", safe, id)
}
