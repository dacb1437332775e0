package domain

import (
	"fmt"
	"strings"
	"time"
)

// Tone is a text color hint for rendering and export.
type Tone string

const (
	ToneLight Tone = "light"
	ToneDark  Tone = "dark"
)

// Valid reports whether t is one of the two allowed tones.
func (t Tone) Valid() bool {
	return t == ToneLight || t == ToneDark
}

// Category is a closed business-domain tag used to pick a theme.
type Category string

const (
	CategoryFintech     Category = "fintech"
	CategoryDevtools    Category = "devtools"
	CategoryConsumer    Category = "consumer"
	CategoryB2BSaaS     Category = "b2b_saas"
	CategoryHealthtech  Category = "healthtech"
	CategoryAIInfra     Category = "ai_infra"
	CategoryMarketplace Category = "marketplace"
	CategoryEdtech      Category = "edtech"
	CategoryClimate     Category = "climate"
	CategoryOther       Category = "other"
)

// ThemeKey identifies a fixed visual preset.
type ThemeKey string

const (
	ThemeInvestor ThemeKey = "investor"
	ThemeMinimal  ThemeKey = "minimal"
	ThemeBold     ThemeKey = "bold"
	ThemeClinical ThemeKey = "clinical"
	ThemeEco      ThemeKey = "eco"
	ThemeInfra    ThemeKey = "infra"
)

// SlideFormat selects one of the two supported aspect presets.
type SlideFormat string

const (
	Format16x9 SlideFormat = "w16x9"
	Format4x3  SlideFormat = "w4x3"
)

func (f SlideFormat) Valid() bool {
	return f == Format16x9 || f == Format4x3
}

// ThemeConfig carries the background assets and default text tone for a
// theme. It is resolved once at classification time and copied into
// Deck.Meta.ThemeAssets.
type ThemeConfig struct {
	CoverBg     string `json:"coverBg"`
	ContentBg   string `json:"contentBg"`
	DefaultText Tone   `json:"defaultText"`
}

// Slide is one presentation page.
type Slide struct {
	Heading  string   `json:"heading"`
	Bullets  []string `json:"bullets"`
	ImageURL string   `json:"imageUrl,omitempty"`
	TextTone Tone     `json:"textTone,omitempty"`
}

// DisplayHeading returns the heading, falling back to a positional label
// for slides with an empty one. i is zero-based.
func (s Slide) DisplayHeading(i int) string {
	if strings.TrimSpace(s.Heading) != "" {
		return s.Heading
	}
	return fmt.Sprintf("Slide %d", i+1)
}

// DeckMeta carries classification results and optional generated
// artifacts. Every field is additive; absence degrades to defaults.
type DeckMeta struct {
	Version     int          `json:"version,omitempty"`
	Source      string       `json:"source,omitempty"`
	Category    Category     `json:"category,omitempty"`
	Theme       ThemeKey     `json:"theme,omitempty"`
	ThemeAssets *ThemeConfig `json:"themeAssets,omitempty"`
	TextTone    Tone         `json:"textTone,omitempty"`
	Confidence  float64      `json:"confidence,omitempty"`
	Script      string       `json:"script,omitempty"`
	SlideFormat SlideFormat  `json:"slideFormat,omitempty"`
}

// Deck is the canonical presentation artifact. It is constructed once by
// the builder, published exactly once, and read-only from then on.
type Deck struct {
	ID        string    `json:"id"`
	Slug      string    `json:"slug"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
	Slides    []Slide   `json:"slides"`
	Meta      DeckMeta  `json:"meta"`
}

// EffectiveTone resolves the text tone for slide i with the fallback
// chain: slide override, deck-level tone, theme default, dark.
func (d *Deck) EffectiveTone(i int) Tone {
	if i >= 0 && i < len(d.Slides) {
		if t := d.Slides[i].TextTone; t.Valid() {
			return t
		}
	}
	if d.Meta.TextTone.Valid() {
		return d.Meta.TextTone
	}
	if d.Meta.ThemeAssets != nil && d.Meta.ThemeAssets.DefaultText.Valid() {
		return d.Meta.ThemeAssets.DefaultText
	}
	return ToneDark
}
