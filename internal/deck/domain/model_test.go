package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		id   string
		want string
	}{
		{"simple", "Acme", "id", "acme"},
		{"punctuation collapses", "Acme, Inc.!", "id", "acme-inc"},
		{"internal runs", "My   Cool App", "id", "my-cool-app"},
		{"leading and trailing stripped", "  --Acme--  ", "id", "acme"},
		{"digits kept", "Web3 Labs", "id", "web3-labs"},
		{"empty falls back to id prefix", "", "0123456789abcdef", "01234567"},
		{"symbols only fall back", "!!!", "short", "short"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.in, tt.id))
		})
	}
}

func TestDisplayHeading(t *testing.T) {
	assert.Equal(t, "Problem", Slide{Heading: "Problem"}.DisplayHeading(0))
	assert.Equal(t, "Slide 3", Slide{}.DisplayHeading(2))
	assert.Equal(t, "Slide 1", Slide{Heading: "   "}.DisplayHeading(0))
}

func TestEffectiveTone(t *testing.T) {
	theme := &ThemeConfig{DefaultText: ToneLight}

	t.Run("slide override wins", func(t *testing.T) {
		d := &Deck{
			Slides: []Slide{{TextTone: ToneDark}},
			Meta:   DeckMeta{TextTone: ToneLight, ThemeAssets: theme},
		}
		assert.Equal(t, ToneDark, d.EffectiveTone(0))
	})

	t.Run("deck meta next", func(t *testing.T) {
		d := &Deck{
			Slides: []Slide{{}},
			Meta:   DeckMeta{TextTone: ToneLight},
		}
		assert.Equal(t, ToneLight, d.EffectiveTone(0))
	})

	t.Run("theme default next", func(t *testing.T) {
		d := &Deck{
			Slides: []Slide{{}},
			Meta:   DeckMeta{ThemeAssets: theme},
		}
		assert.Equal(t, ToneLight, d.EffectiveTone(0))
	})

	t.Run("dark as final fallback", func(t *testing.T) {
		d := &Deck{Slides: []Slide{{}}}
		assert.Equal(t, ToneDark, d.EffectiveTone(0))
	})

	t.Run("out of range index skips slide level", func(t *testing.T) {
		d := &Deck{Meta: DeckMeta{TextTone: ToneLight}}
		assert.Equal(t, ToneLight, d.EffectiveTone(5))
	})

	t.Run("invalid slide tone ignored", func(t *testing.T) {
		d := &Deck{
			Slides: []Slide{{TextTone: Tone("sepia")}},
			Meta:   DeckMeta{TextTone: ToneLight},
		}
		assert.Equal(t, ToneLight, d.EffectiveTone(0))
	})
}

func TestToneValid(t *testing.T) {
	assert.True(t, ToneLight.Valid())
	assert.True(t, ToneDark.Valid())
	assert.False(t, Tone("").Valid())
	assert.False(t, Tone("sepia").Valid())
}
