package builder

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autofounder/deck-backend/internal/deck/domain"
)

// scriptedEnhancer lets tests control every enhancement outcome.
type scriptedEnhancer struct {
	content    map[string]string
	contentErr error
	headers    map[string]string
	headersErr error
	script     string
	scriptErr  error
}

func (s scriptedEnhancer) EnhanceContent(_ context.Context, answers map[string]string) (map[string]string, error) {
	if s.content != nil || s.contentErr != nil {
		return s.content, s.contentErr
	}
	return answers, nil
}

func (s scriptedEnhancer) SuggestHeaders(context.Context, map[string]string) (map[string]string, error) {
	return s.headers, s.headersErr
}

func (s scriptedEnhancer) GenerateScript(context.Context, map[string]string) (string, error) {
	return s.script, s.scriptErr
}

func (s scriptedEnhancer) SuggestImageQuery(context.Context, string, map[string]string) (string, error) {
	return "", nil
}

func (s scriptedEnhancer) MatchInvestors(context.Context, string) (string, error) {
	return "", nil
}

func testBuilder(e scriptedEnhancer) *Builder {
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return New(e).
		WithClock(func() time.Time { return fixed }).
		WithIDFunc(func() string { return "test-deck-id" })
}

func fullAnswers() map[string]string {
	return map[string]string{
		"startupName": "Acme",
		"oneLiner":    "Payments for everyone",
		"problem":     "Payments are slow\nFees are opaque",
		"solution":    "One API for all rails",
		"market":      "Huge",
		"team":        "Two founders",
	}
}

func TestBuild(t *testing.T) {
	ctx := context.Background()

	t.Run("assembles cover plus answered sections in template order", func(t *testing.T) {
		deck, err := testBuilder(scriptedEnhancer{}).Build(ctx, fullAnswers(), Options{})
		require.NoError(t, err)

		assert.Equal(t, "test-deck-id", deck.ID)
		assert.Equal(t, "Acme", deck.Title)
		assert.Equal(t, "acme", deck.Slug)
		assert.Equal(t, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC), deck.CreatedAt)

		headings := make([]string, 0, len(deck.Slides))
		for _, s := range deck.Slides {
			headings = append(headings, s.Heading)
		}
		assert.Equal(t, []string{"Acme", "Problem", "Solution", "Market", "Team"}, headings)

		assert.Equal(t, []string{"Payments are slow", "Fees are opaque"}, deck.Slides[1].Bullets)
	})

	t.Run("empty sections are dropped", func(t *testing.T) {
		answers := fullAnswers()
		answers["market"] = "   "
		deck, err := testBuilder(scriptedEnhancer{}).Build(ctx, answers, Options{})
		require.NoError(t, err)
		for _, s := range deck.Slides {
			assert.NotEqual(t, "Market", s.Heading)
		}
	})

	t.Run("no answers means no deck", func(t *testing.T) {
		_, err := testBuilder(scriptedEnhancer{}).Build(ctx, map[string]string{}, Options{})
		assert.ErrorIs(t, err, domain.ErrNoSlides)
	})

	t.Run("whitespace only answers mean no deck", func(t *testing.T) {
		_, err := testBuilder(scriptedEnhancer{}).Build(ctx, map[string]string{
			"startupName": "Acme",
			"problem":     "  \n  ",
		}, Options{})
		assert.ErrorIs(t, err, domain.ErrNoSlides)
	})

	t.Run("list glyphs are stripped from bullets", func(t *testing.T) {
		answers := map[string]string{
			"startupName": "Acme",
			"oneLiner":    "x",
			"problem":     "* first\n- second\n• third",
		}
		deck, err := testBuilder(scriptedEnhancer{}).Build(ctx, answers, Options{})
		require.NoError(t, err)
		assert.Equal(t, []string{"first", "second", "third"}, deck.Slides[1].Bullets)
	})

	t.Run("suggested headers override defaults", func(t *testing.T) {
		e := scriptedEnhancer{headers: map[string]string{"problem": "Why Now"}}
		deck, err := testBuilder(e).Build(ctx, fullAnswers(), Options{})
		require.NoError(t, err)
		assert.Equal(t, "Why Now", deck.Slides[1].Heading)
		assert.Equal(t, "Solution", deck.Slides[2].Heading)
	})

	t.Run("enhancement failure degrades to raw answers", func(t *testing.T) {
		e := scriptedEnhancer{
			contentErr: errors.New("quota exceeded"),
			headersErr: errors.New("quota exceeded"),
			scriptErr:  errors.New("quota exceeded"),
		}
		deck, err := testBuilder(e).Build(ctx, fullAnswers(), Options{})
		require.NoError(t, err)
		assert.Equal(t, "Acme", deck.Title)
		assert.Empty(t, deck.Meta.Script)
	})

	t.Run("classification metadata is populated", func(t *testing.T) {
		deck, err := testBuilder(scriptedEnhancer{}).Build(ctx, fullAnswers(), Options{})
		require.NoError(t, err)

		assert.Equal(t, domain.CategoryFintech, deck.Meta.Category)
		assert.Equal(t, domain.ThemeInvestor, deck.Meta.Theme)
		require.NotNil(t, deck.Meta.ThemeAssets)
		assert.True(t, deck.Meta.TextTone.Valid())
		assert.Greater(t, deck.Meta.Confidence, 0.0)
		assert.Equal(t, 1, deck.Meta.Version)
		assert.Equal(t, "autofounder", deck.Meta.Source)
	})

	t.Run("default format is 16x9", func(t *testing.T) {
		deck, err := testBuilder(scriptedEnhancer{}).Build(ctx, fullAnswers(), Options{})
		require.NoError(t, err)
		assert.Equal(t, domain.Format16x9, deck.Meta.SlideFormat)
	})

	t.Run("explicit format kept", func(t *testing.T) {
		deck, err := testBuilder(scriptedEnhancer{}).Build(ctx, fullAnswers(), Options{Format: domain.Format4x3})
		require.NoError(t, err)
		assert.Equal(t, domain.Format4x3, deck.Meta.SlideFormat)
	})

	t.Run("script generation", func(t *testing.T) {
		e := scriptedEnhancer{script: "Welcome to Acme."}

		deck, err := testBuilder(e).Build(ctx, fullAnswers(), Options{})
		require.NoError(t, err)
		assert.Equal(t, "Welcome to Acme.", deck.Meta.Script)

		deck, err = testBuilder(e).Build(ctx, fullAnswers(), Options{SkipScript: true})
		require.NoError(t, err)
		assert.Empty(t, deck.Meta.Script)
	})

	t.Run("missing name falls back to untitled", func(t *testing.T) {
		deck, err := testBuilder(scriptedEnhancer{}).Build(ctx, map[string]string{
			"oneLiner": "One line",
		}, Options{})
		require.NoError(t, err)
		assert.Equal(t, "Untitled", deck.Title)
		assert.Equal(t, "untitled", deck.Slug)
	})
}

func TestSplitBullets(t *testing.T) {
	assert.Nil(t, splitBullets(""))
	assert.Equal(t, []string{"a", "b"}, splitBullets("a\nb"))
	assert.Equal(t, []string{"keep"}, splitBullets("\n  \n* keep\n\n"))
}

func TestAnswerKeys(t *testing.T) {
	keys := AnswerKeys()
	assert.Equal(t, "startupName", keys[0])
	assert.Equal(t, "oneLiner", keys[1])
	assert.Contains(t, keys, "problem")
	assert.Contains(t, keys, "contact")
	assert.Len(t, keys, 13)
}
