package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autofounder/deck-backend/internal/deck/domain"
)

func TestClassify(t *testing.T) {
	t.Run("fintech keywords win", func(t *testing.T) {
		cat, conf := Classify("we do payments and lending on a shared ledger")
		assert.Equal(t, domain.CategoryFintech, cat)
		assert.Greater(t, conf, 0.3)
	})

	t.Run("healthtech keywords win", func(t *testing.T) {
		cat, _ := Classify("telehealth platform for patient intake, hipaa compliant")
		assert.Equal(t, domain.CategoryHealthtech, cat)
	})

	t.Run("no keywords yields other at low confidence", func(t *testing.T) {
		cat, conf := Classify("completely unrelated prose about gardening")
		assert.Equal(t, domain.CategoryOther, cat)
		assert.Equal(t, 0.3, conf)
	})

	t.Run("empty text yields other at low confidence", func(t *testing.T) {
		cat, conf := Classify("")
		assert.Equal(t, domain.CategoryOther, cat)
		assert.Equal(t, 0.3, conf)
	})

	t.Run("case insensitive", func(t *testing.T) {
		lower, _ := Classify("payments banking crypto")
		upper, _ := Classify("PAYMENTS BANKING CRYPTO")
		assert.Equal(t, lower, upper)
	})

	t.Run("deterministic", func(t *testing.T) {
		text := "sdk api for developer observability"
		c1, s1 := Classify(text)
		c2, s2 := Classify(text)
		assert.Equal(t, c1, c2)
		assert.Equal(t, s1, s2)
	})

	t.Run("whole word outscores substring", func(t *testing.T) {
		// "card" appears only inside "cardboard"; "sdk" is a whole word.
		cat, _ := Classify("cardboard sdk")
		assert.Equal(t, domain.CategoryDevtools, cat)
	})

	t.Run("tie breaks to first declared category", func(t *testing.T) {
		// "billing" is listed under both fintech and b2b saas; with no
		// other evidence the earlier table entry wins.
		cat, _ := Classify("billing")
		assert.Equal(t, domain.CategoryFintech, cat)
	})

	t.Run("confidence bounded at one", func(t *testing.T) {
		_, conf := Classify("payments banking ledger lending neo-bank billing card crypto remittance")
		assert.LessOrEqual(t, conf, 1.0)
		assert.Greater(t, conf, 0.3)
	})
}

func TestConfidence(t *testing.T) {
	t.Run("monotonically increasing", func(t *testing.T) {
		prev := confidence(0)
		for s := 1; s <= 20; s++ {
			cur := confidence(s)
			require.GreaterOrEqual(t, cur, prev, "score %d", s)
			prev = cur
		}
	})

	t.Run("floor at zero score", func(t *testing.T) {
		assert.Equal(t, 0.3, confidence(0))
		assert.Equal(t, 0.3, confidence(-1))
	})
}

func TestDeckText(t *testing.T) {
	slides := []domain.Slide{
		{Heading: "Problem", Bullets: []string{"Manual Payments", "Slow banking"}},
		{Heading: "Solution", Bullets: []string{"One API"}},
	}

	text := DeckText("Acme", slides)
	assert.Equal(t, "acme\nproblem\nmanual payments\nslow banking\nsolution\none api", text)

	t.Run("empty title omitted", func(t *testing.T) {
		text := DeckText("", slides)
		assert.Equal(t, "problem\nmanual payments\nslow banking\nsolution\none api", text)
	})
}
