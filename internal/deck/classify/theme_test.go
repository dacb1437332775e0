package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/autofounder/deck-backend/internal/deck/domain"
)

func TestResolveTheme(t *testing.T) {
	t.Run("every category resolves to assets", func(t *testing.T) {
		for cat := range categoryThemes {
			theme, cfg := ResolveTheme(cat)
			assert.NotEmpty(t, theme, "category %s", cat)
			assert.NotEmpty(t, cfg.CoverBg, "category %s", cat)
			assert.NotEmpty(t, cfg.ContentBg, "category %s", cat)
			assert.True(t, cfg.DefaultText.Valid(), "category %s", cat)
		}
	})

	t.Run("known mappings", func(t *testing.T) {
		theme, _ := ResolveTheme(domain.CategoryFintech)
		assert.Equal(t, domain.ThemeInvestor, theme)

		theme, _ = ResolveTheme(domain.CategoryClimate)
		assert.Equal(t, domain.ThemeEco, theme)

		theme, _ = ResolveTheme(domain.CategoryOther)
		assert.Equal(t, domain.ThemeMinimal, theme)
	})

	t.Run("unknown category falls back to minimal", func(t *testing.T) {
		theme, cfg := ResolveTheme(domain.Category("never-heard-of-it"))
		assert.Equal(t, domain.ThemeMinimal, theme)
		assert.Equal(t, domain.ToneDark, cfg.DefaultText)
	})
}
